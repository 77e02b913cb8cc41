// Mawja - Bilingual Series Streaming Recommendations
// Copyright 2026 Mawja Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mawja-tv/mawja

package recommend

import "strings"

// BuildProfile aggregates genre and tag frequencies over the items a caller
// has interacted with. An item appearing in both favorites and watch history
// must be deduplicated by the caller before it arrives here, so each item
// contributes exactly once.
func BuildProfile(items []Item) Profile {
	p := Profile{
		Genres: make(map[string]int),
		Tags:   make(map[string]int),
	}
	for _, it := range items {
		for _, g := range it.Genres {
			if k := normalizeKey(g); k != "" {
				p.Genres[k]++
			}
		}
		for _, t := range it.Tags {
			if k := normalizeKey(t); k != "" {
				p.Tags[k]++
			}
		}
	}
	return p
}

// normalizeKey folds a genre or tag label into its frequency-map key.
// Catalog rows are inconsistently cased, so "Drama" and "drama" must count
// as the same genre.
func normalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
