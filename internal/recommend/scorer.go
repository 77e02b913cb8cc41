// Mawja - Bilingual Series Streaming Recommendations
// Copyright 2026 Mawja Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mawja-tv/mawja

package recommend

import (
	"math"

	"github.com/google/uuid"
)

// ScoreCandidates computes the global relevance score for every catalog item
// not in the exclusion set. Output preserves catalog order; ranking happens
// in the section builder.
//
// The score is a weighted linear combination: summed genre frequency matches,
// summed tag frequency matches, log-damped view count, rating, and a flat
// trending bonus. A cold profile still yields positive scores through the
// popularity terms, but cold callers never reach this path in practice
// because the engine short-circuits to the popular section.
func ScoreCandidates(cfg *Config, catalog []Item, exclude map[uuid.UUID]struct{}, profile Profile) []ScoredItem {
	scored := make([]ScoredItem, 0, len(catalog))
	w := cfg.Weights
	for _, it := range catalog {
		if _, seen := exclude[it.ID]; seen {
			continue
		}
		var genreSum, tagSum int
		for _, g := range it.Genres {
			genreSum += profile.Genres[normalizeKey(g)]
		}
		for _, t := range it.Tags {
			tagSum += profile.Tags[normalizeKey(t)]
		}
		score := w.Genre*float64(genreSum) +
			w.Tag*float64(tagSum) +
			w.Views*math.Log10(float64(it.TotalViews)+1) +
			w.Rating*it.Rating
		if it.Trending {
			score += w.Trending
		}
		scored = append(scored, ScoredItem{Item: it, Score: score})
	}
	return scored
}
