// Mawja - Bilingual Series Streaming Recommendations
// Copyright 2026 Mawja Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mawja-tv/mawja

package recommend

import "sort"

// BuildPopularSection returns the cold-start section of most-viewed catalog
// items. View-count ties break by ascending item ID so output is stable
// across requests.
func BuildPopularSection(cfg *Config, catalog []Item) Section {
	items := make([]Item, len(catalog))
	copy(items, catalog)
	sort.Slice(items, func(i, j int) bool {
		if items[i].TotalViews != items[j].TotalViews {
			return items[i].TotalViews > items[j].TotalViews
		}
		return items[i].ID.String() < items[j].ID.String()
	})
	if len(items) > cfg.Sections.PopularSize {
		items = items[:cfg.Sections.PopularSize]
	}
	return Section{Reason: ReasonPopular, Series: items}
}

// BuildSections arranges scored candidates into output sections: up to
// SourceCount "because you watched" sections keyed off the caller's most
// recent interactions, then one catch-all "recommended" section of the
// highest-scored items not already placed.
//
// A candidate appears in at most one section. A source whose qualifying
// matches fall below SourceSectionMin produces no section, and its would-be
// matches stay available to later sources and the recommended section.
func BuildSections(cfg *Config, sources []Item, scored []ScoredItem) []Section {
	sections := make([]Section, 0, cfg.Sections.SourceCount+1)
	used := make(map[string]struct{})

	if len(sources) > cfg.Sections.SourceCount {
		sources = sources[:cfg.Sections.SourceCount]
	}
	for _, src := range sources {
		matches := matchCandidates(cfg.Weights, src, scored, used)
		if len(matches) > cfg.Sections.SourceSectionSize {
			matches = matches[:cfg.Sections.SourceSectionSize]
		}
		if len(matches) < cfg.Sections.SourceSectionMin {
			continue
		}
		items := make([]Item, len(matches))
		for i, m := range matches {
			items[i] = m.Item
			used[m.Item.ID.String()] = struct{}{}
		}
		sections = append(sections, Section{
			Reason:        ReasonBecauseYouWatched,
			SourceTitleAr: src.TitleAr,
			SourceTitleEn: src.TitleEn,
			SourceSlug:    src.Slug,
			Series:        items,
		})
	}

	remaining := make([]ScoredItem, 0, len(scored))
	for _, s := range scored {
		if _, taken := used[s.Item.ID.String()]; taken {
			continue
		}
		remaining = append(remaining, s)
	}
	sortByScore(remaining)
	if len(remaining) > cfg.Sections.RecommendedSize {
		remaining = remaining[:cfg.Sections.RecommendedSize]
	}
	if len(remaining) > 0 {
		items := make([]Item, len(remaining))
		for i, s := range remaining {
			items[i] = s.Item
		}
		sections = append(sections, Section{Reason: ReasonRecommended, Series: items})
	}
	return sections
}

// matchCandidates scores every unused candidate against one source series and
// returns the positive matches, best first. The global score folds in at ten
// percent weight as a tie-breaker, so a candidate sharing nothing with the
// source can still qualify on popularity alone; only non-positive matches
// are excluded.
func matchCandidates(w Weights, src Item, scored []ScoredItem, used map[string]struct{}) []ScoredItem {
	srcGenres := keySet(src.Genres)
	srcTags := keySet(src.Tags)

	matches := make([]ScoredItem, 0, len(scored))
	for _, s := range scored {
		if _, taken := used[s.Item.ID.String()]; taken {
			continue
		}
		var genreOverlap, tagOverlap int
		for _, g := range s.Item.Genres {
			if _, ok := srcGenres[normalizeKey(g)]; ok {
				genreOverlap++
			}
		}
		for _, t := range s.Item.Tags {
			if _, ok := srcTags[normalizeKey(t)]; ok {
				tagOverlap++
			}
		}
		match := w.MatchGenre*float64(genreOverlap) +
			w.MatchTag*float64(tagOverlap) +
			w.MatchGlobal*s.Score
		if match <= 0 {
			continue
		}
		matches = append(matches, ScoredItem{Item: s.Item, Score: match})
	}
	sortByScore(matches)
	return matches
}

// sortByScore orders descending by score, breaking ties by ascending item ID.
func sortByScore(items []ScoredItem) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].Score != items[j].Score {
			return items[i].Score > items[j].Score
		}
		return items[i].Item.ID.String() < items[j].Item.ID.String()
	})
}

// keySet builds a normalized lookup set from a label slice.
func keySet(labels []string) map[string]struct{} {
	set := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		if k := normalizeKey(l); k != "" {
			set[k] = struct{}{}
		}
	}
	return set
}
