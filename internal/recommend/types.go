// Mawja - Bilingual Series Streaming Recommendations
// Copyright 2026 Mawja Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mawja-tv/mawja

package recommend

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Item is one catalog series as served in recommendation sections. All
// user-facing text carries an Arabic and an English variant.
type Item struct {
	ID            uuid.UUID `json:"id"`
	TitleAr       string    `json:"title_ar"`
	TitleEn       string    `json:"title_en"`
	DescriptionAr string    `json:"description_ar"`
	DescriptionEn string    `json:"description_en"`
	Slug          string    `json:"slug"`
	Genres        []string  `json:"genres"`
	Tags          []string  `json:"tags"`
	Rating        float64   `json:"rating"`
	TotalViews    int64     `json:"total_views"`
	Trending      bool      `json:"is_trending"`
	CreatedAt     time.Time `json:"created_at"`
}

// Reason identifies why a section was produced. Clients key their row
// rendering off this value, so the strings are a wire contract.
type Reason string

// Section reasons.
const (
	// ReasonPopular is the cold-start fallback of most-viewed items.
	ReasonPopular Reason = "popular"

	// ReasonBecauseYouWatched groups items similar to one series the
	// caller interacted with.
	ReasonBecauseYouWatched Reason = "because_you_watched"

	// ReasonRecommended is the catch-all of top-scored remaining items.
	ReasonRecommended Reason = "recommended"
)

// Section is one ordered row of recommendations. The source fields are only
// populated for ReasonBecauseYouWatched sections.
type Section struct {
	Reason        Reason `json:"reason"`
	SourceTitleAr string `json:"source_title_ar,omitempty"`
	SourceTitleEn string `json:"source_title_en,omitempty"`
	SourceSlug    string `json:"source_slug,omitempty"`
	Series        []Item `json:"series"`
}

// Response is the full recommendation payload for one caller. Sections is
// never nil; a caller with no viable recommendations receives an empty slice.
type Response struct {
	Sections []Section `json:"sections"`
}

// Profile holds genre and tag interaction frequencies for one caller. Keys
// are normalized to lowercase so that source labeling differences between
// catalog rows do not split counts.
type Profile struct {
	Genres map[string]int
	Tags   map[string]int
}

// Empty reports whether the profile carries no signal at all.
func (p Profile) Empty() bool {
	return len(p.Genres) == 0 && len(p.Tags) == 0
}

// ScoredItem pairs a candidate with its global relevance score.
type ScoredItem struct {
	Item  Item
	Score float64
}

// Store provides the engine's read model. Implementations must return the
// interaction ID slices ordered most-recent-first; the engine relies on that
// ordering when picking section sources.
type Store interface {
	// GetCatalog returns every active catalog item.
	GetCatalog(ctx context.Context) ([]Item, error)

	// GetFavoriteSeriesIDs returns the IDs of the series the user has
	// favorited, most recent first.
	GetFavoriteSeriesIDs(ctx context.Context, userID string) ([]uuid.UUID, error)

	// GetWatchedSeriesIDs returns the IDs of the series the user has
	// watched at least one episode of, most recently watched first.
	GetWatchedSeriesIDs(ctx context.Context, userID string) ([]uuid.UUID, error)
}
