// Mawja - Bilingual Series Streaming Recommendations
// Copyright 2026 Mawja Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mawja-tv/mawja

package recommend

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Engine runs the recommendation pipeline. It holds no mutable state after
// construction and is safe for concurrent use.
type Engine struct {
	store  Store
	cfg    *Config
	logger zerolog.Logger
}

// NewEngine creates a recommendation engine backed by the given store.
func NewEngine(store Store, cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if store == nil {
		return nil, fmt.Errorf("store is required")
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid recommend config: %w", err)
	}
	return &Engine{
		store:  store,
		cfg:    cfg.Clone(),
		logger: logger.With().Str("component", "recommend").Logger(),
	}, nil
}

// Recommend builds the full section list for one caller. The catalog and both
// interaction edges are fetched concurrently; a failed interaction fetch
// degrades to an empty result, a failed catalog fetch fails the request.
func (e *Engine) Recommend(ctx context.Context, userID string) (*Response, error) {
	start := time.Now()

	catalog, interacted, err := e.collect(ctx, userID)
	if err != nil {
		return nil, err
	}

	if len(interacted) == 0 {
		popular := BuildPopularSection(e.cfg, catalog)
		e.logger.Debug().
			Str("user_id", userID).
			Int("catalog_size", len(catalog)).
			Int("popular_items", len(popular.Series)).
			Dur("elapsed", time.Since(start)).
			Msg("Cold-start recommendations served")
		return &Response{Sections: []Section{popular}}, nil
	}

	exclude := make(map[uuid.UUID]struct{}, len(interacted))
	for _, it := range interacted {
		exclude[it.ID] = struct{}{}
	}

	profile := BuildProfile(interacted)
	scored := ScoreCandidates(e.cfg, catalog, exclude, profile)
	sections := BuildSections(e.cfg, interacted, scored)

	e.logger.Debug().
		Str("user_id", userID).
		Int("catalog_size", len(catalog)).
		Int("interacted", len(interacted)).
		Int("candidates", len(scored)).
		Int("sections", len(sections)).
		Dur("elapsed", time.Since(start)).
		Msg("Recommendations served")

	return &Response{Sections: sections}, nil
}

// collect fetches the catalog and the caller's interaction edges
// concurrently, then resolves the edges into deduplicated catalog items.
// Watch history comes before favorites and each edge list is
// most-recent-first, so the returned slice is ordered for source selection.
func (e *Engine) collect(ctx context.Context, userID string) ([]Item, []Item, error) {
	var (
		wg       sync.WaitGroup
		catalog  []Item
		favs     []uuid.UUID
		watched  []uuid.UUID
		catErr   error
		favErr   error
		watchErr error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		catalog, catErr = e.store.GetCatalog(ctx)
	}()
	go func() {
		defer wg.Done()
		favs, favErr = e.store.GetFavoriteSeriesIDs(ctx, userID)
	}()
	go func() {
		defer wg.Done()
		watched, watchErr = e.store.GetWatchedSeriesIDs(ctx, userID)
	}()
	wg.Wait()

	if catErr != nil {
		return nil, nil, fmt.Errorf("fetch catalog: %w", catErr)
	}
	if favErr != nil {
		e.logger.Warn().Err(favErr).Str("user_id", userID).
			Msg("Favorites fetch failed, continuing without favorites")
		favs = nil
	}
	if watchErr != nil {
		e.logger.Warn().Err(watchErr).Str("user_id", userID).
			Msg("Watch history fetch failed, continuing without watch history")
		watched = nil
	}

	index := make(map[uuid.UUID]Item, len(catalog))
	for _, it := range catalog {
		index[it.ID] = it
	}

	seen := make(map[uuid.UUID]struct{}, len(watched)+len(favs))
	interacted := make([]Item, 0, len(watched)+len(favs))
	for _, id := range append(watched, favs...) {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		// Edges can reference catalog items that have since been
		// removed; those contribute nothing to the profile.
		if it, ok := index[id]; ok {
			interacted = append(interacted, it)
		}
	}
	return catalog, interacted, nil
}
