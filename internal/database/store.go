// Mawja - Bilingual Series Streaming Recommendations
// Copyright 2026 Mawja Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mawja-tv/mawja

package database

import (
	"context"

	"github.com/google/uuid"

	"github.com/mawja-tv/mawja/internal/recommend"
)

// RecommendationStore adapts the database to the engine's Store interface.
// It exists so the recommend package never imports this one.
type RecommendationStore struct {
	db *Database
}

// NewRecommendationStore wraps the database for use by the engine.
func NewRecommendationStore(db *Database) *RecommendationStore {
	return &RecommendationStore{db: db}
}

// GetCatalog implements recommend.Store.
func (s *RecommendationStore) GetCatalog(ctx context.Context) ([]recommend.Item, error) {
	return s.db.GetCatalogItems(ctx)
}

// GetFavoriteSeriesIDs implements recommend.Store.
func (s *RecommendationStore) GetFavoriteSeriesIDs(ctx context.Context, userID string) ([]uuid.UUID, error) {
	return s.db.GetFavoriteSeriesIDs(ctx, userID)
}

// GetWatchedSeriesIDs implements recommend.Store.
func (s *RecommendationStore) GetWatchedSeriesIDs(ctx context.Context, userID string) ([]uuid.UUID, error) {
	return s.db.GetWatchedSeriesIDs(ctx, userID)
}

var _ recommend.Store = (*RecommendationStore)(nil)
