// Mawja - Bilingual Series Streaming Recommendations
// Copyright 2026 Mawja Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mawja-tv/mawja

package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mawja-tv/mawja/internal/metrics"
)

// GetFavoriteSeriesIDs returns the series the user has favorited, most
// recently favorited first. The ordering drives the engine's source
// selection, so it is part of the contract.
func (d *Database) GetFavoriteSeriesIDs(ctx context.Context, userID string) ([]uuid.UUID, error) {
	ctx, cancel := d.withTimeout(ctx)
	defer cancel()

	const query = `
		SELECT series_id
		FROM favorites
		WHERE user_id = $1
		ORDER BY created_at DESC, series_id`

	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, userID)
	metrics.RecordDBQuery("get_favorites", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("query favorites: %w", err)
	}
	defer rows.Close()

	return scanIDs(rows)
}

// GetWatchedSeriesIDs resolves the user's watch history through the
// episode-to-series relation and returns distinct series, most recently
// watched first.
func (d *Database) GetWatchedSeriesIDs(ctx context.Context, userID string) ([]uuid.UUID, error) {
	ctx, cancel := d.withTimeout(ctx)
	defer cancel()

	const query = `
		SELECT e.series_id
		FROM watch_history w
		JOIN episodes e ON e.id = w.episode_id
		WHERE w.user_id = $1
		GROUP BY e.series_id
		ORDER BY MAX(w.watched_at) DESC, e.series_id`

	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, userID)
	metrics.RecordDBQuery("get_watch_history", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("query watch history: %w", err)
	}
	defer rows.Close()

	return scanIDs(rows)
}

// scanIDs drains a single-column UUID result set.
func scanIDs(rows *sql.Rows) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan id row: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate id rows: %w", err)
	}
	return ids, nil
}
