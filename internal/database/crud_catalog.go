// Mawja - Bilingual Series Streaming Recommendations
// Copyright 2026 Mawja Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mawja-tv/mawja

package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mawja-tv/mawja/internal/metrics"
	"github.com/mawja-tv/mawja/internal/recommend"
)

// GetCatalogItems returns every active series with the fields the engine
// scores on. Genres and tags are stored as comma-separated text and split
// here.
func (d *Database) GetCatalogItems(ctx context.Context) ([]recommend.Item, error) {
	ctx, cancel := d.withTimeout(ctx)
	defer cancel()

	const query = `
		SELECT
			id,
			COALESCE(title_ar, ''),
			COALESCE(title_en, ''),
			COALESCE(description_ar, ''),
			COALESCE(description_en, ''),
			COALESCE(slug, ''),
			COALESCE(genres, ''),
			COALESCE(tags, ''),
			COALESCE(rating, 0),
			COALESCE(total_views, 0),
			COALESCE(is_trending, FALSE),
			created_at
		FROM series
		WHERE is_active = TRUE
		ORDER BY created_at DESC, id`

	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query)
	metrics.RecordDBQuery("get_catalog", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("query catalog: %w", err)
	}
	defer rows.Close()

	var items []recommend.Item
	for rows.Next() {
		var (
			it           recommend.Item
			genres, tags string
		)
		if err := rows.Scan(
			&it.ID,
			&it.TitleAr,
			&it.TitleEn,
			&it.DescriptionAr,
			&it.DescriptionEn,
			&it.Slug,
			&genres,
			&tags,
			&it.Rating,
			&it.TotalViews,
			&it.Trending,
			&it.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan catalog row: %w", err)
		}
		it.Genres = splitAndTrim(genres)
		it.Tags = splitAndTrim(tags)
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate catalog rows: %w", err)
	}
	return items, nil
}

// splitAndTrim splits a comma-separated label column into clean parts,
// dropping empties.
func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
