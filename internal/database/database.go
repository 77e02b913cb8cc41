// Mawja - Bilingual Series Streaming Recommendations
// Copyright 2026 Mawja Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mawja-tv/mawja

// Package database provides the PostgreSQL read model for the service.
//
// All access goes through database/sql with the pgx stdlib driver. Queries
// are plain SQL with positional parameters, each wrapped in its own timeout
// derived from the configured query timeout. The package exposes typed
// fetch methods; the recommendation engine consumes them through the
// RecommendationStore adapter in store.go.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx database/sql driver
	"github.com/rs/zerolog"

	"github.com/mawja-tv/mawja/internal/config"
)

// Database wraps the connection pool and query configuration.
type Database struct {
	db           *sql.DB
	queryTimeout time.Duration
	logger       zerolog.Logger
}

// New opens a connection pool against the configured PostgreSQL instance and
// verifies connectivity before returning.
func New(ctx context.Context, cfg config.DatabaseConfig, logger zerolog.Logger) (*Database, error) {
	db, err := sql.Open("pgx", cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, cfg.QueryTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	logger.Info().
		Int("max_open_conns", cfg.MaxOpenConns).
		Int("max_idle_conns", cfg.MaxIdleConns).
		Msg("Database connection established")

	return &Database{
		db:           db,
		queryTimeout: cfg.QueryTimeout,
		logger:       logger.With().Str("component", "database").Logger(),
	}, nil
}

// Ping verifies the pool can still reach the database. Used by the readiness
// probe.
func (d *Database) Ping(ctx context.Context) error {
	ctx, cancel := d.withTimeout(ctx)
	defer cancel()
	return d.db.PingContext(ctx)
}

// Close releases the connection pool.
func (d *Database) Close() error {
	return d.db.Close()
}

// withTimeout derives the per-query deadline from the parent context.
func (d *Database) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, d.queryTimeout)
}
