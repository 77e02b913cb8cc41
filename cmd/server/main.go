// Mawja - Bilingual Series Streaming Recommendations
// Copyright 2026 Mawja Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mawja-tv/mawja

// Command server runs the Mawja recommendation API.
//
// Configuration loads from defaults, an optional YAML file and environment
// variables, in ascending precedence. See internal/config for the full
// surface; DATABASE_URL and JWT_SECRET are the two required settings.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mawja-tv/mawja/internal/api"
	"github.com/mawja-tv/mawja/internal/auth"
	"github.com/mawja-tv/mawja/internal/config"
	"github.com/mawja-tv/mawja/internal/database"
	"github.com/mawja-tv/mawja/internal/logging"
	"github.com/mawja-tv/mawja/internal/recommend"
)

const shutdownTimeout = 15 * time.Second

func main() {
	if err := run(); err != nil {
		logging.Error().Err(err).Msg("Server exited with error")
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})
	logger := logging.Logger()
	logger.Info().
		Str("environment", cfg.Server.Environment).
		Str("log_level", cfg.Logging.Level).
		Msg("Starting Mawja recommendation service")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.New(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn().Err(err).Msg("Database close failed")
		}
	}()

	engineCfg := recommend.DefaultConfig()
	engineCfg.Sections.PopularSize = cfg.Recommend.PopularSize
	engineCfg.Sections.SourceCount = cfg.Recommend.SourceCount
	engineCfg.Sections.SourceSectionSize = cfg.Recommend.SourceSectionSize
	engineCfg.Sections.SourceSectionMin = cfg.Recommend.SourceSectionMin
	engineCfg.Sections.RecommendedSize = cfg.Recommend.RecommendedSize

	engine, err := recommend.NewEngine(database.NewRecommendationStore(db), engineCfg, logger)
	if err != nil {
		return fmt.Errorf("create engine: %w", err)
	}

	authMgr, err := auth.NewManager(cfg.Security.JWTSecret, cfg.Security.SessionTimeout)
	if err != nil {
		return fmt.Errorf("create auth manager: %w", err)
	}

	srv := api.NewServer(cfg, engine, db, logger)
	httpSrv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           srv.Routes(authMgr),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", httpSrv.Addr).Msg("HTTP server listening")
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
		logger.Info().Msg("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	logger.Info().Msg("Server stopped cleanly")
	return nil
}
