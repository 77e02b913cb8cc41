// Mawja - Bilingual Series Streaming Recommendations
// Copyright 2026 Mawja Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mawja-tv/mawja

package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/mawja-tv/mawja/internal/auth"
	"github.com/mawja-tv/mawja/internal/config"
	"github.com/mawja-tv/mawja/internal/recommend"
)

// Pinger reports backend connectivity for the readiness probe.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server holds the handler dependencies.
type Server struct {
	cfg    *config.Config
	engine *recommend.Engine
	db     Pinger
	logger zerolog.Logger
}

// NewServer creates the HTTP server facade.
func NewServer(cfg *config.Config, engine *recommend.Engine, db Pinger, logger zerolog.Logger) *Server {
	return &Server{
		cfg:    cfg,
		engine: engine,
		db:     db,
		logger: logger.With().Str("component", "api").Logger(),
	}
}

// Routes assembles the full router. Health and metrics endpoints sit outside
// authentication and rate limiting; the recommendation endpoint requires a
// valid bearer token.
func (s *Server) Routes(authMgr *auth.Manager) chi.Router {
	r := chi.NewRouter()

	r.Use(RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(RequestLogger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.cfg.Security.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(SecurityHeaders)

	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	r.Route("/api/v1/health", func(r chi.Router) {
		r.Get("/", s.handleHealth)
		r.Get("/live", s.handleLiveness)
		r.Get("/ready", s.handleReadiness)
	})

	r.Group(func(r chi.Router) {
		if !s.cfg.Security.RateLimitDisabled {
			r.Use(httprate.LimitByIP(s.cfg.Security.RateLimitReqs, s.cfg.Security.RateLimitWindow))
		}
		r.Use(PrometheusMetrics)
		r.Use(authMgr.Authenticate)

		r.Post("/api/v1/recommendations", s.handleRecommendations)
	})

	return r
}
