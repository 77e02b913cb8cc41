// Mawja - Bilingual Series Streaming Recommendations
// Copyright 2026 Mawja Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mawja-tv/mawja

package api

import (
	"net/http"
	"time"

	"github.com/mawja-tv/mawja/internal/logging"
)

// handleHealth reports overall service health including the database.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := "healthy"
	code := http.StatusOK
	dbStatus := "up"

	if err := s.db.Ping(r.Context()); err != nil {
		logging.Ctx(r.Context()).Warn().
			Err(err).
			Msg("Health check database ping failed")
		status = "degraded"
		code = http.StatusServiceUnavailable
		dbStatus = "down"
	}

	respondJSON(w, r, code, map[string]any{
		"status":    status,
		"database":  dbStatus,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// handleLiveness reports process liveness only; no dependency checks.
func (s *Server) handleLiveness(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, map[string]string{"status": "alive"})
}

// handleReadiness reports whether the service can serve traffic.
func (s *Server) handleReadiness(w http.ResponseWriter, r *http.Request) {
	if err := s.db.Ping(r.Context()); err != nil {
		respondError(w, r, http.StatusServiceUnavailable, "database unavailable")
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]string{"status": "ready"})
}
