// Mawja - Bilingual Series Streaming Recommendations
// Copyright 2026 Mawja Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mawja-tv/mawja

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/mawja-tv/mawja/internal/auth"
	"github.com/mawja-tv/mawja/internal/logging"
	"github.com/mawja-tv/mawja/internal/metrics"
)

// handleRecommendations runs the recommendation pipeline for the
// authenticated caller. No request body is consumed; the caller's identity
// is the entire input.
func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())
	if userID == "" {
		// Unreachable behind Authenticate; kept so the handler fails
		// closed if the route is ever wired without it.
		respondError(w, r, http.StatusUnauthorized, "Unauthorized")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.cfg.Recommend.Timeout)
	defer cancel()

	start := time.Now()
	resp, err := s.engine.Recommend(ctx, userID)
	if err != nil {
		logging.Ctx(r.Context()).Error().
			Err(err).
			Str("user_id", userID).
			Msg("Recommendation pipeline failed")
		respondError(w, r, http.StatusInternalServerError, "failed to build recommendations")
		return
	}
	metrics.RecordEngineRun(time.Since(start), len(resp.Sections))

	respondJSON(w, r, http.StatusOK, resp)
}
