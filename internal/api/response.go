// Mawja - Bilingual Series Streaming Recommendations
// Copyright 2026 Mawja Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mawja-tv/mawja

// Package api wires the HTTP surface: routing, middleware, handlers and
// response encoding for the recommendation service.
package api

import (
	"net/http"

	json "github.com/goccy/go-json"

	"github.com/mawja-tv/mawja/internal/logging"
)

// respondJSON writes a JSON body with the given status. Encoding failures
// are logged but cannot be reported to the client since the header is
// already written.
func respondJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.Ctx(r.Context()).Error().
			Err(err).
			Msg("Failed to encode response body")
	}
}

// respondError writes the flat error shape clients expect. The message must
// stay generic; operational detail belongs in the log, not the wire.
func respondError(w http.ResponseWriter, r *http.Request, status int, message string) {
	respondJSON(w, r, status, map[string]string{"error": message})
}
