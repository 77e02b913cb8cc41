// Mawja - Bilingual Series Streaming Recommendations
// Copyright 2026 Mawja Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mawja-tv/mawja

// Package recommend implements the per-request recommendation engine for the
// Mawja catalog.
//
// # Architecture
//
// Every authenticated request runs the same four-stage pipeline from scratch:
//
//   - Interaction Collector: the catalog item IDs the caller has favorited or
//     watched, fetched concurrently from the store
//   - Taste Profiler: genre and tag frequency counts over the interacted items
//   - Candidate Scorer: a weighted linear score for every item the caller has
//     not interacted with
//   - Section Builder: "because you watched X" groups, a catch-all
//     "recommended" group, and the cold-start "popular" group
//
// # Design Principles
//
//   - Stateless: no state survives a request; repeated identical requests over
//     an unchanged catalog snapshot produce identical output
//   - Deterministic: every sort breaks score ties by item ID, so output order
//     never depends on map iteration or store row order
//   - Lenient on interaction fetches: a failed favorites or watch-history
//     query degrades to an empty result instead of failing the request; only
//     a failed catalog fetch is fatal
//
// # Scoring
//
// The global candidate score is a fixed linear heuristic:
//
//	score = 3*Σ genreFreq + 2*Σ tagFreq + 0.5*log10(views+1) + 0.3*rating + 2*trending
//
// Genre matches dominate by design, tags are secondary, popularity and rating
// act as tie-breakers, and trending is a flat editorial bonus. The weights are
// a compatibility contract with the platform's existing clients; Config
// carries them so tests can exercise the shape of the formula, but production
// always runs the defaults.
//
// # Usage
//
//	engine, err := recommend.NewEngine(store, recommend.DefaultConfig(), logger)
//	if err != nil {
//	    return err
//	}
//	resp, err := engine.Recommend(ctx, userID)
//
// # Thread Safety
//
// The engine holds no mutable state after construction and is safe for
// concurrent use; each request builds its own profile and score tables.
//
// This package has no dependencies on other internal packages. The Store
// interface allows integration with the database package without creating
// circular imports.
package recommend
