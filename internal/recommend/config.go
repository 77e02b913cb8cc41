// Mawja - Bilingual Series Streaming Recommendations
// Copyright 2026 Mawja Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mawja-tv/mawja

package recommend

import "fmt"

// Weights are the coefficients of the scoring formulas. The defaults are a
// compatibility contract with existing clients; changing them changes ranking
// for every caller.
type Weights struct {
	// Global score coefficients.
	Genre    float64 // per summed genre frequency
	Tag      float64 // per summed tag frequency
	Views    float64 // applied to log10(views+1)
	Rating   float64 // applied to the 0-10 rating
	Trending float64 // flat bonus for trending items

	// Match score coefficients for "because you watched" sections.
	MatchGenre  float64 // per genre shared with the source
	MatchTag    float64 // per tag shared with the source
	MatchGlobal float64 // applied to the candidate's global score
}

// Sections bound the size and number of output sections.
type Sections struct {
	// PopularSize caps the cold-start popular section.
	PopularSize int

	// SourceCount caps how many interacted series become section sources.
	SourceCount int

	// SourceSectionSize caps each "because you watched" section.
	SourceSectionSize int

	// SourceSectionMin drops a source section holding fewer matches.
	SourceSectionMin int

	// RecommendedSize caps the catch-all recommended section.
	RecommendedSize int
}

// Config carries every tunable of the engine.
type Config struct {
	Weights  Weights
	Sections Sections
}

// DefaultConfig returns the production configuration.
func DefaultConfig() *Config {
	return &Config{
		Weights: Weights{
			Genre:       3.0,
			Tag:         2.0,
			Views:       0.5,
			Rating:      0.3,
			Trending:    2.0,
			MatchGenre:  3.0,
			MatchTag:    2.0,
			MatchGlobal: 0.1,
		},
		Sections: Sections{
			PopularSize:       12,
			SourceCount:       3,
			SourceSectionSize: 8,
			SourceSectionMin:  2,
			RecommendedSize:   10,
		},
	}
}

// Validate checks structural sanity of the configuration.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("config is nil")
	}
	s := c.Sections
	if s.PopularSize <= 0 {
		return fmt.Errorf("popular size must be positive, got %d", s.PopularSize)
	}
	if s.SourceCount <= 0 {
		return fmt.Errorf("source count must be positive, got %d", s.SourceCount)
	}
	if s.SourceSectionSize <= 0 {
		return fmt.Errorf("source section size must be positive, got %d", s.SourceSectionSize)
	}
	if s.SourceSectionMin <= 0 {
		return fmt.Errorf("source section min must be positive, got %d", s.SourceSectionMin)
	}
	if s.SourceSectionMin > s.SourceSectionSize {
		return fmt.Errorf("source section min %d exceeds size %d", s.SourceSectionMin, s.SourceSectionSize)
	}
	if s.RecommendedSize <= 0 {
		return fmt.Errorf("recommended size must be positive, got %d", s.RecommendedSize)
	}
	w := c.Weights
	for _, v := range []struct {
		name string
		val  float64
	}{
		{"genre", w.Genre},
		{"tag", w.Tag},
		{"views", w.Views},
		{"rating", w.Rating},
		{"trending", w.Trending},
		{"match genre", w.MatchGenre},
		{"match tag", w.MatchTag},
		{"match global", w.MatchGlobal},
	} {
		if v.val < 0 {
			return fmt.Errorf("%s weight must be non-negative, got %g", v.name, v.val)
		}
	}
	return nil
}

// Clone returns a deep copy so callers can tweak a config without sharing.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}
	cp := *c
	return &cp
}
