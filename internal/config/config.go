// Mawja - Bilingual Series Streaming Recommendations
// Copyright 2026 Mawja Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mawja-tv/mawja

// Package config provides layered configuration for the Mawja recommendation
// service using Koanf v2.
//
// Configuration is loaded from three sources (highest priority wins):
//
//  1. Environment variables (DATABASE_URL, JWT_SECRET, HTTP_PORT, ...)
//  2. Optional YAML config file (config.yaml, or CONFIG_PATH override)
//  3. Built-in defaults
//
// The loaded configuration is validated before use; the service refuses to
// start with an invalid configuration.
package config

import "time"

// Config is the root configuration for the service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Database  DatabaseConfig  `koanf:"database"`
	Security  SecurityConfig  `koanf:"security"`
	Recommend RecommendConfig `koanf:"recommend"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host        string        `koanf:"host"`
	Port        int           `koanf:"port" validate:"min=1,max=65535"`
	Timeout     time.Duration `koanf:"timeout"`     // Read/write timeout for the HTTP server
	Environment string        `koanf:"environment"` // "development" or "production"
}

// DatabaseConfig contains settings for the hosted Postgres store.
// The store is an external collaborator: this service only reads from it and
// owns no migrations.
type DatabaseConfig struct {
	URL             string        `koanf:"url"` // postgres:// connection string
	MaxOpenConns    int           `koanf:"max_open_conns" validate:"min=1"`
	MaxIdleConns    int           `koanf:"max_idle_conns" validate:"min=0"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
	QueryTimeout    time.Duration `koanf:"query_timeout"` // Per-query context timeout
}

// SecurityConfig contains authentication and transport hardening settings.
type SecurityConfig struct {
	// JWTSecret is the HMAC secret shared with the external identity
	// provider. Tokens are verified locally; this service never mints
	// tokens for end users.
	JWTSecret string `koanf:"jwt_secret"`

	// SessionTimeout bounds the validity of tokens minted by test tooling.
	SessionTimeout time.Duration `koanf:"session_timeout"`

	RateLimitReqs     int           `koanf:"rate_limit_requests" validate:"min=1"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`

	CORSOrigins []string `koanf:"cors_origins"`
}

// RecommendConfig contains section sizing for the recommendation engine.
// Scoring weights are part of the engine's compatibility contract and are
// not configurable here; see the recommend package.
type RecommendConfig struct {
	PopularSize       int           `koanf:"popular_size" validate:"min=1"`        // Cold-start popular section size
	SourceCount       int           `koanf:"source_count" validate:"min=1"`        // Max "because you watched" sections
	SourceSectionSize int           `koanf:"source_section_size" validate:"min=1"` // Items per source section
	SourceSectionMin  int           `koanf:"source_section_min" validate:"min=1"`  // Below this a source section is dropped
	RecommendedSize   int           `koanf:"recommended_size" validate:"min=1"`    // Catch-all section size
	Timeout           time.Duration `koanf:"timeout"`                              // Per-request pipeline timeout
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level" validate:"omitempty,oneof=trace debug info warn warning error fatal panic disabled"`
	Format string `koanf:"format" validate:"omitempty,oneof=json console"`
	Caller bool   `koanf:"caller"`
}

// defaultConfig returns a Config struct with all sensible default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:        "0.0.0.0",
			Port:        8788,
			Timeout:     30 * time.Second,
			Environment: "development",
		},
		Database: DatabaseConfig{
			URL:             "",
			MaxOpenConns:    8,
			MaxIdleConns:    4,
			ConnMaxLifetime: 30 * time.Minute,
			QueryTimeout:    10 * time.Second,
		},
		Security: SecurityConfig{
			JWTSecret:         "",
			SessionTimeout:    24 * time.Hour,
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
			CORSOrigins:       []string{},
		},
		Recommend: RecommendConfig{
			PopularSize:       12,
			SourceCount:       3,
			SourceSectionSize: 8,
			SourceSectionMin:  2,
			RecommendedSize:   10,
			Timeout:           10 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}
