// StreamRec - Hybrid Recommendation Engine for Streaming Media Datasets
// Copyright 2026 Streamlytics
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/streamlytics/streamrec

// Package config provides layered configuration for StreamRec.
//
// Configuration is loaded with Koanf v2 from three layers, in order of
// increasing priority: built-in defaults, an optional YAML config file,
// and environment variables.
package config

import "time"

// Config is the top-level application configuration.
type Config struct {
	Database  DatabaseConfig  `koanf:"database"`
	Server    ServerConfig    `koanf:"server"`
	Logging   LoggingConfig   `koanf:"logging"`
	Recommend RecommendConfig `koanf:"recommend"`
}

// DatabaseConfig configures the embedded DuckDB store.
type DatabaseConfig struct {
	// Path is the DuckDB database file. Empty means in-memory.
	Path string `koanf:"path"`

	// MaxMemory is the DuckDB memory limit (e.g. "2GB").
	MaxMemory string `koanf:"max_memory" validate:"required"`

	// Threads is the DuckDB thread count. 0 means runtime.NumCPU().
	Threads int `koanf:"threads" validate:"gte=0"`

	// SeedMockData seeds the streaming star schema with sample rows on
	// startup. Intended for local runs and demos only.
	SeedMockData bool `koanf:"seed_mock_data"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Host    string        `koanf:"host" validate:"required"`
	Port    int           `koanf:"port" validate:"gte=1,lte=65535"`
	Timeout time.Duration `koanf:"timeout" validate:"gt=0"`

	// RateLimitReqs is the per-IP request budget per RateLimitWindow.
	RateLimitReqs   int           `koanf:"rate_limit_reqs" validate:"gte=1"`
	RateLimitWindow time.Duration `koanf:"rate_limit_window" validate:"gt=0"`

	// CORSAllowedOrigins lists the origins allowed to call the API from
	// a browser. Empty disables CORS entirely rather than defaulting to
	// a wildcard.
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins"`
}

// LoggingConfig configures the global zerolog logger.
type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn error fatal disabled"`
	Format string `koanf:"format" validate:"oneof=json console"`
	Caller bool   `koanf:"caller"`
}

// RecommendConfig configures the recommendation engine.
type RecommendConfig struct {
	// LikedThreshold is the rating above which a content item counts as
	// liked for content-based filtering. Ratings use a 0-5 scale where 0
	// means unrated.
	LikedThreshold float64 `koanf:"liked_threshold" validate:"gte=0,lte=5"`

	// TopK is the maximum recommendation list length.
	TopK int `koanf:"top_k" validate:"gte=1"`

	// UnratedPolicy selects how 0 sentinel ratings are treated:
	// "zero" keeps them as literal zero ratings (legacy-compatible),
	// "exclude" masks them out of similarity and error computations.
	UnratedPolicy string `koanf:"unrated_policy" validate:"oneof=zero exclude"`

	// CycleTimeout bounds a single recommend-and-evaluate cycle.
	CycleTimeout time.Duration `koanf:"cycle_timeout" validate:"gt=0"`
}

// defaultConfig returns a Config with all default values. Defaults are
// applied first, then overridden by the config file and environment.
func defaultConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Path:         "/data/streamrec.duckdb",
			MaxMemory:    "2GB",
			Threads:      0, // 0 = use runtime.NumCPU()
			SeedMockData: false,
		},
		Server: ServerConfig{
			Host:               "0.0.0.0",
			Port:               8480,
			Timeout:            30 * time.Second,
			RateLimitReqs:      100,
			RateLimitWindow:    time.Minute,
			CORSAllowedOrigins: nil, // CORS off until origins are configured
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Recommend: RecommendConfig{
			LikedThreshold: 3,
			TopK:           5,
			UnratedPolicy:  "zero",
			CycleTimeout:   30 * time.Second,
		},
	}
}
