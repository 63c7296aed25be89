// Wisata - Tourism Destination Recommendation API
// Copyright 2026 Wisata Jogja
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wisatajogja/wisata

// Package config loads and validates application configuration.
//
// Configuration is layered: struct defaults, then an optional YAML file,
// then environment variables. Later layers override earlier ones.
package config

import (
	"fmt"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server" validate:"required"`
	Database  DatabaseConfig  `koanf:"database" validate:"required"`
	Seed      SeedConfig      `koanf:"seed"`
	API       APIConfig       `koanf:"api"`
	Recommend RecommendConfig `koanf:"recommend"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host        string        `koanf:"host" validate:"required"`
	Port        int           `koanf:"port" validate:"required,min=1,max=65535"`
	Timeout     time.Duration `koanf:"timeout" validate:"required"`
	Environment string        `koanf:"environment" validate:"required,oneof=development staging production"`
}

// DatabaseConfig holds DuckDB settings.
type DatabaseConfig struct {
	// Path is the database file location. ":memory:" selects an
	// in-memory database, used by tests.
	Path                   string `koanf:"path" validate:"required"`
	MaxMemory              string `koanf:"max_memory"`
	Threads                int    `koanf:"threads" validate:"min=0"`
	PreserveInsertionOrder bool   `koanf:"preserve_insertion_order"`
}

// SeedConfig controls initial dataset loading.
type SeedConfig struct {
	// Enabled loads the CSV dataset into an empty destinations table
	// at startup.
	Enabled bool `koanf:"enabled"`
	// DatasetPath is the CSV file with the destination corpus.
	DatasetPath string `koanf:"dataset_path"`
}

// APIConfig holds request limit settings.
type APIConfig struct {
	DefaultLimit      int `koanf:"default_limit" validate:"min=1"`
	MaxLimit          int `koanf:"max_limit" validate:"min=1"`
	RecommendDefaultK int `koanf:"recommend_default_k" validate:"min=1"`
	RecommendMaxK     int `koanf:"recommend_max_k" validate:"min=1"`
}

// RecommendConfig holds feature extraction settings.
type RecommendConfig struct {
	MaxFeatures int     `koanf:"max_features" validate:"min=1"`
	NgramMin    int     `koanf:"ngram_min" validate:"min=1"`
	NgramMax    int     `koanf:"ngram_max" validate:"min=1"`
	MinDocFreq  int     `koanf:"min_doc_freq" validate:"min=1"`
	MaxDocShare float64 `koanf:"max_doc_share" validate:"gt=0,lte=1"`
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs" validate:"min=1"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds log output settings.
type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn error"`
	Format string `koanf:"format" validate:"oneof=json console"`
	Caller bool   `koanf:"caller"`
}

// Default returns the configuration defaults applied before file and
// environment overrides.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:        "0.0.0.0",
			Port:        8000,
			Timeout:     30 * time.Second,
			Environment: "development",
		},
		Database: DatabaseConfig{
			Path:                   "data/wisata.db",
			MaxMemory:              "512MB",
			Threads:                0,
			PreserveInsertionOrder: true,
		},
		Seed: SeedConfig{
			Enabled:     true,
			DatasetPath: "data/destinations.csv",
		},
		API: APIConfig{
			DefaultLimit:      50,
			MaxLimit:          100,
			RecommendDefaultK: 5,
			RecommendMaxK:     20,
		},
		Recommend: RecommendConfig{
			MaxFeatures: 1000,
			NgramMin:    1,
			NgramMax:    2,
			MinDocFreq:  1,
			MaxDocShare: 0.95,
		},
		Security: SecurityConfig{
			CORSOrigins:     []string{"*"},
			RateLimitReqs:   100,
			RateLimitWindow: time.Minute,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Validate checks cross-field constraints not expressible as struct tags.
func (c *Config) Validate() error {
	if c.API.DefaultLimit > c.API.MaxLimit {
		return fmt.Errorf("api.default_limit (%d) exceeds api.max_limit (%d)",
			c.API.DefaultLimit, c.API.MaxLimit)
	}
	if c.API.RecommendDefaultK > c.API.RecommendMaxK {
		return fmt.Errorf("api.recommend_default_k (%d) exceeds api.recommend_max_k (%d)",
			c.API.RecommendDefaultK, c.API.RecommendMaxK)
	}
	if c.Recommend.NgramMin > c.Recommend.NgramMax {
		return fmt.Errorf("recommend.ngram_min (%d) exceeds recommend.ngram_max (%d)",
			c.Recommend.NgramMin, c.Recommend.NgramMax)
	}
	if c.Seed.Enabled && c.Seed.DatasetPath == "" {
		return fmt.Errorf("seed.dataset_path is required when seeding is enabled")
	}
	return nil
}

// Addr returns the host:port listen address.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
