// Wisata - Tourism Destination Recommendation API
// Copyright 2026 Wisata Jogja
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wisatajogja/wisata

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/wisatajogja/wisata/internal/logging"
)

// configFilePaths are searched in order for an optional YAML config file.
var configFilePaths = []string{
	"config.yaml",
	"config.yml",
	"config/config.yaml",
	"/etc/wisata/config.yaml",
}

// sliceConfigPaths lists koanf paths whose environment values are
// comma-separated lists rather than scalars.
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// Load builds the application configuration from three layers:
//
//  1. struct defaults
//  2. an optional YAML config file (first match in configFilePaths,
//     or the WISATA_CONFIG_FILE override)
//  3. environment variables
//
// The merged result is validated before being returned.
func Load() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: defaults.
	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	// Layer 2: optional config file.
	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
		logging.Info().Str("path", path).Msg("Loaded configuration file")
	}

	// Layer 3: environment variables.
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	processSliceFields(k)

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// findConfigFile returns the first existing config file path, honoring
// the WISATA_CONFIG_FILE environment override.
func findConfigFile() string {
	if path := os.Getenv("WISATA_CONFIG_FILE"); path != "" {
		return path
	}
	for _, path := range configFilePaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// envMappings maps environment variable names to koanf config paths.
// Variables not listed here are ignored.
var envMappings = map[string]string{
	"HOST":        "server.host",
	"PORT":        "server.port",
	"TIMEOUT":     "server.timeout",
	"ENVIRONMENT": "server.environment",

	"DATABASE_PATH":              "database.path",
	"DUCKDB_MAX_MEMORY":          "database.max_memory",
	"DUCKDB_THREADS":             "database.threads",
	"DUCKDB_PRESERVE_INSERT_ORD": "database.preserve_insertion_order",

	"SEED_ENABLED":      "seed.enabled",
	"SEED_DATASET_PATH": "seed.dataset_path",

	"API_DEFAULT_LIMIT":       "api.default_limit",
	"API_MAX_LIMIT":           "api.max_limit",
	"API_RECOMMEND_DEFAULT_K": "api.recommend_default_k",
	"API_RECOMMEND_MAX_K":     "api.recommend_max_k",

	"RECOMMEND_MAX_FEATURES":  "recommend.max_features",
	"RECOMMEND_NGRAM_MIN":     "recommend.ngram_min",
	"RECOMMEND_NGRAM_MAX":     "recommend.ngram_max",
	"RECOMMEND_MIN_DOC_FREQ":  "recommend.min_doc_freq",
	"RECOMMEND_MAX_DOC_SHARE": "recommend.max_doc_share",

	"CORS_ORIGINS":        "security.cors_origins",
	"RATE_LIMIT_REQS":     "security.rate_limit_reqs",
	"RATE_LIMIT_WINDOW":   "security.rate_limit_window",
	"RATE_LIMIT_DISABLED": "security.rate_limit_disabled",

	"LOG_LEVEL":  "logging.level",
	"LOG_FORMAT": "logging.format",
	"LOG_CALLER": "logging.caller",
}

// envTransformFunc maps recognized environment variables onto koanf
// config paths. Unrecognized variables map to the empty string, which
// koanf skips.
func envTransformFunc(s string) string {
	if path, ok := envMappings[s]; ok {
		return path
	}
	return ""
}

// processSliceFields splits comma-separated environment values into
// string slices for the paths in sliceConfigPaths. Environment variables
// can only carry scalars, so list-valued settings arrive comma-joined.
func processSliceFields(k *koanf.Koanf) {
	for _, path := range sliceConfigPaths {
		raw := k.Get(path)
		s, ok := raw.(string)
		if !ok {
			continue
		}
		parts := strings.Split(s, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		_ = k.Set(path, out)
	}
}
