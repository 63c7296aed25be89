// Wisata - Tourism Destination Recommendation API
// Copyright 2026 Wisata Jogja
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wisatajogja/wisata

package config

import (
	"testing"
	"time"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config failed validation: %v", err)
	}

	if cfg.Server.Port != 8000 {
		t.Errorf("expected default port 8000, got %d", cfg.Server.Port)
	}
	if cfg.API.DefaultLimit != 50 || cfg.API.MaxLimit != 100 {
		t.Errorf("unexpected default limits: %d/%d", cfg.API.DefaultLimit, cfg.API.MaxLimit)
	}
	if cfg.Recommend.MaxFeatures != 1000 {
		t.Errorf("expected 1000 max features, got %d", cfg.Recommend.MaxFeatures)
	}
	if cfg.Recommend.NgramMin != 1 || cfg.Recommend.NgramMax != 2 {
		t.Errorf("unexpected ngram range: %d..%d", cfg.Recommend.NgramMin, cfg.Recommend.NgramMax)
	}
}

func TestValidateCrossFieldConstraints(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid defaults",
			mutate:  func(*Config) {},
			wantErr: false,
		},
		{
			name: "default limit above max",
			mutate: func(c *Config) {
				c.API.DefaultLimit = 200
			},
			wantErr: true,
		},
		{
			name: "recommend default k above max",
			mutate: func(c *Config) {
				c.API.RecommendDefaultK = 50
			},
			wantErr: true,
		},
		{
			name: "inverted ngram range",
			mutate: func(c *Config) {
				c.Recommend.NgramMin = 3
			},
			wantErr: true,
		},
		{
			name: "seeding without dataset path",
			mutate: func(c *Config) {
				c.Seed.Enabled = true
				c.Seed.DatasetPath = ""
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestServerAddr(t *testing.T) {
	s := ServerConfig{Host: "127.0.0.1", Port: 8000, Timeout: time.Second}
	if got := s.Addr(); got != "127.0.0.1:8000" {
		t.Errorf("Addr() = %q, want 127.0.0.1:8000", got)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		env  string
		want string
	}{
		{"PORT", "server.port"},
		{"DATABASE_PATH", "database.path"},
		{"LOG_LEVEL", "logging.level"},
		{"CORS_ORIGINS", "security.cors_origins"},
		{"PATH", ""},
		{"HOME", ""},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			if got := envTransformFunc(tt.env); got != tt.want {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.env, got, tt.want)
			}
		})
	}
}

func TestLoadWithEnvOverride(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("expected PORT override 9090, got %d", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected LOG_LEVEL override debug, got %q", cfg.Logging.Level)
	}
	want := []string{"https://a.example", "https://b.example"}
	if len(cfg.Security.CORSOrigins) != len(want) {
		t.Fatalf("expected %d CORS origins, got %v", len(want), cfg.Security.CORSOrigins)
	}
	for i, origin := range want {
		if cfg.Security.CORSOrigins[i] != origin {
			t.Errorf("origin[%d] = %q, want %q", i, cfg.Security.CORSOrigins[i], origin)
		}
	}
}
