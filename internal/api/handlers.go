// Wisata - Tourism Destination Recommendation API
// Copyright 2026 Wisata Jogja
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wisatajogja/wisata

package api

import (
	"context"
	"net/http"

	"github.com/wisatajogja/wisata/internal/config"
	"github.com/wisatajogja/wisata/internal/logging"
	"github.com/wisatajogja/wisata/internal/recommend"
)

// Version is the API version reported by the root endpoint.
const Version = "1.0.0"

// Store is the destination persistence surface the handlers depend on.
// *database.DB satisfies it.
type Store interface {
	ListDestinations(ctx context.Context, limit int) ([]recommend.Destination, error)
	InsertDestination(ctx context.Context, title, district string, categories []string, url string) error
	SearchDestinationsByTitle(ctx context.Context, pattern string) ([]recommend.Destination, error)
	GetDestinationByTitle(ctx context.Context, title string) (*recommend.Destination, error)
	ListCategories(ctx context.Context) ([]string, error)
	Ping(ctx context.Context) error
}

// Handlers holds the dependencies shared by all HTTP handlers.
type Handlers struct {
	store  Store
	engine *recommend.Engine
	cfg    config.APIConfig
}

// NewHandlers wires the handler set.
func NewHandlers(store Store, engine *recommend.Engine, cfg config.APIConfig) *Handlers {
	return &Handlers{store: store, engine: engine, cfg: cfg}
}

// Root serves service metadata.
func (h *Handlers) Root(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, map[string]any{
		"service": "wisata-api",
		"version": Version,
		"endpoints": []string{
			"/api/v1/destinations",
			"/api/v1/destinations/search",
			"/api/v1/destinations/detail",
			"/api/v1/categories",
			"/api/v1/recommendations",
			"/api/v1/health",
			"/metrics",
		},
	})
}

// Health reports liveness including a database ping.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(r.Context()); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Health check failed")
		respondJSON(w, r, http.StatusServiceUnavailable, map[string]string{
			"status":   "unavailable",
			"database": "down",
		})
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]string{
		"status":   "ok",
		"database": "up",
	})
}

// ListCategories serves the sorted distinct category values.
func (h *Handlers) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.store.ListCategories(r.Context())
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to list categories")
		respondError(w, r, http.StatusInternalServerError, CodeDatabaseError,
			"failed to load categories", nil)
		return
	}
	if categories == nil {
		categories = []string{}
	}
	respondJSON(w, r, http.StatusOK, map[string]any{
		"categories": categories,
		"total":      len(categories),
	})
}
