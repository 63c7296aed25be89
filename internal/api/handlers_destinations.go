// Wisata - Tourism Destination Recommendation API
// Copyright 2026 Wisata Jogja
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wisatajogja/wisata

package api

import (
	"errors"
	"net/http"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/wisatajogja/wisata/internal/database"
	"github.com/wisatajogja/wisata/internal/logging"
	"github.com/wisatajogja/wisata/internal/recommend"
	"github.com/wisatajogja/wisata/internal/validation"
)

// ListDestinations serves GET /api/v1/destinations.
// An empty table is a 404, matching the public API contract.
func (h *Handlers) ListDestinations(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r, "limit", h.cfg.DefaultLimit, h.cfg.MaxLimit)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, CodeValidation, err.Error(), nil)
		return
	}

	dests, err := h.store.ListDestinations(r.Context(), limit)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to list destinations")
		respondError(w, r, http.StatusInternalServerError, CodeDatabaseError,
			"failed to load destinations", nil)
		return
	}
	if len(dests) == 0 {
		respondError(w, r, http.StatusNotFound, CodeNotFound,
			"no destinations found", nil)
		return
	}

	respondJSON(w, r, http.StatusOK, map[string]any{
		"destinations": dests,
		"total":        len(dests),
	})
}

// CreateDestination serves POST /api/v1/destinations.
func (h *Handlers) CreateDestination(w http.ResponseWriter, r *http.Request) {
	var req CreateDestinationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, http.StatusBadRequest, CodeValidation,
			"invalid JSON body", nil)
		return
	}

	if err := validation.ValidateStruct(&req); err != nil {
		var rve *validation.RequestValidationError
		if errors.As(err, &rve) {
			respondError(w, r, http.StatusBadRequest, CodeValidation,
				"request validation failed", rve.Fields)
			return
		}
		respondError(w, r, http.StatusBadRequest, CodeValidation, err.Error(), nil)
		return
	}

	if err := h.store.InsertDestination(r.Context(), req.Title, req.District, req.Categories, req.URL); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Str("title", req.Title).Msg("Failed to insert destination")
		respondError(w, r, http.StatusInternalServerError, CodeDatabaseError,
			"failed to store destination", nil)
		return
	}

	logging.Ctx(r.Context()).Info().Str("title", req.Title).Msg("Destination created")
	respondJSON(w, r, http.StatusCreated, map[string]string{
		"message": "destination created",
		"title":   strings.TrimSpace(req.Title),
	})
}

// SearchDestinations serves GET /api/v1/destinations/search.
// Zero matches is a valid empty result with total 0.
func (h *Handlers) SearchDestinations(w http.ResponseWriter, r *http.Request) {
	pattern := strings.TrimSpace(r.URL.Query().Get("q"))
	if pattern == "" {
		respondError(w, r, http.StatusBadRequest, CodeValidation,
			"query parameter q is required", nil)
		return
	}

	dests, err := h.store.SearchDestinationsByTitle(r.Context(), pattern)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Str("pattern", pattern).Msg("Destination search failed")
		respondError(w, r, http.StatusInternalServerError, CodeDatabaseError,
			"destination search failed", nil)
		return
	}
	if dests == nil {
		dests = []recommend.Destination{}
	}

	respondJSON(w, r, http.StatusOK, map[string]any{
		"destinations": dests,
		"total":        len(dests),
		"query":        pattern,
	})
}

// GetDestinationDetail serves GET /api/v1/destinations/detail.
func (h *Handlers) GetDestinationDetail(w http.ResponseWriter, r *http.Request) {
	title := strings.TrimSpace(r.URL.Query().Get("title"))
	if title == "" {
		respondError(w, r, http.StatusBadRequest, CodeValidation,
			"query parameter title is required", nil)
		return
	}

	dest, err := h.store.GetDestinationByTitle(r.Context(), title)
	if errors.Is(err, database.ErrNotFound) {
		respondError(w, r, http.StatusNotFound, CodeNotFound,
			"destination not found", nil)
		return
	}
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Str("title", title).Msg("Destination detail lookup failed")
		respondError(w, r, http.StatusInternalServerError, CodeDatabaseError,
			"destination lookup failed", nil)
		return
	}

	respondJSON(w, r, http.StatusOK, map[string]any{
		"destination": dest,
	})
}
