// Wisata - Tourism Destination Recommendation API
// Copyright 2026 Wisata Jogja
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wisatajogja/wisata

package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/wisatajogja/wisata/internal/database"
	"github.com/wisatajogja/wisata/internal/logging"
	"github.com/wisatajogja/wisata/internal/metrics"
	"github.com/wisatajogja/wisata/internal/recommend"
)

// GetRecommendations serves GET /api/v1/recommendations.
//
// Pipeline outcomes map to statuses: unknown title and unusable corpus
// are 404, store failures are 500 DATABASE_ERROR, anything else is 500
// INTERNAL_ERROR. An unknown title carries suggestion titles in the
// error details when a substring scan found near matches.
func (h *Handlers) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.URL.Query().Get("destination_name"))
	if name == "" {
		respondError(w, r, http.StatusBadRequest, CodeValidation,
			"query parameter destination_name is required", nil)
		return
	}

	k, err := parseLimit(r, "limit", h.cfg.RecommendDefaultK, h.cfg.RecommendMaxK)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, CodeValidation, err.Error(), nil)
		return
	}

	recs, err := h.engine.Recommend(r.Context(), name, k)
	if err != nil {
		h.respondRecommendError(w, r, name, err)
		return
	}

	respondJSON(w, r, http.StatusOK, map[string]any{
		"recommendations": recs,
		"total":           len(recs),
		"query":           name,
	})
}

func (h *Handlers) respondRecommendError(w http.ResponseWriter, r *http.Request, name string, err error) {
	log := logging.Ctx(r.Context())

	var nf *recommend.NotFoundError
	switch {
	case errors.As(err, &nf):
		metrics.RecommendNotFound.Inc()
		var details any
		if len(nf.Suggestions) > 0 {
			details = map[string]any{"suggestions": nf.Suggestions}
		}
		respondError(w, r, http.StatusNotFound, CodeNotFound, nf.Error(), details)

	case errors.Is(err, recommend.ErrEmptyCorpus), errors.Is(err, recommend.ErrDegenerateCorpus):
		log.Warn().Err(err).Msg("Recommendation corpus unusable")
		respondError(w, r, http.StatusNotFound, CodeNotFound,
			"no recommendations available", nil)

	case errors.Is(err, database.ErrConnection), errors.Is(err, database.ErrQuery):
		log.Error().Err(err).Str("query", name).Msg("Recommendation store failure")
		respondError(w, r, http.StatusInternalServerError, CodeDatabaseError,
			"failed to load destinations", nil)

	default:
		log.Error().Err(err).Str("query", name).Msg("Recommendation pipeline failure")
		respondError(w, r, http.StatusInternalServerError, CodeInternalError,
			"recommendation failed", nil)
	}
}
