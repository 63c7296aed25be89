// Wisata - Tourism Destination Recommendation API
// Copyright 2026 Wisata Jogja
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wisatajogja/wisata

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/wisatajogja/wisata/internal/config"
	"github.com/wisatajogja/wisata/internal/middleware"
)

// NewRouter assembles the chi router with the full middleware stack.
func NewRouter(h *Handlers, sec config.SecurityConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   sec.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	if !sec.RateLimitDisabled {
		r.Use(httprate.LimitByIP(sec.RateLimitReqs, sec.RateLimitWindow))
	}
	r.Use(middleware.Prometheus)

	r.Get("/", h.Root)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", h.Health)
		r.Get("/destinations", h.ListDestinations)
		r.Post("/destinations", h.CreateDestination)
		r.Get("/destinations/search", h.SearchDestinations)
		r.Get("/destinations/detail", h.GetDestinationDetail)
		r.Get("/categories", h.ListCategories)
		r.Get("/recommendations", h.GetRecommendations)
	})

	return r
}
