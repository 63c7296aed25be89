// Wisata - Tourism Destination Recommendation API
// Copyright 2026 Wisata Jogja
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wisatajogja/wisata

// Package metrics defines the Prometheus collectors exported at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts API requests by method, route, and status.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "wisata",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests processed.",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration tracks request latency by method and route.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "wisata",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// DBQueryDuration tracks store query latency by operation.
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "wisata",
			Subsystem: "db",
			Name:      "query_duration_seconds",
			Help:      "Destination store query latency in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	// DBQueryErrors counts failed store queries by operation.
	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "wisata",
			Subsystem: "db",
			Name:      "query_errors_total",
			Help:      "Total number of failed destination store queries.",
		},
		[]string{"operation"},
	)

	// RecommendBuildDuration tracks the per-request pipeline rebuild
	// time (documents + TF-IDF + similarity matrix).
	RecommendBuildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "wisata",
			Subsystem: "recommend",
			Name:      "build_duration_seconds",
			Help:      "Similarity matrix rebuild time in seconds.",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
	)

	// RecommendCorpusSize records the corpus size of the last rebuild.
	RecommendCorpusSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "wisata",
			Subsystem: "recommend",
			Name:      "corpus_size",
			Help:      "Number of destinations in the last similarity matrix.",
		},
	)

	// RecommendNotFound counts recommendation queries for unknown titles.
	RecommendNotFound = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "wisata",
			Subsystem: "recommend",
			Name:      "not_found_total",
			Help:      "Total number of recommendation queries for unknown titles.",
		},
	)
)
