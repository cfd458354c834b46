// Libreria - Bookstore Recommendation Service
// Copyright 2026 gnouvdev
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gnouvdev/libreria

// Package metrics exposes the service's Prometheus instrumentation:
// model rebuilds, recommendation rankings, catalog fetches, and the HTTP
// surface.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Model metrics
	RebuildsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_rebuilds_total",
			Help: "Total model rebuilds by outcome",
		},
		[]string{"outcome"}, // "success", "failure"
	)

	RebuildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommend_rebuild_duration_seconds",
			Help:    "Duration of model rebuilds in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	IndexedDocuments = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "recommend_indexed_documents",
			Help: "Books with a content vector in the current model",
		},
	)

	VocabularySize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "recommend_vocabulary_terms",
			Help: "Distinct terms in the current model vocabulary",
		},
	)

	// Ranking metrics
	RankRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_rank_requests_total",
			Help: "Total ranking requests by model used",
		},
		[]string{"model"}, // "tfidf_contextual", "popularity_fallback"
	)

	RankDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommend_rank_duration_seconds",
			Help:    "Duration of ranking requests in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
	)

	// Catalog metrics
	CatalogFetchErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "catalog_fetch_errors_total",
			Help: "Total failed catalog fetches",
		},
	)

	CatalogBooks = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_books",
			Help: "Books in the current catalog",
		},
	)

	// HTTP metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
)

// RecordRebuild records one rebuild attempt.
func RecordRebuild(duration time.Duration, err error) {
	if err != nil {
		RebuildsTotal.WithLabelValues("failure").Inc()
		CatalogFetchErrors.Inc()
		return
	}
	RebuildsTotal.WithLabelValues("success").Inc()
	RebuildDuration.Observe(duration.Seconds())
}

// RecordRank records one ranking request.
func RecordRank(model string, duration time.Duration) {
	RankRequestsTotal.WithLabelValues(model).Inc()
	RankDuration.Observe(duration.Seconds())
}

// UpdateModelGauges refreshes the model-state gauges after a rebuild.
func UpdateModelGauges(books, indexed, vocabulary int) {
	CatalogBooks.Set(float64(books))
	IndexedDocuments.Set(float64(indexed))
	VocabularySize.Set(float64(vocabulary))
}
