// Libreria - Bookstore Recommendation Service
// Copyright 2026 gnouvdev
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gnouvdev/libreria

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gnouvdev/libreria/internal/middleware"
	"github.com/gnouvdev/libreria/internal/recommend"
)

// RouterConfig tunes the HTTP surface.
type RouterConfig struct {
	// RateLimit is the per-IP request budget per minute.
	RateLimit int

	// CORSOrigins lists allowed origins. "*" allows all.
	CORSOrigins []string
}

// DefaultRouterConfig returns the production defaults.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		RateLimit:   120,
		CORSOrigins: []string{"*"},
	}
}

// Router serves the recommendation API.
type Router struct {
	engine *recommend.Engine
	cfg    RouterConfig
}

// NewRouter creates the API router over the given engine.
func NewRouter(engine *recommend.Engine, cfg RouterConfig) *Router {
	if cfg.RateLimit <= 0 {
		cfg.RateLimit = DefaultRouterConfig().RateLimit
	}
	if len(cfg.CORSOrigins) == 0 {
		cfg.CORSOrigins = DefaultRouterConfig().CORSOrigins
	}
	return &Router{engine: engine, cfg: cfg}
}

// Handler builds the chi handler tree.
func (rt *Router) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Prometheus)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: rt.cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))
	r.Use(httprate.LimitByIP(rt.cfg.RateLimit, time.Minute))

	r.Get("/healthz", rt.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/v1/recommendations", func(r chi.Router) {
		r.Get("/contextual", rt.handleContextual)
		r.Get("/occasions", rt.handleOccasions)
		r.Get("/status", rt.handleStatus)
		r.Post("/rebuild", rt.handleRebuild)
	})

	return r
}
