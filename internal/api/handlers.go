// Libreria - Bookstore Recommendation Service
// Copyright 2026 gnouvdev
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gnouvdev/libreria

package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gnouvdev/libreria/internal/logging"
	"github.com/gnouvdev/libreria/internal/metrics"
	"github.com/gnouvdev/libreria/internal/recommend"
	"github.com/gnouvdev/libreria/internal/recommend/occasion"
)

// dateParam is the accepted layout of the optional date override.
const dateParam = "2006-01-02"

// handleContextual serves GET /api/v1/recommendations/contextual.
//
// Query parameters:
//
//	limit — result count (optional; defaults to the configured count,
//	        clamped by the engine)
//	date  — YYYY-MM-DD override for occasion detection (optional)
func (rt *Router) handleContextual(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	req := recommend.Request{Limit: rt.engine.DefaultLimit()}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			rw.BadRequest("limit must be a positive integer")
			return
		}
		req.Limit = limit
	}
	if raw := r.URL.Query().Get("date"); raw != "" {
		date, err := time.Parse(dateParam, raw)
		if err != nil {
			rw.BadRequest("date must be formatted YYYY-MM-DD")
			return
		}
		req.Date = date
	}

	start := time.Now()
	resp, err := rt.engine.Rank(r.Context(), req)
	if err != nil {
		if errors.Is(err, recommend.ErrNotReady) {
			rw.ServiceUnavailable("recommendation model unavailable")
			return
		}
		logger := logging.Ctx(r.Context())
		logger.Error().Err(err).Msg("ranking failed")
		rw.InternalError("ranking failed")
		return
	}
	metrics.RecordRank(resp.UsedModel, time.Since(start))

	rw.Success(resp)
}

// handleOccasions serves GET /api/v1/recommendations/occasions, reporting
// the occasion context for a date without ranking anything.
func (rt *Router) handleOccasions(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	date := time.Now()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse(dateParam, raw)
		if err != nil {
			rw.BadRequest("date must be formatted YYYY-MM-DD")
			return
		}
		date = parsed
	}

	rw.Success(struct {
		Date    string           `json:"date"`
		Context occasion.Context `json:"context"`
	}{
		Date:    date.Format(dateParam),
		Context: occasion.Detect(date),
	})
}

// handleStatus serves GET /api/v1/recommendations/status.
func (rt *Router) handleStatus(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(rt.engine.Status())
}

// handleRebuild serves POST /api/v1/recommendations/rebuild, forcing a
// model rebuild regardless of staleness.
func (rt *Router) handleRebuild(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	start := time.Now()
	err := rt.engine.ForceRebuild(r.Context())
	metrics.RecordRebuild(time.Since(start), err)
	if err != nil {
		logger := logging.Ctx(r.Context())
		logger.Error().Err(err).Msg("forced rebuild failed")
		rw.ServiceUnavailable("rebuild failed")
		return
	}

	st := rt.engine.Status()
	metrics.UpdateModelGauges(st.Books, st.IndexedDocuments, st.VocabularySize)
	rw.Accepted(st)
}

// handleHealth serves GET /healthz. The service is healthy as soon as the
// process runs; model readiness is reported separately in the body so
// orchestrators can probe liveness without coupling to catalog health.
func (rt *Router) handleHealth(w http.ResponseWriter, r *http.Request) {
	st := rt.engine.Status()
	NewResponseWriter(w, r).Success(struct {
		Status string `json:"status"`
		Ready  bool   `json:"model_ready"`
	}{
		Status: "ok",
		Ready:  st.Ready,
	})
}
