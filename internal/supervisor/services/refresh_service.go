// Libreria - Bookstore Recommendation Service
// Copyright 2026 gnouvdev
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gnouvdev/libreria

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/gnouvdev/libreria/internal/metrics"
)

// RebuildableEngine is the engine surface the refresher drives. Satisfied
// by *recommend.Engine; an interface keeps the import graph acyclic and the
// tests simple.
type RebuildableEngine interface {
	Rebuild(ctx context.Context) error
	IsStale() bool
}

// RefreshService keeps the recommendation model warm. It rebuilds once on
// startup and then checks at half the model TTL so a quiet service does not
// pay the rebuild cost on a user request.
type RefreshService struct {
	engine   RebuildableEngine
	interval time.Duration
	timeout  time.Duration
	logger   zerolog.Logger
	gauges   func()
}

// NewRefreshService creates the refresher. interval is typically half the
// model TTL; gauges, when non-nil, is invoked after every successful
// rebuild to refresh metrics (wired to the engine's status in main).
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewRefreshService(engine RebuildableEngine, interval time.Duration, logger zerolog.Logger, gauges func()) *RefreshService {
	if interval <= 0 {
		interval = 3 * time.Hour
	}
	return &RefreshService{
		engine:   engine,
		interval: interval,
		timeout:  5 * time.Minute,
		logger:   logger.With().Str("service", "model-refresh").Logger(),
		gauges:   gauges,
	}
}

// Serve implements suture.Service.
func (s *RefreshService) Serve(ctx context.Context) error {
	s.logger.Info().Dur("interval", s.interval).Msg("model refresher starting")

	// Warm the model immediately so the first user request is fast.
	s.refresh(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("model refresher shutting down")
			return ctx.Err()

		case <-ticker.C:
			if s.engine.IsStale() {
				s.refresh(ctx)
			}
		}
	}
}

func (s *RefreshService) refresh(ctx context.Context) {
	rebuildCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	err := s.engine.Rebuild(rebuildCtx)
	metrics.RecordRebuild(time.Since(start), err)
	if err != nil {
		s.logger.Warn().Err(err).Msg("scheduled rebuild failed")
		return
	}

	if s.gauges != nil {
		s.gauges()
	}
	s.logger.Info().Dur("took", time.Since(start)).Msg("scheduled rebuild complete")
}

// String returns the service name for supervisor logging.
func (s *RefreshService) String() string {
	return "model-refresh"
}
