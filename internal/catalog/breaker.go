// Libreria - Bookstore Recommendation Service
// Copyright 2026 gnouvdev
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gnouvdev/libreria

package catalog

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"
)

// BreakerConfig tunes the catalog fetch circuit breaker.
type BreakerConfig struct {
	// FailureThreshold is the consecutive-failure count that trips the breaker.
	FailureThreshold uint32

	// Timeout is how long the breaker stays open before a half-open probe.
	Timeout time.Duration

	// MaxRequests is the half-open probe budget.
	MaxRequests uint32
}

// DefaultBreakerConfig returns conservative defaults: trip after three
// consecutive failures, probe again after thirty seconds.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		FailureThreshold: 3,
		Timeout:          30 * time.Second,
		MaxRequests:      1,
	}
}

// BreakerProvider wraps an inner provider with a circuit breaker so a
// misbehaving catalog source fails fast instead of stalling every rebuild.
type BreakerProvider struct {
	inner Provider
	cb    *gobreaker.CircuitBreaker[[]Book]
}

// NewBreakerProvider wraps inner with a circuit breaker using cfg.
// State transitions are logged at warn level.
func NewBreakerProvider(inner Provider, cfg BreakerConfig, logger zerolog.Logger) *BreakerProvider {
	settings := gobreaker.Settings{
		Name:        "catalog-fetch",
		MaxRequests: cfg.MaxRequests,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("catalog breaker state change")
		},
	}

	return &BreakerProvider{
		inner: inner,
		cb:    gobreaker.NewCircuitBreaker[[]Book](settings),
	}
}

// FetchAll delegates to the inner provider through the breaker. While the
// breaker is open the fetch fails immediately with gobreaker.ErrOpenState.
func (p *BreakerProvider) FetchAll(ctx context.Context) ([]Book, error) {
	return p.cb.Execute(func() ([]Book, error) {
		return p.inner.FetchAll(ctx)
	})
}

// State returns the breaker state for status reporting.
func (p *BreakerProvider) State() string {
	return p.cb.State().String()
}
