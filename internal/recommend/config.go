// Libreria - Bookstore Recommendation Service
// Copyright 2026 gnouvdev
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gnouvdev/libreria

package recommend

import (
	"fmt"
	"time"
)

// Config contains the tunables of the recommendation model.
type Config struct {
	// TTL is how long a built model stays fresh before the next request
	// (or the background refresher) triggers a rebuild.
	TTL time.Duration `json:"ttl"`

	// DefaultLimit is the result count when a request does not specify one.
	DefaultLimit int `json:"default_limit"`

	// MaxLimit caps the requested result count.
	MaxLimit int `json:"max_limit"`

	// SimilarityWeight scales the cosine similarity component.
	SimilarityWeight float64 `json:"similarity_weight"`

	// PopularityWeight scales the popularity component.
	PopularityWeight float64 `json:"popularity_weight"`

	// RecencyWeight scales the recency component.
	RecencyWeight float64 `json:"recency_weight"`
}

// DefaultConfig returns the production defaults.
func DefaultConfig() *Config {
	return &Config{
		TTL:              6 * time.Hour,
		DefaultLimit:     12,
		MaxLimit:         50,
		SimilarityWeight: 0.6,
		PopularityWeight: 0.3,
		RecencyWeight:    0.1,
	}
}

// Validate checks the configuration for internal consistency.
func (c *Config) Validate() error {
	if c.TTL <= 0 {
		return fmt.Errorf("ttl must be positive, got %v", c.TTL)
	}
	if c.DefaultLimit <= 0 {
		return fmt.Errorf("default_limit must be positive, got %d", c.DefaultLimit)
	}
	if c.MaxLimit < c.DefaultLimit {
		return fmt.Errorf("max_limit %d must be >= default_limit %d", c.MaxLimit, c.DefaultLimit)
	}
	for name, w := range map[string]float64{
		"similarity_weight": c.SimilarityWeight,
		"popularity_weight": c.PopularityWeight,
		"recency_weight":    c.RecencyWeight,
	} {
		if w < 0 || w > 1 {
			return fmt.Errorf("%s must be in [0, 1], got %v", name, w)
		}
	}
	return nil
}
