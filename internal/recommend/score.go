// Libreria - Bookstore Recommendation Service
// Copyright 2026 gnouvdev
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gnouvdev/libreria

package recommend

import (
	"math"
	"time"

	"github.com/gnouvdev/libreria/internal/catalog"
	"github.com/gnouvdev/libreria/internal/recommend/occasion"
)

// Time boost applied to the occasion query vector. An exact-day occasion
// boosts harder than one still days away; the decay loses 0.05 per day of
// distance inside the seven-day window.
const (
	exactDayBoost     = 1.2
	upcomingBaseBoost = 1.0
	upcomingDecayStep = 0.05
	degenerateBoost   = 0.8
)

// Recency tiers by catalog age. Books older than a year (and books with no
// creation date) share the floor tier instead of dropping to zero, so age
// alone never evicts a title from the ranking.
const (
	recencyFreshDays  = 90
	recencyRecentDays = 180
	recencyYearDays   = 365

	recencyFresh  = 1.0
	recencyRecent = 0.85
	recencyYear   = 0.7
	recencyFloor  = 0.5
)

// Popularity component weights.
const (
	ratingWeight   = 0.6
	reviewsWeight  = 0.3
	trendingWeight = 0.15
)

// timeBoost converts the occasion context into a query vector multiplier.
func timeBoost(ctx occasion.Context) float64 {
	switch {
	case ctx.IsExactDay:
		return exactDayBoost
	case ctx.IsUpcoming:
		days := float64(ctx.DaysUntil)
		return upcomingBaseBoost + math.Max(0, float64(upcomingWindow)-days)*upcomingDecayStep
	default:
		return degenerateBoost
	}
}

// upcomingWindow mirrors the occasion detector's lookahead.
const upcomingWindow = 7

// popularityScore blends average rating, review volume, and the trending
// flag into [0, 1]. Review volume is log-scaled against the largest review
// count in the catalog so one runaway bestseller does not flatten the rest.
func popularityScore(b catalog.Book, maxReviews int) float64 {
	score := ratingWeight * (b.Rating / 5)

	if b.NumReviews > 0 && maxReviews > 0 {
		ratio := math.Log10(float64(b.NumReviews)+1) / math.Log10(float64(maxReviews)+1)
		score += reviewsWeight * math.Min(1, ratio)
	}

	if b.Trending {
		score += trendingWeight
	}

	return math.Min(1, score)
}

// recencyScore maps catalog age to a tier. Books without a creation date
// get the floor tier.
func recencyScore(b catalog.Book, now time.Time) float64 {
	if b.CreatedAt.IsZero() {
		return recencyFloor
	}

	days := now.Sub(b.CreatedAt).Hours() / 24
	switch {
	case days <= recencyFreshDays:
		return recencyFresh
	case days <= recencyRecentDays:
		return recencyRecent
	case days <= recencyYearDays:
		return recencyYear
	default:
		return recencyFloor
	}
}
