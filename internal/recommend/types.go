// Libreria - Bookstore Recommendation Service
// Copyright 2026 gnouvdev
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gnouvdev/libreria

package recommend

import (
	"time"

	"github.com/gnouvdev/libreria/internal/catalog"
	"github.com/gnouvdev/libreria/internal/recommend/occasion"
)

// Model names reported in responses and status.
const (
	// ModelContextual is the TF-IDF content model driven by the occasion
	// calendar.
	ModelContextual = "tfidf_contextual"

	// ModelPopularity is the popularity-only fallback used when the date
	// carries no occasion signal (or the query degenerates).
	ModelPopularity = "popularity_fallback"
)

// Request asks for a ranked list of books for a given date.
type Request struct {
	// Date is the reference date for occasion detection. Zero means "now"
	// per the engine clock.
	Date time.Time

	// Limit caps the result count. Zero or negative yields an empty list;
	// values above the configured maximum are clamped.
	Limit int
}

// ScoredBook is one ranked result with its score breakdown.
type ScoredBook struct {
	catalog.Book

	// Score is the blended ranking score.
	Score float64 `json:"score"`

	// Similarity is the cosine similarity against the occasion query.
	// Zero under the popularity fallback.
	Similarity float64 `json:"similarity"`

	// Popularity is the rating/review/trending component in [0, 1].
	Popularity float64 `json:"popularity"`

	// Recency is the catalog-age component in [0.5, 1].
	Recency float64 `json:"recency"`
}

// Response is a ranked recommendation list plus the context that produced it.
type Response struct {
	// Books is the ranked result list, best first.
	Books []ScoredBook `json:"books"`

	// Context is the occasion context the ranking used.
	Context occasion.Context `json:"context"`

	// UsedModel names the model that produced the ranking.
	UsedModel string `json:"used_model"`

	// QueryTerms are the normalized occasion terms the query vector was
	// built from. Empty under the popularity fallback.
	QueryTerms []string `json:"query_terms,omitempty"`

	// VectorSize is the number of non-zero query vector terms.
	VectorSize int `json:"vector_size,omitempty"`

	// GeneratedAt is when the response was produced.
	GeneratedAt time.Time `json:"generated_at"`
}

// Status describes the current model state for operational endpoints.
type Status struct {
	// Ready is true once at least one rebuild has succeeded.
	Ready bool `json:"ready"`

	// Stale is true when the model is past its TTL (or never built).
	Stale bool `json:"stale"`

	// Books is the catalog size of the current model.
	Books int `json:"books"`

	// IndexedDocuments is the number of books with a content vector.
	IndexedDocuments int `json:"indexed_documents"`

	// VocabularySize is the indexed term count.
	VocabularySize int `json:"vocabulary_size"`

	// BuiltAt is when the current model was built. Zero when never built.
	BuiltAt time.Time `json:"built_at,omitempty"`

	// TTL is the configured rebuild interval.
	TTL time.Duration `json:"ttl"`
}
