// Libreria - Bookstore Recommendation Service
// Copyright 2026 gnouvdev
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gnouvdev/libreria

package recommend

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/gnouvdev/libreria/internal/catalog"
	"github.com/gnouvdev/libreria/internal/recommend/occasion"
	"github.com/gnouvdev/libreria/internal/recommend/textindex"
)

// ErrNotReady is returned when ranking is requested before any rebuild has
// succeeded and the catalog cannot be fetched either.
var ErrNotReady = errors.New("recommend: model not built and catalog unavailable")

// Engine holds the contextual recommendation model and rebuilds it lazily.
// It is safe for concurrent use.
type Engine struct {
	config   *Config
	logger   zerolog.Logger
	provider catalog.Provider

	// clock is injectable for tests; defaults to time.Now.
	clock func() time.Time

	// mu guards model. rebuildMu serializes rebuilds so concurrent stale
	// requests trigger exactly one catalog fetch; the losers block and then
	// reuse the winner's model.
	mu        sync.RWMutex
	model     *model
	rebuildMu sync.Mutex
}

// model is one immutable build of the vector space. Swapped atomically
// under Engine.mu; readers snapshot the pointer and never mutate it.
type model struct {
	index      *textindex.Index
	books      []catalog.Book
	byID       map[string]int
	maxReviews int
	builtAt    time.Time
}

// NewEngine creates an engine over the given catalog provider.
// A nil config selects DefaultConfig.
func NewEngine(cfg *Config, provider catalog.Provider, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if provider == nil {
		return nil, errors.New("recommend: catalog provider is required")
	}

	return &Engine{
		config:   cfg,
		logger:   logger.With().Str("component", "recommend").Logger(),
		provider: provider,
		clock:    time.Now,
	}, nil
}

// Rebuild fetches the catalog and rebuilds the vector space. On fetch
// failure the previous model (if any) is kept untouched and the error is
// returned. Concurrent callers are serialized; a caller that was blocked
// behind a successful rebuild returns without building again.
func (e *Engine) Rebuild(ctx context.Context) error {
	e.rebuildMu.Lock()
	defer e.rebuildMu.Unlock()

	// Another goroutine may have finished a rebuild while we waited.
	if !e.IsStale() {
		return nil
	}
	return e.rebuild(ctx)
}

// ForceRebuild rebuilds unconditionally, serialized with Rebuild. Exposed
// for the operational rebuild endpoint.
func (e *Engine) ForceRebuild(ctx context.Context) error {
	e.rebuildMu.Lock()
	defer e.rebuildMu.Unlock()
	return e.rebuild(ctx)
}

// rebuild does the actual fetch and build. Caller holds rebuildMu.
func (e *Engine) rebuild(ctx context.Context) error {
	start := e.clock()
	books, err := e.provider.FetchAll(ctx)
	if err != nil {
		e.logger.Error().Err(err).Msg("catalog fetch failed, keeping previous model")
		return fmt.Errorf("fetch catalog: %w", err)
	}

	docs := make([]textindex.Document, len(books))
	maxReviews := 1
	byID := make(map[string]int, len(books))
	for i, b := range books {
		docs[i] = textindex.Document{ID: b.ID, Text: b.SearchText()}
		byID[b.ID] = i
		if b.NumReviews > maxReviews {
			maxReviews = b.NumReviews
		}
	}

	index := textindex.Build(docs)
	m := &model{
		index:      index,
		books:      books,
		byID:       byID,
		maxReviews: maxReviews,
		builtAt:    e.clock(),
	}

	e.mu.Lock()
	e.model = m
	e.mu.Unlock()

	e.logger.Info().
		Int("books", len(books)).
		Int("indexed", index.Documents).
		Int("vocabulary", len(index.IDF)).
		Dur("took", e.clock().Sub(start)).
		Msg("model rebuilt")
	return nil
}

// DefaultLimit exposes the configured default result count for callers
// that accept an optional limit.
func (e *Engine) DefaultLimit() int {
	return e.config.DefaultLimit
}

// IsStale reports whether the model is missing or past its TTL.
func (e *Engine) IsStale() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.model == nil || e.clock().Sub(e.model.builtAt) > e.config.TTL
}

// Status reports the current model state.
func (e *Engine) Status() Status {
	e.mu.RLock()
	m := e.model
	e.mu.RUnlock()

	st := Status{
		Stale: e.IsStale(),
		TTL:   e.config.TTL,
	}
	if m != nil {
		st.Ready = true
		st.Books = len(m.books)
		st.IndexedDocuments = m.index.Documents
		st.VocabularySize = len(m.index.IDF)
		st.BuiltAt = m.builtAt
	}
	return st
}

// Rank produces a ranked recommendation list for the request's date.
//
// A stale model is rebuilt first; if the rebuild fails but an older model
// exists, ranking proceeds on the stale model rather than failing the
// request. Dates with occasion tags go through the TF-IDF content model,
// all others through the popularity fallback.
func (e *Engine) Rank(ctx context.Context, req Request) (*Response, error) {
	m, err := e.ensureFresh(ctx)
	if err != nil {
		return nil, err
	}

	date := req.Date
	if date.IsZero() {
		date = e.clock()
	}
	occCtx := occasion.Detect(date)

	// A non-positive limit yields an empty list; supplying the default for
	// an absent limit is the HTTP layer's job.
	if req.Limit <= 0 {
		return &Response{
			Books:       []ScoredBook{},
			Context:     occCtx,
			GeneratedAt: e.clock(),
		}, nil
	}
	limit := req.Limit
	if limit > e.config.MaxLimit {
		limit = e.config.MaxLimit
	}
	if !occCtx.HasTags() {
		return e.rankByPopularity(m, occCtx, limit), nil
	}

	// The occasion name rides along with the tags; normalization splits it
	// on the " & " joiner.
	tokens := textindex.Tokenize(strings.Join(occCtx.Tags, " ") + " " + occCtx.Name)
	query, queryNorm := m.index.QueryVector(tokens, timeBoost(occCtx))
	if query == nil {
		// Occasion terms all fell outside the catalog vocabulary.
		return e.rankByPopularity(m, occCtx, limit), nil
	}

	now := e.clock()
	scored := make([]ScoredBook, 0, len(m.index.Entries))
	for _, entry := range m.index.Entries {
		sim := textindex.Cosine(entry.Vector, entry.Norm, query, queryNorm)
		if sim <= 0 {
			continue
		}

		book := m.books[m.byID[entry.ID]]
		pop := popularityScore(book, m.maxReviews)
		rec := recencyScore(book, now)
		score := e.config.SimilarityWeight*sim +
			e.config.PopularityWeight*pop +
			e.config.RecencyWeight*rec
		if score <= 0 {
			continue
		}

		scored = append(scored, ScoredBook{
			Book:       book,
			Score:      score,
			Similarity: sim,
			Popularity: pop,
			Recency:    rec,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	if len(scored) > limit {
		scored = scored[:limit]
	}

	return &Response{
		Books:       scored,
		Context:     occCtx,
		UsedModel:   ModelContextual,
		QueryTerms:  tokens,
		VectorSize:  len(query),
		GeneratedAt: now,
	}, nil
}

// rankByPopularity orders the indexed entries by the popularity component.
// Books that produced no tokens have no entry and are skipped, matching the
// contextual branch.
func (e *Engine) rankByPopularity(m *model, occCtx occasion.Context, limit int) *Response {
	now := e.clock()

	scored := make([]ScoredBook, 0, len(m.index.Entries))
	for _, entry := range m.index.Entries {
		book := m.books[m.byID[entry.ID]]
		pop := popularityScore(book, m.maxReviews)
		scored = append(scored, ScoredBook{
			Book:       book,
			Score:      pop,
			Popularity: pop,
			Recency:    recencyScore(book, now),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	if len(scored) > limit {
		scored = scored[:limit]
	}

	return &Response{
		Books:       scored,
		Context:     occCtx,
		UsedModel:   ModelPopularity,
		GeneratedAt: now,
	}
}

// ensureFresh returns a model to rank with, rebuilding first when stale.
// A failed rebuild degrades to the previous model when one exists.
func (e *Engine) ensureFresh(ctx context.Context) (*model, error) {
	if e.IsStale() {
		if err := e.Rebuild(ctx); err != nil {
			e.mu.RLock()
			m := e.model
			e.mu.RUnlock()
			if m == nil {
				return nil, fmt.Errorf("%w: %v", ErrNotReady, err)
			}
			e.logger.Warn().Err(err).Time("built_at", m.builtAt).Msg("serving stale model")
			return m, nil
		}
	}

	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.model, nil
}
