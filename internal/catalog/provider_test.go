// Libreria - Bookstore Recommendation Service
// Copyright 2026 gnouvdev
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gnouvdev/libreria

package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestFileProvider_FetchAll(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "books.json")

	seed := `[
		{"id": "b1", "title": "Dế Mèn Phiêu Lưu Ký", "description": "Truyện thiếu nhi kinh điển", "tags": ["thiếu nhi"], "rating": 4.8, "num_reviews": 1200},
		{"id": "b2", "title": "Clean Code", "description": "A handbook of agile software craftsmanship", "trending": true}
	]`
	if err := os.WriteFile(path, []byte(seed), 0o600); err != nil {
		t.Fatalf("write seed: %v", err)
	}

	books, err := NewFileProvider(path).FetchAll(context.Background())
	if err != nil {
		t.Fatalf("FetchAll() error = %v", err)
	}
	if len(books) != 2 {
		t.Fatalf("got %d books, want 2", len(books))
	}
	if books[0].ID != "b1" || books[0].Rating != 4.8 || books[0].NumReviews != 1200 {
		t.Errorf("unexpected first book: %+v", books[0])
	}
	if !books[1].Trending {
		t.Error("second book should be trending")
	}
}

func TestFileProvider_MissingFile(t *testing.T) {
	_, err := NewFileProvider(filepath.Join(t.TempDir(), "absent.json")).FetchAll(context.Background())
	if err == nil {
		t.Fatal("FetchAll() on missing file should fail")
	}
}

func TestFileProvider_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "books.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("write seed: %v", err)
	}

	_, err := NewFileProvider(path).FetchAll(context.Background())
	if err == nil {
		t.Fatal("FetchAll() on invalid JSON should fail")
	}
}

func TestStaticProvider_CopiesSlice(t *testing.T) {
	orig := []Book{{ID: "b1", Title: "Original"}}
	p := NewStaticProvider(orig)

	books, err := p.FetchAll(context.Background())
	if err != nil {
		t.Fatalf("FetchAll() error = %v", err)
	}

	books[0].Title = "Mutated"
	again, _ := p.FetchAll(context.Background())
	if again[0].Title != "Original" {
		t.Error("FetchAll() should return an independent copy")
	}
}

func TestStaticProvider_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewStaticProvider(nil).FetchAll(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("FetchAll() error = %v, want context.Canceled", err)
	}
}

func TestBreakerProvider_TripsAfterConsecutiveFailures(t *testing.T) {
	fetchErr := errors.New("upstream down")
	inner := NewFailingProvider(fetchErr)

	cfg := BreakerConfig{FailureThreshold: 3, Timeout: time.Minute, MaxRequests: 1}
	p := NewBreakerProvider(inner, cfg, zerolog.Nop())

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		if _, err := p.FetchAll(ctx); !errors.Is(err, fetchErr) {
			t.Fatalf("fetch %d: error = %v, want upstream error", i, err)
		}
	}

	// Breaker is now open; the inner provider must no longer be reached.
	if _, err := p.FetchAll(ctx); errors.Is(err, fetchErr) {
		t.Error("breaker should be open, got upstream error instead")
	} else if err == nil {
		t.Error("open breaker should fail the fetch")
	}
	if p.State() != "open" {
		t.Errorf("State() = %q, want open", p.State())
	}
}

func TestBreakerProvider_PassesThroughSuccess(t *testing.T) {
	inner := NewStaticProvider([]Book{{ID: "b1"}})
	p := NewBreakerProvider(inner, DefaultBreakerConfig(), zerolog.Nop())

	books, err := p.FetchAll(context.Background())
	if err != nil {
		t.Fatalf("FetchAll() error = %v", err)
	}
	if len(books) != 1 || books[0].ID != "b1" {
		t.Errorf("unexpected books: %+v", books)
	}
	if p.State() != "closed" {
		t.Errorf("State() = %q, want closed", p.State())
	}
}

func TestBook_SearchText(t *testing.T) {
	b := Book{
		Title:        "Đắc Nhân Tâm",
		Description:  "Nghệ thuật thu phục lòng người",
		Tags:         []string{"kỹ năng sống", "giao tiếp"},
		CategoryName: "Kỹ năng",
		AuthorName:   "Dale Carnegie",
	}

	text := b.SearchText()
	for _, want := range []string{"Đắc Nhân Tâm", "lòng người", "kỹ năng sống", "giao tiếp", "Kỹ năng", "Dale Carnegie"} {
		if !strings.Contains(text, want) {
			t.Errorf("SearchText() = %q, want it to contain %q", text, want)
		}
	}
}
