// Libreria - Bookstore Recommendation Service
// Copyright 2026 gnouvdev
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gnouvdev/libreria

package catalog

import (
	"context"
	"fmt"
	"os"

	json "github.com/goccy/go-json"
)

// Provider fetches the full catalog. Implementations must be safe for
// concurrent use; the recommendation engine calls FetchAll from whichever
// goroutine triggers a rebuild.
type Provider interface {
	FetchAll(ctx context.Context) ([]Book, error)
}

// FileProvider loads the catalog from a JSON seed file on every fetch.
// The file holds a plain array of Book objects.
type FileProvider struct {
	path string
}

// NewFileProvider returns a provider reading from the given path.
func NewFileProvider(path string) *FileProvider {
	return &FileProvider{path: path}
}

// FetchAll reads and decodes the seed file.
func (p *FileProvider) FetchAll(ctx context.Context) ([]Book, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(p.path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file %s: %w", p.path, err)
	}

	var books []Book
	if err := json.Unmarshal(data, &books); err != nil {
		return nil, fmt.Errorf("decode catalog file %s: %w", p.path, err)
	}

	return books, nil
}

// StaticProvider serves a fixed in-memory catalog. Primarily for tests and
// for the embedded demo seed.
type StaticProvider struct {
	books []Book
	err   error
}

// NewStaticProvider returns a provider serving the given books.
func NewStaticProvider(books []Book) *StaticProvider {
	return &StaticProvider{books: books}
}

// NewFailingProvider returns a provider that always fails with err.
func NewFailingProvider(err error) *StaticProvider {
	return &StaticProvider{err: err}
}

// FetchAll returns the fixed catalog (or the configured error).
func (p *StaticProvider) FetchAll(ctx context.Context) ([]Book, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if p.err != nil {
		return nil, p.err
	}

	books := make([]Book, len(p.books))
	copy(books, p.books)
	return books, nil
}
