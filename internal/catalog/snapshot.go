// Libreria - Bookstore Recommendation Service
// Copyright 2026 gnouvdev
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gnouvdev/libreria

package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

// Badger keys for the catalog snapshot.
const (
	snapshotKey     = "catalog:snapshot"
	snapshotMetaKey = "catalog:snapshot_meta"
)

// ErrNoSnapshot is returned by Load when no snapshot has been saved yet.
var ErrNoSnapshot = errors.New("catalog: no snapshot stored")

// snapshotMeta is the bookkeeping record stored alongside the book list.
type snapshotMeta struct {
	SavedAt   time.Time `json:"saved_at"`
	BookCount int       `json:"book_count"`
}

// SnapshotStore persists the last good catalog in BadgerDB so the service
// can keep serving recommendations across restarts and upstream outages.
type SnapshotStore struct {
	db *badger.DB
}

// NewSnapshotStore returns a store backed by the given Badger handle.
// The caller owns the handle and its lifecycle.
func NewSnapshotStore(db *badger.DB) *SnapshotStore {
	return &SnapshotStore{db: db}
}

// OpenSnapshotStore opens (or creates) a Badger database at path and wraps
// it in a SnapshotStore. Close releases the database.
func OpenSnapshotStore(path string) (*SnapshotStore, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil // Badger's own logger is too chatty for a side store

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open snapshot store %s: %w", path, err)
	}
	return &SnapshotStore{db: db}, nil
}

// Close closes the underlying database.
func (s *SnapshotStore) Close() error {
	return s.db.Close()
}

// Save overwrites the stored snapshot with the given catalog.
func (s *SnapshotStore) Save(books []Book) error {
	data, err := json.Marshal(books)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	meta, err := json.Marshal(snapshotMeta{SavedAt: time.Now().UTC(), BookCount: len(books)})
	if err != nil {
		return fmt.Errorf("marshal snapshot meta: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte(snapshotKey), data); err != nil {
			return fmt.Errorf("set snapshot: %w", err)
		}
		if err := txn.Set([]byte(snapshotMetaKey), meta); err != nil {
			return fmt.Errorf("set snapshot meta: %w", err)
		}
		return nil
	})
}

// Load returns the stored catalog and when it was saved.
// Returns ErrNoSnapshot when nothing has been saved yet.
func (s *SnapshotStore) Load() ([]Book, time.Time, error) {
	var books []Book
	var meta snapshotMeta

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(snapshotKey))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNoSnapshot
		}
		if err != nil {
			return fmt.Errorf("get snapshot: %w", err)
		}
		if err := item.Value(func(val []byte) error {
			return json.Unmarshal(val, &books)
		}); err != nil {
			return fmt.Errorf("decode snapshot: %w", err)
		}

		item, err = txn.Get([]byte(snapshotMetaKey))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil // pre-meta snapshot, tolerate
		}
		if err != nil {
			return fmt.Errorf("get snapshot meta: %w", err)
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &meta)
		})
	})
	if err != nil {
		return nil, time.Time{}, err
	}

	return books, meta.SavedAt, nil
}

// SnapshotProvider composes an inner provider with a SnapshotStore.
// Successful fetches refresh the snapshot; failed fetches fall back to the
// last stored catalog so one upstream outage does not blank the model.
type SnapshotProvider struct {
	inner  Provider
	store  *SnapshotStore
	logger zerolog.Logger
}

// NewSnapshotProvider wraps inner with snapshot persistence.
func NewSnapshotProvider(inner Provider, store *SnapshotStore, logger zerolog.Logger) *SnapshotProvider {
	return &SnapshotProvider{inner: inner, store: store, logger: logger}
}

// FetchAll fetches from the inner provider, persisting the result on
// success. On failure it serves the stored snapshot instead; the original
// fetch error is returned only when no snapshot exists either.
func (p *SnapshotProvider) FetchAll(ctx context.Context) ([]Book, error) {
	books, err := p.inner.FetchAll(ctx)
	if err == nil {
		if saveErr := p.store.Save(books); saveErr != nil {
			// Snapshot persistence is best effort; the fresh fetch still wins.
			p.logger.Warn().Err(saveErr).Msg("failed to persist catalog snapshot")
		}
		return books, nil
	}

	stored, savedAt, loadErr := p.store.Load()
	if loadErr != nil {
		if !errors.Is(loadErr, ErrNoSnapshot) {
			p.logger.Error().Err(loadErr).Msg("failed to load catalog snapshot")
		}
		return nil, err
	}

	p.logger.Warn().
		Err(err).
		Time("snapshot_saved_at", savedAt).
		Int("books", len(stored)).
		Msg("catalog fetch failed, serving stored snapshot")
	return stored, nil
}
