// Libreria - Bookstore Recommendation Service
// Copyright 2026 gnouvdev
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gnouvdev/libreria

// Package catalog provides read access to the book catalog for the
// recommendation engine.
//
// The engine only needs flattened records (author and category names
// already attached), exposed through the Provider interface. Concrete
// providers can be composed:
//
//	file -> breaker -> snapshot
//
// FileProvider reads a JSON seed file, BreakerProvider trips a circuit
// breaker on repeated fetch failures, and SnapshotProvider persists the
// last good catalog in Badger so a restart (or an upstream outage) can
// keep serving the previous state.
package catalog
