// Libreria - Bookstore Recommendation Service
// Copyright 2026 gnouvdev
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gnouvdev/libreria

// Package recommend implements the contextual recommendation model.
//
// The model is a TF-IDF vector space over the book catalog, built lazily
// and rebuilt when its TTL expires. At query time the occasion calendar
// turns the current date into topical query terms; books are ranked by a
// blend of content similarity, popularity, and catalog recency. When the
// date carries no occasion signal the engine falls back to a pure
// popularity ordering.
package recommend
