// Libreria - Bookstore Recommendation Service
// Copyright 2026 gnouvdev
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gnouvdev/libreria

// Package textindex implements the text processing and TF-IDF vector space
// used by the contextual recommendation engine.
//
// The package has three responsibilities:
//
//   - Normalization: lowercase, Unicode NFD decomposition with combining
//     diacritical marks stripped, non-alphanumeric characters replaced by
//     spaces. Vietnamese text is reduced to its unaccented ASCII form so
//     that "Tết" and "tet" index to the same term.
//   - Tokenization: whitespace splitting with a fixed bilingual
//     (Vietnamese + English) stopword set and a minimum token length of 2.
//     Duplicates are preserved; term frequency depends on them.
//   - Indexing: a full TF-IDF index over a document set with smoothed
//     inverse document frequency, per-document sparse vectors, and
//     Euclidean norms floored at 1 to keep cosine division safe.
//
// All functions are pure and never return errors: empty or unusable input
// produces empty output.
package textindex
