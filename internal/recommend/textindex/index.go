// Libreria - Bookstore Recommendation Service
// Copyright 2026 gnouvdev
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gnouvdev/libreria

package textindex

import "math"

// Document is a unit of text to index, identified by the caller's ID.
type Document struct {
	ID   string
	Text string
}

// Entry is the indexed form of a single document: its sparse TF-IDF vector
// and the vector's Euclidean norm, floored at 1 so cosine division is
// always safe.
type Entry struct {
	ID     string
	Vector TermVector
	Norm   float64
}

// Index is a TF-IDF vector space built over a document set.
// Documents that produced no tokens are excluded entirely: they have no
// entry and can never be retrieved by content similarity.
type Index struct {
	// Documents is the number of documents that produced at least one token.
	Documents int

	// IDF maps each term of the corpus vocabulary to its smoothed inverse
	// document frequency: ln((1+N)/(1+df)) + 1.
	IDF map[string]float64

	// Entries holds one entry per indexed document, in input order.
	Entries []Entry
}

// Build constructs a TF-IDF index over the given documents.
// An empty input yields a valid empty index, never nil.
func Build(docs []Document) *Index {
	type tokenized struct {
		id     string
		counts map[string]int
		total  int
	}

	kept := make([]tokenized, 0, len(docs))
	df := make(map[string]int)

	for _, doc := range docs {
		counts, total := TermCounts(Tokenize(doc.Text))
		if total == 0 {
			continue
		}
		kept = append(kept, tokenized{id: doc.ID, counts: counts, total: total})
		for term := range counts {
			df[term]++
		}
	}

	n := len(kept)
	idf := make(map[string]float64, len(df))
	for term, freq := range df {
		idf[term] = math.Log(float64(1+n)/float64(1+freq)) + 1
	}

	entries := make([]Entry, 0, n)
	for _, doc := range kept {
		vector := make(TermVector, len(doc.counts))
		for term, count := range doc.counts {
			vector[term] = float64(count) / float64(doc.total) * idf[term]
		}

		norm := vector.Norm()
		if norm < 1 {
			norm = 1
		}

		entries = append(entries, Entry{ID: doc.id, Vector: vector, Norm: norm})
	}

	return &Index{
		Documents: n,
		IDF:       idf,
		Entries:   entries,
	}
}

// QueryVector builds a query vector from a token multiset, restricted to the
// index vocabulary: terms unseen during indexing contribute nothing. Each
// retained term is weighted by (count/total) * idf * boost. Returns the
// vector and its norm, or (nil, 0) when no term survives filtering.
func (ix *Index) QueryVector(tokens []string, boost float64) (TermVector, float64) {
	counts, total := TermCounts(tokens)
	if total == 0 {
		return nil, 0
	}

	vector := make(TermVector, len(counts))
	for term, count := range counts {
		idf, ok := ix.IDF[term]
		if !ok {
			continue
		}
		vector[term] = float64(count) / float64(total) * idf * boost
	}

	if len(vector) == 0 {
		return nil, 0
	}
	return vector, vector.Norm()
}
