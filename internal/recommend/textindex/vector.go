// Libreria - Bookstore Recommendation Service
// Copyright 2026 gnouvdev
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gnouvdev/libreria

package textindex

import "math"

// TermVector is a sparse mapping from term to TF-IDF weight.
// Weights are always non-negative; a term absent from the mapping has
// implicit weight 0.
type TermVector map[string]float64

// Norm returns the Euclidean norm of the vector.
func (v TermVector) Norm() float64 {
	var sum float64
	for _, w := range v {
		sum += w * w
	}
	return math.Sqrt(sum)
}

// Dot returns the dot product of v with q, iterating over the terms of q.
// Terms absent from either vector contribute 0.
func (v TermVector) Dot(q TermVector) float64 {
	var dot float64
	for term, qw := range q {
		if vw, ok := v[term]; ok {
			dot += vw * qw
		}
	}
	return dot
}

// Cosine returns the cosine similarity between a document vector and a query
// vector given their precomputed norms. Returns 0 when either norm is not
// positive. With non-negative weights the result is always in [0, 1].
func Cosine(doc TermVector, docNorm float64, query TermVector, queryNorm float64) float64 {
	if docNorm <= 0 || queryNorm <= 0 {
		return 0
	}
	return doc.Dot(query) / (docNorm * queryNorm)
}
