// Libreria - Bookstore Recommendation Service
// Copyright 2026 gnouvdev
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gnouvdev/libreria

package textindex

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// minTokenLength is the minimum number of characters for a token to survive
// tokenization. Single characters carry no signal in either language.
const minTokenLength = 2

// Normalize lowercases the input, decomposes accented characters (Unicode
// NFD), strips combining diacritical marks (U+0300-U+036F), replaces any
// remaining character outside [a-z0-9] with a space, and collapses
// whitespace runs. The result contains only lowercase ASCII words separated
// by single spaces, so Normalize is idempotent.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	decomposed := norm.NFD.String(strings.ToLower(text))

	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		switch {
		case r >= 0x0300 && r <= 0x036F:
			// Combining diacritical mark left over from NFD decomposition.
			continue
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
		default:
			b.WriteByte(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// Tokenize normalizes the input, splits it on whitespace, and discards
// tokens shorter than two characters or present in the stopword set.
// Output order matches input order and duplicates are preserved so that
// term frequency can be computed downstream.
func Tokenize(text string) []string {
	normalized := Normalize(text)
	if normalized == "" {
		return nil
	}

	fields := strings.Fields(normalized)
	tokens := make([]string, 0, len(fields))
	for _, tok := range fields {
		if len(tok) < minTokenLength {
			continue
		}
		if _, stop := stopwords[tok]; stop {
			continue
		}
		tokens = append(tokens, tok)
	}

	if len(tokens) == 0 {
		return nil
	}
	return tokens
}

// TermCounts computes raw term frequencies for a token sequence.
// Returns the counts and the total token count.
func TermCounts(tokens []string) (map[string]int, int) {
	if len(tokens) == 0 {
		return nil, 0
	}

	counts := make(map[string]int, len(tokens))
	for _, tok := range tokens {
		counts[tok]++
	}
	return counts, len(tokens)
}
