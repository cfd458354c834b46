// Libreria - Bookstore Recommendation Service
// Copyright 2026 gnouvdev
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gnouvdev/libreria

package textindex

import (
	"math"
	"testing"
)

func buildTestIndex() *Index {
	return Build([]Document{
		{ID: "1", Text: "truyện tranh thiếu nhi vui nhộn"},
		{ID: "2", Text: "truyện trinh thám kịch tính"},
		{ID: "3", Text: "sách dạy nấu ăn gia đình"},
	})
}

func TestBuild(t *testing.T) {
	ix := buildTestIndex()

	if ix.Documents != 3 {
		t.Fatalf("Documents = %d, want 3", ix.Documents)
	}
	if len(ix.Entries) != 3 {
		t.Fatalf("len(Entries) = %d, want 3", len(ix.Entries))
	}

	// Entries keep input order.
	for i, wantID := range []string{"1", "2", "3"} {
		if ix.Entries[i].ID != wantID {
			t.Errorf("Entries[%d].ID = %q, want %q", i, ix.Entries[i].ID, wantID)
		}
	}
}

func TestBuild_EmptyInput(t *testing.T) {
	ix := Build(nil)
	if ix == nil {
		t.Fatal("Build(nil) returned nil")
	}
	if ix.Documents != 0 || len(ix.Entries) != 0 || len(ix.IDF) != 0 {
		t.Errorf("empty build = %+v, want zero index", ix)
	}
}

func TestBuild_ExcludesZeroTokenDocuments(t *testing.T) {
	ix := Build([]Document{
		{ID: "1", Text: "sách hay"},
		{ID: "2", Text: "và của là"}, // stopwords only
		{ID: "3", Text: ""},
	})

	if ix.Documents != 1 {
		t.Errorf("Documents = %d, want 1", ix.Documents)
	}
	if len(ix.Entries) != 1 || ix.Entries[0].ID != "1" {
		t.Errorf("Entries = %v, want only document 1", ix.Entries)
	}
}

func TestBuild_IDFMonotonicity(t *testing.T) {
	// "truyen" appears in two documents, "sach" in one.
	ix := buildTestIndex()

	rare, ok := ix.IDF["sach"]
	if !ok {
		t.Fatal("idf missing term sach")
	}
	common, ok := ix.IDF["truyen"]
	if !ok {
		t.Fatal("idf missing term truyen")
	}
	if rare <= common {
		t.Errorf("idf(sach)=%f should exceed idf(truyen)=%f", rare, common)
	}
}

func TestBuild_VectorSparsity(t *testing.T) {
	ix := Build([]Document{{ID: "1", Text: "tết tết sách"}})

	entry := ix.Entries[0]
	if len(entry.Vector) != 2 {
		t.Fatalf("vector has %d terms, want 2", len(entry.Vector))
	}
	for term, w := range entry.Vector {
		if w <= 0 {
			t.Errorf("term %q has non-positive weight %f", term, w)
		}
	}
}

func TestBuild_NormFloor(t *testing.T) {
	ix := buildTestIndex()
	for _, entry := range ix.Entries {
		if entry.Norm < 1 {
			t.Errorf("entry %s norm = %f, want >= 1", entry.ID, entry.Norm)
		}
	}
}

func TestQueryVector(t *testing.T) {
	ix := buildTestIndex()

	tests := []struct {
		name      string
		tokens    []string
		boost     float64
		wantNil   bool
		wantTerms int
	}{
		{
			name:    "empty tokens",
			tokens:  nil,
			boost:   1.0,
			wantNil: true,
		},
		{
			name:    "terms outside vocabulary",
			tokens:  []string{"zzz", "yyy"},
			boost:   1.0,
			wantNil: true,
		},
		{
			name:      "known terms retained",
			tokens:    []string{"truyen", "sach", "zzz"},
			boost:     1.0,
			wantTerms: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vec, norm := ix.QueryVector(tt.tokens, tt.boost)
			if tt.wantNil {
				if vec != nil || norm != 0 {
					t.Errorf("QueryVector = (%v, %f), want (nil, 0)", vec, norm)
				}
				return
			}
			if len(vec) != tt.wantTerms {
				t.Errorf("len(vec) = %d, want %d", len(vec), tt.wantTerms)
			}
			if norm <= 0 {
				t.Errorf("norm = %f, want > 0", norm)
			}
		})
	}
}

func TestQueryVector_BoostScalesWeights(t *testing.T) {
	ix := buildTestIndex()

	base, baseNorm := ix.QueryVector([]string{"truyen"}, 1.0)
	boosted, boostedNorm := ix.QueryVector([]string{"truyen"}, 1.2)

	for term := range base {
		want := base[term] * 1.2
		if math.Abs(boosted[term]-want) > 1e-9 {
			t.Errorf("boosted weight for %q = %f, want %f", term, boosted[term], want)
		}
	}
	if boostedNorm <= baseNorm {
		t.Errorf("boosted norm %f should exceed base norm %f", boostedNorm, baseNorm)
	}
}

func TestCosine_Bounds(t *testing.T) {
	ix := buildTestIndex()
	query, queryNorm := ix.QueryVector([]string{"truyen", "tranh"}, 1.0)

	for _, entry := range ix.Entries {
		sim := Cosine(entry.Vector, entry.Norm, query, queryNorm)
		if sim < 0 || sim > 1 {
			t.Errorf("cosine for %s = %f, want within [0, 1]", entry.ID, sim)
		}
	}
}

func TestCosine_ZeroNorm(t *testing.T) {
	if got := Cosine(TermVector{"a": 1}, 0, TermVector{"a": 1}, 1); got != 0 {
		t.Errorf("Cosine with zero doc norm = %f, want 0", got)
	}
	if got := Cosine(TermVector{"a": 1}, 1, TermVector{"a": 1}, 0); got != 0 {
		t.Errorf("Cosine with zero query norm = %f, want 0", got)
	}
}
