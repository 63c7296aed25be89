// Wisata - Tourism Destination Recommendation API
// Copyright 2026 Wisata Jogja
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wisatajogja/wisata

package recommend

import (
	"errors"
	"math"
	"testing"
)

func testCorpus() []Destination {
	return []Destination{
		{ID: 1, Title: "Candi Sambisari", District: "Sleman", Categories: []string{"sejarah"}},
		{ID: 2, Title: "Candi Prambanan", District: "Sleman", Categories: []string{"sejarah"}},
		{ID: 3, Title: "Pantai Parangtritis", District: "Bantul", Categories: []string{"pantai"}},
	}
}

func buildTestMatrix(t *testing.T, dests []Destination) *Matrix {
	t.Helper()
	docs, err := BuildDocuments(dests)
	if err != nil {
		t.Fatalf("BuildDocuments() error: %v", err)
	}
	m, err := BuildMatrix(docs, DefaultVectorizerParams())
	if err != nil {
		t.Fatalf("BuildMatrix() error: %v", err)
	}
	return m
}

func TestMatrixSymmetryAndDiagonal(t *testing.T) {
	m := buildTestMatrix(t, testCorpus())

	titles := m.Titles()
	for _, a := range titles {
		for _, b := range titles {
			sab, _ := m.Score(a, b)
			sba, _ := m.Score(b, a)
			if sab != sba {
				t.Errorf("score(%q,%q)=%v != score(%q,%q)=%v", a, b, sab, b, a, sba)
			}
			if sab < 0 || sab > 1 {
				t.Errorf("score(%q,%q)=%v out of [0,1]", a, b, sab)
			}
		}
		if diag, _ := m.Score(a, a); diag != 1.0 {
			t.Errorf("score(%q,%q)=%v, want 1.0", a, a, diag)
		}
	}
}

func TestMatrixSharedTermsScoreHigher(t *testing.T) {
	m := buildTestMatrix(t, testCorpus())

	near, _ := m.Score("Candi Sambisari", "Candi Prambanan")
	far, _ := m.Score("Candi Sambisari", "Pantai Parangtritis")
	if near <= far {
		t.Errorf("expected shared district+category to score higher: near=%v far=%v", near, far)
	}
	if far != 0 {
		t.Errorf("expected no term overlap to score 0, got %v", far)
	}
}

func TestMatrixExpectedCosine(t *testing.T) {
	// Two docs sharing one unigram out of three terms each, with a
	// third disjoint doc keeping the shared term under the max_df cut.
	dests := []Destination{
		{Title: "A", District: "apel pisang"},
		{Title: "B", District: "apel jeruk"},
		{Title: "C", District: "mangga salak"},
	}
	docs, err := BuildDocuments(dests)
	if err != nil {
		t.Fatalf("BuildDocuments() error: %v", err)
	}
	params := VectorizerParams{MaxFeatures: 1000, NgramMin: 1, NgramMax: 1, MinDocFreq: 1, MaxDocShare: 0.95}
	m, err := BuildMatrix(docs, params)
	if err != nil {
		t.Fatalf("BuildMatrix() error: %v", err)
	}

	// idf(apel) = ln(4/3)+1, idf(unique) = ln(4/2)+1; cosine follows.
	shared := math.Log(4.0/3.0) + 1
	unique := math.Log(2.0) + 1
	want := (shared * shared) / (shared*shared + 2*unique*unique)

	got, _ := m.Score("A", "B")
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("score(A,B) = %v, want %v", got, want)
	}
}

func TestMatrixDeterministic(t *testing.T) {
	a := buildTestMatrix(t, testCorpus())
	b := buildTestMatrix(t, testCorpus())

	for _, x := range a.Titles() {
		for _, y := range a.Titles() {
			sa, _ := a.Score(x, y)
			sb, _ := b.Score(x, y)
			if sa != sb {
				t.Errorf("score(%q,%q) differs across builds: %v vs %v", x, y, sa, sb)
			}
		}
	}
}

func TestBuildMatrixDegenerateCorpus(t *testing.T) {
	tests := []struct {
		name string
		docs []Document
	}{
		{"single document", []Document{{Title: "A", Text: "candi sejarah"}}},
		{"one usable of two", []Document{{Title: "A", Text: "candi"}, {Title: "B", Text: "  "}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildMatrix(tt.docs, DefaultVectorizerParams())
			if !errors.Is(err, ErrDegenerateCorpus) {
				t.Errorf("expected ErrDegenerateCorpus, got %v", err)
			}
		})
	}
}

func TestMatrixLookupExactCaseSensitive(t *testing.T) {
	m := buildTestMatrix(t, testCorpus())

	if _, ok := m.Lookup("Candi Sambisari"); !ok {
		t.Error("expected exact title to be found")
	}
	if _, ok := m.Lookup("candi sambisari"); ok {
		t.Error("expected lookup to be case sensitive")
	}
	if _, ok := m.Lookup("Candi"); ok {
		t.Error("expected lookup to require the full title")
	}
}
