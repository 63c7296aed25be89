// Wisata - Tourism Destination Recommendation API
// Copyright 2026 Wisata Jogja
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wisatajogja/wisata

package recommend

import (
	"math"
	"testing"
)

func TestTermCounts(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		min, max int
		want     map[string]int
	}{
		{
			name: "unigrams only",
			text: "candi sambisari sejarah",
			min: 1, max: 1,
			want: map[string]int{"candi": 1, "sambisari": 1, "sejarah": 1},
		},
		{
			name: "unigrams and bigrams",
			text: "candi sambisari sejarah",
			min: 1, max: 2,
			want: map[string]int{
				"candi": 1, "sambisari": 1, "sejarah": 1,
				"candi sambisari": 1, "sambisari sejarah": 1,
			},
		},
		{
			name: "repeated terms counted",
			text: "pantai pantai alam",
			min: 1, max: 1,
			want: map[string]int{"pantai": 2, "alam": 1},
		},
		{
			name: "empty text",
			text: "   ",
			min: 1, max: 2,
			want: map[string]int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := termCounts(tt.text, tt.min, tt.max)
			if len(got) != len(tt.want) {
				t.Fatalf("termCounts() = %v, want %v", got, tt.want)
			}
			for term, c := range tt.want {
				if got[term] != c {
					t.Errorf("count[%q] = %d, want %d", term, got[term], c)
				}
			}
		})
	}
}

func TestBuildVocabularyMaxDocShare(t *testing.T) {
	// A term in all 3 documents exceeds the 0.95 share and is pruned.
	df := map[string]int{"common": 3, "x": 1, "y": 1, "z": 1}
	freq := map[string]int{"common": 3, "x": 1, "y": 1, "z": 1}

	vocab, _ := buildVocabulary(3, df, freq, DefaultVectorizerParams())

	if _, ok := vocab["common"]; ok {
		t.Error("expected term present in every document to be pruned")
	}
	for _, term := range []string{"x", "y", "z"} {
		if _, ok := vocab[term]; !ok {
			t.Errorf("expected term %q to be retained", term)
		}
	}
}

func TestBuildVocabularyMaxFeatures(t *testing.T) {
	df := map[string]int{"a": 1, "b": 1, "c": 1}
	freq := map[string]int{"a": 3, "b": 2, "c": 1}
	params := VectorizerParams{MaxFeatures: 2, NgramMin: 1, NgramMax: 1, MinDocFreq: 1, MaxDocShare: 1.0}

	vocab, _ := buildVocabulary(1, df, freq, params)

	if len(vocab) != 2 {
		t.Fatalf("expected 2 features, got %d", len(vocab))
	}
	if _, ok := vocab["c"]; ok {
		t.Error("expected lowest-frequency term to be dropped")
	}
}

func TestBuildVocabularyTieBreakLexicographic(t *testing.T) {
	df := map[string]int{"zebra": 1, "apel": 1}
	freq := map[string]int{"zebra": 2, "apel": 2}
	params := VectorizerParams{MaxFeatures: 1, NgramMin: 1, NgramMax: 1, MinDocFreq: 1, MaxDocShare: 1.0}

	vocab, _ := buildVocabulary(2, df, freq, params)

	if _, ok := vocab["apel"]; !ok {
		t.Errorf("expected lexicographically first term to win the tie, vocab: %v", vocab)
	}
}

func TestVectorizeSmoothedIDF(t *testing.T) {
	// Two docs sharing "apel": idf = ln((1+2)/(1+2))+1 = 1 for shared,
	// ln(3/2)+1 for unique terms.
	texts := []string{"apel pisang", "apel jeruk"}
	params := VectorizerParams{MaxFeatures: 1000, NgramMin: 1, NgramMax: 1, MinDocFreq: 1, MaxDocShare: 1.0}

	vecs := Vectorize(texts, params)

	wantShared := 1.0
	wantUnique := math.Log(3.0/2.0) + 1
	wantNorm := math.Sqrt(wantShared*wantShared + wantUnique*wantUnique)

	// Vocabulary is lexicographic: apel=0, jeruk=1, pisang=2.
	if got := vecs[0][0]; math.Abs(got-wantShared/wantNorm) > 1e-9 {
		t.Errorf("weight(apel) = %v, want %v", got, wantShared/wantNorm)
	}
	if got := vecs[0][2]; math.Abs(got-wantUnique/wantNorm) > 1e-9 {
		t.Errorf("weight(pisang) = %v, want %v", got, wantUnique/wantNorm)
	}
}

func TestVectorizeL2Norm(t *testing.T) {
	texts := []string{"apel pisang mangga", "jeruk salak apel", "durian manggis kelapa"}
	vecs := Vectorize(texts, DefaultVectorizerParams())

	for i, vec := range vecs {
		var norm float64
		for _, w := range vec {
			norm += w * w
		}
		if math.Abs(norm-1.0) > 1e-9 {
			t.Errorf("doc %d: squared norm = %v, want 1.0", i, norm)
		}
	}
}

func TestVectorDot(t *testing.T) {
	a := Vector{0: 0.6, 1: 0.8}
	b := Vector{1: 1.0}
	if got := a.Dot(b); math.Abs(got-0.8) > 1e-9 {
		t.Errorf("Dot() = %v, want 0.8", got)
	}
	if got := b.Dot(a); math.Abs(got-0.8) > 1e-9 {
		t.Errorf("Dot() not commutative: %v", got)
	}
	if got := a.Dot(Vector{}); got != 0 {
		t.Errorf("Dot with empty vector = %v, want 0", got)
	}
}
