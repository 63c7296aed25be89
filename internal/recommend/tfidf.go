// Wisata - Tourism Destination Recommendation API
// Copyright 2026 Wisata Jogja
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wisatajogja/wisata

package recommend

import (
	"math"
	"sort"
	"strings"
)

// VectorizerParams controls TF-IDF feature extraction.
type VectorizerParams struct {
	// MaxFeatures caps the vocabulary at the terms with the highest
	// corpus frequency, ties broken lexicographically.
	MaxFeatures int
	// NgramMin and NgramMax bound the n-gram sizes extracted from
	// whitespace tokens.
	NgramMin int
	NgramMax int
	// MinDocFreq drops terms appearing in fewer documents.
	MinDocFreq int
	// MaxDocShare drops terms appearing in more than this share of
	// documents. Pruning is purely frequency based, there is no
	// stopword list.
	MaxDocShare float64
}

// DefaultVectorizerParams returns the extraction defaults used in
// production: unigrams and bigrams, 1000 features, min_df 1, max_df 0.95.
func DefaultVectorizerParams() VectorizerParams {
	return VectorizerParams{
		MaxFeatures: 1000,
		NgramMin:    1,
		NgramMax:    2,
		MinDocFreq:  1,
		MaxDocShare: 0.95,
	}
}

// Vector is a sparse L2-normalized TF-IDF vector, term index to weight.
type Vector map[int]float64

// Dot returns the dot product of two vectors. For L2-normalized
// vectors this is their cosine similarity.
func (v Vector) Dot(other Vector) float64 {
	// Iterate the smaller map.
	if len(other) < len(v) {
		v, other = other, v
	}
	var sum float64
	for i, w := range v {
		if ow, ok := other[i]; ok {
			sum += w * ow
		}
	}
	return sum
}

// Vectorize fits a TF-IDF model over the documents and returns one
// vector per document in the same order.
//
// Terms are unigrams through n-grams of whitespace tokens. Term weight
// is raw count times smoothed IDF, ln((1+n)/(1+df))+1, and each vector
// is L2 normalized. Documents whose terms were all pruned come back as
// empty vectors.
func Vectorize(texts []string, params VectorizerParams) []Vector {
	n := len(texts)
	counts := make([]map[string]int, n)
	df := make(map[string]int)
	corpusFreq := make(map[string]int)

	for i, text := range texts {
		tc := termCounts(text, params.NgramMin, params.NgramMax)
		counts[i] = tc
		for term, c := range tc {
			df[term]++
			corpusFreq[term] += c
		}
	}

	vocab, idf := buildVocabulary(n, df, corpusFreq, params)

	vectors := make([]Vector, n)
	for i, tc := range counts {
		vec := make(Vector)
		var norm float64
		for term, c := range tc {
			idx, ok := vocab[term]
			if !ok {
				continue
			}
			w := float64(c) * idf[idx]
			vec[idx] = w
			norm += w * w
		}
		if norm > 0 {
			norm = math.Sqrt(norm)
			for idx := range vec {
				vec[idx] /= norm
			}
		}
		vectors[i] = vec
	}
	return vectors
}

// termCounts tokenizes text on whitespace and counts every n-gram from
// size min through max.
func termCounts(text string, min, max int) map[string]int {
	tokens := strings.Fields(text)
	tc := make(map[string]int)
	for n := min; n <= max; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			tc[strings.Join(tokens[i:i+n], " ")]++
		}
	}
	return tc
}

// buildVocabulary applies document-frequency pruning and the feature
// cap, then assigns indices in lexicographic term order so the
// vocabulary is deterministic for a fixed corpus.
func buildVocabulary(n int, df, corpusFreq map[string]int, params VectorizerParams) (map[string]int, []float64) {
	maxDocCount := params.MaxDocShare * float64(n)

	kept := make([]string, 0, len(df))
	for term, d := range df {
		if d < params.MinDocFreq {
			continue
		}
		if float64(d) > maxDocCount {
			continue
		}
		kept = append(kept, term)
	}

	if params.MaxFeatures > 0 && len(kept) > params.MaxFeatures {
		sort.Slice(kept, func(i, j int) bool {
			fi, fj := corpusFreq[kept[i]], corpusFreq[kept[j]]
			if fi != fj {
				return fi > fj
			}
			return kept[i] < kept[j]
		})
		kept = kept[:params.MaxFeatures]
	}
	sort.Strings(kept)

	vocab := make(map[string]int, len(kept))
	idf := make([]float64, len(kept))
	for i, term := range kept {
		vocab[term] = i
		idf[i] = math.Log(float64(1+n)/float64(1+df[term])) + 1
	}
	return vocab, idf
}
