// Wisata - Tourism Destination Recommendation API
// Copyright 2026 Wisata Jogja
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wisatajogja/wisata

package recommend

import "strings"

// Matrix is a symmetric cosine-similarity matrix over the corpus,
// indexed by destination title. Row order matches the input document
// order. The diagonal is 1.0 and all scores lie in [0,1].
type Matrix struct {
	titles []string
	index  map[string]int
	scores [][]float64
}

// BuildMatrix vectorizes the documents and computes their pairwise
// cosine similarities.
//
// Returns ErrDegenerateCorpus when fewer than two documents carry any
// text, since a 1x1 or empty matrix cannot rank neighbors. Duplicate
// titles are not guarded against; the first occurrence wins the index
// slot.
func BuildMatrix(docs []Document, params VectorizerParams) (*Matrix, error) {
	nonEmpty := 0
	for _, d := range docs {
		if strings.TrimSpace(d.Text) != "" {
			nonEmpty++
		}
	}
	if nonEmpty < 2 {
		return nil, ErrDegenerateCorpus
	}

	texts := make([]string, len(docs))
	for i, d := range docs {
		texts[i] = d.Text
	}
	vectors := Vectorize(texts, params)

	n := len(docs)
	m := &Matrix{
		titles: make([]string, n),
		index:  make(map[string]int, n),
		scores: make([][]float64, n),
	}
	for i, d := range docs {
		m.titles[i] = d.Title
		if _, ok := m.index[d.Title]; !ok {
			m.index[d.Title] = i
		}
		m.scores[i] = make([]float64, n)
		m.scores[i][i] = 1.0
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			s := vectors[i].Dot(vectors[j])
			// Clamp float drift.
			if s < 0 {
				s = 0
			} else if s > 1 {
				s = 1
			}
			m.scores[i][j] = s
			m.scores[j][i] = s
		}
	}
	return m, nil
}

// Titles returns the matrix labels in corpus order.
func (m *Matrix) Titles() []string {
	return m.titles
}

// Lookup returns the row index for an exact title match.
func (m *Matrix) Lookup(title string) (int, bool) {
	i, ok := m.index[title]
	return i, ok
}

// Row returns the similarity scores of one row against every column.
func (m *Matrix) Row(i int) []float64 {
	return m.scores[i]
}

// Score returns the similarity between two titles.
func (m *Matrix) Score(a, b string) (float64, bool) {
	i, ok := m.index[a]
	if !ok {
		return 0, false
	}
	j, ok := m.index[b]
	if !ok {
		return 0, false
	}
	return m.scores[i][j], true
}

// Size returns the matrix dimension.
func (m *Matrix) Size() int {
	return len(m.titles)
}
