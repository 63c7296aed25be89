// Wisata - Tourism Destination Recommendation API
// Copyright 2026 Wisata Jogja
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wisatajogja/wisata

package recommend

import (
	"sort"
	"strings"
)

// Recommend ranks the neighbors of queryTitle by descending similarity
// and returns at most k of them joined to their destination metadata.
// dests must be the corpus the matrix was built from, in the same order.
//
// The query title is trimmed, then matched case-sensitively against the
// matrix index. On a miss a case-insensitive substring scan over known
// titles fills NotFoundError.Suggestions; similarity is never consulted
// for a miss. The query row itself is always excluded from results, and
// ties keep corpus row order.
func Recommend(m *Matrix, dests []Destination, queryTitle string, k int) ([]Recommendation, error) {
	title := strings.TrimSpace(queryTitle)

	row, ok := m.Lookup(title)
	if !ok {
		return nil, &NotFoundError{
			Title:       title,
			Suggestions: suggestTitles(m.Titles(), title),
		}
	}

	scores := m.Row(row)
	order := make([]int, 0, len(scores)-1)
	for i := range scores {
		if i != row {
			order = append(order, i)
		}
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	if k < 0 {
		k = 0
	}
	if k > len(order) {
		k = len(order)
	}

	recs := make([]Recommendation, 0, k)
	for _, i := range order[:k] {
		d := dests[i]
		recs = append(recs, Recommendation{
			Name:       d.Title,
			URL:        d.URL,
			District:   d.District,
			Categories: d.Categories,
			Score:      scores[i],
		})
	}
	return recs, nil
}

// suggestTitles returns known titles containing the query as a
// case-insensitive substring, in corpus order.
func suggestTitles(titles []string, query string) []string {
	lower := strings.ToLower(query)
	var matches []string
	for _, t := range titles {
		if strings.Contains(strings.ToLower(t), lower) {
			matches = append(matches, t)
		}
	}
	return matches
}
