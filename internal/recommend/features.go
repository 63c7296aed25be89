// Wisata - Tourism Destination Recommendation API
// Copyright 2026 Wisata Jogja
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wisatajogja/wisata

package recommend

import "strings"

// BuildDocuments derives one Document per Destination in the same order.
// Each document concatenates the lowercased title, categories, and
// district with single spaces; empty components add nothing.
//
// Returns ErrEmptyCorpus when no destination yields any text, so the
// pipeline aborts instead of fitting a vectorizer over nothing.
func BuildDocuments(dests []Destination) ([]Document, error) {
	docs := make([]Document, len(dests))
	total := 0
	for i, d := range dests {
		text := describe(d)
		docs[i] = Document{Title: d.Title, Text: text}
		total += len(strings.TrimSpace(text))
	}
	if total == 0 {
		return nil, ErrEmptyCorpus
	}
	return docs, nil
}

// describe builds the searchable text blob for one destination.
// Component order is fixed: title, categories, district.
func describe(d Destination) string {
	parts := make([]string, 0, len(d.Categories)+2)
	if t := strings.TrimSpace(d.Title); t != "" {
		parts = append(parts, strings.ToLower(t))
	}
	for _, c := range d.Categories {
		if c = strings.TrimSpace(c); c != "" {
			parts = append(parts, strings.ToLower(c))
		}
	}
	if dist := strings.TrimSpace(d.District); dist != "" {
		parts = append(parts, strings.ToLower(dist))
	}
	return strings.Join(parts, " ")
}
