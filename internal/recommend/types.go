// Wisata - Tourism Destination Recommendation API
// Copyright 2026 Wisata Jogja
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wisatajogja/wisata

package recommend

// Destination is a tourism location record. Titles act as the lookup key
// for similarity queries and are assumed unique across the corpus.
type Destination struct {
	ID         int      `json:"id"`
	Title      string   `json:"title"`
	District   string   `json:"district"`
	Categories []string `json:"categories"`
	URL        string   `json:"url"`
}

// Document is the derived text representation of one destination, the
// unit of vectorization. Text is never persisted.
type Document struct {
	Title string
	Text  string
}

// Recommendation is one ranked result joined back to its destination
// metadata. JSON field names follow the public dataset conventions.
type Recommendation struct {
	Name       string   `json:"nama_destinasi"`
	URL        string   `json:"alamat"`
	District   string   `json:"kabupaten"`
	Categories []string `json:"categories"`
	Score      float64  `json:"score"`
}
