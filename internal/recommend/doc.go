// Wisata - Tourism Destination Recommendation API
// Copyright 2026 Wisata Jogja
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wisatajogja/wisata

// Package recommend implements content-based destination recommendations.
//
// The pipeline derives a text document per destination from its title,
// categories, and district, vectorizes the documents with TF-IDF over
// unigrams and bigrams, builds a cosine-similarity matrix keyed by title,
// and ranks neighbors of a queried title by descending similarity.
//
// The matrix is rebuilt from the full corpus on every request. Each
// request owns its own matrix, so no locking is required and concurrent
// requests share nothing mutable.
package recommend
