// Wisata - Tourism Destination Recommendation API
// Copyright 2026 Wisata Jogja
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wisatajogja/wisata

package recommend

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyCorpus indicates the corpus produced no usable text at all.
	ErrEmptyCorpus = errors.New("recommend: corpus has no usable text")

	// ErrDegenerateCorpus indicates fewer than two non-empty documents,
	// for which cosine similarity is meaningless.
	ErrDegenerateCorpus = errors.New("recommend: fewer than two non-empty documents")
)

// NotFoundError reports a query title absent from the similarity matrix.
// Suggestions holds known titles that contain the query as a
// case-insensitive substring, in corpus order.
type NotFoundError struct {
	Title       string
	Suggestions []string
}

func (e *NotFoundError) Error() string {
	if len(e.Suggestions) > 0 {
		return fmt.Sprintf("destination %q not found, did you mean: %s",
			e.Title, strings.Join(e.Suggestions, ", "))
	}
	return fmt.Sprintf("destination %q not found", e.Title)
}
