// Wisata - Tourism Destination Recommendation API
// Copyright 2026 Wisata Jogja
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wisatajogja/wisata

package recommend

import (
	"context"
	"fmt"
	"time"

	"github.com/wisatajogja/wisata/internal/logging"
	"github.com/wisatajogja/wisata/internal/metrics"
)

// DataProvider supplies the destination corpus. A limit of 0 means the
// full corpus.
type DataProvider interface {
	ListDestinations(ctx context.Context, limit int) ([]Destination, error)
}

// Engine runs the full recommendation pipeline per request: load the
// corpus, build documents, build the similarity matrix, rank neighbors.
// Nothing is cached between requests.
type Engine struct {
	provider DataProvider
	params   VectorizerParams
}

// NewEngine creates an Engine over the given corpus provider.
func NewEngine(provider DataProvider, params VectorizerParams) *Engine {
	return &Engine{provider: provider, params: params}
}

// Recommend returns up to k destinations most similar to title.
//
// Pipeline errors pass through unwrapped so callers can distinguish
// ErrEmptyCorpus, ErrDegenerateCorpus, and *NotFoundError from store
// failures.
func (e *Engine) Recommend(ctx context.Context, title string, k int) ([]Recommendation, error) {
	dests, err := e.provider.ListDestinations(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("loading corpus: %w", err)
	}

	start := time.Now()
	docs, err := BuildDocuments(dests)
	if err != nil {
		return nil, err
	}
	matrix, err := BuildMatrix(docs, e.params)
	if err != nil {
		return nil, err
	}

	elapsed := time.Since(start)
	metrics.RecommendBuildDuration.Observe(elapsed.Seconds())
	metrics.RecommendCorpusSize.Set(float64(matrix.Size()))
	logging.Ctx(ctx).Debug().
		Int("corpus_size", matrix.Size()).
		Dur("build_time", elapsed).
		Str("query", title).
		Msg("Similarity matrix rebuilt")

	return Recommend(matrix, dests, title, k)
}
