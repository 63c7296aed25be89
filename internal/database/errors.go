// Wisata - Tourism Destination Recommendation API
// Copyright 2026 Wisata Jogja
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wisatajogja/wisata

package database

import (
	"errors"
	"fmt"
	"io"

	"github.com/wisatajogja/wisata/internal/logging"
	"github.com/wisatajogja/wisata/internal/metrics"
)

var (
	// ErrConnection indicates the database could not be reached.
	ErrConnection = errors.New("database: connection failed")

	// ErrQuery indicates a statement failed to execute.
	ErrQuery = errors.New("database: query failed")

	// ErrNotFound indicates an exact-match lookup found no row.
	ErrNotFound = errors.New("database: destination not found")
)

// queryErr wraps a statement failure with its operation name and
// records it in the error counter.
func queryErr(op string, err error) error {
	metrics.DBQueryErrors.WithLabelValues(op).Inc()
	return fmt.Errorf("%w: %s: %v", ErrQuery, op, err)
}

// closeWithLog closes c and logs a warning on failure. Used for row
// cursors whose close errors matter but cannot change the result.
func closeWithLog(c io.Closer, what string) {
	if err := c.Close(); err != nil {
		logging.Warn().Err(err).Str("resource", what).Msg("Failed to close resource")
	}
}

// closeQuietly closes c ignoring any error, for teardown paths where
// a close failure has no consumer.
func closeQuietly(c io.Closer) {
	_ = c.Close()
}
