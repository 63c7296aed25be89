// Wisata - Tourism Destination Recommendation API
// Copyright 2026 Wisata Jogja
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wisatajogja/wisata

package database

import (
	"context"

	"github.com/wisatajogja/wisata/internal/logging"
)

const createSequenceSQL = `CREATE SEQUENCE IF NOT EXISTS destinations_id_seq`

const createTableSQL = `
CREATE TABLE IF NOT EXISTS destinations (
    id         INTEGER PRIMARY KEY DEFAULT nextval('destinations_id_seq'),
    title      TEXT NOT NULL,
    district   TEXT,
    categories TEXT[],
    url        TEXT
)`

// EnsureInitialized creates the schema if needed and bulk-loads the
// seed CSV iff the destinations table is empty. Calling it against an
// already-populated database is a no-op.
func (db *DB) EnsureInitialized(ctx context.Context, csvPath string) error {
	if _, err := db.conn.ExecContext(ctx, createSequenceSQL); err != nil {
		return queryErr("create_sequence", err)
	}
	if _, err := db.conn.ExecContext(ctx, createTableSQL); err != nil {
		return queryErr("create_table", err)
	}

	var count int
	row := db.conn.QueryRowContext(ctx, `SELECT count(*) FROM destinations`)
	if err := row.Scan(&count); err != nil {
		return queryErr("count_destinations", err)
	}
	if count > 0 {
		logging.Debug().Int("rows", count).Msg("Destinations table already populated, skipping seed")
		return nil
	}
	if csvPath == "" {
		logging.Warn().Msg("Destinations table empty and no seed dataset configured")
		return nil
	}

	return db.seedFromCSV(ctx, csvPath)
}
