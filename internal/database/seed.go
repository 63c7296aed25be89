// Wisata - Tourism Destination Recommendation API
// Copyright 2026 Wisata Jogja
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wisatajogja/wisata

package database

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/wisatajogja/wisata/internal/logging"
)

// seedColumns is the expected CSV header, in order.
var seedColumns = []string{"title", "district", "categories", "url"}

// seedFromCSV bulk-loads the destination dataset in one transaction.
// The categories column arrives comma-delimited, possibly with bracket
// and quote artifacts from upstream exporters, and is normalized here.
func (db *DB) seedFromCSV(ctx context.Context, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening seed dataset %s: %w", path, err)
	}
	defer closeWithLog(f, "seed dataset")

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = len(seedColumns)

	header, err := reader.Read()
	if err != nil {
		return fmt.Errorf("reading seed header: %w", err)
	}
	for i, col := range seedColumns {
		if !strings.EqualFold(strings.TrimSpace(header[i]), col) {
			return fmt.Errorf("seed column %d is %q, want %q", i, header[i], col)
		}
	}

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return queryErr("seed_begin", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO destinations (title, district, categories, url)
		 VALUES (?, ?, string_split(?, ','), ?)`)
	if err != nil {
		return queryErr("seed_prepare", err)
	}
	defer closeWithLog(stmt, "seed statement")

	rows := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("reading seed row %d: %w", rows+1, err)
		}

		title := strings.TrimSpace(record[0])
		if title == "" {
			continue
		}
		district := strings.TrimSpace(record[1])
		categories := normalizeCategories(record[2])
		url := strings.TrimSpace(record[3])
		if url == "" {
			url = mapsURL(title, district)
		}

		catsParam := categoriesParam(categories)
		if _, err := stmt.ExecContext(ctx, title, district, catsParam, url); err != nil {
			return queryErr("seed_insert", err)
		}
		rows++
	}

	if err := tx.Commit(); err != nil {
		return queryErr("seed_commit", err)
	}

	logging.Info().Int("rows", rows).Str("path", path).Msg("Seed dataset loaded")
	return nil
}

// normalizeCategories splits a comma-delimited category field into the
// canonical slice form, stripping bracket and quote artifacts and
// dropping empties.
func normalizeCategories(raw string) []string {
	raw = strings.Trim(strings.TrimSpace(raw), "[]")
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.Trim(strings.TrimSpace(p), `'"`)
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// categoriesParam renders a category slice for the string_split insert
// expression. A nil return keeps the column NULL.
func categoriesParam(categories []string) any {
	if len(categories) == 0 {
		return nil
	}
	return strings.Join(categories, ",")
}
