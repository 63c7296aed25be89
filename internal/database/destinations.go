// Wisata - Tourism Destination Recommendation API
// Copyright 2026 Wisata Jogja
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wisatajogja/wisata

package database

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/wisatajogja/wisata/internal/metrics"
	"github.com/wisatajogja/wisata/internal/recommend"
)

// selectColumns reads categories back through array_to_string so rows
// scan as plain strings; normalizeCategories restores the slice form.
const selectColumns = `id, title, district, array_to_string(categories, ','), url`

// ListDestinations returns destinations in insertion order. A limit of
// 0 returns the full corpus. The row order is the corpus order the
// similarity matrix is built in.
func (db *DB) ListDestinations(ctx context.Context, limit int) ([]recommend.Destination, error) {
	defer observe("list_destinations", time.Now())

	query := `SELECT ` + selectColumns + ` FROM destinations ORDER BY id`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, queryErr("list_destinations", err)
	}
	defer closeWithLog(rows, "destination rows")

	return scanDestinations(rows, "list_destinations")
}

// InsertDestination stores a new destination. When url is empty a map
// search URL is generated from the title and district.
func (db *DB) InsertDestination(ctx context.Context, title, district string, categories []string, url string) error {
	defer observe("insert_destination", time.Now())

	title = strings.TrimSpace(title)
	district = strings.TrimSpace(district)
	if url == "" {
		url = mapsURL(title, district)
	}

	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO destinations (title, district, categories, url)
		 VALUES (?, ?, string_split(?, ','), ?)`,
		title, district, categoriesParam(normalizeCategories(strings.Join(categories, ","))), url)
	if err != nil {
		return queryErr("insert_destination", err)
	}
	return nil
}

// SearchDestinationsByTitle returns destinations whose title contains
// the pattern, case-insensitively. Zero matches is a valid empty
// result, not an error.
func (db *DB) SearchDestinationsByTitle(ctx context.Context, pattern string) ([]recommend.Destination, error) {
	defer observe("search_destinations", time.Now())

	rows, err := db.conn.QueryContext(ctx,
		`SELECT `+selectColumns+` FROM destinations WHERE title ILIKE ? ORDER BY id`,
		"%"+strings.TrimSpace(pattern)+"%")
	if err != nil {
		return nil, queryErr("search_destinations", err)
	}
	defer closeWithLog(rows, "search rows")

	return scanDestinations(rows, "search_destinations")
}

// GetDestinationByTitle returns the destination with an exact title
// match, or ErrNotFound.
func (db *DB) GetDestinationByTitle(ctx context.Context, title string) (*recommend.Destination, error) {
	defer observe("get_destination", time.Now())

	row := db.conn.QueryRowContext(ctx,
		`SELECT `+selectColumns+` FROM destinations WHERE title = ? LIMIT 1`,
		strings.TrimSpace(title))

	dest, err := scanDestination(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, queryErr("get_destination", err)
	}
	return dest, nil
}

// ListCategories returns the sorted distinct category values across
// the whole corpus.
func (db *DB) ListCategories(ctx context.Context) ([]string, error) {
	defer observe("list_categories", time.Now())

	rows, err := db.conn.QueryContext(ctx,
		`SELECT DISTINCT unnest(categories) AS category
		 FROM destinations
		 WHERE categories IS NOT NULL
		 ORDER BY category`)
	if err != nil {
		return nil, queryErr("list_categories", err)
	}
	defer closeWithLog(rows, "category rows")

	var categories []string
	for rows.Next() {
		var c sql.NullString
		if err := rows.Scan(&c); err != nil {
			return nil, queryErr("list_categories", err)
		}
		if v := strings.TrimSpace(c.String); v != "" {
			categories = append(categories, v)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, queryErr("list_categories", err)
	}
	return categories, nil
}

// mapsURL builds the fallback map-search URL for a destination without
// one. The query string joins title and district with a comma and
// replaces spaces with plus signs.
func mapsURL(title, district string) string {
	query := title
	if district != "" {
		query = title + ", " + district
	}
	return "https://www.google.com/maps/search/?api=1&query=" + strings.ReplaceAll(query, " ", "+")
}

// scanDestinations drains a result set into destination records.
func scanDestinations(rows *sql.Rows, op string) ([]recommend.Destination, error) {
	var dests []recommend.Destination
	for rows.Next() {
		d, err := scanDestination(rows.Scan)
		if err != nil {
			return nil, queryErr(op, err)
		}
		dests = append(dests, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, queryErr(op, err)
	}
	return dests, nil
}

// scanDestination scans one destination row, normalizing nullable
// columns and the delimited categories representation.
func scanDestination(scan func(...any) error) (*recommend.Destination, error) {
	var (
		d          recommend.Destination
		district   sql.NullString
		categories sql.NullString
		url        sql.NullString
	)
	if err := scan(&d.ID, &d.Title, &district, &categories, &url); err != nil {
		return nil, err
	}
	d.District = district.String
	d.Categories = normalizeCategories(categories.String)
	d.URL = url.String
	return &d, nil
}

// observe records a query duration. Call with defer at operation start.
func observe(op string, start time.Time) {
	metrics.DBQueryDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}
