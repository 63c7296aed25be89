// Wisata - Tourism Destination Recommendation API
// Copyright 2026 Wisata Jogja
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wisatajogja/wisata

// Package database implements the DuckDB-backed destination store.
//
// The store owns the destinations table, its seed bootstrap, and the
// parameterized read/insert/search queries the API and recommendation
// engine run against it. Categories are stored as TEXT[] and normalized
// to []string at this boundary; no delimited-string representation
// leaks above it.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"

	"github.com/wisatajogja/wisata/internal/config"
	"github.com/wisatajogja/wisata/internal/logging"
)

// DB wraps the DuckDB connection pool and its configuration.
type DB struct {
	conn *sql.DB
	cfg  config.DatabaseConfig
}

// New opens the DuckDB database and verifies connectivity.
// A Path of ":memory:" opens an in-memory database, used by tests.
func New(cfg config.DatabaseConfig) (*DB, error) {
	path := cfg.Path
	if path == ":memory:" {
		path = ""
	} else if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	threads := cfg.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	maxMemory := cfg.MaxMemory
	if maxMemory == "" {
		maxMemory = "512MB"
	}

	dsn := fmt.Sprintf("%s?access_mode=read_write&threads=%d&max_memory=%s&preserve_insertion_order=%v",
		path, threads, maxMemory, cfg.PreserveInsertionOrder)

	conn, err := sql.Open("duckdb", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: opening duckdb: %v", ErrConnection, err)
	}
	configureConnectionPool(conn)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := conn.PingContext(ctx); err != nil {
		closeQuietly(conn)
		return nil, fmt.Errorf("%w: ping: %v", ErrConnection, err)
	}

	logging.Info().
		Str("path", cfg.Path).
		Int("threads", threads).
		Str("max_memory", maxMemory).
		Msg("Database connection established")

	return &DB{conn: conn, cfg: cfg}, nil
}

// configureConnectionPool sets pool limits suited to an embedded
// database: connections are cheap but each holds DuckDB resources.
func configureConnectionPool(conn *sql.DB) {
	conn.SetMaxOpenConns(runtime.NumCPU())
	conn.SetMaxIdleConns(2)
	conn.SetConnMaxLifetime(time.Hour)
	conn.SetConnMaxIdleTime(5 * time.Minute)
}

// Ping verifies the database connection is alive.
func (db *DB) Ping(ctx context.Context) error {
	if err := db.conn.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: ping: %v", ErrConnection, err)
	}
	return nil
}

// Close releases the connection pool.
func (db *DB) Close() error {
	logging.Debug().Msg("Closing database connection")
	return db.conn.Close()
}
