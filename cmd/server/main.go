// Wisata - Tourism Destination Recommendation API
// Copyright 2026 Wisata Jogja
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wisatajogja/wisata

// Command server runs the Wisata recommendation API.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/wisatajogja/wisata/internal/api"
	"github.com/wisatajogja/wisata/internal/config"
	"github.com/wisatajogja/wisata/internal/database"
	"github.com/wisatajogja/wisata/internal/logging"
	"github.com/wisatajogja/wisata/internal/recommend"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	logging.Info().
		Str("version", api.Version).
		Str("environment", cfg.Server.Environment).
		Msg("Starting wisata-api")

	db, err := database.New(cfg.Database)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Failed to close database")
		}
	}()

	initCtx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	seedPath := ""
	if cfg.Seed.Enabled {
		seedPath = cfg.Seed.DatasetPath
	}
	if err := db.EnsureInitialized(initCtx, seedPath); err != nil {
		cancel()
		logging.Fatal().Err(err).Msg("Failed to initialize database")
	}
	cancel()

	engine := recommend.NewEngine(db, recommend.VectorizerParams{
		MaxFeatures: cfg.Recommend.MaxFeatures,
		NgramMin:    cfg.Recommend.NgramMin,
		NgramMax:    cfg.Recommend.NgramMax,
		MinDocFreq:  cfg.Recommend.MinDocFreq,
		MaxDocShare: cfg.Recommend.MaxDocShare,
	})

	handlers := api.NewHandlers(db, engine, cfg.API)
	router := api.NewRouter(handlers, cfg.Security)

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       2 * cfg.Server.Timeout,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		errCh <- server.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logging.Info().Str("signal", sig.String()).Msg("Shutdown signal received")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("HTTP server failed")
		}
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("Graceful shutdown failed")
		return
	}
	logging.Info().Msg("Server stopped")
}
