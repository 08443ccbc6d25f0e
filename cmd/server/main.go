// StreamRec - Hybrid Recommendation Engine for Streaming Media Datasets
// Copyright 2026 Streamlytics
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/streamlytics/streamrec

// StreamRec serves hybrid recommendations over a streaming-media star
// schema. It runs either as an HTTP service or, with -once, as a batch
// job that prints the dataset tables and one recommendation cycle to
// stdout.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/streamlytics/streamrec/internal/api"
	"github.com/streamlytics/streamrec/internal/config"
	"github.com/streamlytics/streamrec/internal/database"
	"github.com/streamlytics/streamrec/internal/logging"
	"github.com/streamlytics/streamrec/internal/recommend"
)

func main() {
	once := flag.Bool("once", false, "run one recommendation cycle and exit")
	userID := flag.Int("user", 1, "target user for -once mode")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("db_path", cfg.Database.Path).
		Str("unrated_policy", cfg.Recommend.UnratedPolicy).
		Msg("Starting StreamRec")

	db, err := database.New(&cfg.Database)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()
	logging.Info().Msg("Database initialized successfully")

	engine, err := recommend.NewEngine(&recommend.Config{
		LikedThreshold: cfg.Recommend.LikedThreshold,
		TopK:           cfg.Recommend.TopK,
		UnratedPolicy:  recommend.UnratedPolicy(cfg.Recommend.UnratedPolicy),
	}, logging.Logger())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create recommendation engine")
	}
	engine.SetDataProvider(db)

	if *once {
		if err := runOnce(cfg, db, engine, *userID); err != nil {
			logging.Fatal().Err(err).Msg("Batch cycle failed")
		}
		return
	}

	serve(cfg, db, engine)
}

// serve runs the HTTP surface until SIGINT or SIGTERM.
func serve(cfg *config.Config, db *database.DB, engine *recommend.Engine) {
	handler := api.NewHandler(engine, db)
	router := api.NewRouter(&cfg.Server, handler)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logging.Info().Msg("Received shutdown signal")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Error().Err(err).Msg("HTTP server error")
		}
		return
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("Graceful shutdown failed")
	} else {
		logging.Info().Msg("HTTP server stopped")
	}
}
