// StreamRec - Hybrid Recommendation Engine for Streaming Media Datasets
// Copyright 2026 Streamlytics
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/streamlytics/streamrec

package recommend

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// DataProvider defines the interface for fetching the data snapshot a
// cycle operates on. This is typically implemented by the database layer.
type DataProvider interface {
	// GetInteractions returns all user-content interactions.
	GetInteractions(ctx context.Context) ([]Interaction, error)

	// GetCatalog returns the full content catalog with metadata.
	GetCatalog(ctx context.Context) ([]Item, error)
}

// Engine runs recommend-and-evaluate cycles. Each cycle fetches an
// independent data snapshot and rebuilds all derived matrices, so the
// engine is safe for concurrent use.
type Engine struct {
	config       *Config
	logger       zerolog.Logger
	dataProvider DataProvider
}

// NewEngine creates a new recommendation engine.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Engine{
		config: cfg,
		logger: logger.With().Str("component", "recommend").Logger(),
	}, nil
}

// SetDataProvider sets the data provider the engine fetches from.
func (e *Engine) SetDataProvider(dp DataProvider) {
	e.dataProvider = dp
}

// GetConfig returns a copy of the engine configuration.
func (e *Engine) GetConfig() *Config {
	return e.config.Clone()
}

// RecommendAndEvaluate runs one full cycle for the target user: fetch a
// snapshot, build the rating matrix, score with collaborative and
// content-based filtering, and evaluate prediction accuracy.
//
// All-or-nothing: any error aborts the cycle before partial results are
// produced. ErrUnknownUser, ErrEmptyDataset and ErrEmptyCatalog are
// errors.Is-matchable through the returned error chain.
func (e *Engine) RecommendAndEvaluate(ctx context.Context, userID int) (*Result, error) {
	start := time.Now()

	logger := e.logger.With().Int("user_id", userID).Logger()
	logger.Debug().Msg("starting recommendation cycle")

	if e.dataProvider == nil {
		return nil, fmt.Errorf("data provider not set")
	}

	interactions, err := e.dataProvider.GetInteractions(ctx)
	if err != nil {
		return nil, fmt.Errorf("get interactions: %w", err)
	}

	items, err := e.dataProvider.GetCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("get catalog: %w", err)
	}
	if len(items) == 0 {
		return nil, ErrEmptyCatalog
	}

	matrix, err := BuildRatingMatrix(interactions)
	if err != nil {
		return nil, err
	}

	// Validate the target before any scoring begins.
	if _, ok := matrix.UserIndex(userID); !ok {
		return nil, fmt.Errorf("user %d: %w", userID, ErrUnknownUser)
	}

	logger.Debug().
		Int("users", len(matrix.UserIDs)).
		Int("items", len(matrix.ContentIDs)).
		Int("catalog", len(items)).
		Msg("rating matrix built")

	predicted, err := PredictRatings(matrix, userID, e.config.UnratedPolicy)
	if err != nil {
		return nil, fmt.Errorf("collaborative filtering: %w", err)
	}

	recs, err := RecommendContent(items, matrix, userID, e.config.LikedThreshold, e.config.TopK)
	if err != nil {
		return nil, fmt.Errorf("content filtering: %w", err)
	}

	eval, err := Evaluate(matrix, userID, predicted, e.config.UnratedPolicy)
	if err != nil {
		return nil, fmt.Errorf("evaluation: %w", err)
	}

	result := &Result{
		UserID:          userID,
		Recommendations: recs,
		Predicted:       predicted,
		ContentIDs:      matrix.ContentIDs,
		Evaluation:      eval,
		UserCount:       len(matrix.UserIDs),
		ItemCount:       len(matrix.ContentIDs),
		LatencyMS:       time.Since(start).Milliseconds(),
		Timestamp:       time.Now(),
	}

	logger.Debug().
		Int("recommendations", len(recs)).
		Float64("mse", eval.MSE).
		Str("label", eval.Label).
		Int64("latency_ms", result.LatencyMS).
		Msg("recommendation cycle complete")

	return result, nil
}
