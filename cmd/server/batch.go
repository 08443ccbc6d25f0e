// StreamRec - Hybrid Recommendation Engine for Streaming Media Datasets
// Copyright 2026 Streamlytics
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/streamlytics/streamrec

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/streamlytics/streamrec/internal/config"
	"github.com/streamlytics/streamrec/internal/database"
	"github.com/streamlytics/streamrec/internal/recommend"
	"github.com/streamlytics/streamrec/internal/render"
)

// runOnce prints the five dataset tables, then runs one
// recommend-and-evaluate cycle for the target user and prints the
// ranked list and accuracy summary.
func runOnce(cfg *config.Config, db *database.DB, engine *recommend.Engine, userID int) error {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Recommend.CycleTimeout)
	defer cancel()

	users, err := db.FetchUsers(ctx)
	if err != nil {
		return fmt.Errorf("fetch users: %w", err)
	}
	content, err := db.FetchContent(ctx)
	if err != nil {
		return fmt.Errorf("fetch content: %w", err)
	}
	plans, err := db.FetchPlans(ctx)
	if err != nil {
		return fmt.Errorf("fetch plans: %w", err)
	}
	devices, err := db.FetchDevices(ctx)
	if err != nil {
		return fmt.Errorf("fetch devices: %w", err)
	}
	events, err := db.FetchInteractions(ctx)
	if err != nil {
		return fmt.Errorf("fetch interactions: %w", err)
	}

	tables := []render.Table{
		render.UsersTable(users),
		render.ContentTable(content),
		render.PlansTable(plans),
		render.DevicesTable(devices),
		render.InteractionsTable(events),
	}

	result, err := engine.RecommendAndEvaluate(ctx, userID)
	if err != nil {
		return fmt.Errorf("recommendation cycle: %w", err)
	}

	tables = append(tables,
		render.RecommendationsTable(userID, result.Recommendations),
		render.EvaluationTable(result),
	)

	for _, t := range tables {
		if err := t.Render(os.Stdout); err != nil {
			return fmt.Errorf("render %s: %w", t.Title, err)
		}
		fmt.Println()
	}

	return nil
}
