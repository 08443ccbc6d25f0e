// StreamRec - Hybrid Recommendation Engine for Streaming Media Datasets
// Copyright 2026 Streamlytics
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/streamlytics/streamrec

package database

import (
	"context"
	"fmt"
	"time"
)

func schemaContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 30*time.Second)
}

// createTables creates the star schema tables
func (db *DB) createTables() error {
	ctx, cancel := schemaContext()
	defer cancel()

	for _, query := range tableCreationQueries() {
		if _, err := db.conn.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to execute query: %s: %w", query, err)
		}
	}

	return nil
}

// tableCreationQueries returns the table creation SQL statements
func tableCreationQueries() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS user_dim (
			user_id INTEGER PRIMARY KEY,
			user_name TEXT NOT NULL,
			location TEXT,
			age_group TEXT
		)`,

		`CREATE TABLE IF NOT EXISTS content_dim (
			content_id INTEGER PRIMARY KEY,
			title TEXT NOT NULL,
			genre TEXT NOT NULL,
			release_year INTEGER NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS subscription_plan_dim (
			plan_id INTEGER PRIMARY KEY,
			plan_name TEXT NOT NULL,
			price DOUBLE,
			features TEXT
		)`,

		`CREATE TABLE IF NOT EXISTS device_dim (
			device_id INTEGER PRIMARY KEY,
			device_type TEXT NOT NULL,
			os TEXT,
			manufacturer TEXT
		)`,

		// Fact table. No unique constraint on (user_id, content_id):
		// a user may interact with the same title many times and the
		// scorers resolve duplicates at pivot time.
		`CREATE TABLE IF NOT EXISTS fact_user_interactions (
			interaction_id INTEGER PRIMARY KEY,
			user_id INTEGER NOT NULL,
			content_id INTEGER NOT NULL,
			plan_id INTEGER,
			device_id INTEGER,
			watch_time DOUBLE DEFAULT 0,
			rating DOUBLE DEFAULT 0,
			activity_type TEXT,
			activity_timestamp TIMESTAMP,
			interaction_date DATE
		)`,
	}
}
