// StreamRec - Hybrid Recommendation Engine for Streaming Media Datasets
// Copyright 2026 Streamlytics
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/streamlytics/streamrec

package database

import (
	"context"
	"fmt"

	"github.com/streamlytics/streamrec/internal/logging"
)

// SeedMockData populates the star schema with a small demo dataset.
// It is idempotent: seeding is skipped when user_dim already has rows.
func (db *DB) SeedMockData(ctx context.Context) error {
	var count int
	if err := db.conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM user_dim").Scan(&count); err != nil {
		return fmt.Errorf("check seed state: %w", err)
	}
	if count > 0 {
		logging.Debug().Int("users", count).Msg("Mock data already present, skipping seed")
		return nil
	}

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	statements := []string{
		`INSERT INTO user_dim (user_id, user_name, location, age_group) VALUES
			(1, 'ava', 'Berlin', '18-24'),
			(2, 'ben', 'Madrid', '25-34'),
			(3, 'chloe', 'Austin', '25-34'),
			(4, 'dan', 'Osaka', '35-44'),
			(5, 'emil', 'Oslo', '45-54')`,

		`INSERT INTO content_dim (content_id, title, genre, release_year) VALUES
			(101, 'Neon Skyline', 'SciFi', 2019),
			(102, 'Harbor Lights', 'Drama', 2004),
			(103, 'Last Orbit', 'SciFi', 2022),
			(104, 'Second Serve', 'Comedy', 2011),
			(105, 'Iron Ridge', 'Action', 2015),
			(106, 'Quiet Rooms', 'Drama', 1998)`,

		`INSERT INTO subscription_plan_dim (plan_id, plan_name, price, features) VALUES
			(1, 'Basic', 7.99, 'sd,1-screen'),
			(2, 'Standard', 12.99, 'hd,2-screens'),
			(3, 'Premium', 18.99, 'uhd,4-screens,offline')`,

		`INSERT INTO device_dim (device_id, device_type, os, manufacturer) VALUES
			(1, 'tv', 'webos', 'LG'),
			(2, 'mobile', 'android', 'Samsung'),
			(3, 'tablet', 'ios', 'Apple'),
			(4, 'desktop', 'windows', 'Dell')`,

		`INSERT INTO fact_user_interactions
			(interaction_id, user_id, content_id, plan_id, device_id, watch_time, rating, activity_type, activity_timestamp, interaction_date) VALUES
			(1,  1, 101, 2, 1, 118.5, 5, 'watch',  TIMESTAMP '2026-08-01 20:15:00', DATE '2026-08-01'),
			(2,  1, 103, 2, 1,  95.0, 4, 'watch',  TIMESTAMP '2026-08-02 21:02:00', DATE '2026-08-02'),
			(3,  1, 104, 2, 2,  12.0, 0, 'browse', TIMESTAMP '2026-08-03 08:40:00', DATE '2026-08-03'),
			(4,  2, 101, 1, 2, 110.0, 4, 'watch',  TIMESTAMP '2026-08-01 22:10:00', DATE '2026-08-01'),
			(5,  2, 102, 1, 4, 101.3, 5, 'watch',  TIMESTAMP '2026-08-04 19:25:00', DATE '2026-08-04'),
			(6,  2, 105, 1, 4,  88.0, 3, 'watch',  TIMESTAMP '2026-08-05 20:55:00', DATE '2026-08-05'),
			(7,  3, 102, 3, 3,  99.9, 4, 'watch',  TIMESTAMP '2026-08-02 18:05:00', DATE '2026-08-02'),
			(8,  3, 106, 3, 3, 104.2, 5, 'watch',  TIMESTAMP '2026-08-06 21:30:00', DATE '2026-08-06'),
			(9,  4, 105, 2, 1, 121.7, 5, 'watch',  TIMESTAMP '2026-08-03 20:00:00', DATE '2026-08-03'),
			(10, 4, 101, 2, 1,  45.0, 2, 'watch',  TIMESTAMP '2026-08-07 22:45:00', DATE '2026-08-07'),
			(11, 5, 104, 1, 2,  93.4, 4, 'watch',  TIMESTAMP '2026-08-04 17:20:00', DATE '2026-08-04'),
			(12, 1, 104, 2, 2,  91.0, 3, 'watch',  TIMESTAMP '2026-08-08 20:30:00', DATE '2026-08-08')`,
	}

	for _, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("seed insert: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed transaction: %w", err)
	}

	logging.Info().Msg("Seeded mock streaming dataset")
	return nil
}
