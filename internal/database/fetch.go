// StreamRec - Hybrid Recommendation Engine for Streaming Media Datasets
// Copyright 2026 Streamlytics
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/streamlytics/streamrec

package database

import (
	"context"
	"fmt"
	"time"

	"github.com/streamlytics/streamrec/internal/metrics"
	"github.com/streamlytics/streamrec/internal/models"
)

const queryTimeout = 30 * time.Second

// FetchUsers returns all user_dim rows ordered by user ID.
func (db *DB) FetchUsers(ctx context.Context) ([]models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	start := time.Now()
	rows, err := db.conn.QueryContext(ctx, `
		SELECT user_id, user_name, COALESCE(location, ''), COALESCE(age_group, '')
		FROM user_dim
		ORDER BY user_id
	`)
	metrics.RecordDBQuery("select", "user_dim", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Location, &u.AgeGroup); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}

	metrics.DBRowsFetched.WithLabelValues("user_dim").Add(float64(len(users)))
	return users, nil
}

// FetchContent returns all content_dim rows ordered by content ID.
func (db *DB) FetchContent(ctx context.Context) ([]models.ContentItem, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	start := time.Now()
	rows, err := db.conn.QueryContext(ctx, `
		SELECT content_id, title, genre, release_year
		FROM content_dim
		ORDER BY content_id
	`)
	metrics.RecordDBQuery("select", "content_dim", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("query content: %w", err)
	}
	defer rows.Close()

	var items []models.ContentItem
	for rows.Next() {
		var c models.ContentItem
		if err := rows.Scan(&c.ID, &c.Title, &c.Genre, &c.ReleaseYear); err != nil {
			return nil, fmt.Errorf("scan content: %w", err)
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate content: %w", err)
	}

	metrics.DBRowsFetched.WithLabelValues("content_dim").Add(float64(len(items)))
	return items, nil
}

// FetchPlans returns all subscription_plan_dim rows ordered by plan ID.
func (db *DB) FetchPlans(ctx context.Context) ([]models.SubscriptionPlan, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	start := time.Now()
	rows, err := db.conn.QueryContext(ctx, `
		SELECT plan_id, plan_name, COALESCE(price, 0), COALESCE(features, '')
		FROM subscription_plan_dim
		ORDER BY plan_id
	`)
	metrics.RecordDBQuery("select", "subscription_plan_dim", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("query plans: %w", err)
	}
	defer rows.Close()

	var plans []models.SubscriptionPlan
	for rows.Next() {
		var p models.SubscriptionPlan
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Features); err != nil {
			return nil, fmt.Errorf("scan plan: %w", err)
		}
		plans = append(plans, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate plans: %w", err)
	}

	metrics.DBRowsFetched.WithLabelValues("subscription_plan_dim").Add(float64(len(plans)))
	return plans, nil
}

// FetchDevices returns all device_dim rows ordered by device ID.
func (db *DB) FetchDevices(ctx context.Context) ([]models.Device, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	start := time.Now()
	rows, err := db.conn.QueryContext(ctx, `
		SELECT device_id, device_type, COALESCE(os, ''), COALESCE(manufacturer, '')
		FROM device_dim
		ORDER BY device_id
	`)
	metrics.RecordDBQuery("select", "device_dim", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("query devices: %w", err)
	}
	defer rows.Close()

	var devices []models.Device
	for rows.Next() {
		var d models.Device
		if err := rows.Scan(&d.ID, &d.Type, &d.OS, &d.Manufacturer); err != nil {
			return nil, fmt.Errorf("scan device: %w", err)
		}
		devices = append(devices, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate devices: %w", err)
	}

	metrics.DBRowsFetched.WithLabelValues("device_dim").Add(float64(len(devices)))
	return devices, nil
}

// FetchInteractions returns all fact rows in interaction ID order. The
// order matters: later events for the same (user, content) pair override
// earlier ones when the rating matrix is built.
func (db *DB) FetchInteractions(ctx context.Context) ([]models.InteractionEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	start := time.Now()
	rows, err := db.conn.QueryContext(ctx, `
		SELECT
			interaction_id,
			user_id,
			content_id,
			COALESCE(plan_id, 0),
			COALESCE(device_id, 0),
			COALESCE(watch_time, 0),
			COALESCE(rating, 0),
			COALESCE(activity_type, ''),
			COALESCE(activity_timestamp, TIMESTAMP '1970-01-01 00:00:00'),
			COALESCE(interaction_date, DATE '1970-01-01')
		FROM fact_user_interactions
		ORDER BY interaction_id
	`)
	metrics.RecordDBQuery("select", "fact_user_interactions", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("query interactions: %w", err)
	}
	defer rows.Close()

	var events []models.InteractionEvent
	for rows.Next() {
		var e models.InteractionEvent
		if err := rows.Scan(
			&e.InteractionID,
			&e.UserID,
			&e.ContentID,
			&e.PlanID,
			&e.DeviceID,
			&e.WatchTime,
			&e.Rating,
			&e.ActivityType,
			&e.ActivityTimestamp,
			&e.InteractionDate,
		); err != nil {
			return nil, fmt.Errorf("scan interaction: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate interactions: %w", err)
	}

	metrics.DBRowsFetched.WithLabelValues("fact_user_interactions").Add(float64(len(events)))
	return events, nil
}
