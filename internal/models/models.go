// StreamRec - Hybrid Recommendation Engine for Streaming Media Datasets
// Copyright 2026 Streamlytics
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/streamlytics/streamrec

// Package models defines the streaming star-schema entities and shared
// API response envelopes.
//
// The five entities mirror the warehouse dimension and fact tables:
// user_dim, content_dim, subscription_plan_dim, device_dim and
// fact_user_interactions. They are reference data for the recommendation
// core: created by the ingestion pipeline, read-only here.
package models

import "time"

// User is a row of user_dim.
type User struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	AgeGroup string `json:"age_group"`
}

// ContentItem is a row of content_dim.
type ContentItem struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Genre       string `json:"genre"`
	ReleaseYear int    `json:"release_year"`
}

// SubscriptionPlan is a row of subscription_plan_dim.
// Consumed only for display; scoring never reads it.
type SubscriptionPlan struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Features string  `json:"features"`
}

// Device is a row of device_dim.
// Consumed only for display; scoring never reads it.
type Device struct {
	ID           int    `json:"id"`
	Type         string `json:"type"`
	OS           string `json:"os"`
	Manufacturer string `json:"manufacturer"`
}

// InteractionEvent is a row of fact_user_interactions. Many events may
// exist per (user, content) pair; only Rating matters to the scorers.
// Rating uses a 0-5 scale where 0 means unrated.
type InteractionEvent struct {
	InteractionID     int       `json:"interaction_id"`
	UserID            int       `json:"user_id"`
	ContentID         int       `json:"content_id"`
	PlanID            int       `json:"plan_id"`
	DeviceID          int       `json:"device_id"`
	WatchTime         float64   `json:"watch_time"`
	Rating            float64   `json:"rating"`
	ActivityType      string    `json:"activity_type"`
	ActivityTimestamp time.Time `json:"activity_timestamp"`
	InteractionDate   time.Time `json:"interaction_date"`
}

// APIResponse is the standard JSON envelope for all API responses.
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Error    *APIError   `json:"error,omitempty"`
	Metadata Metadata    `json:"metadata"`
}

// APIError carries a machine-readable code and human-readable message.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Metadata contains response timing information.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms"`
}
