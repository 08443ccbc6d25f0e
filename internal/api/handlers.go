// StreamRec - Hybrid Recommendation Engine for Streaming Media Datasets
// Copyright 2026 Streamlytics
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/streamlytics/streamrec

// Package api exposes the recommendation engine and the star schema
// tables over HTTP. Handlers depend on narrow interfaces so tests can
// stub the engine and store independently.
package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/streamlytics/streamrec/internal/logging"
	"github.com/streamlytics/streamrec/internal/metrics"
	"github.com/streamlytics/streamrec/internal/models"
	"github.com/streamlytics/streamrec/internal/recommend"
	"github.com/streamlytics/streamrec/internal/render"
)

// Recommender runs one recommend-and-evaluate cycle.
type Recommender interface {
	RecommendAndEvaluate(ctx context.Context, userID int) (*recommend.Result, error)
}

// Store provides read access to the star schema.
type Store interface {
	FetchUsers(ctx context.Context) ([]models.User, error)
	FetchContent(ctx context.Context) ([]models.ContentItem, error)
	FetchPlans(ctx context.Context) ([]models.SubscriptionPlan, error)
	FetchDevices(ctx context.Context) ([]models.Device, error)
	FetchInteractions(ctx context.Context) ([]models.InteractionEvent, error)
	Ping(ctx context.Context) error
}

// Handler holds the API endpoint implementations.
type Handler struct {
	recommender Recommender
	store       Store
}

// NewHandler creates a new API handler.
func NewHandler(recommender Recommender, store Store) *Handler {
	return &Handler{
		recommender: recommender,
		store:       store,
	}
}

// GetRecommendations handles GET /api/v1/recommendations/user/{userID}.
// Returns the full recommend-and-evaluate result for a user.
func (h *Handler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	userID, err := strconv.Atoi(chi.URLParam(r, "userID"))
	if err != nil || userID < 1 {
		respondError(w, http.StatusBadRequest, "INVALID_USER_ID", "User ID must be a positive integer", err)
		return
	}

	result, err := h.recommender.RecommendAndEvaluate(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, recommend.ErrUnknownUser):
			metrics.RecordRecommendCycle("unknown_user", time.Since(start))
			respondError(w, http.StatusNotFound, "USER_NOT_FOUND", "User has no interactions", err)
		case errors.Is(err, recommend.ErrEmptyDataset), errors.Is(err, recommend.ErrEmptyCatalog):
			metrics.RecordRecommendCycle("no_data", time.Since(start))
			respondError(w, http.StatusServiceUnavailable, "NO_DATA", "Dataset is empty", err)
		default:
			metrics.RecordRecommendCycle("error", time.Since(start))
			respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Recommendation cycle failed", err)
		}
		return
	}

	metrics.RecordRecommendCycle("success", time.Since(start))
	metrics.RecommendMatrixUsers.Set(float64(result.UserCount))
	metrics.RecommendMatrixItems.Set(float64(result.ItemCount))
	metrics.RecommendEvaluationMSE.Observe(result.Evaluation.MSE)

	logging.Debug().
		Int("user_id", userID).
		Int("recommendations", len(result.Recommendations)).
		Float64("mse", result.Evaluation.MSE).
		Msg("Recommendations served")

	respondOK(w, result, start)
}

// GetTable handles GET /api/v1/tables/{table}. The table is served as a
// display-ready grid, the same shape the console mode prints.
func (h *Handler) GetTable(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ctx := r.Context()

	var (
		table render.Table
		err   error
	)

	switch name := chi.URLParam(r, "table"); name {
	case "users":
		var users []models.User
		if users, err = h.store.FetchUsers(ctx); err == nil {
			table = render.UsersTable(users)
		}
	case "content":
		var items []models.ContentItem
		if items, err = h.store.FetchContent(ctx); err == nil {
			table = render.ContentTable(items)
		}
	case "plans":
		var plans []models.SubscriptionPlan
		if plans, err = h.store.FetchPlans(ctx); err == nil {
			table = render.PlansTable(plans)
		}
	case "devices":
		var devices []models.Device
		if devices, err = h.store.FetchDevices(ctx); err == nil {
			table = render.DevicesTable(devices)
		}
	case "interactions":
		var events []models.InteractionEvent
		if events, err = h.store.FetchInteractions(ctx); err == nil {
			table = render.InteractionsTable(events)
		}
	default:
		respondError(w, http.StatusNotFound, "TABLE_NOT_FOUND", "Unknown table: "+sanitizeLogValue(name), nil)
		return
	}

	if err != nil {
		respondError(w, http.StatusInternalServerError, "QUERY_FAILED", "Failed to fetch table", err)
		return
	}

	respondOK(w, table, start)
}

// Health handles GET /api/v1/health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		respondError(w, http.StatusServiceUnavailable, "DATABASE_UNAVAILABLE", "Database ping failed", err)
		return
	}

	respondOK(w, map[string]string{"status": "healthy"}, start)
}
