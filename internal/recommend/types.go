// StreamRec - Hybrid Recommendation Engine for Streaming Media Datasets
// Copyright 2026 Streamlytics
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/streamlytics/streamrec

package recommend

import (
	"errors"
	"time"
)

// Sentinel errors for the recommendation core. All are surfaced to the
// caller of the engine entry point before any scoring begins; the core
// performs no retries.
var (
	// ErrEmptyDataset indicates zero distinct users or content items in
	// the interaction data.
	ErrEmptyDataset = errors.New("interaction dataset is empty")

	// ErrEmptyCatalog indicates an empty content table.
	ErrEmptyCatalog = errors.New("content catalog is empty")

	// ErrUnknownUser indicates the target user has no row in the rating
	// matrix.
	ErrUnknownUser = errors.New("user not present in rating matrix")
)

// UnratedPolicy selects how 0 sentinel ratings are treated in similarity
// and error computations.
type UnratedPolicy string

const (
	// UnratedAsZero treats sentinel zeros as literal zero ratings.
	// This reproduces the legacy pipeline output exactly.
	UnratedAsZero UnratedPolicy = "zero"

	// UnratedExcluded masks unrated cells out of cosine similarity and
	// MSE. Cleaner, but changes observable output.
	UnratedExcluded UnratedPolicy = "exclude"
)

// Interaction is a single user-content rating signal. Many interactions
// may exist per (user, content) pair; the matrix builder aggregates them.
type Interaction struct {
	// UserID is the internal user identifier.
	UserID int `json:"user_id"`

	// ContentID is the content item identifier.
	ContentID int `json:"content_id"`

	// Rating is the 0-5 rating, 0 meaning unrated.
	Rating float64 `json:"rating"`
}

// Item is a content item with the metadata the content-based scorer
// needs: a categorical genre and a release year.
type Item struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Genre string `json:"genre"`
	Year  int    `json:"year"`
}

// RatingMatrix is a dense user-by-content rating table. Rows follow
// sorted distinct user IDs, columns follow sorted distinct content IDs,
// and absent (user, content) pairs hold 0.
type RatingMatrix struct {
	// UserIDs are the distinct user IDs in ascending order.
	UserIDs []int

	// ContentIDs are the distinct content IDs in ascending order.
	ContentIDs []int

	// Ratings is the len(UserIDs) x len(ContentIDs) rating grid.
	Ratings [][]float64

	userIndex    map[int]int
	contentIndex map[int]int
}

// UserIndex returns the row index for a user ID.
func (m *RatingMatrix) UserIndex(userID int) (int, bool) {
	idx, ok := m.userIndex[userID]
	return idx, ok
}

// ContentIndex returns the column index for a content ID.
func (m *RatingMatrix) ContentIndex(contentID int) (int, bool) {
	idx, ok := m.contentIndex[contentID]
	return idx, ok
}

// Row returns the rating row for a user ID. The returned slice aliases
// the matrix; callers must not mutate it.
func (m *RatingMatrix) Row(userID int) ([]float64, bool) {
	idx, ok := m.userIndex[userID]
	if !ok {
		return nil, false
	}
	return m.Ratings[idx], true
}

// Rating returns the aggregated rating for a (user, content) pair, or 0
// when either ID is absent.
func (m *RatingMatrix) Rating(userID, contentID int) float64 {
	ui, ok := m.userIndex[userID]
	if !ok {
		return 0
	}
	ci, ok := m.contentIndex[contentID]
	if !ok {
		return 0
	}
	return m.Ratings[ui][ci]
}

// PredictedRatings holds one predicted rating per content item for a
// single target user, aligned with RatingMatrix.ContentIDs.
type PredictedRatings []float64

// Recommendation is one entry of the ranked content-based list.
type Recommendation struct {
	ContentID int     `json:"content_id"`
	Title     string  `json:"title"`
	Genre     string  `json:"genre"`
	Score     float64 `json:"score"`
}

// Accuracy tier labels for Evaluation.Label.
const (
	LabelPerfect    = "perfectly accurate"
	LabelPartial    = "partially accurate"
	LabelInaccurate = "not accurate"
)

// Evaluation reports prediction quality for the target user.
type Evaluation struct {
	// MSE is the mean squared error between the user's true rating row
	// and the predicted ratings.
	MSE float64 `json:"mse"`

	// Label is the qualitative accuracy tier: LabelPerfect when MSE is
	// 0, LabelInaccurate when MSE exceeds 1, LabelPartial otherwise.
	Label string `json:"label"`
}

// Result bundles the output of one recommend-and-evaluate cycle.
// Either a full Result is returned or one error; no partial results.
type Result struct {
	// UserID is the target user.
	UserID int `json:"user_id"`

	// Recommendations is the content-based top list, descending by
	// score with stable catalog-order ties.
	Recommendations []Recommendation `json:"recommendations"`

	// Predicted holds the collaborative filtering rating predictions,
	// aligned with ContentIDs.
	Predicted PredictedRatings `json:"predicted"`

	// ContentIDs is the matrix column order Predicted is aligned with.
	ContentIDs []int `json:"content_ids"`

	// Evaluation scores the predictions against the true rating row.
	Evaluation Evaluation `json:"evaluation"`

	// UserCount and ItemCount are the rating matrix dimensions.
	UserCount int `json:"user_count"`
	ItemCount int `json:"item_count"`

	// LatencyMS is the total cycle latency in milliseconds.
	LatencyMS int64 `json:"latency_ms"`

	// Timestamp is when the cycle completed.
	Timestamp time.Time `json:"timestamp"`
}
