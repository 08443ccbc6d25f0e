// StreamRec - Hybrid Recommendation Engine for Streaming Media Datasets
// Copyright 2026 Streamlytics
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/streamlytics/streamrec

package recommend

import "fmt"

// Evaluate compares the predicted ratings against the target user's true
// rating row and reports the mean squared error with a qualitative tier.
//
// Under UnratedAsZero every 0 sentinel counts as a true zero rating,
// which inflates the error for users with sparse histories. That is the
// legacy behavior, kept intentionally. Under UnratedExcluded the error
// runs over rated cells only; a user with no rated cells evaluates to
// MSE 0.
//
// Returns ErrUnknownUser for a target without a matrix row, and an error
// when the prediction vector does not match the matrix column count.
func Evaluate(m *RatingMatrix, userID int, predicted PredictedRatings, policy UnratedPolicy) (Evaluation, error) {
	row, ok := m.Row(userID)
	if !ok {
		return Evaluation{}, fmt.Errorf("user %d: %w", userID, ErrUnknownUser)
	}

	if len(predicted) != len(row) {
		return Evaluation{}, fmt.Errorf("prediction length %d does not match item count %d", len(predicted), len(row))
	}

	var sum float64
	count := 0
	for i := range row {
		if policy == UnratedExcluded && row[i] == 0 {
			continue
		}
		diff := predicted[i] - row[i]
		sum += diff * diff
		count++
	}

	var mse float64
	if count > 0 {
		mse = sum / float64(count)
	}

	return Evaluation{MSE: mse, Label: accuracyLabel(mse)}, nil
}

// accuracyLabel classifies an MSE into the three-tier accuracy label.
func accuracyLabel(mse float64) string {
	switch {
	case mse == 0:
		return LabelPerfect
	case mse > 1:
		return LabelInaccurate
	default:
		return LabelPartial
	}
}
