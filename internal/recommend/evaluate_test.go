// StreamRec - Hybrid Recommendation Engine for Streaming Media Datasets
// Copyright 2026 Streamlytics
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/streamlytics/streamrec

package recommend

import (
	"errors"
	"testing"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name         string
		interactions []Interaction
		userID       int
		predicted    PredictedRatings
		policy       UnratedPolicy
		wantErr      bool
		wantErrIs    error
		wantMSE      float64
		wantLabel    string
	}{
		{
			name: "exact predictions are perfectly accurate",
			interactions: []Interaction{
				{UserID: 1, ContentID: 10, Rating: 5},
				{UserID: 1, ContentID: 20, Rating: 3},
			},
			userID:    1,
			predicted: PredictedRatings{5, 3},
			policy:    UnratedAsZero,
			wantMSE:   0,
			wantLabel: LabelPerfect,
		},
		{
			name: "mse above one is not accurate",
			// Row [5, 0], predicted [5, 1.5]: MSE = 2.25/2 = 1.125.
			interactions: []Interaction{
				{UserID: 1, ContentID: 10, Rating: 5},
				{UserID: 1, ContentID: 20, Rating: 0},
			},
			userID:    1,
			predicted: PredictedRatings{5, 1.5},
			policy:    UnratedAsZero,
			wantMSE:   1.125,
			wantLabel: LabelInaccurate,
		},
		{
			name: "mse exactly one is partially accurate",
			interactions: []Interaction{
				{UserID: 1, ContentID: 10, Rating: 0},
				{UserID: 1, ContentID: 20, Rating: 0},
			},
			userID:    1,
			predicted: PredictedRatings{1, 1},
			policy:    UnratedAsZero,
			wantMSE:   1,
			wantLabel: LabelPartial,
		},
		{
			name: "zero policy counts sentinel cells",
			// Row [5, 0, 0, 0]: three sentinel cells each contribute
			// a squared error of 1 against predictions of 1.
			interactions: []Interaction{
				{UserID: 1, ContentID: 10, Rating: 5},
				{UserID: 1, ContentID: 20, Rating: 0},
				{UserID: 1, ContentID: 30, Rating: 0},
				{UserID: 1, ContentID: 40, Rating: 0},
			},
			userID:    1,
			predicted: PredictedRatings{5, 1, 1, 1},
			policy:    UnratedAsZero,
			wantMSE:   0.75,
			wantLabel: LabelPartial,
		},
		{
			name: "exclude policy skips sentinel cells",
			interactions: []Interaction{
				{UserID: 1, ContentID: 10, Rating: 5},
				{UserID: 1, ContentID: 20, Rating: 0},
				{UserID: 1, ContentID: 30, Rating: 0},
				{UserID: 1, ContentID: 40, Rating: 0},
			},
			userID:    1,
			predicted: PredictedRatings{5, 1, 1, 1},
			policy:    UnratedExcluded,
			wantMSE:   0,
			wantLabel: LabelPerfect,
		},
		{
			name: "exclude policy with no rated cells",
			interactions: []Interaction{
				{UserID: 1, ContentID: 10, Rating: 0},
				{UserID: 2, ContentID: 10, Rating: 4},
			},
			userID:    1,
			predicted: PredictedRatings{2},
			policy:    UnratedExcluded,
			wantMSE:   0,
			wantLabel: LabelPerfect,
		},
		{
			name: "unknown user",
			interactions: []Interaction{
				{UserID: 1, ContentID: 10, Rating: 5},
			},
			userID:    42,
			predicted: PredictedRatings{5},
			policy:    UnratedAsZero,
			wantErr:   true,
			wantErrIs: ErrUnknownUser,
		},
		{
			name: "prediction length mismatch",
			interactions: []Interaction{
				{UserID: 1, ContentID: 10, Rating: 5},
				{UserID: 1, ContentID: 20, Rating: 3},
			},
			userID:    1,
			predicted: PredictedRatings{5},
			policy:    UnratedAsZero,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := mustMatrix(t, tt.interactions)

			got, err := Evaluate(m, tt.userID, tt.predicted, tt.policy)

			if tt.wantErr {
				if err == nil {
					t.Fatal("Evaluate() error = nil, want error")
				}
				if tt.wantErrIs != nil && !errors.Is(err, tt.wantErrIs) {
					t.Fatalf("Evaluate() error = %v, want %v", err, tt.wantErrIs)
				}
				return
			}

			if err != nil {
				t.Fatalf("Evaluate() error = %v", err)
			}
			if !almostEqual(got.MSE, tt.wantMSE) {
				t.Errorf("MSE = %v, want %v", got.MSE, tt.wantMSE)
			}
			if got.Label != tt.wantLabel {
				t.Errorf("Label = %q, want %q", got.Label, tt.wantLabel)
			}
		})
	}
}

func TestAccuracyLabel(t *testing.T) {
	tests := []struct {
		mse  float64
		want string
	}{
		{0, LabelPerfect},
		{0.01, LabelPartial},
		{0.5, LabelPartial},
		{1, LabelPartial},
		{1.0000001, LabelInaccurate},
		{25, LabelInaccurate},
	}

	for _, tt := range tests {
		if got := accuracyLabel(tt.mse); got != tt.want {
			t.Errorf("accuracyLabel(%v) = %q, want %q", tt.mse, got, tt.want)
		}
	}
}
