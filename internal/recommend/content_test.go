// StreamRec - Hybrid Recommendation Engine for Streaming Media Datasets
// Copyright 2026 Streamlytics
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/streamlytics/streamrec

package recommend

import (
	"errors"
	"math"
	"testing"
)

func TestBuildFeatureMatrix(t *testing.T) {
	tests := []struct {
		name  string
		items []Item
		want  [][]float64
	}{
		{
			name: "one hot genres with normalized year",
			items: []Item{
				{ID: 1, Genre: "Action", Year: 2000},
				{ID: 2, Genre: "action", Year: 2010},
				{ID: 3, Genre: "Drama", Year: 2005},
			},
			want: [][]float64{
				{1, 0, 0},
				{1, 0, 1},
				{0, 1, 0.5},
			},
		},
		{
			name: "identical years pin the year component",
			items: []Item{
				{ID: 1, Genre: "Comedy", Year: 1999},
				{ID: 2, Genre: "Horror", Year: 1999},
			},
			want: [][]float64{
				{1, 0, 0.5},
				{0, 1, 0.5},
			},
		},
		{
			name: "single item",
			items: []Item{
				{ID: 1, Genre: "SciFi", Year: 2020},
			},
			want: [][]float64{
				{1, 0.5},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildFeatureMatrix(tt.items)

			if len(got) != len(tt.want) {
				t.Fatalf("len(features) = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if len(got[i]) != len(tt.want[i]) {
					t.Fatalf("len(features[%d]) = %d, want %d", i, len(got[i]), len(tt.want[i]))
				}
				for j := range got[i] {
					if !almostEqual(got[i][j], tt.want[i][j]) {
						t.Errorf("features[%d][%d] = %v, want %v", i, j, got[i][j], tt.want[i][j])
					}
				}
			}
		})
	}
}

func TestContentSimilarities(t *testing.T) {
	t.Run("empty catalog", func(t *testing.T) {
		if _, err := ContentSimilarities(nil); !errors.Is(err, ErrEmptyCatalog) {
			t.Fatalf("ContentSimilarities(nil) error = %v, want %v", err, ErrEmptyCatalog)
		}
	})

	t.Run("symmetric with unit diagonal", func(t *testing.T) {
		items := []Item{
			{ID: 1, Genre: "Action", Year: 2000},
			{ID: 2, Genre: "Action", Year: 2010},
			{ID: 3, Genre: "Drama", Year: 2005},
		}

		sims, err := ContentSimilarities(items)
		if err != nil {
			t.Fatalf("ContentSimilarities() error = %v", err)
		}

		for i := range sims {
			if !almostEqual(sims[i][i], 1) {
				t.Errorf("diagonal sims[%d][%d] = %v, want 1", i, i, sims[i][i])
			}
			for j := range sims[i] {
				if !almostEqual(sims[i][j], sims[j][i]) {
					t.Errorf("asymmetric: sims[%d][%d]=%v vs sims[%d][%d]=%v", i, j, sims[i][j], j, i, sims[j][i])
				}
			}
		}
	})
}

func TestRecommendContent(t *testing.T) {
	catalog := []Item{
		{ID: 10, Title: "Alpha", Genre: "Action", Year: 2000},
		{ID: 20, Title: "Bravo", Genre: "Action", Year: 2010},
		{ID: 30, Title: "Chaos", Genre: "Drama", Year: 2005},
	}

	tests := []struct {
		name         string
		items        []Item
		interactions []Interaction
		userID       int
		threshold    float64
		topK         int
		wantErr      error
		verify       func(t *testing.T, got []Recommendation)
	}{
		{
			name:    "empty catalog",
			items:   nil,
			userID:  1,
			topK:    5,
			wantErr: ErrEmptyCatalog,
			interactions: []Interaction{
				{UserID: 1, ContentID: 10, Rating: 5},
			},
		},
		{
			name:  "unknown user",
			items: catalog,
			interactions: []Interaction{
				{UserID: 1, ContentID: 10, Rating: 5},
			},
			userID:  99,
			topK:    5,
			wantErr: ErrUnknownUser,
		},
		{
			name:  "liked item pulls same genre first",
			items: catalog,
			// Alpha rated 5 and liked, Bravo shares its genre,
			// Chaos shares nothing.
			interactions: []Interaction{
				{UserID: 1, ContentID: 10, Rating: 5},
				{UserID: 1, ContentID: 20, Rating: 0},
				{UserID: 1, ContentID: 30, Rating: 0},
			},
			userID:    1,
			threshold: 3,
			topK:      5,
			verify: func(t *testing.T, got []Recommendation) {
				if len(got) != 3 {
					t.Fatalf("len(recs) = %d, want 3", len(got))
				}
				if got[0].ContentID != 10 || got[1].ContentID != 20 || got[2].ContentID != 30 {
					t.Fatalf("order = [%d %d %d], want [10 20 30]",
						got[0].ContentID, got[1].ContentID, got[2].ContentID)
				}
				if !almostEqual(got[0].Score, 5) {
					t.Errorf("score[Alpha] = %v, want 5", got[0].Score)
				}
				if !almostEqual(got[1].Score, 5/math.Sqrt2) {
					t.Errorf("score[Bravo] = %v, want %v", got[1].Score, 5/math.Sqrt2)
				}
				if got[2].Score != 0 {
					t.Errorf("score[Chaos] = %v, want 0", got[2].Score)
				}
			},
		},
		{
			name:  "no liked items yields catalog order zero scores",
			items: catalog,
			interactions: []Interaction{
				{UserID: 1, ContentID: 10, Rating: 2},
				{UserID: 1, ContentID: 20, Rating: 1},
			},
			userID:    1,
			threshold: 3,
			topK:      5,
			verify: func(t *testing.T, got []Recommendation) {
				if len(got) != 3 {
					t.Fatalf("len(recs) = %d, want 3", len(got))
				}
				for i, want := range []int{10, 20, 30} {
					if got[i].ContentID != want {
						t.Errorf("recs[%d].ContentID = %d, want %d", i, got[i].ContentID, want)
					}
					if got[i].Score != 0 {
						t.Errorf("recs[%d].Score = %v, want 0", i, got[i].Score)
					}
				}
			},
		},
		{
			name: "topK caps the list",
			items: []Item{
				{ID: 1, Title: "A", Genre: "Action", Year: 2000},
				{ID: 2, Title: "B", Genre: "Action", Year: 2001},
				{ID: 3, Title: "C", Genre: "Action", Year: 2002},
				{ID: 4, Title: "D", Genre: "Action", Year: 2003},
				{ID: 5, Title: "E", Genre: "Action", Year: 2004},
				{ID: 6, Title: "F", Genre: "Action", Year: 2005},
				{ID: 7, Title: "G", Genre: "Action", Year: 2006},
			},
			interactions: []Interaction{
				{UserID: 1, ContentID: 1, Rating: 5},
			},
			userID:    1,
			threshold: 3,
			topK:      5,
			verify: func(t *testing.T, got []Recommendation) {
				if len(got) != 5 {
					t.Fatalf("len(recs) = %d, want 5", len(got))
				}
			},
		},
		{
			name:  "negative topK yields empty list",
			items: catalog,
			interactions: []Interaction{
				{UserID: 1, ContentID: 10, Rating: 5},
			},
			userID:    1,
			threshold: 3,
			topK:      -1,
			verify: func(t *testing.T, got []Recommendation) {
				if len(got) != 0 {
					t.Fatalf("len(recs) = %d, want 0", len(got))
				}
			},
		},
		{
			name: "stable ties follow catalog order",
			items: []Item{
				{ID: 7, Title: "Gamma", Genre: "Drama", Year: 2000},
				{ID: 3, Title: "Delta", Genre: "Drama", Year: 2000},
				{ID: 5, Title: "Liked", Genre: "Action", Year: 2000},
			},
			interactions: []Interaction{
				{UserID: 1, ContentID: 5, Rating: 5},
			},
			userID:    1,
			threshold: 3,
			topK:      5,
			verify: func(t *testing.T, got []Recommendation) {
				// Gamma and Delta tie at 0; the tie keeps catalog order.
				if got[1].ContentID != 7 || got[2].ContentID != 3 {
					t.Fatalf("tie order = [%d %d], want [7 3]", got[1].ContentID, got[2].ContentID)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := mustMatrix(t, tt.interactions)

			got, err := RecommendContent(tt.items, m, tt.userID, tt.threshold, tt.topK)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("RecommendContent() error = %v, want %v", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("RecommendContent() error = %v", err)
			}
			tt.verify(t, got)
		})
	}
}

func TestRecommendContentDeterministic(t *testing.T) {
	items := []Item{
		{ID: 1, Title: "A", Genre: "Action", Year: 2001},
		{ID: 2, Title: "B", Genre: "Drama", Year: 2005},
		{ID: 3, Title: "C", Genre: "Action", Year: 2009},
		{ID: 4, Title: "D", Genre: "Comedy", Year: 2003},
	}
	m := mustMatrix(t, []Interaction{
		{UserID: 1, ContentID: 1, Rating: 5},
		{UserID: 1, ContentID: 2, Rating: 4},
	})

	first, err := RecommendContent(items, m, 1, 3, 5)
	if err != nil {
		t.Fatalf("RecommendContent() error = %v", err)
	}

	for i := 0; i < 10; i++ {
		got, err := RecommendContent(items, m, 1, 3, 5)
		if err != nil {
			t.Fatalf("RecommendContent() run %d error = %v", i, err)
		}
		if len(got) != len(first) {
			t.Fatalf("run %d: len = %d, want %d", i, len(got), len(first))
		}
		for j := range got {
			if got[j] != first[j] {
				t.Fatalf("run %d: recs[%d] = %+v, want %+v", i, j, got[j], first[j])
			}
		}
	}
}
