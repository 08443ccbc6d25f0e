// StreamRec - Hybrid Recommendation Engine for Streaming Media Datasets
// Copyright 2026 Streamlytics
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/streamlytics/streamrec

package render

import (
	"strings"
	"testing"
	"time"

	"github.com/streamlytics/streamrec/internal/models"
	"github.com/streamlytics/streamrec/internal/recommend"
)

func TestEntityTables(t *testing.T) {
	tests := []struct {
		name        string
		table       Table
		wantTitle   string
		wantHeaders int
		wantRows    int
	}{
		{
			name: "users",
			table: UsersTable([]models.User{
				{ID: 1, Name: "ava", Location: "Berlin", AgeGroup: "18-24"},
				{ID: 2, Name: "ben", Location: "Madrid", AgeGroup: "25-34"},
			}),
			wantTitle:   "Users",
			wantHeaders: 4,
			wantRows:    2,
		},
		{
			name: "content",
			table: ContentTable([]models.ContentItem{
				{ID: 101, Title: "Neon Skyline", Genre: "SciFi", ReleaseYear: 2019},
			}),
			wantTitle:   "Content",
			wantHeaders: 4,
			wantRows:    1,
		},
		{
			name: "plans",
			table: PlansTable([]models.SubscriptionPlan{
				{ID: 1, Name: "Basic", Price: 7.99, Features: "sd"},
			}),
			wantTitle:   "Subscription Plans",
			wantHeaders: 4,
			wantRows:    1,
		},
		{
			name: "devices",
			table: DevicesTable([]models.Device{
				{ID: 1, Type: "tv", OS: "webos", Manufacturer: "LG"},
				{ID: 2, Type: "mobile", OS: "android", Manufacturer: "Samsung"},
			}),
			wantTitle:   "Devices",
			wantHeaders: 4,
			wantRows:    2,
		},
		{
			name: "interactions",
			table: InteractionsTable([]models.InteractionEvent{
				{
					InteractionID:   1,
					UserID:          1,
					ContentID:       101,
					Rating:          5,
					WatchTime:       118.5,
					ActivityType:    "watch",
					InteractionDate: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
				},
			}),
			wantTitle:   "Interactions",
			wantHeaders: 7,
			wantRows:    1,
		},
		{
			name:        "empty slice yields headers only",
			table:       UsersTable(nil),
			wantTitle:   "Users",
			wantHeaders: 4,
			wantRows:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.table.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", tt.table.Title, tt.wantTitle)
			}
			if len(tt.table.Headers) != tt.wantHeaders {
				t.Errorf("len(Headers) = %d, want %d", len(tt.table.Headers), tt.wantHeaders)
			}
			if len(tt.table.Rows) != tt.wantRows {
				t.Errorf("len(Rows) = %d, want %d", len(tt.table.Rows), tt.wantRows)
			}
			for i, row := range tt.table.Rows {
				if len(row) != tt.wantHeaders {
					t.Errorf("row %d has %d cells, want %d", i, len(row), tt.wantHeaders)
				}
			}
		})
	}
}

func TestInteractionsTableUnratedSentinel(t *testing.T) {
	table := InteractionsTable([]models.InteractionEvent{
		{InteractionID: 1, UserID: 1, ContentID: 101, Rating: 0, ActivityType: "browse",
			InteractionDate: time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC)},
	})

	if got := table.Rows[0][3]; got != "-" {
		t.Errorf("unrated cell rendered as %q, want %q", got, "-")
	}
}

func TestRecommendationsTable(t *testing.T) {
	table := RecommendationsTable(7, []recommend.Recommendation{
		{ContentID: 103, Title: "Last Orbit", Genre: "SciFi", Score: 4.5},
		{ContentID: 101, Title: "Neon Skyline", Genre: "SciFi", Score: 3.2},
	})

	if table.Title != "Top Recommendations for User 7" {
		t.Errorf("Title = %q", table.Title)
	}
	if table.Rows[0][0] != "1" || table.Rows[1][0] != "2" {
		t.Errorf("ranks = [%s %s], want [1 2]", table.Rows[0][0], table.Rows[1][0])
	}
	if table.Rows[0][1] != "103" {
		t.Errorf("top content ID = %s, want 103", table.Rows[0][1])
	}
	if table.Rows[0][4] != "4.5000" {
		t.Errorf("score cell = %q, want %q", table.Rows[0][4], "4.5000")
	}
}

func TestEvaluationTable(t *testing.T) {
	table := EvaluationTable(&recommend.Result{
		UserID:     3,
		Evaluation: recommend.Evaluation{MSE: 0.75, Label: recommend.LabelPartial},
		UserCount:  5,
		ItemCount:  6,
		LatencyMS:  12,
	})

	if table.Title != "Evaluation for User 3" {
		t.Errorf("Title = %q", table.Title)
	}
	want := map[string]string{
		"MSE":           "0.7500",
		"Accuracy":      recommend.LabelPartial,
		"Users":         "5",
		"Content Items": "6",
		"Latency (ms)":  "12",
	}
	for _, row := range table.Rows {
		if got, ok := want[row[0]]; ok && row[1] != got {
			t.Errorf("%s = %q, want %q", row[0], row[1], got)
		}
	}
}

func TestTableRender(t *testing.T) {
	table := UsersTable([]models.User{
		{ID: 1, Name: "ava", Location: "Berlin", AgeGroup: "18-24"},
		{ID: 12, Name: "benjamin", Location: "Madrid", AgeGroup: "25-34"},
	})

	var sb strings.Builder
	if err := table.Render(&sb); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	out := sb.String()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// Title, headers, separator, two rows.
	if len(lines) != 5 {
		t.Fatalf("rendered %d lines, want 5:\n%s", len(lines), out)
	}
	if lines[0] != "Users" {
		t.Errorf("first line = %q, want title", lines[0])
	}
	if !strings.Contains(lines[1], "Name") || !strings.Contains(lines[1], "Location") {
		t.Errorf("header line missing columns: %q", lines[1])
	}
	if !strings.Contains(lines[3], "ava") || !strings.Contains(lines[4], "benjamin") {
		t.Errorf("rows out of order:\n%s", out)
	}
}
