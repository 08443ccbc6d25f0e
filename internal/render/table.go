// StreamRec - Hybrid Recommendation Engine for Streaming Media Datasets
// Copyright 2026 Streamlytics
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/streamlytics/streamrec

// Package render builds display-ready tables from domain entities. The
// scoring core never touches presentation; callers decide whether a
// table is printed to a console or serialized as JSON.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/streamlytics/streamrec/internal/models"
	"github.com/streamlytics/streamrec/internal/recommend"
)

// Table is a display-ready grid with a title, one header row and
// pre-stringified cells.
type Table struct {
	Title   string     `json:"title"`
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// UsersTable builds the user_dim display table.
func UsersTable(users []models.User) Table {
	t := Table{
		Title:   "Users",
		Headers: []string{"ID", "Name", "Location", "Age Group"},
		Rows:    make([][]string, 0, len(users)),
	}
	for i := range users {
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(users[i].ID),
			users[i].Name,
			users[i].Location,
			users[i].AgeGroup,
		})
	}
	return t
}

// ContentTable builds the content_dim display table.
func ContentTable(items []models.ContentItem) Table {
	t := Table{
		Title:   "Content",
		Headers: []string{"ID", "Title", "Genre", "Release Year"},
		Rows:    make([][]string, 0, len(items)),
	}
	for i := range items {
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(items[i].ID),
			items[i].Title,
			items[i].Genre,
			strconv.Itoa(items[i].ReleaseYear),
		})
	}
	return t
}

// PlansTable builds the subscription_plan_dim display table.
func PlansTable(plans []models.SubscriptionPlan) Table {
	t := Table{
		Title:   "Subscription Plans",
		Headers: []string{"ID", "Name", "Price", "Features"},
		Rows:    make([][]string, 0, len(plans)),
	}
	for i := range plans {
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(plans[i].ID),
			plans[i].Name,
			fmt.Sprintf("%.2f", plans[i].Price),
			plans[i].Features,
		})
	}
	return t
}

// DevicesTable builds the device_dim display table.
func DevicesTable(devices []models.Device) Table {
	t := Table{
		Title:   "Devices",
		Headers: []string{"ID", "Type", "OS", "Manufacturer"},
		Rows:    make([][]string, 0, len(devices)),
	}
	for i := range devices {
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(devices[i].ID),
			devices[i].Type,
			devices[i].OS,
			devices[i].Manufacturer,
		})
	}
	return t
}

// InteractionsTable builds the fact_user_interactions display table.
func InteractionsTable(events []models.InteractionEvent) Table {
	t := Table{
		Title:   "Interactions",
		Headers: []string{"ID", "User", "Content", "Rating", "Watch Time", "Activity", "Date"},
		Rows:    make([][]string, 0, len(events)),
	}
	for i := range events {
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(events[i].InteractionID),
			strconv.Itoa(events[i].UserID),
			strconv.Itoa(events[i].ContentID),
			formatRating(events[i].Rating),
			fmt.Sprintf("%.1f", events[i].WatchTime),
			events[i].ActivityType,
			events[i].InteractionDate.Format("2006-01-02"),
		})
	}
	return t
}

// RecommendationsTable builds the ranked recommendation list for a user.
func RecommendationsTable(userID int, recs []recommend.Recommendation) Table {
	t := Table{
		Title:   fmt.Sprintf("Top Recommendations for User %d", userID),
		Headers: []string{"Rank", "Content ID", "Title", "Genre", "Score"},
		Rows:    make([][]string, 0, len(recs)),
	}
	for i := range recs {
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(i + 1),
			strconv.Itoa(recs[i].ContentID),
			recs[i].Title,
			recs[i].Genre,
			fmt.Sprintf("%.4f", recs[i].Score),
		})
	}
	return t
}

// EvaluationTable builds the accuracy summary for a cycle result.
func EvaluationTable(result *recommend.Result) Table {
	return Table{
		Title:   fmt.Sprintf("Evaluation for User %d", result.UserID),
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"MSE", fmt.Sprintf("%.4f", result.Evaluation.MSE)},
			{"Accuracy", result.Evaluation.Label},
			{"Users", strconv.Itoa(result.UserCount)},
			{"Content Items", strconv.Itoa(result.ItemCount)},
			{"Latency (ms)", strconv.FormatInt(result.LatencyMS, 10)},
		},
	}
}

// Render writes the table as an aligned text grid.
func (t Table) Render(w io.Writer) error {
	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = len(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder
	b.WriteString(t.Title)
	b.WriteByte('\n')

	writeRow := func(cells []string) {
		for i, cell := range cells {
			if i > 0 {
				b.WriteString("  ")
			}
			b.WriteString(cell)
			if pad := widths[i] - len(cell); pad > 0 {
				b.WriteString(strings.Repeat(" ", pad))
			}
		}
		b.WriteByte('\n')
	}

	writeRow(t.Headers)

	sep := make([]string, len(t.Headers))
	for i := range sep {
		sep[i] = strings.Repeat("-", widths[i])
	}
	writeRow(sep)

	for _, row := range t.Rows {
		writeRow(row)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func formatRating(r float64) string {
	if r == 0 {
		return "-"
	}
	return fmt.Sprintf("%.1f", r)
}
