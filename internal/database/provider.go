// StreamRec - Hybrid Recommendation Engine for Streaming Media Datasets
// Copyright 2026 Streamlytics
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/streamlytics/streamrec

package database

import (
	"context"

	"github.com/streamlytics/streamrec/internal/recommend"
)

// GetInteractions implements recommend.DataProvider. Events come back in
// interaction ID order so later events win during matrix construction.
func (db *DB) GetInteractions(ctx context.Context) ([]recommend.Interaction, error) {
	events, err := db.FetchInteractions(ctx)
	if err != nil {
		return nil, err
	}

	interactions := make([]recommend.Interaction, 0, len(events))
	for i := range events {
		interactions = append(interactions, recommend.Interaction{
			UserID:    events[i].UserID,
			ContentID: events[i].ContentID,
			Rating:    events[i].Rating,
		})
	}

	return interactions, nil
}

// GetCatalog implements recommend.DataProvider.
func (db *DB) GetCatalog(ctx context.Context) ([]recommend.Item, error) {
	content, err := db.FetchContent(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]recommend.Item, 0, len(content))
	for i := range content {
		items = append(items, recommend.Item{
			ID:    content[i].ID,
			Title: content[i].Title,
			Genre: content[i].Genre,
			Year:  content[i].ReleaseYear,
		})
	}

	return items, nil
}
