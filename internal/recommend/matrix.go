// StreamRec - Hybrid Recommendation Engine for Streaming Media Datasets
// Copyright 2026 Streamlytics
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/streamlytics/streamrec

package recommend

import "sort"

// BuildRatingMatrix aggregates interaction events into a dense rating
// matrix with every distinct user-content pair present.
//
// When multiple events share a (user, content) pair the last event in
// input order wins, matching the pivot semantics of the warehouse export
// the data originates from. Absent pairs are filled with the 0 sentinel.
//
// Returns ErrEmptyDataset when the events yield zero distinct users or
// zero distinct content items.
func BuildRatingMatrix(interactions []Interaction) (*RatingMatrix, error) {
	userSet := make(map[int]struct{})
	contentSet := make(map[int]struct{})

	for i := range interactions {
		userSet[interactions[i].UserID] = struct{}{}
		contentSet[interactions[i].ContentID] = struct{}{}
	}

	if len(userSet) == 0 || len(contentSet) == 0 {
		return nil, ErrEmptyDataset
	}

	userIDs := sortedKeys(userSet)
	contentIDs := sortedKeys(contentSet)

	userIndex := make(map[int]int, len(userIDs))
	for i, id := range userIDs {
		userIndex[id] = i
	}
	contentIndex := make(map[int]int, len(contentIDs))
	for i, id := range contentIDs {
		contentIndex[id] = i
	}

	ratings := make([][]float64, len(userIDs))
	for i := range ratings {
		ratings[i] = make([]float64, len(contentIDs))
	}

	// Last write wins for duplicate pairs.
	for i := range interactions {
		ui := userIndex[interactions[i].UserID]
		ci := contentIndex[interactions[i].ContentID]
		ratings[ui][ci] = interactions[i].Rating
	}

	return &RatingMatrix{
		UserIDs:      userIDs,
		ContentIDs:   contentIDs,
		Ratings:      ratings,
		userIndex:    userIndex,
		contentIndex: contentIndex,
	}, nil
}

// sortedKeys returns the keys of a set in ascending order.
func sortedKeys(set map[int]struct{}) []int {
	keys := make([]int, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
