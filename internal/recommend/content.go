// StreamRec - Hybrid Recommendation Engine for Streaming Media Datasets
// Copyright 2026 Streamlytics
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/streamlytics/streamrec

package recommend

import (
	"fmt"
	"sort"
	"strings"
)

// buildFeatureMatrix encodes content metadata into feature vectors:
// a one-hot block over the distinct genres (case-insensitive, sorted for
// determinism) followed by a single min-max normalized release-year
// component. Normalizing the year keeps it commensurate with the binary
// genre indicators; when all items share one release year the component
// carries no signal and is pinned to 0.5 for every item.
func buildFeatureMatrix(items []Item) [][]float64 {
	genreSet := make(map[string]struct{})
	for i := range items {
		genreSet[strings.ToLower(items[i].Genre)] = struct{}{}
	}

	genres := make([]string, 0, len(genreSet))
	for g := range genreSet {
		genres = append(genres, g)
	}
	sort.Strings(genres)

	genreIndex := make(map[string]int, len(genres))
	for i, g := range genres {
		genreIndex[g] = i
	}

	minYear, maxYear := items[0].Year, items[0].Year
	for i := range items {
		if items[i].Year < minYear {
			minYear = items[i].Year
		}
		if items[i].Year > maxYear {
			maxYear = items[i].Year
		}
	}
	yearRange := float64(maxYear - minYear)

	features := make([][]float64, len(items))
	for i := range items {
		vec := make([]float64, len(genres)+1)
		vec[genreIndex[strings.ToLower(items[i].Genre)]] = 1

		if yearRange > 0 {
			vec[len(genres)] = float64(items[i].Year-minYear) / yearRange
		} else {
			vec[len(genres)] = 0.5
		}

		features[i] = vec
	}

	return features
}

// ContentSimilarities computes the pairwise cosine similarity matrix
// over content feature vectors. Same shape and symmetry rules as
// UserSimilarities; feature vectors have no unrated sentinel, so the
// similarity is always the plain cosine.
func ContentSimilarities(items []Item) ([][]float64, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCatalog
	}

	features := buildFeatureMatrix(items)

	n := len(items)
	sims := make([][]float64, n)
	for i := range sims {
		sims[i] = make([]float64, n)
	}

	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			s := cosineSimilarity(features[i], features[j], UnratedAsZero)
			sims[i][j] = s
			sims[j][i] = s
		}
	}

	return sims, nil
}

// RecommendContent produces the content-based recommendation list for a
// target user: each candidate's score is its similarity to every liked
// item, weighted by that liked item's rating.
//
// Liked items are those the target rated strictly above likedThreshold;
// 0 sentinel cells fall below any non-negative threshold and drop out
// automatically. Catalog items absent from the rating matrix contribute
// a liked weight of 0. The ranking is descending by score with ties
// broken by original catalog order, truncated to topK.
//
// A target with zero liked items is not an error: every score is 0 and
// the list simply follows catalog order. Returns ErrEmptyCatalog for an
// empty item slice and ErrUnknownUser for a target without a matrix row.
func RecommendContent(items []Item, m *RatingMatrix, userID int, likedThreshold float64, topK int) ([]Recommendation, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCatalog
	}

	row, ok := m.Row(userID)
	if !ok {
		return nil, fmt.Errorf("user %d: %w", userID, ErrUnknownUser)
	}

	sims, err := ContentSimilarities(items)
	if err != nil {
		return nil, err
	}

	// Liked vector in catalog order, aligned to the matrix by content ID.
	liked := make([]float64, len(items))
	for i := range items {
		ci, ok := m.ContentIndex(items[i].ID)
		if !ok {
			continue
		}
		if r := row[ci]; r > likedThreshold {
			liked[i] = r
		}
	}

	scores := make([]float64, len(items))
	for i := range items {
		var s float64
		for j := range items {
			s += sims[i][j] * liked[j]
		}
		scores[i] = s
	}

	order := make([]int, len(items))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	if topK < 0 {
		topK = 0
	}
	if topK > len(order) {
		topK = len(order)
	}

	recs := make([]Recommendation, 0, topK)
	for _, idx := range order[:topK] {
		recs = append(recs, Recommendation{
			ContentID: items[idx].ID,
			Title:     items[idx].Title,
			Genre:     items[idx].Genre,
			Score:     scores[idx],
		})
	}

	return recs, nil
}
