// StreamRec - Hybrid Recommendation Engine for Streaming Media Datasets
// Copyright 2026 Streamlytics
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/streamlytics/streamrec

package recommend

import (
	"fmt"
	"math"
)

// UserSimilarities computes the full pairwise cosine similarity matrix
// over the rating matrix rows. The result is square, symmetric, bounded
// in [-1, 1], with diagonal 1 for every non-degenerate row. Similarity
// against an all-zero vector is mathematically undefined and is defined
// as 0 here, so a user with no interactions has similarity 0 to everyone
// including themselves.
func UserSimilarities(m *RatingMatrix, policy UnratedPolicy) [][]float64 {
	n := len(m.Ratings)
	sims := make([][]float64, n)
	for i := range sims {
		sims[i] = make([]float64, n)
	}

	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			s := cosineSimilarity(m.Ratings[i], m.Ratings[j], policy)
			sims[i][j] = s
			sims[j][i] = s
		}
	}

	return sims
}

// PredictRatings predicts the target user's rating for every content
// item as the similarity-weighted average of all users' ratings:
//
//	predicted[item] = sum_u sim(target, u) * r(u, item) / sum_u sim(target, u)
//
// Under UnratedAsZero the denominator is the similarity sum over all
// users; a zero sum (only possible when the target row is degenerate)
// yields all-zero predictions rather than NaN. Under UnratedExcluded the
// weighted average per item runs over users that actually rated it.
//
// Returns ErrUnknownUser when the target is absent from the row index.
func PredictRatings(m *RatingMatrix, userID int, policy UnratedPolicy) (PredictedRatings, error) {
	targetIdx, ok := m.UserIndex(userID)
	if !ok {
		return nil, fmt.Errorf("user %d: %w", userID, ErrUnknownUser)
	}

	n := len(m.Ratings)
	sims := make([]float64, n)
	for u := 0; u < n; u++ {
		sims[u] = cosineSimilarity(m.Ratings[targetIdx], m.Ratings[u], policy)
	}

	predicted := make(PredictedRatings, len(m.ContentIDs))

	if policy == UnratedExcluded {
		for item := range m.ContentIDs {
			var num, den float64
			for u := 0; u < n; u++ {
				if r := m.Ratings[u][item]; r > 0 {
					num += sims[u] * r
					den += sims[u]
				}
			}
			if den != 0 {
				predicted[item] = num / den
			}
		}
		return predicted, nil
	}

	var simSum float64
	for _, s := range sims {
		simSum += s
	}
	if simSum == 0 {
		// Degenerate target row: every prediction is 0, never NaN.
		return predicted, nil
	}

	for item := range m.ContentIDs {
		var num float64
		for u := 0; u < n; u++ {
			num += sims[u] * m.Ratings[u][item]
		}
		predicted[item] = num / simSum
	}

	return predicted, nil
}

// cosineSimilarity computes cosine similarity between two equally sized
// vectors. Under UnratedExcluded the dot product runs over dimensions
// rated by both vectors while each norm runs over that vector's own
// rated dimensions. A zero norm on either side yields 0.
func cosineSimilarity(a, b []float64, policy UnratedPolicy) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64

	if policy == UnratedExcluded {
		for i := range a {
			if a[i] > 0 && b[i] > 0 {
				dot += a[i] * b[i]
			}
			if a[i] > 0 {
				normA += a[i] * a[i]
			}
			if b[i] > 0 {
				normB += b[i] * b[i]
			}
		}
	} else {
		for i := range a {
			dot += a[i] * b[i]
			normA += a[i] * a[i]
			normB += b[i] * b[i]
		}
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
