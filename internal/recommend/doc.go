// StreamRec - Hybrid Recommendation Engine for Streaming Media Datasets
// Copyright 2026 Streamlytics
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/streamlytics/streamrec

// Package recommend implements the hybrid recommendation core: a dense
// user-content rating matrix built from interaction events, a user-user
// collaborative filtering scorer, an item-item content-based scorer, and
// an MSE evaluation step.
//
// # Pipeline
//
// One recommend-and-evaluate cycle runs synchronously for a single target
// user:
//
//	events ──▶ BuildRatingMatrix ──▶ PredictRatings (collaborative)
//	                            └──▶ RecommendContent (content-based)
//	                                          └──▶ Evaluate (MSE + label)
//
// The matrix and both similarity matrices are recomputed fresh on every
// cycle and never cached across calls, so concurrent cycles on independent
// snapshots are safe.
//
// # Unrated sentinel
//
// Ratings use a 0-5 scale where 0 doubles as the "unrated" sentinel. The
// legacy pipeline treats those zeros as literal ratings inside cosine
// similarity and MSE, which skews both. UnratedPolicy keeps the legacy
// behavior available ("zero", the default) next to a cleaner mode that
// masks unrated cells out of similarity and error computations
// ("exclude"). The two modes produce different observable output.
//
// # Dependencies
//
// This package has no dependencies on other internal packages. The
// DataProvider interface lets the database layer plug in without creating
// circular imports.
package recommend
