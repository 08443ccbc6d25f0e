// StreamRec - Hybrid Recommendation Engine for Streaming Media Datasets
// Copyright 2026 Streamlytics
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/streamlytics/streamrec

package recommend

import "fmt"

// Config contains the engine's scoring parameters.
type Config struct {
	// LikedThreshold is the rating above which an item counts as liked
	// for content-based filtering, on the 0-5 rating scale.
	LikedThreshold float64 `json:"liked_threshold"`

	// TopK is the maximum recommendation list length.
	TopK int `json:"top_k"`

	// UnratedPolicy selects the 0-sentinel treatment.
	UnratedPolicy UnratedPolicy `json:"unrated_policy"`
}

// DefaultConfig returns the default engine configuration: the legacy
// liked threshold of 3, top-5 lists, and legacy-compatible sentinel
// handling.
func DefaultConfig() *Config {
	return &Config{
		LikedThreshold: 3,
		TopK:           5,
		UnratedPolicy:  UnratedAsZero,
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.LikedThreshold < 0 || c.LikedThreshold > 5 {
		return fmt.Errorf("liked threshold %v outside rating scale [0, 5]", c.LikedThreshold)
	}
	if c.TopK < 1 {
		return fmt.Errorf("top k must be at least 1, got %d", c.TopK)
	}
	switch c.UnratedPolicy {
	case UnratedAsZero, UnratedExcluded:
	default:
		return fmt.Errorf("unknown unrated policy %q", c.UnratedPolicy)
	}
	return nil
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
