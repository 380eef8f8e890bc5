// SPDX-License-Identifier: MIT
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   - idFn      = decimalID   ("0","1","2",...)
//   - rng       = nil         (pure/deterministic unless seeded)
//   - segmentFn = ConstSegment(DefaultSegmentLength, DefaultWalkingSpeed)
//   - spacing   = DefaultSpacing

package builder

import (
	"math/rand"
	"strconv"
)

// Defaults for segment geometry.
const (
	DefaultSegmentLength = 100.0 // metres
	DefaultWalkingSpeed  = 1.4   // metres per second
	DefaultSpacing       = 1.0   // drawing units between neighboring vertices
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	// Vertex ID strategy for index-based constructors.
	idFn func(int) string
	// RNG for stochastic choices; nil means no randomness.
	rng *rand.Rand
	// Segment generator: distance and travel time of one edge.
	segmentFn SegmentFn
	// Distance between neighboring vertices in drawing coordinates.
	spacing float64
}

// newBuilderConfig applies opts over the defaults; later options win.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:      decimalID,
		segmentFn: ConstSegment(DefaultSegmentLength, DefaultWalkingSpeed),
		spacing:   DefaultSpacing,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// decimalID renders an index as a base-10 string.
func decimalID(i int) string {
	return strconv.Itoa(i)
}
