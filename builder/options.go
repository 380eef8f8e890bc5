// SPDX-License-Identifier: MIT
//
// options.go - functional options for the builder package.
//
// Option constructors validate and panic on meaningless inputs;
// constructors themselves never panic.

package builder

import "math/rand"

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the vertex ID generator of index-based constructors.
// Panics on nil.
func WithIDScheme(fn func(int) string) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}

	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a seeded RNG so stochastic output is reproducible.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithSegmentFn overrides the per-edge distance and travel time generator.
// Panics on nil.
func WithSegmentFn(fn SegmentFn) BuilderOption {
	if fn == nil {
		panic("builder: WithSegmentFn(nil)")
	}

	return func(c *builderConfig) {
		c.segmentFn = fn
	}
}

// WithSpacing sets the drawing distance between neighboring vertices.
// Panics if s <= 0.
func WithSpacing(s float64) BuilderOption {
	if s <= 0 {
		panic("builder: WithSpacing(s<=0)")
	}

	return func(c *builderConfig) {
		c.spacing = s
	}
}
