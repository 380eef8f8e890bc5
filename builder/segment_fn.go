// SPDX-License-Identifier: MIT
//
// segment_fn.go - ready-made segment policies.

package builder

import "math/rand"

// SegmentFn returns the distance and travel time of one new edge. It
// receives the configured RNG, which may be nil.
type SegmentFn func(rng *rand.Rand) (distance, travelTime float64)

// ConstSegment gives every edge the same length, walked at speed.
// Panics if length < 0 or speed <= 0.
func ConstSegment(length, speed float64) SegmentFn {
	if length < 0 || speed <= 0 {
		panic("builder: ConstSegment(length<0 || speed<=0)")
	}

	return func(*rand.Rand) (float64, float64) {
		return length, length / speed
	}
}

// UniformSegment draws lengths uniformly from [min, max) and walks them at
// speed. Lengths are rounded to whole metres like surveyed footpaths.
// Without an RNG it falls back to the midpoint so output stays deterministic.
// Panics if min < 0, max < min or speed <= 0.
func UniformSegment(min, max, speed float64) SegmentFn {
	if min < 0 || max < min || speed <= 0 {
		panic("builder: UniformSegment(min<0 || max<min || speed<=0)")
	}

	return func(rng *rand.Rand) (float64, float64) {
		length := (min + max) / 2
		if rng != nil {
			length = min + rng.Float64()*(max-min)
		}
		length = float64(int64(length + 0.5))

		return length, length / speed
	}
}
