// SPDX-License-Identifier: MIT

// Package builder: attribute generators for synthesized segments.
//
// Each generator receives the (possibly nil) RNG and both endpoints, so
// callers can plug externally supplied attributes (lookup tables, airline
// data) without touching the topology code. Generators given a nil RNG fall
// back to a deterministic value.
package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/airroute/core"
)

// SafetyFn produces the safety rating of the segment {from,to}.
type SafetyFn func(rng *rand.Rand, from, to core.Node) int

// FailureRateFn produces the hazard rate (per hour) of the segment {from,to}.
type FailureRateFn func(rng *rand.Rand, from, to core.Node) float64

// UniformSafetyFn samples an integer rating uniformly in [min, max].
// With a nil RNG it returns the lower midpoint (min+max)/2.
// Panics unless 0 ≤ min ≤ max ≤ 100.
func UniformSafetyFn(min, max int) SafetyFn {
	if min < 0 || max < min || max > 100 {
		panic(fmt.Sprintf("UniformSafetyFn: require 0 ≤ min ≤ max ≤ 100, got min=%d, max=%d", min, max))
	}
	return func(rng *rand.Rand, _, _ core.Node) int {
		if rng == nil || min == max {
			return (min + max) / 2
		}

		return min + rng.Intn(max-min+1)
	}
}

// ConstantSafetyFn always yields rating. Panics unless 0 ≤ rating ≤ 100.
func ConstantSafetyFn(rating int) SafetyFn {
	if rating < 0 || rating > 100 {
		panic(fmt.Sprintf("ConstantSafetyFn: rating must be in [0,100], got %d", rating))
	}
	return func(_ *rand.Rand, _, _ core.Node) int {
		return rating
	}
}

// SteppedFailureRateFn yields base + i·step with i ∼ U{0..steps}.
// With a nil RNG it returns base + (steps/2)·step.
// Panics on negative arguments.
func SteppedFailureRateFn(base, step float64, steps int) FailureRateFn {
	if base < 0 || step < 0 || steps < 0 {
		panic(fmt.Sprintf("SteppedFailureRateFn: negative argument (base=%g, step=%g, steps=%d)", base, step, steps))
	}
	return func(rng *rand.Rand, _, _ core.Node) float64 {
		if rng == nil || steps == 0 {
			return base + float64(steps/2)*step
		}

		return base + float64(rng.Intn(steps+1))*step
	}
}

// ConstantFailureRateFn always yields rate. Panics if rate < 0.
func ConstantFailureRateFn(rate float64) FailureRateFn {
	if rate < 0 {
		panic(fmt.Sprintf("ConstantFailureRateFn: rate must be ≥ 0, got %g", rate))
	}
	return func(_ *rand.Rand, _, _ core.Node) float64 {
		return rate
	}
}
