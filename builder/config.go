// SPDX-License-Identifier: MIT
// Package: airroute/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Defaults:
//   • rng           = nil          (a seed must be supplied for variable k)
//   • neighbors     = [3, 5]       (k drawn uniformly per node)
//   • cruiseSpeed   = 800 km/h
//   • minDistance   = 1 km         (segments are never zero-length)
//   • safetyFn      = UniformSafetyFn(96, 99)
//   • failureRateFn = SteppedFailureRateFn(0.001, 0.0001, 10)

package builder

import "math/rand"

// Defaults (named, no magic numbers).
const (
	DefaultMinNeighbors   = 3
	DefaultMaxNeighbors   = 5
	DefaultCruiseSpeedKmh = 800.0
	DefaultMinDistanceKm  = 1.0

	DefaultMinSafety = 96
	DefaultMaxSafety = 99

	DefaultBaseFailureRate = 0.001
	DefaultFailureRateStep = 0.0001
	DefaultFailureSteps    = 10 // draws 0..10 inclusive, so the rate reaches 0.002
)

// builderConfig aggregates all knobs used by Build.
// It is passed by VALUE (immutable to callers).
type builderConfig struct {
	rng *rand.Rand // nil means "no randomness available"

	minNeighbors int
	maxNeighbors int

	cruiseSpeedKmh float64
	minDistanceKm  float64

	safetyFn      SafetyFn
	failureRateFn FailureRateFn
}

// newBuilderConfig constructs a config with defaults and applies all
// options in order (last wins).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:            nil,
		minNeighbors:   DefaultMinNeighbors,
		maxNeighbors:   DefaultMaxNeighbors,
		cruiseSpeedKmh: DefaultCruiseSpeedKmh,
		minDistanceKm:  DefaultMinDistanceKm,
		safetyFn:       UniformSafetyFn(DefaultMinSafety, DefaultMaxSafety),
		failureRateFn:  SteppedFailureRateFn(DefaultBaseFailureRate, DefaultFailureRateStep, DefaultFailureSteps),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// stochasticTopology reports whether the neighbor count is drawn at random.
func (c builderConfig) stochasticTopology() bool {
	return c.minNeighbors != c.maxNeighbors
}

// neighborCount draws k for one node. Callers guarantee rng != nil when the
// range is not degenerate.
func (c builderConfig) neighborCount() int {
	if !c.stochasticTopology() {
		return c.minNeighbors
	}

	return c.minNeighbors + c.rng.Intn(c.maxNeighbors-c.minNeighbors+1)
}
