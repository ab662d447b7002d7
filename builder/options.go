// SPDX-License-Identifier: MIT
// Package: airroute/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Build itself never panics.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// BuilderOption customizes Build by mutating a builderConfig before use.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithNeighbors sets the inclusive range the per-node neighbor count k is
// drawn from. Panics unless 1 ≤ min ≤ max.
func WithNeighbors(min, max int) BuilderOption {
	if min < 1 || max < min {
		panic(fmt.Sprintf("builder: WithNeighbors(%d,%d): require 1 ≤ min ≤ max", min, max))
	}
	return func(c *builderConfig) {
		c.minNeighbors, c.maxNeighbors = min, max
	}
}

// WithFixedNeighbors connects every node to exactly its k nearest peers
// (before mirroring). With a fixed k and deterministic attribute functions
// Build needs no RNG at all.
func WithFixedNeighbors(k int) BuilderOption {
	return WithNeighbors(k, k)
}

// WithCruiseSpeed sets the speed used to derive flight time. Panics if the
// speed is not a positive finite number.
func WithCruiseSpeed(kmh float64) BuilderOption {
	if kmh <= 0 || math.IsNaN(kmh) || math.IsInf(kmh, 0) {
		panic(fmt.Sprintf("builder: WithCruiseSpeed(%v)", kmh))
	}
	return func(c *builderConfig) {
		c.cruiseSpeedKmh = kmh
	}
}

// WithSafetyFn overrides the per-segment safety rating generator. Panics on nil.
func WithSafetyFn(fn SafetyFn) BuilderOption {
	if fn == nil {
		panic("builder: WithSafetyFn(nil)")
	}
	return func(c *builderConfig) {
		c.safetyFn = fn
	}
}

// WithFailureRateFn overrides the per-segment hazard rate generator. Panics on nil.
func WithFailureRateFn(fn FailureRateFn) BuilderOption {
	if fn == nil {
		panic("builder: WithFailureRateFn(nil)")
	}
	return func(c *builderConfig) {
		c.failureRateFn = fn
	}
}
