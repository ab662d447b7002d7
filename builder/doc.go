// SPDX-License-Identifier: MIT

// Package builder turns a flat list of geo-located nodes into a sparse,
// weighted core.Graph, using "functional-options" configuration in the same
// way across every knob.
//
// The package offers the following key components:
//
//   - Entry point:
//     – Build(nodes, opts...):  validate nodes, connect each to its k nearest
//     peers, synthesize metrics once per unordered pair.
//   - Configuration primitives:
//     – BuilderOption:          a function that mutates builderConfig before use.
//     – builderConfig:          holds RNG, neighbor range, cruise speed and attribute functions.
//   - Attribute distributions:
//     – UniformSafetyFn:        integer rating ∼U{min..max}.
//     – ConstantSafetyFn:       fixed rating.
//     – SteppedFailureRateFn:   base + U{0..steps}·step.
//     – ConstantFailureRateFn:  fixed hazard rate.
//
// Guarantees:
//
//   - Deterministic for a fixed seed, node order and options.
//   - Symmetric metrics: each unordered pair is synthesized exactly once and
//     stored as one shared record (see core.Graph.AddEdge).
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Runtime validation errors are sentinels wrapped with the "Build:" prefix.
//
// Complexity of Build: O(V² log V) time (pairwise distances plus one sort per
// node) and O(V) extra space.
package builder
