// SPDX-License-Identifier: MIT
// Package: airroute/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w`.
//   • Duplicate and empty node IDs surface as core.ErrDuplicateNode and
//     core.ErrEmptyNodeID, wrapped with builder context.

package builder

import "errors"

// ErrNoNodes indicates Build was called with an empty node list.
var ErrNoNodes = errors.New("builder: node list is empty")

// ErrBadCoordinates indicates a node with NaN/Inf or out-of-range latitude/longitude.
var ErrBadCoordinates = errors.New("builder: invalid coordinates")

// ErrNeedRandSource indicates a stochastic build without an RNG
// (variable neighbor count requires WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrBadAttribute indicates an attribute function produced a value the core
// graph rejects (e.g. a safety rating above 100).
var ErrBadAttribute = errors.New("builder: attribute function returned invalid value")
