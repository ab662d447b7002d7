// SPDX-License-Identifier: MIT
//
// Package planner is the entry point of the route engine.
//
// A Planner owns the current route network as an immutable Snapshot.
// InitializeGraph builds a new network off to the side and publishes it
// atomically; FindOptimalRoute and Reachable read whichever snapshot is
// current when they start. A failed build leaves the previous snapshot in
// place.
//
//	p := planner.New(planner.WithSeed(42), planner.WithLogger(log))
//	if _, err := p.InitializeGraph(ctx, airports); err != nil { ... }
//	res, err := p.FindOptimalRoute(ctx, "DEL", "GOI", "distance")
//
// Errors:
//
//	ErrNotInitialized - no snapshot has been published yet.
//
// Errors of builder, dijkstra and bfs are passed through, wrapped.
package planner
