// SPDX-License-Identifier: MIT
//
// Package bfs explores a route network by leg count: which airports can be
// reached from a start within N legs, the fewest-legs path to each of them,
// and the connected components of the whole network.
//
// What
//
//   - BFS returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from node → number of legs from start
//   - Parent: map from node → its predecessor in the BFS tree
//   - Hooks: OnDiscover, OnVisit (may abort with an error).
//   - WithFilterNeighbor prunes individual segments (closed routes, bans).
//   - WithAvoid closes whole airports.
//   - WithMaxDepth caps the number of legs (d>0) or disables the cap (d==0).
//   - Components partitions the network into connected components.
//
// Determinism
//
//	Neighbors are enqueued in segment attachment order and components are
//	listed by their earliest-inserted node, so every result is reproducible
//	for a given graph.
//
// Complexity (V = nodes, E = segments)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, "DEL",
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(2),
//	)
//	if err != nil {
//	    // ErrNilGraph, ErrStartNotFound, ErrOptionViolation,
//	    // ErrNeighbors, context errors or hook errors
//	}
//	path, _ := res.PathTo("GOI")
package bfs
