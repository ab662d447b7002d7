// SPDX-License-Identifier: MIT

// Package core provides the thread-safe, in-memory route network used by the
// builder, dijkstra and bfs packages.
//
// The Graph G = (V,E) is deliberately narrow compared to a general-purpose
// graph library:
//
//   - Undirected only: a segment {u,v} is reachable from both endpoints.
//   - Simple: no self-loops, at most one segment per unordered pair.
//   - Shared records: both adjacency directions reference the same stored
//     EdgeMetrics, so Edge(u,v) and Edge(v,u) can never disagree.
//   - Deterministic: node insertion order is preserved and defines iteration
//     order and tie-breaking for every algorithm built on top.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(n Node) error              // O(1), rejects duplicates
//	HasNode(id string) bool            // O(1)
//	Node(id string) (Node, error)      // O(1)
//	Nodes() []Node                     // O(V), insertion order
//	NodeIDs() []string                 // O(V), insertion order
//	Order(id string) int               // O(1), insertion position
//
//	// Segment lifecycle
//	AddEdge(from, to string, m EdgeMetrics) error // O(1)
//	HasEdge(from, to string) bool                 // O(1)
//	Edge(from, to string) (Edge, error)           // O(1), oriented from→to
//	Neighbors(id string) ([]Edge, error)          // O(d), oriented away from id
//	Edges() []Edge                                // O(V+E)
//
// Errors:
//
//	ErrEmptyNodeID         – zero-length node ID
//	ErrDuplicateNode       – node ID already present
//	ErrNodeNotFound        – missing node
//	ErrEdgeNotFound        – missing segment
//	ErrLoopNotAllowed      – from == to
//	ErrMultiEdgeNotAllowed – pair already stored
//	ErrBadMetrics          – metrics outside their domain
//
// A Graph is built once (by builder.Build or by hand) and then only read.
// Readers may run concurrently; the planner package never mutates a Graph
// that has been published to queries.
package core
