// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Segment lifecycle and neighborhood queries.
// Determinism:
//   - Neighbors(id) returns segments in the order they were attached to id.
//   - Edges() returns one oriented view per segment, in insertion order of
//     the canonical pair.
// Concurrency:
//   - AddEdge takes the write lock; all queries take the read lock.
// Invariant:
//   - adjacency[u][v] and adjacency[v][u] point at the same *segment, so the
//     metrics observed from either endpoint are identical by construction.

package core

import (
	"fmt"
	"math"
)

// AddEdge stores the undirected segment {from,to} with the given metrics.
//
// Both endpoints must already exist. The pair may be stored only once:
// a second AddEdge for the same pair (in either orientation) returns
// ErrMultiEdgeNotAllowed and leaves the first record untouched.
//
// Returns ErrEmptyNodeID, ErrLoopNotAllowed, ErrNodeNotFound,
// ErrMultiEdgeNotAllowed or ErrBadMetrics.
// Complexity: O(1).
func (g *Graph) AddEdge(from, to string, m EdgeMetrics) error {
	// 1) Input validation
	if from == "" || to == "" {
		return ErrEmptyNodeID
	}
	if from == to {
		return fmt.Errorf("%w: %q", ErrLoopNotAllowed, from)
	}
	if err := validateMetrics(m); err != nil {
		return fmt.Errorf("AddEdge(%s,%s): %w", from, to, err)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 2) Endpoints must be known
	if _, ok := g.nodes[from]; !ok {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, from)
	}
	if _, ok := g.nodes[to]; !ok {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, to)
	}

	// 3) One record per unordered pair
	key := canonical(from, to)
	if _, exists := g.edges[key]; exists {
		return fmt.Errorf("%w: %s—%s", ErrMultiEdgeNotAllowed, key[0], key[1])
	}

	// 4) Store once, reference from both directions
	s := &segment{a: key[0], b: key[1], metrics: m}
	g.edges[key] = s
	g.adjacency[from][to] = s
	g.adjacency[to][from] = s
	g.neighbors[from] = append(g.neighbors[from], to)
	g.neighbors[to] = append(g.neighbors[to], from)

	return nil
}

// HasEdge reports whether the pair {from,to} carries a segment.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[from][to]

	return ok
}

// Edge returns the segment {from,to} oriented from→to.
// Complexity: O(1).
func (g *Graph) Edge(from, to string) (Edge, error) {
	if from == "" || to == "" {
		return Edge{}, ErrEmptyNodeID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	s, ok := g.adjacency[from][to]
	if !ok {
		return Edge{}, fmt.Errorf("%w: %s→%s", ErrEdgeNotFound, from, to)
	}

	return s.orient(from), nil
}

// Neighbors returns every segment incident to id, oriented away from id.
// Complexity: O(d), where d is the degree of id.
func (g *Graph) Neighbors(id string) ([]Edge, error) {
	if id == "" {
		return nil, ErrEmptyNodeID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.nodes[id]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}
	ids := g.neighbors[id]
	out := make([]Edge, 0, len(ids))
	for _, nbr := range ids {
		out = append(out, g.adjacency[id][nbr].orient(id))
	}

	return out, nil
}

// NeighborIDs returns the IDs adjacent to id in attachment order.
// Complexity: O(d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyNodeID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.nodes[id]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}
	out := make([]string, len(g.neighbors[id]))
	copy(out, g.neighbors[id])

	return out, nil
}

// Edges returns one view per segment, oriented from the endpoint that was
// inserted first, ordered by that endpoint and then by attachment order.
// Complexity: O(V+E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, 0, len(g.edges))
	for _, u := range g.order {
		for _, v := range g.neighbors[u] {
			if g.index[u] < g.index[v] {
				out = append(out, g.adjacency[u][v].orient(u))
			}
		}
	}

	return out
}

// EdgeCount returns the number of undirected segments.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// validateMetrics enforces the EdgeMetrics domain.
func validateMetrics(m EdgeMetrics) error {
	switch {
	case math.IsNaN(m.DistanceKm) || math.IsInf(m.DistanceKm, 0) || m.DistanceKm <= 0:
		return fmt.Errorf("%w: distanceKm=%v", ErrBadMetrics, m.DistanceKm)
	case math.IsNaN(m.FlightTimeHours) || math.IsInf(m.FlightTimeHours, 0) || m.FlightTimeHours < 0:
		return fmt.Errorf("%w: flightTimeHours=%v", ErrBadMetrics, m.FlightTimeHours)
	case math.IsNaN(m.FailureRatePerHour) || math.IsInf(m.FailureRatePerHour, 0) || m.FailureRatePerHour < 0:
		return fmt.Errorf("%w: failureRatePerHour=%v", ErrBadMetrics, m.FailureRatePerHour)
	case m.SafetyRating < 0 || m.SafetyRating > 100:
		return fmt.Errorf("%w: safetyRating=%d", ErrBadMetrics, m.SafetyRating)
	}

	return nil
}
