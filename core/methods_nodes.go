// SPDX-License-Identifier: MIT
//
// File: methods_nodes.go
// Role: Node lifecycle and read-only node queries.
// Determinism:
//   - Nodes() and NodeIDs() return nodes in insertion order.
// Concurrency:
//   - Mutations take the write lock; queries take the read lock.

package core

import (
	"fmt"
	"math"
)

// AddNode inserts n into the Graph.
// Returns ErrEmptyNodeID if n.ID is empty, ErrDuplicateNode if the ID is
// already present. Unlike the permissive AddVertex of generic graphs, route
// graphs reject duplicates so that catalog errors surface early.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(n Node) error {
	if n.ID == "" {
		return ErrEmptyNodeID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.nodes[n.ID]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateNode, n.ID)
	}
	node := n // private copy
	g.nodes[n.ID] = &node
	g.index[n.ID] = len(g.order)
	g.order = append(g.order, n.ID)
	g.adjacency[n.ID] = make(map[string]*segment)

	return nil
}

// HasNode reports whether a node with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, exists := g.nodes[id]

	return exists
}

// Node returns a copy of the node with the given ID.
// Complexity: O(1).
func (g *Graph) Node(id string) (Node, error) {
	if id == "" {
		return Node{}, ErrEmptyNodeID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	n, ok := g.nodes[id]
	if !ok {
		return Node{}, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}

	return *n, nil
}

// Nodes returns copies of all nodes in insertion order.
// Complexity: O(V).
func (g *Graph) Nodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Node, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, *g.nodes[id])
	}

	return out
}

// NodeIDs returns all node IDs in insertion order.
// Complexity: O(V).
func (g *Graph) NodeIDs() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// Order returns the insertion position of id, or -1 if absent.
// Algorithms use it as the canonical tie-breaker between equal keys.
// Complexity: O(1).
func (g *Graph) Order(id string) int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if i, ok := g.index[id]; ok {
		return i
	}

	return -1
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// Degree returns the number of segments incident to id.
// Complexity: O(1).
func (g *Graph) Degree(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyNodeID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.nodes[id]; !ok {
		return 0, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}

	return len(g.neighbors[id]), nil
}

// ValidCoordinates reports whether lat/lon are finite and within range.
func ValidCoordinates(lat, lon float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lon) || math.IsInf(lat, 0) || math.IsInf(lon, 0) {
		return false
	}

	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
