// SPDX-License-Identifier: MIT
//
// Package core defines the central Graph, Node, Edge and EdgeMetrics types
// of the route network, and the thread-safe primitives used to build and
// query it.
//
// This file declares the value types, sentinel errors, GraphOption and the
// NewGraph constructor.
//
// Errors:
//
//	ErrEmptyNodeID         - node ID is the empty string.
//	ErrDuplicateNode       - a node with the same ID already exists.
//	ErrNodeNotFound        - requested node does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrLoopNotAllowed      - self-loop requested (route graphs never have them).
//	ErrMultiEdgeNotAllowed - a record for this unordered pair already exists.
//	ErrBadMetrics          - edge metrics violate their domain (distance <= 0, NaN, ...).
package core

import (
	"errors"
	"sync"

	"github.com/paulmach/orb"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that the provided node has an empty ID.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrDuplicateNode indicates an attempt to insert a node whose ID is already present.
	ErrDuplicateNode = errors.New("core: duplicate node ID")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates the unordered pair already carries a record.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrBadMetrics indicates edge metrics outside their domain.
	ErrBadMetrics = errors.New("core: invalid edge metrics")
)

// Node is a geo-located vertex of the route network (an airport).
//
// ID uniquely identifies the node within its Graph. DisplayName and Location
// are carried for presentation only and never influence routing.
type Node struct {
	// ID is the unique identifier (IATA code for airports).
	ID string `json:"id" yaml:"id"`

	// DisplayName is the human-readable name.
	DisplayName string `json:"displayName" yaml:"displayName"`

	// Location is a free-text "municipality, region" label.
	Location string `json:"location,omitempty" yaml:"location,omitempty"`

	// Latitude in decimal degrees, [-90, 90].
	Latitude float64 `json:"latitude" yaml:"latitude"`

	// Longitude in decimal degrees, [-180, 180].
	Longitude float64 `json:"longitude" yaml:"longitude"`
}

// Point returns the node position as an orb.Point (lon, lat order).
func (n Node) Point() orb.Point {
	return orb.Point{n.Longitude, n.Latitude}
}

// EdgeMetrics is the per-segment payload shared by both orientations of an
// undirected edge.
type EdgeMetrics struct {
	// DistanceKm is the great-circle segment length, strictly positive.
	DistanceKm float64 `json:"distanceKm"`

	// SafetyRating is an integer score, nominally in [96, 99].
	SafetyRating int `json:"safetyRating"`

	// FlightTimeHours is the estimated flight time (distance / cruise speed).
	FlightTimeHours float64 `json:"flightTimeHours"`

	// FailureRatePerHour is the hazard rate of the segment.
	FailureRatePerHour float64 `json:"failureRatePerHour"`
}

// Edge is an oriented view of an undirected segment: From→To plus the shared
// metrics. Looking up (u,v) or (v,u) yields identical metrics.
type Edge struct {
	// From is the node the traversal leaves.
	From string `json:"from"`

	// To is the node the traversal enters.
	To string `json:"to"`

	EdgeMetrics
}

// segment is the single stored record of an unordered pair {a,b} with a < b.
// Both adjacency directions point at the same *segment.
type segment struct {
	a, b    string
	metrics EdgeMetrics
}

// orient returns the segment oriented so that it leaves from.
func (s *segment) orient(from string) Edge {
	if from == s.a {
		return Edge{From: s.a, To: s.b, EdgeMetrics: s.metrics}
	}

	return Edge{From: s.b, To: s.a, EdgeMetrics: s.metrics}
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithCapacity pre-sizes the node catalog for n nodes.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.nodes = make(map[string]*Node, n)
			g.order = make([]string, 0, n)
			g.adjacency = make(map[string]map[string]*segment, n)
			g.index = make(map[string]int, n)
		}
	}
}

// Graph is the in-memory route network.
//
// It is always undirected, loop-free and simple: each unordered pair of nodes
// carries at most one segment record. Node insertion order is preserved and
// defines the deterministic iteration and tie-breaking order of every query.
// mu guards all maps; the Graph is safe for concurrent readers.
type Graph struct {
	mu sync.RWMutex

	nodes map[string]*Node       // node ID → Node
	order []string               // node IDs in insertion order
	index map[string]int         // node ID → position in order
	edges map[[2]string]*segment // canonical pair → record

	// adjacency[u][v] = shared record of {u,v}
	adjacency map[string]map[string]*segment

	// neighbors[u] = neighbor IDs of u in edge-insertion order
	neighbors map[string][]string
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		nodes:     make(map[string]*Node),
		order:     make([]string, 0),
		index:     make(map[string]int),
		edges:     make(map[[2]string]*segment),
		adjacency: make(map[string]map[string]*segment),
		neighbors: make(map[string][]string),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// canonical returns the ordered key of the unordered pair {u,v}.
func canonical(u, v string) [2]string {
	if u < v {
		return [2]string{u, v}
	}

	return [2]string{v, u}
}
