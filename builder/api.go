// SPDX-License-Identifier: MIT
// Package: airroute/builder
//
// api.go — Build, the single public entry point of the package.
//
// Canonical model (k-nearest route network):
//   - For each node u in input order, rank every other node by Haversine
//     distance (stable: ties keep input order).
//   - Draw k ∈ [minNeighbors, maxNeighbors] for u; cap at n-1.
//   - The k nearest become u's neighbors. A pair already synthesized from the
//     other endpoint is reused as-is, so each unordered pair gets exactly one
//     metrics draw.
//
// Determinism:
//   - RNG draw order: per node, k first (only if the range is not degenerate),
//     then for each newly created segment safety then failure rate.
//   - Same nodes, options and seed ⇒ identical graph.

package builder

import (
	"fmt"
	"math"
	"sort"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/airroute/core"
	"github.com/katalvlaran/airroute/geo"
)

const methodBuild = "Build"

// candidate is one ranked peer of the node currently being connected.
type candidate struct {
	idx  int     // position in the input slice
	dist float64 // raw Haversine distance in km
}

// Build validates nodes and returns a fresh route graph.
//
// Errors (wrapped with "Build:"):
//   - ErrNoNodes:            len(nodes) == 0.
//   - core.ErrEmptyNodeID:   a node without ID.
//   - core.ErrDuplicateNode: two nodes share an ID.
//   - ErrBadCoordinates:     latitude/longitude out of range or not finite.
//   - ErrNeedRandSource:     variable neighbor count without WithSeed/WithRand.
//   - ErrBadAttribute:       an attribute function produced invalid metrics.
//
// Complexity: O(V² log V) time, O(V) extra space.
func Build(nodes []core.Node, opts ...BuilderOption) (*core.Graph, error) {
	cfg := newBuilderConfig(opts...)

	// 1) Validate input before touching any graph.
	if err := validateNodes(nodes); err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, err)
	}
	if cfg.rng == nil && cfg.stochasticTopology() {
		return nil, fmt.Errorf("%s: neighbors in [%d,%d]: %w",
			methodBuild, cfg.minNeighbors, cfg.maxNeighbors, ErrNeedRandSource)
	}

	// 2) Insert nodes in input order; this order drives every tie-break later.
	g := core.NewGraph(core.WithCapacity(len(nodes)))
	points := make([]orb.Point, len(nodes))
	for i, n := range nodes {
		if err := g.AddNode(n); err != nil {
			return nil, fmt.Errorf("%s: AddNode(%s): %w", methodBuild, n.ID, err)
		}
		points[i] = n.Point()
	}

	// 3) Connect every node to its k nearest peers.
	ranked := make([]candidate, 0, len(nodes)-1)
	for ui := range nodes {
		ranked = rankPeers(ranked[:0], ui, points)
		k := cfg.neighborCount()
		if k > len(ranked) {
			k = len(ranked)
		}
		for _, c := range ranked[:k] {
			if err := connect(g, cfg, nodes[ui], nodes[c.idx], c.dist); err != nil {
				return nil, fmt.Errorf("%s: %w", methodBuild, err)
			}
		}
	}

	return g, nil
}

// rankPeers fills dst with every node except ui, sorted by ascending
// distance from ui. Equal distances keep input order.
func rankPeers(dst []candidate, ui int, points []orb.Point) []candidate {
	for vi := range points {
		if vi == ui {
			continue
		}
		dst = append(dst, candidate{idx: vi, dist: geo.Haversine(points[ui], points[vi])})
	}
	sort.SliceStable(dst, func(i, j int) bool { return dst[i].dist < dst[j].dist })

	return dst
}

// connect synthesizes and stores the segment {u,v} unless it already exists.
func connect(g *core.Graph, cfg builderConfig, u, v core.Node, rawKm float64) error {
	if g.HasEdge(u.ID, v.ID) {
		// v selected u first; its draw is the single source of truth.
		return nil
	}
	m := synthesize(cfg, u, v, rawKm)
	if err := g.AddEdge(u.ID, v.ID, m); err != nil {
		return fmt.Errorf("AddEdge(%s,%s): %w: %w", u.ID, v.ID, ErrBadAttribute, err)
	}

	return nil
}

// synthesize derives the metrics of one segment.
//
//	distanceKm      = max(minDistance, round(rawKm))
//	flightTimeHours = round1(distanceKm / cruiseSpeed)
//	safetyRating    = safetyFn(rng, u, v)
//	failureRate     = failureRateFn(rng, u, v)
func synthesize(cfg builderConfig, u, v core.Node, rawKm float64) core.EdgeMetrics {
	d := math.Round(rawKm)
	if d < cfg.minDistanceKm {
		d = cfg.minDistanceKm
	}

	return core.EdgeMetrics{
		DistanceKm:         d,
		FlightTimeHours:    RoundTo(d/cfg.cruiseSpeedKmh, 1),
		SafetyRating:       cfg.safetyFn(cfg.rng, u, v),
		FailureRatePerHour: cfg.failureRateFn(cfg.rng, u, v),
	}
}

// RoundTo rounds x to the given number of decimal places (half away from zero).
func RoundTo(x float64, places int) float64 {
	p := math.Pow(10, float64(places))

	return math.Round(x*p) / p
}
