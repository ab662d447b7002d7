// SPDX-License-Identifier: MIT
//
// File: dijkstra.go
// Role: FindRoute, the search runner and its lazy decrease-key heap.
// Determinism:
//   - Heap order is (cost, insertion order), so ties never depend on map
//     iteration order.
// Concurrency:
//   - One runner per call; the graph is only read.

package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/airroute/core"
)

const (
	// startSafety is the safety rating of an empty path.
	startSafety = 100

	// timePlaces is the number of decimals kept in TotalFlightTimeHours;
	// it only strips floating-point noise from the sum.
	timePlaces = 6
)

// FindRoute computes the best route from start to end in g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. start and end must be non-empty (ErrEmptyNodeID).
//  3. Both must exist in g (ErrNodeNotFound).
//  4. The criterion must be known (ErrUnknownCriterion).
//
// start == end is not an error: the result is the trivial path [start] with
// zero distance and time, safety 100 and risk "0.00".
//
// Returns ErrNoRoute if end cannot be reached, ErrNegativeCost if the cost
// function misbehaves, or the context error if the search was cancelled.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func FindRoute(g *core.Graph, start, end string, opts ...Option) (*Result, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if g == nil {
		return nil, ErrNilGraph
	}
	if start == "" || end == "" {
		return nil, ErrEmptyNodeID
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: start %q", ErrNodeNotFound, start)
	}
	if !g.HasNode(end) {
		return nil, fmt.Errorf("%w: end %q", ErrNodeNotFound, end)
	}
	cost := cfg.Cost
	if cost == nil {
		var err error
		if cost, err = CostFor(cfg.Criterion); err != nil {
			return nil, err
		}
	}

	// 3) Degenerate query
	if start == end {
		return trivialResult(start, cfg.Criterion), nil
	}
	if err := cfg.Ctx.Err(); err != nil {
		return nil, err
	}

	// 4) Search
	r := &runner{
		g:      g,
		opts:   cfg,
		cost:   cost,
		target: end,
		state:  make(map[string]*nodeState, g.NodeCount()),
		pq:     make(nodePQ, 0, g.NodeCount()),
	}
	r.init(start)
	if err := r.process(); err != nil {
		return nil, err
	}

	// 5) Reachability is checked before any path is rebuilt.
	st, ok := r.state[end]
	if !ok || !st.settled {
		return nil, fmt.Errorf("%w: %s→%s", ErrNoRoute, start, end)
	}

	return r.result(start, end), nil
}

// nodeState is the per-node bookkeeping of one search. A node is reached iff
// it has a nodeState; unreached nodes have no accumulator values to misread.
type nodeState struct {
	cost     float64   // optimized quantity from the source
	distance float64   // km from the source along the current best path
	hours    float64   // flight time along the current best path
	safety   float64   // distance-weighted safety average along that path
	risk     float64   // additive risk along that path
	prev     string    // predecessor, "" for the source
	via      core.Edge // segment prev→node, zero for the source
	settled  bool      // cost is final
}

// runner holds the mutable state for a single FindRoute execution.
type runner struct {
	g      *core.Graph
	opts   Options
	cost   CostFunc
	target string
	state  map[string]*nodeState
	pq     nodePQ
}

// init seeds the source and pushes it onto the heap.
func (r *runner) init(source string) {
	r.state[source] = &nodeState{safety: startSafety}
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: source, cost: 0, order: r.g.Order(source)})
}

// process is the main loop. It ends when the target is settled, the heap is
// exhausted or the next cost exceeds MaxCost.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		// 1) Pop the cheapest item
		item := heap.Pop(&r.pq).(*nodeItem)
		st := r.state[item.id]

		// 2) Skip stale entries
		if st.settled || item.cost > st.cost {
			continue
		}

		// 3) Respect the cost cap
		if item.cost > r.opts.MaxCost {
			break
		}

		// 4) Settle; stop at the target
		st.settled = true
		if item.id == r.target {
			return nil
		}
		if err := r.opts.Ctx.Err(); err != nil {
			return err
		}

		// 5) Relax outgoing segments
		if err := r.relax(item.id, st); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve every neighbor of u through u.
// Improvement is strict: an equal cost never replaces an existing predecessor.
func (r *runner) relax(u string, su *nodeState) error {
	segments, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: neighbors of %q: %w", u, err)
	}

	for _, e := range segments {
		c := r.cost(e)
		if math.IsNaN(c) || c < 0 {
			return fmt.Errorf("%w: %s→%s cost=%v", ErrNegativeCost, e.From, e.To, c)
		}
		if math.IsInf(c, 1) {
			continue // impassable
		}

		sv, reached := r.state[e.To]
		if reached && sv.settled {
			continue
		}
		candidate := su.cost + c
		if candidate > r.opts.MaxCost {
			continue
		}
		if reached && candidate >= sv.cost {
			continue
		}
		if !reached {
			sv = &nodeState{}
			r.state[e.To] = sv
		}

		sv.cost = candidate
		sv.distance = su.distance + e.DistanceKm
		sv.hours = su.hours + e.FlightTimeHours
		sv.safety = (su.safety*su.distance + float64(e.SafetyRating)*e.DistanceKm) / (su.distance + e.DistanceKm)
		sv.risk = su.risk + SegmentRisk(e.EdgeMetrics)
		sv.prev = u
		sv.via = e

		heap.Push(&r.pq, &nodeItem{id: e.To, cost: candidate, order: r.g.Order(e.To)})
	}

	return nil
}

// result walks predecessors back from end and assembles the Result.
func (r *runner) result(start, end string) *Result {
	var (
		path  []string
		edges []core.Edge
	)
	for cur := end; cur != start; cur = r.state[cur].prev {
		path = append(path, cur)
		edges = append(edges, r.state[cur].via)
	}
	path = append(path, start)
	reverseStrings(path)
	reverseEdges(edges)

	st := r.state[end]

	return &Result{
		Criterion:             r.opts.Criterion,
		Path:                  path,
		EdgesUsed:             edges,
		TotalDistanceKm:       int(math.Round(st.distance)),
		TotalFlightTimeHours:  roundTo(st.hours, timePlaces),
		AggregateSafetyRating: st.safety,
		FailureRisk:           st.risk,
		FailureRiskPercent:    formatPercent(st.risk),
		TotalCost:             st.cost,
	}
}

// trivialResult is the zero-length route from id to itself.
func trivialResult(id string, c Criterion) *Result {
	return &Result{
		Criterion:             c,
		Path:                  []string{id},
		EdgesUsed:             []core.Edge{},
		AggregateSafetyRating: startSafety,
		FailureRiskPercent:    formatPercent(0),
	}
}

func reverseStrings(s []string) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

func reverseEdges(s []core.Edge) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

func roundTo(x float64, places int) float64 {
	p := math.Pow(10, float64(places))

	return math.Round(x*p) / p
}

// nodeItem is one heap entry: a node and the cost it was pushed with.
type nodeItem struct {
	id    string
	cost  float64
	order int // insertion order of id in the graph, the tie-breaker
}

// nodePQ is a min-heap of *nodeItem ordered by (cost, order).
// Outdated entries stay in the heap and are skipped when popped.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by cost, then by node insertion order.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}

	return pq[i].order < pq[j].order
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element; heap.Pop has already moved the
// minimum there.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
