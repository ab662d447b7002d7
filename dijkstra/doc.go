// SPDX-License-Identifier: MIT
//
// Package dijkstra finds the best route between two airports of a
// core.Graph with a modified single-source Dijkstra search.
//
// Overview:
//
//   - FindRoute minimizes a per-segment cost chosen by a Criterion
//     (distance by default) and, along the winning path, accumulates four
//     figures: total distance, total flight time, a distance-weighted average
//     safety rating and an additive failure-risk estimate.
//   - The search stops as soon as the destination is settled.
//   - A destination that is never reached yields ErrNoRoute. A Result never
//     carries infinite or placeholder values.
//
// Accumulators along a relaxation u→w over segment e:
//
//	distance[w] = distance[u] + e.DistanceKm
//	time[w]     = time[u]     + e.FlightTimeHours
//	safety[w]   = (safety[u]·distance[u] + e.SafetyRating·e.DistanceKm) / (distance[u] + e.DistanceKm)
//	risk[w]     = risk[u]     + e.FailureRatePerHour·e.FlightTimeHours / 10
//
// The source starts at distance 0, time 0, safety 100 and risk 0. Nodes the
// search has not reached carry no accumulator values at all.
//
// Criteria:
//
//	distance - e.DistanceKm (default).
//	time     - e.FlightTimeHours.
//	safety   - e.DistanceKm · ((100 - e.SafetyRating)/100 + 1).
//	risk     - e.FailureRatePerHour · e.FlightTimeHours / 10.
//
// WithCostFunc plugs an arbitrary non-negative cost. +Inf marks a segment
// impassable.
//
// Determinism:
//
//   - Equal costs are settled in node insertion order (core.Graph.Order),
//     so repeated queries on the same graph return the same path.
//
// Complexity:
//
//   - Time:  O((V + E) log V) with a lazy decrease-key binary heap.
//   - Space: O(V + E).
//
// Errors (sentinel):
//
//	ErrNilGraph         - nil *core.Graph.
//	ErrEmptyNodeID      - empty start or end ID.
//	ErrNodeNotFound     - start or end absent from the graph.
//	ErrUnknownCriterion - criterion name not recognized.
//	ErrNegativeCost     - cost function returned a negative or NaN value.
//	ErrNoRoute          - end is not reachable from start.
//
// Thread safety:
//
//   - FindRoute only reads the graph; concurrent queries on one graph are safe
//     as long as nobody mutates it meanwhile.
package dijkstra
