// Package airroute is an air-route planner over a sparse network of
// airports.
//
// What is inside?
//
//	A thread-safe, seedable route engine plus the server around it:
//		• geo/      – Haversine great-circle distance on orb points
//		• core/     – Graph, Node, Edge and EdgeMetrics, one shared record per segment
//		• builder/  – k-nearest topology and per-segment metric synthesis
//		• dijkstra/ – route search tracking distance, time, safety and risk
//		• risk/     – exponential failure probability 1 - e^(-λt)
//		• bfs/      – hop-limited reachability and connected components
//		• planner/  – InitializeGraph / FindOptimalRoute over an atomic snapshot
//
// The server lives in cmd/airroute and wires internal/config,
// internal/logging, internal/catalog, internal/metrics and internal/httpapi.
//
// Quick example:
//
//	p := planner.New(planner.WithSeed(42))
//	if _, err := p.InitializeGraph(ctx, airports); err != nil { ... }
//	res, err := p.FindOptimalRoute(ctx, "DEL", "BOM", "safety")
//	// res.Path, res.TotalDistanceKm, res.AggregateSafetyRating, res.FailureRiskPercent
//
// Every route reports the distance-weighted safety rating of its segments
// and an additive failure-risk estimate; a pair without a connecting path
// yields dijkstra.ErrNoRoute rather than a result with infinite fields.
//
//	go get github.com/katalvlaran/airroute
package airroute
