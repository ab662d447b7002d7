// SPDX-License-Identifier: MIT

package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/airroute/core"
	"github.com/katalvlaran/airroute/risk"
)

// Result is a successful route between two nodes.
//
// AggregateSafetyRating is the distance-weighted mean of the traversed
// segments' ratings (100 for the empty path), so it always lies in [0,100].
// FailureRisk is the additive risk estimate; FailureRiskPercent is the same
// value ×100 formatted with two decimals.
type Result struct {
	Criterion             Criterion   `json:"criterion"`
	Path                  []string    `json:"path"`
	EdgesUsed             []core.Edge `json:"edgesUsed"`
	TotalDistanceKm       int         `json:"totalDistanceKm"`
	TotalFlightTimeHours  float64     `json:"totalFlightTimeHours"`
	AggregateSafetyRating float64     `json:"aggregateSafetyRating"`
	FailureRiskPercent    string      `json:"failureRiskPercent"`
	TotalCost             float64     `json:"totalCost"`

	// FailureRisk is the unformatted additive risk.
	FailureRisk float64 `json:"-"`
}

// Legs returns the number of segments on the route.
func (r *Result) Legs() int { return len(r.EdgesUsed) }

// RiskProfile returns the additive risk accumulated after each leg. The
// sequence is non-decreasing and its last element equals FailureRisk.
func (r *Result) RiskProfile() []float64 {
	out := make([]float64, 0, len(r.EdgesUsed))
	acc := 0.0
	for _, e := range r.EdgesUsed {
		acc += SegmentRisk(e.EdgeMetrics)
		out = append(out, acc)
	}

	return out
}

// Segments converts the legs into risk.Segments.
func (r *Result) Segments() []risk.Segment {
	out := make([]risk.Segment, 0, len(r.EdgesUsed))
	for _, e := range r.EdgesUsed {
		out = append(out, risk.Segment{Rate: e.FailureRatePerHour, Hours: e.FlightTimeHours})
	}

	return out
}

// ExponentialFailureProbability composes the per-leg exponential failure
// probabilities. It is a reporting figure only; the search never uses it.
func (r *Result) ExponentialFailureProbability() float64 {
	ps := make([]float64, 0, len(r.EdgesUsed))
	for _, s := range r.Segments() {
		ps = append(ps, risk.FailureProbability(s.Rate, s.Hours))
	}

	return risk.Compose(ps...)
}

func formatPercent(x float64) string {
	return fmt.Sprintf("%.2f", x*100)
}
