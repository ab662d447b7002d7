// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: sentinel errors, criteria, cost functions and functional options.

package dijkstra

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/airroute/core"
)

// Sentinel errors returned by FindRoute.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrEmptyNodeID indicates an empty start or end ID.
	ErrEmptyNodeID = errors.New("dijkstra: node ID is empty")

	// ErrNodeNotFound indicates that start or end does not exist in the graph.
	ErrNodeNotFound = errors.New("dijkstra: node not found in graph")

	// ErrNoRoute indicates that end is not reachable from start.
	ErrNoRoute = errors.New("dijkstra: no route found")

	// ErrUnknownCriterion indicates an unrecognized criterion name.
	ErrUnknownCriterion = errors.New("dijkstra: unknown criterion")

	// ErrNegativeCost indicates a cost function produced a negative or NaN cost.
	ErrNegativeCost = errors.New("dijkstra: negative segment cost")

	// ErrBadMaxCost indicates that MaxCost was set to a negative value.
	ErrBadMaxCost = errors.New("dijkstra: MaxCost must be non-negative")
)

// Criterion names the quantity a search minimizes.
type Criterion string

// Built-in criteria.
const (
	CriterionDistance Criterion = "distance"
	CriterionTime     Criterion = "time"
	CriterionSafety   Criterion = "safety"
	CriterionRisk     Criterion = "risk"

	// CriterionCustom labels results of searches configured with WithCostFunc.
	CriterionCustom Criterion = "custom"
)

// Criteria lists the built-in criteria in presentation order.
func Criteria() []Criterion {
	return []Criterion{CriterionDistance, CriterionTime, CriterionSafety, CriterionRisk}
}

// ParseCriterion maps a user-facing name to a Criterion. Matching is
// case-insensitive and the empty string selects CriterionDistance.
func ParseCriterion(s string) (Criterion, error) {
	c := Criterion(strings.ToLower(strings.TrimSpace(s)))
	if c == "" {
		return CriterionDistance, nil
	}
	if _, err := CostFor(c); err != nil {
		return "", err
	}

	return c, nil
}

// CostFunc returns the non-negative cost of traversing e.
type CostFunc func(e core.Edge) float64

// SegmentRisk is the additive risk contribution of one segment.
func SegmentRisk(m core.EdgeMetrics) float64 {
	return m.FailureRatePerHour * m.FlightTimeHours / 10
}

// CostFor returns the CostFunc of a built-in criterion.
func CostFor(c Criterion) (CostFunc, error) {
	switch c {
	case CriterionDistance:
		return func(e core.Edge) float64 { return e.DistanceKm }, nil
	case CriterionTime:
		return func(e core.Edge) float64 { return e.FlightTimeHours }, nil
	case CriterionSafety:
		return func(e core.Edge) float64 {
			return e.DistanceKm * (float64(100-e.SafetyRating)/100 + 1)
		}, nil
	case CriterionRisk:
		return func(e core.Edge) float64 { return SegmentRisk(e.EdgeMetrics) }, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCriterion, string(c))
	}
}

// Options configures FindRoute.
//
// Criterion – built-in quantity to minimize; ignored when Cost is set.
// Cost      – explicit cost function (WithCostFunc).
// MaxCost   – nodes whose best cost exceeds this are never settled.
// Ctx       – checked once per settled node; cancellation aborts the search.
type Options struct {
	Criterion Criterion
	Cost      CostFunc
	MaxCost   float64
	Ctx       context.Context
}

// Option represents a functional option for configuring FindRoute.
type Option func(*Options)

// WithCriterion selects a built-in criterion. Unknown names are reported by
// FindRoute as ErrUnknownCriterion.
func WithCriterion(c Criterion) Option {
	return func(o *Options) {
		o.Criterion = c
		o.Cost = nil
	}
}

// WithCostFunc plugs an arbitrary cost function. Panics on nil.
func WithCostFunc(fn CostFunc) Option {
	if fn == nil {
		panic("dijkstra: WithCostFunc(nil)")
	}
	return func(o *Options) {
		o.Criterion = CriterionCustom
		o.Cost = fn
	}
}

// WithMaxCost caps the explored cost. A destination beyond the cap is
// reported as ErrNoRoute. Panics on negative or NaN max.
func WithMaxCost(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		panic(ErrBadMaxCost.Error())
	}
	return func(o *Options) {
		o.MaxCost = max
	}
}

// WithContext sets a context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// DefaultOptions returns the defaults:
//   - Criterion: CriterionDistance.
//   - Cost:      nil (derived from Criterion).
//   - MaxCost:   +Inf.
//   - Ctx:       context.Background().
func DefaultOptions() Options {
	return Options{
		Criterion: CriterionDistance,
		MaxCost:   math.Inf(1),
		Ctx:       context.Background(),
	}
}
