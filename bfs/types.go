// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("bfs: graph is nil")

	// ErrStartNotFound is returned when the start airport is absent.
	ErrStartNotFound = errors.New("bfs: start node not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures a search. An invalid Option (negative depth, empty
// avoided ID) is recorded and surfaced as ErrOptionViolation by BFS.
type Option func(*Options)

// Options holds the limits and callbacks of one search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxDepth, if > 0, stops exploring beyond this many legs.
	// 0 means no limit.
	MaxDepth int

	// FilterNeighbor can close individual segments by returning false.
	// Called for each segment curr→neighbor.
	FilterNeighbor func(curr, neighbor string) bool

	// Avoid lists airports that are never entered. The start is exempt.
	Avoid map[string]bool

	// OnDiscover runs when a node is first reached; via is empty for the start.
	OnDiscover func(id, via string, legs int)

	// OnVisit runs when a node is dequeued. A non-nil error aborts the search.
	OnVisit func(id string, legs int) error

	err error
}

// DefaultOptions returns Options with a background context, no leg limit, no
// closed segments and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		FilterNeighbor: func(_, _ string) bool { return true },
		Avoid:          map[string]bool{},
		OnDiscover:     func(string, string, int) {},
		OnVisit:        func(string, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth limits the search to d legs (inclusive).
//
//	d > 0:  limit to d legs
//	d == 0: no limit
//	d < 0:  ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips segment curr→neighbor when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor string) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// WithAvoid closes the given airports. Repeated calls accumulate.
func WithAvoid(ids ...string) Option {
	return func(o *Options) {
		for _, id := range ids {
			if id == "" {
				o.err = fmt.Errorf("%w: empty ID in avoid list", ErrOptionViolation)
				return
			}
			o.Avoid[id] = true
		}
	}
}

// WithOnDiscover registers a callback for first contact with a node.
func WithOnDiscover(fn func(id, via string, legs int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDiscover = fn
		}
	}
}

// WithOnVisit registers a callback run on every visit; returning an error
// stops the search.
func WithOnVisit(fn func(id string, legs int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result holds the outcome of a search:
//   - Order: nodes in visit sequence, Start first.
//   - Depth: legs from Start for every reached node.
//   - Parent: predecessor in the fewest-legs tree (absent for Start).
type Result struct {
	Start  string
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}

// PathTo reconstructs the fewest-legs path from Start to dest.
func (r *Result) PathTo(dest string) ([]string, error) {
	legs, ok := r.Depth[dest]
	if !ok {
		return nil, fmt.Errorf("bfs: %q not reached from %q", dest, r.Start)
	}
	path := make([]string, legs+1)
	for i, cur := legs, dest; i >= 0; i-- {
		path[i] = cur
		cur = r.Parent[cur]
	}

	return path, nil
}

// Reached returns every visited node except Start, in visit order.
func (r *Result) Reached() []string {
	if len(r.Order) <= 1 {
		return []string{}
	}
	out := make([]string, len(r.Order)-1)
	copy(out, r.Order[1:])

	return out
}
