// SPDX-License-Identifier: MIT

package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/airroute/core"
)

// ErrNeighbors is returned when fetching neighbors from the graph fails.
var ErrNeighbors = errors.New("bfs: neighbor iteration error")

// walker holds the mutable state of one search. The queue is never
// shrunk; head marks the next node to visit.
type walker struct {
	g     *core.Graph
	opts  Options
	queue []string
	head  int
	res   *Result
}

// BFS explores g from start in order of leg count.
//
// Returns ErrNilGraph, ErrStartNotFound, ErrOptionViolation, ErrNeighbors,
// the context error on cancellation, or an error returned by OnVisit.
// On error the partial Result is still returned.
func BFS(g *core.Graph, start string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartNotFound, start)
	}

	n := g.NodeCount()
	w := &walker{
		g:     g,
		opts:  o,
		queue: make([]string, 0, n),
		res: &Result{
			Start:  start,
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
	w.discover(start, "", 0)

	return w.res, w.run()
}

func (w *walker) discover(id, via string, legs int) {
	w.res.Depth[id] = legs
	if via != "" {
		w.res.Parent[id] = via
	}
	w.opts.OnDiscover(id, via, legs)
	w.queue = append(w.queue, id)
}

func (w *walker) run() error {
	for w.head < len(w.queue) {
		if err := w.opts.Ctx.Err(); err != nil {
			return err
		}

		id := w.queue[w.head]
		w.head++
		legs := w.res.Depth[id]

		w.res.Order = append(w.res.Order, id)
		if err := w.opts.OnVisit(id, legs); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", id, err)
		}

		if w.opts.MaxDepth > 0 && legs >= w.opts.MaxDepth {
			continue
		}
		if err := w.expand(id, legs+1); err != nil {
			return err
		}
	}

	return nil
}

// expand discovers the open, unseen neighbors of id.
func (w *walker) expand(id string, legs int) error {
	nbrs, err := w.g.NeighborIDs(id)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrNeighbors, id, err)
	}
	for _, nbr := range nbrs {
		if _, seen := w.res.Depth[nbr]; seen || w.opts.Avoid[nbr] {
			continue
		}
		if !w.opts.FilterNeighbor(id, nbr) {
			continue
		}
		w.discover(nbr, id, legs)
	}

	return nil
}
