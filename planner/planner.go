// SPDX-License-Identifier: MIT

package planner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/airroute/bfs"
	"github.com/katalvlaran/airroute/builder"
	"github.com/katalvlaran/airroute/core"
	"github.com/katalvlaran/airroute/dijkstra"
	"github.com/katalvlaran/airroute/internal/logging"
)

// ErrNotInitialized is returned by queries issued before the first
// successful InitializeGraph.
var ErrNotInitialized = errors.New("planner: graph not initialized")

// Query outcomes reported to the Recorder.
const (
	OutcomeOK      = "ok"
	OutcomeNoRoute = "no_route"
	OutcomeInvalid = "invalid"
	OutcomeError   = "error"
)

// Recorder receives rebuild and query observations.
type Recorder interface {
	ObserveRebuild(s *Snapshot, d time.Duration, err error)
	ObserveQuery(criterion, outcome string, d time.Duration)
}

type nopRecorder struct{}

func (nopRecorder) ObserveRebuild(*Snapshot, time.Duration, error) {}
func (nopRecorder) ObserveQuery(string, string, time.Duration) {}

// Snapshot is one published route network.
type Snapshot struct {
	ID         string      `json:"id"`
	BuiltAt    time.Time   `json:"builtAt"`
	Seed       int64       `json:"seed"`
	Nodes      int         `json:"nodes"`
	Edges      int         `json:"edges"`
	Components int         `json:"components"`
	Connected  bool        `json:"connected"`
	Graph      *core.Graph `json:"-"`
}

// Destination is one node reachable within a leg budget.
type Destination struct {
	ID   string   `json:"id"`
	Legs int      `json:"legs"`
	Path []string `json:"path"`
}

// Option configures a Planner.
type Option func(*Planner)

// WithLogger sets the logger used when the context carries none.
func WithLogger(l *slog.Logger) Option {
	return func(p *Planner) {
		if l != nil {
			p.log = l
		}
	}
}

// WithRecorder plugs a metrics sink.
func WithRecorder(r Recorder) Option {
	return func(p *Planner) {
		if r != nil {
			p.rec = r
		}
	}
}

// WithSeed fixes the builder seed so every rebuild of the same nodes yields
// the same network. Seed 0 draws a fresh seed from the clock per rebuild.
func WithSeed(seed int64) Option {
	return func(p *Planner) {
		p.seed = seed
	}
}

// WithBuilderOptions appends options passed to builder.Build on every rebuild.
func WithBuilderOptions(opts ...builder.BuilderOption) Option {
	return func(p *Planner) {
		p.buildOpts = append(p.buildOpts, opts...)
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(p *Planner) {
		if now != nil {
			p.now = now
		}
	}
}

// Planner builds route networks and answers route queries against the
// current one. It is safe for concurrent use.
type Planner struct {
	log       *slog.Logger
	rec       Recorder
	seed      int64
	buildOpts []builder.BuilderOption
	now       func() time.Time

	current atomic.Pointer[Snapshot]
}

// New returns a Planner without a network.
func New(opts ...Option) *Planner {
	p := &Planner{
		log: slog.Default(),
		rec: nopRecorder{},
		now: time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// InitializeGraph builds a network from nodes and publishes it.
// On error the previous snapshot, if any, stays current.
func (p *Planner) InitializeGraph(ctx context.Context, nodes []core.Node) (*Snapshot, error) {
	log := p.logger(ctx)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := p.now()
	seed := p.seed
	if seed == 0 {
		seed = start.UnixNano()
	}
	opts := append([]builder.BuilderOption{builder.WithSeed(seed)}, p.buildOpts...)

	g, err := builder.Build(nodes, opts...)
	if err != nil {
		p.rec.ObserveRebuild(nil, p.now().Sub(start), err)
		log.Warn("graph rebuild failed", "nodes", len(nodes), "error", err)
		return nil, fmt.Errorf("InitializeGraph: %w", err)
	}

	s := &Snapshot{
		ID:         uuid.NewString(),
		BuiltAt:    start.UTC(),
		Seed:       seed,
		Nodes:      g.NodeCount(),
		Edges:      g.EdgeCount(),
		Components: len(bfs.Components(g)),
		Graph:      g,
	}
	s.Connected = s.Components <= 1
	p.current.Store(s)

	elapsed := p.now().Sub(start)
	p.rec.ObserveRebuild(s, elapsed, nil)
	log.Info("graph rebuilt",
		"snapshot", s.ID, "nodes", s.Nodes, "edges", s.Edges,
		"components", s.Components, "seed", seed, "duration", elapsed)

	return s, nil
}

// Snapshot returns the current network, or nil before the first build.
func (p *Planner) Snapshot() *Snapshot {
	return p.current.Load()
}

// FindOptimalRoute returns the best route from start to end under criterion
// (empty means distance) on the current snapshot.
func (p *Planner) FindOptimalRoute(ctx context.Context, start, end, criterion string) (*dijkstra.Result, error) {
	began := p.now()
	c, err := dijkstra.ParseCriterion(criterion)
	if err != nil {
		p.observeQuery(ctx, criterion, began, err)
		return nil, err
	}

	s := p.current.Load()
	if s == nil {
		p.observeQuery(ctx, string(c), began, ErrNotInitialized)
		return nil, ErrNotInitialized
	}

	res, err := dijkstra.FindRoute(s.Graph, start, end,
		dijkstra.WithCriterion(c),
		dijkstra.WithContext(ctx),
	)
	p.observeQuery(ctx, string(c), began, err)
	if err != nil {
		return nil, fmt.Errorf("FindOptimalRoute(%s,%s): %w", start, end, err)
	}

	return res, nil
}

// Reachable lists the nodes reachable from start within maxLegs legs
// (0 means unlimited), nearest first. Airports in avoid are never entered.
func (p *Planner) Reachable(ctx context.Context, start string, maxLegs int, avoid ...string) ([]Destination, error) {
	s := p.current.Load()
	if s == nil {
		return nil, ErrNotInitialized
	}

	res, err := bfs.BFS(s.Graph, start,
		bfs.WithMaxDepth(maxLegs),
		bfs.WithAvoid(avoid...),
		bfs.WithContext(ctx),
	)
	if err != nil {
		return nil, fmt.Errorf("Reachable(%s): %w", start, err)
	}

	reached := res.Reached()
	out := make([]Destination, 0, len(reached))
	for _, id := range reached {
		path, err := res.PathTo(id)
		if err != nil {
			return nil, fmt.Errorf("Reachable(%s): %w", start, err)
		}
		out = append(out, Destination{ID: id, Legs: res.Depth[id], Path: path})
	}

	return out, nil
}

func (p *Planner) observeQuery(ctx context.Context, criterion string, began time.Time, err error) {
	outcome := Outcome(err)
	p.rec.ObserveQuery(criterion, outcome, p.now().Sub(began))
	if err != nil {
		p.logger(ctx).Debug("route query failed", "criterion", criterion, "outcome", outcome, "error", err)
	}
}

// Outcome classifies a query error for metrics and logs.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, dijkstra.ErrNoRoute):
		return OutcomeNoRoute
	case IsInvalidInput(err):
		return OutcomeInvalid
	default:
		return OutcomeError
	}
}

// IsInvalidInput reports whether err stems from a bad query argument.
func IsInvalidInput(err error) bool {
	return errors.Is(err, dijkstra.ErrEmptyNodeID) ||
		errors.Is(err, dijkstra.ErrNodeNotFound) ||
		errors.Is(err, dijkstra.ErrUnknownCriterion) ||
		errors.Is(err, bfs.ErrStartNotFound) ||
		errors.Is(err, bfs.ErrOptionViolation)
}

// logger prefers the context logger over the configured one.
func (p *Planner) logger(ctx context.Context) *slog.Logger {
	if l, ok := logging.Lookup(ctx); ok {
		return l
	}

	return p.log
}
