package planner_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/airroute/builder"
	"github.com/katalvlaran/airroute/core"
	"github.com/katalvlaran/airroute/dijkstra"
	"github.com/katalvlaran/airroute/internal/logging"
	"github.com/katalvlaran/airroute/planner"
)

// equatorChain returns five airports on the equator at growing spacing, so
// that with k=1 every node links to its predecessor: P0–P1–P2–P3–P4.
func equatorChain() []core.Node {
	lons := []float64{0, 1, 3, 6, 10}
	out := make([]core.Node, len(lons))
	for i, lon := range lons {
		out[i] = core.Node{ID: "P" + string(rune('0'+i)), DisplayName: "Point", Longitude: lon}
	}

	return out
}

type fakeRecorder struct {
	mu       sync.Mutex
	rebuilds []error
	queries  []string
}

func (f *fakeRecorder) ObserveRebuild(_ *planner.Snapshot, _ time.Duration, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rebuilds = append(f.rebuilds, err)
}

func (f *fakeRecorder) ObserveQuery(criterion, outcome string, _ time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, criterion+"/"+outcome)
}

type PlannerSuite struct {
	suite.Suite
	ctx context.Context
	rec *fakeRecorder
	p   *planner.Planner
	at  time.Time
}

func (s *PlannerSuite) SetupTest() {
	s.ctx = logging.WithLogger(context.Background(), logging.Discard())
	s.rec = &fakeRecorder{}
	s.at = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s.p = planner.New(
		planner.WithSeed(7),
		planner.WithRecorder(s.rec),
		planner.WithBuilderOptions(builder.WithFixedNeighbors(1)),
		planner.WithClock(func() time.Time { return s.at }),
	)
}

func (s *PlannerSuite) TestQueriesBeforeInitialization() {
	s.Nil(s.p.Snapshot())

	_, err := s.p.FindOptimalRoute(s.ctx, "P0", "P4", "")
	s.ErrorIs(err, planner.ErrNotInitialized)

	_, err = s.p.Reachable(s.ctx, "P0", 2)
	s.ErrorIs(err, planner.ErrNotInitialized)
}

func (s *PlannerSuite) TestInitializeGraphPublishesSnapshot() {
	snap, err := s.p.InitializeGraph(s.ctx, equatorChain())
	s.Require().NoError(err)

	s.NotEmpty(snap.ID)
	s.Equal(s.at, snap.BuiltAt)
	s.Equal(int64(7), snap.Seed)
	s.Equal(5, snap.Nodes)
	s.Equal(4, snap.Edges)
	s.Equal(1, snap.Components)
	s.True(snap.Connected)
	s.Same(snap, s.p.Snapshot())
	s.Equal([]error{nil}, s.rec.rebuilds)
}

func (s *PlannerSuite) TestFindOptimalRoute() {
	_, err := s.p.InitializeGraph(s.ctx, equatorChain())
	s.Require().NoError(err)

	res, err := s.p.FindOptimalRoute(s.ctx, "P0", "P4", "")
	s.Require().NoError(err)
	s.Equal([]string{"P0", "P1", "P2", "P3", "P4"}, res.Path)
	s.Equal(111+222+334+445, res.TotalDistanceKm)
	s.Equal(dijkstra.CriterionDistance, res.Criterion)
	s.GreaterOrEqual(res.AggregateSafetyRating, 96.0)
	s.LessOrEqual(res.AggregateSafetyRating, 99.0)

	res, err = s.p.FindOptimalRoute(s.ctx, "P4", "P2", "time")
	s.Require().NoError(err)
	s.Equal([]string{"P4", "P3", "P2"}, res.Path)
	s.Equal(dijkstra.CriterionTime, res.Criterion)

	s.Equal([]string{"distance/ok", "time/ok"}, s.rec.queries)
}

func (s *PlannerSuite) TestFindOptimalRouteInvalidInput() {
	_, err := s.p.InitializeGraph(s.ctx, equatorChain())
	s.Require().NoError(err)

	_, err = s.p.FindOptimalRoute(s.ctx, "P0", "P4", "scenic")
	s.ErrorIs(err, dijkstra.ErrUnknownCriterion)
	s.True(planner.IsInvalidInput(err))

	_, err = s.p.FindOptimalRoute(s.ctx, "P0", "ZZZ", "distance")
	s.ErrorIs(err, dijkstra.ErrNodeNotFound)
	s.True(planner.IsInvalidInput(err))

	s.Equal([]string{"scenic/invalid", "distance/invalid"}, s.rec.queries)
}

func (s *PlannerSuite) TestFailedRebuildKeepsPreviousSnapshot() {
	first, err := s.p.InitializeGraph(s.ctx, equatorChain())
	s.Require().NoError(err)

	dup := append(equatorChain(), core.Node{ID: "P0"})
	_, err = s.p.InitializeGraph(s.ctx, dup)
	s.ErrorIs(err, core.ErrDuplicateNode)
	s.Same(first, s.p.Snapshot())

	_, err = s.p.InitializeGraph(s.ctx, nil)
	s.ErrorIs(err, builder.ErrNoNodes)
	s.Same(first, s.p.Snapshot())

	s.Len(s.rec.rebuilds, 3)
	s.Error(s.rec.rebuilds[1])
}

func (s *PlannerSuite) TestRebuildReplacesGraph() {
	_, err := s.p.InitializeGraph(s.ctx, equatorChain())
	s.Require().NoError(err)

	second, err := s.p.InitializeGraph(s.ctx, equatorChain()[:2])
	s.Require().NoError(err)
	s.Equal(2, second.Nodes)

	_, err = s.p.FindOptimalRoute(s.ctx, "P0", "P4", "")
	s.ErrorIs(err, dijkstra.ErrNodeNotFound)
}

func (s *PlannerSuite) TestReachable() {
	_, err := s.p.InitializeGraph(s.ctx, equatorChain())
	s.Require().NoError(err)

	got, err := s.p.Reachable(s.ctx, "P2", 1)
	s.Require().NoError(err)
	s.Equal([]planner.Destination{
		{ID: "P1", Legs: 1, Path: []string{"P2", "P1"}},
		{ID: "P3", Legs: 1, Path: []string{"P2", "P3"}},
	}, got)

	all, err := s.p.Reachable(s.ctx, "P0", 0)
	s.Require().NoError(err)
	s.Len(all, 4)
	s.Equal(4, all[3].Legs)

	cut, err := s.p.Reachable(s.ctx, "P0", 0, "P2")
	s.Require().NoError(err)
	s.Equal([]planner.Destination{{ID: "P1", Legs: 1, Path: []string{"P0", "P1"}}}, cut)

	_, err = s.p.Reachable(s.ctx, "nope", 1)
	s.True(planner.IsInvalidInput(err))
}

func TestPlannerSuite(t *testing.T) {
	suite.Run(t, new(PlannerSuite))
}

func TestSameSeedSameNetwork(t *testing.T) {
	ctx := context.Background()
	a := planner.New(planner.WithSeed(99), planner.WithLogger(logging.Discard()))
	b := planner.New(planner.WithSeed(99), planner.WithLogger(logging.Discard()))

	sa, err := a.InitializeGraph(ctx, equatorChain())
	require.NoError(t, err)
	sb, err := b.InitializeGraph(ctx, equatorChain())
	require.NoError(t, err)

	require.Equal(t, sa.Graph.Edges(), sb.Graph.Edges())
	require.NotEqual(t, sa.ID, sb.ID)
}

func TestConcurrentQueriesDuringRebuild(t *testing.T) {
	ctx := context.Background()
	p := planner.New(planner.WithSeed(1), planner.WithLogger(logging.Discard()),
		planner.WithBuilderOptions(builder.WithFixedNeighbors(1)))
	_, err := p.InitializeGraph(ctx, equatorChain())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				res, err := p.FindOptimalRoute(ctx, "P0", "P4", "distance")
				if assert.NoError(t, err) {
					assert.Len(t, res.Path, 5)
				}
			}
		}()
	}
	for i := 0; i < 5; i++ {
		_, err := p.InitializeGraph(ctx, equatorChain())
		require.NoError(t, err)
	}
	wg.Wait()
}
