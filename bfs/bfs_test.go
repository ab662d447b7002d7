package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/airroute/bfs"
	"github.com/katalvlaran/airroute/core"
)

var leg = core.EdgeMetrics{DistanceKm: 100, SafetyRating: 97, FlightTimeHours: 0.1, FailureRatePerHour: 0.0015}

// network builds a graph with the given node order and undirected pairs.
func network(t testing.TB, ids []string, pairs [][2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, id := range ids {
		require.NoError(t, g.AddNode(core.Node{ID: id}))
	}
	for _, p := range pairs {
		require.NoError(t, g.AddEdge(p[0], p[1], leg))
	}

	return g
}

// cycle is A–B–C–D–A plus a pendant E hanging off C.
func cycle(t testing.TB) *core.Graph {
	return network(t, []string{"A", "B", "C", "D", "E"}, [][2]string{
		{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "A"}, {"C", "E"},
	})
}

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, "A")
	require.ErrorIs(t, err, bfs.ErrNilGraph)

	g := cycle(t)
	_, err = bfs.BFS(g, "missing")
	require.ErrorIs(t, err, bfs.ErrStartNotFound)

	_, err = bfs.BFS(g, "A", bfs.WithMaxDepth(-1))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)

	_, err = bfs.BFS(g, "A", bfs.WithAvoid("B", ""))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_SingleNode(t *testing.T) {
	g := network(t, []string{"A"}, nil)
	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, "A", res.Start)
	assert.Equal(t, []string{"A"}, res.Order)
	assert.Equal(t, 0, res.Depth["A"])
	assert.Empty(t, res.Reached())
}

func TestBFS_LayersAndDepths(t *testing.T) {
	res, err := bfs.BFS(cycle(t), "A")
	require.NoError(t, err)

	// B and D are attached to A in that order.
	assert.Equal(t, []string{"A", "B", "D", "C", "E"}, res.Order)
	assert.Equal(t, map[string]int{"A": 0, "B": 1, "D": 1, "C": 2, "E": 3}, res.Depth)
	assert.Equal(t, "B", res.Parent["C"])

	path, err := res.PathTo("E")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "E"}, path)
}

func TestBFS_MaxDepth(t *testing.T) {
	g := cycle(t)

	res, err := bfs.BFS(g, "A", bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "D"}, res.Reached())

	res, err = bfs.BFS(g, "A", bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"B", "C", "D"}, res.Reached())
	_, err = res.PathTo("E")
	require.Error(t, err)

	res, err = bfs.BFS(g, "A", bfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Len(t, res.Order, 5)
}

func TestBFS_FilterNeighbor(t *testing.T) {
	// Closing B—C forces the route to C through D.
	closed := func(curr, nbr string) bool {
		return !(curr == "B" && nbr == "C" || curr == "C" && nbr == "B")
	}
	res, err := bfs.BFS(cycle(t), "A", bfs.WithFilterNeighbor(closed))
	require.NoError(t, err)
	path, err := res.PathTo("C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "D", "C"}, path)
}

func TestBFS_Avoid(t *testing.T) {
	res, err := bfs.BFS(cycle(t), "A", bfs.WithAvoid("B"))
	require.NoError(t, err)
	assert.NotContains(t, res.Depth, "B")

	path, err := res.PathTo("E")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "D", "C", "E"}, path)

	// The start is never avoided.
	res, err = bfs.BFS(cycle(t), "A", bfs.WithAvoid("A"))
	require.NoError(t, err)
	assert.Len(t, res.Order, 5)
}

func TestBFS_Hooks(t *testing.T) {
	var found, vis []string
	stop := errors.New("stop")
	res, err := bfs.BFS(cycle(t), "A",
		bfs.WithOnDiscover(func(id, via string, _ int) { found = append(found, via+">"+id) }),
		bfs.WithOnVisit(func(id string, _ int) error {
			vis = append(vis, id)
			if id == "D" {
				return stop
			}
			return nil
		}),
	)
	require.ErrorIs(t, err, stop)
	assert.Equal(t, []string{"A", "B", "D"}, vis)
	assert.Equal(t, []string{">A", "A>B", "A>D", "B>C"}, found)
	assert.Equal(t, vis, res.Order, "partial result is returned")
}

func TestBFS_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.BFS(cycle(t), "A", bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestComponents(t *testing.T) {
	assert.Nil(t, bfs.Components(nil))
	assert.Empty(t, bfs.Components(core.NewGraph()))

	g := network(t, []string{"A", "X", "B", "Y", "Z"}, [][2]string{
		{"A", "B"}, {"X", "Y"},
	})
	comps := bfs.Components(g)
	assert.Equal(t, [][]string{{"A", "B"}, {"X", "Y"}, {"Z"}}, comps)
	assert.Len(t, bfs.Components(cycle(t)), 1)
}
