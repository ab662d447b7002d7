package planner_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/airroute/builder"
	"github.com/katalvlaran/airroute/core"
	"github.com/katalvlaran/airroute/internal/logging"
	"github.com/katalvlaran/airroute/planner"
)

func ExamplePlanner_FindOptimalRoute() {
	ctx := context.Background()
	p := planner.New(
		planner.WithSeed(42),
		planner.WithLogger(logging.Discard()),
		planner.WithBuilderOptions(builder.WithFixedNeighbors(1)),
	)

	airports := []core.Node{
		{ID: "DEL", Latitude: 28.5665, Longitude: 77.1031},
		{ID: "JAI", Latitude: 26.8242, Longitude: 75.8122},
		{ID: "UDR", Latitude: 24.6177, Longitude: 73.8961},
	}
	if _, err := p.InitializeGraph(ctx, airports); err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := p.FindOptimalRoute(ctx, "DEL", "UDR", "distance")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Path, res.Legs())
	// Output: [DEL JAI UDR] 2
}
