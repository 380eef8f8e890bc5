package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/pathdiv/core"
	"github.com/katalvlaran/pathdiv/dijkstra"
)

// ExampleShortestPath finds the quickest walk between two landmarks.
func ExampleShortestPath() {
	g := core.NewGraph()
	_ = g.AddEdge("Gate", "Library", 120, 86.4)
	_ = g.AddEdge("Library", "Cafe", 90, 64.8)
	_ = g.AddEdge("Gate", "Cafe", 300, 216)

	path, minutes, err := dijkstra.ShortestPath(g, "Gate", "Cafe", dijkstra.WithMetric(dijkstra.MetricTravelTime))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%v %.1f\n", path, minutes)
	// Output: [Gate Library Cafe] 151.2
}
