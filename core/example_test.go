// Package core_test provides runnable examples for the pedestrian graph model.
package core_test

import (
	"fmt"

	"github.com/katalvlaran/pathdiv/core"
)

// ExampleGraph builds a small square block and inspects one corner.
func ExampleGraph() {
	// 1) Create an empty network.
	g := core.NewGraph()
	// 2) Add the four sides of the block: distance, then walking time.
	_ = g.AddEdge("A", "B", 1, 1)
	_ = g.AddEdge("B", "C", 1, 1)
	_ = g.AddEdge("C", "D", 1, 1)
	_ = g.AddEdge("D", "A", 1, 1)

	// 3) Neighbors come back in insertion order.
	arcs, _ := g.Neighbors("A")
	for _, a := range arcs {
		fmt.Printf("A→%s weight=%g time=%g\n", a.To, a.Weight, a.TravelTime)
	}
	// Output:
	// A→B weight=1 time=1
	// A→D weight=1 time=1
}

// ExampleVisitCounts shows the explicit zero default of the counter table.
func ExampleVisitCounts() {
	vc := core.NewVisitCounts()
	fmt.Println(vc.Get("A", "B"))
	vc.IncrementEdge("A", "B")
	fmt.Println(vc.Get("A", "B"), vc.Get("B", "A"))
	// Output:
	// 0
	// 1 1
}
