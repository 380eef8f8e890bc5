package builder_test

import (
	"fmt"

	"github.com/katalvlaran/pathdiv/builder"
)

// ExampleBuildNetwork builds a 2×3 block of streets, 80 m per segment walked
// at 1.6 m/s.
func ExampleBuildNetwork() {
	g, err := builder.BuildNetwork(
		[]builder.BuilderOption{builder.WithSegmentFn(builder.ConstSegment(80, 1.6))},
		builder.Grid(2, 3),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	tt, _ := g.TravelTime("0,0", "0,1")
	fmt.Println(g.VertexCount(), g.EdgeCount(), tt)
	// Output: 6 7 50
}
