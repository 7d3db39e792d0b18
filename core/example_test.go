package core_test

import (
	"fmt"

	"github.com/katalvlaran/eliminator/core"
)

// ExampleNewFlowNetwork builds a tiny capacity network with a parallel arc.
func ExampleNewFlowNetwork() {
	g := core.NewFlowNetwork()
	g.AddEdge("s", "a", 2)
	g.AddEdge("s", "a", 1)
	g.AddEdge("a", "t", 3)

	fmt.Println(g.Vertices(), g.EdgeCount(), g.Weight("s", "a"))
	// Output:
	// [a s t] 3 3
}
