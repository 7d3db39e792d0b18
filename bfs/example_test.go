package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/eliminator/bfs"
	"github.com/katalvlaran/eliminator/core"
)

// ExampleBFS_residualReachability reads the source side of a cut: only
// arcs with capacity left are followed.
//
//	s→a(1)  a→t(0)  s→b(0)  b→t(1)
func ExampleBFS_residualReachability() {
	g := core.NewFlowNetwork()
	_, _ = g.AddEdge("s", "a", 1)
	_, _ = g.AddEdge("a", "t", 0)
	_, _ = g.AddEdge("s", "b", 0)
	_, _ = g.AddEdge("b", "t", 1)

	res, _ := bfs.BFS(g, "s", bfs.WithPositiveWeight())
	fmt.Println(res.Order)
	fmt.Println(res.Depth["a"])
	// Output:
	// [s a]
	// 1
}

// ExampleBFS_depths shows distances on an unfiltered walk.
func ExampleBFS_depths() {
	g := core.NewFlowNetwork()
	_, _ = g.AddEdge("s", "x", 1)
	_, _ = g.AddEdge("x", "y", 1)
	_, _ = g.AddEdge("s", "y", 1)
	_, _ = g.AddEdge("y", "t", 1)

	res, _ := bfs.BFS(g, "s")
	for _, id := range res.Order {
		fmt.Println(id, res.Depth[id])
	}
	// Output:
	// s 0
	// x 1
	// y 1
	// t 2
}
