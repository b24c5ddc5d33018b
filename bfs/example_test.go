package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/lvlouvain/bfs"
	"github.com/katalvlaran/lvlouvain/core"
)

// ExampleBFS demonstrates layering on a 3×3 grid.
func ExampleBFS() {
	g := core.NewGraph()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if j+1 < 3 {
				_, _ = g.AddEdge(fmt.Sprintf("%d_%d", i, j), fmt.Sprintf("%d_%d", i, j+1), 0)
			}
			if i+1 < 3 {
				_, _ = g.AddEdge(fmt.Sprintf("%d_%d", i, j), fmt.Sprintf("%d_%d", i+1, j), 0)
			}
		}
	}

	res, err := bfs.BFS(g, "0_0")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	// Output:
	// [0_0 0_1 1_0 0_2 1_1 2_0 1_2 2_1 2_2]
}

// ExampleComponents lists the connected components of a small forest.
func ExampleComponents() {
	g := core.NewGraph()
	_, _ = g.AddEdge("a", "b", 0)
	_, _ = g.AddEdge("c", "d", 0)
	_, _ = g.AddEdge("d", "e", 0)

	comps, _ := bfs.Components(g)
	fmt.Println(comps)
	// Output:
	// [[a b] [c d e]]
}
