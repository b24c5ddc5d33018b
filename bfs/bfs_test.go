package bfs_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlouvain/bfs"
	"github.com/katalvlaran/lvlouvain/core"
)

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, "A")
	require.ErrorIs(t, err, bfs.ErrGraphNil)

	g := core.NewGraph()
	_, err = bfs.BFS(g, "missing")
	require.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
}

// TestBFS_WeightedGraphCountsHops ensures weights do not influence depth.
func TestBFS_WeightedGraphCountsHops(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 100)
	_, _ = g.AddEdge("B", "C", 0.5)
	_, _ = g.AddEdge("A", "C", 7)

	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, 1, res.Depth["B"])
	assert.Equal(t, 1, res.Depth["C"])
}

// TestBFS_CycleDepths covers a 4-cycle A–B–C–D–A.
func TestBFS_CycleDepths(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("B", "C", 0)
	_, _ = g.AddEdge("C", "D", 0)
	_, _ = g.AddEdge("D", "A", 0)

	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D", "C"}, res.Order)
	assert.Equal(t, map[string]int{"A": 0, "B": 1, "D": 1, "C": 2}, res.Depth)
}

// TestBFS_Filter checks neighbor pruning.
func TestBFS_Filter(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("B", "C", 0)

	res, err := bfs.BFS(g, "A", bfs.WithFilterNeighbor(func(curr, nbr string) bool {
		return !(curr == "B" && nbr == "C")
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, res.Order)
}

// TestBFS_SelfLoopAndParallelDedup ensures loops and parallel edges do not enqueue twice.
func TestBFS_SelfLoopAndParallelDedup(t *testing.T) {
	g := core.NewGraph(core.WithLoops(), core.WithMultiEdges())
	_, _ = g.AddEdge("A", "A", 0)
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("A", "B", 0)

	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, res.Order)
}

// TestBFS_OnVisitAbort propagates hook errors.
func TestBFS_OnVisitAbort(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 0)
	stop := errors.New("stop")

	_, err := bfs.BFS(g, "A", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "B" {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)
}

// TestBFS_Cancellation verifies that a cancelled context halts BFS promptly.
func TestBFS_Cancellation(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 100; i++ {
		_, _ = g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1), 0)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := bfs.BFS(g, "v0", bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestComponents(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("Y", "X", 0)
	_, _ = g.AddEdge("P", "Q", 0)
	_, _ = g.AddEdge("Q", "A", 0)
	require.NoError(t, g.AddVertex("Z"))

	comps, err := bfs.Components(g)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"A", "P", "Q"}, {"X", "Y"}, {"Z"}}, comps)

	n, err := bfs.CountComponents(g)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	_, err = bfs.Components(nil)
	require.ErrorIs(t, err, bfs.ErrGraphNil)
}

func TestComponents_UserFilterComposes(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("B", "C", 0)

	comps, err := bfs.Components(g, bfs.WithFilterNeighbor(func(curr, nbr string) bool {
		return !(curr == "B" && nbr == "C") && !(curr == "C" && nbr == "B")
	}))
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"A", "B"}, {"C"}}, comps)
}

func TestComponents_Empty(t *testing.T) {
	comps, err := bfs.Components(core.NewGraph())
	require.NoError(t, err)
	assert.Empty(t, comps)
}
