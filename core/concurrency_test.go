// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlouvain/core"
)

// TestConcurrentAddEdge ensures that concurrent AddEdge calls
// on a graph allowing multi-edges are safe and all neighbors appear.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges())
	const num = 200
	var wg sync.WaitGroup
	errs := make(chan error, num)
	wg.Add(num)
	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			_, err := g.AddEdge("X", fmt.Sprintf("V%d", id), 0)
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	nbs, err := g.Neighbors("X")
	require.NoError(t, err)
	require.Len(t, nbs, num)
}

// TestConcurrentReadersAndWriters mixes weight queries with mutations;
// run with -race to surface lock-order problems.
func TestConcurrentReadersAndWriters(t *testing.T) {
	g := core.NewGraph(core.WithWeighted(), core.WithMultiEdges())
	require.NoError(t, g.AddVertex("Base"))

	const rounds = 100
	var wg sync.WaitGroup
	wg.Add(2 * rounds)
	for i := 0; i < rounds; i++ {
		go func(i int) {
			defer wg.Done()
			eid, err := g.AddEdge("Base", fmt.Sprintf("N%d", i%10), float64(i))
			if err == nil && i%2 == 0 {
				_ = g.RemoveEdge(eid)
			}
		}(i)
		go func() {
			defer wg.Done()
			_, _ = g.WeightedDegree("Base")
			_ = g.TotalWeight()
			_ = g.Clone()
		}()
	}
	wg.Wait()

	require.Equal(t, rounds/2, g.EdgeCount())
}
