package louvain_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlouvain/core"
	"github.com/katalvlaran/lvlouvain/louvain"
)

func TestLouvain_InputErrors(t *testing.T) {
	t.Run("NilGraph", func(t *testing.T) {
		d, err := louvain.Louvain(nil)
		require.ErrorIs(t, err, louvain.ErrGraphNil)
		assert.Nil(t, d)
	})
	t.Run("ZeroWeight", func(t *testing.T) {
		g := core.NewGraph(core.WithWeighted())
		_, _ = g.AddEdge("a", "b", 0)
		d, err := louvain.Louvain(g)
		require.ErrorIs(t, err, louvain.ErrModularityUndefined)
		assert.Nil(t, d)
	})
	t.Run("IsolatedNode", func(t *testing.T) {
		g := core.NewGraph()
		require.NoError(t, g.AddVertex("solo"))
		d, err := louvain.Louvain(g)
		require.ErrorIs(t, err, louvain.ErrModularityUndefined)
		assert.Nil(t, d)
	})
	t.Run("EmptyGraph", func(t *testing.T) {
		_, err := louvain.Louvain(core.NewGraph())
		require.ErrorIs(t, err, louvain.ErrModularityUndefined)
	})
	t.Run("Directed", func(t *testing.T) {
		g := core.NewGraph(core.WithDirected(true))
		_, _ = g.AddEdge("a", "b", 0)
		d, err := louvain.Louvain(g)
		require.ErrorIs(t, err, louvain.ErrModularityUndefined)
		assert.Nil(t, d)
	})
	t.Run("MixedDirectedEdge", func(t *testing.T) {
		g := core.NewMixedGraph()
		_, _ = g.AddEdge("a", "b", 0)
		_, _ = g.AddEdge("b", "c", 0, core.WithEdgeDirected(true))
		_, err := louvain.Louvain(g)
		require.ErrorIs(t, err, louvain.ErrModularityUndefined)
	})
	t.Run("NegativeWeight", func(t *testing.T) {
		g := core.NewGraph(core.WithWeighted())
		_, _ = g.AddEdge("a", "b", 2)
		_, _ = g.AddEdge("b", "c", -1)
		_, err := louvain.Louvain(g)
		require.ErrorIs(t, err, louvain.ErrNegativeWeight)
	})
	t.Run("NonNumericAttribute", func(t *testing.T) {
		g := core.NewGraph()
		_, _ = g.AddEdge("a", "b", 0, core.WithEdgeMetadata("affinity", "high"))
		_, err := louvain.Louvain(g, louvain.WithWeightKey("affinity"))
		require.ErrorIs(t, err, louvain.ErrInvalidWeight)
	})
	t.Run("BadOptions", func(t *testing.T) {
		g := louvain.BridgedTriangles(t)
		_, err := louvain.Louvain(g, louvain.WithMaxLevels(-1))
		require.ErrorIs(t, err, louvain.ErrOptionViolation)
		_, err = louvain.Louvain(g, louvain.WithMaxSweeps(-2))
		require.ErrorIs(t, err, louvain.ErrOptionViolation)
		_, err = louvain.Louvain(g, louvain.WithWeightKey(""))
		require.ErrorIs(t, err, louvain.ErrOptionViolation)
	})
}

func TestLouvain_BridgedTriangles(t *testing.T) {
	g := louvain.BridgedTriangles(t)
	d, err := louvain.Louvain(g, louvain.WithInvariantChecks())
	require.NoError(t, err)

	require.Equal(t, 2, d.Depth(), "one contraction plus the terminal no-move level")
	first := d.Levels[0]
	assert.Equal(t, 2, first.Graph.VertexCount())
	assert.Equal(t, 5, first.Moves)
	assert.Equal(t, 3, first.Sweeps)

	ids := first.Graph.Vertices()
	assert.InDelta(t, 6.0, first.Graph.SelfLoopWeight(ids[0]), 1e-12)
	assert.InDelta(t, 6.0, first.Graph.SelfLoopWeight(ids[1]), 1e-12)
	assert.InDelta(t, 1.0, first.Graph.EdgeWeight(ids[0], ids[1]), 1e-12)
	assert.InDelta(t, 5.0/14, first.Modularity, 1e-12)

	comms, err := d.Communities(0)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "b", "c"}, {"d", "e", "f"}}, comms)

	final, err := d.Final()
	require.NoError(t, err)
	assert.Zero(t, final.Moves)
	assert.Equal(t, 2, final.Graph.VertexCount(), "terminal level keeps its size")
	best, err := d.Best()
	require.NoError(t, err)
	assert.Same(t, first, best)
}

func TestLouvain_PathOfTwo(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("0", "1", 0)

	d, err := louvain.Louvain(g)
	require.NoError(t, err)
	require.Equal(t, 1, d.Depth())

	comms, err := d.Communities(0)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"0", "1"}}, comms)
	final, err := d.Final()
	require.NoError(t, err)
	assert.InDelta(t, 0.0, final.Modularity, 1e-12)
}

func TestLouvain_IsolatedVertexSurvives(t *testing.T) {
	g := louvain.BridgedTriangles(t)
	require.NoError(t, g.AddVertex("z"))

	d, err := louvain.Louvain(g)
	require.NoError(t, err)
	comms, err := d.Communities(d.Depth() - 1)
	require.NoError(t, err)
	assert.Contains(t, comms, []string{"z"})
}

func TestLouvain_WeightKey(t *testing.T) {
	g := affinityCycle(t)

	d, err := louvain.Louvain(g, louvain.WithWeightKey("affinity"))
	require.NoError(t, err)
	comms, err := d.Communities(0)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "b"}, {"c", "d"}}, comms)

	// Unweighted, the 4-cycle has no preferred split along the affinities.
	d, err = louvain.Louvain(g, louvain.WithUnweighted())
	require.NoError(t, err)
	assert.NotEmpty(t, d.Levels)
}

func TestLouvain_MaxLevels(t *testing.T) {
	d, err := louvain.Louvain(louvain.BridgedTriangles(t), louvain.WithMaxLevels(1))
	require.NoError(t, err)
	assert.Equal(t, 1, d.Depth())
}

func TestLouvain_MaxSweeps(t *testing.T) {
	d, err := louvain.Louvain(louvain.BridgedTriangles(t), louvain.WithMaxSweeps(1))
	require.NoError(t, err)
	assert.Equal(t, 1, d.Levels[0].Sweeps)
	assert.Equal(t, 3, d.Levels[0].Graph.VertexCount(), "{a,b,c} {d} {e,f} after one sweep")
}

func TestLouvain_Hooks(t *testing.T) {
	var sweeps []int
	var levels []louvain.LevelStats
	d, err := louvain.Louvain(louvain.BridgedTriangles(t),
		louvain.WithOnSweep(func(level, sweep, moves int) { sweeps = append(sweeps, moves) }),
		louvain.WithOnLevel(func(st louvain.LevelStats) { levels = append(levels, st) }),
	)
	require.NoError(t, err)

	assert.Equal(t, []int{4, 1, 0, 0}, sweeps)
	require.Len(t, levels, d.Depth())
	assert.Equal(t, 6, levels[0].Nodes)
	assert.Equal(t, 2, levels[0].Communities)
	assert.Equal(t, d.RunID, levels[0].RunID)
	assert.Equal(t, 1, levels[1].Level)
}

func TestLouvain_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	d, err := louvain.Louvain(louvain.BridgedTriangles(t), louvain.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, d)

	ctx, cancel = context.WithCancel(context.Background())
	defer cancel()
	d, err = louvain.Louvain(louvain.BridgedTriangles(t),
		louvain.WithContext(ctx),
		louvain.WithOnLevel(func(louvain.LevelStats) { cancel() }),
	)
	// level 0 merges, so the driver checks ctx again before level 1
	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, d)
}

func TestLouvain_Logging(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.InfoLevel)

	d, err := louvain.Louvain(louvain.BridgedTriangles(t), louvain.WithLogger(logger))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"run_id":"`+d.RunID+`"`)
	assert.Contains(t, out, "louvain started")
	assert.Contains(t, out, "level closed")
	assert.Contains(t, out, `"reason":"no moves"`)
	assert.NotContains(t, out, "sweep done", "sweep progress is debug level")
}

func TestLouvain_Deterministic(t *testing.T) {
	d1, err := louvain.Louvain(louvain.BridgedTriangles(t))
	require.NoError(t, err)
	d2, err := louvain.Louvain(louvain.BridgedTriangles(t))
	require.NoError(t, err)

	require.Equal(t, d1.Depth(), d2.Depth())
	for i := range d1.Levels {
		assert.Equal(t, d1.Levels[i].Partition, d2.Levels[i].Partition)
	}
	assert.NotEqual(t, d1.RunID, d2.RunID)
}

func TestModularity(t *testing.T) {
	g := louvain.BridgedTriangles(t)

	q, err := louvain.Modularity(g, map[string]string{
		"a": "x", "b": "x", "c": "x", "d": "y", "e": "y", "f": "y",
	})
	require.NoError(t, err)
	assert.InDelta(t, 5.0/14, q, 1e-12)

	q, err = louvain.Modularity(g, map[string]string{
		"a": "x", "b": "x", "c": "x", "d": "x", "e": "x", "f": "x",
	})
	require.NoError(t, err)
	assert.InDelta(t, 0.0, q, 1e-12)

	_, err = louvain.Modularity(g, map[string]string{"a": "x"})
	require.ErrorIs(t, err, louvain.ErrIncompletePartition)

	_, err = louvain.Modularity(nil, nil)
	require.ErrorIs(t, err, louvain.ErrGraphNil)
}
