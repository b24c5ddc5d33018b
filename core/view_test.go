package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlouvain/core"
)

func TestClone_Independent(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	eid, err := g.AddEdge(vA, vB, 2, core.WithEdgeMetadata("k", 1))
	require.NoError(t, err)

	c := g.Clone()
	require.NoError(t, c.RemoveEdge(eid))
	assert.True(t, g.HasEdge(vA, vB), "source untouched")
	assert.False(t, c.HasEdge(vA, vB))

	// new IDs on the clone continue after the copied ones
	nid, err := c.AddEdge(vB, vC, 1)
	require.NoError(t, err)
	assert.Equal(t, "e2", nid)

	e, err := g.GetEdge(eid)
	require.NoError(t, err)
	assert.Equal(t, 1, e.Metadata["k"])
}

func TestCloneEmpty_KeepsVertices(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge(vA, vB, 2)

	c := g.CloneEmpty()
	assert.Equal(t, []string{vA, vB}, c.Vertices())
	assert.Zero(t, c.EdgeCount())
	assert.True(t, c.Weighted())
}

func TestClear(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge(vA, vB, 2)
	g.Clear()
	assert.Zero(t, g.VertexCount())
	assert.Zero(t, g.EdgeCount())
	assert.True(t, g.Weighted())
	id, err := g.AddEdge(vA, vB, 1)
	require.NoError(t, err)
	assert.Equal(t, "e1", id)
}

func TestUnweightedView(t *testing.T) {
	g := core.NewGraph(core.WithWeighted(), core.WithLoops())
	_, _ = g.AddEdge(vA, vB, 5)
	_, _ = g.AddEdge(vB, vB, 3)

	u := core.UnweightedView(g)
	assert.False(t, u.Weighted())
	assert.True(t, u.Looped())
	assert.InDelta(t, 1.0, u.EdgeWeight(vA, vB), 1e-12)
	assert.InDelta(t, 5.0, g.EdgeWeight(vA, vB), 1e-12, "source keeps its weights")
	assert.Equal(t, g.EdgeCount(), u.EdgeCount())
}

func TestInducedSubgraph(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge(vA, vB, 1)
	_, _ = g.AddEdge(vB, vC, 2)
	_, _ = g.AddEdge(vC, vD, 3)

	sub := core.InducedSubgraph(g, map[string]bool{vB: true, vC: true})
	assert.Equal(t, []string{vB, vC}, sub.Vertices())
	assert.Equal(t, 1, sub.EdgeCount())
	assert.InDelta(t, 2.0, sub.EdgeWeight(vB, vC), 1e-12)
	assert.True(t, sub.Weighted())
}
