package louvain

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlouvain/core"
)

// twoTriangles builds {a,b,c} and {d,e,f}, unit weights, bridged by c–d.
func twoTriangles(t testing.TB) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithWeighted())
	for _, e := range [][2]string{
		{"a", "b"}, {"b", "c"}, {"a", "c"},
		{"d", "e"}, {"e", "f"}, {"d", "f"},
		{"c", "d"},
	} {
		_, err := g.AddEdge(e[0], e[1], 1)
		require.NoError(t, err)
	}

	return g
}

// mustSnapshot freezes g with Edge.Weight semantics.
func mustSnapshot(t testing.TB, g *core.Graph) *snapshot {
	t.Helper()
	o := DefaultOptions()
	s, err := newSnapshot(g, o.resolver(g))
	require.NoError(t, err)

	return s
}

// singletonMembers labels every snapshot node with itself.
func singletonMembers(s *snapshot) [][]string {
	members := make([][]string, s.len())
	for i, id := range s.ids {
		members[i] = []string{id}
	}

	return members
}
