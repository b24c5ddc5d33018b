package louvain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlouvain/core"
)

// affinityCycle builds the 4-cycle a–b–c–d–a on an unweighted graph with an
// "affinity" attribute: 10 on a–b and c–d, 1 on b–c and d–a.
func affinityCycle(t testing.TB) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range []struct {
		from, to string
		aff      int
	}{
		{"a", "b", 10}, {"b", "c", 1}, {"c", "d", 10}, {"d", "a", 1},
	} {
		_, err := g.AddEdge(e.from, e.to, 0, core.WithEdgeMetadata("affinity", e.aff))
		require.NoError(t, err)
	}

	return g
}
