package louvain

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/community"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/lvlouvain/core"
)

// randomGraph builds a loop-free weighted graph from seed: 2..24 nodes,
// integer weights 1..5, an edge n00–n01 so total weight is positive, and
// occasionally isolated vertices.
func randomGraph(seed int64) *core.Graph {
	r := rand.New(rand.NewSource(seed))
	n := 2 + r.Intn(23)
	p := 0.1 + r.Float64()*0.4
	g := core.NewGraph(core.WithWeighted())
	name := func(i int) string { return fmt.Sprintf("n%02d", i) }
	for i := 0; i < n; i++ {
		_ = g.AddVertex(name(i))
	}
	_, _ = g.AddEdge(name(0), name(1), float64(1+r.Intn(5)))
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if (i == 0 && j == 1) || r.Float64() >= p {
				continue
			}
			_, _ = g.AddEdge(name(i), name(j), float64(1+r.Intn(5)))
		}
	}

	return g
}

// gonumQ evaluates modularity of flat on g with gonum as an independent oracle.
func gonumQ(g *core.Graph, flat map[string]string) float64 {
	ids := g.Vertices()
	index := make(map[string]int64, len(ids))
	og := simple.NewWeightedUndirectedGraph(0, 0)
	for i, id := range ids {
		index[id] = int64(i)
		og.AddNode(simple.Node(i))
	}
	for _, e := range g.Edges() {
		og.SetWeightedEdge(og.NewWeightedEdge(simple.Node(index[e.From]), simple.Node(index[e.To]), e.Weight))
	}

	byLabel := make(map[string][]graph.Node)
	var order []string
	for _, id := range ids {
		c := flat[id]
		if _, ok := byLabel[c]; !ok {
			order = append(order, c)
		}
		byLabel[c] = append(byLabel[c], simple.Node(index[id]))
	}
	comms := make([][]graph.Node, 0, len(order))
	for _, c := range order {
		comms = append(comms, byLabel[c])
	}

	return community.Q(og, comms, 1)
}

func checkDendrogram(g *core.Graph, d *Dendrogram) error {
	m := g.TotalWeight()
	prevNodes := g.VertexCount()
	prevQ := math.Inf(-1)
	for i, lvl := range d.Levels {
		// weight conservation
		if got := lvl.Graph.TotalWeight(); math.Abs(got-m) > 1e-9*m {
			return fmt.Errorf("level %d: total weight %g, want %g", i, got, m)
		}
		// monotone size, equality only on the terminal level
		n := lvl.Graph.VertexCount()
		if n > prevNodes || (n == prevNodes && i != len(d.Levels)-1) {
			return fmt.Errorf("level %d: %d nodes after %d", i, n, prevNodes)
		}
		prevNodes = n

		// completeness and flattening round trip
		flat, err := d.Flatten(i)
		if err != nil {
			return err
		}
		seen := make(map[string]bool, len(d.Nodes))
		for _, cid := range lvl.Graph.Vertices() {
			members, err := Members(lvl.Graph, cid)
			if err != nil {
				return err
			}
			for _, id := range members {
				if seen[id] || flat[id] != cid {
					return fmt.Errorf("level %d: node %s duplicated or mislabelled", i, id)
				}
				seen[id] = true
			}
		}
		if len(seen) != g.VertexCount() || len(flat) != g.VertexCount() {
			return fmt.Errorf("level %d: %d/%d nodes covered", i, len(seen), g.VertexCount())
		}

		// modularity agrees with the oracle and never decreases
		if q := gonumQ(g, flat); math.Abs(q-lvl.Modularity) > 1e-9 {
			return fmt.Errorf("level %d: modularity %g, oracle %g", i, lvl.Modularity, q)
		}
		if lvl.Modularity < prevQ-1e-12 {
			return fmt.Errorf("level %d: modularity fell from %g to %g", i, prevQ, lvl.Modularity)
		}
		prevQ = lvl.Modularity
	}

	return nil
}

func TestLouvain_Properties(t *testing.T) {
	if testing.Short() {
		t.Skip("property tests skipped in short mode")
	}
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 60
	properties := gopter.NewProperties(parameters)

	properties.Property("dendrogram invariants hold", prop.ForAll(
		func(seed int64) bool {
			g := randomGraph(seed)
			d, err := Louvain(g, WithInvariantChecks())
			if err != nil {
				t.Logf("seed %d: %v", seed, err)
				return false
			}
			if err := checkDendrogram(g, d); err != nil {
				t.Logf("seed %d: %v", seed, err)
				return false
			}
			return true
		},
		gen.Int64Range(1, math.MaxInt32),
	))

	properties.Property("converged graph yields the identity partition", prop.ForAll(
		func(seed int64) bool {
			d, err := Louvain(randomGraph(seed))
			if err != nil {
				return false
			}
			final, err := d.Final()
			if err != nil {
				return false
			}
			s, err := newSnapshot(final.Graph, edgeWeight)
			if err != nil {
				return false
			}
			o := DefaultOptions()
			res, err := newMover(s, &o, 0, zerolog.Nop()).run(context.Background())
			if err != nil {
				return false
			}
			for u, c := range res.community {
				if u != c {
					return false
				}
			}
			return true
		},
		gen.Int64Range(1, math.MaxInt32),
	))

	properties.Property("unweighted graphs match an all-ones weighting", prop.ForAll(
		func(seed int64) bool {
			g := randomGraph(seed)
			a, err := Louvain(core.UnweightedView(g))
			if err != nil {
				return false
			}
			b, err := Louvain(g, WithUnweighted())
			if err != nil || a.Depth() != b.Depth() {
				return false
			}
			for i := range a.Levels {
				if math.Abs(a.Levels[i].Modularity-b.Levels[i].Modularity) > 1e-12 {
					return false
				}
			}
			return true
		},
		gen.Int64Range(1, math.MaxInt32),
	))

	properties.TestingRun(t)
}
