// File: aggregate.go
// Role: Contraction of a converged partition into the next level's graph.
//
// Edge rules, for every edge (u,v,w) of the level:
//   - u≠v, same community c:    self-loop (c,c) += 2w
//   - u=v (existing self-loop): self-loop (c,c) += w
//   - different communities:    edge (cu,cv) += w
//
// With self-loops counted once in the weighted degree, total weight m is
// preserved exactly; contract asserts it.

package louvain

import (
	"fmt"
	"sort"
	"strconv"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/katalvlaran/lvlouvain/core"
)

// contraction is the Aggregator output for one level.
type contraction struct {
	graph     *core.Graph
	partition map[string]string // level node ID → community vertex ID
	members   [][]string        // per new vertex, sorted original node IDs
}

// pairKey indexes an inter-community edge with a < b.
type pairKey struct{ a, b int }

// contract builds a fresh weighted, looped graph with one vertex per distinct
// community of community[], numbered in order of first appearance.
// members[i] holds the original node IDs behind snapshot node i.
//
// Errors: ErrInvariantViolation when total weight is not conserved.
//
// Complexity: O(V + E log E).
func contract(s *snapshot, community []int, members [][]string, level int) (*contraction, error) {
	n := s.len()

	// Renumber communities densely by first appearance in node order.
	dense := make(map[int]int, n)
	of := make([]int, n)
	for u := 0; u < n; u++ {
		c, ok := dense[community[u]]
		if !ok {
			c = len(dense)
			dense[community[u]] = c
		}
		of[u] = c
	}
	k := len(dense)

	ids := make([]string, k)
	width := len(strconv.Itoa(k - 1))
	for c := range ids {
		ids[c] = communityID(level, c, width)
	}

	out := &contraction{
		graph:     core.NewGraph(core.WithWeighted(), core.WithLoops()),
		partition: make(map[string]string, n),
		members:   make([][]string, k),
	}
	for u := 0; u < n; u++ {
		out.partition[s.ids[u]] = ids[of[u]]
		out.members[of[u]] = append(out.members[of[u]], members[u]...)
	}

	loops := make([]float64, k)
	inter := make(map[pairKey]float64)
	for u := 0; u < n; u++ {
		cu := of[u]
		loops[cu] += s.loop[u]
		for _, a := range s.adj[u] {
			if a.to < u {
				continue // each undirected pair once
			}
			cv := of[a.to]
			switch {
			case cu == cv:
				loops[cu] += 2 * a.weight
			case cu < cv:
				inter[pairKey{cu, cv}] += a.weight
			default:
				inter[pairKey{cv, cu}] += a.weight
			}
		}
	}

	for c, id := range ids {
		sort.Strings(out.members[c])
		if err := out.graph.AddVertex(id); err != nil {
			return nil, err
		}
		if err := out.graph.SetVertexMetadata(id, MembersKey, out.members[c]); err != nil {
			return nil, err
		}
		if loops[c] > 0 {
			if _, err := out.graph.AddEdge(id, id, loops[c]); err != nil {
				return nil, err
			}
		}
	}

	pairs := make([]pairKey, 0, len(inter))
	for p := range inter {
		pairs = append(pairs, p)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].a != pairs[j].a {
			return pairs[i].a < pairs[j].a
		}
		return pairs[i].b < pairs[j].b
	})
	for _, p := range pairs {
		if w := inter[p]; w > 0 {
			if _, err := out.graph.AddEdge(ids[p.a], ids[p.b], w); err != nil {
				return nil, err
			}
		}
	}

	if got := out.graph.TotalWeight(); !scalar.EqualWithinAbsOrRel(got, s.m, 1e-12, 1e-9) {
		return nil, fmt.Errorf("%w: level %d total weight %g, want %g", ErrInvariantViolation, level, got, s.m)
	}

	return out, nil
}

// communityID names vertex c of level's contracted graph. Zero padding keeps
// lexicographic order equal to numeric order, so the next snapshot scans
// communities in creation order.
func communityID(level, c, width int) string {
	return fmt.Sprintf("L%d_c%0*d", level, width, c)
}
