// File: snapshot.go
// Role: Indexed, read-only view of one level's graph for the local-moving
//       and aggregation phases.
// Determinism:
//   - Node i is the i-th ID of core.Graph.Vertices() (lex asc).
//   - adj[i] lists distinct non-loop neighbours in core.NeighborIDs order.

package louvain

import (
	"fmt"

	"github.com/katalvlaran/lvlouvain/core"
)

// arc is one weighted adjacency entry; parallel edges are already summed.
type arc struct {
	to     int
	weight float64
}

// snapshot freezes a core.Graph into dense slices.
type snapshot struct {
	ids    []string
	index  map[string]int
	adj    [][]arc
	loop   []float64 // self-loop weight per node
	degree []float64 // Σ non-loop arcs + loop, i.e. loop counted once
	m      float64   // ½ Σ degree
}

// newSnapshot reads g through the Graph ADT, resolving weights with wf.
// Returns ErrModularityUndefined when the total weight is zero.
//
// Complexity: O(V + E log E).
func newSnapshot(g *core.Graph, wf weightFunc) (*snapshot, error) {
	ids := g.Vertices()
	n := len(ids)
	s := &snapshot{
		ids:    ids,
		index:  make(map[string]int, n),
		adj:    make([][]arc, n),
		loop:   make([]float64, n),
		degree: make([]float64, n),
	}
	for i, id := range ids {
		s.index[id] = i
	}

	var twoM float64
	for i, id := range ids {
		edges, err := g.Neighbors(id)
		if err != nil {
			return nil, fmt.Errorf("louvain: neighbours of %q: %w", id, err)
		}
		acc := make(map[string]float64, len(edges))
		for _, e := range edges {
			w, err := wf(e)
			if err != nil {
				return nil, err
			}
			acc[e.Other(id)] += w
		}
		nbrs, err := g.NeighborIDs(id)
		if err != nil {
			return nil, fmt.Errorf("louvain: neighbours of %q: %w", id, err)
		}
		s.adj[i] = make([]arc, 0, len(nbrs))
		for _, v := range nbrs {
			if v == id {
				s.loop[i] = acc[v]
				continue
			}
			s.adj[i] = append(s.adj[i], arc{to: s.index[v], weight: acc[v]})
			s.degree[i] += acc[v]
		}
		s.degree[i] += s.loop[i]
		twoM += s.degree[i]
	}
	s.m = twoM / 2

	if s.m == 0 {
		return nil, fmt.Errorf("%w: total edge weight is zero", ErrModularityUndefined)
	}

	return s, nil
}

// len returns the number of nodes.
func (s *snapshot) len() int { return len(s.ids) }
