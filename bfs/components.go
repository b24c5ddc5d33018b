// File: components.go
// Role: Connected components of an undirected graph via repeated BFS.
// Determinism:
//   - Seeds are taken in core.Vertices() order, members are sorted, and
//     components are ordered by their smallest member.

package bfs

import (
	"sort"

	"github.com/katalvlaran/lvlouvain/core"
)

// Components partitions the vertices of g into connected components.
// Directed edges are followed in their own direction only, so on directed
// graphs the result is the reachability forest in seed order.
//
// Options apply to every underlying BFS (context, neighbor filter, OnVisit).
//
// Complexity: O(V + E) plus O(V log V) sorting.
func Components(g *core.Graph, opts ...Option) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	probe := DefaultOptions()
	for _, opt := range opts {
		opt(&probe)
	}
	userFilter := probe.FilterNeighbor

	seen := make(map[string]bool, g.VertexCount())
	runOpts := make([]Option, 0, len(opts)+1)
	runOpts = append(runOpts, opts...)
	runOpts = append(runOpts, WithFilterNeighbor(func(curr, nbr string) bool {
		return !seen[nbr] && userFilter(curr, nbr)
	}))

	var comps [][]string
	for _, v := range g.Vertices() {
		if seen[v] {
			continue
		}
		res, err := BFS(g, v, runOpts...)
		if err != nil {
			return nil, err
		}
		members := make([]string, len(res.Order))
		copy(members, res.Order)
		for _, id := range members {
			seen[id] = true
		}
		sort.Strings(members)
		comps = append(comps, members)
	}

	// A directed seed may reach IDs smaller than itself.
	sort.SliceStable(comps, func(i, j int) bool { return comps[i][0] < comps[j][0] })

	return comps, nil
}

// CountComponents returns len(Components(g)).
func CountComponents(g *core.Graph, opts ...Option) (int, error) {
	comps, err := Components(g, opts...)
	if err != nil {
		return 0, err
	}

	return len(comps), nil
}
