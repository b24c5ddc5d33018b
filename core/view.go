// File: view.go
// Role: Non-mutating graph views (cloning topology with altered properties).
// Determinism:
//   - Preserves vertex/edge IDs and directedness.
// Concurrency:
//   - Read locks on source; result is a fresh graph instance.

package core

import "sync/atomic"

// UnweightedView returns a new Graph with identical topology but with all edge
// weights set to zero and the weighted flag turned off. The input graph is not
// mutated. Edge IDs, directedness and metadata are preserved.
//
// Complexity: O(V + E).
func UnweightedView(g *Graph) *Graph {
	opts := []GraphOption{WithDirected(g.Directed())}
	if g.Multigraph() {
		opts = append(opts, WithMultiEdges())
	}
	if g.Looped() {
		opts = append(opts, WithLoops())
	}
	if g.MixedEdges() {
		opts = append(opts, WithMixedEdges())
	}

	return project(g, NewGraph(opts...), nil, func(e *Edge) float64 { return 0 })
}

// InducedSubgraph returns a new Graph induced by the vertex set keep: only
// vertices v with keep[v] == true, and the edges whose endpoints are both kept.
// The input graph is not mutated.
//
// Complexity: O(V + E).
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	g.muVert.RLock()
	out := NewGraph(g.options()...)
	g.muVert.RUnlock()

	return project(g, out, keep, func(e *Edge) float64 { return e.Weight })
}

// project copies the vertices of src accepted by keep (nil keeps all) and
// their edges into dst, re-weighting each edge with weight.
func project(src, dst *Graph, keep map[string]bool, weight func(*Edge) float64) *Graph {
	kept := func(id string) bool { return keep == nil || keep[id] }

	src.muVert.RLock()
	var id string
	var v *Vertex
	for id, v = range src.vertices {
		if kept(id) {
			dst.vertices[id] = &Vertex{ID: v.ID, Metadata: v.Metadata}
			dst.adjacencyList[id] = make(map[string]map[string]struct{})
		}
	}
	src.muVert.RUnlock()

	src.muEdgeAdj.RLock()
	// Carry the counter so future AddEdge calls on dst cannot collide with copied IDs.
	srcNextEdgeID := atomic.LoadUint64(&src.nextEdgeID)
	var eid string
	var e, ne *Edge
	for eid, e = range src.edges {
		if !kept(e.From) || !kept(e.To) {
			continue
		}
		ne = copyEdge(e)
		ne.Weight = weight(e)
		dst.edges[eid] = ne
		ensureAdjacency(dst, ne.From, ne.To)
		dst.adjacencyList[ne.From][ne.To][eid] = struct{}{}
		if !ne.Directed && ne.From != ne.To {
			ensureAdjacency(dst, ne.To, ne.From)
			dst.adjacencyList[ne.To][ne.From][eid] = struct{}{}
		}
	}
	src.muEdgeAdj.RUnlock()

	atomic.StoreUint64(&dst.nextEdgeID, srcNextEdgeID)

	return dst
}
