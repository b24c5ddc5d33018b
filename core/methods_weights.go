// File: methods_weights.go
// Role: Weight queries used by modularity-based algorithms.
//
// Weight policy:
//   - Weighted graphs report Edge.Weight; unweighted graphs count every edge as 1.
//   - Absent edges and absent self-loops weigh 0 (no error).
//   - Parallel edges are summed.
//   - A self-loop contributes its weight ONCE to WeightedDegree: loops here
//     carry already-contracted internal structure, so they encode both endpoints.
//   - TotalWeight = ½ Σ WeightedDegree, i.e. Σ non-loop weights + ½ Σ loop weights.
//
// Concurrency:
//   - Read locks only (muVert -> muEdgeAdj).

package core

// unitWeight is the weight every edge carries on an unweighted graph.
const unitWeight = 1.0

// weightOf returns the effective weight of e. The weighted flag is immutable
// after construction, so it is read without muVert.
func (g *Graph) weightOf(e *Edge) float64 {
	if !g.weighted {
		return unitWeight
	}

	return e.Weight
}

// EdgeWeight returns the summed weight of all edges from→to, or 0 if none exist.
// For undirected edges the lookup is symmetric.
//
// Complexity: O(k) for k parallel edges between the endpoints.
func (g *Graph) EdgeWeight(from, to string) float64 {
	if from == "" || to == "" {
		return 0
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	var w float64
	for eid := range g.adjacencyList[from][to] {
		if e := g.edges[eid]; !e.IsNil() {
			w += g.weightOf(e)
		}
	}

	return w
}

// SelfLoopWeight returns the summed weight of id's self-loops, or 0.
func (g *Graph) SelfLoopWeight(id string) float64 {
	return g.EdgeWeight(id, id)
}

// WeightedDegree returns Σ weights of edges incident to id, self-loops counted once.
// Directed edges follow the Neighbors policy (outgoing only).
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity: O(d).
func (g *Graph) WeightedDegree(id string) (float64, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return 0, ErrVertexNotFound
	}

	var k float64
	for _, edgeSet := range g.adjacencyList[id] {
		for eid := range edgeSet {
			e := g.edges[eid]
			if e.IsNil() || (e.Directed && e.From != id) {
				continue
			}
			k += g.weightOf(e)
		}
	}

	return k, nil
}

// TotalWeight returns m = ½ Σ_v WeightedDegree(v) for undirected graphs:
// every non-loop edge counts fully, every self-loop counts half.
//
// Complexity: O(E).
func (g *Graph) TotalWeight() float64 {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	var m float64
	for _, e := range g.edges {
		if e.IsLoop() {
			m += g.weightOf(e) / 2
			continue
		}
		m += g.weightOf(e)
	}

	return m
}

// HasNegativeWeight reports whether any edge carries a weight below zero.
// Always false on unweighted graphs.
//
// Complexity: O(E).
func (g *Graph) HasNegativeWeight() bool {
	if !g.Weighted() {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	for _, e := range g.edges {
		if e.Weight < 0 {
			return true
		}
	}

	return false
}
