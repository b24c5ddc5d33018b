// Package bfs provides breadth-first search over a core.Graph, returning
// hop distances and visit order, plus connected components
// built on top of it.
//
// Determinism
//
//	core.NeighborIDs is sorted, and BFS enqueues neighbors in that order,
//	so the visit sequence is reproducible. Components seeds in
//	core.Vertices() order and sorts members.
//
// Mixed-Edges Support
//
//	Directed edges are followed only From→To; undirected edges both ways.
//	Edge weights are ignored.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, "start",
//	    bfs.WithContext(ctx),
//	    bfs.WithFilterNeighbor(func(curr, nbr string) bool { return curr != "skip" }),
//	    bfs.WithOnVisit(func(id string, depth int) error { return nil }),
//	)
//
//	comps, err := bfs.Components(g) // [][]string, ordered by smallest member
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrNeighbors            if core.NeighborIDs fails for any vertex.
//   - ctx.Err() on cancellation; wrapped OnVisit errors.
package bfs
