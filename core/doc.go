// Package core provides a thread-safe in-memory Graph implementation with a
// minimal, composable API surface. It is the graph storage every other
// lvlouvain package reads from.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Per-edge orientation in "mixed" graphs (WithMixedEdges + WithEdgeDirected)
//   - Weighted vs. unweighted edges (WithWeighted); weights are float64
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Per-vertex and per-edge metadata (SetVertexMetadata, WithEdgeMetadata)
//   - Constant-time edge operations via nested maps:
//     adjacencyList[from][to][edgeID] = struct{}{}
//   - Atomic Edge.ID generation ("e1", "e2", …)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error
//	HasVertex(id string) bool
//	Vertex(id string) (*Vertex, error)
//	SetVertexMetadata(id, key string, value interface{}) error
//	RemoveVertex(id string) error
//
//	// Edge lifecycle
//	AddEdge(from, to string, weight float64, opts ...EdgeOption) (edgeID string, err error)
//	RemoveEdge(edgeID string) error
//	HasEdge(from, to string) bool
//	FilterEdges(pred func(*Edge) bool)
//
//	// Query (deterministic order)
//	Neighbors(id string) ([]*Edge, error)    // sorted by Edge.ID, loops once
//	NeighborIDs(id string) ([]string, error) // unique, lex asc
//	Vertices() []string                      // lex asc
//	Edges() []*Edge                          // Edge.ID asc
//
//	// Weights (absent ⇒ 0, unweighted ⇒ 1 per edge)
//	EdgeWeight(from, to string) float64
//	SelfLoopWeight(id string) float64
//	WeightedDegree(id string) (float64, error) // self-loop counted once
//	TotalWeight() float64                      // ½ Σ WeightedDegree
//
//	// Cloning & views (fresh, independent graphs)
//	Clone(), CloneEmpty(), UnweightedView(g), InducedSubgraph(g, keep)
//
// Errors:
//
//	ErrEmptyVertexID        – zero-length vertex ID
//	ErrVertexNotFound       – missing vertex
//	ErrEdgeNotFound         – missing edge
//	ErrBadWeight            – non-zero weight on unweighted graph, NaN or ±Inf
//	ErrLoopNotAllowed       – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed  – parallel edge when multi-edges disabled
//	ErrMixedEdgesNotAllowed – per-edge override without mixed-mode
package core
