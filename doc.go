// Package lvlouvain detects communities in weighted, undirected graphs.
//
// The heart of the module is a Louvain modularity optimiser: every level
// greedily moves nodes between neighbouring communities while modularity
// improves, then contracts each community into a single vertex and repeats
// on the smaller graph. The result is a dendrogram of ever coarser graphs.
//
// Packages:
//
//	core/         — thread-safe Graph, Vertex, Edge plus weight queries
//	                (EdgeWeight, SelfLoopWeight, WeightedDegree, TotalWeight)
//	bfs/          — breadth-first traversal and connected components
//	louvain/      — local moving, aggregation, the level driver, Dendrogram,
//	                Modularity and a viper-backed Config
//	girvannewman/ — divisive detection by edge betweenness
//	metrics/      — Prometheus collector fed by the Louvain hooks
//	builder/      — deterministic fixtures (rings of cliques, planted partitions)
//	examples/     — runnable karate-club walkthrough
//
// Quick example:
//
//	    a───b       e───f
//	     \ /         \ /
//	      c ───────── d
//
//	g := core.NewGraph(core.WithWeighted())
//	// ... AddEdge for both triangles and the bridge
//	d, err := louvain.Louvain(g)
//	comms, _ := d.Communities(d.Depth() - 1) // [[a b c] [d e f]]
//
//	go get github.com/katalvlaran/lvlouvain
package lvlouvain
