// Package girvannewman implements divisive community detection by edge
// betweenness (Girvan–Newman).
//
// Each round recomputes Brandes edge betweenness on a working copy of the
// graph and removes every edge tied at the maximum, until the number of
// connected components grows. The resulting partition is recorded and the
// process repeats until no edges remain:
//
//	h, err := girvannewman.GirvanNewman(g, girvannewman.WithWeighted())
//	first := h[0] // coarsest split
//
// With WithWeighted, edge weights are path lengths (Dijkstra); otherwise
// paths are counted in hops (BFS). The working copy is simple and
// undirected: self-loops are dropped, directions ignored, and parallel
// edges collapse to the shortest.
package girvannewman
