package louvain

// Gain returns the modularity change of inserting a node into community c:
//
//	ΔQ = kIn/m − tot·k/(2m²)
//
// kIn is the weight between the node and the current members of c (each
// undirected edge once, self-loop excluded), tot is the total degree of c
// without the node, k is the node's weighted degree and m the level's total
// edge weight. Gain is pure and never mutates aggregates.
func Gain(kIn, tot, k, m float64) float64 {
	return kIn/m - tot*k/(2*m*m)
}
