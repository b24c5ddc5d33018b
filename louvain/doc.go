// Package louvain detects communities in weighted, undirected core.Graph
// instances by greedy modularity optimisation (Blondel et al., 2008).
//
// What
//
//   - Local moving: every node starts alone; nodes are visited in a fixed
//     order and moved to the neighbouring community with the largest
//     positive gain ΔQ = kIn/m − tot·k/(2m²), until a sweep moves nothing.
//   - Contraction: each community becomes one vertex of a new graph; internal
//     weight becomes a self-loop, inter-community weights are summed. Total
//     weight m is conserved and checked.
//   - The two phases repeat on the contracted graph, producing a Dendrogram
//     whose levels can be flattened back onto the original nodes.
//
// Degree convention
//
//	A self-loop contributes its weight once to the weighted degree, matching
//	core.Graph.WeightedDegree. Under this convention contraction preserves
//	both m and modularity, and Q agrees with the textbook definition on
//	loop-free graphs.
//
// Determinism
//
//	Nodes are scanned in core.Graph.Vertices() order, candidate communities
//	in neighbour order, and ties keep the current community. Identical input
//	yields identical levels.
//
// Usage
//
//	d, err := louvain.Louvain(g,
//	    louvain.WithContext(ctx),
//	    louvain.WithLogger(logger),
//	    louvain.WithWeightKey("affinity"),
//	    louvain.WithMaxLevels(4),
//	)
//	if err != nil {
//	    // ErrModularityUndefined, ErrNegativeWeight, ...
//	}
//	best, _ := d.Best()
//	assign, _ := d.Flatten(best.Index) // original node → community
//
//	cfg, _ := louvain.LoadConfig("louvain.yaml")
//	d, err = louvain.Louvain(g, cfg.Options()...)
//
// Errors
//
//   - ErrGraphNil             nil graph.
//   - ErrModularityUndefined  directed graph or zero total weight.
//   - ErrNegativeWeight       a resolved weight below zero.
//   - ErrInvalidWeight        a non-numeric or non-finite weight attribute.
//   - ErrOptionViolation      invalid Option.
//   - ErrInvariantViolation   internal aggregates diverged; the run aborts.
//   - ctx.Err()               cancelled between sweeps or levels.
package louvain
