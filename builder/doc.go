// Package builder assembles deterministic core.Graph fixtures with known
// community structure.
//
// A graph is built by composing Constructor closures under one resolved
// configuration:
//
//	g, err := builder.BuildGraph(
//		[]core.GraphOption{core.WithWeighted()},
//		[]builder.BuilderOption{builder.WithSeed(7), builder.WithUniformWeight(1, 5)},
//		builder.PlantedPartition(4, 16, 0.6, 0.02),
//	)
//
// Topologies:
//   - Path, Cycle, Star, Complete: classic shapes.
//   - RingOfCliques: k cliques joined by single bridges, the textbook case
//     where modularity recovers every clique.
//   - PlantedPartition: stochastic block model with dense groups and sparse
//     cross links; requires an RNG for probabilities strictly inside (0,1).
//
// Vertex IDs come from an IDFn (decimal by default). Vertex idx in group c
// of size s is idx = c*s + i. Weighted graphs draw edge weights from the
// configured WeightFn; unweighted graphs always get weight 0.
package builder
