// File: community.go
// Role: Fixtures with planted community structure.
// Determinism:
//   - Pairs are visited in (i asc, j asc) order and the RNG is consumed
//     once per candidate pair, so equal seeds give equal graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlouvain/core"
)

const (
	methodRingOfCliques    = "RingOfCliques"
	methodPlantedPartition = "PlantedPartition"

	// MinRingCliques is the smallest ring.
	MinRingCliques = 3
	// MinCliqueSize is the smallest clique that still has an internal edge.
	MinCliqueSize = 2
)

// RingOfCliques builds k cliques of size s. Clique c is joined to clique
// c+1 (mod k) by one bridge from its first vertex to the last vertex of the
// next clique. Requires k ≥ MinRingCliques and s ≥ MinCliqueSize.
func RingOfCliques(k, s int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if k < MinRingCliques {
			return fmt.Errorf("%s: k=%d < min=%d: %w", methodRingOfCliques, k, MinRingCliques, ErrTooFewVertices)
		}
		if s < MinCliqueSize {
			return fmt.Errorf("%s: s=%d < min=%d: %w", methodRingOfCliques, s, MinCliqueSize, ErrTooFewVertices)
		}

		groups := make([][]string, k)
		for c := 0; c < k; c++ {
			ids, err := addVertices(g, cfg, methodRingOfCliques, c*s, s)
			if err != nil {
				return err
			}
			if err = clique(g, cfg, methodRingOfCliques, ids); err != nil {
				return err
			}
			groups[c] = ids
		}
		for c := 0; c < k; c++ {
			next := groups[(c+1)%k]
			if err := link(g, cfg, methodRingOfCliques, groups[c][0], next[s-1], true); err != nil {
				return err
			}
		}

		return nil
	}
}

// PlantedPartition builds groups×size vertices. Each pair inside a group is
// linked with probability pIn, each pair across groups with pOut. An RNG is
// required unless both probabilities are 0 or 1.
func PlantedPartition(groups, size int, pIn, pOut float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if groups < 1 || size < 1 {
			return fmt.Errorf("%s: groups=%d size=%d: %w", methodPlantedPartition, groups, size, ErrTooFewVertices)
		}
		for _, p := range []float64{pIn, pOut} {
			if p < 0 || p > 1 {
				return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodPlantedPartition, p, ErrInvalidProbability)
			}
			if cfg.rng == nil && p > 0 && p < 1 {
				return fmt.Errorf("%s: %w", methodPlantedPartition, ErrNeedRandSource)
			}
		}

		n := groups * size
		ids, err := addVertices(g, cfg, methodPlantedPartition, 0, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				p := pOut
				if i/size == j/size {
					p = pIn
				}
				if !draw(cfg, p) {
					continue
				}
				if err = link(g, cfg, methodPlantedPartition, ids[i], ids[j], true); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// draw reports a Bernoulli(p) outcome; 0 and 1 never touch the RNG.
func draw(cfg builderConfig, p float64) bool {
	switch {
	case p <= 0:
		return false
	case p >= 1:
		return true
	default:
		return cfg.rng.Float64() < p
	}
}
