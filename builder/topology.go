package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlouvain/core"
)

const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodStar     = "Star"
	methodComplete = "Complete"

	// MinPathNodes is the smallest path.
	MinPathNodes = 2
	// MinCycleNodes is the smallest simple cycle.
	MinCycleNodes = 3
	// MinStarNodes is a centre plus one leaf.
	MinStarNodes = 2
	// MinCompleteNodes allows the single-vertex K1.
	MinCompleteNodes = 1
)

// addVertices inserts idFn(offset)..idFn(offset+n-1) and returns their IDs.
func addVertices(g *core.Graph, cfg builderConfig, method string, offset, n int) ([]string, error) {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = cfg.idFn(offset + i)
		if err := g.AddVertex(ids[i]); err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%s): %w", method, ids[i], err)
		}
	}

	return ids, nil
}

// link adds u–v with a fresh weight; on directed graphs mirror adds v→u too.
func link(g *core.Graph, cfg builderConfig, method, u, v string, mirror bool) error {
	w := cfg.weight(g.Weighted())
	if _, err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", method, u, v, w, err)
	}
	if mirror && g.Directed() {
		if _, err := g.AddEdge(v, u, w); err != nil {
			return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", method, v, u, w, err)
		}
	}

	return nil
}

// clique links every pair of ids in index order.
func clique(g *core.Graph, cfg builderConfig, method string, ids []string) error {
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			if err := link(g, cfg, method, ids[i], ids[j], true); err != nil {
				return err
			}
		}
	}

	return nil
}

// Path builds P_n: 0–1–…–(n-1). Requires n ≥ MinPathNodes.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, MinPathNodes, ErrTooFewVertices)
		}
		ids, err := addVertices(g, cfg, methodPath, 0, n)
		if err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err = link(g, cfg, methodPath, ids[i], ids[i+1], false); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle builds C_n: Path(n) plus (n-1)–0. Requires n ≥ MinCycleNodes.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, MinCycleNodes, ErrTooFewVertices)
		}
		ids, err := addVertices(g, cfg, methodCycle, 0, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err = link(g, cfg, methodCycle, ids[i], ids[(i+1)%n], false); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star builds a centre idFn(0) with n-1 leaves. Requires n ≥ MinStarNodes.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, MinStarNodes, ErrTooFewVertices)
		}
		ids, err := addVertices(g, cfg, methodStar, 0, n)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err = link(g, cfg, methodStar, ids[0], ids[i], false); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete builds K_n; directed graphs get both orientations.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, MinCompleteNodes, ErrTooFewVertices)
		}
		ids, err := addVertices(g, cfg, methodComplete, 0, n)
		if err != nil {
			return err
		}

		return clique(g, cfg, methodComplete, ids)
	}
}
