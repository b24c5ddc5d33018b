// File: louvain.go
// Role: Driver: validation, repeated local moving and contraction, dendrogram assembly.
// Determinism:
//   - Identical input graphs and options produce identical dendrograms
//     (RunID aside).
// Concurrency:
//   - Reads g through its thread-safe API; g must not be mutated during a run.

package louvain

import (
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/lvlouvain/core"
)

// Louvain detects communities in g by greedy modularity optimisation and
// returns the dendrogram of contracted levels, finest first.
//
// Steps per level:
//  1. Local moving on the current graph until a sweep makes no move.
//  2. Contraction of the resulting partition into a new graph.
//  3. Stop when no node moved, when no community merged, when a single
//     community remains or when MaxLevels is reached.
//
// Errors: ErrGraphNil, ErrOptionViolation, ErrModularityUndefined,
// ErrNegativeWeight, ErrInvalidWeight, ErrInvariantViolation, ctx.Err().
// No partial dendrogram is returned on error.
func Louvain(g *core.Graph, opts ...Option) (*Dendrogram, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	runID := uuid.NewString()
	log := o.Logger.With().Str("run_id", runID).Logger()

	wf := o.resolver(g)
	if err := validate(g, wf); err != nil {
		log.Warn().Err(err).Msg("input rejected")
		return nil, err
	}
	s, err := newSnapshot(g, wf)
	if err != nil {
		log.Warn().Err(err).Msg("input rejected")
		return nil, err
	}

	members := make([][]string, s.len())
	for i, id := range s.ids {
		members[i] = []string{id}
	}

	log.Info().
		Int("nodes", s.len()).
		Int("edges", g.EdgeCount()).
		Float64("total_weight", s.m).
		Msg("louvain started")

	start := time.Now()
	d := &Dendrogram{RunID: runID, Nodes: append([]string(nil), s.ids...)}
	for level := 0; ; level++ {
		if err = o.Ctx.Err(); err != nil {
			return nil, err
		}
		levelStart := time.Now()

		res, err := newMover(s, &o, level, log).run(o.Ctx)
		if err != nil {
			log.Error().Err(err).Int("level", level).Msg("local moving aborted")
			return nil, err
		}

		ctr, err := contract(s, res.community, members, level)
		if err != nil {
			log.Error().Err(err).Int("level", level).Msg("contraction failed")
			return nil, err
		}
		next, err := newSnapshot(ctr.graph, edgeWeight)
		if err != nil {
			return nil, err
		}

		lvl := &Level{
			Index:      level,
			Graph:      ctr.graph,
			Partition:  ctr.partition,
			Modularity: modularity(next, identity(next.len())),
			Moves:      res.moves,
			Sweeps:     res.sweeps,
		}
		d.Levels = append(d.Levels, lvl)

		stats := LevelStats{
			RunID:       runID,
			Level:       level,
			Nodes:       s.len(),
			Communities: next.len(),
			Moves:       res.moves,
			Sweeps:      res.sweeps,
			Modularity:  lvl.Modularity,
			Duration:    time.Since(levelStart),
		}
		o.OnLevel(stats)
		log.Info().
			Int("level", level).
			Int("nodes", stats.Nodes).
			Int("communities", stats.Communities).
			Int("moves", stats.Moves).
			Int("sweeps", stats.Sweeps).
			Float64("modularity", stats.Modularity).
			Bool("converged", res.converged).
			Msg("level closed")

		if reason := stopReason(&o, res, s, next, len(d.Levels)); reason != "" {
			log.Info().
				Int("levels", len(d.Levels)).
				Str("reason", reason).
				Float64("modularity", lvl.Modularity).
				Dur("elapsed", time.Since(start)).
				Msg("louvain finished")
			break
		}

		s, members = next, ctr.members
	}

	return d, nil
}

// stopReason returns why the driver ends after the current level, or "".
func stopReason(o *Options, res *moveResult, cur, next *snapshot, levels int) string {
	switch {
	case res.moves == 0:
		return "no moves"
	case next.len() == cur.len():
		return "no contraction"
	case next.len() == 1:
		return "single community"
	case o.MaxLevels > 0 && levels >= o.MaxLevels:
		return "max levels"
	default:
		return ""
	}
}

// identity returns the singleton partition of n nodes.
func identity(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}

	return p
}
