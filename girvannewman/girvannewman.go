// File: girvannewman.go
// Role: Divisive community detection by repeated removal of the edges with
// the highest betweenness.
// Determinism:
//   - The working copy is built in sorted pair order and components are
//     reported via bfs.Components, so equal inputs give equal hierarchies.

package girvannewman

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/lvlouvain/bfs"
	"github.com/katalvlaran/lvlouvain/core"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// Scores within this tolerance of the maximum count as tied and are removed together.
const (
	tieAbsTol = 1e-12
	tieRelTol = 1e-12
)

// GirvanNewman splits g into progressively finer communities. Each entry of
// the result is the component partition observed right after removing the
// edges whose betweenness split one more component off. The sequence ends
// when no edges remain (or after MaxSplits entries).
//
// g is never mutated: the algorithm runs on a simple undirected copy where
// self-loops are dropped and parallel edges collapse to the shortest one.
// A graph without edges yields an empty result.
//
// Errors: ErrGraphNil, ErrOptionViolation, ErrNegativeWeight, ctx.Err().
//
// Complexity: O(E²·V) unweighted, O(E²·V log V) weighted.
func GirvanNewman(g *core.Graph, opts ...Option) ([][][]string, error) {
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

	v, err := newView(g, o.Weighted)
	if err != nil {
		return nil, err
	}
	s := &splitter{opts: o, work: core.NewGraph(), edgeIDs: make(map[Pair]string, len(v.edges))}
	if o.Weighted {
		s.work = core.NewGraph(core.WithWeighted())
	}
	if err = s.load(v); err != nil {
		return nil, err
	}

	log := o.Logger.With().
		Str("run_id", uuid.NewString()).
		Str("algorithm", "girvan-newman").
		Logger()
	log.Info().
		Int("nodes", len(v.ids)).
		Int("edges", len(v.edges)).
		Bool("weighted", o.Weighted).
		Msg("girvan-newman started")
	s.opts.Logger = log
	start := time.Now()

	var hierarchy [][][]string
	for s.work.EdgeCount() > 0 {
		if err = o.Ctx.Err(); err != nil {
			return nil, err
		}
		comps, removed, err := s.split()
		if err != nil {
			return nil, err
		}
		hierarchy = append(hierarchy, comps)
		log.Debug().
			Int("split", len(hierarchy)).
			Int("communities", len(comps)).
			Int("removed", removed).
			Msg("split recorded")
		if o.MaxSplits > 0 && len(hierarchy) >= o.MaxSplits {
			break
		}
	}

	log.Info().
		Int("splits", len(hierarchy)).
		Dur("duration", time.Since(start)).
		Msg("girvan-newman finished")

	return hierarchy, nil
}

// splitter owns the mutable working copy.
type splitter struct {
	opts    Options
	work    *core.Graph
	edgeIDs map[Pair]string
}

// load copies the simple view into the working graph.
func (s *splitter) load(v *view) error {
	for _, id := range v.ids {
		if err := s.work.AddVertex(id); err != nil {
			return fmt.Errorf("girvannewman: copy vertex %q: %w", id, err)
		}
	}
	for k, p := range v.edges {
		var w float64
		if s.opts.Weighted {
			w = v.lengths[k]
		}
		eid, err := s.work.AddEdge(p.U, p.V, w)
		if err != nil {
			return fmt.Errorf("girvannewman: copy edge %s-%s: %w", p.U, p.V, err)
		}
		s.edgeIDs[p] = eid
	}

	return nil
}

// split removes maximum-betweenness edges until the component count grows,
// then returns the new components and the number of edges removed.
func (s *splitter) split() ([][]string, int, error) {
	ctx := s.opts.Ctx
	before, err := bfs.CountComponents(s.work, bfs.WithContext(ctx))
	if err != nil {
		return nil, 0, err
	}

	removed := 0
	for s.work.EdgeCount() > 0 {
		if err = ctx.Err(); err != nil {
			return nil, removed, err
		}
		n, err := s.removeMax()
		if err != nil {
			return nil, removed, err
		}
		removed += n

		after, err := bfs.CountComponents(s.work, bfs.WithContext(ctx))
		if err != nil {
			return nil, removed, err
		}
		if after > before {
			break
		}
	}

	comps, err := bfs.Components(s.work, bfs.WithContext(ctx))

	return comps, removed, err
}

// removeMax recomputes betweenness and deletes every edge tied at the maximum.
func (s *splitter) removeMax() (int, error) {
	v, err := newView(s.work, s.opts.Weighted)
	if err != nil {
		return 0, err
	}
	scores := v.betweenness(s.opts.Weighted)
	if len(scores) == 0 {
		return 0, nil
	}
	top := floats.Max(scores)

	n := 0
	for k, p := range v.edges {
		if !scalar.EqualWithinAbsOrRel(scores[k], top, tieAbsTol, tieRelTol) {
			continue
		}
		if err = s.work.RemoveEdge(s.edgeIDs[p]); err != nil {
			return n, fmt.Errorf("girvannewman: remove %s-%s: %w", p.U, p.V, err)
		}
		delete(s.edgeIDs, p)
		n++
		s.opts.Logger.Trace().
			Str("u", p.U).
			Str("v", p.V).
			Float64("betweenness", scores[k]).
			Msg("edge removed")
	}

	return n, nil
}
