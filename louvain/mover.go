// File: mover.go
// Role: Local-moving phase: greedy node reassignment to a fixed point.
//
// States: Scanning → Evaluating → Moving → (Scanning | Converged).
//
// Determinism:
//   - Nodes are scanned in snapshot order; candidate communities in
//     first-encounter order over the node's adjacency.
//   - Ties keep the current community, otherwise the first candidate wins.
//
// Concurrency:
//   - Single goroutine; ctx is checked between sweeps only, never mid-sweep.

package louvain

import (
	"context"

	"github.com/rs/zerolog"
)

// moverState enumerates the phases of the local-moving state machine.
type moverState int

const (
	stateScanning moverState = iota
	stateEvaluating
	stateMoving
	stateConverged
)

// String implements fmt.Stringer.
func (s moverState) String() string {
	switch s {
	case stateScanning:
		return "scanning"
	case stateEvaluating:
		return "evaluating"
	case stateMoving:
		return "moving"
	case stateConverged:
		return "converged"
	default:
		return "unknown"
	}
}

// candidate is the best destination found for one node. Starting from the
// node's own community makes "no improving neighbour" a regular value.
type candidate struct {
	community int
	gain      float64
}

// moveResult is the outcome of one phase.
type moveResult struct {
	community []int // node index → community (a node index)
	moves     int
	sweeps    int
	converged bool // false when MaxSweeps cut the phase short
}

// mover runs one local-moving phase over a snapshot.
type mover struct {
	s      *snapshot
	t      *tracker
	opts   *Options
	level  int
	log    zerolog.Logger
	state  moverState
	kIn    []float64 // scratch: weight from the current node to each community
	touch  []int     // scratch: communities with non-zero kIn, first-encounter order
	marked []bool
}

// newMover prepares a phase with every node in its own community.
func newMover(s *snapshot, opts *Options, level int, log zerolog.Logger) *mover {
	n := s.len()
	return &mover{
		s:      s,
		t:      newTracker(s),
		opts:   opts,
		level:  level,
		log:    log,
		kIn:    make([]float64, n),
		touch:  make([]int, 0, 16),
		marked: make([]bool, n),
	}
}

// run sweeps until a sweep makes no move, MaxSweeps is reached, or ctx is done.
func (mv *mover) run(ctx context.Context) (*moveResult, error) {
	res := &moveResult{}
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if mv.opts.MaxSweeps > 0 && res.sweeps >= mv.opts.MaxSweeps {
			break
		}

		moves := mv.sweep()
		res.sweeps++
		res.moves += moves
		mv.opts.OnSweep(mv.level, res.sweeps, moves)
		mv.log.Debug().
			Int("level", mv.level).
			Int("sweep", res.sweeps).
			Int("moves", moves).
			Int("communities", mv.t.communities()).
			Msg("sweep done")

		if mv.opts.CheckInvariants {
			if err := mv.t.verify(); err != nil {
				return nil, err
			}
		}
		if moves == 0 {
			mv.state = stateConverged
			res.converged = true
		}
		mv.log.Trace().Int("level", mv.level).Stringer("state", mv.state).Msg("mover state")
		if res.converged {
			break
		}
	}
	res.community = mv.t.community

	return res, nil
}

// sweep visits every node once and returns the number of moves.
func (mv *mover) sweep() int {
	var moves int
	for u := 0; u < mv.s.len(); u++ {
		mv.state = stateScanning
		if len(mv.s.adj[u]) == 0 {
			continue
		}
		if mv.step(u) {
			moves++
		}
	}

	return moves
}

// step removes u, evaluates every neighbouring community and reinserts u
// into the best one. Reports whether u changed community.
func (mv *mover) step(u int) bool {
	mv.state = stateEvaluating
	mv.gather(u)
	defer mv.reset()

	old := mv.t.community[u]
	k := mv.s.degree[u]
	m := mv.s.m

	mv.t.remove(u, old, mv.kIn[old])
	best := candidate{community: old, gain: Gain(mv.kIn[old], mv.t.totalDegree[old], k, m)}
	for _, c := range mv.touch {
		if c == old {
			continue
		}
		g := Gain(mv.kIn[c], mv.t.totalDegree[c], k, m)
		if g > best.gain && g > 0 {
			best = candidate{community: c, gain: g}
		}
	}

	mv.state = stateMoving
	mv.t.insert(u, best.community, mv.kIn[best.community])

	return best.community != old
}

// gather accumulates the weight from u to each neighbouring community.
// Self-loops never appear in adj, so they never nominate a community.
func (mv *mover) gather(u int) {
	for _, a := range mv.s.adj[u] {
		c := mv.t.community[a.to]
		if !mv.marked[c] {
			mv.marked[c] = true
			mv.touch = append(mv.touch, c)
		}
		mv.kIn[c] += a.weight
	}
}

// reset clears the scratch buffers touched by gather.
func (mv *mover) reset() {
	for _, c := range mv.touch {
		mv.kIn[c] = 0
		mv.marked[c] = false
	}
	mv.touch = mv.touch[:0]
}
