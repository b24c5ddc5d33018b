// Package louvain provides options, result types and error definitions
// for Louvain modularity optimisation over a core.Graph.
package louvain

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvlouvain/core"
)

// Sentinel errors for Louvain execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("louvain: graph is nil")

	// ErrModularityUndefined is returned for directed input or zero total edge weight.
	ErrModularityUndefined = errors.New("louvain: modularity undefined")

	// ErrNegativeWeight is returned when any resolved edge weight is below zero.
	ErrNegativeWeight = errors.New("louvain: negative edge weight")

	// ErrInvalidWeight is returned when a weight attribute is not a finite number.
	ErrInvalidWeight = errors.New("louvain: invalid edge weight attribute")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("louvain: invalid option supplied")

	// ErrInvariantViolation signals a logic defect: aggregates diverged from
	// recomputation or weight was not conserved across a contraction.
	ErrInvariantViolation = errors.New("louvain: invariant violation")

	// ErrIncompletePartition is returned by Modularity when a node has no community.
	ErrIncompletePartition = errors.New("louvain: partition does not cover every node")

	// ErrLevelOutOfRange is returned by Dendrogram accessors for a bad level index.
	ErrLevelOutOfRange = errors.New("louvain: level out of range")

	// ErrCommunityNotFound is returned when a community ID is absent from a level.
	ErrCommunityNotFound = errors.New("louvain: community not found")
)

const (
	// DefaultWeightKey selects core.Edge.Weight as the edge weight.
	DefaultWeightKey = "weight"

	// MembersKey is the vertex metadata key holding the sorted original node IDs
	// contracted into a community vertex.
	MembersKey = "members"
)

// Option configures Louvain behavior via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when Louvain is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a Louvain run.
type Options struct {
	// Ctx allows cancellation between sweeps and between levels.
	Ctx context.Context

	// Logger receives run, level and sweep events. Defaults to zerolog.Nop().
	Logger zerolog.Logger

	// WeightKey names the edge attribute used as weight.
	// "weight" reads Edge.Weight; any other key reads Edge.Metadata[key] (missing ⇒ 1).
	WeightKey string

	// Unweighted forces weight 1 on every edge.
	Unweighted bool

	// MaxLevels, if > 0, bounds the number of dendrogram levels.
	MaxLevels int

	// MaxSweeps, if > 0, bounds the local-moving sweeps per level.
	MaxSweeps int

	// CheckInvariants recomputes tracker aggregates from scratch after every sweep.
	CheckInvariants bool

	// OnSweep is called after every local-moving sweep.
	OnSweep func(level, sweep, moves int)

	// OnLevel is called after every level is appended to the dendrogram.
	OnLevel func(LevelStats)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with background context, a no-op logger,
// the "weight" key, no level or sweep caps and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Logger:    zerolog.Nop(),
		WeightKey: DefaultWeightKey,
		OnSweep:   func(int, int, int) {},
		OnLevel:   func(LevelStats) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger sets the structured logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithWeightKey selects the edge attribute read as weight.
// An empty key is an ErrOptionViolation.
func WithWeightKey(key string) Option {
	return func(o *Options) {
		if key == "" {
			o.err = fmt.Errorf("%w: weight key cannot be empty", ErrOptionViolation)
			return
		}
		o.WeightKey = key
	}
}

// WithUnweighted treats every edge as weight 1.
func WithUnweighted() Option {
	return func(o *Options) { o.Unweighted = true }
}

// WithMaxLevels caps the number of levels.
//
//	n > 0: at most n levels
//	n == 0: no cap
//	n < 0: ErrOptionViolation
func WithMaxLevels(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxLevels cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxLevels = n
	}
}

// WithMaxSweeps caps the local-moving sweeps per level; semantics as WithMaxLevels.
func WithMaxSweeps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSweeps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSweeps = n
	}
}

// WithInvariantChecks enables full aggregate recomputation after every sweep.
func WithInvariantChecks() Option {
	return func(o *Options) { o.CheckInvariants = true }
}

// WithOnSweep registers a callback run after each sweep.
func WithOnSweep(fn func(level, sweep, moves int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSweep = fn
		}
	}
}

// WithOnLevel registers a callback run after each level is closed.
func WithOnLevel(fn func(LevelStats)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnLevel = fn
		}
	}
}

// Level is one closed, immutable step of the dendrogram.
type Level struct {
	// Index is the position in Dendrogram.Levels.
	Index int

	// Graph is the contracted graph: one vertex per community, MembersKey
	// metadata on each vertex, summed weights, self-loops for internal weight.
	Graph *core.Graph

	// Partition maps every vertex of the previous graph (the original graph
	// for Index 0) to its vertex ID in Graph.
	Partition map[string]string

	// Modularity of this level's communities measured on the original graph.
	Modularity float64

	// Moves is the number of node moves made by the local-moving phase.
	Moves int

	// Sweeps is the number of local-moving sweeps performed.
	Sweeps int
}

// LevelStats summarises a closed level for observers.
type LevelStats struct {
	RunID       string
	Level       int
	Nodes       int // vertices of the graph the phase ran on
	Communities int // vertices of the contracted graph
	Moves       int
	Sweeps      int
	Modularity  float64
	Duration    time.Duration
}
