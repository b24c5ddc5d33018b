// File: types.go
// Role: Options, sentinel errors and the Pair key for Girvan–Newman.

package girvannewman

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// Sentinel errors for Girvan–Newman execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("girvannewman: graph is nil")

	// ErrNegativeWeight is returned when weighted distances would be negative.
	ErrNegativeWeight = errors.New("girvannewman: negative edge weight")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("girvannewman: invalid option supplied")
)

// Option configures a run via functional arguments.
type Option func(*Options)

// Options holds parameters for GirvanNewman.
type Options struct {
	// Ctx allows cancellation between edge removals.
	Ctx context.Context

	// Logger receives split events. Defaults to zerolog.Nop().
	Logger zerolog.Logger

	// Weighted treats edge weights as distances (Dijkstra); otherwise hops (BFS).
	Weighted bool

	// MaxSplits, if > 0, stops after that many partitions are recorded.
	MaxSplits int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns background context, a no-op logger, hop distances
// and no split cap.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		Logger: zerolog.Nop(),
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

// WithWeighted uses edge weights as path lengths.
func WithWeighted() Option {
	return func(o *Options) { o.Weighted = true }
}

// WithMaxSplits stops after n partitions (n == 0: no cap, n < 0: ErrOptionViolation).
func WithMaxSplits(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSplits cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSplits = n
	}
}

// Pair identifies an undirected vertex pair with U < V.
type Pair struct {
	U, V string
}

// NewPair orders a and b.
func NewPair(a, b string) Pair {
	if b < a {
		a, b = b, a
	}

	return Pair{U: a, V: b}
}
