package builder

import (
	"fmt"
	"math/rand"
	"strconv"
)

// DefaultEdgeWeight is the weight used on weighted graphs when no WeightFn is set.
const DefaultEdgeWeight float64 = 1

// IDFn maps a vertex index to its ID.
type IDFn func(idx int) string

// WeightFn draws one edge weight. rng is nil when no source was configured.
type WeightFn func(rng *rand.Rand) float64

// builderConfig is the immutable result of option resolution.
type builderConfig struct {
	idFn     IDFn
	rng      *rand.Rand
	weightFn WeightFn
}

// BuilderOption customises builderConfig.
type BuilderOption func(*builderConfig)

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		weightFn: func(*rand.Rand) float64 { return DefaultEdgeWeight },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// weight returns the edge weight to pass to AddEdge on g's mode.
func (c builderConfig) weight(weighted bool) float64 {
	if !weighted {
		return 0
	}

	return c.weightFn(c.rng)
}

// DefaultIDFn yields "0", "1", ...
func DefaultIDFn(idx int) string { return strconv.Itoa(idx) }

// SymbolNumberIDFn yields prefix+idx, e.g. "v0", "v1".
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string { return prefix + strconv.Itoa(idx) }
}

// PaddedIDFn yields prefix+idx zero-padded to width, so lexical order
// matches numeric order: PaddedIDFn("n", 3)(7) == "n007".
func PaddedIDFn(prefix string, width int) IDFn {
	return func(idx int) string { return fmt.Sprintf("%s%0*d", prefix, width, idx) }
}

// WithIDScheme sets the vertex ID function. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithSeed installs a deterministic RNG.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand installs a caller-owned RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithWeightFn sets the edge weight source. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) { c.weightFn = fn }
}

// WithConstantWeight gives every edge weight w (w ≥ 0).
func WithConstantWeight(w float64) BuilderOption {
	if w < 0 {
		panic(fmt.Sprintf("builder: WithConstantWeight(%g)", w))
	}
	return WithWeightFn(func(*rand.Rand) float64 { return w })
}

// WithUniformWeight draws weights uniformly from [min, max); without an RNG
// every edge gets min.
func WithUniformWeight(min, max float64) BuilderOption {
	if min < 0 || max < min {
		panic(fmt.Sprintf("builder: WithUniformWeight require 0 ≤ min ≤ max, got %g, %g", min, max))
	}
	return WithWeightFn(func(rng *rand.Rand) float64 {
		if rng == nil || max == min {
			return min
		}
		return min + rng.Float64()*(max-min)
	})
}
