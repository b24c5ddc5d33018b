// File: modularity.go
// Role: Newman modularity of a partition under the self-loop-once degree convention.

package louvain

import (
	"fmt"

	"github.com/katalvlaran/lvlouvain/core"
)

// Modularity returns
//
//	Q = Σ_c [ Σin_c/(2m) − (tot_c/(2m))² ]
//
// for partition (vertex ID → community label) on g, where Σin_c counts each
// internal edge from both endpoints and each self-loop once, and tot_c sums
// the weighted degrees of c. Weights are resolved as in Louvain, so
// WithWeightKey and WithUnweighted apply; other options are ignored.
//
// Errors: ErrGraphNil, ErrOptionViolation, ErrModularityUndefined,
// ErrNegativeWeight, ErrInvalidWeight, ErrIncompletePartition.
func Modularity(g *core.Graph, partition map[string]string, opts ...Option) (float64, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return 0, o.err
	}
	wf := o.resolver(g)
	if err := validate(g, wf); err != nil {
		return 0, err
	}
	s, err := newSnapshot(g, wf)
	if err != nil {
		return 0, err
	}

	labels := make(map[string]int)
	community := make([]int, s.len())
	for u, id := range s.ids {
		label, ok := partition[id]
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrIncompletePartition, id)
		}
		c, ok := labels[label]
		if !ok {
			c = len(labels)
			labels[label] = c
		}
		community[u] = c
	}

	return modularity(s, community), nil
}

// modularity evaluates Q on a snapshot; community values must lie in [0, len).
func modularity(s *snapshot, community []int) float64 {
	n := s.len()
	in := make([]float64, n)
	tot := make([]float64, n)
	for u := 0; u < n; u++ {
		c := community[u]
		tot[c] += s.degree[u]
		in[c] += s.loop[u]
		for _, a := range s.adj[u] {
			if community[a.to] == c {
				in[c] += a.weight
			}
		}
	}

	twoM := 2 * s.m
	var q float64
	for c := 0; c < n; c++ {
		if tot[c] == 0 && in[c] == 0 {
			continue
		}
		r := tot[c] / twoM
		q += in[c]/twoM - r*r
	}

	return q
}
