// File: tracker.go
// Role: Per-community running aggregates kept consistent with the partition.
//
// Invariants (between moves):
//   - totalDegree[c] = Σ degree(u) for u in c.
//   - internal[c]    = Σ weight(u,v) over unordered pairs u≠v in c, plus Σ loop(u) for u in c.
//
// Concurrency:
//   - Not safe for concurrent use; owned by one local-moving phase.

package louvain

import (
	"fmt"

	"gonum.org/v1/gonum/floats/scalar"
)

// unassigned marks a node between remove and insert.
const unassigned = -1

// tracker owns the partition and aggregates of one local-moving phase.
// Community IDs are node indices: community c starts as the singleton {c}.
type tracker struct {
	s           *snapshot
	community   []int
	internal    []float64
	totalDegree []float64
	members     []map[int]struct{}
}

// newTracker puts every node in its own singleton community.
func newTracker(s *snapshot) *tracker {
	n := s.len()
	t := &tracker{
		s:           s,
		community:   make([]int, n),
		internal:    make([]float64, n),
		totalDegree: make([]float64, n),
		members:     make([]map[int]struct{}, n),
	}
	for u := 0; u < n; u++ {
		t.community[u] = u
		t.internal[u] = s.loop[u]
		t.totalDegree[u] = s.degree[u]
		t.members[u] = map[int]struct{}{u: {}}
	}

	return t
}

// remove detaches u from c. kIn is the weight from u to the other members of c.
// An emptied community is reset to exact zeros so float residue cannot leak
// into later gains.
func (t *tracker) remove(u, c int, kIn float64) {
	t.internal[c] -= kIn + t.s.loop[u]
	t.totalDegree[c] -= t.s.degree[u]
	delete(t.members[c], u)
	if len(t.members[c]) == 0 {
		t.internal[c], t.totalDegree[c] = 0, 0
	}
	t.community[u] = unassigned
}

// insert attaches u to c. kIn is the weight from u to the current members of c.
func (t *tracker) insert(u, c int, kIn float64) {
	t.internal[c] += kIn + t.s.loop[u]
	t.totalDegree[c] += t.s.degree[u]
	t.members[c][u] = struct{}{}
	t.community[u] = c
}

// communities returns the number of non-empty communities.
func (t *tracker) communities() int {
	var n int
	for _, m := range t.members {
		if len(m) > 0 {
			n++
		}
	}

	return n
}

// verify recomputes every aggregate from the partition and reports the first
// divergence beyond tolerance as ErrInvariantViolation.
//
// Complexity: O(V + E).
func (t *tracker) verify() error {
	n := t.s.len()
	internal := make([]float64, n)
	total := make([]float64, n)
	seen := 0
	for u := 0; u < n; u++ {
		c := t.community[u]
		if c == unassigned {
			return fmt.Errorf("%w: node %q unassigned", ErrInvariantViolation, t.s.ids[u])
		}
		if _, ok := t.members[c][u]; !ok {
			return fmt.Errorf("%w: node %q missing from community %d", ErrInvariantViolation, t.s.ids[u], c)
		}
		total[c] += t.s.degree[u]
		internal[c] += t.s.loop[u]
		for _, a := range t.s.adj[u] {
			if a.to > u && t.community[a.to] == c {
				internal[c] += a.weight
			}
		}
	}
	for c := 0; c < n; c++ {
		seen += len(t.members[c])
		if !approxEqual(internal[c], t.internal[c]) || !approxEqual(total[c], t.totalDegree[c]) {
			return fmt.Errorf("%w: community %d aggregates (%g,%g) want (%g,%g)",
				ErrInvariantViolation, c, t.internal[c], t.totalDegree[c], internal[c], total[c])
		}
	}
	if seen != n {
		return fmt.Errorf("%w: %d memberships for %d nodes", ErrInvariantViolation, seen, n)
	}

	return nil
}

// approxEqual compares accumulated sums that may differ in summation order.
func approxEqual(a, b float64) bool {
	return scalar.EqualWithinAbsOrRel(a, b, 1e-12, 1e-9)
}
