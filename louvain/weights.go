// File: weights.go
// Role: Edge weight resolution and input validation.
//
// Weight policy:
//   - WithUnweighted or an unweighted core.Graph: every edge weighs 1.
//   - Key "weight": Edge.Weight.
//   - Any other key: numeric Edge.Metadata[key]; a missing attribute weighs 1.

package louvain

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlouvain/core"
)

// weightFunc resolves the effective weight of one edge.
type weightFunc func(e *core.Edge) (float64, error)

// resolver returns the weightFunc selected by o for g.
func (o *Options) resolver(g *core.Graph) weightFunc {
	switch {
	case o.Unweighted:
		return func(*core.Edge) (float64, error) { return 1, nil }
	case o.WeightKey == DefaultWeightKey:
		if !g.Weighted() {
			return func(*core.Edge) (float64, error) { return 1, nil }
		}
		return func(e *core.Edge) (float64, error) { return e.Weight, nil }
	default:
		key := o.WeightKey
		return func(e *core.Edge) (float64, error) {
			raw, ok := e.Metadata[key]
			if !ok {
				return 1, nil
			}
			w, ok := toFloat(raw)
			if !ok || math.IsNaN(w) || math.IsInf(w, 0) {
				return 0, fmt.Errorf("%w: edge %s %q=%v", ErrInvalidWeight, e.ID, key, raw)
			}
			return w, nil
		}
	}
}

// edgeWeight reads Edge.Weight; used on contracted levels, which are always weighted.
func edgeWeight(e *core.Edge) (float64, error) { return e.Weight, nil }

// toFloat converts the numeric kinds commonly stored in metadata.
func toFloat(v interface{}) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	default:
		return 0, false
	}
}

// validate rejects graphs on which modularity is undefined, before any work begins.
//
// Errors:
//   - ErrModularityUndefined: directed default or any directed edge.
//   - ErrNegativeWeight / ErrInvalidWeight: bad resolved weights.
//
// Zero total weight is detected on the snapshot, see newSnapshot.
func validate(g *core.Graph, wf weightFunc) error {
	if g.Directed() || g.HasDirectedEdges() {
		return fmt.Errorf("%w: graph is directed", ErrModularityUndefined)
	}
	for _, e := range g.Edges() {
		w, err := wf(e)
		if err != nil {
			return err
		}
		if w < 0 {
			return fmt.Errorf("%w: edge %s (%s–%s) weight %g", ErrNegativeWeight, e.ID, e.From, e.To, w)
		}
	}

	return nil
}
