// File: dendrogram.go
// Role: Read-side API over the closed levels of a run.
// Determinism:
//   - Communities are listed in the contracted graph's Vertices() order.

package louvain

import (
	"fmt"

	"github.com/katalvlaran/lvlouvain/core"
)

// Dendrogram is the ordered sequence of levels produced by Louvain, finest first.
// Levels are never mutated after the run returns.
type Dendrogram struct {
	// RunID identifies the run in logs and metrics.
	RunID string

	// Nodes lists the original vertex IDs, lex asc.
	Nodes []string

	// Levels holds one entry per local-moving + contraction round.
	Levels []*Level
}

// Depth returns the number of levels.
func (d *Dendrogram) Depth() int { return len(d.Levels) }

// Level returns level i or ErrLevelOutOfRange.
func (d *Dendrogram) Level(i int) (*Level, error) {
	if i < 0 || i >= len(d.Levels) {
		return nil, fmt.Errorf("%w: %d (depth %d)", ErrLevelOutOfRange, i, len(d.Levels))
	}

	return d.Levels[i], nil
}

// Final returns the coarsest level, or ErrLevelOutOfRange on an empty dendrogram.
func (d *Dendrogram) Final() (*Level, error) { return d.Level(len(d.Levels) - 1) }

// Flatten composes the partitions of levels 0..i and maps every original
// node to its community vertex ID at level i.
//
// Complexity: O((i+1)·V).
func (d *Dendrogram) Flatten(i int) (map[string]string, error) {
	if _, err := d.Level(i); err != nil {
		return nil, err
	}
	out := make(map[string]string, len(d.Nodes))
	for _, id := range d.Nodes {
		c := d.Levels[0].Partition[id]
		for j := 1; j <= i; j++ {
			c = d.Levels[j].Partition[c]
		}
		out[id] = c
	}

	return out, nil
}

// Communities returns the member sets of level i, each sorted, read from the
// MembersKey metadata of the level's vertices.
func (d *Dendrogram) Communities(i int) ([][]string, error) {
	lvl, err := d.Level(i)
	if err != nil {
		return nil, err
	}
	ids := lvl.Graph.Vertices()
	out := make([][]string, 0, len(ids))
	for _, id := range ids {
		members, err := Members(lvl.Graph, id)
		if err != nil {
			return nil, err
		}
		out = append(out, append([]string(nil), members...))
	}

	return out, nil
}

// Best returns the level with the highest modularity; the finest wins ties.
// An empty dendrogram yields ErrLevelOutOfRange.
func (d *Dendrogram) Best() (*Level, error) {
	best, err := d.Level(0)
	if err != nil {
		return nil, err
	}
	for _, lvl := range d.Levels[1:] {
		if lvl.Modularity > best.Modularity {
			best = lvl
		}
	}

	return best, nil
}

// Subgraph returns the subgraph of the original graph g induced by the
// members of community at level i.
func (d *Dendrogram) Subgraph(g *core.Graph, i int, community string) (*core.Graph, error) {
	lvl, err := d.Level(i)
	if err != nil {
		return nil, err
	}
	members, err := Members(lvl.Graph, community)
	if err != nil {
		return nil, err
	}
	keep := make(map[string]bool, len(members))
	for _, id := range members {
		keep[id] = true
	}

	return core.InducedSubgraph(g, keep), nil
}

// Members returns the original node IDs behind a contracted vertex.
// The returned slice is shared with the level and must not be modified.
func Members(g *core.Graph, id string) ([]string, error) {
	v, err := g.Vertex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrCommunityNotFound, id)
	}
	members, ok := v.Metadata[MembersKey].([]string)
	if !ok {
		return nil, fmt.Errorf("%w: %q has no %s label", ErrCommunityNotFound, id, MembersKey)
	}

	return members, nil
}
