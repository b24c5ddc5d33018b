// File: bfs.go
// Role: Breadth-first traversal returning hop distances and visit order.
// Determinism:
//   - Neighbors are expanded in core.NeighborIDs order (lex asc).
// Concurrency:
//   - Read-only on the graph; independent runs may share a graph.

package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvlouvain/core"
)

// frontierItem pairs a vertex ID with its BFS depth.
type frontierItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    BFSOptions
	ctx     context.Context
	queue   []frontierItem
	visited map[string]bool
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from startID.
// Edge weights are ignored: distances count hops.
//
// Errors: ErrGraphNil, ErrStartVertexNotFound, ErrNeighbors, ctx.Err() on cancellation, or a wrapped OnVisit error.
func BFS(g *core.Graph, startID string, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]frontierItem, 0, n),
		visited: make(map[string]bool, n),
		res: &BFSResult{
			Order: make([]string, 0, n),
			Depth: make(map[string]int, n),
		},
	}
	w.push(startID, 0)

	return w.res, w.loop()
}

// push marks id visited at depth d and enqueues it.
func (w *walker) push(id string, d int) {
	w.visited[id] = true
	w.res.Depth[id] = d
	w.queue = append(w.queue, frontierItem{id: id, depth: d})
}

// loop drains the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
		}
		if err := w.expand(item); err != nil {
			return err
		}
	}

	return nil
}

// expand enqueues every unseen, unfiltered neighbor.
func (w *walker) expand(item frontierItem) error {
	neighbors, err := w.graph.NeighborIDs(item.id)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrNeighbors, item.id, err)
	}
	next := item.depth + 1
	for _, nbr := range neighbors {
		if w.visited[nbr] || !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		w.push(nbr, next)
	}

	return nil
}
