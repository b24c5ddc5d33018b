// File: betweenness.go
// Role: Brandes edge betweenness over a simple undirected view.
// Determinism:
//   - Sources are processed in vertex order; neighbours in adjacency order.
//     Sums are accumulated in a fixed order, so equal inputs give equal bits.
// Complexity:
//   - Unweighted: O(V·E). Weighted: O(V·E log V).

package girvannewman

import (
	"container/heap"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/lvlouvain/core"
)

// hop is one adjacency entry of the view.
type hop struct {
	to     int
	length float64
	edge   int // index into view.edges
}

// view is a dense simple undirected projection: parallel edges collapse to
// the shortest one, self-loops and orientation are dropped.
type view struct {
	ids     []string
	adj     [][]hop
	edges   []Pair
	lengths []float64
}

// newView projects g. With weighted, Edge.Weight is the length (unweighted
// graphs use 1); otherwise every edge has length 1.
func newView(g *core.Graph, weighted bool) (*view, error) {
	ids := g.Vertices()
	index := make(map[string]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	lengths := make(map[Pair]float64)
	for _, e := range g.Edges() {
		if e.IsLoop() {
			continue
		}
		l := 1.0
		if weighted && g.Weighted() {
			l = e.Weight
			if l < 0 {
				return nil, fmt.Errorf("%w: edge %s weight %g", ErrNegativeWeight, e.ID, l)
			}
		}
		p := NewPair(e.From, e.To)
		if old, ok := lengths[p]; !ok || l < old {
			lengths[p] = l
		}
	}

	pairs := make([]Pair, 0, len(lengths))
	for p := range lengths {
		pairs = append(pairs, p)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].U != pairs[j].U {
			return pairs[i].U < pairs[j].U
		}
		return pairs[i].V < pairs[j].V
	})

	v := &view{ids: ids, adj: make([][]hop, len(ids)), edges: pairs, lengths: make([]float64, len(pairs))}
	for k, p := range pairs {
		u, w := index[p.U], index[p.V]
		l := lengths[p]
		v.lengths[k] = l
		v.adj[u] = append(v.adj[u], hop{to: w, length: l, edge: k})
		v.adj[w] = append(v.adj[w], hop{to: u, length: l, edge: k})
	}

	return v, nil
}

// EdgeBetweenness returns the normalised betweenness of every edge of g
// treated as a simple undirected graph: the fraction of shortest paths
// between vertex pairs that cross the edge, scaled by 2/(n(n−1)).
//
// Errors: ErrGraphNil, ErrNegativeWeight (weighted only).
func EdgeBetweenness(g *core.Graph, weighted bool) (map[Pair]float64, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	v, err := newView(g, weighted)
	if err != nil {
		return nil, err
	}
	scores := v.betweenness(weighted)
	out := make(map[Pair]float64, len(scores))
	for k, p := range v.edges {
		out[p] = scores[k]
	}

	return out, nil
}

// betweenness runs Brandes from every source and returns per-edge scores.
func (v *view) betweenness(weighted bool) []float64 {
	n := len(v.ids)
	score := make([]float64, len(v.edges))
	st := newSSSP(n)
	for s := 0; s < n; s++ {
		if weighted {
			st.dijkstra(v, s)
		} else {
			st.bfs(v, s)
		}
		st.accumulate(score)
	}

	if n > 1 {
		scale := 1 / float64(n*(n-1))
		for k := range score {
			score[k] *= scale
		}
	}

	return score
}

// pred is a predecessor on a shortest path together with the connecting edge.
type pred struct {
	from int
	edge int
}

// sssp holds reusable single-source shortest-path state.
type sssp struct {
	order []int // vertices in non-decreasing distance
	preds [][]pred
	sigma []float64
	dist  []float64
	delta []float64
}

func newSSSP(n int) *sssp {
	return &sssp{
		order: make([]int, 0, n),
		preds: make([][]pred, n),
		sigma: make([]float64, n),
		dist:  make([]float64, n),
		delta: make([]float64, n),
	}
}

func (st *sssp) reset(s int) {
	st.order = st.order[:0]
	for i := range st.dist {
		st.preds[i] = st.preds[i][:0]
		st.sigma[i] = 0
		st.dist[i] = math.Inf(1)
		st.delta[i] = 0
	}
	st.sigma[s] = 1
	st.dist[s] = 0
}

// bfs counts shortest paths by hops.
func (st *sssp) bfs(v *view, s int) {
	st.reset(s)
	queue := []int{s}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		st.order = append(st.order, u)
		for _, h := range v.adj[u] {
			w := h.to
			if math.IsInf(st.dist[w], 1) {
				st.dist[w] = st.dist[u] + 1
				queue = append(queue, w)
			}
			if st.dist[w] == st.dist[u]+1 {
				st.sigma[w] += st.sigma[u]
				st.preds[w] = append(st.preds[w], pred{from: u, edge: h.edge})
			}
		}
	}
}

// dijkstra counts shortest paths by summed length, with a lazy min-heap.
func (st *sssp) dijkstra(v *view, s int) {
	st.reset(s)
	done := make([]bool, len(v.ids))
	pq := &distPQ{{node: s, dist: 0}}
	for pq.Len() > 0 {
		item := heap.Pop(pq).(distItem)
		u := item.node
		if done[u] || item.dist > st.dist[u] {
			continue
		}
		done[u] = true
		st.order = append(st.order, u)
		for _, h := range v.adj[u] {
			w := h.to
			alt := st.dist[u] + h.length
			switch {
			case alt < st.dist[w]:
				st.dist[w] = alt
				st.sigma[w] = st.sigma[u]
				st.preds[w] = append(st.preds[w][:0], pred{from: u, edge: h.edge})
				heap.Push(pq, distItem{node: w, dist: alt})
			case alt == st.dist[w] && !done[w]:
				st.sigma[w] += st.sigma[u]
				st.preds[w] = append(st.preds[w], pred{from: u, edge: h.edge})
			}
		}
	}
}

// accumulate back-propagates dependencies in reverse distance order.
func (st *sssp) accumulate(score []float64) {
	for i := len(st.order) - 1; i >= 0; i-- {
		w := st.order[i]
		coeff := (1 + st.delta[w]) / st.sigma[w]
		for _, p := range st.preds[w] {
			c := st.sigma[p.from] * coeff
			score[p.edge] += c
			st.delta[p.from] += c
		}
	}
}

// distItem is a heap entry; stale entries are skipped on pop.
type distItem struct {
	node int
	dist float64
}

// distPQ is a min-heap of distItem ordered by dist, then node.
type distPQ []distItem

func (pq distPQ) Len() int { return len(pq) }
func (pq distPQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].node < pq[j].node
}
func (pq distPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *distPQ) Push(x interface{}) { *pq = append(*pq, x.(distItem)) }
func (pq *distPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
