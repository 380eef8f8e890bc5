package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/pathdiv/core"
)

// Dijkstra computes least costs from source to every vertex of g under the
// configured Metric.
//
// Returns:
//
//   - dist: vertex ID → least cost (+Inf if unreachable or beyond MaxCost).
//   - prev: vertex ID → predecessor on a least-cost route, for every reached
//     vertex except source.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. source must be non-empty (ErrEmptySource).
//  3. g must contain source (ErrVertexNotFound).
//
// Ties are broken by vertex ID so results are deterministic.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, source string, opts ...Option) (map[string]float64, map[string]string, error) {
	// 1) Build Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate input.
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if source == "" {
		return nil, nil, ErrEmptySource
	}
	if !g.HasVertex(source) {
		return nil, nil, fmt.Errorf("%w: %q", ErrVertexNotFound, source)
	}

	// 3) Run.
	vertices := g.Vertices()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]float64, len(vertices)),
		prev:    make(map[string]string, len(vertices)),
		visited: make(map[string]bool, len(vertices)),
		pq:      make(nodePQ, 0, len(vertices)),
	}
	r.init(vertices, source)
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	return r.dist, r.prev, nil
}

// ShortestPath returns a least-cost route from source to target and its cost.
//
// Errors:
//   - everything Dijkstra returns.
//   - ErrVertexNotFound if target is unknown.
//   - ErrUnreachable if target is not reached within MaxCost.
func ShortestPath(g *core.Graph, source, target string, opts ...Option) ([]string, float64, error) {
	if g != nil && source != "" && !g.HasVertex(target) {
		return nil, 0, fmt.Errorf("%w: %q", ErrVertexNotFound, target)
	}
	dist, prev, err := Dijkstra(g, source, opts...)
	if err != nil {
		return nil, 0, err
	}
	if math.IsInf(dist[target], 1) {
		return nil, 0, fmt.Errorf("%w: %q from %q", ErrUnreachable, target, source)
	}

	// Walk predecessors back to source, then reverse.
	path := []string{target}
	for cur := target; cur != source; {
		cur = prev[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, dist[target], nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph        // read-only within Dijkstra
	options Options            // metric and cap
	dist    map[string]float64 // vertex ID → best cost so far
	prev    map[string]string  // vertex ID → predecessor
	visited map[string]bool    // finalized vertices
	pq      nodePQ             // lazy min-heap
}

// init sets every distance to +Inf and queues source at 0.
func (r *runner) init(vertices []string, source string) {
	for _, v := range vertices {
		r.dist[v] = math.Inf(1)
	}
	r.dist[source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: source, dist: 0})
}

// process repeatedly settles the cheapest queued vertex and relaxes its arcs
// until the heap is empty. Entries above MaxCost are never queued, so the cap
// needs no check here.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		// Stale entry.
		if r.visited[u] {
			continue
		}
		r.visited[u] = true

		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax improves the cost of every neighbor of the settled vertex u.
func (r *runner) relax(u string) error {
	arcs, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}
	for _, a := range arcs {
		if r.visited[a.To] {
			continue
		}
		newDist := r.dist[u] + r.cost(a)
		if newDist > r.options.MaxCost || newDist >= r.dist[a.To] {
			continue
		}
		r.dist[a.To] = newDist
		r.prev[a.To] = u
		heap.Push(&r.pq, &nodeItem{id: a.To, dist: newDist})
	}

	return nil
}

// cost returns the metric value of one arc.
func (r *runner) cost(a core.Arc) float64 {
	switch r.options.Metric {
	case MetricDistance:
		return a.Weight
	case MetricTravelTime:
		return a.TravelTime
	default:
		return a.Weight + a.TravelTime
	}
}

// nodeItem is a queued vertex with the cost it was queued at.
type nodeItem struct {
	id   string
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then id.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
