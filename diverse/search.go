package diverse

import (
	"fmt"
	"time"

	"github.com/katalvlaran/pathdiv/core"
)

// Search runs one fairness-filtered bidirectional search from start to end
// and returns the merged route. It reads the visit counters of g but never
// updates them; FindPaths does that between searches.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. start and end must exist in g (ErrUnknownNode).
//
// Returns ErrNoPath when either frontier is exhausted before the sides meet.
//
// Complexity:
//
//   - Time:  O((V + E) log E)
//   - Space: O(E)
func Search(g *core.Graph, start, end string, opts ...Option) (Path, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := validateEndpoints(g, start, end); err != nil {
		return Path{}, err
	}

	return search(g, start, end, cfg)
}

// search runs one search on validated input and reports stats to the observer.
func search(g *core.Graph, start, end string, cfg Options) (Path, error) {
	r := &runner{
		g:      g,
		visits: g.Visits(),
		fwd:    newFrontier(start),
		bwd:    newFrontier(end),
	}
	began := time.Now()
	p, found, err := r.process()
	r.stats.Found = found
	r.stats.Duration = time.Since(began)
	if cfg.Observer != nil {
		cfg.Observer.ObserveSearch(r.stats)
	}
	if err != nil {
		return Path{}, err
	}
	if !found {
		return Path{}, ErrNoPath
	}

	// Reporting sums; every consecutive pair came from Neighbors, so these cannot fail.
	if p.Distance, err = g.PathWeight(p.Nodes); err != nil {
		return Path{}, err
	}
	if p.TravelTime, err = g.PathTravelTime(p.Nodes); err != nil {
		return Path{}, err
	}

	return p, nil
}

func validateEndpoints(g *core.Graph, start, end string) error {
	if g == nil {
		return ErrNilGraph
	}
	if !g.HasVertex(start) {
		return fmt.Errorf("%w: start %q", ErrUnknownNode, start)
	}
	if !g.HasVertex(end) {
		return fmt.Errorf("%w: end %q", ErrUnknownNode, end)
	}

	return nil
}

// runner holds the mutable state of a single bidirectional search.
type runner struct {
	g      *core.Graph       // the network; topology is read-only here
	visits *core.VisitCounts // shared counters, read-only during a search
	fwd    *frontier         // rooted at start
	bwd    *frontier         // rooted at end
	stats  SearchStats
}

// process alternates one forward and one backward step while both frontiers
// are non-empty.
//
// Loop termination conditions:
//
//   - A popped vertex is already settled by the opposite side: merge and return.
//   - Either frontier is empty at the top of the loop: no route.
func (r *runner) process() (Path, bool, error) {
	for r.fwd.Len() > 0 && r.bwd.Len() > 0 {
		// 1) Forward step.
		if p, ok, err := r.step(r.fwd, r.bwd, false); err != nil || ok {
			return p, ok, err
		}
		// 2) Backward step. The backward frontier was non-empty at the top of
		//    the loop and the forward step never touches it.
		if p, ok, err := r.step(r.bwd, r.fwd, true); err != nil || ok {
			return p, ok, err
		}
	}

	return Path{}, false, nil
}

// step pops the cheapest entry of self. If the opposite side has settled the
// vertex, the two partial routes are merged. Otherwise an unsettled vertex is
// settled and expanded; an already settled one is dropped as stale.
func (r *runner) step(self, other *frontier, backward bool) (Path, bool, error) {
	i := self.pop()
	r.stats.Pops++
	node := self.arena[i].node

	// 1) Meeting point: the opposite side already owns this vertex.
	if j, ok := other.settled[node]; ok {
		if backward {
			return r.merge(j, i), true, nil
		}

		return r.merge(i, j), true, nil
	}

	// 2) Stale duplicate on this side.
	if _, ok := self.settled[node]; ok {
		return Path{}, false, nil
	}

	// 3) Settle and expand.
	self.settled[node] = i
	r.stats.Settled++

	return Path{}, false, r.expand(self, i)
}

// expand pushes every arc leaving the vertex of arena entry i that passes the
// fairness filter: its visit counter must be ≤ the counter of every other arc
// leaving the same vertex.
func (r *runner) expand(f *frontier, i int) error {
	from := f.arena[i].node
	base := f.arena[i].cost

	arcs, err := r.g.Neighbors(from)
	if err != nil {
		return fmt.Errorf("diverse: failed to get neighbors of %q: %w", from, err)
	}
	if len(arcs) == 0 {
		return nil
	}

	// 1) Least-used counter among all arcs leaving from.
	counts := make([]int, len(arcs))
	least := 0
	for k, a := range arcs {
		counts[k] = r.visits.Get(from, a.To)
		if k == 0 || counts[k] < least {
			least = counts[k]
		}
	}

	// 2) Push only the least-used arcs.
	for k, a := range arcs {
		if counts[k] > least {
			r.stats.Filtered++
			continue
		}
		f.push(entry{node: a.To, parent: i, cost: base + a.Weight + a.TravelTime})
		r.stats.Pushes++
	}

	return nil
}

// merge joins forward entry fi and backward entry bi, which share a vertex.
// The forward part runs start → meet, the backward part continues from the
// vertex after meet to end.
func (r *runner) merge(fi, bi int) Path {
	head := r.fwd.route(fi) // meet … start
	tail := r.bwd.route(bi) // meet … end

	nodes := make([]string, 0, len(head)+len(tail)-1)
	for k := len(head) - 1; k >= 0; k-- {
		nodes = append(nodes, head[k])
	}
	nodes = append(nodes, tail[1:]...)

	return Path{Nodes: nodes, Cost: r.fwd.arena[fi].cost + r.bwd.arena[bi].cost}
}
