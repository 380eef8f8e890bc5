package diversity

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pathdiv/core"
)

// Evaluate computes the pairwise and per-route average metrics of routes.
//
// Records are ordered: every PairwiseMetric (i<j, row-major over the input
// order) followed by one AverageMetric per route in input order.
//
// Errors:
//   - ErrEdgeNotFound (wrapped) if a route uses an edge missing from g.
//
// Complexity:
//   - Time O(R² · L) for R routes of at most L hops; Space O(R · L).
func Evaluate(routes [][]string, g *core.Graph) ([]Record, error) {
	// 1) Profile each route once.
	profiles := make([]profile, len(routes))
	for i, nodes := range routes {
		p, err := newProfile(g, nodes)
		if err != nil {
			return nil, fmt.Errorf("route %d: %w", i+1, err)
		}
		profiles[i] = p
	}

	// 2) Pairwise rows and per-route accumulators.
	n := len(profiles)
	sums := make([]Metrics, n)
	counts := make([]int, n)
	records := make([]Record, 0, n*(n-1)/2+n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			m := compare(&profiles[i], &profiles[j])
			records = append(records, &PairwiseMetric{Main: i, Alt: j, Metrics: m})
			sums[i].add(m)
			sums[j].add(m)
			counts[i]++
			counts[j]++
		}
	}

	// 3) Averages; no partner means all zeros.
	for i := 0; i < n; i++ {
		records = append(records, &AverageMetric{Path: i, Pairs: counts[i], Metrics: sums[i].div(counts[i])})
	}

	return records, nil
}

// PathCost returns the distance-only cost of a route.
func PathCost(g *core.Graph, nodes []string) (float64, error) {
	w, err := g.PathWeight(nodes)
	if err != nil {
		return 0, wrapEdge(err)
	}

	return w, nil
}

// PathTravelTime returns the summed travel time of a route.
func PathTravelTime(g *core.Graph, nodes []string) (float64, error) {
	t, err := g.PathTravelTime(nodes)
	if err != nil {
		return 0, wrapEdge(err)
	}

	return t, nil
}

// CostDifference returns (dist(alt) − dist(main)) / dist(main) · 100, or 0
// when dist(main) is 0.
func CostDifference(g *core.Graph, main, alt []string) (float64, error) {
	pm, pa, err := profilePair(g, main, alt)
	if err != nil {
		return 0, err
	}

	return percentDiff(pm.distance, pa.distance), nil
}

// TravelTimeDifference returns (time(alt) − time(main)) / time(main) · 100, or
// 0 when time(main) is 0.
func TravelTimeDifference(g *core.Graph, main, alt []string) (float64, error) {
	pm, pa, err := profilePair(g, main, alt)
	if err != nil {
		return 0, err
	}

	return percentDiff(pm.travelTime, pa.travelTime), nil
}

// Overlap returns the share of dist(alt) covered by edges also used by main,
// as a percentage, or 0 when dist(alt) is 0.
func Overlap(g *core.Graph, main, alt []string) (float64, error) {
	pm, pa, err := profilePair(g, main, alt)
	if err != nil {
		return 0, err
	}

	return overlap(&pm, &pa), nil
}

// DetourFactor returns dist(alt) / dist(main), or 0 when dist(main) is 0.
func DetourFactor(g *core.Graph, main, alt []string) (float64, error) {
	pm, pa, err := profilePair(g, main, alt)
	if err != nil {
		return 0, err
	}

	return ratio(pa.distance, pm.distance), nil
}

// profile caches the sums and edge set of one route.
type profile struct {
	distance   float64
	travelTime float64
	edges      map[edgeKey]float64 // undirected edge → weight
	order      []edgeKey           // first-seen order of edges
}

// edgeKey identifies an undirected edge independent of traversal direction.
type edgeKey struct{ a, b string }

func newEdgeKey(u, v string) edgeKey {
	if v < u {
		u, v = v, u
	}

	return edgeKey{a: u, b: v}
}

func newProfile(g *core.Graph, nodes []string) (profile, error) {
	p := profile{edges: make(map[edgeKey]float64, len(nodes))}
	for i := 0; i+1 < len(nodes); i++ {
		w, err := g.Weight(nodes[i], nodes[i+1])
		if err != nil {
			return profile{}, wrapEdge(err)
		}
		t, err := g.TravelTime(nodes[i], nodes[i+1])
		if err != nil {
			return profile{}, wrapEdge(err)
		}
		p.distance += w
		p.travelTime += t
		k := newEdgeKey(nodes[i], nodes[i+1])
		if _, ok := p.edges[k]; !ok {
			p.edges[k] = w
			p.order = append(p.order, k)
		}
	}

	return p, nil
}

func profilePair(g *core.Graph, main, alt []string) (profile, profile, error) {
	pm, err := newProfile(g, main)
	if err != nil {
		return profile{}, profile{}, err
	}
	pa, err := newProfile(g, alt)
	if err != nil {
		return profile{}, profile{}, err
	}

	return pm, pa, nil
}

func compare(main, alt *profile) Metrics {
	return Metrics{
		CostDiffPct:       percentDiff(main.distance, alt.distance),
		OverlapPct:        overlap(main, alt),
		TravelTimeDiffPct: percentDiff(main.travelTime, alt.travelTime),
		DetourFactor:      ratio(alt.distance, main.distance),
	}
}

// overlap sums each shared undirected edge once.
func overlap(main, alt *profile) float64 {
	if alt.distance == 0 {
		return 0
	}
	var shared float64
	for _, k := range main.order {
		if _, ok := alt.edges[k]; ok {
			shared += main.edges[k]
		}
	}

	return shared / alt.distance * 100
}

func percentDiff(base, other float64) float64 {
	if base == 0 {
		return 0
	}

	return (other - base) / base * 100
}

func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}

	return num / den
}

func (m *Metrics) add(o Metrics) {
	m.CostDiffPct += o.CostDiffPct
	m.OverlapPct += o.OverlapPct
	m.TravelTimeDiffPct += o.TravelTimeDiffPct
	m.DetourFactor += o.DetourFactor
}

func (m Metrics) div(n int) Metrics {
	if n == 0 {
		return Metrics{}
	}
	d := float64(n)

	return Metrics{
		CostDiffPct:       m.CostDiffPct / d,
		OverlapPct:        m.OverlapPct / d,
		TravelTimeDiffPct: m.TravelTimeDiffPct / d,
		DetourFactor:      m.DetourFactor / d,
	}
}

func wrapEdge(err error) error {
	if errors.Is(err, core.ErrEdgeNotFound) {
		return fmt.Errorf("%w: %v", ErrEdgeNotFound, err)
	}

	return err
}
