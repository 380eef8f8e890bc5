// Package report turns engine and evaluator output into presentation data:
// per-segment breakdowns, a serializable summary, and plain-text tables.
package report

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pathdiv/core"
	"github.com/katalvlaran/pathdiv/dijkstra"
	"github.com/katalvlaran/pathdiv/diverse"
	"github.com/katalvlaran/pathdiv/diversity"
)

// Segment is one hop of a route with running totals.
type Segment struct {
	From                 string  `json:"from"`
	To                   string  `json:"to"`
	Weight               float64 `json:"weight"`
	CumulativeWeight     float64 `json:"cumulative_weight"`
	TravelTime           float64 `json:"travel_time"`
	CumulativeTravelTime float64 `json:"cumulative_travel_time"`
}

// Route is a numbered path with its segment breakdown.
// Stretch is Cost divided by the baseline cost, 0 without a baseline.
type Route struct {
	Number int `json:"number"`
	diverse.Path
	Stretch  float64   `json:"stretch"`
	Segments []Segment `json:"segments"`
}

// Report is the complete answer to one diversification request.
type Report struct {
	Start     string                      `json:"start"`
	End       string                      `json:"end"`
	Requested int                         `json:"requested"`
	Baseline  *diverse.Path               `json:"baseline,omitempty"`
	Routes    []Route                     `json:"routes"`
	Pairwise  []*diversity.PairwiseMetric `json:"pairwise"`
	Averages  []*diversity.AverageMetric  `json:"averages"`
	Notice    string                      `json:"notice,omitempty"`
}

// Segments breaks nodes into hops with cumulative distance and time.
func Segments(g *core.Graph, nodes []string) ([]Segment, error) {
	out := make([]Segment, 0, len(nodes))
	var cumW, cumT float64
	for i := 0; i+1 < len(nodes); i++ {
		w, err := g.Weight(nodes[i], nodes[i+1])
		if err != nil {
			return nil, err
		}
		t, err := g.TravelTime(nodes[i], nodes[i+1])
		if err != nil {
			return nil, err
		}
		cumW += w
		cumT += t
		out = append(out, Segment{
			From: nodes[i], To: nodes[i+1],
			Weight: w, CumulativeWeight: cumW,
			TravelTime: t, CumulativeTravelTime: cumT,
		})
	}

	return out, nil
}

// Build assembles a Report from an extraction result and its evaluation.
// requested is the k the caller asked for; a shorter result gets a Notice.
// The baseline is the least search-cost route, found without visit counters.
func Build(g *core.Graph, start, end string, requested int, res *diverse.Result, records []diversity.Record) (*Report, error) {
	rep := &Report{Start: start, End: end, Requested: requested, Routes: make([]Route, 0, len(res.Unique))}

	baseline, err := baselineRoute(g, start, end)
	if err != nil {
		return nil, fmt.Errorf("report: baseline: %w", err)
	}
	rep.Baseline = baseline

	for i, p := range res.Unique {
		segs, err := Segments(g, p.Nodes)
		if err != nil {
			return nil, fmt.Errorf("report: route %d: %w", i+1, err)
		}
		r := Route{Number: i + 1, Path: p, Segments: segs}
		if baseline != nil && baseline.Cost > 0 {
			r.Stretch = p.Cost / baseline.Cost
		}
		rep.Routes = append(rep.Routes, r)
	}
	rep.Pairwise, rep.Averages = diversity.Split(records)
	rep.Notice = notice(len(rep.Routes), requested, baseline == nil)

	return rep, nil
}

// baselineRoute returns nil when end cannot be reached from start at all.
func baselineRoute(g *core.Graph, start, end string) (*diverse.Path, error) {
	nodes, cost, err := dijkstra.ShortestPath(g, start, end)
	if errors.Is(err, dijkstra.ErrUnreachable) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	p := &diverse.Path{Nodes: nodes, Cost: cost}
	if p.Distance, err = g.PathWeight(nodes); err != nil {
		return nil, err
	}
	if p.TravelTime, err = g.PathTravelTime(nodes); err != nil {
		return nil, err
	}

	return p, nil
}

func notice(found, requested int, disconnected bool) string {
	switch {
	case found == 0 && disconnected:
		return "No paths found. The endpoints are not connected."
	case found == 0:
		return "No paths found."
	case found < requested:
		return fmt.Sprintf("No more paths found. Only %d path(s) produced.", found)
	default:
		return ""
	}
}

// Diversify runs diverse.FindPaths on g, evaluates the unique routes and
// builds the Report. g's visit counters are updated like FindPaths does.
func Diversify(g *core.Graph, start, end string, k int, opts ...diverse.Option) (*Report, error) {
	res, err := diverse.FindPaths(g, start, end, k, opts...)
	if err != nil {
		return nil, err
	}
	records, err := diversity.Evaluate(res.Routes(), g)
	if err != nil {
		return nil, err
	}

	return Build(g, start, end, k, res, records)
}
