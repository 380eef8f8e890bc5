package diversity

import (
	"errors"
	"fmt"
)

// ErrEdgeNotFound indicates that a route uses an edge the graph does not contain.
var ErrEdgeNotFound = errors.New("diversity: route edge not in graph")

// Kind tags the two record variants produced by Evaluate.
type Kind int

const (
	// KindPairwise tags a PairwiseMetric.
	KindPairwise Kind = iota
	// KindAverage tags an AverageMetric.
	KindAverage
)

// String returns "pairwise" or "average".
func (k Kind) String() string {
	switch k {
	case KindPairwise:
		return "pairwise"
	case KindAverage:
		return "average"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Record is one row of an evaluation: either a *PairwiseMetric or an *AverageMetric.
type Record interface {
	Kind() Kind
	Label() string
}

// Metrics is the four-metric tuple shared by both record kinds.
type Metrics struct {
	CostDiffPct       float64 `json:"cost_diff_pct"`
	OverlapPct        float64 `json:"overlap_pct"`
	TravelTimeDiffPct float64 `json:"travel_time_diff_pct"`
	DetourFactor      float64 `json:"detour_factor"`
}

// PairwiseMetric compares route Alt against route Main.
// Main and Alt are zero-based indices into the evaluated route list.
type PairwiseMetric struct {
	Main int `json:"main"`
	Alt  int `json:"alt"`
	Metrics
}

// Kind returns KindPairwise.
func (*PairwiseMetric) Kind() Kind { return KindPairwise }

// Label returns "Path i vs Path j" with one-based numbering.
func (m *PairwiseMetric) Label() string {
	return fmt.Sprintf("Path %d vs Path %d", m.Main+1, m.Alt+1)
}

// AverageMetric averages every pairwise metric involving route Path.
type AverageMetric struct {
	Path  int `json:"path"`
	Pairs int `json:"pairs"` // number of pairwise rows averaged
	Metrics
}

// Kind returns KindAverage.
func (*AverageMetric) Kind() Kind { return KindAverage }

// Label returns "Path i Averages" with one-based numbering.
func (m *AverageMetric) Label() string {
	return fmt.Sprintf("Path %d Averages", m.Path+1)
}

// Split separates records into their two typed lists, preserving order.
func Split(records []Record) ([]*PairwiseMetric, []*AverageMetric) {
	var (
		pairs []*PairwiseMetric
		avgs  []*AverageMetric
	)
	for _, r := range records {
		switch v := r.(type) {
		case *PairwiseMetric:
			pairs = append(pairs, v)
		case *AverageMetric:
			avgs = append(avgs, v)
		}
	}

	return pairs, avgs
}
