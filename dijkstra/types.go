// Package dijkstra computes least-cost routes over a pedestrian network.
//
// It ignores visit counters entirely, so its answer is the baseline the
// diverse routes are measured against: the best route a walker could take
// when nobody cares about variety.
//
// Metrics:
//
//	– MetricSearchCost: weight + travel time per segment (the engine's cost).
//	– MetricDistance:   weight only.
//	– MetricTravelTime: travel time only.
//
// Errors (sentinel):
//
//	– ErrNilGraph       if the provided graph pointer is nil.
//	– ErrEmptySource    if the source ID is empty.
//	– ErrVertexNotFound if the source or target vertex does not exist.
//	– ErrUnreachable    if no route joins source and target.
//	– ErrBadMaxCost     if MaxCost < 0.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrVertexNotFound indicates that an endpoint does not exist in the graph.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrUnreachable indicates that the target cannot be reached from the source.
	ErrUnreachable = errors.New("dijkstra: target unreachable")

	// ErrBadMaxCost indicates that MaxCost was set to a negative value.
	ErrBadMaxCost = errors.New("dijkstra: MaxCost must be non-negative")
)

// Metric selects the per-segment cost Dijkstra minimizes.
type Metric int

const (
	// MetricSearchCost is weight + travel time, the cost the diverse engine ranks by.
	MetricSearchCost Metric = iota

	// MetricDistance is the segment weight.
	MetricDistance

	// MetricTravelTime is the segment travel time.
	MetricTravelTime
)

// String returns the metric name.
func (m Metric) String() string {
	switch m {
	case MetricSearchCost:
		return "search_cost"
	case MetricDistance:
		return "distance"
	case MetricTravelTime:
		return "travel_time"
	default:
		return "unknown"
	}
}

// Options configures the behavior of the Dijkstra algorithm.
//
// Metric  – which segment attribute to minimize. Default MetricSearchCost.
// MaxCost – vertices farther than this are not settled. Must be ≥ 0.
//
//	Default is +Inf (no cap).
type Options struct {
	Metric  Metric
	MaxCost float64
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithMetric selects the metric to minimize.
func WithMetric(m Metric) Option {
	return func(o *Options) {
		o.Metric = m
	}
}

// WithMaxCost caps exploration at the given cost.
// Panics on negative input; option constructors validate early.
func WithMaxCost(max float64) Option {
	if max < 0 {
		panic(ErrBadMaxCost.Error())
	}

	return func(o *Options) {
		o.MaxCost = max
	}
}

// DefaultOptions returns Options with MetricSearchCost and no cost cap.
func DefaultOptions() Options {
	return Options{
		Metric:  MetricSearchCost,
		MaxCost: math.Inf(1),
	}
}
