package diverse

import (
	"errors"
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

// Sentinel errors returned by the diverse package.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("diverse: graph is nil")

	// ErrUnknownNode indicates that the start or end vertex is not part of the graph.
	ErrUnknownNode = errors.New("diverse: unknown node")

	// ErrBadK indicates a non-positive number of requested paths.
	ErrBadK = errors.New("diverse: k must be at least 1")

	// ErrNoPath indicates that one frontier was exhausted before the two searches met.
	ErrNoPath = errors.New("diverse: no path between start and end")
)

// Path is one extracted route.
type Path struct {
	// Nodes is the vertex sequence from start to end (length ≥ 1).
	Nodes []string `json:"nodes"`

	// Cost is the search cost: Σ (weight + travel time) along Nodes.
	Cost float64 `json:"cost"`

	// Distance is Σ weight along Nodes.
	Distance float64 `json:"distance"`

	// TravelTime is Σ travel time along Nodes.
	TravelTime float64 `json:"travel_time"`
}

// Result holds the outcome of FindPaths.
type Result struct {
	// Unique lists distinct routes sorted ascending by Cost. Routes with equal
	// cost keep the order in which they were first extracted.
	Unique []Path `json:"unique"`

	// All lists every extracted route in extraction order, duplicates included.
	All []Path `json:"all"`
}

// Routes returns the node sequences of Unique, in order.
func (r *Result) Routes() [][]string {
	out := make([][]string, len(r.Unique))
	for i, p := range r.Unique {
		out[i] = p.Nodes
	}

	return out
}

// SearchStats describes the work done by one bidirectional search.
type SearchStats struct {
	Found    bool
	Pops     int // entries popped from both frontiers
	Pushes   int // entries pushed into both frontiers
	Settled  int // vertices settled by both sides
	Filtered int // arcs rejected by the fairness filter
	Duration time.Duration
}

// Observer receives SearchStats after every search. Implementations must be
// cheap; they run inline with the search loop.
type Observer interface {
	ObserveSearch(SearchStats)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(SearchStats)

// ObserveSearch calls f(st).
func (f ObserverFunc) ObserveSearch(st SearchStats) { f(st) }

// Options configures Search and FindPaths.
//
// Logger   – receives debug traces of every extraction. Defaults to a discarding logger.
// Observer – receives SearchStats of every search. Defaults to nil (disabled).
type Options struct {
	Logger   logrus.FieldLogger
	Observer Observer
}

// Option represents a functional option for Search and FindPaths.
type Option func(*Options)

// WithLogger routes extraction traces to log.
func WithLogger(log logrus.FieldLogger) Option {
	return func(o *Options) {
		if log != nil {
			o.Logger = log
		}
	}
}

// WithObserver registers obs to receive per-search statistics.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		o.Observer = obs
	}
}

// DefaultOptions returns Options with a discarding logger and no observer.
func DefaultOptions() Options {
	silent := logrus.New()
	silent.SetOutput(io.Discard)

	return Options{Logger: silent}
}
