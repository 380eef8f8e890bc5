// Package core defines the Graph, Vertex and Arc types of the pedestrian
// network, together with the sentinel errors returned by graph operations.
//
// This file declares Vertex, Arc, Graph, the sentinel errors, and the
// NewGraph constructor.
//
// Errors:
//
//	ErrEmptyVertexID   - vertex ID is the empty string.
//	ErrVertexNotFound  - requested vertex does not exist.
//	ErrEdgeNotFound    - requested edge does not exist.
//	ErrNegativeWeight  - negative distance or travel time.
//	ErrLoopNotAllowed  - edge from a vertex to itself.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrNegativeWeight indicates a negative distance or travel time.
	ErrNegativeWeight = errors.New("core: negative edge weight or travel time")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Vertex represents a landmark or intersection of the pedestrian network.
//
// X and Y are map coordinates used by renderers only; the search engine never
// reads them. HasPosition distinguishes (0,0) from "no coordinates known".
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// X, Y are the drawing coordinates of the vertex.
	X, Y float64

	// HasPosition reports whether X and Y were provided.
	HasPosition bool
}

// Arc is one direction of an undirected edge as seen from its tail vertex.
type Arc struct {
	// To is the neighbor vertex ID.
	To string

	// Weight is the distance of the segment.
	Weight float64

	// TravelTime is the walking time of the segment.
	TravelTime float64
}

// Graph is the undirected, weighted pedestrian network.
//
// weights and travelTimes always share the same key structure, and both are
// symmetric: weights[a][b] == weights[b][a]. adjacency keeps the neighbor
// insertion order per vertex so iteration is deterministic.
type Graph struct {
	mu sync.RWMutex // guards vertices, weights, travelTimes and adjacency

	vertices    map[string]*Vertex
	weights     map[string]map[string]float64
	travelTimes map[string]map[string]float64
	adjacency   map[string][]string
	edgeCount   int

	// visits is shared mutable state of the diversification engine;
	// it is not guarded by mu.
	visits *VisitCounts
}

// NewGraph creates an empty Graph with a zeroed visit-count table.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		vertices:    make(map[string]*Vertex),
		weights:     make(map[string]map[string]float64),
		travelTimes: make(map[string]map[string]float64),
		adjacency:   make(map[string][]string),
		visits:      NewVisitCounts(),
	}
}
