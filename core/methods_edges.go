// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Weight/TravelTime/Neighbors/EdgeCount.
// Determinism:
//   - Neighbors() returns arcs in edge insertion order.
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package core

import "fmt"

// AddEdge inserts the undirected edge a—b with the given distance and travel
// time, mirroring it in both directions. Missing endpoints are created.
//
// Re-adding an existing edge overwrites its weight and travel time but keeps
// its original position in both neighbor lists.
//
// Steps:
//  1. Validate IDs, loops and non-negative attributes.
//  2. Ensure endpoints exist.
//  3. Store weight and travel time for a→b and b→a.
//  4. Append to adjacency lists on first insertion only.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(a, b string, weight, travelTime float64) error {
	// 1) Input validation
	if a == "" || b == "" {
		return ErrEmptyVertexID
	}
	if a == b {
		return fmt.Errorf("%w: %q", ErrLoopNotAllowed, a)
	}
	if weight < 0 || travelTime < 0 {
		return fmt.Errorf("%w: edge %s—%s weight=%g travel_time=%g", ErrNegativeWeight, a, b, weight, travelTime)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 2) Ensure vertices exist
	g.ensureVertex(a)
	g.ensureVertex(b)

	// 3) Store both directions
	_, existed := g.weights[a][b]
	g.weights[a][b], g.weights[b][a] = weight, weight
	g.travelTimes[a][b], g.travelTimes[b][a] = travelTime, travelTime

	// 4) Link adjacency once
	if !existed {
		g.adjacency[a] = append(g.adjacency[a], b)
		g.adjacency[b] = append(g.adjacency[b], a)
		g.edgeCount++
	}

	return nil
}

// HasEdge reports whether a—b exists.
func (g *Graph) HasEdge(a, b string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.weights[a][b]

	return ok
}

// Weight returns the distance of edge a—b.
//
// Errors:
//   - ErrEdgeNotFound if the edge does not exist.
func (g *Graph) Weight(a, b string) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	w, ok := g.weights[a][b]
	if !ok {
		return 0, fmt.Errorf("%w: %s—%s", ErrEdgeNotFound, a, b)
	}

	return w, nil
}

// TravelTime returns the walking time of edge a—b.
//
// Errors:
//   - ErrEdgeNotFound if the edge does not exist.
func (g *Graph) TravelTime(a, b string) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	t, ok := g.travelTimes[a][b]
	if !ok {
		return 0, fmt.Errorf("%w: %s—%s", ErrEdgeNotFound, a, b)
	}

	return t, nil
}

// Neighbors returns every arc leaving id, in insertion order.
// The returned slice is a fresh copy owned by the caller.
//
// Errors:
//   - ErrVertexNotFound if id is unknown.
//
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id string) ([]Arc, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	out := make([]Arc, 0, len(g.adjacency[id]))
	var to string
	for _, to = range g.adjacency[id] {
		out = append(out, Arc{To: to, Weight: g.weights[id][to], TravelTime: g.travelTimes[id][to]})
	}

	return out, nil
}

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}
