// File: methods_clone.go
// Role: Cloning graph instances.
// Determinism:
//   - Clone preserves neighbor insertion order, so searches on a clone behave
//     exactly like searches on the source.
// Concurrency:
//   - Read lock on the source for snapshotting; the source is not mutated.

package core

// Clone returns a deep copy of the Graph: vertices, edges, adjacency order
// and visit counters.
//
// Use Clone to give each session or request its own counter state.
//
// Complexity: O(V + E + |visits|)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph()
	clone.edgeCount = g.edgeCount

	// Copy vertices and attribute maps
	var (
		id string
		v  *Vertex
	)
	for id, v = range g.vertices {
		cp := *v
		clone.vertices[id] = &cp
		clone.weights[id] = copyFloatMap(g.weights[id])
		clone.travelTimes[id] = copyFloatMap(g.travelTimes[id])
	}
	// Copy adjacency order
	for id, nbrs := range g.adjacency {
		clone.adjacency[id] = append([]string(nil), nbrs...)
	}
	clone.visits = g.visits.Clone()

	return clone
}

// CloneFresh returns a deep copy with all visit counters at zero.
func (g *Graph) CloneFresh() *Graph {
	clone := g.Clone()
	clone.ResetVisits()

	return clone
}

func copyFloatMap(src map[string]float64) map[string]float64 {
	dst := make(map[string]float64, len(src))
	for k, v := range src {
		dst[k] = v
	}

	return dst
}
