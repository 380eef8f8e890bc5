// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only snapshot of catalog sizes and counter usage.
// Policy:
//   - No algorithms or hidden state here.

package core

// GraphStats is a point-in-time summary of a Graph.
type GraphStats struct {
	VertexCount       int `json:"vertex_count"`
	EdgeCount         int `json:"edge_count"`
	VisitedArcs       int `json:"visited_arcs"`
	TotalVisitCounter int `json:"total_visit_counter"`
}

// Stats produces a read-only snapshot of catalog sizes and counter usage.
//
// Implementation:
//   - Stage 1: Snapshot vertex and edge counts under the read lock.
//   - Stage 2: Summarize the visit-count table (not lock-protected, see package doc).
//
// Complexity:
//   - Time O(|visits|), Space O(1).
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	st := GraphStats{VertexCount: len(g.vertices), EdgeCount: g.edgeCount}
	g.mu.RUnlock()
	st.VisitedArcs = g.visits.Len()
	st.TotalVisitCounter = g.visits.Total()

	return st
}
