// Package core provides the in-memory pedestrian network consumed by the
// path-diversification engine.
//
// A Graph G = (V,E) is undirected and carries two symmetric attributes per edge:
//
//   - weight:      the distance of the segment (non-negative).
//   - travel time: the time needed to walk the segment (non-negative).
//
// Next to the immutable topology every Graph owns a VisitCounts table: a
// sparse per-direction counter that records how often an edge has been used
// by previously extracted paths. Entries are never created implicitly; an
// absent pair is an explicit, typed zero returned by VisitCounts.Get.
//
// Why a separate counter table?
//
//   - The diversification engine mutates only the counters; weights and
//     travel times stay untouched for the whole session.
//   - Counters accumulate across repeated searches on the same Graph, so a
//     caller that needs independent runs either calls ResetVisits or works
//     on a Clone.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error                     // O(1)
//	AddVertexAt(id string, x, y float64) error     // O(1)
//	HasVertex(id string) bool                      // O(1)
//	Vertices() []string                            // O(V log V), sorted
//
//	// Edge lifecycle
//	AddEdge(a, b string, weight, travelTime float64) error // O(deg) worst case
//	HasEdge(a, b string) bool                      // O(1)
//	Weight(a, b string) (float64, error)           // O(1)
//	TravelTime(a, b string) (float64, error)       // O(1)
//	Neighbors(id string) ([]Arc, error)            // O(deg), insertion order
//
//	// Visit counters
//	Visits() *VisitCounts
//	ResetVisits()
//
//	// Cloning
//	Clone() *Graph                                 // O(V + E + |visits|)
//
// Determinism:
//
//   - Vertices() is sorted lexicographically.
//   - Neighbors() preserves edge insertion order, which is the order the
//     loader read the network file in. The engine relies on it for
//     reproducible searches.
//
// Concurrency:
//
//   - Topology reads and writes are guarded by a sync.RWMutex.
//   - VisitCounts is NOT synchronized. A Graph used for diversification must
//     have a single owner at a time (one session, one request), or every
//     caller must work on its own Clone.
package core
