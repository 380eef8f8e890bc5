// Package diverse extracts K mutually different routes between two vertices of
// a pedestrian network.
//
// Overview:
//
//   - Each extraction runs one bidirectional best-first search: a forward
//     frontier rooted at the start vertex and a backward frontier rooted at the
//     end vertex, both keyed by the accumulated search cost
//     (edge weight + edge travel time).
//   - The frontiers alternate one pop each. The search returns on the first
//     vertex that one side pops while the other side has already settled it,
//     merging both partial routes.
//   - Neighbor expansion is gated by a fairness filter: from a vertex u, an
//     arc u→v is pushed only if its visit counter is not larger than the
//     counter of any other arc leaving u. The least reused arcs win.
//   - After every successful extraction the counters of the extracted route
//     are incremented in both directions, biasing the next search away from
//     it. This is the only diversification mechanism; there is no explicit
//     exclusion list.
//
// The search is a heuristic. It does not apply the classical
// bidirectional-Dijkstra stopping rule (stop once the two frontier minima sum
// past the best merge), so a merge may be more expensive than the best route
// under the current filter. FindPaths keeps that behavior on purpose.
//
// Costs:
//
//   - Path.Cost is the search cost: weight + travel time summed over the route.
//   - Path.Distance and Path.TravelTime are the separate distance-only and
//     time-only sums, used for reporting and by package diversity.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:    a nil *core.Graph was passed.
//   - ErrUnknownNode: the start or end vertex is not in the graph.
//   - ErrBadK:        k < 1.
//   - ErrNoPath:      returned by Search when the frontiers are exhausted.
//     FindPaths treats it as the end of the extraction loop, not as an error.
//
// API reference:
//
//	func Search(g *core.Graph, start, end string, opts ...Option) (Path, error)
//	func FindPaths(g *core.Graph, start, end string, k int, opts ...Option) (*Result, error)
//
// Side effects:
//
//   - FindPaths permanently increments g.Visits(). Repeated calls on the same
//     Graph keep steering away from earlier routes. Call g.ResetVisits() or work
//     on g.Clone() for repeatable, independent runs.
//
// Thread safety:
//
//   - Not safe for concurrent calls on the same *core.Graph: the visit-count
//     table is read and written without locks. Serialize access per Graph, or
//     give each caller its own clone.
//
// Complexity (per search):
//
//   - Time:  O((V + E) log E) heap work plus O(deg) fairness scans per settled vertex.
//   - Space: O(E) arena entries; routes are rebuilt once from parent indices.
package diverse
