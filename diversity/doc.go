// Package diversity quantifies how different a set of routes is.
//
// For every unordered pair (main, alt) with main before alt in the input order,
// four metrics are computed:
//
//   - Cost difference:        (dist(alt) − dist(main)) / dist(main) · 100
//   - Travel-time difference: (time(alt) − time(main)) / time(main) · 100
//   - Overlap:                Σ weight of edges shared by both routes / dist(alt) · 100
//   - Detour factor:          dist(alt) / dist(main)
//
// dist is the distance-only cost (Σ edge weight) and time is Σ edge travel
// time; the combined search cost of package diverse is not used here.
// Shared edges are undirected: a→b on one route matches b→a on the other.
//
// Every ratio whose denominator is zero is reported as 0. This is policy, not
// an error path: a zero-length baseline (start == end) compares as 0.
//
// After the pairwise rows, one average row per route averages each metric
// over all pairs involving that route. A route with no partner (single-route
// input) gets an all-zero average row with Pairs == 0.
//
// Evaluate never mutates the graph.
package diversity
