// Package pathdiv finds several distinct walking routes between two landmarks
// of a pedestrian network and measures how different they really are.
//
// The search engine (package diverse) is a bidirectional best-first search
// whose expansion is filtered by per-direction visit counters: only the
// least-used segments leaving a landmark are considered, so every round of
// extraction is pushed toward streets the previous rounds did not walk.
// Package diversity scores the result pairwise (cost difference, travel time
// difference, shared segments, detour factor) and package report assembles
// both into tables or JSON, next to the plain shortest route from package
// dijkstra.
//
// Layout:
//
//	core/      - undirected network with distance, travel time and coordinates
//	diverse/   - the fairness-filtered K-route extraction
//	diversity/ - route comparison metrics
//	report/    - segment breakdowns, baseline, text tables
//	dijkstra/  - least-cost baseline route
//	bfs/       - reachability and connected components
//	builder/   - synthetic grids and rings for tests and demos
//	netfile/   - text and YAML/JSON network files
//	cmd/pathdiv - CLI: route, serve, generate
//	internal/  - config, logging, metrics and the HTTP server
package pathdiv
