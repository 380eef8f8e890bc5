// File: visits.go
// Role: Sparse per-direction edge visit counters used as diversification feedback.
// Determinism:
//   - Get never allocates; absent pairs read as zero.
// Concurrency:
//   - Not synchronized. One owner at a time.

package core

// VisitCounts is a sparse table of directed edge counters.
//
// Absence of an entry means "zero visits" by contract, so a freshly created
// table and a table whose counters were all reset are indistinguishable.
type VisitCounts struct {
	counts map[string]map[string]int
}

// NewVisitCounts returns an empty counter table.
func NewVisitCounts() *VisitCounts {
	return &VisitCounts{counts: make(map[string]map[string]int)}
}

// Get returns the counter of from→to, or 0 when it was never incremented.
// Complexity: O(1).
func (vc *VisitCounts) Get(from, to string) int {
	return vc.counts[from][to]
}

// Increment adds one visit to the directed pair from→to.
// Complexity: O(1) amortized.
func (vc *VisitCounts) Increment(from, to string) {
	inner, ok := vc.counts[from]
	if !ok {
		inner = make(map[string]int)
		vc.counts[from] = inner
	}
	inner[to]++
}

// IncrementEdge adds one visit to both directions of the undirected edge a—b.
func (vc *VisitCounts) IncrementEdge(a, b string) {
	vc.Increment(a, b)
	vc.Increment(b, a)
}

// IncrementPath records one traversal of every consecutive edge in nodes,
// in both directions.
//
// Complexity: O(len(nodes)).
func (vc *VisitCounts) IncrementPath(nodes []string) {
	for i := 0; i+1 < len(nodes); i++ {
		vc.IncrementEdge(nodes[i], nodes[i+1])
	}
}

// Len returns the number of directed pairs with a non-zero counter.
func (vc *VisitCounts) Len() int {
	n := 0
	for _, inner := range vc.counts {
		n += len(inner)
	}

	return n
}

// Total returns the sum of all directed counters.
func (vc *VisitCounts) Total() int {
	total := 0
	for _, inner := range vc.counts {
		for _, c := range inner {
			total += c
		}
	}

	return total
}

// Reset drops every counter.
func (vc *VisitCounts) Reset() {
	vc.counts = make(map[string]map[string]int)
}

// Clone returns an independent deep copy.
// Complexity: O(Len()).
func (vc *VisitCounts) Clone() *VisitCounts {
	out := &VisitCounts{counts: make(map[string]map[string]int, len(vc.counts))}
	var (
		from  string
		inner map[string]int
	)
	for from, inner = range vc.counts {
		cp := make(map[string]int, len(inner))
		for to, c := range inner {
			cp[to] = c
		}
		out.counts[from] = cp
	}

	return out
}

// Visits returns the graph's visit-count table. The pointer is shared: every
// search on this Graph reads and updates the same counters.
func (g *Graph) Visits() *VisitCounts {
	return g.visits
}

// ResetVisits zeroes every visit counter so the next search behaves as on a
// freshly loaded network.
func (g *Graph) ResetVisits() {
	g.visits.Reset()
}
