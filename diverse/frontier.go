package diverse

import "container/heap"

// noParent marks the root entry of a frontier.
const noParent = -1

// entry is one partial route in a frontier arena.
// The route is recovered by following parent indices back to the root.
type entry struct {
	node   string  // vertex reached by this partial route
	parent int     // arena index of the previous entry, or noParent
	cost   float64 // accumulated Σ (weight + travel time)
}

// frontier is one direction of the bidirectional search.
//
// Entries are never removed from the arena, so settled indices stay valid for
// the whole search and route reconstruction happens once, on success.
type frontier struct {
	arena   []entry
	queue   entryPQ
	settled map[string]int // vertex → arena index of the entry that settled it
}

func newFrontier(root string) *frontier {
	f := &frontier{
		arena:   make([]entry, 0, 16),
		settled: make(map[string]int),
	}
	f.queue.f = f
	heap.Init(&f.queue)
	f.push(entry{node: root, parent: noParent, cost: 0})

	return f
}

// Len returns the number of queued entries.
func (f *frontier) Len() int { return f.queue.Len() }

// push stores e in the arena and queues its index.
func (f *frontier) push(e entry) {
	f.arena = append(f.arena, e)
	heap.Push(&f.queue, len(f.arena)-1)
}

// pop removes the cheapest queued entry and returns its arena index.
func (f *frontier) pop() int {
	return heap.Pop(&f.queue).(int)
}

// route returns the vertices from arena index i back to the root:
// i's vertex first, root vertex last.
func (f *frontier) route(i int) []string {
	var out []string
	for ; i != noParent; i = f.arena[i].parent {
		out = append(out, f.arena[i].node)
	}

	return out
}

// entryPQ is a min-heap of arena indices ordered by entry cost.
//
// Ties are broken by vertex ID, then by arena index (older entries first),
// which keeps searches deterministic for a fixed graph and counter state.
type entryPQ struct {
	f     *frontier
	items []int
}

// Len returns the number of items in the heap.
func (pq entryPQ) Len() int { return len(pq.items) }

// Less orders by cost, then vertex ID, then insertion.
func (pq entryPQ) Less(i, j int) bool {
	a, b := pq.items[i], pq.items[j]
	ea, eb := &pq.f.arena[a], &pq.f.arena[b]
	if ea.cost != eb.cost {
		return ea.cost < eb.cost
	}
	if ea.node != eb.node {
		return ea.node < eb.node
	}

	return a < b
}

// Swap swaps two elements in the heap.
func (pq entryPQ) Swap(i, j int) { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }

// Push adds an arena index; called by heap.Push.
func (pq *entryPQ) Push(x interface{}) { pq.items = append(pq.items, x.(int)) }

// Pop removes the last element; called by heap.Pop.
func (pq *entryPQ) Pop() interface{} {
	old := pq.items
	n := len(old)
	item := old[n-1]
	pq.items = old[:n-1]

	return item
}
