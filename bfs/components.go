package bfs

import (
	"sort"

	"github.com/katalvlaran/pathdiv/core"
)

// Components partitions the vertices of g into connected components.
// Each component is sorted, and components are ordered by their smallest ID.
//
// Complexity: O(V log V + E).
func Components(g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	seen := make(map[string]bool, g.VertexCount())
	var out [][]string
	// Vertices() is sorted, so each new root is the smallest ID of its component.
	for _, v := range g.Vertices() {
		if seen[v] {
			continue
		}
		res, err := BFS(g, v)
		if err != nil {
			return nil, err
		}
		comp := append([]string(nil), res.Order...)
		for _, id := range comp {
			seen[id] = true
		}
		sort.Strings(comp)
		out = append(out, comp)
	}

	return out, nil
}
