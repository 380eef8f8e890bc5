// File: methods_path.go
// Role: Path-level sums over edge attributes.

package core

import "fmt"

// PathWeight returns the distance of a node sequence: the sum of edge
// weights over consecutive pairs. A single-node or empty path weighs 0.
//
// Errors:
//   - ErrEdgeNotFound if two consecutive nodes are not adjacent.
//
// Complexity: O(len(nodes)).
func (g *Graph) PathWeight(nodes []string) (float64, error) {
	return g.sumPath(nodes, g.weights)
}

// PathTravelTime returns the walking time of a node sequence: the sum of
// edge travel times over consecutive pairs.
//
// Errors:
//   - ErrEdgeNotFound if two consecutive nodes are not adjacent.
//
// Complexity: O(len(nodes)).
func (g *Graph) PathTravelTime(nodes []string) (float64, error) {
	return g.sumPath(nodes, g.travelTimes)
}

func (g *Graph) sumPath(nodes []string, attr map[string]map[string]float64) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	var total float64
	for i := 0; i+1 < len(nodes); i++ {
		v, ok := attr[nodes[i]][nodes[i+1]]
		if !ok {
			return 0, fmt.Errorf("%w: %s—%s", ErrEdgeNotFound, nodes[i], nodes[i+1])
		}
		total += v
	}

	return total, nil
}
