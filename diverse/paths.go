package diverse

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/pathdiv/core"
)

// FindPaths extracts up to k diverse routes from start to end.
//
// Steps:
//  1. Validate graph, endpoints and k.
//  2. Repeat up to k times: run Search; on success append the route to
//     Result.All and increment the visit counter of each of its edges in both
//     directions. Stop at the first ErrNoPath.
//  3. Deduplicate by exact node sequence and sort ascending by search cost.
//     The cost of record for a sequence is the cost of its first extraction.
//
// Side effects:
//   - g.Visits() is mutated and stays mutated after the call.
//
// Returns:
//   - *Result with len(Unique) ≤ len(All) ≤ k. An empty Result is not an error:
//     it means start and end are not connected under the fairness filter.
//
// Complexity:
//   - Time: O(k · search) + O(k log k) sort.
func FindPaths(g *core.Graph, start, end string, k int, opts ...Option) (*Result, error) {
	// 1) Build options and validate input.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := validateEndpoints(g, start, end); err != nil {
		return nil, err
	}
	if k < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadK, k)
	}

	log := cfg.Logger.WithFields(logrus.Fields{"start": start, "end": end, "k": k})
	visits := g.Visits()
	res := &Result{All: make([]Path, 0, k)}

	// 2) Extraction loop with counter feedback.
	for i := 0; i < k; i++ {
		p, err := search(g, start, end, cfg)
		if errors.Is(err, ErrNoPath) {
			log.WithField("iteration", i).Debug("frontiers exhausted, stopping extraction")
			break
		}
		if err != nil {
			return nil, err
		}
		visits.IncrementPath(p.Nodes)
		res.All = append(res.All, p)
		log.WithFields(logrus.Fields{
			"iteration": i,
			"hops":      len(p.Nodes) - 1,
			"cost":      p.Cost,
		}).Debug("extracted path")
	}

	// 3) Deduplicate and order.
	res.Unique = uniqueByCost(res.All)
	log.WithFields(logrus.Fields{"extracted": len(res.All), "unique": len(res.Unique)}).Debug("extraction finished")

	return res, nil
}

// uniqueByCost keeps the first occurrence of every node sequence and sorts the
// survivors by cost. The sort is stable, so equal costs keep extraction order.
func uniqueByCost(all []Path) []Path {
	seen := make(map[string]struct{}, len(all))
	out := make([]Path, 0, len(all))
	for _, p := range all {
		key := routeKey(p.Nodes)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Cost < out[j].Cost })

	return out
}

// routeKey encodes a node sequence as a map key. Vertex IDs cannot contain
// the NUL separator when they come from the text loaders.
func routeKey(nodes []string) string {
	return strings.Join(nodes, "\x00")
}
