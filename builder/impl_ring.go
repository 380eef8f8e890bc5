// SPDX-License-Identifier: MIT
//
// impl_ring.go - circular paths, like a loop around a lake.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Vertex IDs come from cfg.idFn(i); vertex i sits at angle 2πi/n on a
//     circle whose circumference is n·spacing.
//   - Edges i—(i+1) mod n in ascending i.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pathdiv/core"
)

const (
	methodRing   = "Ring"
	minRingNodes = 3
)

// Ring returns a Constructor that builds an n-vertex loop.
func Ring(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRingNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRing, n, minRingNodes, ErrTooFewVertices)
		}

		radius := float64(n) * cfg.spacing / (2 * math.Pi)
		for i := 0; i < n; i++ {
			id := cfg.idFn(i)
			angle := 2 * math.Pi * float64(i) / float64(n)
			if err := g.AddVertexAt(id, radius*math.Cos(angle), radius*math.Sin(angle)); err != nil {
				return fmt.Errorf("%s: AddVertexAt(%s): %w", methodRing, id, err)
			}
		}
		for i := 0; i < n; i++ {
			if err := addSegment(g, cfg, methodRing, cfg.idFn(i), cfg.idFn((i+1)%n), 1); err != nil {
				return err
			}
		}

		return nil
	}
}
