// SPDX-License-Identifier: MIT
//
// impl_grid.go - street lattices.
//
// Canonical model:
//   - rows×cols orthogonal lattice, 4-neighborhood.
//   - Vertex IDs use the fixed scheme "r,c" (row-major); cfg.idFn is not used.
//   - Vertex (r,c) is drawn at (c·spacing, r·spacing).
//   - Edges to the right and bottom neighbor of each cell, in row-major order.
//
// Determinism:
//   - Stable vertex order, stable edge order, segments drawn in edge order.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pathdiv/core"
)

const (
	methodGrid      = "Grid"
	methodDiagonals = "Diagonals"
	minGridDim      = 1
)

// GridID returns the vertex ID of lattice cell (r, c).
func GridID(r, c int) string {
	return fmt.Sprintf("%d,%d", r, c)
}

// Grid returns a Constructor that builds a rows×cols street lattice.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters.
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		// 2) Vertices in row-major order with coordinates.
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := GridID(r, c)
				if err := g.AddVertexAt(id, float64(c)*cfg.spacing, float64(r)*cfg.spacing); err != nil {
					return fmt.Errorf("%s: AddVertexAt(%s): %w", methodGrid, id, err)
				}
			}
		}

		// 3) Right then bottom neighbor of every cell.
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := GridID(r, c)
				if c+1 < cols {
					if err := addSegment(g, cfg, methodGrid, u, GridID(r, c+1), 1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addSegment(g, cfg, methodGrid, u, GridID(r+1, c), 1); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// Diagonals returns a Constructor that cuts across lattice cells: each cell
// (r,c) of a rows×cols Grid gets the diagonal (r,c)–(r+1,c+1) with
// probability p. A diagonal is √2 times as long as a drawn segment.
// Requires an RNG (ErrNeedRandSource) and p in [0,1] (ErrInvalidProbability).
func Diagonals(rows, cols int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d: %w", methodDiagonals, rows, cols, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%g: %w", methodDiagonals, p, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodDiagonals, ErrNeedRandSource)
		}

		for r := 0; r+1 < rows; r++ {
			for c := 0; c+1 < cols; c++ {
				if cfg.rng.Float64() >= p {
					continue
				}
				if err := addSegment(g, cfg, methodDiagonals, GridID(r, c), GridID(r+1, c+1), math.Sqrt2); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// addSegment draws one segment from cfg.segmentFn, scales it and inserts it.
func addSegment(g *core.Graph, cfg builderConfig, method, u, v string, scale float64) error {
	d, t := cfg.segmentFn(cfg.rng)
	d, t = d*scale, t*scale
	if err := g.AddEdge(u, v, d, t); err != nil {
		return fmt.Errorf("%s: AddEdge(%s—%s, d=%g, t=%g): %w", method, u, v, d, t, err)
	}

	return nil
}
