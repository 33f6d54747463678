// Package world resolves what currently occupies any cell of the infinite
// grid and enumerates the cells inside a viewport region. The resolver is the
// single source of truth for cell contents: the override layer wins, the
// generator answers for untouched cells, and nothing in between caches.
package world

import (
	"github.com/vovakirdan/gridtoken/internal/core"
	"github.com/vovakirdan/gridtoken/internal/game/gen"
	"github.com/vovakirdan/gridtoken/internal/game/overlay"
)

// Resolver combines the override store and the generator.
type Resolver struct {
	overrides *overlay.Store
	gen       *gen.Generator
}

// NewResolver creates a resolver over the given override store and generator.
func NewResolver(overrides *overlay.Store, g *gen.Generator) *Resolver {
	return &Resolver{overrides: overrides, gen: g}
}

// Resolve returns the current state of the cell. An override entry is
// returned verbatim, including explicit Empty; otherwise the generator
// decides.
func (r *Resolver) Resolve(c core.Coord) core.CellState {
	if state, ok := r.overrides.Get(c); ok {
		return state
	}
	if !r.gen.SpawnDecision(c) {
		return core.Empty()
	}
	return core.Occupied(r.gen.SpawnLevel(c))
}

// ResolvedCell pairs a coordinate with its resolved state, ready for a
// renderer to draw.
type ResolvedCell struct {
	Coord core.Coord
	State core.CellState
}

// CellsInRegion resolves every cell whose index falls inside the region and
// returns them in row-major order. The region's corners may arrive in any
// order; bounds are normalized rather than rejected. The result is recomputed
// from scratch on every call — diffing is the renderer's job.
func (r *Resolver) CellsInRegion(region core.Region) []ResolvedCell {
	minI, maxI, minJ, maxJ := region.Bounds()

	cells := make([]ResolvedCell, 0, (maxI-minI+1)*(maxJ-minJ+1))
	for i := minI; i <= maxI; i++ {
		for j := minJ; j <= maxJ; j++ {
			c := core.C(i, j)
			cells = append(cells, ResolvedCell{Coord: c, State: r.Resolve(c)})
		}
	}
	return cells
}
