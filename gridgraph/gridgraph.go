// Package gridgraph provides utilities to treat a 2D grid of integer cell values
// as a graph. It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - A disjoint.Set[Cell] partition of the grid into islands
//   - Identification of connected components of “land” cells
//   - Bridge searches between components through water cells
//
// Cells with value < LandThreshold are considered “water”; cells with value ≥ LandThreshold are “land”.
package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/unionpath/disjoint"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability and partitions the land
// cells into islands.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs,
// ErrBadOption for an unknown Conn or a negative MaxSteps.
// Algorithmic complexity: O(W×H×d) time, O(W×H) memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	if opts.Conn != Conn4 && opts.Conn != Conn8 {
		return nil, fmt.Errorf("%w: connectivity %d", ErrBadOption, opts.Conn)
	}
	if opts.MaxSteps < 0 {
		return nil, fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrBadOption, opts.MaxSteps)
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	// Precompute neighbor offsets based on connectivity
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}
	gg := &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            opts.Conn,
		LandThreshold:   opts.LandThreshold,
		MaxSteps:        opts.MaxSteps,
		neighborOffsets: offsets,
	}
	set, err := gg.buildSet()
	if err != nil {
		return nil, err
	}
	gg.set = set

	return gg, nil
}

// From2D is NewGridGraph with default options and the given connectivity.
func From2D(values [][]int, conn Connectivity) (*GridGraph, error) {
	opts := DefaultGridOptions()
	opts.Conn = conn
	return NewGridGraph(values, opts)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
// Should be used in all adjacency traversals to avoid branching.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// IsLand reports whether the in-bounds cell (x,y) is land.
func (gg *GridGraph) IsLand(x, y int) bool {
	return gg.CellValues[y][x] >= gg.LandThreshold
}

// CellAt returns the cell at (x,y). The caller checks bounds.
func (gg *GridGraph) CellAt(x, y int) Cell {
	return Cell{X: x, Y: y, Value: gg.CellValues[y][x]}
}

// Neighbors lists the in-bounds neighbors of c in offset order.
// Complexity: O(d).
func (gg *GridGraph) Neighbors(c Cell) []Cell {
	out := make([]Cell, 0, len(gg.neighborOffsets))
	for _, d := range gg.neighborOffsets {
		nx, ny := c.X+d[0], c.Y+d[1]
		if gg.InBounds(nx, ny) {
			out = append(out, gg.CellAt(nx, ny))
		}
	}
	return out
}

// Set returns the island partition: one disjoint.Set item per cell, keyed
// row-major from 1. Neighboring land cells share a component, lone land
// cells are defined, and water cells are left untouched.
func (gg *GridGraph) Set() *disjoint.Set[Cell] {
	return gg.set
}

// buildSet links every pair of neighboring land cells, then defines the
// land cells that have no land neighbor.
func (gg *GridGraph) buildSet() (*disjoint.Set[Cell], error) {
	items := make([]Cell, 0, gg.Width*gg.Height)
	var pairs [][2]int
	var lone []int
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			items = append(items, gg.CellAt(x, y))
			if !gg.IsLand(x, y) {
				continue
			}
			k := gg.index(x, y) + 1
			linked := false
			for _, d := range gg.neighborOffsets {
				nx, ny := x+d[0], y+d[1]
				if !gg.InBounds(nx, ny) || !gg.IsLand(nx, ny) {
					continue
				}
				linked = true
				if nk := gg.index(nx, ny) + 1; nk > k {
					pairs = append(pairs, [2]int{k, nk})
				}
			}
			if !linked {
				lone = append(lone, k)
			}
		}
	}

	s, err := disjoint.New(items, gg.cellKey, disjoint.WithPairs[Cell](pairs))
	if err != nil {
		return nil, err
	}
	if len(lone) == 0 {
		return s, nil
	}
	f := s.Forest()
	for _, k := range lone {
		if err = f.Define(k); err != nil {
			return nil, err
		}
	}
	return s.WithForest(f)
}

// cellKey is the disjoint key of a cell: its row-major index plus one.
func (gg *GridGraph) cellKey(c Cell) int {
	return gg.index(c.X, c.Y) + 1
}

// index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}

// Index is the exported form of the row-major index of (x,y).
func (gg *GridGraph) Index(x, y int) int {
	return gg.index(x, y)
}
