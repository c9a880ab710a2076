// Package grid implements the sparse ASCII grid that backs a Tubular
// program: a read-only (after load), O(1)-lookup map from non-negative
// grid coordinates to cell symbols.
package grid

import "github.com/tubular-lang/tubular/internal/coord"

// Empty is the distinguished "no cell here" value: both space and
// out-of-bounds lookups return it.
const Empty byte = 0

// Grid is a sparse map from coordinate to symbol plus its bounding box.
type Grid struct {
	cells map[coord.Coord]byte

	MinX, MinY int
	MaxX, MaxY int
	hasCells   bool
}

// New returns an empty Grid.
func New() *Grid {
	return &Grid{cells: make(map[coord.Coord]byte)}
}

// Set places symbol at c, updating the bounding box. Space (' ') is
// never stored — the loader should skip it, keeping the map's size
// proportional to non-space cells.
func (g *Grid) Set(c coord.Coord, symbol byte) {
	if symbol == ' ' || symbol == 0 {
		return
	}
	g.cells[c] = symbol
	if !g.hasCells {
		g.MinX, g.MaxX = c.X, c.X
		g.MinY, g.MaxY = c.Y, c.Y
		g.hasCells = true
		return
	}
	if c.X < g.MinX {
		g.MinX = c.X
	}
	if c.X > g.MaxX {
		g.MaxX = c.X
	}
	if c.Y < g.MinY {
		g.MinY = c.Y
	}
	if c.Y > g.MaxY {
		g.MaxY = c.Y
	}
}

// CellAt returns the symbol at c, or Empty if the cell is unoccupied
// or out of bounds. Lookup is O(1) amortized.
func (g *Grid) CellAt(c coord.Coord) byte {
	if sym, ok := g.cells[c]; ok {
		return sym
	}
	return Empty
}

// IsEmpty reports whether the grid contains no cells at all.
func (g *Grid) IsEmpty() bool {
	return len(g.cells) == 0
}

// Width and Height report the bounding box dimensions, used to enforce
// configurable grid size limits.
func (g *Grid) Width() int {
	if !g.hasCells {
		return 0
	}
	return g.MaxX - g.MinX + 1
}

func (g *Grid) Height() int {
	if !g.hasCells {
		return 0
	}
	return g.MaxY - g.MinY + 1
}

// CellCount returns the number of occupied cells, used for diagnostics.
func (g *Grid) CellCount() int {
	return len(g.cells)
}

// WithinBoundary reports whether c lies inside the grid's bounding box
// or at most one cell beyond it on any side. A droplet that steps
// further out than this is destroyed rather than left to drift
// through empty space forever.
func (g *Grid) WithinBoundary(c coord.Coord) bool {
	if !g.hasCells {
		return false
	}
	return c.X >= g.MinX-1 && c.X <= g.MaxX+1 && c.Y >= g.MinY-1 && c.Y <= g.MaxY+1
}

// RightNeighborsUntil walks cells to the right of start (exclusive) on
// the same row and returns their symbols in left-to-right order,
// stopping before the first space, '|', '-', or grid edge. Used
// by the tape reader operator.
func (g *Grid) RightNeighborsUntil(start coord.Coord) []byte {
	var out []byte
	for x := start.X + 1; ; x++ {
		c := coord.New(x, start.Y)
		sym := g.CellAt(c)
		if sym == Empty || sym == '|' || sym == '-' {
			break
		}
		out = append(out, sym)
	}
	return out
}
