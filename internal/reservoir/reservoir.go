// Package reservoir implements Tubular's sparse, signed-coordinate
// addressable memory: reading an absent coordinate yields zero,
// writing stores exactly what was written (including zero).
package reservoir

import (
	"github.com/tubular-lang/tubular/internal/coord"
	"github.com/tubular-lang/tubular/internal/value"
)

// Reservoir is a sparse map from Coord (any signed x, y) to Value.
type Reservoir struct {
	cells map[coord.Coord]value.Value
}

// New returns an empty Reservoir.
func New() *Reservoir {
	return &Reservoir{cells: make(map[coord.Coord]value.Value)}
}

// Get returns the value stored at c, or zero if c was never written.
func (r *Reservoir) Get(c coord.Coord) value.Value {
	if v, ok := r.cells[c]; ok {
		return v
	}
	return value.Zero()
}

// Put stores v at c. Writing zero is permitted and observably
// equivalent whether or not the implementation prunes it; this
// implementation stores it, keeping Get/round-trip trivially correct.
func (r *Reservoir) Put(c coord.Coord, v value.Value) {
	r.cells[c] = v
}

// Size reports the number of distinct written coordinates, used for
// diagnostics — storage is proportional to written cells.
func (r *Reservoir) Size() int {
	return len(r.cells)
}
