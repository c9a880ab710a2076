// Package droplet implements the active execution tokens of Tubular
// and the pool that owns them: a plain state struct plus an owning
// collection with stable identifiers.
package droplet

import (
	"github.com/tubular-lang/tubular/internal/coord"
	"github.com/tubular-lang/tubular/internal/value"
)

// Droplet is a single active particle moving through the grid.
type Droplet struct {
	ID           uint64
	Value        value.Value
	Position     coord.Coord
	Direction    coord.Direction
	OriginIsTape bool
	Live         bool

	// SkipProcess is true for exactly the tick a droplet is first
	// admitted into the live set: it is eligible for movement that
	// tick but not for dispatch. Sources that spawn in place (digit
	// literals, the tape reader, Call, Return) place the new droplet
	// on the very cell that triggered the spawn, so dispatching it
	// immediately would re-trigger that same operator forever.
	// Skipping process once lets the droplet move off the spawn cell
	// before it is ever dispatched.
	SkipProcess bool
}

// Pool owns every droplet ever created during a run, indexed by
// insertion order. Destroyed droplets are tombstoned (Live=false), not
// removed, so their ID never gets reused, favoring stable identifiers
// over compaction-by-default.
type Pool struct {
	droplets []*Droplet
	nextID   uint64

	// pending holds droplets spawned during the process phase of the
	// current tick; they are folded into droplets (and so become
	// eligible for movement) only at the start of the next tick.
	pending []*Droplet
}

// NewPool returns an empty pool.
func NewPool() *Pool {
	return &Pool{}
}

// Spawn creates a new live droplet at pos with the given value and
// direction, queued so it does not participate in movement this tick.
func (p *Pool) Spawn(pos coord.Coord, v value.Value, dir coord.Direction, originIsTape bool) *Droplet {
	d := &Droplet{
		ID:           p.nextID,
		Value:        v,
		Position:     pos,
		Direction:    dir,
		OriginIsTape: originIsTape,
		Live:         true,
		SkipProcess:  true,
	}
	p.nextID++
	p.pending = append(p.pending, d)
	return d
}

// AdmitPending folds droplets spawned during the previous tick's
// process phase into the live set, called once at the start of each
// tick before the process phase runs.
func (p *Pool) AdmitPending() {
	if len(p.pending) == 0 {
		return
	}
	p.droplets = append(p.droplets, p.pending...)
	p.pending = nil
}

// Live returns every droplet with Live=true, in ascending ID
// (insertion) order — the only ordering guarantee the process phase
// commits to.
func (p *Pool) Live() []*Droplet {
	out := make([]*Droplet, 0, len(p.droplets))
	for _, d := range p.droplets {
		if d.Live {
			out = append(out, d)
		}
	}
	return out
}

// LiveCount returns the number of currently live droplets.
func (p *Pool) LiveCount() int {
	n := 0
	for _, d := range p.droplets {
		if d.Live {
			n++
		}
	}
	return n
}

// Destroy marks d non-live. Idempotent.
func Destroy(d *Droplet) {
	d.Live = false
}
