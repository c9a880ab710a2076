// Package scheduler implements the tick-synchronous droplet simulator:
// each tick runs a process phase (operator dispatch), a movement
// phase, and a collision phase, in that order — a state-machine loop
// generalized from "execute one instruction" to "advance one tick
// over a droplet collection".
package scheduler

import (
	"github.com/tubular-lang/tubular/internal/coord"
	"github.com/tubular-lang/tubular/internal/diag"
	"github.com/tubular-lang/tubular/internal/droplet"
	"github.com/tubular-lang/tubular/internal/grid"
	"github.com/tubular-lang/tubular/internal/iobridge"
	"github.com/tubular-lang/tubular/internal/ops"
	"github.com/tubular-lang/tubular/internal/program"
	"github.com/tubular-lang/tubular/internal/reservoir"
	"github.com/tubular-lang/tubular/internal/stack"
	"github.com/tubular-lang/tubular/internal/value"
)

// State enumerates the scheduler's termination modes.
type State int

const (
	StateRunning State = iota
	StateHalted        // all droplets gone
	StateTickLimit     // truncated at the configured tick limit
	StateFault         // fatal I/O/OOM fault
)

// Stats is an opt-in execution-statistics counter: cheap to update,
// surfaced only when the driver asks for it.
type Stats struct {
	Ticks            uint64
	PeakLiveDroplets int
	DispatchCounts   map[byte]uint64
}

func newStats() *Stats {
	return &Stats{DispatchCounts: make(map[byte]uint64)}
}

func (s *Stats) recordDispatch(sym byte) {
	s.DispatchCounts[sym]++
}

// Scheduler owns every piece of shared state an operator handler may
// touch — no package-level singletons.
type Scheduler struct {
	grid      *grid.Grid
	pool      *droplet.Pool
	data      *stack.Data
	call      *stack.Call
	reservoir *reservoir.Reservoir
	io        *iobridge.Bridge

	tickLimit uint64
	tick      uint64
	state     State
	fault     *diag.RuntimeFault

	stats *Stats
}

// New builds a Scheduler for p, seeding the initial droplet at the
// start symbol. tickLimit of 0 means unlimited.
func New(p *program.Program, io *iobridge.Bridge, tickLimit uint64) *Scheduler {
	s := &Scheduler{
		grid:      p.Grid,
		pool:      droplet.NewPool(),
		data:      stack.NewData(),
		call:      stack.NewCall(),
		reservoir: reservoir.New(),
		io:        io,
		tickLimit: tickLimit,
		state:     StateRunning,
		stats:     newStats(),
	}
	seed := s.pool.Spawn(p.Start, value.Zero(), coord.Down, false)
	seed.SkipProcess = false // the seed droplet dispatches '@' on tick 0
	s.pool.AdmitPending()
	return s
}

// Stats returns the scheduler's execution-statistics snapshot.
func (s *Scheduler) Stats() *Stats {
	return s.stats
}

// State returns the scheduler's current termination state.
func (s *Scheduler) State() State {
	return s.state
}

// Fault returns the fatal fault that halted the scheduler, or nil.
func (s *Scheduler) Fault() *diag.RuntimeFault {
	return s.fault
}

// Tick returns the number of ticks executed so far.
func (s *Scheduler) Tick() uint64 {
	return s.tick
}

// Run drives ticks to completion: until no live droplets remain, the
// tick limit is reached, or a fatal fault occurs.
func (s *Scheduler) Run() error {
	for s.state == StateRunning {
		if err := s.RunTick(); err != nil {
			return err
		}
	}
	return nil
}

// RunTick advances exactly one tick, updating s.state as termination
// conditions are reached. It is exported so callers (and tests) can
// drive the scheduler step by step.
func (s *Scheduler) RunTick() error {
	if s.state != StateRunning {
		return nil
	}

	s.pool.AdmitPending()
	live := s.pool.Live()

	if len(live) == 0 {
		s.state = StateHalted
		return nil
	}
	if s.tickLimit > 0 && s.tick >= s.tickLimit {
		s.state = StateTickLimit
		return nil
	}

	if len(live) > s.stats.PeakLiveDroplets {
		s.stats.PeakLiveDroplets = len(live)
	}

	// Process phase: droplet-id ascending order, the only ordering
	// guarantee this phase commits to. Droplets admitted this very
	// tick skip dispatch — they are only eligible for movement, not
	// eligible for processing yet.
	for _, d := range live {
		if !d.Live {
			continue // destroyed earlier in this same process phase
		}
		if d.SkipProcess {
			continue
		}
		if err := s.dispatch(d); err != nil {
			s.fail(err)
			return err
		}
	}

	// Movement phase: propose one step for every droplet still live.
	type move struct {
		d    *droplet.Droplet
		next coord.Coord
	}
	var moves []move
	for _, d := range live {
		if !d.Live {
			continue
		}
		moves = append(moves, move{d: d, next: d.Position.Move(d.Direction)})
	}

	// Collision phase: group by proposed position; any group of size
	// >= 2 annihilates entirely, without relocating.
	byTarget := make(map[coord.Coord][]*droplet.Droplet)
	for _, m := range moves {
		byTarget[m.next] = append(byTarget[m.next], m.d)
	}
	for _, m := range moves {
		if len(byTarget[m.next]) >= 2 {
			droplet.Destroy(m.d)
			continue
		}
		if !s.grid.WithinBoundary(m.next) {
			droplet.Destroy(m.d) // stepped outside the grid's active bounding box
			continue
		}
		m.d.Position = m.next
		m.d.SkipProcess = false
	}

	s.tick++
	s.stats.Ticks = s.tick
	return nil
}

func (s *Scheduler) fail(err error) {
	s.state = StateFault
	s.fault = &diag.RuntimeFault{
		Kind:         diag.IOFault,
		Tick:         s.tick,
		LiveDroplets: s.pool.LiveCount(),
		Wrapped:      err,
	}
}

// dispatch resolves the operator at d's current cell, handling the
// two-cell `??` token (not a Table entry, since its detection is
// path-sensitive) before falling back to the single-symbol table.
func (s *Scheduler) dispatch(d *droplet.Droplet) error {
	sym := s.grid.CellAt(d.Position)
	if sym == grid.Empty {
		return nil // default empty cell: continue in current direction
	}

	ctx := &ops.Context{
		Droplet:   d,
		Grid:      s.grid,
		Pool:      s.pool,
		Data:      s.data,
		Call:      s.call,
		Reservoir: s.reservoir,
		IO:        s.io,
	}

	s.stats.recordDispatch(sym)

	if sym == '?' {
		return s.dispatchQuestionMark(ctx)
	}

	handler, ok := ops.Table[sym]
	if !ok {
		return nil
	}
	return handler(ctx)
}

// dispatchQuestionMark disambiguates a single `?` (character input)
// from two adjacent `?` cells (numeric input) by peeking one cell
// ahead in the droplet's direction of travel.
func (s *Scheduler) dispatchQuestionMark(ctx *ops.Context) error {
	d := ctx.Droplet
	forward := d.Position.Move(d.Direction)
	if s.grid.CellAt(forward) == '?' {
		return ops.NumericInput(ctx)
	}
	backward := d.Position.Move(d.Direction.Opposite())
	if s.grid.CellAt(backward) == '?' {
		return nil // tail of a token already consumed by its head
	}
	return ops.Table['?'](ctx)
}
