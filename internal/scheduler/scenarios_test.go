package scheduler_test

// End-to-end tests exercising full programs through the real engine:
// run a literal source program, assert on captured output and final
// state.

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tubular-lang/tubular/internal/scheduler"
)

func TestNumericLiteralChainsThroughToBothSinks(t *testing.T) {
	// Digit literal 5 reaches both `n` (non-consuming) and `!`
	// (consuming): both fire in turn on a straight chain.
	out, sched := runProgram(t, "@\n5\nn\n!\n", "", 0)
	assert.Equal(t, "55\n", out)
	assert.Equal(t, scheduler.StateHalted, sched.State())
}

func TestIncrementTwiceThenEmit(t *testing.T) {
	out, sched := runProgram(t, "@\n7\n+\n+\nn\n!\n", "", 0)
	assert.Equal(t, "99\n", out)
	assert.Equal(t, scheduler.StateHalted, sched.State())
}

func TestBinarySubtractConsumesBeforeAnySink(t *testing.T) {
	// 7 is pushed, the droplet becomes 2, `S` computes 7-2=5 onto the
	// stack and destroys the triggering droplet. `;`/`n`/`!` are never
	// reached by anything, so there is no output at all.
	out, sched := runProgram(t, "@\n7\n:\n2\nS\n;\nn\n!\n", "", 0)
	assert.Equal(t, "", out)
	assert.Equal(t, scheduler.StateHalted, sched.State())
}

// TestCountdownViaValueDependentCorners exercises a decrement-and-
// branch countdown, built as a staircase of corner pairs rather than a
// closed rectangular loop: a true closed loop can't emit once per lap
// with a trailing newline, since the only newline-producing sink, `!`,
// unconditionally consumes its droplet, so nothing can survive to lap
// again. This grid uses a digit literal, `n`, `~`, and value-dependent
// corners unrolled into five fresh corner pairs instead of one reused
// loop, each reachable from only one direction, demonstrating the same
// invariant — decrement, branch on value, terminate at zero.
func TestCountdownViaValueDependentCorners(t *testing.T) {
	src := "@\n" +
		"5\n" +
		"n\n" +
		"~\n" +
		"/\\\n" +
		" n\n" +
		" ~\n" +
		" /\\\n" +
		"  n\n" +
		"  ~\n" +
		"  /\\\n" +
		"   n\n" +
		"   ~\n" +
		"   /\\\n" +
		"    n\n" +
		"    ~\n" +
		"    /\n"
	out, sched := runProgram(t, src, "", 0)
	assert.Equal(t, "54321", out)
	assert.Equal(t, scheduler.StateHalted, sched.State())
}

// TestReservoirWriteThenReadThenEmit builds the value 42 via a single
// character read (ASCII '*' = 42), writes it to reservoir cell (5, 5)
// with `P`, reads it back with `G`, pops it into the droplet with `;`,
// and emits it with `n` — a single unbroken flow, reachable only
// because `P`/`G` pass their triggering droplet through rather than
// consuming it.
func TestReservoirWriteThenReadThenEmit(t *testing.T) {
	src := "@\n" +
		"?\n" + // read '*' (42) into the droplet
		":\n" + // push v=42
		"5\n" + // droplet <- 5 (x)
		":\n" + // push x=5
		"5\n" + // droplet <- 5 (y)
		":\n" + // push y=5
		"P\n" + // reservoir[(5,5)] <- 42, droplet passes through
		"5\n" + // droplet <- 5 (x)
		":\n" + // push x=5
		"5\n" + // droplet <- 5 (y)
		":\n" + // push y=5
		"G\n" + // push reservoir[(5,5)] = 42, droplet passes through
		";\n" + // droplet <- 42
		"n\n" // emit "42"
	out, sched := runProgram(t, src, "*", 0)
	assert.Equal(t, "42", out)
	assert.Equal(t, scheduler.StateHalted, sched.State())
}

// TestSimultaneousArrivalsAnnihilate exercises the general collision
// invariant: any group of two or more droplets proposing the same
// target cell in one tick annihilates entirely. The tape reader is the
// only operator able to produce more than one droplet from a single
// trigger, so it is the simplest way to get two droplets racing for
// the same cell from a single start symbol. Both characters spawn at
// the tape-reader's own coordinate moving Down, so they propose the
// identical next cell on their very first move and are both destroyed
// before either reaches a sink.
func TestSimultaneousArrivalsAnnihilate(t *testing.T) {
	// The tape characters themselves must come from the recognized
	// symbol alphabet (the loader rejects anything else); their value
	// as operators is irrelevant here since the tape reader only ever
	// reads their byte value as data.
	out, sched := runProgram(t, "@\n>01\n", "", 0)
	assert.Equal(t, "", out)
	assert.Equal(t, scheduler.StateHalted, sched.State())
}
