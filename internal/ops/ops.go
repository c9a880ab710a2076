// Package ops implements the symbol -> effect dispatch table: one
// handler per recognized cell, each given an explicit handle onto the
// droplet and the shared engine state it may read or mutate. Handlers
// are grouped by category below (flow control, data sources, data
// sinks, unary, data stack, reservoir, subroutines), mirroring an
// encoder's per-category file split adapted from "encode a mnemonic"
// into "dispatch a symbol".
package ops

import (
	"github.com/tubular-lang/tubular/internal/coord"
	"github.com/tubular-lang/tubular/internal/droplet"
	"github.com/tubular-lang/tubular/internal/grid"
	"github.com/tubular-lang/tubular/internal/iobridge"
	"github.com/tubular-lang/tubular/internal/reservoir"
	"github.com/tubular-lang/tubular/internal/stack"
	"github.com/tubular-lang/tubular/internal/value"
)

// Context is the explicit handle an operator handler receives. It owns
// nothing itself — all fields are owned by the scheduler, avoiding any
// package-level singleton state.
type Context struct {
	Droplet   *droplet.Droplet
	Grid      *grid.Grid
	Pool      *droplet.Pool
	Data      *stack.Data
	Call      *stack.Call
	Reservoir *reservoir.Reservoir
	IO        *iobridge.Bridge
}

// Handler executes the effect of one symbol on one dispatching
// droplet. It returns an error only for fatal runtime faults (I/O
// failure); recoverable conditions (underflow, div-by-zero, ...) are
// absorbed internally.
type Handler func(ctx *Context) error

// Table maps a recognized cell symbol to its Handler.
var Table = map[byte]Handler{
	'|': verticalPipe,
	'-': horizontalPipe,
	'^': forceUp,
	'#': wall,
	'@': startPassThrough,
	'/': forwardSlash,
	'\\': backSlash,

	'>': tapeReaderOrGreaterThan,
	'?': charInput,

	'!': outputSink,
	',': charOutput,
	'n': numericOutput,

	'+': increment,
	'~': decrement,

	':': dup,
	';': popIntoValue,
	'd': dup,
	'A': add,
	'S': subtract,
	'M': multiply,
	'D': divide,
	'%': modulo,
	'=': equalTo,
	'<': lessThan,

	'G': reservoirGet,
	'P': reservoirPut,

	'C': call,
	'R': ret,
}

func init() {
	for d := byte('0'); d <= '9'; d++ {
		Table[d] = numericLiteral(d)
	}
}

// --- flow control ---

func verticalPipe(ctx *Context) error {
	if ctx.Droplet.Direction.IsHorizontal() {
		droplet.Destroy(ctx.Droplet)
	}
	return nil
}

func horizontalPipe(ctx *Context) error {
	if ctx.Droplet.Direction.IsVertical() {
		droplet.Destroy(ctx.Droplet)
	}
	return nil
}

func forceUp(ctx *Context) error {
	ctx.Droplet.Direction = coord.Up
	return nil
}

func wall(ctx *Context) error {
	droplet.Destroy(ctx.Droplet)
	return nil
}

func startPassThrough(ctx *Context) error {
	return nil
}

func forwardSlash(ctx *Context) error {
	d := ctx.Droplet
	switch d.Direction {
	case coord.Up:
		d.Direction = turnByValue(d.Value, coord.Right, coord.Left)
	case coord.Down:
		d.Direction = turnByValue(d.Value, coord.Left, coord.Right)
	case coord.Right:
		d.Direction = coord.Up
	case coord.Left:
		d.Direction = coord.Down
	}
	return nil
}

func backSlash(ctx *Context) error {
	d := ctx.Droplet
	switch d.Direction {
	case coord.Down:
		d.Direction = turnByValue(d.Value, coord.Right, coord.Left)
	case coord.Up:
		d.Direction = turnByValue(d.Value, coord.Left, coord.Right)
	case coord.Right:
		d.Direction = coord.Down
	case coord.Left:
		d.Direction = coord.Up
	}
	return nil
}

// turnByValue picks whenZero if v is zero, otherwise whenNonZero —
// the corner operators' shared "branch on value" shape.
func turnByValue(v value.Value, whenZero, whenNonZero coord.Direction) coord.Direction {
	if v.IsZero() {
		return whenZero
	}
	return whenNonZero
}

// --- data sources ---

func numericLiteral(digit byte) Handler {
	return func(ctx *Context) error {
		pos := ctx.Droplet.Position
		droplet.Destroy(ctx.Droplet)
		ctx.Pool.Spawn(pos, value.FromInt64(int64(digit-'0')), coord.Down, false)
		return nil
	}
}

// tapeReaderOrGreaterThan disambiguates `>`: it acts as the tape
// reader only when the dispatching droplet entered from above (i.e.
// is travelling Down); otherwise it is the stack "greater than"
// comparison operator.
func tapeReaderOrGreaterThan(ctx *Context) error {
	if ctx.Droplet.Direction == coord.Down {
		return tapeReader(ctx)
	}
	return greaterThan(ctx)
}

func tapeReader(ctx *Context) error {
	pos := ctx.Droplet.Position
	chars := ctx.Grid.RightNeighborsUntil(pos)
	droplet.Destroy(ctx.Droplet)
	for _, c := range chars {
		ctx.Pool.Spawn(pos, value.FromByte(c), coord.Down, true)
	}
	return nil
}

func charInput(ctx *Context) error {
	c, err := ctx.IO.ReadChar()
	if err != nil {
		ctx.Droplet.Value = value.FromInt64(-1)
		return nil
	}
	ctx.Droplet.Value = value.FromByte(c)
	return nil
}

// NumericInput implements `??`, detected by the scheduler before
// dispatch (it is a two-cell token, not a table entry) and invoked
// directly rather than through Table.
func NumericInput(ctx *Context) error {
	line, err := ctx.IO.ReadLine()
	if err != nil {
		ctx.Droplet.Value = value.Zero()
		return nil
	}
	v, ok := value.FromString(trimSpace(line))
	if !ok {
		ctx.Droplet.Value = value.Zero()
		return nil
	}
	ctx.Droplet.Value = v
	return nil
}

func trimSpace(s string) string {
	start, end := 0, len(s)
	for start < end && isSpace(s[start]) {
		start++
	}
	for end > start && isSpace(s[end-1]) {
		end--
	}
	return s[start:end]
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

// --- data sinks ---

func outputSink(ctx *Context) error {
	d := ctx.Droplet
	if d.OriginIsTape {
		if err := ctx.IO.WriteByte(d.Value.Byte()); err != nil {
			return err
		}
	} else {
		if err := ctx.IO.WriteString(d.Value.String() + "\n"); err != nil {
			return err
		}
	}
	droplet.Destroy(d)
	return nil
}

func charOutput(ctx *Context) error {
	return ctx.IO.WriteByte(ctx.Droplet.Value.Byte())
}

func numericOutput(ctx *Context) error {
	return ctx.IO.WriteString(ctx.Droplet.Value.String())
}

// --- unary ---

func increment(ctx *Context) error {
	ctx.Droplet.Value = ctx.Droplet.Value.Increment()
	return nil
}

func decrement(ctx *Context) error {
	ctx.Droplet.Value = ctx.Droplet.Value.Decrement()
	return nil
}

// --- data stack ---

func dup(ctx *Context) error {
	ctx.Data.Push(ctx.Droplet.Value)
	return nil
}

func popIntoValue(ctx *Context) error {
	ctx.Droplet.Value = ctx.Data.Pop()
	return nil
}

// binary consumes the triggering droplet after combining a (the
// droplet's own current value) with b (popped from the data stack,
// pushed earlier by `:`/`d`), pushing fn(b, a) — the shared shape of
// A/S/M/D/%/=/</>.
func binary(ctx *Context, fn func(b, a value.Value) value.Value) error {
	a := ctx.Droplet.Value
	b := ctx.Data.Pop()
	ctx.Data.Push(fn(b, a))
	droplet.Destroy(ctx.Droplet)
	return nil
}

func add(ctx *Context) error {
	return binary(ctx, func(b, a value.Value) value.Value { return b.Add(a) })
}

func subtract(ctx *Context) error {
	return binary(ctx, func(b, a value.Value) value.Value { return b.Sub(a) })
}

func multiply(ctx *Context) error {
	return binary(ctx, func(b, a value.Value) value.Value { return b.Mul(a) })
}

func divide(ctx *Context) error {
	return binary(ctx, func(b, a value.Value) value.Value { return b.Div(a) })
}

func modulo(ctx *Context) error {
	return binary(ctx, func(b, a value.Value) value.Value { return b.Mod(a) })
}

func equalTo(ctx *Context) error {
	return binary(ctx, func(b, a value.Value) value.Value { return boolValue(b.Cmp(a) == 0) })
}

func lessThan(ctx *Context) error {
	return binary(ctx, func(b, a value.Value) value.Value { return boolValue(b.Cmp(a) < 0) })
}

func greaterThan(ctx *Context) error {
	return binary(ctx, func(b, a value.Value) value.Value { return boolValue(b.Cmp(a) > 0) })
}

func boolValue(b bool) value.Value {
	if b {
		return value.FromInt64(1)
	}
	return value.FromInt64(0)
}

// --- reservoir ---

// reservoirGet and reservoirPut read their coordinate operands off the
// data stack and pass the triggering droplet through rather than
// destroying it, behaving like the stack operators `:`/`d` — read,
// write, continue.
func reservoirGet(ctx *Context) error {
	y := ctx.Data.Pop()
	x := ctx.Data.Pop()
	c := coord.New(int(x.Int64()), int(y.Int64()))
	ctx.Data.Push(ctx.Reservoir.Get(c))
	return nil
}

func reservoirPut(ctx *Context) error {
	y := ctx.Data.Pop()
	x := ctx.Data.Pop()
	v := ctx.Data.Pop()
	c := coord.New(int(x.Int64()), int(y.Int64()))
	ctx.Reservoir.Put(c, v)
	return nil
}

// --- subroutines ---

func call(ctx *Context) error {
	y := ctx.Data.Pop()
	x := ctx.Data.Pop()
	target := coord.New(int(x.Int64()), int(y.Int64()))

	ctx.Call.Push(stack.CallFrame{Coord: ctx.Droplet.Position, Dir: ctx.Droplet.Direction})
	droplet.Destroy(ctx.Droplet)
	ctx.Pool.Spawn(target, value.Zero(), coord.Down, false)
	return nil
}

func ret(ctx *Context) error {
	droplet.Destroy(ctx.Droplet)
	frame, ok := ctx.Call.Pop()
	if !ok {
		return nil
	}
	ctx.Pool.Spawn(frame.Coord, value.Zero(), frame.Dir, false)
	return nil
}
