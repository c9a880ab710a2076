// Package value implements the arbitrary-precision signed integer that
// every Tubular droplet carries.
package value

import "math/big"

// Value is an arbitrary-precision signed integer. The zero Value is 0.
type Value struct {
	i big.Int
}

// Zero is the additive identity.
func Zero() Value {
	return Value{}
}

// FromInt64 builds a Value from a native signed integer.
func FromInt64(n int64) Value {
	var v Value
	v.i.SetInt64(n)
	return v
}

// FromString parses a signed decimal integer. Reports ok=false on
// malformed input; the caller (the ?? operator) treats that as zero.
func FromString(s string) (v Value, ok bool) {
	_, success := v.i.SetString(s, 10)
	return v, success
}

// Int64 returns the value as a native int64; the result is undefined
// when the value does not fit. Used for the coordinate operands of the
// `G`, `P` and `C` operators.
func (v Value) Int64() int64 {
	return v.i.Int64()
}

// IsZero reports whether the value is exactly zero.
func (v Value) IsZero() bool {
	return v.i.Sign() == 0
}

// Sign returns -1, 0, or +1.
func (v Value) Sign() int {
	return v.i.Sign()
}

// String renders the decimal representation, used by the numeric
// output operators `n` and `!`.
func (v Value) String() string {
	return v.i.String()
}

// Add returns v + other.
func (v Value) Add(other Value) Value {
	var r Value
	r.i.Add(&v.i, &other.i)
	return r
}

// Sub returns v - other.
func (v Value) Sub(other Value) Value {
	var r Value
	r.i.Sub(&v.i, &other.i)
	return r
}

// Mul returns v * other.
func (v Value) Mul(other Value) Value {
	var r Value
	r.i.Mul(&v.i, &other.i)
	return r
}

// Div returns v / other truncated toward zero. Division by zero
// yields zero rather than a panic, per the language's silent
// zero-edge-case semantics.
func (v Value) Div(other Value) Value {
	if other.IsZero() {
		return Zero()
	}
	var r Value
	r.i.Quo(&v.i, &other.i)
	return r
}

// Mod returns v mod other with the sign of v (the dividend), i.e. Go's
// Rem semantics, not Euclidean. Modulo by zero yields zero.
func (v Value) Mod(other Value) Value {
	if other.IsZero() {
		return Zero()
	}
	var r Value
	r.i.Rem(&v.i, &other.i)
	return r
}

// Increment returns v + 1.
func (v Value) Increment() Value {
	return v.Add(FromInt64(1))
}

// Decrement returns v - 1.
func (v Value) Decrement() Value {
	return v.Sub(FromInt64(1))
}

// Cmp returns -1, 0, +1 as v is less than, equal to, or greater than
// other — used by the `=`, `<`, `>` stack comparison operators.
func (v Value) Cmp(other Value) int {
	return v.i.Cmp(&other.i)
}

// FromByte lifts a raw byte (an ASCII code) into a Value, used by the
// tape reader and character-input operators.
func FromByte(b byte) Value {
	return FromInt64(int64(b))
}

// Byte truncates the value to its low 8 bits, used by the character
// output operators `,` and tape-originated `!`.
func (v Value) Byte() byte {
	var mask big.Int
	mask.And(&v.i, big.NewInt(0xFF))
	return byte(mask.Int64())
}
