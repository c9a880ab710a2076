package value_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tubular-lang/tubular/internal/value"
)

func TestArithmetic(t *testing.T) {
	a := value.FromInt64(7)
	b := value.FromInt64(2)

	assert.Equal(t, "9", a.Add(b).String())
	assert.Equal(t, "5", a.Sub(b).String())
	assert.Equal(t, "14", a.Mul(b).String())
	assert.Equal(t, "3", a.Div(b).String())
	assert.Equal(t, "1", a.Mod(b).String())
}

func TestDivTruncatesTowardZero(t *testing.T) {
	assert.Equal(t, "-2", value.FromInt64(-7).Div(value.FromInt64(3)).String())
	assert.Equal(t, "-2", value.FromInt64(7).Div(value.FromInt64(-3)).String())
}

func TestModSignMatchesDividend(t *testing.T) {
	assert.Equal(t, "-1", value.FromInt64(-7).Mod(value.FromInt64(3)).String())
	assert.Equal(t, "1", value.FromInt64(7).Mod(value.FromInt64(-3)).String())
}

func TestDivModByZero(t *testing.T) {
	zero := value.FromInt64(0)
	seven := value.FromInt64(7)

	assert.True(t, seven.Div(zero).IsZero())
	assert.True(t, seven.Mod(zero).IsZero())
}

func TestFromStringParsesSignedDecimal(t *testing.T) {
	v, ok := value.FromString("-42")
	assert.True(t, ok)
	assert.Equal(t, "-42", v.String())

	_, ok = value.FromString("not-a-number")
	assert.False(t, ok)
}

func TestByteTruncatesLow8Bits(t *testing.T) {
	v := value.FromInt64(321) // 0x141
	assert.Equal(t, byte(0x41), v.Byte())
}

func TestIncrementDecrement(t *testing.T) {
	v := value.FromInt64(9)
	assert.Equal(t, "10", v.Increment().String())
	assert.Equal(t, "8", v.Decrement().String())
}

func TestCmp(t *testing.T) {
	a := value.FromInt64(3)
	b := value.FromInt64(5)
	assert.Equal(t, -1, a.Cmp(b))
	assert.Equal(t, 1, b.Cmp(a))
	assert.Equal(t, 0, a.Cmp(a))
}
