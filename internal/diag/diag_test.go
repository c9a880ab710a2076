package diag_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tubular-lang/tubular/internal/coord"
	"github.com/tubular-lang/tubular/internal/diag"
)

func TestFromCoordIsOneBased(t *testing.T) {
	pos := diag.FromCoord(coord.New(0, 0))
	assert.Equal(t, diag.Position{Line: 1, Column: 1}, pos)
}

func TestLoadErrorMessage(t *testing.T) {
	err := diag.NewInvalidSymbolError('x', diag.Position{Line: 3, Column: 5}, "  xyz")
	assert.Contains(t, err.Error(), "InvalidSymbol")
	assert.Contains(t, err.Error(), "3:5")
	assert.Contains(t, err.Error(), "xyz")
}

func TestRuntimeFaultMessage(t *testing.T) {
	c := coord.New(2, 2)
	fault := &diag.RuntimeFault{
		Kind:         diag.IOFault,
		Tick:         42,
		LiveDroplets: 3,
		Coord:        &c,
	}
	assert.Contains(t, fault.Error(), "tick 42")
	assert.Contains(t, fault.Error(), "3 live droplets")
}
