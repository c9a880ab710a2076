package program_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tubular-lang/tubular/internal/coord"
	"github.com/tubular-lang/tubular/internal/diag"
	"github.com/tubular-lang/tubular/internal/program"
)

func TestLoadSimpleProgram(t *testing.T) {
	src := []byte("@\n5\nn\n!\n")
	p, err := program.Load(src, program.Limits{})
	require.NoError(t, err)
	assert.Equal(t, coord.New(0, 0), p.Start)
	assert.Equal(t, byte('5'), p.Grid.CellAt(coord.New(0, 1)))
}

func TestLoadRejectsMissingStart(t *testing.T) {
	_, err := program.Load([]byte("5\nn\n!\n"), program.Limits{})
	require.Error(t, err)
	le, ok := err.(*diag.LoadError)
	require.True(t, ok)
	assert.Equal(t, diag.NoStartSymbol, le.Kind)
}

func TestLoadRejectsMultipleStart(t *testing.T) {
	_, err := program.Load([]byte("@\n@\n"), program.Limits{})
	require.Error(t, err)
	le, ok := err.(*diag.LoadError)
	require.True(t, ok)
	assert.Equal(t, diag.MultipleStartSymbols, le.Kind)
}

func TestLoadRejectsInvalidSymbol(t *testing.T) {
	_, err := program.Load([]byte("@\nZ\n"), program.Limits{})
	require.Error(t, err)
	le, ok := err.(*diag.LoadError)
	require.True(t, ok)
	assert.Equal(t, diag.InvalidSymbol, le.Kind)
	assert.Equal(t, byte('Z'), le.Symbol)
}

func TestLoadRejectsEmptyGrid(t *testing.T) {
	_, err := program.Load([]byte("   \n\n"), program.Limits{})
	require.Error(t, err)
	le, ok := err.(*diag.LoadError)
	require.True(t, ok)
	assert.Equal(t, diag.GridEmpty, le.Kind)
}

func TestLoadRejectsTabs(t *testing.T) {
	_, err := program.Load([]byte("@\n\t\n"), program.Limits{})
	require.Error(t, err)
}

func TestLoadHandlesCRLF(t *testing.T) {
	p, err := program.Load([]byte("@\r\n5\r\n"), program.Limits{})
	require.NoError(t, err)
	assert.Equal(t, byte('5'), p.Grid.CellAt(coord.New(0, 1)))
}

func TestLoadPermitsRaggedLines(t *testing.T) {
	_, err := program.Load([]byte("@\n-\n#--\n"), program.Limits{})
	require.NoError(t, err)
}

func TestLoadEnforcesSizeLimits(t *testing.T) {
	wide := make([]byte, 0, 2048)
	wide = append(wide, '@')
	for i := 0; i < 2000; i++ {
		wide = append(wide, '-')
	}
	_, err := program.Load(wide, program.Limits{MaxWidth: 100})
	require.Error(t, err)
	le, ok := err.(*diag.LoadError)
	require.True(t, ok)
	assert.Equal(t, diag.SizeLimitExceeded, le.Kind)
}

func TestLoadSupportsLargeGridWithinLimits(t *testing.T) {
	row := make([]byte, 0, 1001)
	row = append(row, '@')
	for i := 0; i < 999; i++ {
		row = append(row, '-')
	}
	_, err := program.Load(row, program.Limits{MaxWidth: 1000, MaxHeight: 1000})
	require.NoError(t, err)
}
