// Package program implements the grid loader and validator: turning
// raw ASCII bytes into a validated Program (a Grid plus its unique
// start coordinate).
package program

import (
	"bufio"
	"bytes"
	"fmt"

	"github.com/tubular-lang/tubular/internal/coord"
	"github.com/tubular-lang/tubular/internal/diag"
	"github.com/tubular-lang/tubular/internal/grid"
)

// StartSymbol is the unique cell that seeds the initial droplet.
const StartSymbol byte = '@'

// recognizedSymbols is the fixed grid alphabet. Space is handled
// separately (it is never a cell at all).
var recognizedSymbols = map[byte]bool{
	'|': true, '-': true, '/': true, '\\': true, '^': true, '#': true, '@': true,
	'0': true, '1': true, '2': true, '3': true, '4': true, '5': true,
	'6': true, '7': true, '8': true, '9': true,
	'>': true, '?': true,
	'!': true, ',': true, 'n': true,
	'+': true, '~': true,
	':': true, ';': true, 'd': true, 'A': true, 'S': true, 'M': true,
	'D': true, '=': true, '<': true, '%': true,
	'G': true, 'P': true,
	'C': true, 'R': true,
}

// Limits bounds the grid's bounding box at load time. Zero means no
// limit.
type Limits struct {
	MaxWidth  int
	MaxHeight int
}

// Program is a validated Grid plus its unique start coordinate.
type Program struct {
	Grid  *grid.Grid
	Start coord.Coord
}

// Load parses src as ASCII lines (LF or CRLF), builds the Grid, and
// validates it: exactly one start symbol, at least one cell, every
// symbol recognized, and (if limits is non-zero) the bounding box
// within bounds.
func Load(src []byte, limits Limits) (*Program, error) {
	g := grid.New()

	var startCoord coord.Coord
	startCount := 0

	scanner := bufio.NewScanner(bytes.NewReader(src))
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	row := 0
	for scanner.Scan() {
		line := scanner.Bytes()
		for col, ch := range line {
			if ch == ' ' || ch == '\t' {
				// Tabs are rejected as invalid rather than silently
				// expanded.
				if ch == '\t' {
					pos := diag.Position{Line: row + 1, Column: col + 1}
					return nil, diag.NewInvalidSymbolError(ch, pos, string(line))
				}
				continue
			}
			if !recognizedSymbols[ch] {
				pos := diag.Position{Line: row + 1, Column: col + 1}
				return nil, diag.NewInvalidSymbolError(ch, pos, string(line))
			}
			c := coord.New(col, row)
			if ch == StartSymbol {
				startCount++
				startCoord = c
			}
			g.Set(c, ch)
		}
		row++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading program source: %w", err)
	}

	if g.IsEmpty() {
		return nil, diag.NewLoadError(diag.GridEmpty, diag.Position{}, "program has no cells")
	}
	if startCount == 0 {
		return nil, diag.NewLoadError(diag.NoStartSymbol, diag.Position{}, "no '@' start symbol found")
	}
	if startCount > 1 {
		pos := diag.FromCoord(startCoord)
		return nil, diag.NewLoadError(diag.MultipleStartSymbols, pos, "more than one '@' start symbol found")
	}
	if limits.MaxWidth > 0 && g.Width() > limits.MaxWidth {
		return nil, diag.NewLoadError(diag.SizeLimitExceeded, diag.Position{},
			fmt.Sprintf("grid width %d exceeds limit %d", g.Width(), limits.MaxWidth))
	}
	if limits.MaxHeight > 0 && g.Height() > limits.MaxHeight {
		return nil, diag.NewLoadError(diag.SizeLimitExceeded, diag.Position{},
			fmt.Sprintf("grid height %d exceeds limit %d", g.Height(), limits.MaxHeight))
	}

	return &Program{Grid: g, Start: startCoord}, nil
}
