// Package textpos maps byte offsets in a text to lines and columns, and to
// LSP positions.
package textpos

import (
	"fmt"
	"sort"
	"strconv"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/signadot/syntree/red"
	"go.lsp.dev/protocol"
)

// Index records the line structure of a text.
type Index struct {
	d  []byte
	nl []int
}

func NewIndex(d []byte) *Index {
	x := &Index{d: d}
	for i, c := range d {
		if c == '\n' {
			x.nl = append(x.nl, i)
		}
	}
	return x
}

func (x *Index) Len() int { return len(x.d) }

// Lines returns the number of lines; a trailing newline starts a new,
// empty, line.
func (x *Index) Lines() int { return len(x.nl) + 1 }

// LineCol returns the zero based line and byte column of off.
func (x *Index) LineCol(off int) (int, int) {
	N := len(x.nl)
	di := sort.Search(N, func(i int) bool {
		return x.nl[i] >= off
	})
	if di == 0 {
		return 0, off
	}
	return di, off - x.nl[di-1] - 1
}

// LineStart returns the offset of the first byte of line.
func (x *Index) LineStart(line int) int {
	switch {
	case line <= 0:
		return 0
	case line > len(x.nl):
		return len(x.d)
	}
	return x.nl[line-1] + 1
}

func (x *Index) lineEnd(line int) int {
	if line < len(x.nl) {
		return x.nl[line]
	}
	return len(x.d)
}

// Offset returns the offset of a line and byte column, clamped to the line.
func (x *Index) Offset(line, col int) int {
	start, end := x.LineStart(line), x.lineEnd(line)
	return min(start+max(col, 0), end)
}

// Position returns the LSP position of off. Characters are counted in
// UTF-16 code units.
func (x *Index) Position(off int) protocol.Position {
	off = min(max(off, 0), len(x.d))
	line, _ := x.LineCol(off)
	units := 0
	for i := x.LineStart(line); i < off; {
		r, sz := utf8.DecodeRune(x.d[i:])
		units += runeUnits(r)
		i += sz
	}
	return protocol.Position{Line: uint32(line), Character: uint32(units)}
}

// OffsetOf is the inverse of Position. Characters past the end of the line
// select the end of the line.
func (x *Index) OffsetOf(p protocol.Position) int {
	line := int(p.Line)
	if line > len(x.nl) {
		return len(x.d)
	}
	i, end := x.LineStart(line), x.lineEnd(line)
	for units := 0; i < end && units < int(p.Character); {
		r, sz := utf8.DecodeRune(x.d[i:])
		units += runeUnits(r)
		i += sz
	}
	return i
}

// Range converts a red range to an LSP range.
func (x *Index) Range(r red.Range) protocol.Range {
	return protocol.Range{Start: x.Position(r.Start), End: x.Position(r.End)}
}

// Describe renders off with a little surrounding text, for error messages.
func (x *Index) Describe(off int) string {
	sample := string(x.d[max(0, off-5):min(off+5, len(x.d))])
	sample = strconv.Quote(sample)
	sample = sample[1 : len(sample)-1]
	line, col := x.LineCol(off)
	return fmt.Sprintf("`...%s...` at offset %d (line=%d, col=%d)", sample, off, line, col)
}

func runeUnits(r rune) int {
	if n := utf16.RuneLen(r); n > 0 {
		return n
	}
	return 1
}
