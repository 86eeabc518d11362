package funge

import (
	"strings"
	"unicode/utf8"
)

// Cell is one playfield element. Cells are plain integer data; a cell
// acts as an instruction only while the pointer is on it, and as a
// character code when printed.
type Cell int32

// Field is a rectangular grid of cells with a fixed width and height,
// stored row-major. Reads outside the field report absence and writes
// outside it are dropped; a field is never resized.
type Field struct {
	width  int
	height int
	cells  []Cell
}

// NewField returns a width x height field with every cell set to space,
// the no-op opcode.
func NewField(width, height int) *Field {
	f := &Field{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	for i := range f.cells {
		f.cells[i] = OpNoOp
	}
	return f
}

// FieldFromString returns a width x height field loaded from source.
func FieldFromString(source string, width, height int) *Field {
	f := NewField(width, height)
	f.Load(source)
	return f
}

// Load copies source text into the field row by row. Rows beyond the
// field height and characters beyond the field width are dropped
// silently; a short line leaves the rest of its row untouched. A rune
// wider than a single byte ends that line's copy early.
func (f *Field) Load(source string) {
	y := 0
	for _, line := range strings.Split(source, "\n") {
		if y >= f.height {
			break
		}
		line = strings.TrimSuffix(line, "\r")

		x := 0
		for _, r := range line {
			if x >= f.width || utf8.RuneLen(r) > 1 {
				break
			}
			f.cells[x+y*f.width] = Cell(r)
			x++
		}
		y++
	}
}

// Width returns the field width in cells.
func (f *Field) Width() int { return f.width }

// Height returns the field height in cells.
func (f *Field) Height() int { return f.height }

// Get returns the cell at (x, y). The second result is false when the
// coordinate is outside the field, so callers can tell an in-bounds
// space from an out-of-bounds absence.
func (f *Field) Get(x, y int) (Cell, bool) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return 0, false
	}
	return f.cells[x+y*f.width], true
}

// Set writes value at (x, y). Writes outside the field are dropped.
func (f *Field) Set(x, y int, value Cell) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	f.cells[x+y*f.width] = value
}

// Row returns row y as a string of cell characters, for rendering.
func (f *Field) Row(y int) string {
	if y < 0 || y >= f.height {
		return ""
	}
	var sb strings.Builder
	for x := 0; x < f.width; x++ {
		sb.WriteRune(rune(f.cells[x+y*f.width]))
	}
	return sb.String()
}
