package render

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xyproto/vt"

	"github.com/chazu/befuddle/funge"
)

// TerminalRenderer draws the whole execution full-screen: the field as
// a grid with the pointer cell highlighted, then the stack and the
// program output in a status area below it. Key presses serve the
// character-input opcode; number input is collected digit by digit
// until Enter.
type TerminalRenderer struct {
	canvas *vt.Canvas
	tty    *vt.TTY

	field  *funge.Field
	stack  []funge.Cell
	px, py int
	output strings.Builder
	prompt string
}

// NewTerminalRenderer takes over the terminal. Callers must Close to
// restore it.
func NewTerminalRenderer() (*TerminalRenderer, error) {
	tty, err := vt.NewTTY()
	if err != nil {
		return nil, fmt.Errorf("terminal renderer: %w", err)
	}

	vt.Init()
	c := vt.NewCanvas()
	c.HideCursor()
	tty.SetTimeout(20 * time.Millisecond)

	return &TerminalRenderer{canvas: c, tty: tty}, nil
}

// Close restores the terminal.
func (r *TerminalRenderer) Close() {
	r.tty.Close()
	vt.Close()
	fmt.Print(vt.Stop())
	fmt.Println()
}

// DrawField records the field snapshot and redraws the frame.
func (r *TerminalRenderer) DrawField(f *funge.Field) {
	r.field = f
	r.draw()
}

// DrawStack records the stack snapshot and redraws the frame.
func (r *TerminalRenderer) DrawStack(s *funge.Stack) {
	r.stack = s.Values()
	r.draw()
}

// DrawPointer records the pointer position and redraws the frame.
func (r *TerminalRenderer) DrawPointer(x, y int) {
	r.px, r.py = x, y
	r.draw()
}

// WriteChar appends one character to the output area.
func (r *TerminalRenderer) WriteChar(c rune) {
	r.output.WriteRune(c)
	r.draw()
}

// WriteNumber appends one formatted integer to the output area.
func (r *TerminalRenderer) WriteNumber(n int32) {
	r.output.WriteString(strconv.FormatInt(int64(n), 10))
	r.draw()
}

// ReadChar blocks until a key is pressed and returns it.
func (r *TerminalRenderer) ReadChar() (rune, error) {
	r.prompt = "char?"
	defer func() { r.prompt = ""; r.draw() }()
	r.draw()

	for {
		raw := r.tty.CustomString()
		if raw == "" {
			continue
		}
		return []rune(raw)[0], nil
	}
}

// ReadNumber collects digits until Enter and returns the parsed
// integer. A finished entry that is not an integer is an explicit
// failure.
func (r *TerminalRenderer) ReadNumber() (int32, error) {
	var buf strings.Builder
	r.prompt = "number? "
	defer func() { r.prompt = ""; r.draw() }()
	r.draw()

	for {
		raw := r.tty.CustomString()
		for _, c := range raw {
			switch {
			case c == '\r' || c == '\n':
				n, err := strconv.ParseInt(buf.String(), 10, 32)
				if err != nil {
					return 0, fmt.Errorf("read number: %q is not an integer", buf.String())
				}
				return int32(n), nil
			case c == '-' && buf.Len() == 0, c >= '0' && c <= '9':
				buf.WriteRune(c)
				r.prompt = "number? " + buf.String()
				r.draw()
			}
		}
	}
}

// draw repaints the frame: field grid, pointer highlight, then a
// status area with the stack, any input prompt and the output tail.
func (r *TerminalRenderer) draw() {
	c := r.canvas
	c.Clear()
	w, h := c.Size()

	fieldRows := uint(0)
	if r.field != nil {
		fieldRows = min(uint(r.field.Height()), h)
		cols := min(uint(r.field.Width()), w)
		for y := uint(0); y < fieldRows; y++ {
			for x := uint(0); x < cols; x++ {
				cell, _ := r.field.Get(int(x), int(y))
				ch := rune(cell)
				if ch < ' ' || ch > '~' {
					ch = '.'
				}
				fg, bg := vt.LightGray, vt.DefaultBackground
				if int(x) == r.px && int(y) == r.py {
					fg, bg = vt.Black, vt.White
				}
				c.WriteRune(x, y, fg, bg, ch)
			}
		}
	}

	status := []string{r.stackLine(), r.prompt, r.outputTail(int(w))}
	y := fieldRows
	for _, line := range status {
		if line == "" || y >= h {
			continue
		}
		if len(line) > int(w) {
			line = line[:w]
		}
		c.WriteString(0, y, vt.LightGray, vt.DefaultBackground, line)
		y++
	}

	c.Draw()
}

func (r *TerminalRenderer) stackLine() string {
	parts := make([]string, len(r.stack))
	for i, v := range r.stack {
		parts[i] = strconv.FormatInt(int64(v), 10)
	}
	return "stack: [" + strings.Join(parts, " ") + "]"
}

// outputTail returns the last output line, clipped to the frame width.
func (r *TerminalRenderer) outputTail(w int) string {
	out := r.output.String()
	if i := strings.LastIndexByte(out, '\n'); i >= 0 {
		out = out[i+1:]
	}
	if len(out) > w {
		out = out[len(out)-w:]
	}
	return out
}
