package render

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chazu/befuddle/funge"
)

// LineRenderer writes program output straight to a writer and reads
// input from a reader. Draw calls print plain-text snapshots, which
// makes it usable for tracing on any pair of streams; it is the
// default for non-interactive runs.
type LineRenderer struct {
	out *bufio.Writer
	in  *bufio.Reader
}

// NewLineRenderer returns a line renderer over the given streams.
func NewLineRenderer(out io.Writer, in io.Reader) *LineRenderer {
	return &LineRenderer{
		out: bufio.NewWriter(out),
		in:  bufio.NewReader(in),
	}
}

// WriteChar emits one character. The writer is flushed on every write
// so output stays ordered with engine steps.
func (r *LineRenderer) WriteChar(c rune) {
	r.out.WriteRune(c)
	r.out.Flush()
}

// WriteNumber emits one integer in decimal.
func (r *LineRenderer) WriteNumber(n int32) {
	r.out.WriteString(strconv.FormatInt(int64(n), 10))
	r.out.Flush()
}

// ReadChar reads a single character from the input stream.
func (r *LineRenderer) ReadChar() (rune, error) {
	c, _, err := r.in.ReadRune()
	if err != nil {
		return 0, fmt.Errorf("read char: %w", err)
	}
	return c, nil
}

// ReadNumber reads one line and parses it as a decimal integer. A
// malformed line is an explicit failure, never a substituted value.
func (r *LineRenderer) ReadNumber() (int32, error) {
	line, err := r.in.ReadString('\n')
	if err != nil && line == "" {
		return 0, fmt.Errorf("read number: %w", err)
	}
	line = strings.TrimSpace(line)
	n, err := strconv.ParseInt(line, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("read number: %q is not an integer", line)
	}
	return int32(n), nil
}

// DrawField prints the grid between rule lines.
func (r *LineRenderer) DrawField(f *funge.Field) {
	rule := strings.Repeat("-", f.Width())
	fmt.Fprintln(r.out, rule)
	for y := 0; y < f.Height(); y++ {
		fmt.Fprintln(r.out, f.Row(y))
	}
	fmt.Fprintln(r.out, rule)
	r.out.Flush()
}

// DrawStack prints the stack bottom to top on one line.
func (r *LineRenderer) DrawStack(s *funge.Stack) {
	vals := s.Values()
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.FormatInt(int64(v), 10)
	}
	fmt.Fprintf(r.out, "stack: [%s]\n", strings.Join(parts, " "))
	r.out.Flush()
}

// DrawPointer prints the pointer position.
func (r *LineRenderer) DrawPointer(x, y int) {
	fmt.Fprintf(r.out, "pc: (%d,%d)\n", x, y)
	r.out.Flush()
}

// Close flushes any buffered output.
func (r *LineRenderer) Close() {
	r.out.Flush()
}
