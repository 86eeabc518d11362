// Package render provides the presentation side of befuddle: the
// renderer capability set, a plain line renderer for streams, and a
// full-screen terminal renderer.
package render

import "github.com/chazu/befuddle/funge"

// Renderer is a console that can additionally draw execution
// snapshots. Draw calls receive read-only views between steps; a
// renderer never mutates the execution.
type Renderer interface {
	funge.Console

	// DrawField draws the current playfield.
	DrawField(f *funge.Field)
	// DrawStack draws the current operand stack.
	DrawStack(s *funge.Stack)
	// DrawPointer marks the pointer position.
	DrawPointer(x, y int)

	// Close flushes buffered output and restores the terminal.
	Close()
}
