package funge

// Stack is the operand stack: last in, first out, unbounded. Popping an
// empty stack yields zero instead of failing, so malformed programs
// keep running on defaulted operands.
type Stack struct {
	cells []Cell
}

// Push places v on top of the stack.
func (s *Stack) Push(v Cell) {
	s.cells = append(s.cells, v)
}

// Pop removes and returns the top cell, or zero when the stack is
// empty.
func (s *Stack) Pop() Cell {
	if len(s.cells) == 0 {
		return 0
	}
	v := s.cells[len(s.cells)-1]
	s.cells = s.cells[:len(s.cells)-1]
	return v
}

// Len returns the number of cells on the stack.
func (s *Stack) Len() int { return len(s.cells) }

// Values returns a copy of the stack from bottom to top, for rendering.
func (s *Stack) Values() []Cell {
	out := make([]Cell, len(s.cells))
	copy(out, s.cells)
	return out
}
