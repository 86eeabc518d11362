package funge

import (
	"fmt"
	"math/rand"
	"time"
)

// Console is the engine's only channel to the outside world. Writes
// must preserve step order; reads block until input is available.
// Malformed numeric input is the console's responsibility to reject or
// retry; the engine treats a returned value as authoritative and a
// returned error as fatal.
type Console interface {
	// WriteChar emits one character of program output.
	WriteChar(r rune)
	// WriteNumber emits one formatted integer of program output.
	WriteNumber(n int32)
	// ReadChar reads one character and returns it.
	ReadChar() (rune, error)
	// ReadNumber reads one integer and returns it.
	ReadNumber() (int32, error)
}

// DivisionByZeroError reports a division or modulo by zero. Befunge
// defines no recovery for it; the execution halts on the faulting cell.
type DivisionByZeroError struct {
	Op   Cell
	X, Y int
}

func (e *DivisionByZeroError) Error() string {
	return fmt.Sprintf("division by zero: %q at (%d,%d)", rune(e.Op), e.X, e.Y)
}

// IsDivisionByZero checks whether an error is a division fault.
func IsDivisionByZero(err error) bool {
	_, ok := err.(*DivisionByZeroError)
	return ok
}

// Execution runs one program on one field. It owns its field, operand
// stack and pointer exclusively; renderers are handed read-only
// snapshots between steps and never mutate the execution.
type Execution struct {
	field      *Field
	stack      *Stack
	pc         Pointer
	stringMode bool
	active     bool
	console    Console
	rng        *rand.Rand
}

// NewExecution returns a running execution over field with the pointer
// at (0,0) facing right. console may be nil, which turns the I/O
// opcodes into no-ops that keep stack discipline (reads push zero).
func NewExecution(field *Field, console Console) *Execution {
	return NewSeededExecution(field, console, time.Now().UnixNano())
}

// NewSeededExecution is NewExecution with a fixed seed for the random
// direction opcode, for reproducible runs.
func NewSeededExecution(field *Field, console Console, seed int64) *Execution {
	return &Execution{
		field:   field,
		stack:   &Stack{},
		pc:      Pointer{Dir: DirRight},
		active:  true,
		console: console,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// Field returns the execution's playfield.
func (e *Execution) Field() *Field { return e.field }

// Stack returns the execution's operand stack.
func (e *Execution) Stack() *Stack { return e.stack }

// Pointer returns the current pointer position and direction.
func (e *Execution) Pointer() Pointer { return e.pc }

// StringMode reports whether the pointer is inside a string literal.
func (e *Execution) StringMode() bool { return e.stringMode }

// Halted reports whether the execution has stopped. Halting is
// terminal: once true, further steps have no effect.
func (e *Execution) Halted() bool { return !e.active }

// Step executes the cell under the pointer and advances the pointer
// once in its direction, wrapping at the field edges. Stepping a
// halted execution does nothing. A non-nil error (division by zero,
// console read failure) halts the execution on the faulting cell.
func (e *Execution) Step() error {
	if !e.active {
		return nil
	}

	cell, ok := e.field.Get(e.pc.X, e.pc.Y)
	if !ok {
		// Unreachable while movement wraps; skip the cell rather
		// than fault.
		e.pc.advance(e.field.width, e.field.height)
		return nil
	}

	if e.stringMode {
		if cell == OpToggleString {
			e.stringMode = false
		} else {
			e.stack.Push(cell)
		}
		e.pc.advance(e.field.width, e.field.height)
		return nil
	}

	if err := e.dispatch(cell); err != nil {
		e.active = false
		return err
	}
	if e.active {
		e.pc.advance(e.field.width, e.field.height)
	}
	return nil
}

// Run steps the execution until it halts. Programs that never reach
// '@' run forever; that is language semantics, not a fault.
func (e *Execution) Run() error {
	for e.active {
		if err := e.Step(); err != nil {
			return err
		}
	}
	return nil
}

// pop2 pops the top two cells: a is the old top and left operand, b
// the cell beneath it. Missing operands default to zero.
func (e *Execution) pop2() (a, b Cell) {
	a = e.stack.Pop()
	b = e.stack.Pop()
	return a, b
}

func (e *Execution) dispatch(cell Cell) error {
	switch cell {
	case OpNoOp:

	case OpStop:
		e.active = false

	case OpToggleString:
		e.stringMode = true

	case OpDiscard:
		e.stack.Pop()

	case OpDuplicate:
		a := e.stack.Pop()
		e.stack.Push(a)
		e.stack.Push(a)

	case OpSwap:
		a, b := e.pop2()
		e.stack.Push(a)
		e.stack.Push(b)

	case OpNegate:
		if e.stack.Pop() == 0 {
			e.stack.Push(1)
		} else {
			e.stack.Push(0)
		}

	case OpAdd:
		a, b := e.pop2()
		e.stack.Push(a + b)

	case OpSubtract:
		a, b := e.pop2()
		e.stack.Push(a - b)

	case OpMultiply:
		a, b := e.pop2()
		e.stack.Push(a * b)

	case OpDivide:
		a, b := e.pop2()
		if b == 0 {
			return &DivisionByZeroError{Op: cell, X: e.pc.X, Y: e.pc.Y}
		}
		e.stack.Push(a / b)

	case OpModulo:
		a, b := e.pop2()
		if b == 0 {
			return &DivisionByZeroError{Op: cell, X: e.pc.X, Y: e.pc.Y}
		}
		e.stack.Push(a % b)

	case OpCompare:
		a, b := e.pop2()
		if a > b {
			e.stack.Push(1)
		} else {
			e.stack.Push(0)
		}

	case OpRight:
		e.pc.Dir = DirRight
	case OpLeft:
		e.pc.Dir = DirLeft
	case OpUp:
		e.pc.Dir = DirUp
	case OpDown:
		e.pc.Dir = DirDown

	case OpRandom:
		e.pc.Dir = Direction(e.rng.Intn(4))

	case OpIfLeftRight:
		if e.stack.Pop() > 0 {
			e.pc.Dir = DirLeft
		} else {
			e.pc.Dir = DirRight
		}

	case OpIfUpDown:
		if e.stack.Pop() > 0 {
			e.pc.Dir = DirUp
		} else {
			e.pc.Dir = DirDown
		}

	case OpBridge:
		// One extra move now, plus the normal move after dispatch.
		e.pc.advance(e.field.width, e.field.height)

	case OpReadCell:
		row := e.stack.Pop()
		col := e.stack.Pop()
		if v, ok := e.field.Get(int(col), int(row)); ok {
			e.stack.Push(v)
		}

	case OpWriteCell:
		row := e.stack.Pop()
		col := e.stack.Pop()
		value := e.stack.Pop()
		e.field.Set(int(col), int(row), value)

	case OpWriteChar:
		a := e.stack.Pop()
		if e.console != nil {
			e.console.WriteChar(rune(a))
		}

	case OpWriteInt:
		a := e.stack.Pop()
		if e.console != nil {
			e.console.WriteNumber(int32(a))
		}

	case OpReadInt:
		var n int32
		if e.console != nil {
			v, err := e.console.ReadNumber()
			if err != nil {
				return fmt.Errorf("read number: %w", err)
			}
			n = v
		}
		e.stack.Push(Cell(n))

	case OpReadChar:
		var r rune
		if e.console != nil {
			v, err := e.console.ReadChar()
			if err != nil {
				return fmt.Errorf("read char: %w", err)
			}
			r = v
		}
		e.stack.Push(Cell(r))

	default:
		if cell >= '0' && cell <= '9' {
			e.stack.Push(cell - '0')
		} else {
			e.stack.Push(cell)
		}
	}
	return nil
}
