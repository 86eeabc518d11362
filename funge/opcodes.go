package funge

// ---------------------------------------------------------------------------
// Opcode definitions
// ---------------------------------------------------------------------------

// Opcodes are ordinary cell values; the character codes below come from
// Befunge-93. Digits 0-9 push their numeric value, and any cell that
// matches no opcode pushes its raw value.

// Stack manipulation
const (
	OpNoOp      Cell = ' '  // no operation
	OpDiscard   Cell = '$'  // pop and drop
	OpDuplicate Cell = ':'  // duplicate top of stack
	OpSwap      Cell = '\\' // swap top two
)

// Arithmetic and logic (first pop is the top of the stack and the left
// operand; the cell beneath it is the right operand)
const (
	OpAdd      Cell = '+' // top + second
	OpSubtract Cell = '-' // top - second
	OpMultiply Cell = '*' // top * second
	OpDivide   Cell = '/' // top / second, integer division
	OpModulo   Cell = '%' // top % second
	OpNegate   Cell = '!' // logical not
	OpCompare  Cell = '`' // 1 if top > second else 0
)

// Pointer control
const (
	OpRight       Cell = '>'
	OpLeft        Cell = '<'
	OpUp          Cell = '^'
	OpDown        Cell = 'v'
	OpRandom      Cell = '?' // uniformly random direction
	OpIfLeftRight Cell = '_' // left if top > 0 else right
	OpIfUpDown    Cell = '|' // up if top > 0 else down
	OpBridge      Cell = '#' // skip the next cell
)

// Field access (self-modification)
const (
	OpReadCell  Cell = 'g' // pop row, col; push field value
	OpWriteCell Cell = 'p' // pop row, col, value; write field value
)

// Console I/O
const (
	OpWriteInt  Cell = '.' // pop and emit as a formatted number
	OpWriteChar Cell = ',' // pop and emit as a character
	OpReadInt   Cell = '&' // read a number and push it
	OpReadChar  Cell = '~' // read a character and push its code
)

// Mode and termination
const (
	OpToggleString Cell = '"' // enter or leave string mode
	OpStop         Cell = '@' // halt
)
