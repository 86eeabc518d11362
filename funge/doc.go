// Package funge implements the Befunge-93 execution core.
//
// This package contains:
//   - The playfield: a fixed-size grid of integer cells
//   - The operand stack with the zero-on-underflow policy
//   - The instruction pointer and its wrapping movement
//   - The single-step execution engine and opcode dispatch
//   - CBOR field images for saving and loading playfields
//
// The engine performs no I/O of its own; the character and number
// opcodes go through an injected Console, so any presentation (plain
// streams, a full-screen terminal) can be supplied by the caller.
package funge
