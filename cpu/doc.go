// Package cpu implements the instruction set and assembler for the basic
// computer: a 16-bit word machine with 4096 words of memory.
//
// Instructions come in three classes. Memory-reference instructions pack a
// four bit opcode, whose top bit selects indirect addressing, with a 12-bit
// address. Register-reference and input-output instructions are a single
// fixed word. The HEX and DEC directives store a literal word.
//
// The assembler is single pass: a label can only be referenced by lines
// that follow its definition.
package cpu
