package cpu

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strings"
)

// Opcode is the listing entry of one emitted word.
type Opcode struct {
	LineNo  int
	Address uint16
	Words   []string
	Code    Code
}

// Program is the result of a successful assembly.
type Program struct {
	Memory  Memory   // Memory image.
	Label   Labels   // Final label table.
	Opcodes []Opcode // Emitted words, in source order.
}

// Debug returns the listing entry that produced the word at address, or nil.
// When an address was written more than once, the last write wins.
func (prog *Program) Debug(address uint16) *Opcode {
	for n := len(prog.Opcodes) - 1; n >= 0; n-- {
		if prog.Opcodes[n].Address == address {
			return &prog.Opcodes[n]
		}
	}

	return nil
}

// Binary returns the memory image as big-endian words.
func (prog *Program) Binary() []byte {
	return prog.Memory.Binary()
}

// Codes iterates over the emitted words in source order.
func (prog *Program) Codes() iter.Seq2[uint16, Code] {
	return func(yield func(address uint16, code Code) bool) {
		for _, op := range prog.Opcodes {
			if !yield(op.Address, op.Code) {
				return
			}
		}
	}
}

// Hex writes 'ADDR: WORD' for every non-zero word of the image.
func (prog *Program) Hex(output io.Writer) error {
	w := bufio.NewWriter(output)
	for address, code := range prog.Memory.Used() {
		fmt.Fprintf(w, "%03X: %04X\n", address, uint16(code))
	}

	return w.Flush()
}

// Listing writes the assembly listing followed by the label table.
func (prog *Program) Listing(output io.Writer) error {
	w := bufio.NewWriter(output)

	fmt.Fprintf(w, "%-4s %-4s  %5s  %s\n", f("ADDR"), f("WORD"), f("LINE"), f("SOURCE"))
	for _, op := range prog.Opcodes {
		fmt.Fprintf(w, "%03X  %04X  %5d  %s\n", op.Address, uint16(op.Code), op.LineNo, strings.Join(op.Words, " "))
	}

	names := prog.Label.Names()
	if len(names) != 0 {
		fmt.Fprintf(w, "\n%s\n", f("LABELS"))
		for _, name := range names {
			fmt.Fprintf(w, "%-8s %03X\n", name, prog.Label[name])
		}
	}

	return w.Flush()
}
