// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/golang/glog"
)

// Assembler is a single pass assembler for the basic computer.
//
// Labels are bound in source order, so an operand can only refer to a label
// defined on an earlier line.
type Assembler struct {
	Verbose bool // If set, verbosely logs the assembler actions.

	// Report, if set, is called with the failing line before Parse returns
	// an error.
	Report func(lineno int, line string, err error)

	Label   Labels   // Map of labels to addresses.
	Opcode  []Opcode // List of emitted words.
	Address int      // Address of the next word.

	predefine Labels
	memory    Memory
}

// Predefine binds a label before the first line of every Parse.
func (asm *Assembler) Predefine(name string, address uint16) {
	if asm.predefine == nil {
		asm.predefine = Labels{name: address}
	} else {
		asm.predefine[name] = address
	}
}

// reset prepares the assembler for a new source file.
func (asm *Assembler) reset() {
	asm.Label = maps.Clone(asm.predefine)
	if asm.Label == nil {
		asm.Label = Labels{}
	}
	asm.Opcode = asm.Opcode[:0]
	asm.Address = 0
	clear(asm.memory[:])
}

// Assemble assembles source text into a Program.
func (asm *Assembler) Assemble(source string) (prog *Program, err error) {
	return asm.Parse(strings.NewReader(source))
}

// Parse parses an input stream into a Program. On error no Program is
// returned, and the error is an *ErrSyntax naming the failing line.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var text string
	var lineno int

	defer func() {
		if err != nil {
			if asm.Report != nil {
				asm.Report(lineno, text, err)
			}
			err = &ErrSyntax{LineNo: lineno, Line: text, Err: err}
			prog = nil
		}
	}()

	asm.reset()

scan:
	for scanner.Scan() {
		text = scanner.Text()
		lineno += 1

		if asm.Verbose {
			glog.Infof("%v: %v", lineno, text)
		}

		var line Line
		line, err = ParseLine(text)
		if err != nil {
			return
		}

		switch line.Kind {
		case LINE_EMPTY:
			continue
		case LINE_ORIGIN:
			asm.Address = int(line.Origin)
		case LINE_END:
			break scan
		case LINE_INSTRUCTION:
			err = asm.emit(lineno, line)
			if err != nil {
				return
			}
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	prog = &Program{
		Memory:  asm.memory,
		Label:   maps.Clone(asm.Label),
		Opcodes: slices.Clone(asm.Opcode),
	}

	return
}

// emit binds the line's label, encodes its body, and stores the word at
// the current address.
func (asm *Assembler) emit(lineno int, line Line) (err error) {
	if len(line.Label) != 0 {
		err = asm.Label.Define(line.Label, uint16(asm.Address))
		if err != nil {
			return
		}
	}

	if asm.Address >= MEMORY_SIZE {
		err = ErrProgramTooLarge
		return
	}

	code, err := Encode(line.Body, asm.Label)
	if err != nil {
		return
	}

	if asm.Verbose {
		glog.Infof("%03X: %04X %v", asm.Address, uint16(code), line.Body)
	}

	asm.memory[asm.Address] = code
	asm.Opcode = append(asm.Opcode, Opcode{
		LineNo:  lineno,
		Address: uint16(asm.Address),
		Words:   strings.Fields(line.Body),
		Code:    code,
	})
	asm.Address += 1

	return
}
