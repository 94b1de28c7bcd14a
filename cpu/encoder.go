// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"errors"
	"strconv"
	"strings"
)

const INDIRECT_MARKER = "I"

// Literal ranges, by class.
const (
	DATA_MIN = -0x8000
	DATA_MAX = 0xffff
)

// Encode assembles an instruction body into a word, resolving operands
// against the labels defined so far.
func Encode(body string, labels Labels) (code Code, err error) {
	words := strings.Fields(body)
	if len(words) == 0 {
		err = ErrUnknownMnemonic
		return
	}

	mn, err := ParseMnemonic(words[0])
	if err != nil {
		return
	}

	args := words[1:]

	switch mn.Class() {
	case CLASS_REGISTER, CLASS_IO:
		if len(args) != 0 {
			err = ErrExtraTokens
			return
		}
		code = MakeCodeFixed(mn)
	case CLASS_MEMORY:
		var ins Instruction
		ins, err = decodeMemory(mn, args, labels)
		if err != nil {
			return
		}
		code, err = ins.Encode()
	case CLASS_DATA:
		var value uint16
		value, err = decodeData(mn, args, labels)
		if err != nil {
			return
		}
		code = Code(value)
	}

	return
}

// decodeMemory parses 'ADDRESS [I]' for a memory-reference mnemonic.
func decodeMemory(mn Mnemonic, args []string, labels Labels) (ins Instruction, err error) {
	if len(args) == 0 {
		err = ErrMissingOperand
		return
	}

	value, err := operandOf(args[0], mn.Base(), labels)
	if err != nil {
		return
	}
	if value < 0 || value > ADDRESS_MASK {
		err = ErrInvalidOperand
		return
	}

	ins = Instruction{Mnemonic: mn, Address: uint16(value)}

	if len(args) > 1 {
		if args[1] != INDIRECT_MARKER {
			err = ErrInvalidIndirectFlag
			return
		}
		ins.Indirect = true
	}

	if len(args) > 2 {
		err = ErrExtraTokens
		return
	}

	return
}

// decodeData parses the single operand of a HEX or DEC directive.
func decodeData(mn Mnemonic, args []string, labels Labels) (value uint16, err error) {
	if len(args) == 0 {
		err = ErrMissingOperand
		return
	}
	if len(args) > 1 {
		err = ErrExtraTokens
		return
	}

	v64, err := operandOf(args[0], mn.Base(), labels)
	if err != nil {
		return
	}
	if v64 < DATA_MIN || v64 > DATA_MAX {
		err = ErrInvalidOperand
		return
	}

	// Negative literals are stored in two's complement.
	value = uint16(v64)
	return
}

// operandOf resolves an operand as a literal in the given base, then as a
// label, then as a $(...) expression.
func operandOf(word string, base int, labels Labels) (value int64, err error) {
	value, err = strconv.ParseInt(word, base, 64)
	if err == nil {
		return
	}
	if errors.Is(err, strconv.ErrRange) {
		err = ErrInvalidOperand
		return
	}

	address, err := labels.Lookup(word)
	if err == nil {
		value = int64(address)
		return
	}

	if isExpression(word) {
		value, err = evalExpression(word, labels)
	}

	return
}
