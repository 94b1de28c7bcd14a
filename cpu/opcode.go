package cpu

import (
	"fmt"
)

// CodeClass is the category of a mnemonic.
type CodeClass int

//go:generate go tool stringer -linecomment -type=CodeClass
const (
	CLASS_MEMORY   = CodeClass(0) // memory
	CLASS_REGISTER = CodeClass(1) // register
	CLASS_IO       = CodeClass(2) // io
	CLASS_DATA     = CodeClass(3) // data
)

// Mnemonic is an instruction or data directive name.
type Mnemonic int

//go:generate go tool stringer -linecomment -type=Mnemonic
const (
	// Memory-reference
	OP_AND = Mnemonic(0) // AND
	OP_ADD = Mnemonic(1) // ADD
	OP_LDA = Mnemonic(2) // LDA
	OP_STA = Mnemonic(3) // STA
	OP_BUN = Mnemonic(4) // BUN
	OP_BSA = Mnemonic(5) // BSA
	OP_ISZ = Mnemonic(6) // ISZ

	// Register-reference
	OP_CLA = Mnemonic(7)  // CLA
	OP_CLE = Mnemonic(8)  // CLE
	OP_CMA = Mnemonic(9)  // CMA
	OP_CME = Mnemonic(10) // CME
	OP_CIR = Mnemonic(11) // CIR
	OP_CIL = Mnemonic(12) // CIL
	OP_INC = Mnemonic(13) // INC
	OP_SPA = Mnemonic(14) // SPA
	OP_SNA = Mnemonic(15) // SNA
	OP_SZA = Mnemonic(16) // SZA
	OP_SZE = Mnemonic(17) // SZE
	OP_HLT = Mnemonic(18) // HLT

	// Input-output
	OP_INP = Mnemonic(19) // INP
	OP_OUT = Mnemonic(20) // OUT
	OP_SKI = Mnemonic(21) // SKI
	OP_SKO = Mnemonic(22) // SKO
	OP_ION = Mnemonic(23) // ION
	OP_IOF = Mnemonic(24) // IOF

	// Numeric literals
	OP_HEX = Mnemonic(25) // HEX
	OP_DEC = Mnemonic(26) // DEC
)

// opcodeEntry is the fixed encoding of a mnemonic.
type opcodeEntry struct {
	class    CodeClass
	direct   uint16 // Opcode nibble, direct addressing.
	indirect uint16 // Opcode nibble, indirect addressing.
	word     uint16 // Complete word for register and io mnemonics.
	base     int    // Base of a literal operand.
}

// opcodeTable is indexed by Mnemonic. The memory-reference nibbles are
// listed for both addressing modes rather than computed.
var opcodeTable = [...]opcodeEntry{
	OP_AND: {class: CLASS_MEMORY, direct: 0x0, indirect: 0x8, base: 16},
	OP_ADD: {class: CLASS_MEMORY, direct: 0x1, indirect: 0x9, base: 16},
	OP_LDA: {class: CLASS_MEMORY, direct: 0x2, indirect: 0xa, base: 16},
	OP_STA: {class: CLASS_MEMORY, direct: 0x3, indirect: 0xb, base: 16},
	OP_BUN: {class: CLASS_MEMORY, direct: 0x4, indirect: 0xc, base: 16},
	OP_BSA: {class: CLASS_MEMORY, direct: 0x5, indirect: 0xd, base: 16},
	OP_ISZ: {class: CLASS_MEMORY, direct: 0x6, indirect: 0xe, base: 16},

	OP_CLA: {class: CLASS_REGISTER, word: 0x7800},
	OP_CLE: {class: CLASS_REGISTER, word: 0x7400},
	OP_CMA: {class: CLASS_REGISTER, word: 0x7200},
	OP_CME: {class: CLASS_REGISTER, word: 0x7100},
	OP_CIR: {class: CLASS_REGISTER, word: 0x7080},
	OP_CIL: {class: CLASS_REGISTER, word: 0x7040},
	OP_INC: {class: CLASS_REGISTER, word: 0x7020},
	OP_SPA: {class: CLASS_REGISTER, word: 0x7010},
	OP_SNA: {class: CLASS_REGISTER, word: 0x7008},
	OP_SZA: {class: CLASS_REGISTER, word: 0x7004},
	OP_SZE: {class: CLASS_REGISTER, word: 0x7002},
	OP_HLT: {class: CLASS_REGISTER, word: 0x7001},

	OP_INP: {class: CLASS_IO, word: 0xf800},
	OP_OUT: {class: CLASS_IO, word: 0xf400},
	OP_SKI: {class: CLASS_IO, word: 0xf200},
	OP_SKO: {class: CLASS_IO, word: 0xf100},
	OP_ION: {class: CLASS_IO, word: 0xf080},
	OP_IOF: {class: CLASS_IO, word: 0xf040},

	OP_HEX: {class: CLASS_DATA, base: 16},
	OP_DEC: {class: CLASS_DATA, base: 10},
}

// Reverse lookups, derived from opcodeTable.
var (
	mnemonicMap = map[string]Mnemonic{}
	fixedMap    = map[Code]Mnemonic{}
	nibbleMap   = map[uint16]Instruction{}
)

func init() {
	for n, entry := range opcodeTable {
		mn := Mnemonic(n)
		mnemonicMap[mn.String()] = mn
		switch entry.class {
		case CLASS_MEMORY:
			nibbleMap[entry.direct] = Instruction{Mnemonic: mn}
			nibbleMap[entry.indirect] = Instruction{Mnemonic: mn, Indirect: true}
		case CLASS_REGISTER, CLASS_IO:
			fixedMap[Code(entry.word)] = mn
		}
	}
}

// ParseMnemonic returns the mnemonic named by text. Names are case sensitive.
func ParseMnemonic(text string) (mn Mnemonic, err error) {
	mn, ok := mnemonicMap[text]
	if !ok {
		err = ErrUnknownMnemonic
	}
	return
}

// Valid returns true if mn is a member of the opcode table.
func (mn Mnemonic) Valid() bool {
	return mn >= 0 && int(mn) < len(opcodeTable)
}

// Class returns the category of the mnemonic.
func (mn Mnemonic) Class() CodeClass {
	return opcodeTable[mn].class
}

// IsMemory is true for memory-reference instructions.
func (mn Mnemonic) IsMemory() bool {
	return mn.Class() == CLASS_MEMORY
}

// IsRegister is true for register-reference instructions.
func (mn Mnemonic) IsRegister() bool {
	return mn.Class() == CLASS_REGISTER
}

// IsIo is true for input-output instructions.
func (mn Mnemonic) IsIo() bool {
	return mn.Class() == CLASS_IO
}

// IsData is true for the HEX and DEC literal directives.
func (mn Mnemonic) IsData() bool {
	return mn.Class() == CLASS_DATA
}

// Base returns the number base of a literal operand, or 0 if the mnemonic
// takes no operand.
func (mn Mnemonic) Base() int {
	return opcodeTable[mn].base
}

// Nibble returns the opcode nibble of a memory-reference mnemonic for the
// given addressing mode.
func (mn Mnemonic) Nibble(indirect bool) uint16 {
	if indirect {
		return opcodeTable[mn].indirect
	}
	return opcodeTable[mn].direct
}

// Word returns the fixed encoding of a register or io mnemonic.
func (mn Mnemonic) Word() Code {
	return Code(opcodeTable[mn].word)
}

// Code is a single 16-bit memory word.
type Code uint16

// MakeCodeMemory creates a memory-reference instruction.
func MakeCodeMemory(mn Mnemonic, address uint16, indirect bool) Code {
	return Code((mn.Nibble(indirect) << 12) | (address & ADDRESS_MASK))
}

// MakeCodeFixed creates a register or io instruction.
func MakeCodeFixed(mn Mnemonic) Code {
	return mn.Word()
}

// Nibble returns the top four bits of the word.
func (code Code) Nibble() uint16 {
	return (uint16(code) >> 12) & 0xf
}

// Address returns the 12-bit address field of the word.
func (code Code) Address() uint16 {
	return uint16(code) & ADDRESS_MASK
}

// Indirect returns the state of the indirect addressing bit.
func (code Code) Indirect() bool {
	return (uint16(code) & INDIRECT_BIT) != 0
}

// Instruction is a decoded word.
type Instruction struct {
	Mnemonic Mnemonic
	Address  uint16 // Address field, or the literal value of a data word.
	Indirect bool
}

// Encode packs the instruction into a word.
func (ins Instruction) Encode() (code Code, err error) {
	mn := ins.Mnemonic
	if !mn.Valid() {
		err = ErrUnknownMnemonic
		return
	}

	switch mn.Class() {
	case CLASS_MEMORY:
		if ins.Address > ADDRESS_MASK {
			err = ErrInvalidOperand
			return
		}
		code = MakeCodeMemory(mn, ins.Address, ins.Indirect)
	case CLASS_REGISTER, CLASS_IO:
		if ins.Address != 0 || ins.Indirect {
			err = ErrExtraTokens
			return
		}
		code = MakeCodeFixed(mn)
	case CLASS_DATA:
		if ins.Indirect {
			err = ErrExtraTokens
			return
		}
		code = Code(ins.Address)
	}

	return
}

// Decode unpacks a word into an instruction. Data words cannot be told
// apart from instructions, so they are never produced by Decode.
func Decode(code Code) (ins Instruction, err error) {
	switch code.Nibble() {
	case 0x7, 0xf:
		mn, ok := fixedMap[code]
		if !ok {
			err = ErrOpcode(code)
			return
		}
		ins = Instruction{Mnemonic: mn}
	default:
		ins = nibbleMap[code.Nibble()]
		ins.Address = code.Address()
	}

	return
}

// String returns the assembly language representation of the instruction.
func (ins Instruction) String() (out string) {
	mn := ins.Mnemonic
	if !mn.Valid() {
		return mn.String()
	}

	switch mn.Class() {
	case CLASS_MEMORY:
		out = fmt.Sprintf("%v %03X", mn, ins.Address)
		if ins.Indirect {
			out += " I"
		}
	case CLASS_DATA:
		if mn == OP_DEC {
			out = fmt.Sprintf("%v %d", mn, int16(ins.Address))
		} else {
			out = fmt.Sprintf("%v %04X", mn, ins.Address)
		}
	default:
		out = mn.String()
	}

	return
}
