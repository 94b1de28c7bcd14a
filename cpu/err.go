package cpu

import (
	"errors"

	"github.com/ezrec/mano/translate"
)

var f = translate.From

var (
	// Line errors
	ErrMissingOrgAddress       = errors.New(f("ORG must be followed by an address"))
	ErrInvalidOrgAddress       = errors.New(f("ORG must be followed by a valid address in hex"))
	ErrLabelWithoutInstruction = errors.New(f("label must be followed by an instruction or value"))
	ErrLabelInvalid            = errors.New(f("label invalid"))
	ErrLabelOnDirective        = errors.New(f("label not permitted on a directive"))

	// Instruction errors
	ErrUnknownMnemonic     = errors.New(f("instruction must have a valid symbol"))
	ErrMissingOperand      = errors.New(f("instruction must have an address or value"))
	ErrInvalidOperand      = errors.New(f("instruction must have a valid address or value"))
	ErrInvalidIndirectFlag = errors.New(f("instruction has an invalid indirect flag"))
	ErrExtraTokens         = errors.New(f("excessive arguments"))

	// Assembler errors
	ErrLabelDuplicate  = errors.New(f("label duplicated"))
	ErrProgramTooLarge = errors.New(f("program is too large to fit in memory"))

	// Decode errors
	ErrOpcodeDecode = errors.New(f("decode"))
	ErrImageSize    = errors.New(f("image size"))
)

// ErrLabelMissing is returned when an operand names a label that has not
// been defined yet.
type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

func (el ErrLabelMissing) Is(err error) bool {
	return err == ErrInvalidOperand
}

// ErrOpcode is returned when a word has no instruction encoding.
type ErrOpcode Code

func (eo ErrOpcode) Error() string {
	return f("bad opcode 0x%04x", uint16(eo))
}

func (eo ErrOpcode) Is(err error) bool {
	return err == ErrOpcodeDecode
}

// ErrParseExpression is returned when a $(...) operand cannot be evaluated.
type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

func (err ErrParseExpression) Is(target error) bool {
	return target == ErrInvalidOperand
}

// ErrSyntax locates an assembly failure at a source line.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
