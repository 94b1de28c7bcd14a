package cpu

import (
	"strconv"
	"strings"
)

const (
	COMMENT_MARKER  = "//"
	LABEL_SEPARATOR = ","
	DIRECTIVE_ORG   = "ORG"
	DIRECTIVE_END   = "END"
)

// LineKind is the type of a parsed source line.
type LineKind int

const (
	LINE_EMPTY       = LineKind(0) // Blank or comment only.
	LINE_ORIGIN      = LineKind(1) // ORG directive.
	LINE_END         = LineKind(2) // END directive.
	LINE_INSTRUCTION = LineKind(3) // Instruction or data directive.
)

// Line is a single parsed source line.
type Line struct {
	Kind   LineKind
	Label  string // Optional label, bound to the current address.
	Body   string // Instruction text, without label or comment.
	Origin uint16 // New address for LINE_ORIGIN.
}

// SplitLine separates a line into its optional label and its body,
// discarding any comment.
func SplitLine(text string) (label, body string) {
	text, _, _ = strings.Cut(text, COMMENT_MARKER)

	label, body, ok := strings.Cut(text, LABEL_SEPARATOR)
	if !ok {
		return "", strings.TrimSpace(text)
	}

	return strings.TrimSpace(label), strings.TrimSpace(body)
}

// ParseLine classifies a source line.
func ParseLine(text string) (line Line, err error) {
	line.Label, line.Body = SplitLine(text)

	if len(line.Label) != 0 && len(strings.Fields(line.Label)) != 1 {
		err = ErrLabelInvalid
		return
	}

	words := strings.Fields(line.Body)
	if len(words) == 0 {
		if len(line.Label) != 0 {
			err = ErrLabelWithoutInstruction
		}
		return
	}

	switch words[0] {
	case DIRECTIVE_ORG:
		if len(line.Label) != 0 {
			err = ErrLabelOnDirective
			return
		}
		line.Kind = LINE_ORIGIN
		line.Origin, err = parseOrigin(words[1:])
	case DIRECTIVE_END:
		if len(line.Label) != 0 {
			err = ErrLabelOnDirective
			return
		}
		if len(words) > 1 {
			err = ErrExtraTokens
			return
		}
		line.Kind = LINE_END
	default:
		line.Kind = LINE_INSTRUCTION
	}

	return
}

// parseOrigin decodes the hex address of an ORG directive.
func parseOrigin(args []string) (origin uint16, err error) {
	if len(args) == 0 {
		err = ErrMissingOrgAddress
		return
	}
	if len(args) > 1 {
		err = ErrExtraTokens
		return
	}

	value, err := strconv.ParseUint(args[0], 16, 64)
	if err != nil || value >= MEMORY_SIZE {
		err = ErrInvalidOrgAddress
		return
	}

	origin = uint16(value)
	return
}
