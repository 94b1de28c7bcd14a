package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitLine(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		Text  string
		Label string
		Body  string
	}){
		{"LOP, LDA 0 // Load the first number into the accumulator", "LOP", "LDA 0"},
		{"LDA 0 // Load the first number into the accumulator", "", "LDA 0"},
		{"LOP, LDA 0", "LOP", "LDA 0"},
		{"LDA 0", "", "LDA 0"},
		{"LDA 40 I// Load the first number indirectly into AC", "", "LDA 40 I"},
		{"VAR, HEX 1004", "VAR", "HEX 1004"},
		{"  X,\tDEC -5  ", "X", "DEC -5"},
		{"", "", ""},
		{"  ", "", ""},
		{"// this is a comment", "", ""},
		{"   // indented, with a comma", "", ""},
		{"X, // label only", "X", ""},
		{", HLT", "", "HLT"},
	}

	for _, entry := range table {
		label, body := SplitLine(entry.Text)
		assert.Equal(entry.Label, label, entry.Text)
		assert.Equal(entry.Body, body, entry.Text)
	}
}

func TestParseLine(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		Text string
		Line Line
		Err  error
	}){
		{"", Line{Kind: LINE_EMPTY}, nil},
		{"// comment", Line{Kind: LINE_EMPTY}, nil},
		{"LDA 0", Line{Kind: LINE_INSTRUCTION, Body: "LDA 0"}, nil},
		{"A, CLA", Line{Kind: LINE_INSTRUCTION, Label: "A", Body: "CLA"}, nil},
		{"ORG 064 // start", Line{Kind: LINE_ORIGIN, Body: "ORG 064", Origin: 0x64}, nil},
		{"  ORG FFF", Line{Kind: LINE_ORIGIN, Body: "ORG FFF", Origin: 0xfff}, nil},
		{"END", Line{Kind: LINE_END, Body: "END"}, nil},
		{"X,", Line{}, ErrLabelWithoutInstruction},
		{"X, // nothing", Line{}, ErrLabelWithoutInstruction},
		{"TWO WORDS, CLA", Line{}, ErrLabelInvalid},
		{"ORG", Line{}, ErrMissingOrgAddress},
		{"ORG // no address", Line{}, ErrMissingOrgAddress},
		{"ORG XYZ", Line{}, ErrInvalidOrgAddress},
		{"ORG 1000", Line{}, ErrInvalidOrgAddress},
		{"ORG -1", Line{}, ErrInvalidOrgAddress},
		{"ORG 10 20", Line{}, ErrExtraTokens},
		{"L, ORG 10", Line{}, ErrLabelOnDirective},
		{"L, END", Line{}, ErrLabelOnDirective},
		{"END NOW", Line{}, ErrExtraTokens},
	}

	for _, entry := range table {
		line, err := ParseLine(entry.Text)
		if entry.Err != nil {
			assert.ErrorIs(err, entry.Err, entry.Text)
			continue
		}
		assert.NoError(err, entry.Text)
		assert.Equal(entry.Line, line, entry.Text)
	}
}
