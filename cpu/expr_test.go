package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvalExpression(t *testing.T) {
	assert := assert.New(t)

	labels := Labels{"BASE": 0x100, "not-an-identifier": 4}

	table := [](struct {
		Word  string
		Value int64
	}){
		{"$(1)", 1},
		{"$(BASE)", 0x100},
		{"$(BASE+0x10)", 0x110},
		{"$(BASE//2)", 0x80},
		{"$(-BASE)", -0x100},
		{"$(len('abc'))", 3},
	}

	for _, entry := range table {
		assert.True(isExpression(entry.Word), entry.Word)
		value, err := evalExpression(entry.Word, labels)
		assert.NoError(err, entry.Word)
		assert.Equal(entry.Value, value, entry.Word)
	}

	for _, word := range []string{"$()", "$(BASE", "BASE)", "(BASE)", "$"} {
		assert.False(isExpression(word), word)
	}

	_, err := evalExpression("$(1.5)", labels)
	assert.Equal(ErrParseExpression("1.5"), err)
	assert.ErrorIs(err, ErrInvalidOperand)
}
