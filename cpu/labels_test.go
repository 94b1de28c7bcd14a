package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabels(t *testing.T) {
	assert := assert.New(t)

	labels := Labels{}
	assert.NoError(labels.Define("B", 0x10))
	assert.NoError(labels.Define("A", 0x10))
	assert.NoError(labels.Define("C", 0x02))
	assert.ErrorIs(labels.Define("A", 0x20), ErrLabelDuplicate)

	address, err := labels.Lookup("A")
	assert.NoError(err)
	assert.Equal(uint16(0x10), address)

	_, err = labels.Lookup("D")
	assert.Equal(ErrLabelMissing("D"), err)
	assert.Equal("label D missing", err.Error())

	assert.Equal([]string{"C", "A", "B"}, labels.Names())
}
