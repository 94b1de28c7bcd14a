package cpu

import (
	"encoding/binary"
	"errors"
	"io"
	"iter"
)

const (
	MEMORY_SIZE  = 4096   // Words of memory.
	WORD_WIDTH   = 16     // Bits per word.
	ADDRESS_MASK = 0x0fff // Address field of a memory-reference word.
	INDIRECT_BIT = 0x8000 // Indirect addressing flag.
)

// Memory is an assembled memory image.
type Memory [MEMORY_SIZE]Code

// Binary returns the image as big-endian words.
func (mem *Memory) Binary() (bin []byte) {
	bin = make([]byte, 0, MEMORY_SIZE*WORD_WIDTH/8)
	for _, code := range mem {
		bin = binary.BigEndian.AppendUint16(bin, uint16(code))
	}

	return
}

// ReadMemory reads an image written by Binary.
func ReadMemory(input io.Reader) (mem *Memory, err error) {
	mem = &Memory{}

	err = binary.Read(input, binary.BigEndian, mem[:])
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		err = ErrImageSize
	}
	if err != nil {
		mem = nil
		return
	}

	var extra [1]byte
	n, _ := input.Read(extra[:])
	if n != 0 {
		mem = nil
		err = ErrImageSize
	}

	return
}

// Used iterates over the non-zero words of the image.
func (mem *Memory) Used() iter.Seq2[uint16, Code] {
	return func(yield func(address uint16, code Code) bool) {
		for address, code := range mem {
			if code == 0 {
				continue
			}
			if !yield(uint16(address), code) {
				return
			}
		}
	}
}
