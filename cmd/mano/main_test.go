package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/mano/cpu"
)

var testSource = strings.Join([]string{
	"        ORG 064",
	"X,      DEC 000",
	"LOP,    LDA 000",
	"        ADD ONE",
	"        STA X I",
	"        BUN LOP",
	"        HLT",
	"W,      HEX 7003",
}, "\n")

func writeSource(t *testing.T, text string) string {
	source := filepath.Join(t.TempDir(), "prog.asm")
	err := os.WriteFile(source, []byte(text), 0o644)
	if err != nil {
		t.Fatal(err)
	}
	return source
}

func resetOpts() {
	asmOpts.output = ""
	asmOpts.format = "bin"
	asmOpts.defines = nil
	asmOpts.verbose = false
	asmOpts.dump = false
}

func TestParseDefine(t *testing.T) {
	assert := assert.New(t)

	name, address, err := parseDefine("ONE=1F0")
	assert.NoError(err)
	assert.Equal("ONE", name)
	assert.Equal(uint16(0x1f0), address)

	for _, def := range []string{"ONE", "=10", "ONE=", "ONE=XYZ", "ONE=1000", "A B=10"} {
		_, _, err = parseDefine(def)
		assert.ErrorIs(err, errDefine, def)
	}
}

func TestRunAsm(t *testing.T) {
	assert := assert.New(t)
	defer resetOpts()

	source := writeSource(t, testSource)

	resetOpts()
	asmOpts.defines = []string{"ONE=1F0"}
	assert.NoError(runAsm(nil, source))

	image := outputName(source, "bin")
	assert.True(strings.HasSuffix(image, "prog.bin"))

	bin, err := os.ReadFile(image)
	assert.NoError(err)
	assert.Equal(cpu.MEMORY_SIZE*2, len(bin))

	mem, err := cpu.ReadMemory(bytes.NewReader(bin))
	assert.NoError(err)
	assert.Equal(cpu.Code(0x2000), mem[0x065])
	assert.Equal(cpu.Code(0x11f0), mem[0x066])
	assert.Equal(cpu.Code(0xb064), mem[0x067])
	assert.Equal(cpu.Code(0x4065), mem[0x068])

	var out bytes.Buffer
	assert.NoError(runDis(&out, image))
	assert.Equal(strings.Join([]string{
		"065: 2000  LDA 000",
		"066: 11F0  ADD 1F0",
		"067: B064  STA 064 I",
		"068: 4065  BUN 065",
		"069: 7001  HLT",
		"06A: 7003  HEX 7003",
		"",
	}, "\n"), out.String())
}

func TestRunAsmFormats(t *testing.T) {
	assert := assert.New(t)
	defer resetOpts()

	source := writeSource(t, "ORG 10\nA, CLA\nHLT")

	resetOpts()
	asmOpts.format = "hex"
	asmOpts.output = "-"
	var out bytes.Buffer
	assert.NoError(runAsm(&out, source))
	assert.Equal("010: 7800\n011: 7001\n", out.String())

	asmOpts.format = "list"
	out.Reset()
	assert.NoError(runAsm(&out, source))
	assert.Contains(out.String(), "010  7800      2  CLA\n")
	assert.Contains(out.String(), "A        010\n")

	asmOpts.format = "list"
	asmOpts.output = ""
	assert.NoError(runAsm(nil, source))
	_, err := os.Stat(outputName(source, "list"))
	assert.NoError(err)

	asmOpts.format = "elf"
	assert.ErrorIs(runAsm(nil, source), errFormat)
}

func TestRunAsmError(t *testing.T) {
	assert := assert.New(t)
	defer resetOpts()

	source := writeSource(t, "CLA\nBUN LATER\nLATER, HLT")

	resetOpts()
	err := runAsm(nil, source)
	assert.ErrorIs(err, cpu.ErrInvalidOperand)
	assert.True(strings.HasPrefix(err.Error(), source+": line 2 'BUN LATER'"))

	// No image is written on failure.
	_, err = os.Stat(outputName(source, "bin"))
	assert.True(os.IsNotExist(err))

	assert.Error(runAsm(nil, filepath.Join(t.TempDir(), "missing.asm")))
}

func TestRunDisError(t *testing.T) {
	assert := assert.New(t)

	image := filepath.Join(t.TempDir(), "short.bin")
	assert.NoError(os.WriteFile(image, []byte{1, 2, 3}, 0o644))

	assert.ErrorIs(runDis(nil, image), cpu.ErrImageSize)
}
