package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"

	"github.com/ezrec/mano/cpu"
	"github.com/ezrec/mano/translate"
)

var f = translate.From

var (
	errFormat = errors.New(f("format must be one of bin, hex, or list"))
	errDefine = errors.New(f("define must be NAME=ADDR, with ADDR in hex"))
)

// formatExt maps output formats to their default file extension.
var formatExt = map[string]string{
	"bin":  ".bin",
	"hex":  ".hex",
	"list": ".lst",
}

var asmOpts struct {
	output  string
	format  string
	defines []string
	verbose bool
	dump    bool
}

var asmCmd = &cobra.Command{
	Use:   "asm sourceFile",
	Short: "Assemble a source file into a memory image",
	Long: `Asm assembles exactly one source file. The assembler is single pass, so
an operand may only name a label defined on an earlier line.

The 'bin' format is the full 4096 word image as big-endian words, 'hex'
lists every non-zero word as 'ADDR: WORD', and 'list' is an assembly
listing followed by the label table.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAsm(cmd.OutOrStdout(), args[0])
	},
}

func init() {
	flags := asmCmd.Flags()
	flags.StringVarP(&asmOpts.output, "output", "o", "", "output file, '-' for stdout (default: source name with the format's extension)")
	flags.StringVarP(&asmOpts.format, "format", "f", "bin", "output format: bin, hex, or list")
	flags.StringArrayVarP(&asmOpts.defines, "define", "D", nil, "predefine a label as NAME=ADDR")
	flags.BoolVar(&asmOpts.verbose, "verbose", false, "log every line and emitted word")
	flags.BoolVar(&asmOpts.dump, "dump", false, "dump the label table and listing to stderr")
	rootCmd.AddCommand(asmCmd)
}

// parseDefine parses a NAME=ADDR label definition.
func parseDefine(def string) (name string, address uint16, err error) {
	name, value, ok := strings.Cut(def, "=")
	name = strings.TrimSpace(name)
	if !ok || len(name) == 0 || strings.ContainsAny(name, " \t,") {
		err = errDefine
		return
	}

	v64, err := strconv.ParseUint(strings.TrimSpace(value), 16, 64)
	if err != nil || v64 >= cpu.MEMORY_SIZE {
		err = errDefine
		return
	}

	address = uint16(v64)
	return
}

// outputName returns the default output file for a source file.
func outputName(source string, format string) string {
	return strings.TrimSuffix(source, filepath.Ext(source)) + formatExt[format]
}

func runAsm(stdout io.Writer, source string) (err error) {
	_, ok := formatExt[asmOpts.format]
	if !ok {
		return errFormat
	}

	asm := &cpu.Assembler{Verbose: asmOpts.verbose}
	if asm.Verbose {
		_ = flag.Set("alsologtostderr", "true")
	}

	for _, def := range asmOpts.defines {
		var name string
		var address uint16
		name, address, err = parseDefine(def)
		if err != nil {
			return
		}
		asm.Predefine(name, address)
	}

	inf, err := os.Open(source)
	if err != nil {
		return
	}
	defer inf.Close()

	prog, err := asm.Parse(inf)
	if err != nil {
		err = fmt.Errorf("%v: %w", source, err)
		return
	}

	if asmOpts.dump {
		pp.Fprintln(os.Stderr, prog.Label)
		pp.Fprintln(os.Stderr, prog.Opcodes)
	}

	output := asmOpts.output
	if len(output) == 0 {
		output = outputName(source, asmOpts.format)
	}

	var ouf io.Writer
	if output == "-" {
		ouf = stdout
	} else {
		var file *os.File
		file, err = os.Create(output)
		if err != nil {
			return
		}
		defer func() {
			cerr := file.Close()
			if err == nil {
				err = cerr
			}
		}()
		ouf = file
	}

	switch asmOpts.format {
	case "bin":
		_, err = ouf.Write(prog.Binary())
	case "hex":
		err = prog.Hex(ouf)
	case "list":
		err = prog.Listing(ouf)
	}

	return
}
