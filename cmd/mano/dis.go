package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ezrec/mano/cpu"
)

var disCmd = &cobra.Command{
	Use:   "dis imageFile",
	Short: "Disassemble a binary memory image",
	Long: `Dis prints every non-zero word of an image written by 'asm -f bin'.
Words with no instruction encoding are shown as HEX literals.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDis(cmd.OutOrStdout(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(disCmd)
}

func runDis(stdout io.Writer, image string) (err error) {
	inf, err := os.Open(image)
	if err != nil {
		return
	}
	defer inf.Close()

	mem, err := cpu.ReadMemory(bufio.NewReader(inf))
	if err != nil {
		err = fmt.Errorf("%v: %w", image, err)
		return
	}

	w := bufio.NewWriter(stdout)
	for address, code := range mem.Used() {
		ins, derr := cpu.Decode(code)
		if derr != nil {
			ins = cpu.Instruction{Mnemonic: cpu.OP_HEX, Address: uint16(code)}
		}
		fmt.Fprintf(w, "%03X: %04X  %v\n", address, uint16(code), ins)
	}

	return w.Flush()
}
