package main

import (
	"flag"

	"github.com/spf13/cobra"

	"github.com/ezrec/mano/translate"
)

var lang string

var rootCmd = &cobra.Command{
	Use:   "mano",
	Short: "Assembler for the 16-bit basic computer",
	Long: `Mano assembles programs for the basic computer, a 16-bit word machine
with 4096 words of memory, into a memory image.

A source line is '[LABEL,] BODY [// comment]', where BODY is an
instruction, a HEX or DEC literal, 'ORG address', or 'END'.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
		// glog reads its settings from the standard flag set.
		err = flag.CommandLine.Parse(nil)
		if err != nil {
			return
		}

		if len(lang) != 0 {
			err = translate.SetLanguage(lang)
		}

		return
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&lang, "lang", "", "language of diagnostics, as a BCP 47 tag")
	flags.AddGoFlagSet(flag.CommandLine)
}
