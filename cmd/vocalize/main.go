// Command vocalize adds vowel marks to Arabic text, guided by a Latin
// transliteration.
//
//	vocalize match kataba كتب
//	vocalize batch job.yaml --workers 8 --lexicon exceptions.tsv
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "vocalize",
		Short:         "Vocalize Arabic guided by a Latin transliteration",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newMatchCmd(),
		newSelfTestCmd(),
		newBatchCmd(),
		newCheckCmd(),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "vocalize:", err)
		os.Exit(1)
	}
}
