package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "chomsky",
	Short: "Normalize an EBNF grammar into Chomsky normal form",
	Long: `chomsky rewrites a context-free grammar written in an extended notation
into an equivalent grammar in Chomsky normal form: every production is a
single terminal or exactly two non-terminals, with no epsilon productions
and no unit productions.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}
