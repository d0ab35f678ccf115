package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/nihei9/chomsky/grammar"
	"github.com/nihei9/chomsky/spec"
	"github.com/spf13/cobra"
)

var normalizeFlags = struct {
	output *string
	text   *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "normalize",
		Short:   "Normalize a grammar into Chomsky normal form",
		Example: `  chomsky normalize grammar.json -o grammar-cnf.json`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runNormalize,
	}
	normalizeFlags.output = cmd.Flags().StringP("output", "o", "", "output file path (default stdout)")
	normalizeFlags.text = cmd.Flags().Bool("text", false, "write the grammar in readable format instead of JSON")
	rootCmd.AddCommand(cmd)
}

func runNormalize(cmd *cobra.Command, args []string) error {
	ast, err := readRuleTrees(args)
	if err != nil {
		return err
	}

	g, err := grammar.Normalize(ast)
	if err != nil {
		return err
	}

	w := os.Stdout
	if *normalizeFlags.output != "" {
		f, err := os.OpenFile(*normalizeFlags.output, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			return fmt.Errorf("Cannot open the output file %s: %w", *normalizeFlags.output, err)
		}
		defer f.Close()
		w = f
	}

	desc := g.Describe()
	if *normalizeFlags.text {
		return writeDescription(w, desc)
	}

	b, err := json.Marshal(desc)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%v\n", string(b))

	return nil
}

func readRuleTrees(args []string) ([]*spec.Node, error) {
	var src io.Reader = os.Stdin
	if len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, fmt.Errorf("Cannot open the grammar file %s: %w", args[0], err)
		}
		defer f.Close()
		src = f
	}
	return spec.Parse(src)
}
