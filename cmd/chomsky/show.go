package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/nihei9/chomsky/grammar"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "show",
		Short:   "Print a normalized grammar in readable format",
		Example: `  chomsky show grammar-cnf.json`,
		Args:    cobra.ExactArgs(1),
		RunE:    runShow,
	}
	rootCmd.AddCommand(cmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	desc, err := readDescription(args[0])
	if err != nil {
		return err
	}
	return writeDescription(os.Stdout, desc)
}

func readDescription(path string) (*grammar.Description, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Cannot open the description file %s: %w", path, err)
	}
	defer f.Close()

	d, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	desc := &grammar.Description{}
	err = json.Unmarshal(d, desc)
	if err != nil {
		return nil, err
	}

	return desc, nil
}

const descTemplate = `# Start

{{ .Start }}

# Rules

{{ range .Rules -}}
{{ printRule . }}
{{ end -}}
`

func writeDescription(w io.Writer, desc *grammar.Description) error {
	fns := template.FuncMap{
		"printRule": func(rule *grammar.Rule) string {
			if len(rule.Productions) == 0 {
				return fmt.Sprintf("%v: ;", rule.Head)
			}
			bodies := make([]string, len(rule.Productions))
			for i, prod := range rule.Productions {
				bodies[i] = strings.Join(prod, " ")
			}
			return fmt.Sprintf("%v: %v ;", rule.Head, strings.Join(bodies, " | "))
		},
	}

	tmpl, err := template.New("description").Funcs(fns).Parse(descTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, desc)
}
