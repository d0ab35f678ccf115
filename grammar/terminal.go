package grammar

import "strings"

// isolateTerminals rewrites every terminal occurring in a body of length
// two or more into a dedicated non-terminal TERM_{canonical form} deriving
// just that terminal. Bodies of length one keep their terminal; they
// already have the shape Chomsky normal form requires.
func (g *Grammar) isolateTerminals() {
	for _, head := range g.iterHeads() {
		for _, prod := range g.productions(head) {
			if len(prod) < 2 {
				continue
			}
			for i, sym := range prod {
				if !sym.IsTerminal() {
					continue
				}
				name := isolatedTerminalName(sym)
				if !g.contains(name) {
					g.addProduction(name, Production{sym})
				}
				prod[i], _ = newNonTerminalSymbol(name)
			}
		}
	}
}

func isolatedTerminalName(sym Symbol) string {
	return "TERM_" + strings.ReplaceAll(sym.String(), "'", "")
}
