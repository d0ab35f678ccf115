package grammar

// binarize replaces every production longer than two symbols with a
// right-branching chain of binary productions over fresh non-terminals
// named after the head. Each replacement strictly decreases the number of
// long productions, so the pass terminates.
func (g *Grammar) binarize() {
	for _, head := range g.iterHeads() {
		i := 0
		for i < len(g.productions(head)) {
			prod := g.productions(head)[i]
			if len(prod) <= 2 {
				i++
				continue
			}
			g.removeProduction(head, prod)

			current := head
			for j := 0; j < len(prod)-2; j++ {
				next := g.freshName(head + "_BIN")
				sym, _ := newNonTerminalSymbol(next)
				g.addProduction(current, Production{prod[j], sym})
				current = next
			}
			g.addProduction(current, Production{prod[len(prod)-2], prod[len(prod)-1]})
		}
	}
}
