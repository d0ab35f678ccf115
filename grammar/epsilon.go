package grammar

// eliminateEpsilons removes all empty productions. Every production
// containing nullable symbols is expanded with the variants obtained by
// erasing any combination of them, then the empty productions themselves
// are deleted. The pass does not re-add ε for the start symbol, so when ε
// is in the original language it is not in the resulting one.
func (g *Grammar) eliminateEpsilons() {
	nullable := g.nullableSet()

	for _, head := range g.iterHeads() {
		// The loop walks the snapshot taken before any expansion, so
		// variants added below are not themselves expanded again; erasing
		// nullable positions of a variant only yields other variants of
		// the original body.
		for _, prod := range g.productions(head) {
			var indices []int
			for i, sym := range prod {
				if !sym.isNonTerminal() {
					continue
				}
				if _, ok := nullable[sym.Name()]; ok {
					indices = append(indices, i)
				}
			}
			for _, subset := range nonEmptySubsets(indices) {
				variant := eraseAt(prod, subset)
				if variant.isEmpty() {
					continue
				}
				g.addProduction(head, variant)
			}
		}
	}

	for _, head := range g.iterHeads() {
		// Set-like rule semantics guarantee at most one empty body per
		// rule.
		g.removeProduction(head, Production{})
	}
}

// nullableSet computes the set of non-terminals deriving the empty string
// as a fixed point: a head is nullable when it has an empty production or
// a production whose symbols are all nullable.
func (g *Grammar) nullableSet() map[string]struct{} {
	nullable := map[string]struct{}{}
	for {
		more := false
		for _, head := range g.iterHeads() {
			if _, ok := nullable[head]; ok {
				continue
			}
			for _, prod := range g.productions(head) {
				if !allNullable(prod, nullable) {
					continue
				}
				nullable[head] = struct{}{}
				more = true
				break
			}
		}
		if !more {
			break
		}
	}
	return nullable
}

func allNullable(prod Production, nullable map[string]struct{}) bool {
	for _, sym := range prod {
		if !sym.isNonTerminal() {
			return false
		}
		if _, ok := nullable[sym.Name()]; !ok {
			return false
		}
	}
	return true
}

// nonEmptySubsets enumerates all non-empty subsets of the given indices.
// Each subset keeps the ascending order of its source.
func nonEmptySubsets(indices []int) [][]int {
	subsets := [][]int{{}}
	for _, idx := range indices {
		grown := make([][]int, len(subsets))
		for i, s := range subsets {
			t := make([]int, len(s), len(s)+1)
			copy(t, s)
			grown[i] = append(t, idx)
		}
		subsets = append(subsets, grown...)
	}
	return subsets[1:]
}

// eraseAt returns a copy of prod with the symbols at the given ascending
// positions removed.
func eraseAt(prod Production, positions []int) Production {
	erased := make(Production, 0, len(prod)-len(positions))
	k := 0
	for i, sym := range prod {
		if k < len(positions) && positions[k] == i {
			k++
			continue
		}
		erased = append(erased, sym)
	}
	return erased
}
