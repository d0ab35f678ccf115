package grammar

// eliminateUnits removes all productions of the form A → B with B a
// non-terminal by replacing each with the productions of B. The scan
// repeats because propagation can introduce new unit productions; it
// terminates even under unit cycles since only bodies already present in
// the grammar propagate, so the set of distinct (head, body) pairs is
// bounded.
func (g *Grammar) eliminateUnits() {
	type unitProduction struct {
		head string
		body Symbol
	}

	for {
		var units []unitProduction
		for _, head := range g.iterHeads() {
			for _, prod := range g.productions(head) {
				if !prod.isUnit() {
					continue
				}
				units = append(units, unitProduction{
					head: head,
					body: prod[0],
				})
			}
		}
		if len(units) == 0 {
			break
		}

		for _, u := range units {
			g.removeProduction(u.head, Production{u.body})
			for _, prod := range g.productions(u.body.Name()) {
				g.addProduction(u.head, prod)
			}
		}
	}
}
