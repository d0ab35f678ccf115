package grammar

// Description is the serializable form of a normalized grammar. Heads
// appear in insertion order and production bodies keep their rule order,
// so describing the same grammar twice yields identical output.
type Description struct {
	Start string  `json:"start"`
	Rules []*Rule `json:"rules"`
}

type Rule struct {
	Head        string     `json:"head"`
	Productions [][]string `json:"productions"`
}

func (g *Grammar) Describe() *Description {
	rules := make([]*Rule, 0, len(g.heads))
	for _, head := range g.heads {
		prods := g.productions(head)
		bodies := make([][]string, 0, len(prods))
		for _, prod := range prods {
			body := make([]string, len(prod))
			for i, sym := range prod {
				body[i] = sym.String()
			}
			bodies = append(bodies, body)
		}
		rules = append(rules, &Rule{
			Head:        head,
			Productions: bodies,
		})
	}
	return &Description{
		Start: g.start,
		Rules: rules,
	}
}
