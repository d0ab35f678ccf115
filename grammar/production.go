package grammar

import "strings"

// Production is an ordered sequence of symbols forming one alternative of
// a rule. The empty sequence denotes epsilon.
type Production []Symbol

func (p Production) isEmpty() bool {
	return len(p) == 0
}

// isUnit reports whether the production consists of a single non-terminal.
func (p Production) isUnit() bool {
	return len(p) == 1 && p[0].isNonTerminal()
}

func (p Production) equal(other Production) bool {
	if len(p) != len(other) {
		return false
	}
	for i, sym := range p {
		if sym != other[i] {
			return false
		}
	}
	return true
}

func (p Production) String() string {
	if p.isEmpty() {
		return "ε"
	}
	texts := make([]string, len(p))
	for i, sym := range p {
		texts[i] = sym.String()
	}
	return strings.Join(texts, " ")
}
