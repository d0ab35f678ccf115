package grammar

import (
	"fmt"

	verr "github.com/nihei9/chomsky/error"
	"github.com/nihei9/chomsky/spec"
)

// Normalize ingests a list of rule trees and rewrites the resulting
// grammar into Chomsky normal form: every production is either a single
// terminal or exactly two non-terminals. The passes run in a fixed order;
// each one assumes the invariants established by its predecessors.
//
// ε is not preserved: when the original language contains the empty
// string, the normalized one does not. A caller needing ε must handle it
// outside the normalizer.
func Normalize(ast []*spec.Node) (*Grammar, error) {
	b := &GrammarBuilder{
		AST: ast,
	}
	g, err := b.Build()
	if err != nil {
		return nil, err
	}

	g.eliminateEpsilons()
	g.eliminateUnits()
	g.isolateTerminals()
	g.binarize()

	err = g.verify()
	if err != nil {
		return nil, err
	}

	return g, nil
}

// verify checks the normal-form invariant over the whole grammar: bodies
// of length one hold a terminal, bodies of length two hold two
// non-terminals naming existing rules, and no other body length occurs.
// A violation is a bug in one of the passes.
func (g *Grammar) verify() error {
	for _, head := range g.iterHeads() {
		for _, prod := range g.productions(head) {
			switch len(prod) {
			case 1:
				if !prod[0].IsTerminal() {
					return &verr.InternalError{
						Cause:  intErrNotNormalized,
						Detail: fmt.Sprintf("%v → %v", head, prod),
					}
				}
			case 2:
				for _, sym := range prod {
					if sym.IsTerminal() {
						return &verr.InternalError{
							Cause:  intErrNotNormalized,
							Detail: fmt.Sprintf("%v → %v", head, prod),
						}
					}
					if !g.contains(sym.Name()) {
						return &verr.InternalError{
							Cause:  intErrDanglingReference,
							Detail: fmt.Sprintf("%v → %v", head, prod),
						}
					}
				}
			default:
				return &verr.InternalError{
					Cause:  intErrNotNormalized,
					Detail: fmt.Sprintf("%v → %v", head, prod),
				}
			}
		}
	}
	return nil
}
