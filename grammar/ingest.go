package grammar

import (
	"fmt"
	"strconv"

	verr "github.com/nihei9/chomsky/error"
	"github.com/nihei9/chomsky/spec"
)

// GrammarBuilder ingests a list of rule trees into a Grammar, desugaring
// the EBNF operators along the way. The start symbol is the head of the
// first rule.
type GrammarBuilder struct {
	AST []*spec.Node

	errs verr.SpecErrors
}

func raiseIngestError(cause error, detail string) {
	panic(&verr.SpecError{
		Cause:  cause,
		Detail: detail,
	})
}

func (b *GrammarBuilder) Build() (g *Grammar, retErr error) {
	defer func() {
		v := recover()
		if v != nil {
			specErr, ok := v.(*verr.SpecError)
			if !ok {
				panic(fmt.Errorf("an unexpected error occurred: %v", v))
			}
			b.errs = append(b.errs, specErr)
		}
		if len(b.errs) > 0 {
			g = nil
			retErr = b.errs
		}
	}()

	if len(b.AST) == 0 {
		raiseIngestError(ingErrNoRules, "")
	}

	g = newGrammar()
	for _, rule := range b.AST {
		b.genRule(g, rule)
	}
	g.start = b.AST[0].Children[0].Value

	b.checkReferences(g)

	return g, nil
}

func (b *GrammarBuilder) genRule(g *Grammar, node *spec.Node) {
	if node.Kind != spec.KindRule {
		raiseIngestError(ingErrMalformedRule, node.Kind)
	}
	if len(node.Children) != 2 {
		raiseIngestError(ingErrMalformedRule, fmt.Sprintf("%v has %v child nodes", node.Kind, len(node.Children)))
	}
	id := node.Children[0]
	if id.Kind != spec.KindIdentifier {
		raiseIngestError(ingErrMalformedRule, id.Kind)
	}
	if id.Value == "" {
		raiseIngestError(ingErrEmptyIdentifier, "")
	}
	def := node.Children[1]
	if def.Kind != spec.KindDefinition {
		raiseIngestError(ingErrMalformedRule, def.Kind)
	}
	if len(def.Children) != 1 {
		raiseIngestError(ingErrInvalidArity, fmt.Sprintf("%v has %v child nodes", def.Kind, len(def.Children)))
	}

	// Rules sharing a head merge their alternatives.
	g.addHead(id.Value)
	for _, prod := range b.genRHS(g, def.Children[0]) {
		g.addProduction(id.Value, prod)
	}
}

// genRHS translates an RHS expression into the list of production bodies
// it denotes. Desugaring an EBNF operator registers an auxiliary rule on g
// as a side effect.
func (b *GrammarBuilder) genRHS(g *Grammar, node *spec.Node) []Production {
	switch node.Kind {
	case spec.KindIdentifier:
		if node.Value == "" {
			raiseIngestError(ingErrEmptyIdentifier, "")
		}
		sym, err := newNonTerminalSymbol(node.Value)
		if err != nil {
			raiseIngestError(ingErrEmptyIdentifier, node.Value)
		}
		return []Production{{sym}}
	case spec.KindLiteral:
		sym, err := newLiteralSymbol(node.Value)
		if err != nil {
			raiseIngestError(ingErrInvalidLiteral, node.Value)
		}
		return []Production{{sym}}
	case spec.KindHexLiteral:
		sym, err := newHexSymbol(b.genCodePoint(node))
		if err != nil {
			raiseIngestError(ingErrInvalidHex, node.Value)
		}
		return []Production{{sym}}
	case spec.KindCharRange:
		if len(node.Children) != 2 {
			raiseIngestError(ingErrInvalidArity, fmt.Sprintf("%v has %v child nodes", node.Kind, len(node.Children)))
		}
		lo := b.genCodePoint(node.Children[0])
		hi := b.genCodePoint(node.Children[1])
		sym, err := newRangeSymbol(lo, hi)
		if err != nil {
			raiseIngestError(ingErrInvalidRange, fmt.Sprintf("[#x%X-#x%X]", lo, hi))
		}
		return []Production{{sym}}
	case spec.KindChoice:
		if len(node.Children) < 1 {
			raiseIngestError(ingErrInvalidArity, fmt.Sprintf("%v has no child nodes", node.Kind))
		}
		var prods []Production
		for _, c := range node.Children {
			prods = append(prods, b.genRHS(g, c)...)
		}
		return prods
	case spec.KindSequence:
		if len(node.Children) < 1 {
			raiseIngestError(ingErrInvalidArity, fmt.Sprintf("%v has no child nodes", node.Kind))
		}
		// Alternatives inside a sequence position distribute over the
		// whole sequence, so no alternative is ever dropped.
		prods := []Production{{}}
		for _, c := range node.Children {
			alts := b.genRHS(g, c)
			next := make([]Production, 0, len(prods)*len(alts))
			for _, prod := range prods {
				for _, alt := range alts {
					body := make(Production, 0, len(prod)+len(alt))
					body = append(body, prod...)
					body = append(body, alt...)
					next = append(next, body)
				}
			}
			prods = next
		}
		return prods
	case spec.KindOptional, spec.KindRepetition, spec.KindRepetitionPlus:
		if len(node.Children) != 1 {
			raiseIngestError(ingErrInvalidArity, fmt.Sprintf("%v has %v child nodes", node.Kind, len(node.Children)))
		}
		inner := node.Children[0]
		name := g.freshName(inner.Flatten())
		sym, err := newNonTerminalSymbol(name)
		if err != nil {
			raiseIngestError(ingErrEmptyIdentifier, name)
		}
		innerProds := b.genRHS(g, inner)

		if node.Kind == spec.KindOptional {
			// name accepts ε | inner.
			for _, prod := range innerProds {
				g.addProduction(name, prod)
			}
			g.addProduction(name, Production{})
			return []Production{{sym}}
		}

		// name accepts ε | inner name, the Kleene closure of inner.
		for _, prod := range innerProds {
			body := make(Production, 0, len(prod)+1)
			body = append(body, prod...)
			body = append(body, sym)
			g.addProduction(name, body)
		}
		g.addProduction(name, Production{})

		if node.Kind == spec.KindRepetitionPlus {
			// inner+ is inner inner*.
			prods := make([]Production, 0, len(innerProds))
			for _, prod := range innerProds {
				body := make(Production, 0, len(prod)+1)
				body = append(body, prod...)
				body = append(body, sym)
				prods = append(prods, body)
			}
			return prods
		}

		return []Production{{sym}}
	}

	raiseIngestError(ingErrUnknownNodeKind, node.Kind)
	return nil
}

func (b *GrammarBuilder) genCodePoint(node *spec.Node) rune {
	if node.Kind != spec.KindHexLiteral {
		raiseIngestError(ingErrInvalidHex, node.Kind)
	}
	n, err := strconv.ParseUint(node.Value, 16, 32)
	if err != nil {
		raiseIngestError(ingErrInvalidHex, node.Value)
	}
	return rune(n)
}

// checkReferences rejects productions referencing non-terminals no rule
// defines. Catching dangling references here keeps the transformation
// passes free of missing-head cases.
func (b *GrammarBuilder) checkReferences(g *Grammar) {
	for _, head := range g.iterHeads() {
		for _, prod := range g.productions(head) {
			for _, sym := range prod {
				if sym.IsTerminal() {
					continue
				}
				if !g.contains(sym.Name()) {
					b.errs = append(b.errs, &verr.SpecError{
						Cause:  ingErrUndefinedSymbol,
						Detail: sym.Name(),
					})
				}
			}
		}
	}
}
