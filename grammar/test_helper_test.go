package grammar

import (
	"testing"

	"github.com/nihei9/chomsky/spec"
	"github.com/stretchr/testify/assert"
)

func ntSym(t *testing.T, name string) Symbol {
	t.Helper()

	sym, err := newNonTerminalSymbol(name)
	if err != nil {
		t.Fatalf("failed to create a non-terminal symbol: %v", err)
	}
	return sym
}

func litSym(t *testing.T, text string) Symbol {
	t.Helper()

	sym, err := newLiteralSymbol(text)
	if err != nil {
		t.Fatalf("failed to create a literal symbol: %v", err)
	}
	return sym
}

func hexSym(t *testing.T, cp rune) Symbol {
	t.Helper()

	sym, err := newHexSymbol(cp)
	if err != nil {
		t.Fatalf("failed to create a hex symbol: %v", err)
	}
	return sym
}

func rangeSym(t *testing.T, lo, hi rune) Symbol {
	t.Helper()

	sym, err := newRangeSymbol(lo, hi)
	if err != nil {
		t.Fatalf("failed to create a range symbol: %v", err)
	}
	return sym
}

// ruleStrings renders a grammar as head → rendered bodies for compact
// comparison in tests. An empty body renders as ε.
func ruleStrings(g *Grammar) map[string][]string {
	rules := map[string][]string{}
	for _, head := range g.iterHeads() {
		bodies := []string{}
		for _, prod := range g.productions(head) {
			bodies = append(bodies, prod.String())
		}
		rules[head] = bodies
	}
	return rules
}

func assertRules(t *testing.T, want map[string][]string, g *Grammar) {
	t.Helper()

	got := ruleStrings(g)
	wantHeads := make([]string, 0, len(want))
	for head := range want {
		wantHeads = append(wantHeads, head)
	}
	gotHeads := make([]string, 0, len(got))
	for head := range got {
		gotHeads = append(gotHeads, head)
	}
	assert.ElementsMatch(t, wantHeads, gotHeads)
	for head, bodies := range want {
		assert.ElementsMatch(t, bodies, got[head], "rule: %v", head)
	}
}

func ruleNode(name string, rhs *spec.Node) *spec.Node {
	return spec.NewNode(spec.KindRule,
		spec.NewLeafNode(spec.KindIdentifier, name),
		spec.NewNode(spec.KindDefinition, rhs),
	)
}

func idNode(v string) *spec.Node {
	return spec.NewLeafNode(spec.KindIdentifier, v)
}

func litNode(v string) *spec.Node {
	return spec.NewLeafNode(spec.KindLiteral, v)
}

func hexNode(v string) *spec.Node {
	return spec.NewLeafNode(spec.KindHexLiteral, v)
}

func rangeNode(lo, hi string) *spec.Node {
	return spec.NewNode(spec.KindCharRange, hexNode(lo), hexNode(hi))
}

func choiceNode(children ...*spec.Node) *spec.Node {
	return spec.NewNode(spec.KindChoice, children...)
}

func seqNode(children ...*spec.Node) *spec.Node {
	return spec.NewNode(spec.KindSequence, children...)
}

func optNode(child *spec.Node) *spec.Node {
	return spec.NewNode(spec.KindOptional, child)
}

func repNode(child *spec.Node) *spec.Node {
	return spec.NewNode(spec.KindRepetition, child)
}

func plusNode(child *spec.Node) *spec.Node {
	return spec.NewNode(spec.KindRepetitionPlus, child)
}
