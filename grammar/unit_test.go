package grammar

import (
	"testing"
)

func TestEliminateUnits(t *testing.T) {
	tests := []struct {
		caption string
		setup   func(g *Grammar)
		rules   map[string][]string
	}{
		{
			caption: "a unit chain propagates the terminal production to every member",
			setup: func(g *Grammar) {
				g.addProduction("A", Production{ntSym(t, "B")})
				g.addProduction("B", Production{ntSym(t, "C")})
				g.addProduction("C", Production{litSym(t, "c")})
			},
			rules: map[string][]string{
				"A": {"c"},
				"B": {"c"},
				"C": {"c"},
			},
		},
		{
			caption: "a unit cycle dissolves into the non-unit productions of its members",
			setup: func(g *Grammar) {
				g.addProduction("A", Production{ntSym(t, "B")})
				g.addProduction("A", Production{litSym(t, "a")})
				g.addProduction("B", Production{ntSym(t, "A")})
				g.addProduction("B", Production{litSym(t, "b")})
			},
			rules: map[string][]string{
				"A": {"a", "b"},
				"B": {"a", "b"},
			},
		},
		{
			caption: "a self-referential unit production vanishes",
			setup: func(g *Grammar) {
				g.addProduction("A", Production{ntSym(t, "A")})
				g.addProduction("A", Production{litSym(t, "a")})
			},
			rules: map[string][]string{
				"A": {"a"},
			},
		},
		{
			caption: "multi-symbol productions propagate unchanged",
			setup: func(g *Grammar) {
				g.addProduction("S", Production{ntSym(t, "X")})
				g.addProduction("X", Production{litSym(t, "a"), litSym(t, "b")})
			},
			rules: map[string][]string{
				"S": {"a b"},
				"X": {"a b"},
			},
		},
		{
			caption: "a single-terminal body is not a unit production",
			setup: func(g *Grammar) {
				g.addProduction("S", Production{litSym(t, "a")})
			},
			rules: map[string][]string{
				"S": {"a"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			g := newGrammar()
			g.start = "S"
			tt.setup(g)

			g.eliminateUnits()

			assertRules(t, tt.rules, g)
		})
	}
}
