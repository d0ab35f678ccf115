package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsolateTerminals(t *testing.T) {
	tests := []struct {
		caption string
		setup   func(g *Grammar)
		rules   map[string][]string
	}{
		{
			caption: "a terminal in a long body moves behind a TERM rule",
			setup: func(g *Grammar) {
				g.addProduction("S", Production{litSym(t, "a"), ntSym(t, "B")})
				g.addProduction("B", Production{litSym(t, "b")})
			},
			rules: map[string][]string{
				"S":      {"TERM_a B"},
				"B":      {"b"},
				"TERM_a": {"a"},
			},
		},
		{
			caption: "a single-terminal body stays untouched",
			setup: func(g *Grammar) {
				g.addProduction("S", Production{litSym(t, "a")})
			},
			rules: map[string][]string{
				"S": {"a"},
			},
		},
		{
			caption: "repeated occurrences of a terminal share one TERM rule",
			setup: func(g *Grammar) {
				g.addProduction("S", Production{litSym(t, "a"), litSym(t, "a")})
				g.addProduction("S", Production{litSym(t, "a"), litSym(t, "c")})
			},
			rules: map[string][]string{
				"S":      {"TERM_a TERM_a", "TERM_a TERM_c"},
				"TERM_a": {"a"},
				"TERM_c": {"c"},
			},
		},
		{
			caption: "hex and range terminals take their canonical form as the rule name",
			setup: func(g *Grammar) {
				g.addProduction("S", Production{hexSym(t, 0x41), rangeSym(t, 0x30, 0x39)})
			},
			rules: map[string][]string{
				"S":                    {"TERM_#x0041 TERM_[#x0030-#x0039]"},
				"TERM_#x0041":          {"#x0041"},
				"TERM_[#x0030-#x0039]": {"[#x0030-#x0039]"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			g := newGrammar()
			g.start = "S"
			tt.setup(g)

			g.isolateTerminals()

			assertRules(t, tt.rules, g)
		})
	}
}

func TestIsolatedTerminalName(t *testing.T) {
	assert.Equal(t, "TERM_a", isolatedTerminalName(litSym(t, "a")))
	assert.Equal(t, "TERM_=", isolatedTerminalName(litSym(t, "'='")))
	assert.Equal(t, "TERM_#x0041", isolatedTerminalName(hexSym(t, 0x41)))
}
