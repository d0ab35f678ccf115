package grammar

import (
	"fmt"
	"strings"
)

type symbolKind string

const (
	symbolKindNil         = symbolKind("")
	symbolKindNonTerminal = symbolKind("non-terminal")
	symbolKindLiteral     = symbolKind("literal")
	symbolKindHex         = symbolKind("hex")
	symbolKindRange       = symbolKind("range")
)

func (k symbolKind) String() string {
	return string(k)
}

// Symbol is a terminal or non-terminal symbol occurring in production
// bodies. Symbols are value types compared structurally. Because the
// constructors normalize their payloads, two symbols of the same kind are
// equal exactly when their canonical string forms are; symbols of
// different kinds are never equal, even when their forms coincide.
type Symbol struct {
	kind symbolKind
	text string
	lo   rune
	hi   rune
}

var symbolNil = Symbol{}

func newNonTerminalSymbol(name string) (Symbol, error) {
	if name == "" {
		return symbolNil, fmt.Errorf("a non-terminal must have a name")
	}
	return Symbol{
		kind: symbolKindNonTerminal,
		text: name,
	}, nil
}

// newLiteralSymbol normalizes the payload by stripping single-quote
// characters; the stripped form is the symbol's identity.
func newLiteralSymbol(text string) (Symbol, error) {
	text = strings.ReplaceAll(text, "'", "")
	if text == "" {
		return symbolNil, fmt.Errorf("a literal must not be empty")
	}
	return Symbol{
		kind: symbolKindLiteral,
		text: text,
	}, nil
}

func newHexSymbol(cp rune) (Symbol, error) {
	if cp < 0 {
		return symbolNil, fmt.Errorf("a code point must be non-negative: %v", cp)
	}
	return Symbol{
		kind: symbolKindHex,
		lo:   cp,
	}, nil
}

func newRangeSymbol(lo, hi rune) (Symbol, error) {
	if lo < 0 || hi < lo {
		return symbolNil, fmt.Errorf("a character range needs lo <= hi: lo: %X, hi: %X", lo, hi)
	}
	return Symbol{
		kind: symbolKindRange,
		lo:   lo,
		hi:   hi,
	}, nil
}

func (s Symbol) isNil() bool {
	return s.kind == symbolKindNil
}

func (s Symbol) isNonTerminal() bool {
	return s.kind == symbolKindNonTerminal
}

// IsTerminal reports whether the symbol is a terminal. Detection is purely
// by kind.
func (s Symbol) IsTerminal() bool {
	if s.isNil() {
		return false
	}
	return !s.isNonTerminal()
}

// Name returns the name of a non-terminal symbol. It is empty for
// terminals.
func (s Symbol) Name() string {
	if !s.isNonTerminal() {
		return ""
	}
	return s.text
}

// String returns the canonical rendering of the symbol. The rendering is
// part of the output contract: a literal appears verbatim, a code point as
// #xNNNN with at least four uppercase hex digits, and a range as
// [#xLO-#xHI].
func (s Symbol) String() string {
	switch s.kind {
	case symbolKindNonTerminal, symbolKindLiteral:
		return s.text
	case symbolKindHex:
		return fmt.Sprintf("#x%04X", s.lo)
	case symbolKindRange:
		return fmt.Sprintf("[#x%04X-#x%04X]", s.lo, s.hi)
	}
	return "?"
}
