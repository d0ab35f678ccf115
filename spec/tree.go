package spec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// The node kinds the grammar ingester recognizes. A tree containing any
// other kind in a rule's right-hand side is rejected at ingestion.
const (
	KindRule           = "Rule"
	KindIdentifier     = "Identifier"
	KindLiteral        = "Literal"
	KindHexLiteral     = "HexLiteral"
	KindCharRange      = "CharRange"
	KindChoice         = "Choice"
	KindSequence       = "Sequence"
	KindOptional       = "Optional"
	KindRepetition     = "Repetition"
	KindRepetitionPlus = "RepetitionPlus"
	KindDefinition     = "Definition"
)

// Node is a node of a rule syntax tree. Leaf kinds (Identifier, Literal,
// HexLiteral) carry their payload in Value; all other kinds carry only
// children.
type Node struct {
	Kind     string  `json:"kind"`
	Value    string  `json:"value,omitempty"`
	Children []*Node `json:"children,omitempty"`
}

func NewNode(kind string, children ...*Node) *Node {
	return &Node{
		Kind:     kind,
		Children: children,
	}
}

func NewLeafNode(kind string, value string) *Node {
	return &Node{
		Kind:  kind,
		Value: value,
	}
}

// Flatten concatenates the values of the node and its descendants in
// document order. The ingester uses it to derive fresh-name hints from the
// operand of an EBNF operator.
func (n *Node) Flatten() string {
	if n.Value != "" {
		return n.Value
	}
	var b bytes.Buffer
	for _, c := range n.Children {
		b.WriteString(c.Flatten())
	}
	return b.String()
}

func (n *Node) Format() []byte {
	var b bytes.Buffer
	n.format(&b, 0)
	return b.Bytes()
}

func (n *Node) format(buf *bytes.Buffer, depth int) {
	for i := 0; i < depth; i++ {
		buf.WriteString("    ")
	}
	buf.WriteString("(")
	buf.WriteString(n.Kind)
	if n.Value != "" {
		fmt.Fprintf(buf, " '%v'", n.Value)
	}
	if len(n.Children) > 0 {
		buf.WriteString("\n")
		for i, c := range n.Children {
			c.format(buf, depth+1)
			if i < len(n.Children)-1 {
				buf.WriteString("\n")
			}
		}
	}
	buf.WriteString(")")
}

// Parse reads a JSON-encoded list of rule trees.
func Parse(src io.Reader) ([]*Node, error) {
	d := json.NewDecoder(src)
	var rules []*Node
	err := d.Decode(&rules)
	if err != nil {
		return nil, fmt.Errorf("cannot decode a rule tree: %w", err)
	}
	return rules, nil
}
