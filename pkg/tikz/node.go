package tikz

import "fmt"

// Node is a positioned text label, rendered as:
//
//	\node[above] at (0, 0) {origin};
//
// Text is emitted verbatim between the braces, so it may contain any
// LaTeX the surrounding document can typeset, including math.
type Node struct {
	At      Point
	Text    string
	Options *Options
}

// NewNode builds a node at the given position.
func NewNode(at Point, text string, options ...string) (*Node, error) {
	if err := validatePoint("node position", at); err != nil {
		return nil, err
	}
	return &Node{
		At:      at,
		Text:    text,
		Options: NewOptions(options...),
	}, nil
}

// Code returns the TikZ statement for the node.
func (n *Node) Code() string {
	return fmt.Sprintf("\\node%s at %s {%s};", n.Options.String(), n.At, n.Text)
}

// Transform moves the node position through t. The text and its
// rendered size are unaffected.
func (n *Node) Transform(t Transform) {
	n.At = t.Apply(n.At)
}
