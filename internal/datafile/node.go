package datafile

import "strconv"

// Node is a single line of a data file: its tokens plus any nested children.
type Node struct {
	tokens   []string
	children []*Node
}

// NewNode creates a node with the given tokens.
func NewNode(tokens ...string) *Node {
	return &Node{tokens: tokens}
}

// Size returns the number of tokens on the line.
func (n *Node) Size() int {
	return len(n.tokens)
}

// Token returns the token at index i, or "" if out of range.
func (n *Node) Token(i int) string {
	if i < 0 || i >= len(n.tokens) {
		return ""
	}
	return n.tokens[i]
}

// HasChildren reports whether any lines are nested under this one.
func (n *Node) HasChildren() bool {
	return len(n.children) > 0
}

// Children returns the nested nodes in file order.
func (n *Node) Children() []*Node {
	return n.children
}

// AddChild appends a nested node.
func (n *Node) AddChild(child *Node) {
	n.children = append(n.children, child)
}

// Bool interprets the token at index i as a boolean. Numeric tokens are true
// when nonzero, matching the 0/1 form the Writer emits; "true" and "false"
// are also accepted. Anything else is false.
func (n *Node) Bool(i int) bool {
	tok := n.Token(i)
	if f, err := strconv.ParseFloat(tok, 64); err == nil {
		return f != 0
	}
	b, err := strconv.ParseBool(tok)
	return err == nil && b
}
