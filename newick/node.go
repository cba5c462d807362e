// SPDX-License-Identifier: MIT
package newick

import "errors"

var (
	// ErrSyntax indicates malformed Newick text.
	ErrSyntax = errors.New("newick: syntax error")

	// ErrNilTree indicates that a nil root was passed to Write.
	ErrNilTree = errors.New("newick: nil tree")
)

// Node is one vertex of a tree. Leaves have no Children.
type Node struct {
	// Name is the label; internal nodes usually leave it empty.
	Name string

	// Length is the branch length to the parent; meaningful only when HasLength.
	Length float64

	// HasLength records whether a length was given.
	HasLength bool

	// Children in left-to-right order.
	Children []*Node
}

// NewLeaf returns a labelled leaf without a branch length.
func NewLeaf(name string) *Node {
	return &Node{Name: name}
}

// Join returns an unlabelled internal node over children.
func Join(children ...*Node) *Node {
	return &Node{Children: children}
}

// WithLength sets the branch length and returns n for chaining.
func (n *Node) WithLength(length float64) *Node {
	n.Length = length
	n.HasLength = true

	return n
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool { return len(n.Children) == 0 }

// Leaves returns the leaf labels under n in left-to-right order.
// Complexity: O(nodes).
func (n *Node) Leaves() []string {
	var out []string
	var walk func(*Node)
	walk = func(x *Node) {
		if x.IsLeaf() {
			out = append(out, x.Name)
			return
		}
		for _, c := range x.Children {
			walk(c)
		}
	}
	walk(n)

	return out
}
