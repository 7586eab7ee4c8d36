// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package tree implements rooted phylogenetic trees
// whose nodes can be annotated with metadata
// and layout coordinates.
//
// The shape of a tree is read from a newick file,
// and it is never modified.
// Node annotations are set once
// (by the metadata attacher and the layout)
// and then are read-only.
package tree

import (
	"strconv"
)

// Structural fields of a node.
// They are stored in the attribute map of the node,
// and they have typed accessors.
const (
	BranchLength   = "branch_length"
	MutationLength = "mutation_length"
	ClockLength    = "clock_length"
	Clade          = "clade"
	NumDate        = "num_date"
)

// Div is the attribute used to store
// the cumulative divergence of a node.
const Div = "div"

// A Node is a node of a phylogenetic tree.
type Node struct {
	// Name of the node,
	// it can be empty for internal nodes.
	Name string

	// Branch length as read from the tree file.
	Len    float64
	HasLen bool

	// Nucleotide mutations
	// (for example "A123T").
	Muts []string

	// Amino acid mutations,
	// by protein.
	AAMuts map[string][]string

	// Attr stores the node metadata.
	Attr map[string]any

	// Layout coordinates.
	X, Y float64

	parent   *Node
	children []*Node
}

func newNode(parent *Node) *Node {
	n := &Node{
		AAMuts: make(map[string][]string),
		Attr:   make(map[string]any),
		parent: parent,
	}
	if parent != nil {
		parent.children = append(parent.children, n)
	}
	return n
}

// Children returns the children of the node,
// in branch order.
func (n *Node) Children() []*Node {
	return n.children
}

// Parent returns the parent of the node.
// The root returns nil.
func (n *Node) Parent() *Node {
	return n.parent
}

// IsTerm returns true if the node is a terminal
// (a leaf).
func (n *Node) IsTerm() bool {
	return len(n.children) == 0
}

// IsRoot returns true if the node is the root of the tree.
func (n *Node) IsRoot() bool {
	return n.parent == nil
}

// Float returns the value of a numeric attribute.
func (n *Node) Float(field string) (float64, bool) {
	v, ok := n.Attr[field]
	if !ok {
		return 0, false
	}
	switch x := v.(type) {
	case float64:
		return x, true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	}
	return 0, false
}

// BranchLength returns the length of the branch
// that connects the node with its parent.
// A branch length defined in the metadata
// takes precedence over the length from the tree file.
func (n *Node) BranchLength() (float64, bool) {
	if v, ok := n.Float(BranchLength); ok {
		return v, true
	}
	if n.HasLen {
		return n.Len, true
	}
	return 0, false
}

// MutationLength returns the mutation length of the branch.
func (n *Node) MutationLength() (float64, bool) {
	return n.Float(MutationLength)
}

// Clade returns the clade ID of the node,
// as a string.
func (n *Node) Clade() (string, bool) {
	v, ok := n.Attr[Clade]
	if !ok {
		return "", false
	}
	switch x := v.(type) {
	case string:
		return x, true
	case int:
		return strconv.Itoa(x), true
	case int64:
		return strconv.FormatInt(x, 10), true
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), true
	}
	return "", false
}

// NumDate returns the sampling date of the node
// as stored in the metadata.
// The value is usually a float64,
// but it can be a string
// if the metadata value is not a number.
func (n *Node) NumDate() (any, bool) {
	v, ok := n.Attr[NumDate]
	return v, ok
}

// Div returns the cumulative divergence of the node.
func (n *Node) Div() float64 {
	d, _ := n.Float(Div)
	return d
}

// Field returns the value of an exportable node field.
//
// Valid fields are the structural fields,
// "strain" (the node name),
// "tvalue" (an alias for "num_date"),
// "div", "xvalue", "yvalue",
// "attr", "muts", and "aa_muts".
// Any other metadata is only available
// as part of the "attr" field.
func (n *Node) Field(name string) (any, bool) {
	switch name {
	case "strain":
		if n.Name == "" {
			return nil, false
		}
		return n.Name, true
	case BranchLength:
		return n.BranchLength()
	case MutationLength, ClockLength, NumDate, Clade, Div:
		v, ok := n.Attr[name]
		return v, ok
	case "tvalue":
		return n.NumDate()
	case "xvalue":
		return n.X, true
	case "yvalue":
		return n.Y, true
	case "attr":
		return n.Attr, true
	case "muts":
		if len(n.Muts) == 0 {
			return nil, false
		}
		return n.Muts, true
	case "aa_muts":
		return n.AAMuts, true
	}
	return nil, false
}

// A Tree is a rooted phylogenetic tree.
type Tree struct {
	root  *Node
	names map[string]*Node
}

// New returns a tree from a root node.
func New(root *Node) *Tree {
	t := &Tree{
		root:  root,
		names: make(map[string]*Node),
	}
	for _, n := range t.Nodes() {
		if n.Name == "" {
			continue
		}
		if _, dup := t.names[n.Name]; dup {
			continue
		}
		t.names[n.Name] = n
	}
	return t
}

// Root returns the root node of the tree.
func (t *Tree) Root() *Node {
	return t.root
}

// Node returns a node by its name.
func (t *Tree) Node(name string) (*Node, bool) {
	n, ok := t.names[name]
	return n, ok
}

// Nodes returns the nodes of the tree in preorder.
func (t *Tree) Nodes() []*Node {
	var nodes []*Node
	Preorder(t.root, func(n *Node) {
		nodes = append(nodes, n)
	})
	return nodes
}

// Terms returns the terminal nodes of the tree,
// in branch order.
func (t *Tree) Terms() []*Node {
	var terms []*Node
	Postorder(t.root, func(n *Node) {
		if n.IsTerm() {
			terms = append(terms, n)
		}
	})
	return terms
}

// NumTerms returns the number of terminals in the tree.
func (t *Tree) NumTerms() int {
	var num int
	Preorder(t.root, func(n *Node) {
		if n.IsTerm() {
			num++
		}
	})
	return num
}

// Preorder visits a node before its descendants.
func Preorder(n *Node, visit func(*Node)) {
	visit(n)
	for _, c := range n.children {
		Preorder(c, visit)
	}
}

// Postorder visits a node after its descendants.
func Postorder(n *Node, visit func(*Node)) {
	for _, c := range n.children {
		Postorder(c, visit)
	}
	visit(n)
}
