// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package nodedata

import (
	"github.com/charmbracelet/log"
	"github.com/js-arias/phyexport/dataerr"
	"github.com/js-arias/phyexport/tree"
)

// Attach adds the metadata of a table
// to the nodes of a tree,
// and sets the cumulative divergence of each node.
//
// Every node of the tree must have a record in the table.
//
// The divergence of a node is the divergence of its parent
// plus the mutation length of the node,
// or its branch length
// if the mutation length is undefined.
// If both are undefined,
// the length is taken as 0
// and a warning is sent to the logger.
// If logger is nil,
// the default logger will be used.
func Attach(t *tree.Tree, tbl *Table, logger *log.Logger) error {
	if logger == nil {
		logger = log.Default()
	}

	for _, n := range t.Nodes() {
		rec, ok := tbl.Record(n.Name)
		if !ok {
			return dataerr.New(dataerr.MissingMetadata, "node not found in metadata table").WithNode(n.Name)
		}
		for _, f := range tbl.Fields() {
			v, ok := rec[f]
			if !ok {
				continue
			}
			setField(n, f, v)
		}
	}

	root := t.Root()
	root.Attr[tree.Div] = 0.0
	tree.Preorder(root, func(n *tree.Node) {
		for _, c := range n.Children() {
			l, ok := c.MutationLength()
			if !ok {
				l, ok = c.BranchLength()
			}
			if !ok {
				logger.Warn("undefined branch length, using 0", "node", c.Name)
			}
			c.Attr[tree.Div] = n.Div() + l
		}
	})
	return nil
}

func setField(n *tree.Node, field, v string) {
	switch Classify(field) {
	case Mutations:
		if muts := ParseMutations(v); len(muts) > 0 {
			n.Muts = muts
		}
	case ProteinMutations:
		if muts := ParseMutations(v); len(muts) > 0 {
			n.AAMuts[Protein(field)] = muts
		}
	case Structural:
		n.Attr[field] = parseStructural(field, v)
	default:
		n.Attr[field] = v
	}
}
