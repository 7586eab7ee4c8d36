// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree

// Layout sets the drawing coordinates of the nodes.
//
// The horizontal coordinate (X) is the divergence of the node.
// The vertical coordinate (Y) of terminals
// goes from the number of terminals down to 1,
// in branch order,
// and the coordinate of an internal node
// is the midpoint between the lowest and highest value
// of its children.
func Layout(t *Tree) {
	y := float64(t.NumTerms())
	Postorder(t.root, func(n *Node) {
		n.X = n.Div()
		if n.IsTerm() {
			n.Y = y
			y--
			return
		}

		min, max := n.children[0].Y, n.children[0].Y
		for _, c := range n.children[1:] {
			if c.Y < min {
				min = c.Y
			}
			if c.Y > max {
				max = c.Y
			}
		}
		n.Y = (min + max) / 2
	})
}
