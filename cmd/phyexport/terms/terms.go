// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package terms implements a command to print
// the list of the terminals in the tree of a project.
package terms

import (
	"fmt"

	"github.com/js-arias/command"
	"github.com/js-arias/phyexport/project"
	"golang.org/x/exp/slices"
)

var Command = &command.Command{
	Usage: "terms [--all] [--tree-order] <project-file>",
	Short: "print a list of tree terminals",
	Long: `
Command terms reads the tree from a project and prints the name of the
terminals in the standard output.

The argument of the command is the name of the project file.

By default only the terminals are printed. If the flag --all is set, the
names of the internal nodes will be also printed.

By default the names are sorted alphabetically. Use the flag --tree-order to
print the names in the order of the tree.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var allFlag bool
var treeOrder bool

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&allFlag, "all", false, "")
	c.Flags().BoolVar(&treeOrder, "tree-order", false, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}
	t, err := p.Tree()
	if err != nil {
		return err
	}

	var ls []string
	for _, n := range t.Nodes() {
		if n.Name == "" {
			continue
		}
		if !allFlag && !n.IsTerm() {
			continue
		}
		ls = append(ls, n.Name)
	}
	if !treeOrder {
		slices.Sort(ls)
	}

	for _, nm := range ls {
		fmt.Fprintf(c.Stdout(), "%s\n", nm)
	}
	return nil
}
