// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package layout implements a command to print
// the layout coordinates of the nodes of a tree.
package layout

import (
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/js-arias/command"
	"github.com/js-arias/phyexport/project"
)

var Command = &command.Command{
	Usage: "layout <project-file>",
	Short: "print the layout of the tree nodes",
	Long: `
Command layout reads the tree and the node metadata of a project, and prints
the layout coordinates of each node in the standard output.

The argument of the command is the name of the project file.

The output is a tab-delimited table with the following columns:

	node   the name of the node
	div    the divergence of the node from the root
	x      the horizontal coordinate (the divergence)
	y      the vertical coordinate

Nodes are printed in preorder.
	`,
	Run: run,
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}
	logger := log.NewWithOptions(c.Stderr(), log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           log.WarnLevel,
	})

	t, _, err := p.AnnotatedTree(logger)
	if err != nil {
		return err
	}

	tab := csv.NewWriter(c.Stdout())
	tab.Comma = '\t'
	if err := tab.Write([]string{"node", "div", "x", "y"}); err != nil {
		return err
	}
	for _, n := range t.Nodes() {
		row := []string{
			n.Name,
			strconv.FormatFloat(n.Div(), 'f', 6, 64),
			strconv.FormatFloat(n.X, 'f', 6, 64),
			strconv.FormatFloat(n.Y, 'f', 2, 64),
		}
		if err := tab.Write(row); err != nil {
			return err
		}
	}
	tab.Flush()
	if err := tab.Error(); err != nil {
		return fmt.Errorf("while writing data: %v", err)
	}
	return nil
}
