// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package prj implements a command to print
// the basic information of a project.
package prj

import (
	"fmt"
	"io"

	"github.com/js-arias/command"
	"github.com/js-arias/phyexport/align"
	"github.com/js-arias/phyexport/project"
)

var Command = &command.Command{
	Usage: "prj <project-file>",
	Short: "print information about a project",
	Long: `
Command prj reads a project and prints the information of the different
project elements into the standard output.

The argument of the command is the name of the project file.
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
	w := c.Stdout()

	if p.Path(project.Tree) != "" {
		if err := printTree(w, p); err != nil {
			return err
		}
	}
	if p.Path(project.NodeData) != "" {
		if err := printNodeData(w, p); err != nil {
			return err
		}
	}
	if p.Path(project.Colors) != "" {
		if err := printColors(w, p); err != nil {
			return err
		}
	}
	if p.Path(project.LatLong) != "" {
		if err := printLatLong(w, p); err != nil {
			return err
		}
	}
	if p.Path(project.Reference) != "" {
		if err := printReference(w, p); err != nil {
			return err
		}
	}
	if err := printConfig(w, p); err != nil {
		return err
	}

	for _, set := range []project.Dataset{project.Alignment, project.TreeAlignment} {
		if err := printAlignments(w, p, set); err != nil {
			return err
		}
	}
	return nil
}

func printTree(w io.Writer, p *project.Project) error {
	t, err := p.Tree()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Tree:\n")
	fmt.Fprintf(w, "\tfile: %s\n", p.Path(project.Tree))
	fmt.Fprintf(w, "\tnodes: %d\n", len(t.Nodes()))
	fmt.Fprintf(w, "\tterminals: %d\n", t.NumTerms())
	fmt.Fprintf(w, "\n")
	return nil
}

func printNodeData(w io.Writer, p *project.Project) error {
	tbl, err := p.NodeData()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Node metadata:\n")
	fmt.Fprintf(w, "\tfile: %s\n", p.Path(project.NodeData))
	fmt.Fprintf(w, "\tnodes: %d\n", len(tbl.Names()))
	fmt.Fprintf(w, "\tfields: %d\n", len(tbl.Fields()))
	fmt.Fprintf(w, "\n")
	return nil
}

func printColors(w io.Writer, p *project.Project) error {
	m, err := p.Colors()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Trait colors:\n")
	fmt.Fprintf(w, "\tfile: %s\n", p.Path(project.Colors))
	for _, t := range m.Traits() {
		fmt.Fprintf(w, "\t%s: %d categories\n", t, len(m.Entries(t)))
	}
	fmt.Fprintf(w, "\n")
	return nil
}

func printLatLong(w io.Writer, p *project.Project) error {
	tbl, err := p.LatLong()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Geographic places:\n")
	fmt.Fprintf(w, "\tfile: %s\n", p.Path(project.LatLong))
	fmt.Fprintf(w, "\tplaces: %d\n", len(tbl.Places()))
	fmt.Fprintf(w, "\n")
	return nil
}

func printReference(w io.Writer, p *project.Project) error {
	feats, err := p.Reference()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Reference genome:\n")
	fmt.Fprintf(w, "\tfile: %s\n", p.Path(project.Reference))
	fmt.Fprintf(w, "\tfeatures: %d\n", len(feats.Names()))
	fmt.Fprintf(w, "\n")
	return nil
}

func printConfig(w io.Writer, p *project.Project) error {
	cfg, err := p.Config()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Configuration:\n")
	if name := p.Path(project.Config); name != "" {
		fmt.Fprintf(w, "\tfile: %s\n", name)
	} else {
		fmt.Fprintf(w, "\tfile: <default>\n")
	}
	fmt.Fprintf(w, "\ttitle: %s\n", cfg.Title)
	fmt.Fprintf(w, "\tmaintainer: %s\n", cfg.Maintainer)
	fmt.Fprintf(w, "\n")
	return nil
}

func printAlignments(w io.Writer, p *project.Project, set project.Dataset) error {
	feats := p.Features(set)
	if len(feats) == 0 {
		return nil
	}

	fmt.Fprintf(w, "Alignments [%s]:\n", set)
	for _, f := range feats {
		name := p.AlignmentPath(set, f)
		a, err := align.ReadFile(name, f)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "\t%s: %s: %d sequences, %d sites\n", f, name, len(a.Names()), a.Len())
	}
	fmt.Fprintf(w, "\n")
	return nil
}
