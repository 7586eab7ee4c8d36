// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package colors implements a command to set
// the colors of the categories of tree traits.
package colors

import (
	"fmt"
	"os"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/js-arias/command"
	"github.com/js-arias/phyexport/colormap"
	"github.com/js-arias/phyexport/project"
)

var Command = &command.Command{
	Usage: `colors [--scheme <name>] [-o|--output <file>]
	<project-file> <trait>...`,
	Short: "set the colors of trait categories",
	Long: `
Command colors reads the tree and the node metadata of a project, and sets a
color for each category of the indicated traits.

The first argument of the command is the name of the project file. One or
more traits must be given as additional arguments.

The categories of a trait are the different values of the trait in the tree
nodes. The colors are taken from a color scheme, evenly spread along the
scheme. By default the "default" scheme is used. Use the flag --scheme to
define a different scheme. Valid schemes are:

	default       the default gradient of the blind package
	incandescent  the incandescent scheme of Paul Tol
	iridescent    the iridescent scheme of Paul Tol
	rainbow       the rainbow scheme of Paul Tol

Colors of traits not given as arguments are kept.

By default the colors will be stored in the color file currently defined for
the project. If the project does not have a color file, a new one will be
created with the name 'colors.tab'. A different file name can be defined
using the flag --output, or -o.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var scheme string
var output string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&scheme, "scheme", "default", "")
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 2 {
		return c.UsageError("expecting project file and trait")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}
	g, err := colormap.Scheme(scheme)
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

	prev, err := p.Colors()
	if err != nil {
		return err
	}
	traits := args[1:]

	m := colormap.New()
	for _, tr := range prev.Traits() {
		if slices.Contains(traits, tr) {
			continue
		}
		for _, e := range prev.Entries(tr) {
			m.Add(tr, e.Value, e.Color)
		}
	}

	for _, tr := range traits {
		cats := make(map[string]bool)
		for _, n := range t.Nodes() {
			v, ok := n.Attr[tr]
			if !ok {
				continue
			}
			s := fmt.Sprint(v)
			if s == "" {
				continue
			}
			cats[s] = true
		}
		if len(cats) == 0 {
			logger.Warn("trait without values", "trait", tr)
			continue
		}
		vals := make([]string, 0, len(cats))
		for v := range cats {
			vals = append(vals, v)
		}
		slices.Sort(vals)
		m.Palette(g, tr, vals)
	}

	if output == "" {
		output = p.Path(project.Colors)
		if output == "" {
			output = "colors.tab"
		}
	}
	if err := writeColors(output, m); err != nil {
		return err
	}

	p.Add(project.Colors, output)
	if err := p.Write(); err != nil {
		return err
	}
	return nil
}

func writeColors(name string, m *colormap.Map) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	if err := m.TSV(f); err != nil {
		return fmt.Errorf("while writing %q: %v", name, err)
	}
	return nil
}
