// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package divplot implements a command to plot
// the diversity of the alignments of a project.
package divplot

import (
	"fmt"
	"slices"
	"strings"

	"github.com/js-arias/command"
	"github.com/js-arias/phyexport/diversity"
	"github.com/js-arias/phyexport/features"
	"github.com/js-arias/phyexport/project"
)

var Command = &command.Command{
	Usage: `divplot [--reference <gff-file>] [--format <format>]
	[--prefix <prefix>] [--feature <name>]
	<project-file>`,
	Short: "plot the diversity of the alignments",
	Long: `
Command divplot reads the alignments of a project and draws the diversity
(Shannon entropy) of each alignment site as an image.

The argument of the command is the name of the project file.

The alignments are read from the "alignment" datasets of the project. For
proteins, the reference genome is used to locate the protein in the genome,
and proteins without a feature in the reference genome are ignored. By
default the reference defined in the project is used. Use the flag
--reference to use a different GFF file.

By default all alignments will be plotted. Use the flag --feature to plot
only the indicated feature.

The images are written as files with the name
"<prefix>-<feature>-entropy.<format>". By default the prefix is "phyexport".
Use the flag --prefix to define a different prefix. By default the images
are written in PNG format. Use the flag --format to define a different format
(for example "svg" or "pdf").
	`,
	SetFlags: setFlags,
	Run:      run,
}

var refFile string
var format string
var prefix string
var featFlag string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&refFile, "reference", "", "")
	c.Flags().StringVar(&format, "format", "png", "")
	c.Flags().StringVar(&prefix, "prefix", "phyexport", "")
	c.Flags().StringVar(&featFlag, "feature", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}

	var feats *features.Table
	if refFile != "" {
		feats, err = features.ReadFile(refFile)
	} else {
		feats, err = p.Reference()
	}
	if err != nil {
		return err
	}

	alns, err := p.Alignments(project.Alignment)
	if err != nil {
		return err
	}
	recs := diversity.Analyze(alns, feats)

	names := make([]string, 0, len(recs))
	for f := range recs {
		if featFlag != "" && f != featFlag {
			continue
		}
		names = append(names, f)
	}
	slices.Sort(names)

	ext := strings.TrimPrefix(strings.ToLower(format), ".")
	for _, f := range names {
		name := fmt.Sprintf("%s-%s-entropy.%s", prefix, f, ext)
		if err := diversity.Plot(recs[f], f, name); err != nil {
			return err
		}
	}
	return nil
}
