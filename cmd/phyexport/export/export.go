// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package export implements a command to export
// an annotated tree,
// and its sequences,
// as JSON files for a web visualizer.
package export

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/js-arias/command"
	"github.com/js-arias/phyexport/diversity"
	"github.com/js-arias/phyexport/features"
	"github.com/js-arias/phyexport/jsonio"
	"github.com/js-arias/phyexport/metajson"
	"github.com/js-arias/phyexport/project"
	"github.com/js-arias/phyexport/seqjson"
	"github.com/js-arias/phyexport/treejson"
)

var Command = &command.Command{
	Usage: `export [--prefix <prefix>] [--reference <gff-file>]
	[--no-sequence] [--no-diversity] [--no-meta]
	[--indent <value>] [-v|--verbose]
	<project-file>`,
	Short: "export an annotated tree as JSON files",
	Long: `
Command export reads the tree and the node metadata of a project, attaches
the metadata to the tree nodes, and writes the annotated tree, and other
associated data, as JSON files for a web visualizer.

The argument of the command is the name of the project file.

The following files will be written:

	<prefix>_tree.json       the annotated tree
	<prefix>_sequences.json  the sequences of the tree nodes, as differences
	                         from the root sequence
	<prefix>_entropy.json    the diversity of each alignment site
	<prefix>_meta.json       the metadata of the visualization

By default the prefix is "phyexport". Use the flag --prefix to define a
different prefix.

The sequences are read from the "tree-alignment" datasets of the project, and
each tree node, including the root, must have a sequence. Use the flag
--no-sequence to skip the sequence file.

The diversity is calculated from the "alignment" datasets of the project. For
proteins, the reference genome is used to locate the protein in the genome.
Proteins without a feature in the reference genome are ignored. By default
the reference defined in the project is used. Use the flag --reference to use
a different GFF file. Use the flag --no-diversity to skip the diversity file.

The metadata file uses the colors, the geographic coordinates, and the
configuration defined in the project. Use the flag --no-meta to skip the
metadata file.

The tree file is always written.

By default the JSON files are written in compact form, except the metadata
file that is indented with one space. Use the flag --indent to set the number
of spaces used to indent all files.

Warnings are written to the standard error. Use the flag --verbose, or -v, to
report the progress of the command.

If there is an error in the data, for example, a node without metadata or
without a sequence, no file will be written.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var prefix string
var refFile string
var noSequence bool
var noDiversity bool
var noMeta bool
var indent int
var verbose bool

func setFlags(c *command.Command) {
	c.Flags().StringVar(&prefix, "prefix", "phyexport", "")
	c.Flags().StringVar(&refFile, "reference", "", "")
	c.Flags().BoolVar(&noSequence, "no-sequence", false, "")
	c.Flags().BoolVar(&noDiversity, "no-diversity", false, "")
	c.Flags().BoolVar(&noMeta, "no-meta", false, "")
	c.Flags().IntVar(&indent, "indent", 0, "")
	c.Flags().BoolVar(&verbose, "verbose", false, "")
	c.Flags().BoolVar(&verbose, "v", false, "")
}

// An artifact is a JSON file to be written.
type artifact struct {
	name   string
	v      any
	indent int
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}
	logger := newLogger(c.Stderr())

	t, tbl, err := p.AnnotatedTree(logger)
	if err != nil {
		return err
	}
	logger.Debug("tree annotated", "nodes", len(t.Nodes()), "terminals", t.NumTerms())

	cfg, err := p.Config()
	if err != nil {
		return err
	}

	columns := cfg.Fields
	if len(columns) == 0 {
		columns = tbl.Fields()
	}
	root, err := treejson.Serialize(t.Root(), treejson.DefaultFields(columns), logger)
	if err != nil {
		return err
	}
	arts := []artifact{
		{name: prefix + "_tree.json", v: root, indent: indent},
	}

	if !noSequence {
		alns, err := p.Alignments(project.TreeAlignment)
		if err != nil {
			return err
		}
		doc, err := seqjson.Export(t, alns)
		if err != nil {
			return err
		}
		logger.Debug("sequences exported", "genes", len(alns))
		arts = append(arts, artifact{name: prefix + "_sequences.json", v: doc, indent: indent})
	}

	var feats *features.Table
	if !noDiversity || !noMeta {
		feats, err = reference(p)
		if err != nil {
			return err
		}
	}

	if !noDiversity {
		alns, err := p.Alignments(project.Alignment)
		if err != nil {
			return err
		}
		recs := diversity.Analyze(alns, feats)
		logger.Debug("diversity calculated", "alignments", len(recs))
		arts = append(arts, artifact{name: prefix + "_entropy.json", v: recs, indent: indent})
	}

	if !noMeta {
		colors, err := p.Colors()
		if err != nil {
			return err
		}
		places, err := p.LatLong()
		if err != nil {
			return err
		}
		doc, err := metajson.Build(metajson.Input{
			Tree:     t,
			Config:   cfg,
			Colors:   colors,
			Places:   places,
			Features: feats,
			Genes:    p.Features(project.Alignment),
			Updated:  time.Now(),
		})
		if err != nil {
			return err
		}
		arts = append(arts, artifact{name: prefix + "_meta.json", v: doc, indent: max(indent, 1)})
	}

	for _, a := range arts {
		if err := jsonio.WriteFile(a.name, a.v, a.indent); err != nil {
			return err
		}
		logger.Debug("file written", "file", a.name)
	}
	return nil
}

func reference(p *project.Project) (*features.Table, error) {
	if refFile != "" {
		return features.ReadFile(refFile)
	}
	return p.Reference()
}

func newLogger(w io.Writer) *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}
