// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package add implements a command to add data files
// to a project.
package add

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/js-arias/command"
	"github.com/js-arias/phyexport/align"
	"github.com/js-arias/phyexport/colormap"
	"github.com/js-arias/phyexport/config"
	"github.com/js-arias/phyexport/features"
	"github.com/js-arias/phyexport/latlong"
	"github.com/js-arias/phyexport/nodedata"
	"github.com/js-arias/phyexport/project"
	"github.com/js-arias/phyexport/tree"
)

var Command = &command.Command{
	Usage: `add [--feature <name>]
	<project-file> <dataset> <file>`,
	Short: "add a data file to a project",
	Long: `
Command add reads a data file and adds it to a project.

The first argument of the command is the name of the project file. If no
project file exists, a new project will be created.

The second argument is the dataset keyword of the file. Valid keywords are:

	tree            a newick tree
	nodedata        a tab-delimited file with the metadata of the tree nodes
	colors          a tab-delimited file with the colors of trait categories
	latlong         a tab-delimited file with the coordinates of places
	reference       a GFF file with the features of the reference genome
	config          a TOML file with the export configuration
	alignment       a FASTA alignment of the terminals
	tree-alignment  a FASTA alignment of all tree nodes

The third argument is the name of the file. The file is read before it is
added to the project, so invalid files are rejected. If the dataset is config
and the file does not exist, a file with the default configuration will be
created.

Alignments require the flag --feature, with the name of the gene of the
alignment. Use "nuc" for the nucleotide alignment of the genome.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var feature string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&feature, "feature", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 3 {
		return c.UsageError("expecting project file, dataset, and file")
	}
	p, err := openProject(args[0])
	if err != nil {
		return err
	}

	set := project.Dataset(strings.ToLower(args[1]))
	name := args[2]
	if err := validate(set, name); err != nil {
		return err
	}

	if set.IsAlignment() {
		if feature == "" {
			return c.UsageError(fmt.Sprintf("dataset %q: expecting --feature flag", set))
		}
		p.AddAlignment(set, feature, name)
	} else {
		p.Add(set, name)
	}

	if err := p.Write(); err != nil {
		return err
	}
	return nil
}

func openProject(name string) (*project.Project, error) {
	p, err := project.Read(name)
	if errors.Is(err, os.ErrNotExist) {
		p := project.New()
		p.SetName(name)
		return p, nil
	}
	if err != nil {
		return nil, fmt.Errorf("unable to open project %q: %v", name, err)
	}
	return p, nil
}

func validate(set project.Dataset, name string) error {
	switch set {
	case project.Tree:
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		defer f.Close()
		if _, err := tree.ReadNewick(f); err != nil {
			return fmt.Errorf("on file %q: %v", name, err)
		}
		return nil
	case project.NodeData:
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		defer f.Close()
		if _, err := nodedata.ReadTSV(f); err != nil {
			return fmt.Errorf("on file %q: %v", name, err)
		}
		return nil
	case project.Colors:
		_, err := colormap.ReadFile(name)
		return err
	case project.LatLong:
		_, err := latlong.ReadFile(name)
		return err
	case project.Reference:
		_, err := features.ReadFile(name)
		return err
	case project.Config:
		_, err := config.ReadFile(name)
		if errors.Is(err, os.ErrNotExist) {
			return writeConfig(name)
		}
		return err
	case project.Alignment, project.TreeAlignment:
		_, err := align.ReadFile(name, feature)
		return err
	}
	return fmt.Errorf("unknown dataset %q", set)
}

func writeConfig(name string) (err error) {
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

	if err := config.Default().Write(f); err != nil {
		return fmt.Errorf("on file %q: %v", name, err)
	}
	return nil
}
