// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package project implements reading and writing
// of phyexport project files.
//
// A phyexport project is a tab-delimited file (TSV)
// used to store the different data files
// required by the export commands.
package project

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"time"
)

// Dataset is a keyword to identify
// the type of a dataset file in a project.
type Dataset string

// Valid dataset types.
const (
	// File for the phylogenetic tree,
	// in newick format.
	Tree Dataset = "tree"

	// File for the metadata of the tree nodes.
	NodeData Dataset = "nodedata"

	// File for the colors of the trait categories.
	Colors Dataset = "colors"

	// File for the coordinates of the geographic places.
	LatLong Dataset = "latlong"

	// File for the features of the reference genome,
	// in GFF format.
	Reference Dataset = "reference"

	// File for the export configuration,
	// in TOML format.
	Config Dataset = "config"

	// Files for the alignments of the terminals,
	// one file per feature.
	Alignment Dataset = "alignment"

	// Files for the alignments of all tree nodes,
	// one file per feature.
	TreeAlignment Dataset = "tree-alignment"
)

// IsAlignment returns true if the dataset
// requires a feature.
func (d Dataset) IsAlignment() bool {
	return d == Alignment || d == TreeAlignment
}

// A Project represents a collection of paths
// for particular datasets.
type Project struct {
	name  string
	paths map[Dataset]string

	// alignments by dataset and feature
	alns map[Dataset]map[string]string
}

// New creates a new empty project.
func New() *Project {
	return &Project{
		name:  "",
		paths: make(map[Dataset]string),
		alns:  make(map[Dataset]map[string]string),
	}
}

var header = []string{
	"dataset",
	"path",
}

// Read reads a project file from a TSV file.
//
// The TSV must contain the following fields:
//
//   - dataset, for the kind of file
//   - path, for the path of the file
//
// Alignment datasets also require the field "feature",
// with the name of the gene
// (or "nuc" for the nucleotide alignment).
//
// Here is an example file:
//
//	# phyexport project files
//	dataset	path	feature
//	tree	tree.nwk
//	nodedata	node-data.tab
//	colors	colors.tab
//	latlong	lat-long.tab
//	reference	reference.gff
//	alignment	nuc.fasta	nuc
//	alignment	rpoB.fasta	rpoB
//	tree-alignment	nuc-tree.fasta	nuc
func Read(name string) (*Project, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	p, err := read(f)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	p.name = name
	return p, nil
}

func read(r io.Reader) (*Project, error) {
	tsv := csv.NewReader(r)
	tsv.Comma = '\t'
	tsv.Comment = '#'
	tsv.FieldsPerRecord = -1

	head, err := tsv.Read()
	if err != nil {
		return nil, fmt.Errorf("header: %v", err)
	}
	fields := make(map[string]int, len(head))
	for i, h := range head {
		h = strings.ToLower(h)
		fields[h] = i
	}
	for _, h := range header {
		if _, ok := fields[h]; !ok {
			return nil, fmt.Errorf("expecting field %q", h)
		}
	}
	feat, hasFeat := fields["feature"]

	p := New()
	for {
		row, err := tsv.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tsv.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}
		if len(row) < len(header) {
			return nil, fmt.Errorf("on row %d: got %d fields, want %d", ln, len(row), len(header))
		}

		f := "dataset"
		s := Dataset(strings.ToLower(row[fields[f]]))

		f = "path"
		path := row[fields[f]]

		if !s.IsAlignment() {
			p.paths[s] = path
			continue
		}

		f = "feature"
		var feature string
		if hasFeat && feat < len(row) {
			feature = strings.TrimSpace(row[feat])
		}
		if feature == "" {
			return nil, fmt.Errorf("on row %d: dataset %q: field %q: empty value", ln, s, f)
		}
		p.AddAlignment(s, feature, path)
	}

	return p, nil
}

// Add adds a filepath of a dataset to a given project.
// It returns the previous value
// for the dataset.
func (p *Project) Add(set Dataset, path string) string {
	prev := p.paths[set]
	if path == "" {
		delete(p.paths, set)
		return prev
	}

	p.paths[set] = path
	return prev
}

// AddAlignment adds the filepath of an alignment
// of a feature.
// It returns the previous value
// for the feature.
func (p *Project) AddAlignment(set Dataset, feature, path string) string {
	a, ok := p.alns[set]
	if !ok {
		a = make(map[string]string)
		p.alns[set] = a
	}
	prev := a[feature]
	if path == "" {
		delete(a, feature)
		if len(a) == 0 {
			delete(p.alns, set)
		}
		return prev
	}

	a[feature] = path
	return prev
}

// Path returns the path of the given dataset.
func (p *Project) Path(set Dataset) string {
	return p.paths[set]
}

// AlignmentPath returns the path of the alignment
// of a feature.
func (p *Project) AlignmentPath(set Dataset, feature string) string {
	return p.alns[set][feature]
}

// Features returns the features with an alignment
// in the given dataset.
func (p *Project) Features(set Dataset) []string {
	fs := make([]string, 0, len(p.alns[set]))
	for f := range p.alns[set] {
		fs = append(fs, f)
	}
	slices.Sort(fs)
	return fs
}

// Sets returns the datasets defined on a project.
func (p *Project) Sets() []Dataset {
	var sets []Dataset
	for s := range p.paths {
		sets = append(sets, s)
	}
	for s := range p.alns {
		if _, ok := p.paths[s]; ok {
			continue
		}
		sets = append(sets, s)
	}
	slices.Sort(sets)
	return sets
}

// Name returns the project file name.
func (p *Project) Name() string {
	return p.name
}

// SetName sets the project file name.
func (p *Project) SetName(name string) {
	p.name = name
}

// Write writes a project into a file.
func (p *Project) Write() (err error) {
	f, err := os.Create(p.name)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	if err := p.tsv(f); err != nil {
		return fmt.Errorf("on file %q: %v", p.name, err)
	}
	return nil
}

func (p *Project) tsv(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# phyexport project files\n")
	fmt.Fprintf(bw, "# data save on: %s\n", time.Now().Format(time.RFC3339))
	tsv := csv.NewWriter(bw)
	tsv.Comma = '\t'
	tsv.UseCRLF = true

	if err := tsv.Write([]string{"dataset", "path", "feature"}); err != nil {
		return fmt.Errorf("while writing header: %v", err)
	}

	for _, s := range p.Sets() {
		if !s.IsAlignment() {
			if err := tsv.Write([]string{string(s), p.paths[s], ""}); err != nil {
				return err
			}
			continue
		}
		for _, f := range p.Features(s) {
			if err := tsv.Write([]string{string(s), p.alns[s][f], f}); err != nil {
				return err
			}
		}
	}

	tsv.Flush()
	if err := tsv.Error(); err != nil {
		return fmt.Errorf("while writing data: %v", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("while writing data: %v", err)
	}
	return nil
}
