// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package project

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/js-arias/phyexport/align"
	"github.com/js-arias/phyexport/colormap"
	"github.com/js-arias/phyexport/config"
	"github.com/js-arias/phyexport/features"
	"github.com/js-arias/phyexport/latlong"
	"github.com/js-arias/phyexport/nodedata"
	"github.com/js-arias/phyexport/tree"
)

// Tree reads the phylogenetic tree
// as defined in a project.
func (p *Project) Tree() (*tree.Tree, error) {
	name := p.Path(Tree)
	if name == "" {
		return nil, fmt.Errorf("tree not defined in project %q", p.name)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := tree.ReadNewick(f)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	return t, nil
}

// NodeData reads the node metadata table
// as defined in a project.
func (p *Project) NodeData() (*nodedata.Table, error) {
	name := p.Path(NodeData)
	if name == "" {
		return nil, fmt.Errorf("node metadata not defined in project %q", p.name)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	tbl, err := nodedata.ReadTSV(f)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	return tbl, nil
}

// AnnotatedTree reads the tree
// and the node metadata
// as defined in a project.
// The metadata is attached to the tree nodes,
// and the layout of the tree is calculated.
func (p *Project) AnnotatedTree(logger *log.Logger) (*tree.Tree, *nodedata.Table, error) {
	t, err := p.Tree()
	if err != nil {
		return nil, nil, err
	}
	tbl, err := p.NodeData()
	if err != nil {
		return nil, nil, err
	}

	if err := nodedata.Attach(t, tbl, logger); err != nil {
		return nil, nil, fmt.Errorf("on project %q: %w", p.name, err)
	}
	tree.Layout(t)
	return t, tbl, nil
}

// Colors reads the colors of the trait categories
// as defined in a project.
// If no color file is defined,
// it returns an empty color map.
func (p *Project) Colors() (*colormap.Map, error) {
	name := p.Path(Colors)
	if name == "" {
		return colormap.New(), nil
	}
	return colormap.ReadFile(name)
}

// LatLong reads the coordinates of the geographic places
// as defined in a project.
// If no file is defined,
// it returns an empty table.
func (p *Project) LatLong() (*latlong.Table, error) {
	name := p.Path(LatLong)
	if name == "" {
		return latlong.New(), nil
	}
	return latlong.ReadFile(name)
}

// Reference reads the feature table
// of the reference genome
// as defined in a project.
// If no reference is defined,
// it returns nil.
func (p *Project) Reference() (*features.Table, error) {
	name := p.Path(Reference)
	if name == "" {
		return nil, nil
	}
	return features.ReadFile(name)
}

// Config reads the export configuration
// as defined in a project.
// If no configuration is defined,
// it returns the default configuration.
func (p *Project) Config() (config.Config, error) {
	name := p.Path(Config)
	if name == "" {
		return config.Default(), nil
	}
	return config.ReadFile(name)
}

// Alignments reads the alignments of a dataset
// as defined in a project,
// ordered by feature.
func (p *Project) Alignments(set Dataset) ([]*align.Alignment, error) {
	if !set.IsAlignment() {
		return nil, fmt.Errorf("dataset %q is not an alignment", set)
	}

	var alns []*align.Alignment
	for _, f := range p.Features(set) {
		a, err := align.ReadFile(p.AlignmentPath(set, f), f)
		if err != nil {
			return nil, err
		}
		alns = append(alns, a)
	}
	return alns, nil
}
