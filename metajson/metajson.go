// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package metajson builds the metadata document
// of an annotated tree.
package metajson

import (
	"errors"
	"fmt"
	"time"

	"github.com/js-arias/phyexport/colormap"
	"github.com/js-arias/phyexport/config"
	"github.com/js-arias/phyexport/features"
	"github.com/js-arias/phyexport/latlong"
	"github.com/js-arias/phyexport/tree"
)

// GeoTraits are the node traits
// with geographic locations.
var GeoTraits = []string{"region", "country"}

// Panels are the panels shown by the visualizer.
var Panels = []string{"tree", "map", "entropy"}

// ColorOption is a color scheme
// of the visualizer.
type ColorOption struct {
	MenuItem    string           `json:"menuItem"`
	Type        string           `json:"type"`
	ColorMap    []colormap.Entry `json:"color_map,omitempty"`
	LegendTitle string           `json:"legendTitle"`
	Key         string           `json:"key"`
}

// Document is the metadata document.
type Document struct {
	VirusCount   int                                 `json:"virus_count"`
	Updated      string                              `json:"updated"`
	AuthorInfo   map[string]config.Author            `json:"author_info"`
	SeqAuthorMap map[string]string                   `json:"seq_author_map"`
	Title        string                              `json:"title"`
	Maintainer   string                              `json:"maintainer"`
	Commit       string                              `json:"commit"`
	Panels       []string                            `json:"panels"`
	ColorOptions map[string]ColorOption              `json:"color_options"`
	Geo          map[string]map[string]latlong.Point `json:"geo"`
	Filters      []string                            `json:"filters"`
	Annotations  map[string]features.Annotation      `json:"annotations"`
}

// Input contains the data used to build
// a metadata document.
type Input struct {
	// An annotated tree.
	Tree *tree.Tree

	// Provenance values.
	Config config.Config

	// Colors of the trait categories.
	// It can be nil.
	Colors *colormap.Map

	// Locations of the geographic places.
	// It can be nil.
	Places *latlong.Table

	// Features of the reference genome.
	// It can be nil.
	Features *features.Table

	// Genes with an alignment.
	Genes []string

	// Date of the update.
	// If zero,
	// the current date will be used.
	Updated time.Time
}

// Build builds a metadata document.
func Build(in Input) (Document, error) {
	if in.Tree == nil {
		return Document{}, errors.New("metadata: undefined tree")
	}

	updated := in.Updated
	if updated.IsZero() {
		updated = time.Now()
	}

	doc := Document{
		VirusCount:   in.Tree.NumTerms(),
		Updated:      updated.Format(time.DateOnly),
		AuthorInfo:   in.Config.Authors,
		SeqAuthorMap: map[string]string{},
		Title:        in.Config.Title,
		Maintainer:   in.Config.Maintainer,
		Commit:       in.Config.Commit,
		Panels:       Panels,
		ColorOptions: colorOptions(in.Colors),
		Geo:          geo(in.Tree, in.Places),
		Filters:      []string{"country", "region"},
		Annotations:  annotations(in.Features, in.Genes),
	}
	if doc.AuthorInfo == nil {
		doc.AuthorInfo = map[string]config.Author{}
	}
	return doc, nil
}

func colorOptions(m *colormap.Map) map[string]ColorOption {
	opts := map[string]ColorOption{
		"gt": {
			MenuItem:    "genotype",
			Type:        "discrete",
			LegendTitle: "Genotype",
			Key:         "genotype",
		},
		tree.NumDate: {
			MenuItem:    "date",
			Type:        "continuous",
			LegendTitle: "Sampling date",
			Key:         tree.NumDate,
		},
	}
	if m == nil {
		return opts
	}

	for _, t := range m.Traits() {
		opts[t] = ColorOption{
			MenuItem:    t,
			Type:        "discrete",
			ColorMap:    m.Entries(t),
			LegendTitle: t,
			Key:         t,
		}
	}
	return opts
}

func geo(t *tree.Tree, places *latlong.Table) map[string]map[string]latlong.Point {
	g := make(map[string]map[string]latlong.Point, len(GeoTraits))
	for _, trait := range GeoTraits {
		g[trait] = make(map[string]latlong.Point)
		if places == nil {
			continue
		}
		for _, n := range t.Nodes() {
			v, ok := n.Attr[trait]
			if !ok {
				continue
			}
			place := fmt.Sprint(v)
			if _, dup := g[trait][place]; dup {
				continue
			}
			p, ok := places.Point(place)
			if !ok {
				continue
			}
			g[trait][place] = p
		}
	}
	return g
}

func annotations(feats *features.Table, genes []string) map[string]features.Annotation {
	anno := make(map[string]features.Annotation)
	if feats == nil {
		return anno
	}
	for _, g := range genes {
		a, ok := feats.Get(g)
		if !ok {
			continue
		}
		anno[g] = a
	}
	return anno
}
