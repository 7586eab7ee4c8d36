// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package project_test

import (
	"os"
	"reflect"
	"slices"
	"testing"

	"github.com/js-arias/phyexport/project"
)

type setPath struct {
	set  project.Dataset
	path string
}

type alnPath struct {
	set     project.Dataset
	feature string
	path    string
}

func TestProject(t *testing.T) {
	p := project.New()

	sets := []setPath{
		{project.Tree, "tree.nwk"},
		{project.NodeData, "node-data.tab"},
		{project.Colors, "colors.tab"},
		{project.LatLong, "lat-long.tab"},
		{project.Reference, "reference.gff"},
		{project.Config, "config.toml"},
	}
	alns := []alnPath{
		{project.Alignment, "nuc", "nuc.fasta"},
		{project.Alignment, "rpoB", "rpoB.fasta"},
		{project.TreeAlignment, "nuc", "nuc-tree.fasta"},
	}

	for _, s := range sets {
		p.Add(s.set, s.path)
	}
	for _, a := range alns {
		p.AddAlignment(a.set, a.feature, a.path)
	}
	testProject(t, p, sets, alns)

	name := "tmp-project-for-test.tab"
	defer os.Remove(name)

	p.SetName(name)
	if err := p.Write(); err != nil {
		t.Fatalf("error when writing data: %v", err)
	}

	np, err := project.Read(name)
	if err != nil {
		t.Fatalf("error when reading data: %v", err)
	}
	testProject(t, np, sets, alns)

	if prev := np.AddAlignment(project.Alignment, "rpoB", ""); prev != "rpoB.fasta" {
		t.Errorf("remove alignment: got previous %q, want %q", prev, "rpoB.fasta")
	}
	if f := np.Features(project.Alignment); !reflect.DeepEqual(f, []string{"nuc"}) {
		t.Errorf("features: got %v, want %v", f, []string{"nuc"})
	}
}

func TestReadMissingFeature(t *testing.T) {
	name := "tmp-project-missing-feature-for-test.tab"
	defer os.Remove(name)

	data := "dataset\tpath\n" +
		"tree\ttree.nwk\n" +
		"alignment\tnuc.fasta\n"
	if err := os.WriteFile(name, []byte(data), 0644); err != nil {
		t.Fatalf("unable to write file: %v", err)
	}

	if _, err := project.Read(name); err == nil {
		t.Errorf("alignment without feature: expecting error")
	}
}

func testProject(t testing.TB, p *project.Project, sets []setPath, alns []alnPath) {
	t.Helper()

	for _, s := range sets {
		if path := p.Path(s.set); path != s.path {
			t.Errorf("set %s: got path %q, want %q", s.set, path, s.path)
		}
	}
	for _, a := range alns {
		if path := p.AlignmentPath(a.set, a.feature); path != a.path {
			t.Errorf("set %s: feature %s: got path %q, want %q", a.set, a.feature, path, a.path)
		}
	}

	datasets := make([]project.Dataset, 0, len(sets))
	for _, v := range sets {
		datasets = append(datasets, v.set)
	}
	for _, a := range alns {
		if slices.Contains(datasets, a.set) {
			continue
		}
		datasets = append(datasets, a.set)
	}
	slices.Sort(datasets)

	if ls := p.Sets(); !reflect.DeepEqual(ls, datasets) {
		t.Errorf("sets: got %v, want %v", ls, datasets)
	}

	feats := []string{"nuc", "rpoB"}
	if f := p.Features(project.Alignment); !reflect.DeepEqual(f, feats) {
		t.Errorf("features: got %v, want %v", f, feats)
	}
}
