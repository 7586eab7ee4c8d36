// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package seqjson_test

import (
	"encoding/json"
	"reflect"
	"slices"
	"strings"
	"testing"

	"github.com/js-arias/phyexport/align"
	"github.com/js-arias/phyexport/dataerr"
	"github.com/js-arias/phyexport/seqjson"
	"github.com/js-arias/phyexport/tree"
)

func TestCompare(t *testing.T) {
	root := strings.Repeat("ACGT", 250)

	b := []byte(root)
	b[10] = 'T'
	b[999] = 'A'
	s := string(b)

	d, err := seqjson.Compare(root, s)
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	if d.IsFull() {
		t.Fatalf("expecting sparse difference")
	}
	want := map[int]string{10: "T", 999: "A"}
	if !reflect.DeepEqual(d.Sparse, want) {
		t.Errorf("sparse: got %v, want %v", d.Sparse, want)
	}
	if g := seqjson.Apply(root, d); g != s {
		t.Errorf("apply: sequence not reconstructed")
	}

	same, _ := seqjson.Compare(root, root)
	if same.IsFull() || len(same.Sparse) != 0 {
		t.Errorf("identical sequence: got %v, want empty difference", same)
	}

	if _, err := seqjson.Compare(root, root[1:]); err == nil {
		t.Errorf("expecting length error")
	}
}

func TestCompareFull(t *testing.T) {
	root := strings.Repeat("A", 100)

	// 99 differences out of 100 sites is still sparse
	sparse := "A" + strings.Repeat("C", 99)
	d, _ := seqjson.Compare(root, sparse)
	if d.IsFull() {
		t.Errorf("99 differences: expecting sparse difference")
	}

	full := strings.Repeat("C", 100)
	d, _ = seqjson.Compare(root, full)
	if !d.IsFull() || d.Full != full {
		t.Errorf("100 differences: expecting full sequence, got %v", d)
	}
	if g := seqjson.Apply(root, d); g != full {
		t.Errorf("apply: got %q, want %q", g, full)
	}
}

func TestExport(t *testing.T) {
	tr := newTree(t)
	nuc := newAlignment(t, align.Nuc, map[string]string{
		"R": "ACGTACGTAC",
		"A": "ACGTACGTAA",
		"B": "TCGTACGTAC",
		"C": "TCGAACGTAC",
	})
	ha := newAlignment(t, "HA1", map[string]string{
		"R": "MK",
		"A": "MK",
		"B": "LR",
		"C": "LR",
	})

	doc, err := seqjson.Export(tr, []*align.Alignment{nuc, ha})
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	wantRoot := map[string]string{align.Nuc: "ACGTACGTAC", "HA1": "MK"}
	if !reflect.DeepEqual(doc.Root, wantRoot) {
		t.Errorf("root: got %v, want %v", doc.Root, wantRoot)
	}
	clades := make([]string, 0, len(doc.Nodes))
	for c := range doc.Nodes {
		clades = append(clades, c)
	}
	slices.Sort(clades)
	if !reflect.DeepEqual(clades, []string{"0", "1", "10", "2"}) {
		t.Errorf("clades: got %v", clades)
	}

	if d := doc.Nodes["10"][align.Nuc]; !reflect.DeepEqual(d.Sparse, map[int]string{0: "T", 3: "A"}) {
		t.Errorf("clade 10: nuc: got %v", d)
	}
	if d := doc.Nodes["2"]["HA1"]; !d.IsFull() || d.Full != "LR" {
		t.Errorf("clade 2: HA1: got %v, want full sequence", d)
	}

	// every sequence is reconstructed
	// after a JSON round trip
	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := raw["root"]; !ok {
		t.Errorf("expecting root key")
	}

	// root sequences are decoded as full sequences
	var nd map[string]map[string]seqjson.Diff
	if err := json.Unmarshal(data, &nd); err != nil {
		t.Fatalf("unmarshal document: %v", err)
	}
	for _, a := range []*align.Alignment{nuc, ha} {
		root := nd["root"][a.Feature()]
		if !root.IsFull() {
			t.Fatalf("%s: root: got %v, want full sequence", a.Feature(), root)
		}
		for _, n := range tr.Nodes() {
			c, _ := n.Clade()
			want, _ := a.Seq(n.Name)
			got := seqjson.Apply(root.Full, nd[c][a.Feature()])
			if got != want {
				t.Errorf("node %q: %s: got %q, want %q", n.Name, a.Feature(), got, want)
			}
		}
	}
}

func TestExportErrors(t *testing.T) {
	tr := newTree(t)

	missing := newAlignment(t, "HA1", map[string]string{
		"R": "MK",
		"A": "MK",
		"C": "LR",
	})
	_, err := seqjson.Export(tr, []*align.Alignment{missing})
	if !dataerr.Is(err, dataerr.MissingSequence) {
		t.Errorf("missing sequence: got %v, want %q", err, dataerr.MissingSequence)
	}

	noRoot := newAlignment(t, "HA1", map[string]string{
		"A": "MK",
		"B": "MK",
		"C": "LR",
	})
	_, err = seqjson.Export(tr, []*align.Alignment{noRoot})
	if !dataerr.Is(err, dataerr.MissingSequence) {
		t.Errorf("missing root: got %v, want %q", err, dataerr.MissingSequence)
	}

	ok := newAlignment(t, "HA1", map[string]string{"R": "M", "A": "M", "B": "M", "C": "M"})

	b, _ := tr.Node("B")
	b.Attr[tree.Clade] = 1
	_, err = seqjson.Export(tr, []*align.Alignment{ok})
	if !dataerr.Is(err, dataerr.DuplicateID) {
		t.Errorf("duplicate clade: got %v, want %q", err, dataerr.DuplicateID)
	}

	b.Attr[tree.Clade] = ""
	_, err = seqjson.Export(tr, []*align.Alignment{ok})
	if !dataerr.Is(err, dataerr.MissingField) {
		t.Errorf("empty clade: got %v, want %q", err, dataerr.MissingField)
	}

	delete(b.Attr, tree.Clade)
	_, err = seqjson.Export(tr, []*align.Alignment{ok})
	if !dataerr.Is(err, dataerr.MissingField) {
		t.Errorf("missing clade: got %v, want %q", err, dataerr.MissingField)
	}
}

func newTree(t testing.TB) *tree.Tree {
	t.Helper()

	tr, err := tree.ReadNewick(strings.NewReader("(A:0.1,(C:0.05)B:0.2)R;"))
	if err != nil {
		t.Fatalf("unable to read tree: %v", err)
	}
	clades := map[string]int{"R": 0, "A": 1, "B": 2, "C": 10}
	for _, n := range tr.Nodes() {
		n.Attr[tree.Clade] = clades[n.Name]
	}
	return tr
}

func newAlignment(t testing.TB, feature string, seqs map[string]string) *align.Alignment {
	t.Helper()

	a := align.New(feature)
	for _, n := range []string{"R", "A", "B", "C"} {
		s, ok := seqs[n]
		if !ok {
			continue
		}
		if err := a.Add(n, s); err != nil {
			t.Fatalf("unable to add sequence %q: %v", n, err)
		}
	}
	return a
}
