// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package seqjson builds the JSON representation
// of the sequences of the nodes of a tree,
// as differences from the sequence of the root.
package seqjson

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/js-arias/phyexport/align"
	"github.com/js-arias/phyexport/dataerr"
	"github.com/js-arias/phyexport/tree"
)

// SparseFraction is the maximum fraction of different sites,
// relative to the sequence length,
// for which a sequence is stored
// as differences from the root sequence.
const SparseFraction = 0.99

// RootKey is the key used to store
// the root sequences.
const RootKey = "root"

// A Diff is the sequence of a node for a feature.
// It is either a map of the differences
// with the root sequence,
// or the full sequence.
type Diff struct {
	// Sparse is a map from 0-based positions
	// to the state at that position.
	Sparse map[int]string

	// Full is the complete sequence,
	// it is used if the sequence
	// is too different from the root.
	Full string
}

// IsFull returns true if the difference
// is stored as a full sequence.
func (d Diff) IsFull() bool {
	return d.Sparse == nil
}

// MarshalJSON implements the json.Marshaler interface.
// Sparse differences are written as an object
// and full sequences as a string.
func (d Diff) MarshalJSON() ([]byte, error) {
	if d.IsFull() {
		return json.Marshal(d.Full)
	}
	return json.Marshal(d.Sparse)
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (d *Diff) UnmarshalJSON(data []byte) error {
	var full string
	if err := json.Unmarshal(data, &full); err == nil {
		d.Full = full
		d.Sparse = nil
		return nil
	}
	sp := make(map[int]string)
	if err := json.Unmarshal(data, &sp); err != nil {
		return fmt.Errorf("seqjson: invalid sequence difference: %v", err)
	}
	d.Full = ""
	d.Sparse = sp
	return nil
}

// Compare returns the differences of a sequence
// against a root sequence.
// Both sequences must have the same length.
func Compare(root, s string) (Diff, error) {
	if len(root) != len(s) {
		return Diff{}, fmt.Errorf("got %d sites, want %d", len(s), len(root))
	}
	sp := make(map[int]string)
	for i := 0; i < len(s); i++ {
		if s[i] != root[i] {
			sp[i] = s[i : i+1]
		}
	}
	if float64(len(sp)) > SparseFraction*float64(len(s)) {
		return Diff{Full: s}, nil
	}
	return Diff{Sparse: sp}, nil
}

// Apply returns the sequence
// obtained by applying a difference to a root sequence.
func Apply(root string, d Diff) string {
	if d.IsFull() {
		return d.Full
	}
	b := []byte(root)
	for _, p := range slices.Sorted(maps.Keys(d.Sparse)) {
		if p < 0 || p >= len(b) {
			continue
		}
		b[p] = d.Sparse[p][0]
	}
	return string(b)
}

// Document is the sequence document,
// the root sequences are stored with the "root" key,
// and the differences of each node
// are stored with the clade ID of the node.
// In both cases,
// values are indexed by feature.
type Document struct {
	Root  map[string]string
	Nodes map[string]map[string]Diff
}

// MarshalJSON implements the json.Marshaler interface.
func (doc Document) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(doc.Nodes)+1)
	for c, d := range doc.Nodes {
		m[c] = d
	}
	m[RootKey] = doc.Root
	return json.Marshal(m)
}

// Export builds the sequence document
// of a tree from a set of alignments.
//
// Every node of the tree must have a clade ID,
// and a sequence in every alignment,
// including the root.
func Export(t *tree.Tree, alns []*align.Alignment) (Document, error) {
	doc := Document{
		Root:  make(map[string]string, len(alns)),
		Nodes: make(map[string]map[string]Diff),
	}

	nodes := t.Nodes()
	clades := make([]string, len(nodes))
	used := make(map[string]string, len(nodes))
	for i, n := range nodes {
		c, ok := n.Clade()
		if !ok || strings.TrimSpace(c) == "" {
			return Document{}, dataerr.New(dataerr.MissingField, "undefined clade ID").WithNode(n.Name).WithField(tree.Clade)
		}
		if c == RootKey {
			return Document{}, dataerr.New(dataerr.MissingField, "invalid clade ID %q", c).WithNode(n.Name).WithField(tree.Clade)
		}
		if prev, dup := used[c]; dup {
			return Document{}, dataerr.New(dataerr.DuplicateID, "clade ID %q already used by node %q", c, prev).WithNode(n.Name).WithField(tree.Clade)
		}
		used[c] = n.Name
		clades[i] = c
		doc.Nodes[c] = make(map[string]Diff, len(alns))
	}

	for _, a := range alns {
		gene := a.Feature()
		root := t.Root()
		rs, ok := a.Seq(root.Name)
		if !ok {
			return Document{}, dataerr.New(dataerr.MissingSequence, "root sequence not found").WithNode(root.Name).WithGene(gene)
		}
		doc.Root[gene] = rs

		for i, n := range nodes {
			s, ok := a.Seq(n.Name)
			if !ok {
				return Document{}, dataerr.New(dataerr.MissingSequence, "sequence not found").WithNode(n.Name).WithGene(gene)
			}
			d, err := Compare(rs, s)
			if err != nil {
				return Document{}, dataerr.New(dataerr.LengthMismatch, "%v", err).WithNode(n.Name).WithGene(gene)
			}
			doc.Nodes[clades[i]][gene] = d
		}
	}
	return doc, nil
}
