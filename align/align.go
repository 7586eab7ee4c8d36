// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package align implements multiple sequence alignments
// of a single feature
// (a gene, or the whole nucleotide sequence).
package align

import (
	"fmt"
	"io"
	"os"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
	"github.com/js-arias/phyexport/dataerr"
)

// Nuc is the feature name
// of the whole nucleotide alignment.
const Nuc = "nuc"

// An Alignment is a set of aligned sequences
// of the same length.
type Alignment struct {
	feature string
	length  int
	names   []string
	seqs    map[string]string
}

// New creates a new empty alignment
// for a feature.
func New(feature string) *Alignment {
	return &Alignment{
		feature: feature,
		seqs:    make(map[string]string),
	}
}

// Feature returns the feature name of the alignment.
func (a *Alignment) Feature() string {
	return a.feature
}

// IsNuc returns true if the alignment
// is the whole nucleotide alignment.
func (a *Alignment) IsNuc() bool {
	return a.feature == Nuc
}

// Add adds a sequence to the alignment.
// All the sequences in an alignment
// must have the same length.
func (a *Alignment) Add(name, seq string) error {
	if _, dup := a.seqs[name]; dup {
		return fmt.Errorf("sequence %q already defined", name)
	}
	if len(a.seqs) > 0 && len(seq) != a.length {
		return dataerr.New(dataerr.LengthMismatch, "got %d sites, want %d", len(seq), a.length).WithNode(name).WithGene(a.feature)
	}
	a.length = len(seq)
	a.names = append(a.names, name)
	a.seqs[name] = seq
	return nil
}

// Len returns the number of sites in the alignment.
func (a *Alignment) Len() int {
	return a.length
}

// Names returns the names of the sequences
// in the order in which they were added.
func (a *Alignment) Names() []string {
	return a.names
}

// Seq returns the sequence of a given name.
func (a *Alignment) Seq(name string) (string, bool) {
	s, ok := a.seqs[name]
	return s, ok
}

// Column returns the characters
// at a site of the alignment.
func (a *Alignment) Column(site int) []byte {
	col := make([]byte, 0, len(a.names))
	for _, n := range a.names {
		col = append(col, a.seqs[n][site])
	}
	return col
}

// ReadFasta reads an alignment in FASTA format.
// The sequence name is the first word
// of the description line.
func ReadFasta(r io.Reader, feature string) (*Alignment, error) {
	var alpha alphabet.Alphabet = alphabet.Protein
	if feature == Nuc {
		alpha = alphabet.DNAgapped
	}

	sc := seqio.NewScanner(fasta.NewReader(r, linear.NewSeq("", nil, alpha)))
	a := New(feature)
	for sc.Next() {
		s, ok := sc.Seq().(*linear.Seq)
		if !ok {
			return nil, fmt.Errorf("unexpected sequence type %T", sc.Seq())
		}
		b := make([]byte, len(s.Seq))
		for i, l := range s.Seq {
			b[i] = byte(l)
		}
		if err := a.Add(s.Name(), string(b)); err != nil {
			return nil, err
		}
	}
	if err := sc.Error(); err != nil {
		return nil, err
	}
	return a, nil
}

// ReadFile reads an alignment from a FASTA file.
func ReadFile(name, feature string) (*Alignment, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	a, err := ReadFasta(f, feature)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %w", name, err)
	}
	return a, nil
}
