// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package diversity implements the per-site diversity
// (Shannon entropy)
// of multiple sequence alignments.
package diversity

import (
	"math"
	"strings"

	"github.com/js-arias/phyexport/align"
	"github.com/js-arias/phyexport/features"
	"gonum.org/v1/gonum/stat"
)

// Valid states for entropy calculations,
// any other character
// (gaps, ambiguous states)
// only counts in the number of sequences.
const (
	nucStates = "ACGT"
	aaStates  = "ACDEFGHIKLMNPQRSTVWY*"
)

// Record is the diversity profile
// of an alignment.
type Record struct {
	// Pos is the nucleotide position
	// of each site.
	Pos []int `json:"pos"`

	// Codon is the codon index
	// of each site.
	Codon []int `json:"codon"`

	// Val is the diversity value
	// of each site.
	Val []float64 `json:"val"`
}

// Entropy returns the diversity value of an alignment column.
// It is the Shannon entropy
// (in nats)
// of the frequencies of each state,
// rounded to 4 decimal places.
// The value is never negative.
func Entropy(col []byte, nuc bool) float64 {
	if len(col) == 0 {
		return 0
	}
	states := aaStates
	if nuc {
		states = nucStates
	}

	p := make([]float64, len(states))
	for _, c := range col {
		i := strings.IndexByte(states, upper(c))
		if i < 0 {
			continue
		}
		p[i]++
	}
	for i := range p {
		p[i] /= float64(len(col))
	}

	e := math.Round(stat.Entropy(p)*10_000) / 10_000
	return math.Max(0, e)
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

// Values returns the diversity value of each site
// of an alignment.
func Values(a *align.Alignment) []float64 {
	vals := make([]float64, a.Len())
	for i := range vals {
		vals[i] = Entropy(a.Column(i), a.IsNuc())
	}
	return vals
}

// Analyze returns the diversity profile
// of a set of alignments,
// indexed by feature.
//
// For the nucleotide alignment,
// the position of each site is its index in the alignment,
// and the codon is the position divided by 3.
// For proteins,
// the position is the nucleotide position
// of the first nucleotide of each codon
// in the reference genome,
// and the codon is the index in the alignment.
// Proteins without an annotation in the feature table
// are ignored.
func Analyze(alns []*align.Alignment, feats *features.Table) map[string]Record {
	recs := make(map[string]Record, len(alns))
	for _, a := range alns {
		if a.IsNuc() {
			recs[a.Feature()] = nucRecord(a)
			continue
		}
		if feats == nil {
			continue
		}
		an, ok := feats.Get(a.Feature())
		if !ok {
			continue
		}
		recs[a.Feature()] = protRecord(a, an)
	}
	return recs
}

func nucRecord(a *align.Alignment) Record {
	r := Record{
		Pos:   make([]int, a.Len()),
		Codon: make([]int, a.Len()),
		Val:   Values(a),
	}
	for i := range r.Pos {
		r.Pos[i] = i
		r.Codon[i] = i / 3
	}
	return r
}

func protRecord(a *align.Alignment, an features.Annotation) Record {
	r := Record{
		Pos:   make([]int, a.Len()),
		Codon: make([]int, a.Len()),
		Val:   Values(a),
	}
	for i := range r.Pos {
		if an.Strand < 0 {
			r.Pos[i] = an.End - 1 - 3*i
		} else {
			r.Pos[i] = an.Start + 3*i
		}
		r.Codon[i] = i
	}
	return r
}
