// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package nodedata

import (
	"strconv"
	"strings"

	"github.com/js-arias/phyexport/tree"
)

// Class is the way in which a metadata field
// is stored in a node.
type Class int

// Valid field classes.
const (
	// Generic fields are stored verbatim
	// in the attribute map of the node.
	Generic Class = iota

	// Mutations is the list of nucleotide mutations.
	Mutations

	// ProteinMutations is the list of amino acid mutations
	// of a protein.
	ProteinMutations

	// Structural fields are stored
	// with a type.
	Structural
)

func (c Class) String() string {
	switch c {
	case Mutations:
		return "mutations"
	case ProteinMutations:
		return "protein mutations"
	case Structural:
		return "structural"
	}
	return "generic"
}

const (
	mutField   = "mutations"
	protSuffix = "_mutations"
)

var structural = map[string]bool{
	tree.BranchLength:   true,
	tree.MutationLength: true,
	tree.ClockLength:    true,
	tree.Clade:          true,
	tree.NumDate:        true,
}

// rules are checked in order,
// the first match defines the class.
var rules = []struct {
	match func(field string) bool
	class Class
}{
	{
		match: func(f string) bool { return f == mutField },
		class: Mutations,
	},
	{
		match: func(f string) bool {
			return strings.HasSuffix(f, protSuffix) && len(f) > len(protSuffix)
		},
		class: ProteinMutations,
	},
	{
		match: func(f string) bool { return structural[f] },
		class: Structural,
	},
}

// Classify returns the class of a metadata field.
func Classify(field string) Class {
	for _, r := range rules {
		if r.match(field) {
			return r.class
		}
	}
	return Generic
}

// Protein returns the protein name
// of a protein mutations field.
func Protein(field string) string {
	return strings.TrimSuffix(field, protSuffix)
}

// ParseMutations returns the list of mutations
// in a comma separated value.
// An empty value returns an empty list.
func ParseMutations(v string) []string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	muts := strings.Split(v, ",")
	for i, m := range muts {
		muts[i] = strings.TrimSpace(m)
	}
	return muts
}

// parseStructural returns the value of a structural field.
// Numeric fields are stored as float64
// and clade IDs as int,
// if the value can not be parsed,
// the raw string is returned.
func parseStructural(field, v string) any {
	v = strings.TrimSpace(v)
	if field == tree.Clade {
		if id, err := strconv.Atoi(v); err == nil {
			return id
		}
		return v
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return f
	}
	return v
}
