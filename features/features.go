// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package features implements a table
// of the genomic coordinates of the features
// (genes)
// of a reference genome.
package features

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"net/url"
	"os"
	"slices"
	"strings"

	"github.com/biogo/biogo/io/featio"
	"github.com/biogo/biogo/io/featio/gff"
	"github.com/biogo/biogo/seq"
)

// Annotation is the location of a feature
// in the reference genome.
type Annotation struct {
	// Start is the 0-based position
	// of the first nucleotide of the feature.
	Start int `json:"start"`

	// End is the position after the last nucleotide
	// of the feature.
	End int `json:"end"`

	// Strand is 1 for the plus strand,
	// -1 for the minus strand,
	// and 0 if unknown.
	Strand int `json:"strand"`
}

// Table is a collection of features
// indexed by name.
type Table struct {
	feats map[string]Annotation
}

// New creates an empty feature table.
func New() *Table {
	return &Table{
		feats: make(map[string]Annotation),
	}
}

// Add adds a feature to the table.
// If the feature is already defined,
// its span will be extended
// to include the new location.
func (t *Table) Add(name string, a Annotation) {
	prev, ok := t.feats[name]
	if !ok {
		t.feats[name] = a
		return
	}
	prev.Start = min(prev.Start, a.Start)
	prev.End = max(prev.End, a.End)
	t.feats[name] = prev
}

// Get returns the annotation of a feature.
func (t *Table) Get(name string) (Annotation, bool) {
	a, ok := t.feats[name]
	return a, ok
}

// Names returns the names of the features in the table.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.feats))
	for n := range t.feats {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// Feature types read from a GFF file.
var cdsTypes = map[string]bool{
	"CDS": true,
	"cds": true,
}

// Attribute tags used for the name of a feature,
// in order of preference.
var nameTags = []string{"gene", "Name", "gene_name", "locus_tag"}

// ReadGFF reads the coding sequences (CDS)
// of a reference genome
// from a GFF file.
//
// The name of the feature is taken from the attributes,
// using the first defined of
// "gene", "Name", "gene_name", or "locus_tag".
// Coding sequences without a name are ignored.
//
// Attributes can be in GFF2/GTF format (tag "value")
// or in GFF3 format (tag=value).
// Lines after a "##FASTA" directive are ignored.
func ReadGFF(r io.Reader) (*Table, error) {
	in, err := gff2Lines(r)
	if err != nil {
		return nil, err
	}

	t := New()
	sc := featio.NewScanner(gff.NewReader(in))
	for sc.Next() {
		f, ok := sc.Feat().(*gff.Feature)
		if !ok {
			continue
		}
		if !cdsTypes[f.Feature] {
			continue
		}
		name := attrValue(f.FeatAttributes, nameTags...)
		if name == "" {
			continue
		}

		t.Add(name, Annotation{
			Start:  f.FeatStart,
			End:    f.FeatEnd,
			Strand: strand(f.FeatStrand),
		})
	}
	if err := sc.Error(); err != nil {
		return nil, err
	}
	return t, nil
}

// ReadFile reads the features of a reference genome
// from a GFF file.
func ReadFile(name string) (*Table, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := ReadGFF(f)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	return t, nil
}

func strand(s seq.Strand) int {
	switch s {
	case seq.Plus:
		return 1
	case seq.Minus:
		return -1
	}
	return 0
}

// AttrValue returns the value of the first defined tag.
func attrValue(attrs gff.Attributes, tags ...string) string {
	for _, tag := range tags {
		for _, a := range attrs {
			if a.Tag != tag {
				continue
			}
			v := strings.Trim(strings.TrimSpace(a.Value), `"`)
			if v != "" {
				return v
			}
		}
	}
	return ""
}

// Column of the attributes in a GFF feature line.
const attrColumn = 8

// Gff2Lines returns the content of a GFF file
// with the attributes of each feature in GFF2 format.
// Directives are replaced by an empty comment,
// so line numbers are preserved in error messages.
func gff2Lines(r io.Reader) (io.Reader, error) {
	var b bytes.Buffer
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.HasPrefix(line, "##FASTA") {
			break
		}
		if strings.HasPrefix(line, "#") {
			b.WriteString("#\n")
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) > attrColumn && isGFF3(fields[attrColumn]) {
			fields[attrColumn] = gff3Attrs(fields[attrColumn])
			line = strings.Join(fields, "\t")
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return &b, nil
}

func isGFF3(attrs string) bool {
	return strings.Contains(attrs, "=") && !strings.Contains(attrs, `"`)
}

// Gff3Attrs translates GFF3 attributes (tag=value)
// into GFF2 attributes (tag "value").
// Attributes that cannot be expressed in GFF2 are dropped.
func gff3Attrs(attrs string) string {
	var out []string
	for _, a := range strings.Split(attrs, ";") {
		tag, v, ok := strings.Cut(strings.TrimSpace(a), "=")
		if !ok || !isTag(tag) {
			continue
		}
		if u, err := url.PathUnescape(v); err == nil {
			v = u
		}
		v = strings.TrimSpace(v)
		if v == "" || strings.ContainsAny(v, "\";\n") {
			continue
		}
		out = append(out, tag+` "`+v+`"`)
	}
	return strings.Join(out, "; ")
}

// IsTag returns true if the tag
// is made of letters, digits, and underscores.
func isTag(tag string) bool {
	if tag == "" {
		return false
	}
	for _, r := range tag {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '_':
		default:
			return false
		}
	}
	return true
}
