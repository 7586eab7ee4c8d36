// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package nodedata implements the metadata table
// of the nodes of a tree
// and attaches that metadata to the tree nodes.
package nodedata

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
)

// NameField is the column that identifies the node
// in a metadata table.
const NameField = "name"

// Table is a metadata table,
// with a record for each node of a tree.
type Table struct {
	fields []string
	recs   map[string]map[string]string
}

// New creates a new empty table
// with the given fields.
func New(fields ...string) *Table {
	return &Table{
		fields: slices.Clone(fields),
		recs:   make(map[string]map[string]string),
	}
}

// Fields return the fields of the table,
// in the order defined in the table.
func (t *Table) Fields() []string {
	return t.fields
}

// Names return the node names defined in the table.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.recs))
	for n := range t.recs {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// Record returns the record of a node.
func (t *Table) Record(name string) (map[string]string, bool) {
	r, ok := t.recs[name]
	return r, ok
}

// Set sets the value of a field for a node.
// If the field is not in the table,
// it will be added.
func (t *Table) Set(name, field, value string) {
	if !slices.Contains(t.fields, field) {
		t.fields = append(t.fields, field)
	}
	r, ok := t.recs[name]
	if !ok {
		r = make(map[string]string)
		t.recs[name] = r
	}
	r[field] = value
}

// ReadTSV reads a metadata table from a TSV file.
//
// The TSV file must contain the field "name",
// with the name of the node.
// Any other field is taken as a metadata field.
// Field names are case sensitive.
//
// Here is an example file:
//
//	name	clade	num_date	mutation_length	mutations	HA1_mutations	country	region
//	NODE_0	0	2014.02	0.0			brazil	south_america
//	A/Brazil/1/2015	1	2015.31	0.0012	C120T,G3011A	K160T	brazil	south_america
func ReadTSV(r io.Reader) (*Table, error) {
	tab := csv.NewReader(r)
	tab.Comma = '\t'
	tab.Comment = '#'

	head, err := tab.Read()
	if err != nil {
		return nil, fmt.Errorf("while reading header: %v", err)
	}
	fields := make(map[string]int, len(head))
	var names []string
	for i, h := range head {
		h = strings.TrimSpace(h)
		fields[h] = i
		if h != NameField {
			names = append(names, h)
		}
	}
	if _, ok := fields[NameField]; !ok {
		return nil, fmt.Errorf("expecting field %q", NameField)
	}

	t := New(names...)
	for {
		row, err := tab.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tab.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}

		name := strings.TrimSpace(row[fields[NameField]])
		if name == "" {
			return nil, fmt.Errorf("on row %d: field %q: empty node name", ln, NameField)
		}
		if _, dup := t.recs[name]; dup {
			return nil, fmt.Errorf("on row %d: field %q: node %q already defined", ln, NameField, name)
		}

		rec := make(map[string]string, len(names))
		for _, f := range names {
			rec[f] = row[fields[f]]
		}
		t.recs[name] = rec
	}
	return t, nil
}
