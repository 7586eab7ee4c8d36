// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package treejson builds the JSON representation
// of an annotated tree.
package treejson

import (
	"io"
	"maps"
	"math"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/js-arias/phyexport/dataerr"
	"github.com/js-arias/phyexport/jsonio"
	"github.com/js-arias/phyexport/tree"
)

// A Field is a node field to be exported.
type Field struct {
	Name string

	// Transform is an optional function
	// applied to the value of the field
	// before it is exported.
	Transform func(any) any
}

// Fields returns a list of fields
// exported without transformation.
func Fields(names ...string) []Field {
	fs := make([]Field, 0, len(names))
	for _, nm := range names {
		fs = append(fs, Field{Name: nm})
	}
	return fs
}

// Layout and annotation fields
// always added to the default fields.
var extra = []string{"tvalue", "yvalue", "xvalue", "attr", "muts", "aa_muts"}

// DefaultFields returns the fields exported by default:
// the metadata columns,
// and the layout and annotation fields.
func DefaultFields(columns []string) []Field {
	names := slices.Clone(columns)
	for _, e := range extra {
		if !slices.Contains(names, e) {
			names = append(names, e)
		}
	}
	return Fields(names...)
}

// Node is the JSON representation of a tree node.
type Node map[string]any

// Children returns the children of a node.
func (n Node) Children() []Node {
	ch, _ := n["children"].([]Node)
	return ch
}

// Serialize returns the JSON representation
// of a node
// and all of its descendants.
//
// The name of the node is always exported as "strain",
// and "num_date",
// rounded to 5 decimal places,
// is always exported as "num_date" and "tvalue".
// A node without "num_date" is an error.
// If "num_date" is not a number,
// the raw value is exported
// and a warning is sent to the logger
// (if logger is nil,
// the default logger will be used).
func Serialize(n *tree.Node, fields []Field, logger *log.Logger) (Node, error) {
	if logger == nil {
		logger = log.Default()
	}
	return serialize(n, fields, logger)
}

func serialize(n *tree.Node, fields []Field, logger *log.Logger) (Node, error) {
	out := make(Node)
	if n.Name != "" {
		out["strain"] = n.Name
	}
	if v, ok := n.NumDate(); ok {
		out[tree.NumDate] = roundDate(n, v, logger)
	}

	for _, f := range fields {
		switch f.Name {
		case "strain", tree.NumDate, "tvalue":
			continue
		}
		v, ok := n.Field(f.Name)
		if !ok {
			continue
		}
		v = clone(v)
		if f.Transform != nil {
			v = f.Transform(v)
		}
		out[f.Name] = v
	}

	d, ok := out[tree.NumDate]
	if !ok {
		return nil, dataerr.New(dataerr.MissingField, "required for tvalue").WithNode(n.Name).WithField(tree.NumDate)
	}
	out["tvalue"] = d

	if n.IsTerm() {
		return out, nil
	}
	children := make([]Node, 0, len(n.Children()))
	for _, c := range n.Children() {
		cn, err := serialize(c, fields, logger)
		if err != nil {
			return nil, err
		}
		children = append(children, cn)
	}
	out["children"] = children
	return out, nil
}

func roundDate(n *tree.Node, v any, logger *log.Logger) any {
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case int:
		f = float64(x)
	default:
		logger.Warn("cannot round value, assigned as is", "node", n.Name, "field", tree.NumDate, "value", v)
		return v
	}
	return Round(f, 5)
}

// Round rounds a value to the given number of decimal places.
func Round(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}

// clone returns a copy of the map and slice values
// so the exported node does not share memory
// with the tree.
func clone(v any) any {
	switch x := v.(type) {
	case map[string]any:
		return maps.Clone(x)
	case map[string][]string:
		c := make(map[string][]string, len(x))
		for k, s := range x {
			c[k] = slices.Clone(s)
		}
		return c
	case []string:
		return slices.Clone(x)
	}
	return v
}

// Write writes a serialized tree as JSON.
func Write(w io.Writer, root Node, indent int) error {
	return jsonio.Encode(w, root, indent)
}
