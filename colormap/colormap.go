// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package colormap implements a simple color key
// for the categories of the traits
// of an annotated tree.
package colormap

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// Entry is the color of a trait category.
type Entry struct {
	Value string
	Color string
}

// MarshalJSON encodes an entry
// as a [value, color] pair.
func (e Entry) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{e.Value, e.Color})
}

// UnmarshalJSON decodes an entry
// from a [value, color] pair.
func (e *Entry) UnmarshalJSON(data []byte) error {
	var p [2]string
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	e.Value = p[0]
	e.Color = p[1]
	return nil
}

// Map stores the colors of the categories
// of one or more traits.
// Traits and categories keep the order
// in which they were added.
type Map struct {
	traits  []string
	entries map[string][]Entry
}

// New creates an empty color map.
func New() *Map {
	return &Map{
		entries: make(map[string][]Entry),
	}
}

// Add adds a color for a category of a trait.
func (m *Map) Add(trait, value, color string) {
	if _, ok := m.entries[trait]; !ok {
		m.traits = append(m.traits, trait)
	}
	m.entries[trait] = append(m.entries[trait], Entry{
		Value: value,
		Color: color,
	})
}

// Traits returns the traits defined in the map,
// in the order they were added.
func (m *Map) Traits() []string {
	return m.traits
}

// Entries returns the colors of the categories of a trait.
func (m *Map) Entries(trait string) []Entry {
	return m.entries[trait]
}

// ReadTSV reads a color map from a tab-delimited file.
//
// Each line of the file is a trait,
// a category of the trait,
// and the color used for the category.
// The file has no header,
// and lines without exactly three fields are ignored.
// Lines starting with '#' are comments.
// Fields are read as is,
// quotes have no special meaning.
//
// Here is an example file:
//
//	# color map
//	region	asia	#3F4FCC
//	region	europe	#5A97C1
//	country	china	#4A56C7
func ReadTSV(r io.Reader) (*Map, error) {
	sc := bufio.NewScanner(r)
	m := New()
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		row := strings.Split(line, "\t")
		if len(row) != 3 {
			continue
		}
		m.Add(row[0], row[1], row[2])
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("while reading data: %v", err)
	}
	return m, nil
}

// ReadFile reads a color map from a file.
func ReadFile(name string) (*Map, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := ReadTSV(f)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	return m, nil
}

// TSV writes a color map as a tab-delimited file.
func (m *Map) TSV(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# trait colors\n")
	fmt.Fprintf(bw, "# data save on: %s\n", time.Now().Format(time.RFC3339))

	for _, t := range m.traits {
		for _, e := range m.entries[t] {
			fmt.Fprintf(bw, "%s\t%s\t%s\n", t, e.Value, e.Color)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("while writing data: %v", err)
	}
	return nil
}
