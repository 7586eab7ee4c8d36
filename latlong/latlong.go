// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package latlong implements a table
// of the geographic coordinates of named places.
package latlong

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"
)

// Point is a geographic location.
type Point struct {
	Lat  float64 `json:"latitude"`
	Long float64 `json:"longitude"`
}

// Table is a collection of places.
type Table struct {
	places map[string]Point
}

// New creates an empty table.
func New() *Table {
	return &Table{
		places: make(map[string]Point),
	}
}

// Add adds a place to the table.
func (t *Table) Add(place string, p Point) error {
	if p.Lat < -90 || p.Lat > 90 {
		return fmt.Errorf("place %q: invalid latitude %.6f", place, p.Lat)
	}
	if p.Long < -180 || p.Long > 180 {
		return fmt.Errorf("place %q: invalid longitude %.6f", place, p.Long)
	}
	t.places[place] = p
	return nil
}

// Point returns the location of a place.
func (t *Table) Point(place string) (Point, bool) {
	p, ok := t.places[place]
	return p, ok
}

// Places returns the names of the places in the table.
func (t *Table) Places() []string {
	ps := make([]string, 0, len(t.places))
	for p := range t.places {
		ps = append(ps, p)
	}
	slices.Sort(ps)
	return ps
}

var header = []string{
	"place",
	"latitude",
	"longitude",
}

// ReadTSV reads a table of places
// from a tab-delimited file.
//
// The file must contain the following columns:
//
//	-place		the name of the place
//	-latitude	the latitude of the place, in degrees
//	-longitude	the longitude of the place, in degrees
//
// Any other column will be ignored.
// Here is an example file:
//
//	# place coordinates
//	place	latitude	longitude
//	china	35.86166	104.195397
//	japan	36.204824	138.252924
//	asia	29.84064	89.296875
func ReadTSV(r io.Reader) (*Table, error) {
	tab := csv.NewReader(r)
	tab.Comma = '\t'
	tab.Comment = '#'

	head, err := tab.Read()
	if err != nil {
		return nil, fmt.Errorf("while reading header: %v", err)
	}
	fields := make(map[string]int, len(head))
	for i, h := range head {
		h = strings.ToLower(h)
		fields[h] = i
	}
	for _, h := range header {
		if _, ok := fields[h]; !ok {
			return nil, fmt.Errorf("expecting field %q", h)
		}
	}

	t := New()
	for {
		row, err := tab.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tab.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}

		f := "place"
		place := strings.TrimSpace(row[fields[f]])
		if place == "" {
			return nil, fmt.Errorf("on row %d: field %q: empty value", ln, f)
		}

		f = "latitude"
		lat, err := strconv.ParseFloat(strings.TrimSpace(row[fields[f]]), 64)
		if err != nil {
			return nil, fmt.Errorf("on row %d: field %q: %v", ln, f, err)
		}

		f = "longitude"
		lon, err := strconv.ParseFloat(strings.TrimSpace(row[fields[f]]), 64)
		if err != nil {
			return nil, fmt.Errorf("on row %d: field %q: %v", ln, f, err)
		}

		if err := t.Add(place, Point{Lat: lat, Long: lon}); err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}
	}
	return t, nil
}

// ReadFile reads a table of places from a file.
func ReadFile(name string) (*Table, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := ReadTSV(f)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	return t, nil
}
