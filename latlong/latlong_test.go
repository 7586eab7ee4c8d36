// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package latlong_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/js-arias/phyexport/latlong"
)

var placeFile = "# place coordinates\n" +
	"place\tlatitude\tlongitude\tcomment\n" +
	"china\t35.86166\t104.195397\tcountry\n" +
	"japan\t36.204824\t138.252924\tcountry\n" +
	"asia\t29.84064\t89.296875\tregion\n"

func TestReadTSV(t *testing.T) {
	tab, err := latlong.ReadTSV(strings.NewReader(placeFile))
	if err != nil {
		t.Fatalf("unable to read table: %v", err)
	}

	places := []string{"asia", "china", "japan"}
	if got := tab.Places(); !reflect.DeepEqual(got, places) {
		t.Errorf("places: got %v, want %v", got, places)
	}

	p, ok := tab.Point("japan")
	if !ok {
		t.Fatalf("place %q: not found", "japan")
	}
	want := latlong.Point{Lat: 36.204824, Long: 138.252924}
	if p != want {
		t.Errorf("place %q: got %v, want %v", "japan", p, want)
	}

	if _, ok := tab.Point("europe"); ok {
		t.Errorf("place %q: unexpected point", "europe")
	}
}

func TestReadTSVErrors(t *testing.T) {
	tests := map[string]string{
		"no longitude":      "place\tlatitude\nchina\t35.86\n",
		"invalid latitude":  "place\tlatitude\tlongitude\nchina\tnorth\t104.19\n",
		"out of range":      "place\tlatitude\tlongitude\nchina\t95\t104.19\n",
		"invalid longitude": "place\tlatitude\tlongitude\nchina\t35.86\t190\n",
		"empty place":       "place\tlatitude\tlongitude\n\t35.86\t104.19\n",
	}

	for name, test := range tests {
		if _, err := latlong.ReadTSV(strings.NewReader(test)); err == nil {
			t.Errorf("%s: expecting error", name)
		}
	}
}
