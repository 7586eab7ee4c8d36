// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package colormap_test

import (
	"bytes"
	"encoding/json"
	"image/color"
	"reflect"
	"strings"
	"testing"

	"github.com/js-arias/phyexport/colormap"
)

var colorFile = "# colors\n" +
	"region\tasia\t#3F4FCC\n" +
	"region\teurope\t#5A97C1\n" +
	"\n" +
	"country\tchina\n" +
	"country\tchina\t#4A56C7\textra\n" +
	"country\tjapan\t#7DB9A0\n" +
	"region\tafrica\t#E1A233\n"

func TestReadTSV(t *testing.T) {
	m, err := colormap.ReadTSV(strings.NewReader(colorFile))
	if err != nil {
		t.Fatalf("unable to read color map: %v", err)
	}
	testMap(t, m)

	var buf bytes.Buffer
	if err := m.TSV(&buf); err != nil {
		t.Fatalf("unable to write color map: %v", err)
	}
	np, err := colormap.ReadTSV(&buf)
	if err != nil {
		t.Fatalf("unable to read written color map: %v", err)
	}
	testMap(t, np)
}

func TestReadTSVQuotes(t *testing.T) {
	in := "region\t\"asia\t#3F4FCC\n" +
		"region\teurope\t#5A97C1\n" +
		"country\t\"cote d'ivoire\"\t#4A56C7\n"
	m, err := colormap.ReadTSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unable to read color map: %v", err)
	}

	region := []colormap.Entry{
		{Value: `"asia`, Color: "#3F4FCC"},
		{Value: "europe", Color: "#5A97C1"},
	}
	if got := m.Entries("region"); !reflect.DeepEqual(got, region) {
		t.Errorf("region: got %v, want %v", got, region)
	}
	country := []colormap.Entry{
		{Value: `"cote d'ivoire"`, Color: "#4A56C7"},
	}
	if got := m.Entries("country"); !reflect.DeepEqual(got, country) {
		t.Errorf("country: got %v, want %v", got, country)
	}

	var buf bytes.Buffer
	if err := m.TSV(&buf); err != nil {
		t.Fatalf("unable to write color map: %v", err)
	}
	np, err := colormap.ReadTSV(&buf)
	if err != nil {
		t.Fatalf("unable to read written color map: %v", err)
	}
	if got := np.Entries("region"); !reflect.DeepEqual(got, region) {
		t.Errorf("written region: got %v, want %v", got, region)
	}
}

func testMap(t testing.TB, m *colormap.Map) {
	t.Helper()

	traits := []string{"region", "country"}
	if got := m.Traits(); !reflect.DeepEqual(got, traits) {
		t.Errorf("traits: got %v, want %v", got, traits)
	}

	region := []colormap.Entry{
		{Value: "asia", Color: "#3F4FCC"},
		{Value: "europe", Color: "#5A97C1"},
		{Value: "africa", Color: "#E1A233"},
	}
	if got := m.Entries("region"); !reflect.DeepEqual(got, region) {
		t.Errorf("region: got %v, want %v", got, region)
	}

	country := []colormap.Entry{
		{Value: "japan", Color: "#7DB9A0"},
	}
	if got := m.Entries("country"); !reflect.DeepEqual(got, country) {
		t.Errorf("country: got %v, want %v", got, country)
	}
}

func TestEntryJSON(t *testing.T) {
	m := colormap.New()
	m.Add("region", "asia", "#3F4FCC")
	m.Add("region", "europe", "#5A97C1")

	b, err := json.Marshal(m.Entries("region"))
	if err != nil {
		t.Fatalf("unable to encode entries: %v", err)
	}
	want := `[["asia","#3F4FCC"],["europe","#5A97C1"]]`
	if string(b) != want {
		t.Errorf("json: got %s, want %s", b, want)
	}

	var e []colormap.Entry
	if err := json.Unmarshal(b, &e); err != nil {
		t.Fatalf("unable to decode entries: %v", err)
	}
	if !reflect.DeepEqual(e, m.Entries("region")) {
		t.Errorf("decoded: got %v, want %v", e, m.Entries("region"))
	}
}

func TestHex(t *testing.T) {
	c := color.RGBA{63, 79, 204, 255}
	if h := colormap.Hex(c); h != "#3F4FCC" {
		t.Errorf("hex: got %q, want %q", h, "#3F4FCC")
	}
}

func TestPalette(t *testing.T) {
	g, err := colormap.Scheme("iridescent")
	if err != nil {
		t.Fatalf("scheme: %v", err)
	}

	m := colormap.New()
	vals := []string{"asia", "europe", "africa"}
	m.Palette(g, "region", vals)

	e := m.Entries("region")
	if len(e) != len(vals) {
		t.Fatalf("entries: got %d, want %d", len(e), len(vals))
	}
	for i, v := range vals {
		if e[i].Value != v {
			t.Errorf("entry %d: got %q, want %q", i, e[i].Value, v)
		}
		if len(e[i].Color) != 7 || e[i].Color[0] != '#' {
			t.Errorf("entry %d: invalid color %q", i, e[i].Color)
		}
	}
	if e[0].Color == e[2].Color {
		t.Errorf("palette: extremes with the same color %q", e[0].Color)
	}

	if _, err := colormap.Scheme("unknown"); err == nil {
		t.Errorf("scheme: expecting error for unknown scheme")
	}
}
