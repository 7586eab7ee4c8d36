// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package align_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/js-arias/phyexport/align"
	"github.com/js-arias/phyexport/dataerr"
)

const nucFasta = `>NODE_0 root
ACGTAC
GT
>A
ACGTACGA
>B description of B
TCGTAC-T
`

func TestReadFasta(t *testing.T) {
	a, err := align.ReadFasta(strings.NewReader(nucFasta), align.Nuc)
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	if !a.IsNuc() {
		t.Errorf("feature %q: expecting nucleotide alignment", a.Feature())
	}
	if a.Len() != 8 {
		t.Errorf("length: got %d, want %d", a.Len(), 8)
	}
	names := []string{"NODE_0", "A", "B"}
	if n := a.Names(); !reflect.DeepEqual(n, names) {
		t.Errorf("names: got %v, want %v", n, names)
	}
	seqs := map[string]string{
		"NODE_0": "ACGTACGT",
		"A":      "ACGTACGA",
		"B":      "TCGTAC-T",
	}
	for n, want := range seqs {
		if s, ok := a.Seq(n); !ok || s != want {
			t.Errorf("sequence %q: got %q, want %q", n, s, want)
		}
	}
	if c := string(a.Column(0)); c != "AAT" {
		t.Errorf("column 0: got %q, want %q", c, "AAT")
	}
}

func TestReadFastaProtein(t *testing.T) {
	in := ">R\nMKT*\n>A\nMRT*\n"
	a, err := align.ReadFasta(strings.NewReader(in), "HA1")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if a.IsNuc() {
		t.Errorf("feature %q: unexpected nucleotide alignment", a.Feature())
	}
	if s, _ := a.Seq("A"); s != "MRT*" {
		t.Errorf("sequence %q: got %q, want %q", "A", s, "MRT*")
	}
}

func TestAddMismatch(t *testing.T) {
	in := ">R\nACGT\n>A\nACG\n"
	_, err := align.ReadFasta(strings.NewReader(in), align.Nuc)
	if !dataerr.Is(err, dataerr.LengthMismatch) {
		t.Fatalf("read: got error %v, want %q", err, dataerr.LengthMismatch)
	}

	a := align.New("HA1")
	if err := a.Add("R", "MK"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := a.Add("R", "MR"); err == nil {
		t.Errorf("add: expecting duplicated sequence error")
	}
}
