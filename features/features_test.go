// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package features_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/js-arias/phyexport/features"
)

func TestTable(t *testing.T) {
	tbl := features.New()
	tbl.Add("HA1", features.Annotation{Start: 100, End: 400, Strand: 1})
	tbl.Add("NA", features.Annotation{Start: 900, End: 600, Strand: -1})
	tbl.Add("NA", features.Annotation{Start: 500, End: 620, Strand: -1})

	if n := tbl.Names(); !reflect.DeepEqual(n, []string{"HA1", "NA"}) {
		t.Errorf("names: got %v", n)
	}

	if _, ok := tbl.Get("HA1"); !ok {
		t.Fatalf("feature %q not found", "HA1")
	}

	na, _ := tbl.Get("NA")
	want := features.Annotation{Start: 500, End: 900, Strand: -1}
	if na != want {
		t.Errorf("feature %q: got %v, want %v", "NA", na, want)
	}

	if _, ok := tbl.Get("M1"); ok {
		t.Errorf("feature %q: unexpected feature", "M1")
	}
}

const refGFF = "chr1\tref\tgene\t101\t400\t.\t+\t.\tgene \"HA1\"\n" +
	"chr1\tref\tCDS\t101\t400\t.\t+\t0\tgene \"HA1\"\n" +
	"chr1\tref\tCDS\t501\t900\t.\t-\t0\tgene \"NA\"\n" +
	"chr1\tref\tCDS\t901\t950\t.\t+\t0\tnote \"unnamed\"\n"

func TestReadGFF(t *testing.T) {
	tbl, err := features.ReadGFF(strings.NewReader(refGFF))
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	if n := tbl.Names(); !reflect.DeepEqual(n, []string{"HA1", "NA"}) {
		t.Errorf("names: got %v", n)
	}
	want := map[string]features.Annotation{
		"HA1": {Start: 100, End: 400, Strand: 1},
		"NA":  {Start: 500, End: 900, Strand: -1},
	}
	for n, w := range want {
		if a, _ := tbl.Get(n); a != w {
			t.Errorf("feature %q: got %v, want %v", n, a, w)
		}
	}
}

const refGFF3 = "##gff-version 3\n" +
	"##sequence-region NC_007366.1 1 1000\n" +
	"NC_007366.1\tRefSeq\tregion\t1\t1000\t.\t+\t.\tID=NC_007366.1:1..1000;Dbxref=taxon:93838;mol_type=viral cRNA\n" +
	"NC_007366.1\tRefSeq\tgene\t101\t400\t.\t+\t.\tID=gene-HA1;Name=HA1;gene=HA1;gene_biotype=protein_coding\n" +
	"NC_007366.1\tRefSeq\tCDS\t101\t400\t.\t+\t0\tID=cds-YP_308839.1;Parent=gene-HA1;gene=HA1;product=hemagglutinin%3B HA1 subunit\n" +
	"###\n" +
	"NC_007366.1\tRefSeq\tCDS\t501\t900\t.\t-\t0\tID=cds-YP_308840.1;Name=YP_308840.1;locus_tag=NA_1;product=neuraminidase\n" +
	"# unnamed coding sequence\n" +
	"NC_007366.1\tRefSeq\tCDS\t901\t950\t.\t+\t0\tID=cds-3;Note=no%20name\n" +
	"##FASTA\n" +
	">NC_007366.1\n" +
	"AGCAAAAGCAGG\n"

func TestReadGFF3(t *testing.T) {
	tbl, err := features.ReadGFF(strings.NewReader(refGFF3))
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	if n := tbl.Names(); !reflect.DeepEqual(n, []string{"HA1", "YP_308840.1"}) {
		t.Errorf("names: got %v", n)
	}
	want := map[string]features.Annotation{
		"HA1":         {Start: 100, End: 400, Strand: 1},
		"YP_308840.1": {Start: 500, End: 900, Strand: -1},
	}
	for n, w := range want {
		if a, _ := tbl.Get(n); a != w {
			t.Errorf("feature %q: got %v, want %v", n, a, w)
		}
	}
}
