// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package dataerr_test

import (
	"fmt"
	"testing"

	"github.com/js-arias/phyexport/dataerr"
)

func TestError(t *testing.T) {
	err := dataerr.New(dataerr.MissingSequence, "alignment %q", "HA1.fasta").WithNode("NODE_01").WithGene("HA1")

	want := `missing sequence: node "NODE_01": gene "HA1": alignment "HA1.fasta"`
	if g := err.Error(); g != want {
		t.Errorf("message: got %q, want %q", g, want)
	}

	wrapped := fmt.Errorf("while exporting: %w", err)
	if !dataerr.Is(wrapped, dataerr.MissingSequence) {
		t.Errorf("kind: expecting %q", dataerr.MissingSequence)
	}
	if dataerr.Is(wrapped, dataerr.LengthMismatch) {
		t.Errorf("kind: unexpected %q", dataerr.LengthMismatch)
	}
	if dataerr.Is(fmt.Errorf("plain error"), dataerr.MissingField) {
		t.Errorf("kind: plain error reported as %q", dataerr.MissingField)
	}
}
