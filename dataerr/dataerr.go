// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package dataerr implements the errors produced
// when the input data of an export is inconsistent
// (for example,
// a tree node without metadata,
// or a node without a sequence).
//
// Any of these errors aborts the export.
package dataerr

import (
	"errors"
	"fmt"
	"strings"
)

// Kind identifies the kind of data integrity failure.
type Kind string

// Valid error kinds.
const (
	// A node in the tree without a record
	// in the metadata table.
	MissingMetadata Kind = "missing metadata"

	// A node without a sequence
	// in an exported alignment.
	MissingSequence Kind = "missing sequence"

	// A sequence with a length different
	// from the other sequences of the alignment.
	LengthMismatch Kind = "length mismatch"

	// A required field of a node is undefined.
	MissingField Kind = "missing field"

	// An ID field with the same value
	// in two different nodes.
	DuplicateID Kind = "duplicate id"
)

// Error is a data integrity error.
type Error struct {
	Kind Kind

	// Context of the error,
	// empty values are not reported.
	Node  string
	Gene  string
	Field string

	Msg string
}

// New returns a new error of the given kind
// with a formatted message.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{
		Kind: kind,
		Msg:  fmt.Sprintf(format, args...),
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(string(e.Kind))
	if e.Node != "" {
		fmt.Fprintf(&b, ": node %q", e.Node)
	}
	if e.Gene != "" {
		fmt.Fprintf(&b, ": gene %q", e.Gene)
	}
	if e.Field != "" {
		fmt.Fprintf(&b, ": field %q", e.Field)
	}
	if e.Msg != "" {
		b.WriteString(": ")
		b.WriteString(e.Msg)
	}
	return b.String()
}

// WithNode sets the node of the error.
func (e *Error) WithNode(name string) *Error {
	e.Node = name
	return e
}

// WithGene sets the gene of the error.
func (e *Error) WithGene(gene string) *Error {
	e.Gene = gene
	return e
}

// WithField sets the field of the error.
func (e *Error) WithField(field string) *Error {
	e.Field = field
	return e
}

// Is reports whether err,
// or any error in its chain,
// is a data integrity error of the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}
