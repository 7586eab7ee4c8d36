// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// ReadNewick reads a tree in newick (parenthetical) format.
//
// Node labels,
// including labels of internal nodes,
// are kept as node names.
// Labels can be quoted with single quotes,
// and comments between square brackets are ignored.
// Only the first tree of the input is read.
//
// Here is an example tree:
//
//	((A:0.1,B:0.2)NODE_01:0.05,C:0.3)NODE_00;
func ReadNewick(r io.Reader) (*Tree, error) {
	nr := &newickReader{r: bufio.NewReader(r)}

	root := newNode(nil)
	if err := nr.node(root); err != nil {
		return nil, err
	}
	tk, err := nr.token()
	if err != nil {
		return nil, fmt.Errorf("newick: expecting ';': %v", err)
	}
	if !tk.is(';') {
		return nil, fmt.Errorf("newick: line %d: got %q, want ';'", nr.line, tk.val)
	}
	return New(root), nil
}

type newickReader struct {
	r    *bufio.Reader
	line int
	// an unread token
	next *token
}

const delims = "(),:;"

// A token is either a delimiter
// or a label.
type token struct {
	val   string
	label bool
}

func (tk token) is(delim byte) bool {
	return !tk.label && tk.val == string(delim)
}

func (nr *newickReader) node(n *Node) error {
	tk, err := nr.token()
	if err != nil {
		return nr.unexpected(err)
	}

	if tk.is('(') {
		for {
			c := newNode(n)
			if err := nr.node(c); err != nil {
				return err
			}
			tk, err = nr.token()
			if err != nil {
				return nr.unexpected(err)
			}
			if tk.is(')') {
				break
			}
			if !tk.is(',') {
				return fmt.Errorf("newick: line %d: got %q, want ',' or ')'", nr.line, tk.val)
			}
		}
		tk, err = nr.token()
		if err != nil {
			return nr.unexpected(err)
		}
	}

	if tk.label {
		n.Name = tk.val
		tk, err = nr.token()
		if err != nil {
			return nr.unexpected(err)
		}
	}

	if tk.is(':') {
		v, err := nr.token()
		if err != nil {
			return nr.unexpected(err)
		}
		l, err := strconv.ParseFloat(v.val, 64)
		if err != nil || !v.label {
			return fmt.Errorf("newick: line %d: invalid branch length %q", nr.line, v.val)
		}
		n.Len = l
		n.HasLen = true
		return nil
	}

	nr.next = &tk
	return nil
}

func (nr *newickReader) unexpected(err error) error {
	if errors.Is(err, io.EOF) {
		return fmt.Errorf("newick: line %d: %v", nr.line, io.ErrUnexpectedEOF)
	}
	return fmt.Errorf("newick: line %d: %v", nr.line, err)
}

// Token returns the next token of the input.
func (nr *newickReader) token() (token, error) {
	if nr.next != nil {
		tk := *nr.next
		nr.next = nil
		return tk, nil
	}
	if nr.line == 0 {
		nr.line = 1
	}

	r, err := nr.skipSpaces()
	if err != nil {
		return token{}, err
	}
	if strings.ContainsRune(delims, r) {
		return token{val: string(r)}, nil
	}
	if r == '\'' {
		v, err := nr.quoted()
		if err != nil {
			return token{}, err
		}
		return token{val: v, label: true}, nil
	}

	var b strings.Builder
	b.WriteRune(r)
	for {
		r, _, err := nr.r.ReadRune()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return token{}, err
		}
		if unicode.IsSpace(r) || r == '[' || strings.ContainsRune(delims, r) {
			nr.r.UnreadRune()
			break
		}
		b.WriteRune(r)
	}
	return token{val: b.String(), label: true}, nil
}

// SkipSpaces returns the first rune
// that is not a space or part of a comment.
func (nr *newickReader) skipSpaces() (rune, error) {
	for {
		r, _, err := nr.r.ReadRune()
		if err != nil {
			return 0, err
		}
		if r == '\n' {
			nr.line++
		}
		if unicode.IsSpace(r) {
			continue
		}
		if r == '[' {
			if err := nr.comment(); err != nil {
				return 0, err
			}
			continue
		}
		return r, nil
	}
}

func (nr *newickReader) comment() error {
	for {
		r, _, err := nr.r.ReadRune()
		if err != nil {
			return err
		}
		if r == '\n' {
			nr.line++
		}
		if r == ']' {
			return nil
		}
	}
}

func (nr *newickReader) quoted() (string, error) {
	var b strings.Builder
	for {
		r, _, err := nr.r.ReadRune()
		if err != nil {
			return "", err
		}
		if r != '\'' {
			b.WriteRune(r)
			continue
		}

		// a doubled quote is an escaped quote
		nx, _, err := nr.r.ReadRune()
		if err == nil && nx == '\'' {
			b.WriteRune('\'')
			continue
		}
		if err == nil {
			nr.r.UnreadRune()
		}
		return b.String(), nil
	}
}
