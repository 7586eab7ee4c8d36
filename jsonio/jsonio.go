// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package jsonio writes JSON artifacts.
package jsonio

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// Encode writes a value as JSON.
// If indent is greater than zero,
// the output will be indented
// with the given number of spaces.
func Encode(w io.Writer, v any, indent int) error {
	enc := json.NewEncoder(w)
	if indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", indent))
	}
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode: %v", err)
	}
	return nil
}

// WriteFile writes a value as a JSON file.
//
// The value is fully encoded before the file is created,
// so an encoding error never produces a partial file.
func WriteFile(name string, v any, indent int) (err error) {
	var data []byte
	if indent > 0 {
		data, err = json.MarshalIndent(v, "", strings.Repeat(" ", indent))
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("on file %q: encode: %v", name, err)
	}

	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	bw := bufio.NewWriter(f)
	if _, err := bw.Write(data); err != nil {
		return fmt.Errorf("while writing file %q: %v", name, err)
	}
	if err := bw.WriteByte('\n'); err != nil {
		return fmt.Errorf("while writing file %q: %v", name, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("while writing file %q: %v", name, err)
	}
	return nil
}
