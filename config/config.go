// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package config implements the export configuration
// of a project.
//
// The configuration is stored in a TOML file
// and contains the provenance values
// of the metadata artifact,
// as well as the node fields to export.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Author is the reference
// to a publication of the sequence data.
type Author struct {
	PaperURL string `toml:"paper_url" json:"paper_url"`
	Journal  string `toml:"journal" json:"journal"`
	Title    string `toml:"title" json:"title"`
	N        int    `toml:"n" json:"n"`
}

// Config is the export configuration.
type Config struct {
	// Title of the dataset.
	Title string `toml:"title"`

	// Maintainer of the dataset.
	Maintainer string `toml:"maintainer"`

	// Commit of the pipeline
	// that produced the data.
	Commit string `toml:"commit"`

	// Authors of the sequences,
	// indexed by author ID.
	Authors map[string]Author `toml:"author_info"`

	// Fields are the node fields to export.
	// If empty,
	// the columns of the metadata table will be used.
	Fields []string `toml:"fields"`
}

// Default returns the configuration
// used when no configuration file is defined.
func Default() Config {
	return Config{
		Title:      "phylogeny",
		Maintainer: "unknown",
		Commit:     "unknown",
		Authors: map[string]Author{
			"?": {
				PaperURL: "?",
				Journal:  "?",
				Title:    "?",
				N:        1,
			},
		},
	}
}

// Read reads a configuration from a TOML stream.
// Undefined values take the default values.
func Read(r io.Reader) (Config, error) {
	c := Default()
	c.Authors = nil

	md, err := toml.NewDecoder(r).Decode(&c)
	if err != nil {
		return Config{}, err
	}
	if u := md.Undecoded(); len(u) > 0 {
		keys := make([]string, 0, len(u))
		for _, k := range u {
			keys = append(keys, k.String())
		}
		return Config{}, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}

	if c.Authors == nil {
		c.Authors = Default().Authors
	}
	return c, nil
}

// ReadFile reads a configuration from a file.
func ReadFile(name string) (Config, error) {
	f, err := os.Open(name)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()

	c, err := Read(f)
	if err != nil {
		return Config{}, fmt.Errorf("on file %q: %v", name, err)
	}
	return c, nil
}

// Write writes a configuration as a TOML stream.
func (c Config) Write(w io.Writer) error {
	fmt.Fprintf(w, "# phyexport configuration\n")
	return toml.NewEncoder(w).Encode(c)
}
