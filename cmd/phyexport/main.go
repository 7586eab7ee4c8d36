// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// PhyExport is a tool to export annotated phylogenetic trees
// for web visualization.
package main

import (
	"github.com/js-arias/command"
	"github.com/js-arias/phyexport/cmd/phyexport/add"
	"github.com/js-arias/phyexport/cmd/phyexport/colors"
	"github.com/js-arias/phyexport/cmd/phyexport/divplot"
	"github.com/js-arias/phyexport/cmd/phyexport/export"
	"github.com/js-arias/phyexport/cmd/phyexport/layout"
	"github.com/js-arias/phyexport/cmd/phyexport/prj"
	"github.com/js-arias/phyexport/cmd/phyexport/terms"
)

var app = &command.Command{
	Usage: "phyexport <command> [<argument>...]",
	Short: "a tool to export annotated phylogenetic trees",
}

func init() {
	app.Add(add.Command)
	app.Add(colors.Command)
	app.Add(divplot.Command)
	app.Add(export.Command)
	app.Add(layout.Command)
	app.Add(prj.Command)
	app.Add(terms.Command)
}

func main() {
	app.Main()
}
