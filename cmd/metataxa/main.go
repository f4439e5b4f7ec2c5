// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Metataxa is a tool for taxonomic distinctness analysis
// of metabolic pathways in metagenomic samples.
package main

import (
	"github.com/js-arias/command"
	"github.com/js-arias/metataxa/cmd/metataxa/add"
	"github.com/js-arias/metataxa/cmd/metataxa/deltacmd"
	"github.com/js-arias/metataxa/cmd/metataxa/param"
	"github.com/js-arias/metataxa/cmd/metataxa/plot"
	"github.com/js-arias/metataxa/cmd/metataxa/prj"
	"github.com/js-arias/metataxa/cmd/metataxa/samplecmd"
	"github.com/js-arias/metataxa/cmd/metataxa/species"
	"github.com/js-arias/metataxa/cmd/metataxa/tree"
)

var app = &command.Command{
	Usage: "metataxa <command> [<argument>...]",
	Short: "a tool for taxonomic distinctness of metabolic pathways",
}

func init() {
	app.Add(add.Command)
	app.Add(deltacmd.Command)
	app.Add(param.Command)
	app.Add(plot.Command)
	app.Add(prj.Command)
	app.Add(samplecmd.Command)
	app.Add(species.Command)
	app.Add(tree.Command)
}

func main() {
	app.Main()
}
