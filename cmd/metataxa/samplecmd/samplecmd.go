// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package samplecmd implements a command to calculate
// the taxonomic distinctness of a whole sample.
package samplecmd

import (
	"fmt"

	"github.com/js-arias/command"
	"github.com/js-arias/metataxa/delta"
	"github.com/js-arias/metataxa/project"
)

var Command = &command.Command{
	Usage: "sample [--type <statistic>] [--wtd] <project-file>",
	Short: "calculate taxonomic distinctness of a sample",
	Long: `
Command sample reads the taxonomy file of a metataxa project and calculates
the taxonomic distinctness of all the annotated ORFs of the sample, regardless
of the pathway they belong to.

The argument of the command is the name of the project file.

By default, all the statistics are printed. Use the flag --type to print only
the indicated statistic. Valid values are "delta", "delta-star", and
"delta-plus". If the flag --wtd is defined, only the statistics with WTD
weights are printed.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var typeFlag string
var wtdFlag bool

func setFlags(c *command.Command) {
	c.Flags().StringVar(&typeFlag, "type", "", "")
	c.Flags().BoolVar(&wtdFlag, "wtd", false, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	types := delta.Types
	if typeFlag != "" {
		tp, err := delta.ParseType(typeFlag)
		if err != nil {
			return c.UsageError(fmt.Sprintf("flag --type: %v", err))
		}
		types = []delta.Type{tp}
	}
	weights := []bool{false, true}
	if wtdFlag {
		weights = []bool{true}
	} else if typeFlag != "" {
		weights = []bool{false}
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}
	smp, err := p.Sample()
	if err != nil {
		return err
	}
	taxa := smp.All()
	fmt.Fprintf(c.Stdout(), "# %d annotated ORFs\n", len(taxa))

	for _, wtd := range weights {
		for _, tp := range types {
			name := tp.Symbol()
			if wtd {
				name += " (WTD)"
			}
			v, err := delta.Lineages(taxa, tp, wtd)
			if err != nil {
				fmt.Fprintf(c.Stderr(), "WARNING: %s: %v\n", name, err)
				fmt.Fprintf(c.Stdout(), "%s\tNA\n", name)
				continue
			}
			fmt.Fprintf(c.Stdout(), "%s\t%.6f\n", name, v)
		}
	}
	return nil
}
