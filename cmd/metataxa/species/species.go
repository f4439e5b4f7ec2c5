// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package species implements a command to print
// the number of ORFs and species of each pathway.
package species

import (
	"fmt"
	"io"

	"github.com/js-arias/command"
	"github.com/js-arias/metataxa/project"
	"github.com/js-arias/metataxa/sample"
)

var Command = &command.Command{
	Usage: "species <project-file>",
	Short: "print the number of species by pathway",
	Long: `
Command species reads the taxonomy and pathway files of a metataxa project,
and prints, for each pathway, the number of ORFs in the pathway, and the
number of distinct species (i.e., distinct taxonomic lineages) annotated to
those ORFs.

The argument of the command is the name of the project file.
	`,
	Run: run,
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}
	smp, err := p.Sample()
	if err != nil {
		return err
	}

	if err := printSpecies(c.Stdout(), smp); err != nil {
		return err
	}
	return nil
}

func printSpecies(w io.Writer, smp *sample.Sample) error {
	if _, err := fmt.Fprintf(w, "pathway\torfs\tspecies\n"); err != nil {
		return err
	}
	for _, pw := range smp.Pathways() {
		if _, err := fmt.Fprintf(w, "%s\t%d\t%d\n", pw, smp.ORFs(pw), smp.NumSpecies(pw)); err != nil {
			return err
		}
	}
	return nil
}
