// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package tree implements a command to print
// the taxonomy tree of a pathway.
package tree

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/js-arias/command"
	"github.com/js-arias/metataxa/project"
	"github.com/js-arias/metataxa/taxtree"
)

var Command = &command.Command{
	Usage: `tree [--plus] [--timetree <name>] [-o|--output <file>]
	<project-file> <pathway-id>`,
	Short: "print the taxonomy tree of a pathway",
	Long: `
Command tree reads the taxonomy and pathway files of a metataxa project, builds
the taxonomy tree of the indicated pathway, and prints each taxon of the tree,
with its full lineage and the number of ORFs annotated to it.

The first argument of the command is the name of the project file. The second
argument is the ID of the pathway.

By default, the number of ORFs of each taxon is printed. If the flag --plus is
defined, each taxon is counted only once (i.e., presence-absence data, as
used by the Delta+ statistic).

If the flag --timetree is defined, the tree will be exported as a
time-calibrated tree file, with the indicated name as the name of the tree,
and each taxonomic rank as a unit of branch length. This output can be used by
other programs that read timetree files (for example, PhyGeo).

By default the output is printed in the standard output. Use the flag
--output, or -o, to write it into a file.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var plusFlag bool
var timeTree string
var output string

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&plusFlag, "plus", false, "")
	c.Flags().StringVar(&timeTree, "timetree", "", "")
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
}

func run(c *command.Command, args []string) (err error) {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	if len(args) < 2 {
		return c.UsageError("expecting pathway ID")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}
	smp, err := p.Sample()
	if err != nil {
		return err
	}

	pwy := args[1]
	if !smp.HasPathway(pwy) {
		return fmt.Errorf("pathway %q not in project %q", pwy, args[0])
	}
	t := smp.Tree(pwy, plusFlag)

	w := c.Stdout()
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return err
		}
		defer func() {
			e := f.Close()
			if e != nil && err == nil {
				err = e
			}
		}()
		w = f
	}

	if timeTree != "" {
		tc, err := t.TimeTree(timeTree)
		if err != nil {
			return fmt.Errorf("pathway %q: %v", pwy, err)
		}
		if err := tc.TSV(w); err != nil {
			return fmt.Errorf("while writing tree: %v", err)
		}
		return nil
	}

	return printTree(w, pwy, t)
}

func printTree(w io.Writer, pwy string, t *taxtree.Tree) error {
	total := t.Aggregate()
	if _, err := fmt.Fprintf(w, "# pathway: %s\n# total: %d\n", pwy, total); err != nil {
		return err
	}
	for _, ln := range t.Lineages() {
		if _, err := fmt.Fprintf(w, "%s\t%d\n", strings.Join(ln.Path, ";"), ln.Count); err != nil {
			return err
		}
	}
	return nil
}
