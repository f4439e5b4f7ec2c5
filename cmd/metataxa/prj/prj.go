// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package prj implements a command to print
// the basic information of a project.
package prj

import (
	"fmt"
	"io"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/metataxa/project"
	"github.com/js-arias/metataxa/report"
	"github.com/js-arias/metataxa/sample"
)

var Command = &command.Command{
	Usage: "prj <project-file>",
	Short: "print information about a project",
	Long: `
Command prj reads a metataxa project and prints the information of the
different project elements into the standard output.

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
	for _, kw := range p.Unknown() {
		fmt.Fprintf(c.Stderr(), "WARNING: project %q: unknown dataset %q\n", args[0], kw)
	}

	smp := sample.New()
	if tF := p.Path(project.Taxonomy); tF != "" {
		if err := readTaxonomy(c.Stdout(), tF, smp); err != nil {
			return err
		}
	}
	if pF := p.Path(project.Pathways); pF != "" {
		if err := readPathways(c.Stdout(), pF, smp); err != nil {
			return err
		}
	}

	if err := printParams(c.Stdout(), p); err != nil {
		return err
	}

	if rF := p.Path(project.Report); rF != "" {
		if err := readReport(c.Stdout(), rF); err != nil {
			return err
		}
	}
	return nil
}

func readTaxonomy(w io.Writer, name string, smp *sample.Sample) error {
	f, err := sample.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := smp.ReadTaxonomy(f); err != nil {
		return fmt.Errorf("while reading file %q: %v", name, err)
	}

	fmt.Fprintf(w, "ORF taxonomy:\n")
	fmt.Fprintf(w, "\tfile: %s\n", name)
	fmt.Fprintf(w, "\tannotated ORFs: %d\n", smp.NumTaxa())
	fmt.Fprintf(w, "\n")
	return nil
}

func readPathways(w io.Writer, name string, smp *sample.Sample) error {
	f, err := sample.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := smp.ReadPathways(f); err != nil {
		return fmt.Errorf("while reading file %q: %v", name, err)
	}

	pwys := smp.Pathways()
	var orfs, resolved int
	for _, pw := range pwys {
		orfs += smp.ORFs(pw)
		resolved += len(smp.Lineages(pw))
	}

	fmt.Fprintf(w, "Pathways:\n")
	fmt.Fprintf(w, "\tfile: %s\n", name)
	fmt.Fprintf(w, "\tpathways: %d\n", len(pwys))
	fmt.Fprintf(w, "\tORFs: %d\n", orfs)
	if smp.NumTaxa() > 0 {
		fmt.Fprintf(w, "\tannotated ORFs: %d\n", resolved)
	}
	fmt.Fprintf(w, "\n")
	return nil
}

func printParams(w io.Writer, p *project.Project) error {
	cp, err := p.Params()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Subsampling parameters:\n")
	if name := p.Path(project.Params); name != "" {
		fmt.Fprintf(w, "\tfile: %s\n", name)
	}
	fmt.Fprintf(w, "\tresamples: %d\n", cp.Resamples())
	fmt.Fprintf(w, "\tretain: %.3f\n", cp.Retain())
	fmt.Fprintf(w, "\tlevel: %.3f\n", cp.Level())
	if s := cp.Seed(); s != 0 {
		fmt.Fprintf(w, "\tseed: %d\n", s)
	}
	fmt.Fprintf(w, "\n")
	return nil
}

func readReport(w io.Writer, name string) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()

	rows, err := report.ReadTSV(f)
	if err != nil {
		return fmt.Errorf("while reading file %q: %v", name, err)
	}

	var na int
	for _, r := range rows {
		for _, c := range r.Cells {
			if c.NA {
				na++
			}
		}
	}

	fmt.Fprintf(w, "Distinctness report:\n")
	fmt.Fprintf(w, "\tfile: %s\n", name)
	fmt.Fprintf(w, "\tpathways: %d\n", len(rows))
	if na > 0 {
		fmt.Fprintf(w, "\tundefined values: %d\n", na)
	}
	fmt.Fprintf(w, "\n")
	return nil
}
