// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package deltacmd implements a command to calculate
// the taxonomic distinctness of the pathways
// in a metataxa project.
package deltacmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/js-arias/command"
	"github.com/js-arias/metataxa/project"
	"github.com/js-arias/metataxa/report"
)

var Command = &command.Command{
	Usage: `delta [--pathway <pathway-id>] [--no-ci]
	[--resamples <number>] [--retain <value>]
	[--level <value>] [--seed <number>]
	[-o|--output <file>] <project-file>`,
	Short: "calculate taxonomic distinctness by pathway",
	Long: `
Command delta reads the taxonomy and pathway files of a metataxa project, and
calculates the taxonomic distinctness statistics (Delta, Delta*, and Delta+,
with and without WTD weights) of each pathway, as well as their confidence
intervals.

The argument of the command is the name of the project file.

By default, all pathways in the project will be reported. Use the flag
--pathway to report only the indicated pathways; more than one pathway can be
given as a comma separated list.

By default, the confidence intervals are estimated using the subsampling
parameters of the project (see "metataxa help param"). The parameters can be
changed for a single run with the flags --resamples, --retain, --level, and
--seed. Use the flag --no-ci to calculate only the point estimates.

By default the report will be printed in the standard output. Use the flag
--output, or -o, to write the report into a file; the file will be added to
the project as the "report" dataset. See "metataxa help report-files" for the
format of the report.

A statistic that cannot be calculated for a pathway is reported as "NA", and
a warning is printed in the standard error.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var pwyFlag string
var noCI bool
var resamples int
var retain float64
var level float64
var seed uint64
var output string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&pwyFlag, "pathway", "", "")
	c.Flags().BoolVar(&noCI, "no-ci", false, "")
	c.Flags().IntVar(&resamples, "resamples", 0, "")
	c.Flags().Float64Var(&retain, "retain", 0, "")
	c.Flags().Float64Var(&level, "level", 0, "")
	c.Flags().Uint64Var(&seed, "seed", 0, "")
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
}

func run(c *command.Command, args []string) (err error) {
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

	cp, err := p.Params()
	if err != nil {
		return err
	}
	if resamples != 0 {
		if err := cp.SetResamples(resamples); err != nil {
			return fmt.Errorf("flag --resamples: %v", err)
		}
	}
	if retain != 0 {
		if err := cp.SetRetain(retain); err != nil {
			return fmt.Errorf("flag --retain: %v", err)
		}
	}
	if level != 0 {
		if err := cp.SetLevel(level); err != nil {
			return fmt.Errorf("flag --level: %v", err)
		}
	}
	if seed != 0 {
		cp.SetSeed(seed)
	}
	s, used := cp.Sampler()

	var pwys []string
	if pwyFlag != "" {
		for _, pw := range strings.Split(pwyFlag, ",") {
			pw = strings.TrimSpace(pw)
			if pw == "" {
				continue
			}
			if !smp.HasPathway(pw) {
				fmt.Fprintf(c.Stderr(), "WARNING: pathway %q not in project\n", pw)
			}
			pwys = append(pwys, pw)
		}
	}

	rows, warns := report.Build(smp, s, report.Options{
		Pathways: pwys,
		NoCI:     noCI,
	})
	for _, w := range warns {
		fmt.Fprintf(c.Stderr(), "WARNING: %v\n", w)
	}

	if output == "" {
		return writeReport(c.Stdout(), rows, used)
	}

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
	if err := writeReport(f, rows, used); err != nil {
		return fmt.Errorf("while writing to %q: %v", output, err)
	}

	p.Add(project.Report, output)
	if err := p.Write(); err != nil {
		return err
	}
	return nil
}

func writeReport(w io.Writer, rows []report.Row, seed uint64) error {
	if !noCI {
		fmt.Fprintf(w, "# seed: %d\n", seed)
	}
	return report.TSV(w, rows)
}
