// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package param implements a command to manage
// the subsampling parameters of a project.
package param

import (
	"fmt"
	"io"

	"github.com/js-arias/command"
	"github.com/js-arias/metataxa/ciparam"
	"github.com/js-arias/metataxa/project"
)

var Command = &command.Command{
	Usage: `param [--add <param-file>] [--file <file-name>]
	[--resamples <number>] [--retain <value>]
	[--level <value>] [--seed <number>]
	<project-file>`,
	Short: "manage subsampling parameters",
	Long: `
Command param manages the parameters used to estimate the confidence intervals
of the taxonomic distinctness statistics of a metataxa project.

The argument of the command is the name of the project file.

By default, the command will print the currently defined parameters.

If the flag --add is defined, it will use the indicated file for the
subsampling parameters.

By default, any change on the parameters will be stored in the current
parameters file. If no file is defined, a file called "params.tab" will be
created. Use the flag --file to define a new parameters file.

The flag --resamples sets the number of replicates used for each interval.
The default value is 100.

The flag --retain sets the probability of keeping an ORF in a replicate. It
must be a value greater than 0 and less than or equal to 1. The default value
is 0.9.

The flag --level sets the confidence level of the interval. The default is
0.95.

The flag --seed sets the seed of the random number generator, so the
intervals can be reproduced. If the seed is 0 (the default), a new seed will
be used on each run.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var addFile string
var paramFile string
var resamples int
var retain float64
var level float64
var seed uint64

func setFlags(c *command.Command) {
	c.Flags().StringVar(&addFile, "add", "", "")
	c.Flags().StringVar(&paramFile, "file", "", "")
	c.Flags().IntVar(&resamples, "resamples", 0, "")
	c.Flags().Float64Var(&retain, "retain", 0, "")
	c.Flags().Float64Var(&level, "level", 0, "")
	c.Flags().Uint64Var(&seed, "seed", 0, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}

	if addFile != "" {
		if _, err := ciparam.Read(addFile); err != nil {
			return err
		}
		p.Add(project.Params, addFile)
		if err := p.Write(); err != nil {
			return err
		}
		return nil
	}

	cp, err := p.Params()
	if err != nil {
		return err
	}
	if paramFile != "" {
		cp.SetName(paramFile)
	}

	ed := false
	if resamples > 0 {
		if err := cp.SetResamples(resamples); err != nil {
			return err
		}
		ed = true
	}
	if retain != 0 {
		if err := cp.SetRetain(retain); err != nil {
			return err
		}
		ed = true
	}
	if level != 0 {
		if err := cp.SetLevel(level); err != nil {
			return err
		}
		ed = true
	}
	if seed != 0 && seed != cp.Seed() {
		cp.SetSeed(seed)
		ed = true
	}

	if !ed && paramFile == "" {
		printParams(c.Stdout(), cp)
		return nil
	}

	if err := cp.Write(); err != nil {
		return err
	}
	if p.Path(project.Params) != cp.Name() {
		p.Add(project.Params, cp.Name())
		if err := p.Write(); err != nil {
			return err
		}
	}
	return nil
}

func printParams(w io.Writer, cp *ciparam.P) {
	fmt.Fprintf(w, "file:       %s\n", cp.Name())
	fmt.Fprintf(w, "resamples:  %d\n", cp.Resamples())
	fmt.Fprintf(w, "retain:     %.6f\n", cp.Retain())
	fmt.Fprintf(w, "level:      %.6f\n", cp.Level())
	if s := cp.Seed(); s != 0 {
		fmt.Fprintf(w, "seed:       %d\n", s)
	}
}
