// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package add implements a command to add input files
// to a metataxa project.
package add

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/metataxa/project"
	"github.com/js-arias/metataxa/sample"
)

var Command = &command.Command{
	Usage: `add [--taxonomy <file>] [--pathways <file>]
	<project-file>`,
	Short: "add input files to a metataxa project",
	Long: `
Command add reads the ORF taxonomy file and the pathway file of a metagenomic
sample and adds them to a metataxa project.

The argument of the command is the name of the project file. If no project
file exists, a new project will be created.

The flag --taxonomy sets the file with the taxonomic annotations of the ORFs.
See "metataxa help taxonomy-files" for the file format.

The flag --pathways sets the file with the ORFs of each pathway. See
"metataxa help pathway-files" for the file format.

Files are read before being added to the project, and the number of elements
read is printed in the standard output. If a file was already defined in the
project, it will be replaced.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var taxFile string
var pwyFile string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&taxFile, "taxonomy", "", "")
	c.Flags().StringVar(&pwyFile, "pathways", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	if taxFile == "" && pwyFile == "" {
		return c.UsageError("expecting flag --taxonomy or --pathways")
	}

	pFile := args[0]
	p, err := openProject(pFile)
	if err != nil {
		return err
	}

	s := sample.New()
	if taxFile != "" {
		if err := readFile(taxFile, s.ReadTaxonomy); err != nil {
			return err
		}
		fmt.Fprintf(c.Stdout(), "%s: %d annotated ORFs\n", taxFile, s.NumTaxa())
		p.Add(project.Taxonomy, taxFile)
	}
	if pwyFile != "" {
		if err := readFile(pwyFile, s.ReadPathways); err != nil {
			return err
		}
		fmt.Fprintf(c.Stdout(), "%s: %d pathways\n", pwyFile, len(s.Pathways()))
		p.Add(project.Pathways, pwyFile)
	}

	if err := p.Write(); err != nil {
		return err
	}
	return nil
}

func openProject(name string) (*project.Project, error) {
	p, err := project.Read(name)
	if errors.Is(err, os.ErrNotExist) {
		p := project.New()
		p.SetName(name)
		return p, nil
	}
	if err != nil {
		return nil, fmt.Errorf("unable to open project %q: %v", name, err)
	}
	return p, nil
}

func readFile(name string, read func(io.Reader) error) error {
	f, err := sample.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := read(f); err != nil {
		return fmt.Errorf("while reading file %q: %v", name, err)
	}
	return nil
}
