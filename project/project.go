// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package project implements reading and writing
// of metataxa project files.
//
// A metataxa project is a tab-delimited file (TSV)
// used to store the different data files
// required by metataxa commands.
package project

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"time"
)

// Dataset is a keyword to identify
// the type of a dataset file in a project.
type Dataset string

// Valid dataset types.
const (
	// File for the subsampling parameters
	// used for confidence intervals.
	Params Dataset = "params"

	// File for the ORFs of each metabolic pathway.
	Pathways Dataset = "pathways"

	// File for the last distinctness report.
	Report Dataset = "report"

	// File for the taxonomic annotations of the ORFs.
	Taxonomy Dataset = "taxonomy"
)

// Datasets are the datasets known by metataxa,
// in the order used for reports.
var Datasets = []Dataset{
	Taxonomy,
	Pathways,
	Params,
	Report,
}

// Valid returns true if the dataset
// is a known metataxa dataset.
func (d Dataset) Valid() bool {
	return slices.Contains(Datasets, d)
}

// A Project represents a collection of paths
// for particular datasets.
type Project struct {
	name    string
	paths   map[Dataset]string
	unknown []string
}

// New creates a new empty project.
func New() *Project {
	return &Project{
		name:  "",
		paths: make(map[Dataset]string),
	}
}

var header = []string{
	"dataset",
	"path",
}

// Read reads a project file from a TSV file.
//
// The TSV must contain the following fields:
//
//   - dataset, for the kind of file
//   - path, for the path of the file
//
// Here is an example file:
//
//	# metataxa project files
//	dataset	path
//	taxonomy	functional_and_taxonomic_table.txt.gz
//	pathways	pathways.tab
//	params	params.tab
//
// Dataset keywords are case insensitive.
// A dataset defined twice,
// or without a path,
// is an error.
// Unknown datasets are ignored,
// and its keywords are available with Project.Unknown.
func Read(name string) (*Project, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	p, err := read(f)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	p.name = name
	return p, nil
}

func read(r io.Reader) (*Project, error) {
	tsv := csv.NewReader(r)
	tsv.Comma = '\t'
	tsv.Comment = '#'

	head, err := tsv.Read()
	if err != nil {
		return nil, fmt.Errorf("header: %v", err)
	}
	fields := make(map[string]int, len(head))
	for i, h := range head {
		h = strings.ToLower(strings.TrimSpace(h))
		fields[h] = i
	}
	for _, h := range header {
		if _, ok := fields[h]; !ok {
			return nil, fmt.Errorf("expecting field %q", h)
		}
	}

	p := New()
	for {
		row, err := tsv.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tsv.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}

		f := "dataset"
		kw := strings.ToLower(strings.TrimSpace(row[fields[f]]))
		set := Dataset(kw)
		if !set.Valid() {
			p.unknown = append(p.unknown, kw)
			continue
		}
		if _, dup := p.paths[set]; dup {
			return nil, fmt.Errorf("on row %d: field %q: dataset %q already defined", ln, f, kw)
		}

		f = "path"
		path := strings.TrimSpace(row[fields[f]])
		if path == "" {
			return nil, fmt.Errorf("on row %d: field %q: empty path for dataset %q", ln, f, kw)
		}
		p.paths[set] = path
	}

	return p, nil
}

// Unknown returns the dataset keywords
// read from a project file
// that are not metataxa datasets.
func (p *Project) Unknown() []string {
	return p.unknown
}

// Add adds a filepath of a dataset to a given project.
// It returns the previous value
// for the dataset.
func (p *Project) Add(set Dataset, path string) string {
	prev := p.paths[set]
	if path == "" {
		delete(p.paths, set)
		return prev
	}

	p.paths[set] = path
	return prev
}

// Path returns the path of the given dataset.
func (p *Project) Path(set Dataset) string {
	return p.paths[set]
}

// Sets returns the datasets defined on a project.
func (p *Project) Sets() []Dataset {
	var sets []Dataset
	for s := range p.paths {
		sets = append(sets, s)
	}
	slices.Sort(sets)
	return sets
}

// Name returns the project file name.
func (p *Project) Name() string {
	return p.name
}

// SetName sets the project file name.
func (p *Project) SetName(name string) {
	p.name = name
}

// Write writes a project into a file.
func (p *Project) Write() (err error) {
	f, err := os.Create(p.name)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	bw := bufio.NewWriter(f)
	fmt.Fprintf(bw, "# metataxa project files\n")
	fmt.Fprintf(bw, "# data save on: %s\n", time.Now().Format(time.RFC3339))
	tsv := csv.NewWriter(bw)
	tsv.Comma = '\t'
	tsv.UseCRLF = true

	if err := tsv.Write(header); err != nil {
		return fmt.Errorf("on file %q: while writing header: %v", p.name, err)
	}

	sets := p.Sets()
	for _, s := range sets {
		row := []string{
			string(s),
			p.paths[s],
		}
		if err := tsv.Write(row); err != nil {
			return fmt.Errorf("on file %q: %v", p.name, err)
		}
	}

	tsv.Flush()
	if err := tsv.Error(); err != nil {
		return fmt.Errorf("on file %q: while writing data: %v", p.name, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("on file %q: while writing data: %v", p.name, err)
	}
	return nil
}
