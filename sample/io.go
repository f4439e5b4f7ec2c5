// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package sample

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"
)

// Minimum number of fields
// of a valid row in a taxonomy file.
const taxFields = 9

// Open opens a file for reading.
// If the file name ends in ".gz"
// the content is decompressed.
func Open(name string) (io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(name, ".gz") {
		return f, nil
	}

	z, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, errors.Wrapf(err, "on file %q", name)
	}
	return &gzFile{Reader: z, f: f}, nil
}

type gzFile struct {
	*gzip.Reader
	f *os.File
}

func (z *gzFile) Close() error {
	err := z.Reader.Close()
	if e := z.f.Close(); err == nil {
		err = e
	}
	return err
}

// Read reads a sample from a taxonomy file
// and a pathway file.
func Read(taxFile, pwyFile string) (*Sample, error) {
	s := New()
	if err := readFile(taxFile, s.ReadTaxonomy); err != nil {
		return nil, err
	}
	if err := readFile(pwyFile, s.ReadPathways); err != nil {
		return nil, err
	}
	return s, nil
}

func readFile(name string, read func(io.Reader) error) error {
	f, err := Open(name)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := read(f); err != nil {
		return errors.Wrapf(err, "on file %q", name)
	}
	return nil
}

// ReadTaxonomy reads the taxonomic annotations of the ORFs
// from a tab-delimited file without header.
//
// The first column is the ORF ID,
// and the ninth column is the taxonomic annotation.
// Rows with less than nine columns,
// or with annotations without the root marker,
// are ignored.
// Lines starting with '#' are comments.
//
// Here is an example file
// (some columns are omitted):
//
//	# ORF	...	taxonomy
//	O_1	...	root;cellular organisms;Bacteria;Proteobacteria (1224)
//	O_2	...	root;cellular organisms;Bacteria (2)
func (s *Sample) ReadTaxonomy(r io.Reader) error {
	return readRows(r, func(row []string) {
		if len(row) < taxFields {
			return
		}
		s.AddORF(strings.TrimSpace(row[0]), row[taxFields-1])
	})
}

// ReadPathways reads the ORFs of each pathway
// from a tab-delimited file without header.
//
// The first column is the pathway ID,
// and each additional column is an ORF ID.
// Rows with less than two columns are ignored.
// Lines starting with '#' are comments.
//
// Here is an example file:
//
//	# pathways
//	GLYCOLYSIS	O_1	O_2	O_7
//	TCA	O_3	O_4
func (s *Sample) ReadPathways(r io.Reader) error {
	return readRows(r, func(row []string) {
		if len(row) < 2 {
			return
		}
		orfs := make([]string, 0, len(row)-1)
		for _, o := range row[1:] {
			orfs = append(orfs, strings.TrimSpace(o))
		}
		s.AddPathway(strings.TrimSpace(row[0]), orfs)
	})
}

func readRows(r io.Reader, fn func(row []string)) error {
	br := bufio.NewReader(r)
	for ln := 1; ; ln++ {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return errors.Wrapf(err, "on line %d", ln)
		}

		line = strings.TrimSpace(line)
		if line != "" && !strings.HasPrefix(line, "#") {
			fn(strings.Split(line, "\t"))
		}

		if errors.Is(err, io.EOF) {
			return nil
		}
	}
}
