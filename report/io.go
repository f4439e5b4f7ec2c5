// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package report

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// NA is the value used for undefined statistics.
const NA = "NA"

var header = []string{
	"pathway",
	"orfs",
	"species",
}

func statHeader() []string {
	h := make([]string, 0, 3*len(Stats))
	for _, s := range Stats {
		n := s.String()
		h = append(h, n, n+"-low", n+"-high")
	}
	return h
}

// TSV writes the rows of a report
// as a tab-delimited file.
func TSV(w io.Writer, rows []Row) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# taxonomic distinctness by pathway\n")
	fmt.Fprintf(bw, "# data save on: %s\n", time.Now().Format(time.RFC3339))

	tsv := csv.NewWriter(bw)
	tsv.Comma = '\t'
	tsv.UseCRLF = true

	h := append(append([]string{}, header...), statHeader()...)
	if err := tsv.Write(h); err != nil {
		return fmt.Errorf("while writing header: %v", err)
	}

	for _, r := range rows {
		row := []string{
			r.Pathway,
			strconv.Itoa(r.ORFs),
			strconv.Itoa(r.Species),
		}
		for i := range Stats {
			c := Cell{NA: true}
			if i < len(r.Cells) {
				c = r.Cells[i]
			}
			if c.NA {
				row = append(row, NA, NA, NA)
				continue
			}
			row = append(row,
				strconv.FormatFloat(c.Value, 'f', 6, 64),
				strconv.FormatFloat(c.Low, 'f', 6, 64),
				strconv.FormatFloat(c.High, 'f', 6, 64),
			)
		}
		if err := tsv.Write(row); err != nil {
			return fmt.Errorf("pathway %q: %v", r.Pathway, err)
		}
	}

	tsv.Flush()
	if err := tsv.Error(); err != nil {
		return fmt.Errorf("while writing data: %v", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("while writing data: %v", err)
	}
	return nil
}

// ReadTSV reads a report from a tab-delimited file.
//
// The TSV must contain the following fields:
//
//   - pathway, the ID of the pathway
//   - orfs, the number of ORFs in the pathway
//   - species, the number of distinct lineages in the pathway
//
// and for each statistic,
// its value and the bounds of its interval,
// for example:
// "delta", "delta-low", "delta-high".
// Missing statistics are set as undefined.
func ReadTSV(r io.Reader) ([]Row, error) {
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

	var rows []Row
	for {
		row, err := tsv.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tsv.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}

		f := "pathway"
		r := Row{
			Pathway: strings.TrimSpace(row[fields[f]]),
			Cells:   make([]Cell, len(Stats)),
		}

		f = "orfs"
		r.ORFs, err = strconv.Atoi(row[fields[f]])
		if err != nil {
			return nil, fmt.Errorf("on row %d, field %q: %v", ln, f, err)
		}

		f = "species"
		r.Species, err = strconv.Atoi(row[fields[f]])
		if err != nil {
			return nil, fmt.Errorf("on row %d, field %q: %v", ln, f, err)
		}

		for i, s := range Stats {
			c, err := readCell(row, fields, s.String())
			if err != nil {
				return nil, fmt.Errorf("on row %d, %v", ln, err)
			}
			r.Cells[i] = c
		}
		rows = append(rows, r)
	}
	return rows, nil
}

func readCell(row []string, fields map[string]int, name string) (Cell, error) {
	var v [3]float64
	for i, f := range []string{name, name + "-low", name + "-high"} {
		col, ok := fields[f]
		if !ok {
			return Cell{NA: true}, nil
		}
		s := strings.TrimSpace(row[col])
		if s == NA || s == "" {
			return Cell{NA: true}, nil
		}
		x, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Cell{}, fmt.Errorf("field %q: %v", f, err)
		}
		v[i] = x
	}
	c := Cell{}
	c.Value, c.Low, c.High = v[0], v[1], v[2]
	return c, nil
}
