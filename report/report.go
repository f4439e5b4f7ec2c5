// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package report implements a table
// of taxonomic distinctness statistics
// for the pathways of a metagenomic sample.
package report

import (
	"fmt"

	"github.com/js-arias/metataxa/ci"
	"github.com/js-arias/metataxa/delta"
	"github.com/js-arias/metataxa/sample"
)

// A Stat is a statistic reported for each pathway.
type Stat struct {
	Type delta.Type
	WTD  bool
}

// String returns the column name of the statistic.
func (s Stat) String() string {
	if s.WTD {
		return "wtd-" + s.Type.String()
	}
	return s.Type.String()
}

// Label returns a human readable name of the statistic.
func (s Stat) Label() string {
	if s.WTD {
		return s.Type.Symbol() + " (WTD)"
	}
	return s.Type.Symbol()
}

// Stats are the statistics of a report
// in column order.
var Stats = []Stat{
	{Type: delta.Delta},
	{Type: delta.Star},
	{Type: delta.Plus},
	{Type: delta.Delta, WTD: true},
	{Type: delta.Star, WTD: true},
	{Type: delta.Plus, WTD: true},
}

// ParseStat returns a statistic from its column name.
func ParseStat(name string) (Stat, error) {
	for _, s := range Stats {
		if s.String() == name {
			return s, nil
		}
	}
	return Stat{}, fmt.Errorf("unknown statistic %q", name)
}

// A Cell is the value of a statistic
// with its confidence interval.
// If NA is true,
// the statistic is undefined.
type Cell struct {
	ci.Interval
	NA bool
}

// A Row is the report of a pathway.
type Row struct {
	Pathway string
	ORFs    int
	Species int
	Cells   []Cell // in the order of Stats
}

// Cell returns the cell of a given statistic.
func (r Row) Cell(s Stat) Cell {
	for i, st := range Stats {
		if st == s && i < len(r.Cells) {
			return r.Cells[i]
		}
	}
	return Cell{NA: true}
}

// Options are the options used to build a report.
type Options struct {
	// Pathways to be reported.
	// If empty,
	// all the pathways of the sample will be reported.
	Pathways []string

	// If NoCI is true,
	// confidence intervals are not estimated,
	// and the bounds are set to the point estimate.
	NoCI bool
}

// Build calculates the statistics of each pathway.
//
// A statistic that fails
// is reported as undefined
// and its error is returned in the list of warnings.
func Build(smp *sample.Sample, s *ci.Sampler, opts Options) (rows []Row, warnings []error) {
	pwys := opts.Pathways
	if len(pwys) == 0 {
		pwys = smp.Pathways()
	}

	for _, p := range pwys {
		r := Row{
			Pathway: p,
			ORFs:    smp.ORFs(p),
			Species: smp.NumSpecies(p),
			Cells:   make([]Cell, len(Stats)),
		}
		for i, st := range Stats {
			in, err := estimate(smp, s, p, st, opts.NoCI)
			if err != nil {
				warnings = append(warnings, fmt.Errorf("pathway %q: %s: %w", p, st, err))
				r.Cells[i] = Cell{NA: true}
				continue
			}
			r.Cells[i] = Cell{Interval: in}
		}
		rows = append(rows, r)
	}
	return rows, warnings
}

func estimate(smp *sample.Sample, s *ci.Sampler, pwy string, st Stat, noCI bool) (ci.Interval, error) {
	if !noCI {
		return s.Pathway(smp, pwy, st.Type, st.WTD)
	}

	t := smp.Tree(pwy, st.Type.PresentAbsent())
	t.Aggregate()
	v, err := delta.Compute(t, st.Type, st.WTD)
	if err != nil {
		return ci.Interval{}, err
	}
	return ci.Interval{Value: v, Low: v, High: v}, nil
}
