// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package ciparam implements reading and writing
// of the parameters used to estimate
// confidence intervals by subsampling.
package ciparam

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/js-arias/metataxa/ci"
)

// Param is a keyword to identify
// the type of parameter in a parameter file.
type Param string

// Valid parameters
const (
	// Level is the confidence level of the intervals.
	Level Param = "level"

	// Resamples is the number of replicates
	// used to build an interval.
	Resamples Param = "resamples"

	// Retain is the probability of keeping
	// an observation in a replicate.
	Retain Param = "retain"

	// Seed is the seed of the random number generator.
	// If zero,
	// a new seed is drawn on each run.
	Seed Param = "seed"
)

// P represents a collection of subsampling parameters.
type P struct {
	name string // file name

	resamples int
	retain    float64
	level     float64
	seed      uint64
}

// New creates a new parameter collection
// with default values.
func New(name string) *P {
	return &P{
		name:      name,
		resamples: ci.DefResamples,
		retain:    ci.DefRetain,
		level:     ci.DefLevel,
	}
}

var header = []string{
	"parameter",
	"value",
}

// Read reads a parameter file from a TSV file.
//
// The TSV must contains the following fields:
//
//   - parameter, the name of the parameter
//   - value, the value of the parameter
//
// Here is an example file:
//
//	# metataxa subsampling parameters
//	parameter	value
//	resamples	100
//	retain	0.900000
//	level	0.950000
//	seed	0
func Read(name string) (*P, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	p, err := read(f, name)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	return p, nil
}

func read(r io.Reader, name string) (*P, error) {
	tsv := csv.NewReader(r)
	tsv.Comma = '\t'
	tsv.Comment = '#'

	head, err := tsv.Read()
	if err != nil {
		return nil, fmt.Errorf("header: %v", err)
	}
	fields := make(map[string]int, len(head))
	for i, h := range head {
		h = strings.ToLower(h)
		fields[h] = i
	}
	for _, h := range header {
		if _, ok := fields[h]; !ok {
			return nil, fmt.Errorf("expecting field %q", h)
		}
	}

	p := New(name)
	for {
		row, err := tsv.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tsv.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}

		f := "parameter"
		pm := Param(strings.ToLower(row[fields[f]]))

		f = "value"
		v := strings.TrimSpace(row[fields[f]])
		switch pm {
		case Level:
			l, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, fmt.Errorf("on row %d, field %q: %v", ln, f, err)
			}
			if err := p.SetLevel(l); err != nil {
				return nil, fmt.Errorf("on row %d, field %q: %v", ln, f, err)
			}
		case Resamples:
			n, err := strconv.Atoi(v)
			if err != nil {
				return nil, fmt.Errorf("on row %d, field %q: %v", ln, f, err)
			}
			if err := p.SetResamples(n); err != nil {
				return nil, fmt.Errorf("on row %d, field %q: %v", ln, f, err)
			}
		case Retain:
			r, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, fmt.Errorf("on row %d, field %q: %v", ln, f, err)
			}
			if err := p.SetRetain(r); err != nil {
				return nil, fmt.Errorf("on row %d, field %q: %v", ln, f, err)
			}
		case Seed:
			s, err := strconv.ParseUint(v, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("on row %d, field %q: %v", ln, f, err)
			}
			p.seed = s
		}
	}
	return p, nil
}

// Level returns the confidence level.
func (p *P) Level() float64 {
	return p.level
}

// Name returns the file name of the parameters.
func (p *P) Name() string {
	return p.name
}

// Resamples returns the number of replicates.
func (p *P) Resamples() int {
	return p.resamples
}

// Retain returns the probability of keeping an observation.
func (p *P) Retain() float64 {
	return p.retain
}

// Seed returns the seed of the random number generator.
func (p *P) Seed() uint64 {
	return p.seed
}

// SetLevel sets the confidence level.
func (p *P) SetLevel(l float64) error {
	if l <= 0 || l >= 1 {
		return fmt.Errorf("invalid confidence level: %.6f", l)
	}
	p.level = l
	return nil
}

// SetName sets the name of a parameter collection.
func (p *P) SetName(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	p.name = name
}

// SetResamples sets the number of replicates.
func (p *P) SetResamples(n int) error {
	if n < 1 {
		return fmt.Errorf("invalid number of resamples: %d", n)
	}
	p.resamples = n
	return nil
}

// SetRetain sets the probability of keeping an observation.
func (p *P) SetRetain(r float64) error {
	if r <= 0 || r > 1 {
		return fmt.Errorf("invalid retain probability: %.6f", r)
	}
	p.retain = r
	return nil
}

// SetSeed sets the seed of the random number generator.
func (p *P) SetSeed(s uint64) {
	p.seed = s
}

// Sampler returns a sampler with the parameters
// and the seed used to initialize it.
// If the seed is zero,
// a random seed is used.
func (p *P) Sampler() (*ci.Sampler, uint64) {
	seed := p.seed
	for seed == 0 {
		seed = rand.Uint64()
	}
	s := ci.NewSeed(seed)
	s.Resamples = p.resamples
	s.Retain = p.retain
	s.Level = p.level
	return s, seed
}

// Write writes a parameter collection into a file.
func (p *P) Write() (err error) {
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
	fmt.Fprintf(bw, "# metataxa subsampling parameters\n")
	fmt.Fprintf(bw, "# data save on: %s\n", time.Now().Format(time.RFC3339))
	tsv := csv.NewWriter(bw)
	tsv.Comma = '\t'
	tsv.UseCRLF = true

	if err := tsv.Write(header); err != nil {
		return fmt.Errorf("on file %q: while writing header: %v", p.name, err)
	}

	rows := [][]string{
		{string(Resamples), strconv.Itoa(p.resamples)},
		{string(Retain), strconv.FormatFloat(p.retain, 'f', 6, 64)},
		{string(Level), strconv.FormatFloat(p.level, 'f', 6, 64)},
		{string(Seed), strconv.FormatUint(p.seed, 10)},
	}
	for _, row := range rows {
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
