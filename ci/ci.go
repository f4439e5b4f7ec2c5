// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package ci implements confidence intervals
// for taxonomic distinctness statistics
// by binomial subsampling of the taxon counts.
//
// In each replicate,
// the count of each taxon is replaced by a draw
// from a binomial distribution
// with the original count as the number of trials
// and the retain probability as the success probability.
// The interval is a Student's t interval
// of the replicated statistics.
package ci

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/js-arias/metataxa/delta"
	"github.com/js-arias/metataxa/sample"
	"github.com/js-arias/metataxa/taxtree"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Default values of a sampler.
const (
	DefResamples = 100
	DefRetain    = 0.9
	DefLevel     = 0.95
)

// An Interval is a point estimate
// with its confidence interval.
type Interval struct {
	Value float64
	Low   float64
	High  float64
}

// A Sampler estimates confidence intervals.
type Sampler struct {
	// Resamples is the number of replicates.
	Resamples int

	// Retain is the probability of keeping
	// an observation in a replicate.
	Retain float64

	// Level is the confidence level of the interval.
	Level float64

	rng *rand.Rand
}

// New returns a sampler with default parameters
// that uses the given random number generator.
// If rng is nil,
// the global generator will be used.
func New(rng *rand.Rand) *Sampler {
	return &Sampler{
		Resamples: DefResamples,
		Retain:    DefRetain,
		Level:     DefLevel,
		rng:       rng,
	}
}

// NewSeed returns a sampler with default parameters
// and a random number generator
// initialized with the given seed.
func NewSeed(seed uint64) *Sampler {
	return New(rand.New(rand.NewPCG(seed, seed)))
}

func (s *Sampler) check() error {
	if s.Resamples < 1 {
		return fmt.Errorf("invalid number of resamples: %d", s.Resamples)
	}
	if s.Retain <= 0 || s.Retain > 1 {
		return fmt.Errorf("invalid retain probability: %.6f", s.Retain)
	}
	if s.Level <= 0 || s.Level >= 1 {
		return fmt.Errorf("invalid confidence level: %.6f", s.Level)
	}
	return nil
}

// Estimate returns the statistic of a tree
// and its confidence interval.
//
// The tree counts are modified during the estimation
// and restored to their original values at the end.
func (s *Sampler) Estimate(t *taxtree.Tree, tp delta.Type, wtd bool) (Interval, error) {
	if err := s.check(); err != nil {
		return Interval{}, err
	}

	t.Aggregate()
	v, err := delta.Compute(t, tp, wtd)
	if err != nil {
		return Interval{}, err
	}
	t.Save()
	defer func() {
		t.Restore()
		t.Aggregate()
	}()

	reps := make([]float64, 0, s.Resamples)
	for i := 0; i < s.Resamples; i++ {
		t.Walk(func(_ []string, n *taxtree.Node) {
			n.SetCount(s.binomial(n.Actual()))
		})
		t.Aggregate()
		d, err := delta.Compute(t, tp, wtd)
		if err != nil {
			return Interval{}, fmt.Errorf("replicate %d: %w", i, err)
		}
		reps = append(reps, d)
	}

	low, high := s.interval(reps)
	return Interval{
		Value: v,
		Low:   low,
		High:  high,
	}, nil
}

// Pathway returns the statistic of the taxonomy tree
// of a pathway
// and its confidence interval.
func (s *Sampler) Pathway(smp *sample.Sample, pwy string, tp delta.Type, wtd bool) (Interval, error) {
	t := smp.Tree(pwy, tp.PresentAbsent())
	return s.Estimate(t, tp, wtd)
}

// Interval returns the bounds of the t interval
// for the mean of the replicates.
func (s *Sampler) interval(reps []float64) (low, high float64) {
	same := true
	for _, v := range reps[1:] {
		if v != reps[0] {
			same = false
			break
		}
	}
	if same {
		return reps[0], reps[0]
	}

	mean, sd := stat.MeanStdDev(reps, nil)
	n := float64(len(reps))
	if len(reps) < 2 || sd == 0 || math.IsNaN(sd) {
		return mean, mean
	}

	st := distuv.StudentsT{
		Mu:    0,
		Sigma: 1,
		Nu:    n - 1,
	}
	q := st.Quantile(1 - (1-s.Level)/2)
	se := sd / math.Sqrt(n)
	return mean - q*se, mean + q*se
}

// Binomial returns the number of successes
// in n Bernoulli trials
// with the retain probability.
func (s *Sampler) binomial(n int) int {
	if n <= 0 {
		return 0
	}
	if s.Retain >= 1 {
		return n
	}

	k := 0
	for i := 0; i < n; i++ {
		if s.uniform() < s.Retain {
			k++
		}
	}
	return k
}

func (s *Sampler) uniform() float64 {
	if s.rng == nil {
		return rand.Float64()
	}
	return s.rng.Float64()
}
