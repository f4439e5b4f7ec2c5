// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package delta implements the taxonomic distinctness statistics
// (Delta, Delta* and Delta+)
// over a taxonomy tree.
//
// The statistics are based on the number of edge crossings:
// for each edge of the tree,
// the number of pairs of observations
// split by that edge.
// With the WTD option,
// each edge is down-weighted by 0.5 to the power
// of the depth of its descendant node.
package delta

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/js-arias/metataxa/taxtree"
)

// ErrUndefined is returned when the normalizer
// of a statistic is zero.
var ErrUndefined = errors.New("undefined statistic")

// Type is the kind of taxonomic distinctness statistic.
type Type int

// Valid statistics.
const (
	// Delta is the taxonomic diversity,
	// normalized by the number of pairs of observations.
	Delta Type = iota

	// Star is the taxonomic distinctness (Delta*),
	// normalized by the sum of the pairwise products
	// of taxon counts.
	Star

	// Plus is the average taxonomic distinctness (Delta+),
	// calculated on presence-absence data.
	Plus
)

// Types is the list of valid statistic types.
var Types = []Type{Delta, Star, Plus}

// String returns the keyword of the statistic.
func (tp Type) String() string {
	switch tp {
	case Delta:
		return "delta"
	case Star:
		return "delta-star"
	case Plus:
		return "delta-plus"
	}
	return fmt.Sprintf("delta-type(%d)", int(tp))
}

// Symbol returns the usual symbol of the statistic.
func (tp Type) Symbol() string {
	switch tp {
	case Delta:
		return "Delta"
	case Star:
		return "Delta*"
	case Plus:
		return "Delta+"
	}
	return tp.String()
}

// PresentAbsent returns true if the statistic
// must be calculated with presence-absence counts.
func (tp Type) PresentAbsent() bool {
	return tp == Plus
}

// ParseType returns a statistic type from a string.
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "delta", "d":
		return Delta, nil
	case "delta-star", "delta*", "star", "*":
		return Star, nil
	case "delta-plus", "delta+", "plus", "+":
		return Plus, nil
	}
	return 0, fmt.Errorf("unknown statistic %q", s)
}

// EdgeCrossings returns the sum,
// over each edge of the tree,
// of the product of the observations
// in the subtree below the edge
// and the observations outside that subtree.
//
// The subtree counts must be updated
// (see taxtree.Tree.Aggregate).
func EdgeCrossings(t *taxtree.Tree, total int, wtd bool) float64 {
	if t.IsEmpty() {
		return 0
	}
	return crossings(t.Root(), float64(total), wtd)
}

func crossings(n *taxtree.Node, total float64, wtd bool) float64 {
	var sum float64
	for _, c := range n.Children() {
		sc := float64(c.SubtreeCount())
		e := (total - sc) * sc
		if wtd {
			e *= math.Pow(0.5, float64(c.Depth()))
		}
		sum += e + crossings(c, total, wtd)
	}
	return sum
}

// Compute returns the indicated statistic for a tree.
//
// The subtree counts must be updated
// (see taxtree.Tree.Aggregate).
// If the tree has less than two taxa with observations
// it returns 0.
func Compute(t *taxtree.Tree, tp Type, wtd bool) (float64, error) {
	total := t.Total()
	prod := EdgeCrossings(t, total, wtd)

	counts := t.Counts()
	if len(counts) < 2 {
		return 0, nil
	}

	var norm float64
	if tp == Star {
		// sum of c[i]*c[j] for i < j
		var sum, sq float64
		for _, c := range counts {
			v := float64(c)
			sum += v
			sq += v * v
		}
		norm = (sum*sum - sq) / 2
	} else {
		var n float64
		for _, c := range counts {
			n += float64(c)
		}
		norm = n * (n - 1) / 2
	}
	if norm == 0 {
		return 0, fmt.Errorf("%s: %w: zero normalizer", tp, ErrUndefined)
	}
	return prod / norm, nil
}

// Lineages builds a tree from a list of taxonomic annotations
// and returns the indicated statistic.
// Annotations without the root marker are ignored.
func Lineages(taxa []string, tp Type, wtd bool) (float64, error) {
	t := taxtree.New()
	for _, tax := range taxa {
		if !taxtree.HasRoot(tax) {
			continue
		}
		ln := taxtree.Normalize(tax)
		if len(ln) == 0 {
			continue
		}
		if err := t.Insert(ln, tp.PresentAbsent()); err != nil {
			return 0, err
		}
	}
	t.Aggregate()
	return Compute(t, tp, wtd)
}
