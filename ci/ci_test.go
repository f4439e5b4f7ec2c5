// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package ci_test

import (
	"math/rand/v2"
	"reflect"
	"testing"

	"github.com/js-arias/metataxa/ci"
	"github.com/js-arias/metataxa/delta"
	"github.com/js-arias/metataxa/sample"
	"github.com/js-arias/metataxa/taxtree"
)

var lineages = []string{
	"root;Bacteria;Proteobacteria;Escherichia",
	"root;Bacteria;Proteobacteria;Escherichia",
	"root;Bacteria;Proteobacteria;Salmonella",
	"root;Bacteria;Firmicutes;Bacillus",
	"root;Bacteria;Firmicutes;Bacillus",
	"root;Bacteria;Firmicutes;Clostridium",
	"root;Archaea;Euryarchaeota;Methanococcus",
	"root;Archaea;Euryarchaeota",
}

func TestFullRetain(t *testing.T) {
	s := ci.NewSeed(1)
	s.Retain = 1
	s.Resamples = 25

	for _, tp := range delta.Types {
		for _, wtd := range []bool{false, true} {
			tr := newTree(t, tp.PresentAbsent(), lineages...)
			in, err := s.Estimate(tr, tp, wtd)
			if err != nil {
				t.Fatalf("%s (wtd=%v): unexpected error: %v", tp, wtd, err)
			}

			want, err := delta.Lineages(lineages, tp, wtd)
			if err != nil {
				t.Fatalf("%s (wtd=%v): unexpected error: %v", tp, wtd, err)
			}
			if in.Value != want || in.Low != want || in.High != want {
				t.Errorf("%s (wtd=%v): got %v, want degenerate interval at %.6f", tp, wtd, in, want)
			}
		}
	}
}

func TestInterval(t *testing.T) {
	s := ci.NewSeed(42)
	s.Resamples = 200
	s.Retain = 0.5

	tr := newTree(t, false, lineages...)
	in, err := s.Estimate(tr, delta.Delta, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.Low > in.High {
		t.Errorf("interval: low %.6f greater than high %.6f", in.Low, in.High)
	}
	if in.Low == in.High {
		t.Errorf("interval: unexpected degenerate interval %v", in)
	}

	want, _ := delta.Lineages(lineages, delta.Delta, false)
	if in.Value != want {
		t.Errorf("value: got %.6f, want %.6f", in.Value, want)
	}

	// the tree is restored after the estimation
	ref := newTree(t, false, lineages...)
	if !reflect.DeepEqual(tr.Lineages(), ref.Lineages()) {
		t.Errorf("tree not restored: got %v, want %v", tr.Lineages(), ref.Lineages())
	}
	if tr.Total() != len(lineages) {
		t.Errorf("tree total: got %d, want %d", tr.Total(), len(lineages))
	}

	// a wider confidence level produces a wider interval
	w := ci.NewSeed(42)
	w.Resamples = 200
	w.Retain = 0.5
	w.Level = 0.99
	wi, err := w.Estimate(newTree(t, false, lineages...), delta.Delta, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if wi.High-wi.Low <= in.High-in.Low {
		t.Errorf("interval at 0.99 %v not wider than at 0.95 %v", wi, in)
	}
}

func TestSeed(t *testing.T) {
	a := ci.New(rand.New(rand.NewPCG(7, 11)))
	b := ci.New(rand.New(rand.NewPCG(7, 11)))

	ia, err := a.Estimate(newTree(t, false, lineages...), delta.Star, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ib, err := b.Estimate(newTree(t, false, lineages...), delta.Star, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ia != ib {
		t.Errorf("same seed: got %v and %v", ia, ib)
	}
}

func TestInvalid(t *testing.T) {
	tr := newTree(t, false, lineages...)

	s := ci.NewSeed(1)
	s.Resamples = 0
	if _, err := s.Estimate(tr, delta.Delta, false); err == nil {
		t.Errorf("resamples: expecting error")
	}

	s = ci.NewSeed(1)
	s.Retain = 0
	if _, err := s.Estimate(tr, delta.Delta, false); err == nil {
		t.Errorf("retain: expecting error")
	}

	s = ci.NewSeed(1)
	s.Level = 1
	if _, err := s.Estimate(tr, delta.Delta, false); err == nil {
		t.Errorf("level: expecting error")
	}
}

func TestPathway(t *testing.T) {
	orfs := make(map[string]string)
	var ids []string
	for i, l := range lineages {
		id := "orf" + string(rune('a'+i))
		orfs[id] = l
		ids = append(ids, id)
	}
	smp := sample.FromMaps(orfs, map[string][]string{"P": ids})

	s := ci.NewSeed(3)
	s.Retain = 1
	in, err := s.Pathway(smp, "P", delta.Plus, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want, _ := delta.Lineages(lineages, delta.Plus, false)
	if in.Value != want || in.Low != want || in.High != want {
		t.Errorf("pathway: got %v, want %.6f", in, want)
	}

	in, err = s.Pathway(smp, "UNKNOWN", delta.Delta, false)
	if err != nil {
		t.Fatalf("unknown pathway: unexpected error: %v", err)
	}
	if (in != ci.Interval{}) {
		t.Errorf("unknown pathway: got %v, want zero interval", in)
	}
}

func newTree(t testing.TB, presentAbsent bool, lineages ...string) *taxtree.Tree {
	t.Helper()

	tr := taxtree.New()
	for _, l := range lineages {
		if err := tr.Add(l, presentAbsent); err != nil {
			t.Fatalf("add %q: %v", l, err)
		}
	}
	return tr
}
