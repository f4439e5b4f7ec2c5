// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package taxtree_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/js-arias/metataxa/taxtree"
)

func TestNormalize(t *testing.T) {
	tests := map[string][]string{
		"root;A;B":                                {"root", "A", "B"},
		"root; Bacteria ;; Proteobacteria (1224)": {"root", "Bacteria", "Proteobacteria"},
		" root;Bacteria;Escherichia coli (562) ":  {"root", "Bacteria", "Escherichia coli"},
		"root;Bacteria (strain X)":                {"root", "Bacteria (strain X)"},
		"root;Bacteria;()":                     {"root", "Bacteria", "()"},
		";;":                                   nil,
	}
	for in, want := range tests {
		if got := taxtree.Normalize(in); !reflect.DeepEqual(got, want) {
			t.Errorf("normalize %q: got %q, want %q", in, got, want)
		}
	}

	if k := taxtree.Key("root; A ;B (12)"); k != "root;A;B" {
		t.Errorf("key: got %q, want %q", k, "root;A;B")
	}
	if taxtree.HasRoot("Bacteria;Proteobacteria") {
		t.Errorf("has root: lineage without marker accepted")
	}
}

func TestInsert(t *testing.T) {
	tr := newTree(t, false, "root;A;B", "root;A;B", "root;A;C")

	root := tr.Root()
	if root.Name() != "root" || root.Depth() != 0 {
		t.Errorf("root: got %q at depth %d", root.Name(), root.Depth())
	}
	a := root.Child("A")
	if a == nil {
		t.Fatalf("taxon %q not found", "A")
	}
	if a.Depth() != 1 {
		t.Errorf("taxon %q: depth: got %d, want %d", "A", a.Depth(), 1)
	}
	if a.Count() != 0 {
		t.Errorf("taxon %q: count: got %d, want %d", "A", a.Count(), 0)
	}
	if c := a.Child("B").Count(); c != 2 {
		t.Errorf("taxon %q: count: got %d, want %d", "B", c, 2)
	}
	if c := a.Child("C").Count(); c != 1 {
		t.Errorf("taxon %q: count: got %d, want %d", "C", c, 1)
	}
	if d := a.Child("C").Depth(); d != 2 {
		t.Errorf("taxon %q: depth: got %d, want %d", "C", d, 2)
	}

	if tot := tr.Aggregate(); tot != 3 {
		t.Errorf("aggregate: got %d, want %d", tot, 3)
	}
	if s := a.SubtreeCount(); s != 3 {
		t.Errorf("taxon %q: subtree: got %d, want %d", "A", s, 3)
	}
	if c := tr.Counts(); !reflect.DeepEqual(c, []int{2, 1}) {
		t.Errorf("counts: got %v, want %v", c, []int{2, 1})
	}
	if l := tr.Len(); l != 4 {
		t.Errorf("len: got %d, want %d", l, 4)
	}
}

func TestPresentAbsent(t *testing.T) {
	once := newTree(t, true, "root;A;B", "root;A;C")
	twice := newTree(t, true, "root;A;B", "root;A;B", "root;A;C", "root;A;C")

	if !reflect.DeepEqual(once.Lineages(), twice.Lineages()) {
		t.Errorf("present-absent: got %v, want %v", twice.Lineages(), once.Lineages())
	}

	single := newTree(t, false, "root;A;B")
	double := newTree(t, false, "root;A;B", "root;A;B")
	b1 := single.Root().Child("A").Child("B").Count()
	b2 := double.Root().Child("A").Child("B").Count()
	if b2 != 2*b1 {
		t.Errorf("cumulative: got %d, want %d", b2, 2*b1)
	}
}

func TestConservation(t *testing.T) {
	tr := newTree(t, false,
		"root;Bacteria",
		"root;Bacteria;Proteobacteria;Gammaproteobacteria",
		"root;Bacteria;Proteobacteria;Gammaproteobacteria",
		"root;Bacteria;Firmicutes",
		"root;Archaea;Euryarchaeota",
		"root",
	)

	sum := 0
	tr.Walk(func(_ []string, n *taxtree.Node) {
		sum += n.Count()
	})
	if tot := tr.Aggregate(); tot != sum {
		t.Errorf("aggregate: got %d, want %d", tot, sum)
	}
	if tr.Total() != 6 {
		t.Errorf("total: got %d, want %d", tr.Total(), 6)
	}

	var check func(n *taxtree.Node)
	check = func(n *taxtree.Node) {
		s := n.Count()
		for _, c := range n.Children() {
			if c.Depth() != n.Depth()+1 {
				t.Errorf("taxon %q: depth: got %d, want %d", c.Name(), c.Depth(), n.Depth()+1)
			}
			s += c.SubtreeCount()
			check(c)
		}
		if s != n.SubtreeCount() {
			t.Errorf("taxon %q: subtree: got %d, want %d", n.Name(), n.SubtreeCount(), s)
		}
	}
	check(tr.Root())
}

func TestSaveRestore(t *testing.T) {
	tr := newTree(t, false, "root;A;B", "root;A;B", "root;A;C")
	tr.Save()

	tr.Walk(func(_ []string, n *taxtree.Node) {
		n.SetCount(0)
	})
	if tot := tr.Aggregate(); tot != 0 {
		t.Errorf("aggregate: got %d, want %d", tot, 0)
	}

	tr.Restore()
	if tot := tr.Aggregate(); tot != 3 {
		t.Errorf("aggregate after restore: got %d, want %d", tot, 3)
	}
	if a := tr.Root().Child("A").Child("B").Actual(); a != 2 {
		t.Errorf("actual: got %d, want %d", a, 2)
	}
}

func TestInvalidLineage(t *testing.T) {
	tr := taxtree.New()
	if err := tr.Insert(nil, false); !errors.Is(err, taxtree.ErrInvalidLineage) {
		t.Errorf("insert: got error %v, want %v", err, taxtree.ErrInvalidLineage)
	}
	if err := tr.Add("Bacteria;Proteobacteria", false); err != nil {
		t.Errorf("add: unexpected error: %v", err)
	}
	if !tr.IsEmpty() {
		t.Errorf("add: lineage without root marker added")
	}
	if tr.Len() != 0 {
		t.Errorf("len: got %d, want %d", tr.Len(), 0)
	}
	if c := tr.Counts(); len(c) != 0 {
		t.Errorf("counts: got %v, want none", c)
	}

	invalid := [][]string{
		{"", "A"},
		{"root", "", "B"},
		{"root", "A", "  "},
	}
	for _, ln := range invalid {
		if err := tr.Insert(ln, false); !errors.Is(err, taxtree.ErrInvalidLineage) {
			t.Errorf("insert %q: got error %v, want %v", ln, err, taxtree.ErrInvalidLineage)
		}
	}
	if !tr.IsEmpty() {
		t.Errorf("insert: invalid lineage added")
	}
	if total := tr.Aggregate(); total != 0 {
		t.Errorf("total: got %d, want %d", total, 0)
	}

	// an invalid lineage does not modify a tree
	tr = newTree(t, false, "root;A;B")
	if err := tr.Insert([]string{"", "A"}, false); err == nil {
		t.Errorf("insert: expecting error")
	}
	if name := tr.Root().Name(); name != "root" {
		t.Errorf("root: got %q, want %q", name, "root")
	}
	if total := tr.Aggregate(); total != 1 {
		t.Errorf("total: got %d, want %d", total, 1)
	}
	if l := tr.Len(); l != 3 {
		t.Errorf("len: got %d, want %d", l, 3)
	}
}

func TestLineages(t *testing.T) {
	tr := newTree(t, false, "root;A;B", "root;A", "root;C")

	want := []taxtree.Lineage{
		{Path: []string{"root"}, Count: 0},
		{Path: []string{"root", "A"}, Count: 1},
		{Path: []string{"root", "A", "B"}, Count: 1},
		{Path: []string{"root", "C"}, Count: 1},
	}
	if got := tr.Lineages(); !reflect.DeepEqual(got, want) {
		t.Errorf("lineages: got %v, want %v", got, want)
	}
}

func TestNewick(t *testing.T) {
	tests := []struct {
		name    string
		lineage []string
		want    string
	}{
		{"empty", nil, ";"},
		{"single", []string{"root;A;B"}, "B;"},
		{"cherry", []string{"root;A;B", "root;A;C"}, "(B:1,C:1);"},
		{"chain", []string{"root;A;B;D", "root;C"}, "(D:3,C:1);"},
		{"internal", []string{"root;A;B", "root;A;C", "root;A"}, "(A:1,B:1,C:1);"},
		{"names", []string{"root;E coli", "root;X;E coli"}, "(E_coli:1,E_coli_2:2);"},
	}
	for _, test := range tests {
		tr := newTree(t, false, test.lineage...)
		if got := tr.Newick(); got != test.want {
			t.Errorf("%s: got %q, want %q", test.name, got, test.want)
		}
	}
}

func TestTimeTree(t *testing.T) {
	tr := newTree(t, false, "root;Bacteria;Escherichia", "root;Bacteria;Salmonella", "root;Archaea")
	c, err := tr.TimeTree("pwy")
	if err != nil {
		t.Fatalf("timetree: unexpected error: %v", err)
	}
	if c.Tree("pwy") == nil {
		t.Errorf("timetree: tree %q not found", "pwy")
	}

	single := newTree(t, false, "root;Bacteria")
	if _, err := single.TimeTree("single"); err == nil {
		t.Errorf("timetree: expecting error for a single terminal")
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
