// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package sample implements a metagenomic sample
// as a pair of maps:
// from ORFs to taxonomic annotations,
// and from metabolic pathways to ORFs.
//
// A sample is used to build taxonomy trees
// restricted to the taxa associated with a pathway.
package sample

import (
	"slices"

	"github.com/js-arias/metataxa/taxtree"
)

// Sample is a collection of ORF annotations
// and pathways.
type Sample struct {
	taxon map[string]string   // ORF -> taxonomy
	pwy   map[string][]string // pathway -> ORFs
}

// New creates a new empty sample.
func New() *Sample {
	return &Sample{
		taxon: make(map[string]string),
		pwy:   make(map[string][]string),
	}
}

// FromMaps creates a sample from an ORF to taxonomy map
// and a pathway to ORF list map.
// Values are added as with AddORF and AddPathway,
// so annotations without the root marker
// and repeated ORFs in a pathway are ignored.
func FromMaps(orfTaxon map[string]string, pwyORFs map[string][]string) *Sample {
	s := New()
	for o, tax := range orfTaxon {
		s.AddORF(o, tax)
	}
	for p, orfs := range pwyORFs {
		s.AddPathway(p, orfs)
	}
	return s
}

// AddORF sets the taxonomic annotation of an ORF.
// Annotations without the root marker are ignored.
// The trailing taxon ID is removed.
func (s *Sample) AddORF(orf, tax string) {
	if orf == "" || !taxtree.HasRoot(tax) {
		return
	}
	s.taxon[orf] = taxtree.StripID(tax)
}

// AddPathway sets the ORFs of a pathway.
// Repeated ORFs are ignored.
func (s *Sample) AddPathway(pwy string, orfs []string) {
	if pwy == "" {
		return
	}
	seen := make(map[string]bool, len(orfs))
	ls := make([]string, 0, len(orfs))
	for _, o := range orfs {
		if o == "" || seen[o] {
			continue
		}
		seen[o] = true
		ls = append(ls, o)
	}
	s.pwy[pwy] = ls
}

// Taxon returns the taxonomic annotation of an ORF.
func (s *Sample) Taxon(orf string) string {
	return s.taxon[orf]
}

// NumTaxa returns the number of annotated ORFs.
func (s *Sample) NumTaxa() int {
	return len(s.taxon)
}

// Pathways returns the sorted list of pathways
// in the sample.
func (s *Sample) Pathways() []string {
	ls := make([]string, 0, len(s.pwy))
	for p := range s.pwy {
		ls = append(ls, p)
	}
	slices.Sort(ls)
	return ls
}

// HasPathway returns true if the pathway is defined
// in the sample.
func (s *Sample) HasPathway(pwy string) bool {
	_, ok := s.pwy[pwy]
	return ok
}

// ORFs returns the number of ORFs of a pathway.
func (s *Sample) ORFs(pwy string) int {
	return len(s.pwy[pwy])
}

// Lineages returns the valid taxonomic annotations
// of the ORFs of a pathway.
// ORFs without annotations are ignored.
func (s *Sample) Lineages(pwy string) []string {
	var ls []string
	for _, o := range s.pwy[pwy] {
		tax, ok := s.taxon[o]
		if !ok || !taxtree.HasRoot(tax) {
			continue
		}
		ls = append(ls, tax)
	}
	return ls
}

// All returns the valid taxonomic annotations
// of all the ORFs in the sample,
// sorted by ORF.
func (s *Sample) All() []string {
	orfs := make([]string, 0, len(s.taxon))
	for o := range s.taxon {
		orfs = append(orfs, o)
	}
	slices.Sort(orfs)

	ls := make([]string, 0, len(orfs))
	for _, o := range orfs {
		tax := s.taxon[o]
		if !taxtree.HasRoot(tax) {
			continue
		}
		ls = append(ls, tax)
	}
	return ls
}

// Tree returns a taxonomy tree
// with the taxa associated with the ORFs of a pathway.
// If presentAbsent is true,
// each taxon is counted only once.
//
// If the pathway is not in the sample,
// it returns an empty tree.
func (s *Sample) Tree(pwy string, presentAbsent bool) *taxtree.Tree {
	t := taxtree.New()
	for _, tax := range s.Lineages(pwy) {
		ln := taxtree.Normalize(tax)
		if len(ln) == 0 {
			continue
		}
		if err := t.Insert(ln, presentAbsent); err != nil {
			// invalid lineages are not part of the tree
			continue
		}
	}
	return t
}

// NumSpecies returns the number of distinct lineages
// associated with the ORFs of a pathway.
func (s *Sample) NumSpecies(pwy string) int {
	species := make(map[string]bool)
	for _, tax := range s.Lineages(pwy) {
		species[taxtree.Key(tax)] = true
	}
	return len(species)
}
