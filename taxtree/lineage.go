// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package taxtree

import "strings"

// RootMarker is the token that must be present
// in a taxonomic annotation
// to be accepted as a lineage.
const RootMarker = "root"

// HasRoot returns true if a raw taxonomic annotation
// contains the root marker.
func HasRoot(tax string) bool {
	return strings.Contains(tax, RootMarker)
}

// Normalize returns the taxon names of a lineage string.
//
// A lineage string is a semicolon delimited list of taxon names,
// for example:
//
//	root;Bacteria;Proteobacteria;Gammaproteobacteria (1236)
//
// The trailing taxon ID between parenthesis
// (if any)
// is removed,
// spaces around each name are trimmed,
// and empty names are dropped.
func Normalize(tax string) []string {
	tax = StripID(tax)

	var ls []string
	for _, s := range strings.Split(tax, ";") {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		ls = append(ls, s)
	}
	return ls
}

// Key returns the canonical form of a lineage string,
// the normalized names joined by semicolons.
func Key(tax string) string {
	return strings.Join(Normalize(tax), ";")
}

// StripID removes a trailing numeric taxon ID
// in the form "(<digits>)"
// from a taxonomic annotation.
func StripID(tax string) string {
	tax = strings.TrimSpace(tax)
	if !strings.HasSuffix(tax, ")") {
		return tax
	}
	i := strings.LastIndexByte(tax, '(')
	if i < 0 {
		return tax
	}
	id := tax[i+1 : len(tax)-1]
	if id == "" {
		return tax
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return tax
		}
	}
	return strings.TrimSpace(tax[:i])
}
