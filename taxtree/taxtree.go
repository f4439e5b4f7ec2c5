// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package taxtree implements a taxonomy tree
// built from lineage strings
// with observation counts at each taxon.
//
// A tree is built for a single query,
// its counts are aggregated
// (see Tree.Aggregate)
// and then used to calculate taxonomic distinctness.
package taxtree

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidLineage is returned when an empty lineage
// is inserted into a tree.
var ErrInvalidLineage = errors.New("invalid lineage")

// A Node is a taxon in a taxonomy tree.
type Node struct {
	name  string
	depth int

	count   int // observations at this exact taxon
	actual  int // saved copy of count
	subtree int // count at this taxon and all of its descendants

	children []*Node
	index    map[string]*Node
}

func newNode(name string, depth int) *Node {
	return &Node{
		name:  name,
		depth: depth,
		index: make(map[string]*Node),
	}
}

// Name returns the name of the taxon.
func (n *Node) Name() string {
	return n.name
}

// Depth returns the distance of the node to the root.
func (n *Node) Depth() int {
	return n.depth
}

// Count returns the number of observations
// of the taxon.
func (n *Node) Count() int {
	return n.count
}

// SetCount sets the number of observations
// of the taxon.
func (n *Node) SetCount(c int) {
	if c < 0 {
		c = 0
	}
	n.count = c
}

// Actual returns the count stored
// the last time the tree was saved.
func (n *Node) Actual() int {
	return n.actual
}

// SubtreeCount returns the number of observations
// of the taxon and all of its descendants,
// as calculated in the last aggregation.
func (n *Node) SubtreeCount() int {
	return n.subtree
}

// Children returns the descendants of the node
// in insertion order.
// The returned slice should not be modified.
func (n *Node) Children() []*Node {
	return n.children
}

// Child returns the descendant with the given name.
func (n *Node) Child(name string) *Node {
	return n.index[name]
}

func (n *Node) child(name string) *Node {
	if c, ok := n.index[name]; ok {
		return c
	}
	c := newNode(name, n.depth+1)
	n.children = append(n.children, c)
	n.index[name] = c
	return c
}

// A Tree is a taxonomy tree.
type Tree struct {
	root *Node
}

// New creates a new empty tree.
func New() *Tree {
	return &Tree{
		root: newNode("", 0),
	}
}

// Root returns the root node of the tree.
// The root takes the name of the first taxon
// of the inserted lineages.
func (t *Tree) Root() *Node {
	return t.root
}

// Insert adds a lineage to the tree,
// creating any missing taxon.
//
// Only the terminal taxon of the lineage records the observation.
// If presentAbsent is true,
// the count of the terminal is set to 1,
// otherwise the count is incremented.
//
// A lineage with an empty taxon name is invalid,
// and the tree is not modified.
func (t *Tree) Insert(lineage []string, presentAbsent bool) error {
	if len(lineage) == 0 {
		return fmt.Errorf("%w: empty lineage", ErrInvalidLineage)
	}
	for i, name := range lineage {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("%w: empty taxon name at position %d", ErrInvalidLineage, i)
		}
	}

	n := t.root
	n.name = lineage[0]
	for _, name := range lineage[1:] {
		n = n.child(name)
	}

	if presentAbsent {
		n.count = 1
		return nil
	}
	n.count++
	return nil
}

// Add adds a raw taxonomic annotation to the tree.
// Annotations without the root marker are ignored.
func (t *Tree) Add(tax string, presentAbsent bool) error {
	if !HasRoot(tax) {
		return nil
	}
	if err := t.Insert(Normalize(tax), presentAbsent); err != nil {
		return fmt.Errorf("taxon %q: %w", tax, err)
	}
	return nil
}

// Aggregate updates the subtree count of each node
// and returns the total count of the tree.
func (t *Tree) Aggregate() int {
	return aggregate(t.root)
}

func aggregate(n *Node) int {
	sum := n.count
	for _, c := range n.children {
		sum += aggregate(c)
	}
	n.subtree = sum
	return sum
}

// Total returns the total count of the tree
// as calculated in the last aggregation.
func (t *Tree) Total() int {
	return t.root.subtree
}

// Counts returns the counts of the nodes with observations
// in pre-order.
// Nodes without observations are excluded.
func (t *Tree) Counts() []int {
	var counts []int
	t.Walk(func(_ []string, n *Node) {
		if n.count != 0 {
			counts = append(counts, n.count)
		}
	})
	return counts
}

// Save stores the current count of each node,
// so it can be used as a baseline
// when counts are modified.
func (t *Tree) Save() {
	t.Walk(func(_ []string, n *Node) {
		n.actual = n.count
	})
}

// Restore sets the count of each node
// to the value stored in the last save.
func (t *Tree) Restore() {
	t.Walk(func(_ []string, n *Node) {
		n.count = n.actual
	})
}

// Len returns the number of nodes in the tree.
// An empty tree has length 0.
func (t *Tree) Len() int {
	if t.IsEmpty() {
		return 0
	}
	var l int
	t.Walk(func(_ []string, _ *Node) {
		l++
	})
	return l
}

// IsEmpty returns true if no lineage was added to the tree.
func (t *Tree) IsEmpty() bool {
	return t.root.name == "" && len(t.root.children) == 0
}

// Walk visits each node of the tree in pre-order
// (parents before children,
// children in insertion order).
// The path is the lineage from the root
// up to and including the node;
// it is reused between calls.
func (t *Tree) Walk(fn func(path []string, n *Node)) {
	if t.IsEmpty() {
		return
	}
	walk(t.root, nil, fn)
}

func walk(n *Node, path []string, fn func([]string, *Node)) {
	path = append(path, n.name)
	fn(path, n)
	for _, c := range n.children {
		walk(c, path, fn)
	}
}

// A Lineage is a taxon of a tree
// with its full lineage and its count.
type Lineage struct {
	Path  []string
	Count int
}

// Lineages returns all the taxa in the tree
// in pre-order.
func (t *Tree) Lineages() []Lineage {
	var ls []Lineage
	t.Walk(func(path []string, n *Node) {
		p := make([]string, len(path))
		copy(p, path)
		ls = append(ls, Lineage{
			Path:  p,
			Count: n.count,
		})
	})
	return ls
}
