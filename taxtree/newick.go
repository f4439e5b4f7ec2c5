// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package taxtree

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/js-arias/timetree"
)

// Newick returns the tree in parenthetical format.
//
// Each rank is a branch of length one.
// Chains of taxa with a single descendant
// and without observations
// are collapsed into a single branch.
// A taxon with observations and descendants
// is represented as an additional terminal
// one rank below it.
func (t *Tree) Newick() string {
	if t.IsEmpty() {
		return ";"
	}

	var b strings.Builder
	names := make(map[string]int)
	root := t.root
	for len(root.children) == 1 && root.count == 0 {
		root = root.children[0]
	}
	if len(root.children) == 0 {
		b.WriteString(label(root.name, names))
	} else {
		writeChildren(&b, root, names)
	}
	b.WriteString(";")
	return b.String()
}

func writeChildren(b *strings.Builder, n *Node, names map[string]int) {
	b.WriteString("(")
	first := true
	if n.count > 0 {
		fmt.Fprintf(b, "%s:1", label(n.name, names))
		first = false
	}
	for _, c := range n.children {
		if !first {
			b.WriteString(",")
		}
		first = false

		ln := 1
		for len(c.children) == 1 && c.count == 0 {
			c = c.children[0]
			ln++
		}
		if len(c.children) == 0 {
			b.WriteString(label(c.name, names))
		} else {
			writeChildren(b, c, names)
		}
		b.WriteString(":" + strconv.Itoa(ln))
	}
	b.WriteString(")")
}

// Label returns a taxon name valid as a newick label.
// Repeated names are made unique
// by adding a numeric suffix.
func label(name string, names map[string]int) string {
	name = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '(', ')', '[', ']', ':', ';', ',', '\'', '"', '\t':
			return '_'
		}
		return r
	}, name)

	names[name]++
	if c := names[name]; c > 1 {
		return name + "_" + strconv.Itoa(c)
	}
	return name
}

// TimeTree returns the tree as a collection
// with a single time-calibrated tree
// with the given name.
// Each rank is considered a million year.
func (t *Tree) TimeTree(name string) (*timetree.Collection, error) {
	terms := 0
	t.Walk(func(_ []string, n *Node) {
		if len(n.children) == 0 || n.count > 0 {
			terms++
		}
	})
	if terms < 2 {
		return nil, fmt.Errorf("tree %q: expecting at least two terminals", name)
	}

	c, err := timetree.Newick(strings.NewReader(t.Newick()), name, 0)
	if err != nil {
		return nil, fmt.Errorf("tree %q: %v", name, err)
	}
	return c, nil
}
