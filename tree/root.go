// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree

import (
	"fmt"
)

// Reroot re-hangs a tree
// so the root will be located on the branch
// that connects the indicated outgroup terminal
// with the rest of the tree.
//
// The full length of the outgroup branch
// is kept on the outgroup side of the new root,
// and the sister branch is set to zero,
// so use Rebalance to get an even root split.
// Internal nodes that become redundant
// after the re-orientation
// (such as the old root in a bifurcating tree)
// are removed,
// and their branch lengths merged.
//
// Internal node labels are kept on their nodes,
// even for the nodes that change orientation
// on the path between the old root and the outgroup.
// As a label on such a node
// now closes the complement of its old bipartition,
// a support value stored in the label
// should be read as the support of the branch,
// not of the clade.
func (t *Tree) Reroot(outgroup string) error {
	id, ok := t.TaxNode(outgroup)
	if !ok {
		return fmt.Errorf("tree %q: taxon %q: not in tree", t.name, Canon(outgroup))
	}
	if len(t.taxa) < 2 {
		return fmt.Errorf("tree %q: %w: less than two terminals", t.name, ErrInvalidTree)
	}

	og := t.nodes[id]
	nt := New(t.name)
	if _, err := nt.Add(nt.root.id, og.brLen, og.taxon); err != nil {
		return err
	}
	if err := t.rehang(nt, nt.root.id, og.parent, og, 0); err != nil {
		return err
	}

	t.nodes = nt.nodes
	t.taxa = nt.taxa
	t.root = nt.root
	return nil
}

// rehang copies the sub-tree
// that starts at node n
// (as seen when coming from node prev)
// as a child of the node with ID parent
// in the tree nt,
// with a branch of length brLen.
// Nodes with a single remaining neighbor branch
// are removed,
// and their branch lengths merged.
func (t *Tree) rehang(nt *Tree, parent int, n, prev *node, brLen float64) error {
	var neigh []*node
	if n.parent != nil && n.parent != prev {
		neigh = append(neigh, n.parent)
	}
	for _, d := range n.desc {
		if d != prev {
			neigh = append(neigh, d)
		}
	}

	if len(neigh) == 0 {
		if n.taxon == "" {
			return fmt.Errorf("tree %q: %w: internal node without descendants", t.name, ErrInvalidTree)
		}
		_, err := nt.Add(parent, brLen, n.taxon)
		return err
	}

	// a node with a single neighbor branch
	// is redundant in the new orientation
	if len(neigh) == 1 {
		v := neigh[0]
		return t.rehang(nt, parent, v, n, brLen+branchLen(n, v))
	}

	id, err := nt.Add(parent, brLen, "")
	if err != nil {
		return err
	}
	nt.nodes[id].label = n.label
	for _, v := range neigh {
		if err := t.rehang(nt, id, v, n, branchLen(n, v)); err != nil {
			return err
		}
	}
	return nil
}

// branchLen returns the length of the branch
// between two neighbor nodes,
// regardless of its orientation.
func branchLen(n, v *node) float64 {
	if v.parent == n {
		return v.brLen
	}
	return n.brLen
}
