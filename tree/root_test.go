// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree_test

import (
	"math"
	"strings"
	"testing"

	"github.com/js-arias/phytree/tree"
)

func TestReroot(t *testing.T) {
	data := "(((Rhea_americana:1,Casuarius_casuarius:2)75:3,Apteryx_australis:4)50:5,Struthio_camelus:6);"
	c, err := tree.Newick(strings.NewReader(data), "ratites")
	if err != nil {
		t.Fatalf("unable to read newick data: %v", err)
	}
	tr := c.Tree("ratites")

	dist := termDistances(tr)
	if err := tr.Reroot("Rhea americana"); err != nil {
		t.Fatalf("unable to reroot tree: %v", err)
	}

	desc := tr.Children(tr.Root())
	if len(desc) != 2 {
		t.Fatalf("root children: got %d, want %d", len(desc), 2)
	}
	og, ok := tr.TaxNode("Rhea americana")
	if !ok {
		t.Fatalf("taxon %q not found", "Rhea americana")
	}
	if p := tr.Parent(og); p != tr.Root() {
		t.Errorf("taxon %q: parent: got %d, want the root", "Rhea americana", p)
	}
	if v := tr.BrLen(og); v != 1 {
		t.Errorf("taxon %q: branch length: got %.6f, want %.6f", "Rhea americana", v, 1.0)
	}
	sister := desc[0]
	if sister == og {
		sister = desc[1]
	}
	if v := tr.BrLen(sister); v != 0 {
		t.Errorf("sister branch length: got %.6f, want %.6f", v, 0.0)
	}
	if l := tr.Label(sister); l != "75" {
		t.Errorf("sister label: got %q, want %q", l, "75")
	}

	// path lengths between terminals must be conserved
	for p, d := range termDistances(tr) {
		if math.Abs(d-dist[p]) > 1e-10 {
			t.Errorf("distance %q: got %.6f, want %.6f", p, d, dist[p])
		}
	}

	if err := tr.Rebalance(); err != nil {
		t.Fatalf("unable to rebalance tree: %v", err)
	}
	testRootSplit(t, tr, 1.0)
}

func TestRerootErrors(t *testing.T) {
	tr := ratiteTree(t)
	if err := tr.Reroot("Apteryx australis"); err == nil {
		t.Errorf("rerooting on an unknown taxon: expecting error")
	}

	single := tree.New("single terminal")
	if _, err := single.Add(single.Root(), 1, "Rhea americana"); err != nil {
		t.Fatalf("unable to add terminal: %v", err)
	}
	if err := single.Reroot("Rhea americana"); err == nil {
		t.Errorf("rerooting a single terminal tree: expecting error")
	}
}

// termDistances returns the sum of branch lengths
// of the path between each pair of terminals.
func termDistances(tr *tree.Tree) map[string]float64 {
	terms := tr.Terms()
	dist := make(map[string]float64)
	for i, tx1 := range terms {
		n1, _ := tr.TaxNode(tx1)
		anc := make(map[int]float64)
		var sum float64
		for n := n1; n != -1; n = tr.Parent(n) {
			anc[n] = sum
			sum += tr.BrLen(n)
		}
		for _, tx2 := range terms[i+1:] {
			n2, _ := tr.TaxNode(tx2)
			sum = 0
			for n := n2; n != -1; n = tr.Parent(n) {
				if d, ok := anc[n]; ok {
					dist[tx1+" - "+tx2] = sum + d
					break
				}
				sum += tr.BrLen(n)
			}
		}
	}
	return dist
}
