// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree_test

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/js-arias/phytree/tree"
)

func TestRebalance(t *testing.T) {
	data := "(Struthio_camelus:0.8,(Rhea_americana:0.7,Casuarius_casuarius:0.65)98:0.2)100;"
	c, err := tree.Newick(strings.NewReader(data), "ratites")
	if err != nil {
		t.Fatalf("unable to read newick data: %v", err)
	}
	tr := c.Tree("ratites")

	if err := tr.Rebalance(); err != nil {
		t.Fatalf("unable to rebalance tree: %v", err)
	}
	testRootSplit(t, tr, 1.0)
	for _, id := range tr.Children(tr.Root()) {
		if v := tr.BrLen(id); math.Abs(v-0.5) > 1e-10 {
			t.Errorf("node %d: branch length: got %.6f, want %.6f", id, v, 0.5)
		}
	}

	// branches away from the root must be untouched
	id, _ := tr.TaxNode("Rhea americana")
	if v := tr.BrLen(id); v != 0.7 {
		t.Errorf("taxon %q: branch length: got %.6f, want %.6f", "Rhea americana", v, 0.7)
	}
}

func TestRebalanceMultifurcating(t *testing.T) {
	tr := tree.New("polytomy")
	taxa := []struct {
		name  string
		brLen float64
	}{
		{"Rhea americana", 1.0},
		{"Struthio camelus", 2.0},
		{"Casuarius casuarius", 3.0},
	}
	for _, tx := range taxa {
		if _, err := tr.Add(tr.Root(), tx.brLen, tx.name); err != nil {
			t.Fatalf("unable to add terminal: %v", err)
		}
	}

	if err := tr.Rebalance(); err != nil {
		t.Fatalf("unable to rebalance tree: %v", err)
	}
	testRootSplit(t, tr, 6.0)
	for _, id := range tr.Children(tr.Root()) {
		if v := tr.BrLen(id); math.Abs(v-2.0) > 1e-10 {
			t.Errorf("node %d: branch length: got %.6f, want %.6f", id, v, 2.0)
		}
	}
}

func TestRebalanceIdempotence(t *testing.T) {
	tr := ratiteTree(t)
	if err := tr.Rebalance(); err != nil {
		t.Fatalf("unable to rebalance tree: %v", err)
	}

	want := make(map[int]float64, tr.Len())
	for _, id := range tr.Nodes() {
		want[id] = tr.BrLen(id)
	}

	if err := tr.Rebalance(); err != nil {
		t.Fatalf("unable to rebalance tree: %v", err)
	}
	for _, id := range tr.Nodes() {
		if v := tr.BrLen(id); math.Abs(v-want[id]) > 1e-10 {
			t.Errorf("node %d: branch length: got %.6f, want %.6f", id, v, want[id])
		}
	}
}

func TestRebalanceDegenerate(t *testing.T) {
	tr := tree.New("single node")
	err := tr.Rebalance()
	if err == nil {
		t.Fatalf("rebalancing a single node tree: expecting error")
	}
	if !errors.Is(err, tree.ErrInvalidTree) {
		t.Errorf("got error %q, want %q", err, tree.ErrInvalidTree)
	}
}

func TestRebalanceCollection(t *testing.T) {
	c := tree.NewCollection()
	for i := range 14 {
		tr := tree.New(fmt.Sprintf("tree-%d", i))
		in, err := tr.Add(tr.Root(), 0.1*float64(i+1), "")
		if err != nil {
			t.Fatalf("unable to add internal node: %v", err)
		}
		if _, err := tr.Add(in, 0.3*float64(i+1), "Rhea americana"); err != nil {
			t.Fatalf("unable to add terminal: %v", err)
		}
		if _, err := tr.Add(in, 0.4*float64(i+1), "Casuarius casuarius"); err != nil {
			t.Fatalf("unable to add terminal: %v", err)
		}
		if _, err := tr.Add(tr.Root(), 0.9*float64(i+1), "Struthio camelus"); err != nil {
			t.Fatalf("unable to add terminal: %v", err)
		}
		if err := c.Add(tr); err != nil {
			t.Fatalf("unable to add tree: %v", err)
		}
	}

	if err := c.Rebalance(0); err != nil {
		t.Fatalf("unable to rebalance collection: %v", err)
	}

	for _, name := range c.Names() {
		tr := c.Tree(name)
		var i int
		fmt.Sscanf(name, "tree-%d", &i)
		total := float64(i+1) * (0.1 + 0.9)
		testRootSplit(t, tr, total)

		// inner branches of each tree must be untouched
		id, _ := tr.TaxNode("Rhea americana")
		x := 0.3 * float64(i+1)
		if v := tr.BrLen(id); math.Abs(v-x) > 1e-10 {
			t.Errorf("tree %q: taxon %q: branch length: got %.6f, want %.6f", name, "Rhea americana", v, x)
		}
		id, _ = tr.TaxNode("Casuarius casuarius")
		x = 0.4 * float64(i+1)
		if v := tr.BrLen(id); math.Abs(v-x) > 1e-10 {
			t.Errorf("tree %q: taxon %q: branch length: got %.6f, want %.6f", name, "Casuarius casuarius", v, x)
		}
	}
}

func TestRebalanceCollectionCPU(t *testing.T) {
	// a negative worker number must behave as the default
	for _, cpu := range []int{-1, 1, 100} {
		c := tree.NewCollection()
		if err := c.Add(ratiteTree(t)); err != nil {
			t.Fatalf("unable to add tree: %v", err)
		}
		if err := c.Rebalance(cpu); err != nil {
			t.Fatalf("cpu %d: unable to rebalance collection: %v", cpu, err)
		}
		testRootSplit(t, c.Tree("ratites"), 0.95+0.25)
	}
}

func TestRebalanceCollectionError(t *testing.T) {
	c := tree.NewCollection()
	if err := c.Add(ratiteTree(t)); err != nil {
		t.Fatalf("unable to add tree: %v", err)
	}
	if err := c.Add(tree.New("single node")); err != nil {
		t.Fatalf("unable to add tree: %v", err)
	}

	err := c.Rebalance(0)
	if err == nil {
		t.Fatalf("rebalancing a collection with a degenerate tree: expecting error")
	}
	if !errors.Is(err, tree.ErrInvalidTree) {
		t.Errorf("got error %q, want %q", err, tree.ErrInvalidTree)
	}

	// the valid tree must be normalized
	testRootSplit(t, c.Tree("ratites"), 0.95+0.25)
}

// testRootSplit checks that the branch lengths
// of the root children are all equal,
// that their sum is the indicated total,
// and that the root label is empty.
func testRootSplit(t testing.TB, tr *tree.Tree, total float64) {
	t.Helper()

	desc := tr.Children(tr.Root())
	var sum float64
	for _, id := range desc {
		sum += tr.BrLen(id)
	}
	if math.Abs(sum-total) > 1e-10 {
		t.Errorf("tree %q: root branch lengths: got total %.6f, want %.6f", tr.Name(), sum, total)
	}

	want := total / float64(len(desc))
	for _, id := range desc {
		if v := tr.BrLen(id); math.Abs(v-want) > 1e-10 {
			t.Errorf("tree %q: node %d: branch length: got %.6f, want %.6f", tr.Name(), id, v, want)
		}
	}

	if l := tr.Label(tr.Root()); l != "" {
		t.Errorf("tree %q: root label: got %q, want an empty label", tr.Name(), l)
	}
}
