// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/js-arias/phytree/tree"
)

func TestNewick(t *testing.T) {
	data := "(Struthio_camelus:0.95, (Rhea_americana:0.7, Casuarius_casuarius:0.65)98:0.25);"

	c, err := tree.Newick(strings.NewReader(data), "ratites")
	if err != nil {
		t.Fatalf("unable to read newick data: %v", err)
	}
	testEqualTrees(t, c.Tree("ratites"), ratiteTree(t))
}

func TestNewickMultiple(t *testing.T) {
	data := `(Struthio_camelus:0.95,(Rhea_americana:0.7,Casuarius_casuarius:0.65)98:0.25);
[a quoted and commented copy]
('Struthio camelus':0.95,('Rhea americana':0.7,'Casuarius casuarius':0.65)98:0.25);
`

	c, err := tree.Newick(strings.NewReader(data), "ratites")
	if err != nil {
		t.Fatalf("unable to read newick data: %v", err)
	}
	if ls := c.Names(); len(ls) != 2 {
		t.Fatalf("names: got %v, want 2 trees", ls)
	}
	testEqualTrees(t, c.Tree("ratites"), ratiteTree(t))

	want := ratiteTree(t)
	got := c.Tree("ratites.1")
	if got == nil {
		t.Fatalf("tree %q: tree not found", "ratites.1")
	}
	for _, id := range want.Nodes() {
		if tax := got.Taxon(id); tax != want.Taxon(id) {
			t.Errorf("tree %q: node %d: taxon: got %q, want %q", "ratites.1", id, tax, want.Taxon(id))
		}
	}
}

func TestNewickWrite(t *testing.T) {
	tr := ratiteTree(t)

	var buf bytes.Buffer
	if err := tr.Newick(&buf); err != nil {
		t.Fatalf("unable to write newick data: %v", err)
	}
	want := "(Struthio_camelus:0.950000,(Rhea_americana:0.700000,Casuarius_casuarius:0.650000)98:0.250000);\n"
	if got := buf.String(); got != want {
		t.Errorf("newick output:\ngot  %q\nwant %q", got, want)
	}

	c, err := tree.Newick(&buf, "ratites")
	if err != nil {
		t.Fatalf("unable to read newick data: %v", err)
	}
	testEqualTrees(t, c.Tree("ratites"), tr)
}

func TestNewickErrors(t *testing.T) {
	data := map[string]string{
		"empty input":            "",
		"no parenthesis":         "Struthio_camelus:0.95;",
		"unclosed parenthesis":   "(Struthio_camelus:0.95,(Rhea_americana:0.7;",
		"no semicolon":           "(Struthio_camelus:0.95,Rhea_americana:0.7)",
		"unclosed quote":         "('Struthio camelus:0.95,Rhea_americana:0.7);",
		"invalid branch length":  "(Struthio_camelus:xx,Rhea_americana:0.7);",
		"negative branch length": "(Struthio_camelus:-0.95,Rhea_americana:0.7);",
	}

	for name, d := range data {
		if _, err := tree.Newick(strings.NewReader(d), "ratites"); err == nil {
			t.Errorf("%s: expecting error", name)
		}
	}
}
