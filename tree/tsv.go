// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var headerFields = []string{
	"tree",
	"node",
	"parent",
	"brlen",
	"label",
	"taxon",
}

// ReadTSV reads a collection of trees from a TSV file.
//
// The TSV file must contain the following fields:
//
//   - tree, the name of the tree
//   - node, the ID of the node
//   - parent, the ID of the parent node
//     (-1 is used for the root)
//   - brlen, the length of the branch to the parent node
//   - label, the label of an internal node (can be empty)
//   - taxon, the taxon name of a terminal node (can be empty)
//
// Parent nodes must be defined before their descendants.
// Here is an example file:
//
//	# phylogenetic trees
//	tree	node	parent	brlen	label	taxon
//	tree-1	0	-1	0.000000
//	tree-1	1	0	0.950000		Struthio camelus
//	tree-1	2	0	0.250000	98
//	tree-1	3	2	0.700000		Rhea americana
//	tree-1	4	2	0.650000		Casuarius casuarius
func ReadTSV(r io.Reader) (*Collection, error) {
	tsv := csv.NewReader(r)
	tsv.Comma = '\t'
	tsv.Comment = '#'
	// label and taxon fields can be omitted
	tsv.FieldsPerRecord = -1

	head, err := tsv.Read()
	if err != nil {
		return nil, fmt.Errorf("while reading header: %v", err)
	}
	fields := make(map[string]int, len(head))
	for i, h := range head {
		h = strings.ToLower(h)
		fields[h] = i
	}
	for _, h := range headerFields {
		if h == "label" || h == "taxon" {
			continue
		}
		if _, ok := fields[h]; !ok {
			return nil, fmt.Errorf("expecting field %q", h)
		}
	}

	c := NewCollection()
	ids := make(map[string]map[int]int)
	labels := make(map[*Tree]map[int]string)
	for {
		row, err := tsv.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tsv.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}

		for _, h := range []string{"tree", "node", "parent", "brlen"} {
			if fields[h] >= len(row) {
				return nil, fmt.Errorf("on row %d: expecting field %q", ln, h)
			}
		}

		f := "tree"
		name := strings.ToLower(strings.Join(strings.Fields(row[fields[f]]), " "))
		if name == "" {
			continue
		}

		f = "node"
		id, err := strconv.Atoi(row[fields[f]])
		if err != nil {
			return nil, fmt.Errorf("on row %d: field %q: %v", ln, f, err)
		}

		f = "parent"
		pID, err := strconv.Atoi(row[fields[f]])
		if err != nil {
			return nil, fmt.Errorf("on row %d: field %q: %v", ln, f, err)
		}

		f = "brlen"
		brLen, err := strconv.ParseFloat(row[fields[f]], 64)
		if err != nil {
			return nil, fmt.Errorf("on row %d: field %q: %v", ln, f, err)
		}
		if brLen < 0 {
			return nil, fmt.Errorf("on row %d: field %q: %w: negative branch length", ln, f, ErrInvalidTree)
		}

		var label string
		if i, ok := fields["label"]; ok && i < len(row) {
			label = strings.Join(strings.Fields(row[i]), " ")
		}
		var taxon string
		if i, ok := fields["taxon"]; ok && i < len(row) {
			taxon = row[i]
		}

		t := c.Tree(name)
		nID := ids[name]
		if t == nil {
			if pID != -1 {
				return nil, fmt.Errorf("on row %d: tree %q: %w: root must be defined first", ln, name, ErrInvalidTree)
			}
			t = New(name)
			if err := c.Add(t); err != nil {
				return nil, fmt.Errorf("on row %d: %v", ln, err)
			}
			nID = map[int]int{id: t.Root()}
			ids[name] = nID
			if label != "" {
				lm := map[int]string{t.Root(): label}
				labels[t] = lm
			}
			continue
		}

		if _, dup := nID[id]; dup {
			return nil, fmt.Errorf("on row %d: tree %q: %w: node %d already defined", ln, name, ErrInvalidTree, id)
		}
		if pID == -1 {
			return nil, fmt.Errorf("on row %d: tree %q: %w: multiple root nodes", ln, name, ErrInvalidTree)
		}
		p, ok := nID[pID]
		if !ok {
			return nil, fmt.Errorf("on row %d: tree %q: %w: parent %d without definition", ln, name, ErrInvalidTree, pID)
		}

		nn, err := t.Add(p, brLen, taxon)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}
		nID[id] = nn
		if label != "" {
			lm := labels[t]
			if lm == nil {
				lm = make(map[int]string)
				labels[t] = lm
			}
			lm[nn] = label
		}
	}

	for t, lm := range labels {
		for id, label := range lm {
			n := t.nodes[id]
			if len(n.desc) == 0 {
				continue
			}
			n.label = label
		}
	}

	return c, nil
}

// TSV writes a collection of trees to a TSV file.
func (c *Collection) TSV(w io.Writer) error {
	tsv := csv.NewWriter(w)
	tsv.Comma = '\t'
	tsv.UseCRLF = true

	if err := tsv.Write(headerFields); err != nil {
		return fmt.Errorf("unable to write header: %v", err)
	}

	for _, name := range c.Names() {
		t := c.trees[name]
		for _, id := range t.Nodes() {
			n := t.nodes[id]
			p := -1
			if n.parent != nil {
				p = n.parent.id
			}
			row := []string{
				name,
				strconv.Itoa(id),
				strconv.Itoa(p),
				strconv.FormatFloat(n.brLen, 'f', 6, 64),
				n.label,
				n.taxon,
			}
			if err := tsv.Write(row); err != nil {
				return fmt.Errorf("tree %q: when writing data: %v", name, err)
			}
		}
	}

	tsv.Flush()
	if err := tsv.Error(); err != nil {
		return fmt.Errorf("when writing data: %v", err)
	}
	return nil
}
