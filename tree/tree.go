// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package tree provides phylogenetic trees
// with branch lengths.
package tree

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Common errors when working with trees.
var (
	// ErrInvalidTree is used when a tree
	// does not have a valid structure
	// (multiple roots, cycles, or a root without descendants).
	ErrInvalidTree = errors.New("invalid tree")

	// ErrTreeNoName is used when a tree without name
	// is added to a collection.
	ErrTreeNoName = errors.New("tree without name")

	// ErrTreeRepeated is used when a tree
	// is already on a collection.
	ErrTreeRepeated = errors.New("repeated tree name")
)

// A Tree is a rooted phylogenetic tree
// with branch lengths.
//
// Each node is identified by an integer ID,
// with the root node always at ID 0.
// Every node except the root has a single parent,
// and the branch that connects a node with its parent
// has a non-negative length.
// Terminal nodes have a taxon name,
// and internal nodes can have a label
// (usually a support value).
type Tree struct {
	name  string
	nodes map[int]*node
	taxa  map[string]*node
	root  *node
}

type node struct {
	id     int
	parent *node
	desc   []*node
	brLen  float64
	label  string
	taxon  string
}

// New creates a new tree with the given name.
// The tree contains only its root node
// (with ID 0).
func New(name string) *Tree {
	name = strings.ToLower(strings.Join(strings.Fields(name), " "))

	root := &node{id: 0}
	return &Tree{
		name:  name,
		nodes: map[int]*node{0: root},
		taxa:  make(map[string]*node),
		root:  root,
	}
}

// Add adds a new node as a child of the indicated node,
// with a branch of the given length,
// and returns the ID of the added node.
// If the node is a terminal,
// use taxon to set its taxon name;
// internal nodes should use an empty taxon.
func (t *Tree) Add(parent int, brLen float64, taxon string) (int, error) {
	p, ok := t.nodes[parent]
	if !ok {
		return -1, fmt.Errorf("tree %q: parent node %d: undefined node", t.name, parent)
	}
	if p.taxon != "" {
		return -1, fmt.Errorf("tree %q: parent node %d: node is a terminal", t.name, parent)
	}
	if brLen < 0 {
		return -1, fmt.Errorf("tree %q: invalid branch length %.6f", t.name, brLen)
	}

	taxon = Canon(taxon)
	if taxon != "" {
		if _, dup := t.taxa[taxon]; dup {
			return -1, fmt.Errorf("tree %q: taxon %q: already in tree", t.name, taxon)
		}
	}

	n := &node{
		id:     len(t.nodes),
		parent: p,
		brLen:  brLen,
		taxon:  taxon,
	}
	p.desc = append(p.desc, n)
	t.nodes[n.id] = n
	if taxon != "" {
		t.taxa[taxon] = n
	}
	return n.id, nil
}

// BrLen returns the length of the branch
// that connects a node with its parent.
// The root branch has a length of 0.
func (t *Tree) BrLen(id int) float64 {
	n, ok := t.nodes[id]
	if !ok {
		return 0
	}
	return n.brLen
}

// Children returns the IDs of the descendants
// of the indicated node.
func (t *Tree) Children(id int) []int {
	n, ok := t.nodes[id]
	if !ok {
		return nil
	}
	if len(n.desc) == 0 {
		return nil
	}
	desc := make([]int, 0, len(n.desc))
	for _, d := range n.desc {
		desc = append(desc, d.id)
	}
	slices.Sort(desc)
	return desc
}

// Depth returns the sum of branch lengths
// of the path from the root
// to the indicated node.
func (t *Tree) Depth(id int) float64 {
	n, ok := t.nodes[id]
	if !ok {
		return 0
	}
	var sum float64
	for n.parent != nil {
		sum += n.brLen
		n = n.parent
	}
	return sum
}

// IsTerm returns true if the indicated node
// is a terminal node.
func (t *Tree) IsTerm(id int) bool {
	n, ok := t.nodes[id]
	if !ok {
		return false
	}
	return len(n.desc) == 0
}

// Label returns the label of a node.
func (t *Tree) Label(id int) string {
	n, ok := t.nodes[id]
	if !ok {
		return ""
	}
	return n.label
}

// Len returns the number of nodes of a tree.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Name returns the name of a tree.
func (t *Tree) Name() string {
	return t.name
}

// Nodes returns the IDs of all nodes of a tree.
func (t *Tree) Nodes() []int {
	ids := make([]int, 0, len(t.nodes))
	for id := range t.nodes {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Parent returns the ID of the parent
// of the indicated node.
// It returns -1 for the root
// or an undefined node.
func (t *Tree) Parent(id int) int {
	n, ok := t.nodes[id]
	if !ok {
		return -1
	}
	if n.parent == nil {
		return -1
	}
	return n.parent.id
}

// Root returns the ID of the root node,
// which is always 0.
func (t *Tree) Root() int {
	return t.root.id
}

// SetBrLen sets the length of the branch
// that connects a node with its parent.
func (t *Tree) SetBrLen(id int, brLen float64) error {
	n, ok := t.nodes[id]
	if !ok {
		return fmt.Errorf("tree %q: node %d: undefined node", t.name, id)
	}
	if n.parent == nil {
		return fmt.Errorf("tree %q: node %d: node is the root", t.name, id)
	}
	if brLen < 0 {
		return fmt.Errorf("tree %q: node %d: invalid branch length %.6f", t.name, id, brLen)
	}
	n.brLen = brLen
	return nil
}

// SetLabel sets the label of an internal node.
func (t *Tree) SetLabel(id int, label string) error {
	n, ok := t.nodes[id]
	if !ok {
		return fmt.Errorf("tree %q: node %d: undefined node", t.name, id)
	}
	if len(n.desc) == 0 {
		return fmt.Errorf("tree %q: node %d: node is a terminal", t.name, id)
	}
	n.label = strings.Join(strings.Fields(label), " ")
	return nil
}

// TaxNode returns the ID of the terminal node
// with the indicated taxon name.
func (t *Tree) TaxNode(name string) (int, bool) {
	name = Canon(name)
	if name == "" {
		return -1, false
	}
	n, ok := t.taxa[name]
	if !ok {
		return -1, false
	}
	return n.id, true
}

// Taxon returns the taxon name
// of a terminal node.
func (t *Tree) Taxon(id int) string {
	n, ok := t.nodes[id]
	if !ok {
		return ""
	}
	return n.taxon
}

// Terms returns the taxon names
// of all terminals of a tree,
// sorted alphabetically.
func (t *Tree) Terms() []string {
	terms := make([]string, 0, len(t.taxa))
	for tax := range t.taxa {
		terms = append(terms, tax)
	}
	slices.Sort(terms)
	return terms
}

// Canon transforms a taxon name
// into its canonical form:
// a single space between words
// and the first rune in upper case.
func Canon(name string) string {
	name = strings.Join(strings.Fields(name), " ")
	if name == "" {
		return ""
	}
	name = strings.ToLower(name)
	r, n := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r)) + name[n:]
}

// A Collection is a set of trees
// indexed by their names.
type Collection struct {
	trees map[string]*Tree
}

// NewCollection creates a new empty collection.
func NewCollection() *Collection {
	return &Collection{
		trees: make(map[string]*Tree),
	}
}

// Add adds a tree to a collection.
// It returns an error if the tree has no name,
// or a tree with the same name
// is already in the collection.
func (c *Collection) Add(t *Tree) error {
	if t.name == "" {
		return ErrTreeNoName
	}
	if _, dup := c.trees[t.name]; dup {
		return fmt.Errorf("tree %q: %w", t.name, ErrTreeRepeated)
	}
	c.trees[t.name] = t
	return nil
}

// Delete removes a tree from a collection.
func (c *Collection) Delete(name string) {
	name = strings.ToLower(strings.Join(strings.Fields(name), " "))
	delete(c.trees, name)
}

// Names returns the names of the trees of a collection,
// sorted alphabetically.
func (c *Collection) Names() []string {
	names := make([]string, 0, len(c.trees))
	for n := range c.trees {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// Tree returns the tree with a given name,
// or nil if the tree is not in the collection.
func (c *Collection) Tree(name string) *Tree {
	name = strings.ToLower(strings.Join(strings.Fields(name), " "))
	return c.trees[name]
}
