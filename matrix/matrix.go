// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package matrix provides discrete-character data matrices
// for a set of taxa.
package matrix

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Unknown is the state used for missing
// or unknown observations.
const Unknown = "?"

// A Matrix is a collection of discrete character states
// observed in a set of taxa.
// All taxa have the same number of characters.
type Matrix struct {
	nChars int
	taxa   map[string][]string
}

// New creates a new empty matrix.
func New() *Matrix {
	return &Matrix{
		taxa: make(map[string][]string),
	}
}

// Add adds a taxon with its character states to a matrix.
// All taxa in a matrix must have the same number of states.
// Empty states are stored as unknown ("?").
func (m *Matrix) Add(taxon string, states []string) error {
	taxon = canon(taxon)
	if taxon == "" {
		return fmt.Errorf("empty taxon name")
	}
	if len(states) == 0 {
		return fmt.Errorf("taxon %q: without characters", taxon)
	}
	if m.nChars == 0 {
		m.nChars = len(states)
	}
	if len(states) != m.nChars {
		return fmt.Errorf("taxon %q: got %d characters, want %d", taxon, len(states), m.nChars)
	}
	if _, dup := m.taxa[taxon]; dup {
		return fmt.Errorf("taxon %q: already in matrix", taxon)
	}

	st := make([]string, len(states))
	for i, s := range states {
		s = strings.Join(strings.Fields(strings.ToLower(s)), " ")
		if s == "" {
			s = Unknown
		}
		st[i] = s
	}
	m.taxa[taxon] = st
	return nil
}

// Chars returns the number of characters
// defined for the matrix.
func (m *Matrix) Chars() int {
	return m.nChars
}

// States returns the character states of a taxon.
func (m *Matrix) States(taxon string) []string {
	taxon = canon(taxon)
	st, ok := m.taxa[taxon]
	if !ok {
		return nil
	}
	return slices.Clone(st)
}

// Taxa returns the taxa of the matrix,
// sorted alphabetically.
func (m *Matrix) Taxa() []string {
	taxa := make([]string, 0, len(m.taxa))
	for tx := range m.taxa {
		taxa = append(taxa, tx)
	}
	slices.Sort(taxa)
	return taxa
}

// Resample creates a new matrix
// by sampling characters with replacement
// (i.e., a bootstrap pseudo-replicate).
// The resulting matrix has the same taxa
// and the same number of characters
// as the source matrix.
//
// Randomization depends only on the given source,
// so a run can be reproduced
// by using a source with an explicit seed.
func (m *Matrix) Resample(rnd *rand.Rand) *Matrix {
	cols := make([]int, m.nChars)
	for i := range cols {
		cols[i] = rnd.IntN(m.nChars)
	}

	nm := New()
	nm.nChars = m.nChars
	for tx, st := range m.taxa {
		ns := make([]string, len(cols))
		for i, c := range cols {
			ns[i] = st[c]
		}
		nm.taxa[tx] = ns
	}
	return nm
}

// canon transforms a taxon name
// into its canonical form:
// a single space between words
// and the first rune in upper case.
func canon(name string) string {
	name = strings.Join(strings.Fields(name), " ")
	if name == "" {
		return ""
	}
	name = strings.ToLower(name)
	r, n := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r)) + name[n:]
}
