// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package matrix

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadTSV reads a character matrix from a TSV file.
//
// The TSV file must contain the following fields:
//
//   - taxon, the taxonomic name of the taxon
//   - character, the number of the character (starting at 1)
//   - state, the state observed for the taxon-character pair
//
// Here is an example file:
//
//	taxon	character	state
//	Rhea americana	1	0
//	Rhea americana	2	1
//	Struthio camelus	1	0
//	Struthio camelus	2	?
func ReadTSV(r io.Reader) (*Matrix, error) {
	tab := csv.NewReader(r)
	tab.Comma = '\t'
	tab.Comment = '#'

	head, err := tab.Read()
	if err != nil {
		return nil, fmt.Errorf("while reading header: %v", err)
	}
	fields := make(map[string]int, len(head))
	for i, h := range head {
		h = strings.ToLower(h)
		fields[h] = i
	}
	for _, h := range []string{"taxon", "character", "state"} {
		if _, ok := fields[h]; !ok {
			return nil, fmt.Errorf("expecting field %q", h)
		}
	}

	taxa := make(map[string][]string)
	nChars := 0
	for {
		row, err := tab.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tab.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}

		f := "taxon"
		tax := canon(row[fields[f]])
		if tax == "" {
			continue
		}

		f = "character"
		c, err := strconv.Atoi(row[fields[f]])
		if err != nil {
			return nil, fmt.Errorf("on row %d: field %q: %v", ln, f, err)
		}
		if c < 1 {
			return nil, fmt.Errorf("on row %d: field %q: invalid character %d", ln, f, c)
		}
		if c > nChars {
			nChars = c
		}

		f = "state"
		s := strings.Join(strings.Fields(strings.ToLower(row[fields[f]])), " ")
		if s == "" {
			s = Unknown
		}

		st := taxa[tax]
		for len(st) < c {
			st = append(st, Unknown)
		}
		st[c-1] = s
		taxa[tax] = st
	}
	if len(taxa) == 0 {
		return nil, fmt.Errorf("while reading data: empty matrix")
	}

	m := New()
	m.nChars = nChars
	for tax, st := range taxa {
		for len(st) < nChars {
			st = append(st, Unknown)
		}
		m.taxa[tax] = st
	}
	return m, nil
}

// TSV writes a character matrix to a TSV file.
func (m *Matrix) TSV(w io.Writer) error {
	tab := csv.NewWriter(w)
	tab.Comma = '\t'
	tab.UseCRLF = true

	// header
	header := []string{"taxon", "character", "state"}
	if err := tab.Write(header); err != nil {
		return fmt.Errorf("unable to write header: %v", err)
	}

	for _, tax := range m.Taxa() {
		for i, s := range m.taxa[tax] {
			row := []string{
				tax,
				strconv.Itoa(i + 1),
				s,
			}
			if err := tab.Write(row); err != nil {
				return fmt.Errorf("when writing data: %v", err)
			}
		}
	}

	tab.Flush()
	if err := tab.Error(); err != nil {
		return fmt.Errorf("when writing data: %v", err)
	}
	return nil
}

// ReadInterleaved reads a character matrix
// from an interleaved-block text file
// (the format used by most tree search programs).
//
// The first line of the file contains the number of taxa
// and the number of characters.
// Then the data is given in one or more blocks
// separated by empty lines.
// Each line of a block contains a taxon name
// (using underscores instead of spaces)
// and a run of single-character states.
// The first block defines the taxon order,
// that must be kept by the following blocks.
//
// Here is an example file:
//
//	4 10
//	Rhea_americana       00010
//	Struthio_camelus     0100?
//	Casuarius_casuarius  01100
//	Apteryx_australis    10010
//
//	Rhea_americana       01101
//	Struthio_camelus     0010?
//	Casuarius_casuarius  00101
//	Apteryx_australis    11100
func ReadInterleaved(r io.Reader) (*Matrix, error) {
	sc := bufio.NewScanner(r)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("while reading header: empty input")
	}
	head := strings.Fields(sc.Text())
	if len(head) < 2 {
		return nil, fmt.Errorf("while reading header: expecting taxon and character numbers")
	}
	nTax, err := strconv.Atoi(head[0])
	if err != nil {
		return nil, fmt.Errorf("while reading header: taxon number: %v", err)
	}
	nChars, err := strconv.Atoi(head[1])
	if err != nil {
		return nil, fmt.Errorf("while reading header: character number: %v", err)
	}
	if nTax < 1 || nChars < 1 {
		return nil, fmt.Errorf("while reading header: invalid matrix size %dx%d", nTax, nChars)
	}

	var order []string
	taxa := make(map[string][]string, nTax)
	row := 0
	for ln := 2; sc.Scan(); ln++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fs := strings.Fields(line)
		name := canon(strings.ReplaceAll(fs[0], "_", " "))
		states := strings.Join(fs[1:], "")

		if len(order) < nTax {
			if _, dup := taxa[name]; dup {
				return nil, fmt.Errorf("on line %d: taxon %q: already in matrix", ln, name)
			}
			order = append(order, name)
		} else {
			if want := order[row%nTax]; name != want {
				return nil, fmt.Errorf("on line %d: taxon %q: expecting taxon %q", ln, name, want)
			}
		}
		row++

		st := taxa[name]
		for _, r1 := range states {
			st = append(st, strings.ToLower(string(r1)))
		}
		if len(st) > nChars {
			return nil, fmt.Errorf("on line %d: taxon %q: got %d characters, want %d", ln, name, len(st), nChars)
		}
		taxa[name] = st
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(order) < nTax {
		return nil, fmt.Errorf("while reading data: got %d taxa, want %d", len(order), nTax)
	}

	m := New()
	m.nChars = nChars
	for _, tax := range order {
		st := taxa[tax]
		if len(st) != nChars {
			return nil, fmt.Errorf("taxon %q: got %d characters, want %d", tax, len(st), nChars)
		}
		m.taxa[tax] = st
	}
	return m, nil
}
