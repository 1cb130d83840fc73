// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package matrix_test

import (
	"bytes"
	"math/rand/v2"
	"reflect"
	"strings"
	"testing"

	"github.com/js-arias/phytree/matrix"
)

type taxonStates struct {
	taxon  string
	states []string
}

var ratiteData = []taxonStates{
	{"Apteryx australis", []string{"1", "0", "0", "1", "0"}},
	{"Casuarius casuarius", []string{"0", "1", "1", "0", "0"}},
	{"Rhea americana", []string{"0", "0", "0", "1", "0"}},
	{"Struthio camelus", []string{"0", "1", "0", "0", "?"}},
}

func ratiteMatrix(t testing.TB) *matrix.Matrix {
	t.Helper()

	m := matrix.New()
	for _, d := range ratiteData {
		if err := m.Add(d.taxon, d.states); err != nil {
			t.Fatalf("unable to add taxon %q: %v", d.taxon, err)
		}
	}
	return m
}

func TestMatrix(t *testing.T) {
	m := ratiteMatrix(t)

	if m.Chars() != 5 {
		t.Errorf("characters: got %d, want %d", m.Chars(), 5)
	}
	taxa := make([]string, 0, len(ratiteData))
	for _, d := range ratiteData {
		taxa = append(taxa, d.taxon)
	}
	if ls := m.Taxa(); !reflect.DeepEqual(ls, taxa) {
		t.Errorf("taxa: got %v, want %v", ls, taxa)
	}
	for _, d := range ratiteData {
		if st := m.States(d.taxon); !reflect.DeepEqual(st, d.states) {
			t.Errorf("taxon %q: states: got %v, want %v", d.taxon, st, d.states)
		}
	}

	if err := m.Add("Struthio camelus", []string{"0", "0", "0", "0", "0"}); err == nil {
		t.Errorf("adding a repeated taxon: expecting error")
	}
	if err := m.Add("Dromaius novaehollandiae", []string{"0", "0"}); err == nil {
		t.Errorf("adding a taxon with a different size: expecting error")
	}
}

func TestMatrixTSV(t *testing.T) {
	m := ratiteMatrix(t)

	var buf bytes.Buffer
	if err := m.TSV(&buf); err != nil {
		t.Fatalf("unable to write data: %v", err)
	}

	nm, err := matrix.ReadTSV(&buf)
	if err != nil {
		t.Logf("output data:\n%s\n", buf.String())
		t.Fatalf("unable to read data: %v", err)
	}
	testEqualMatrix(t, nm, m)
}

func TestMatrixInterleaved(t *testing.T) {
	data := `4 10
Apteryx_australis    10010
Casuarius_casuarius  01100
Rhea_americana       00010
Struthio_camelus     0100?

Apteryx_australis    11100
Casuarius_casuarius  00101
Rhea_americana       01101
Struthio_camelus     0010?
`

	m, err := matrix.ReadInterleaved(strings.NewReader(data))
	if err != nil {
		t.Fatalf("unable to read data: %v", err)
	}
	if m.Chars() != 10 {
		t.Errorf("characters: got %d, want %d", m.Chars(), 10)
	}
	want := []string{"0", "0", "0", "1", "0", "0", "1", "1", "0", "1"}
	if st := m.States("Rhea americana"); !reflect.DeepEqual(st, want) {
		t.Errorf("taxon %q: states: got %v, want %v", "Rhea americana", st, want)
	}

	bad := map[string]string{
		"empty input":     "",
		"invalid header":  "taxa characters\n",
		"too few taxa":    "4 5\nRhea_americana 00010\n",
		"too many states": "1 2\nRhea_americana 00010\n",
		"unordered block": "2 4\nRhea_americana 00\nStruthio_camelus 01\nStruthio_camelus 0?\nRhea_americana 10\n",
	}
	for name, d := range bad {
		if _, err := matrix.ReadInterleaved(strings.NewReader(d)); err == nil {
			t.Errorf("%s: expecting error", name)
		}
	}
}

func TestMatrixResample(t *testing.T) {
	m := ratiteMatrix(t)

	rnd := rand.New(rand.NewPCG(42, 42))
	b := m.Resample(rnd)

	if b.Chars() != m.Chars() {
		t.Errorf("characters: got %d, want %d", b.Chars(), m.Chars())
	}
	if ls := b.Taxa(); !reflect.DeepEqual(ls, m.Taxa()) {
		t.Errorf("taxa: got %v, want %v", ls, m.Taxa())
	}

	// every sampled character must be an original column
	cols := make(map[string][]string, m.Chars())
	for i := range m.Chars() {
		col := make([]string, 0, len(m.Taxa()))
		for _, tax := range m.Taxa() {
			col = append(col, m.States(tax)[i])
		}
		cols[strings.Join(col, "|")] = col
	}
	for i := range b.Chars() {
		col := make([]string, 0, len(b.Taxa()))
		for _, tax := range b.Taxa() {
			col = append(col, b.States(tax)[i])
		}
		if _, ok := cols[strings.Join(col, "|")]; !ok {
			t.Errorf("character %d: sampled column %v not in source matrix", i+1, col)
		}
	}

	// an equally seeded source must give the same replicate
	rnd = rand.New(rand.NewPCG(42, 42))
	testEqualMatrix(t, m.Resample(rnd), b)

	// the source matrix must be untouched
	testEqualMatrix(t, m, ratiteMatrix(t))
}

func testEqualMatrix(t testing.TB, got, want *matrix.Matrix) {
	t.Helper()

	if got.Chars() != want.Chars() {
		t.Errorf("characters: got %d, want %d", got.Chars(), want.Chars())
	}
	if ls := got.Taxa(); !reflect.DeepEqual(ls, want.Taxa()) {
		t.Errorf("taxa: got %v, want %v", ls, want.Taxa())
	}
	for _, tax := range want.Taxa() {
		if st := got.States(tax); !reflect.DeepEqual(st, want.States(tax)) {
			t.Errorf("taxon %q: states: got %v, want %v", tax, st, want.States(tax))
		}
	}
}
