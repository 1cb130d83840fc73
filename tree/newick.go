// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// Newick reads one or more trees
// in parenthetical (newick) format,
// in which each node is written as
// "(children)label:branch-length",
// and each tree ends with a semicolon.
//
// As newick trees are anonymous,
// the name parameter is used to name the trees;
// if the stream contains more than one tree,
// the trees will be named "name.1", "name.2", and so on.
func Newick(r io.Reader, name string) (*Collection, error) {
	name = strings.ToLower(strings.Join(strings.Fields(name), " "))
	if name == "" {
		return nil, ErrTreeNoName
	}

	br := bufio.NewReader(r)
	c := NewCollection()
	for i := 0; ; i++ {
		if err := skipSpaces(br); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}

		tn := name
		if i > 0 {
			tn = fmt.Sprintf("%s.%d", name, i)
		}
		t, err := readNewickTree(br, tn)
		if err != nil {
			return nil, fmt.Errorf("tree %q: %v", tn, err)
		}
		if err := c.Add(t); err != nil {
			return nil, err
		}
	}
	if len(c.trees) == 0 {
		return nil, fmt.Errorf("tree %q: %w: empty input", name, ErrInvalidTree)
	}
	return c, nil
}

func readNewickTree(r *bufio.Reader, name string) (*Tree, error) {
	r1, _, err := r.ReadRune()
	if err != nil {
		return nil, err
	}
	if r1 != '(' {
		return nil, fmt.Errorf("%w: expecting '(', got %q", ErrInvalidTree, r1)
	}

	t := New(name)
	if err := readNewickNode(r, t, t.root); err != nil {
		return nil, err
	}

	// root label and branch length
	label, err := readNewickLabel(r)
	if err != nil {
		return nil, err
	}
	t.root.label = label
	if _, err := readNewickBrLen(r); err != nil {
		return nil, err
	}

	if err := skipSpaces(r); err != nil {
		return nil, fmt.Errorf("%w: unexpected end of tree", ErrInvalidTree)
	}
	r1, _, err = r.ReadRune()
	if err != nil {
		return nil, fmt.Errorf("%w: unexpected end of tree", ErrInvalidTree)
	}
	if r1 != ';' {
		return nil, fmt.Errorf("%w: expecting ';', got %q", ErrInvalidTree, r1)
	}
	return t, nil
}

// readNewickNode reads the descendants of an internal node,
// after its opening parenthesis.
func readNewickNode(r *bufio.Reader, t *Tree, p *node) error {
	for {
		if err := skipSpaces(r); err != nil {
			return fmt.Errorf("%w: unexpected end of tree", ErrInvalidTree)
		}
		r1, _, err := r.ReadRune()
		if err != nil {
			return fmt.Errorf("%w: unexpected end of tree", ErrInvalidTree)
		}

		if r1 == '(' {
			id, err := t.Add(p.id, 0, "")
			if err != nil {
				return err
			}
			n := t.nodes[id]
			if err := readNewickNode(r, t, n); err != nil {
				return err
			}
			label, err := readNewickLabel(r)
			if err != nil {
				return err
			}
			n.label = label
			brLen, err := readNewickBrLen(r)
			if err != nil {
				return err
			}
			n.brLen = brLen
		} else {
			r.UnreadRune()
			taxon, err := readNewickLabel(r)
			if err != nil {
				return err
			}
			if taxon == "" {
				return fmt.Errorf("%w: expecting terminal name", ErrInvalidTree)
			}
			brLen, err := readNewickBrLen(r)
			if err != nil {
				return err
			}
			if _, err := t.Add(p.id, brLen, taxon); err != nil {
				return err
			}
		}

		if err := skipSpaces(r); err != nil {
			return fmt.Errorf("%w: unexpected end of tree", ErrInvalidTree)
		}
		r1, _, err = r.ReadRune()
		if err != nil {
			return fmt.Errorf("%w: unexpected end of tree", ErrInvalidTree)
		}
		if r1 == ',' {
			continue
		}
		if r1 == ')' {
			return nil
		}
		return fmt.Errorf("%w: expecting ',' or ')', got %q", ErrInvalidTree, r1)
	}
}

// readNewickLabel reads a node label,
// either a quoted or an unquoted string.
// In unquoted labels,
// underscores are read as spaces.
func readNewickLabel(r *bufio.Reader) (string, error) {
	if err := skipSpaces(r); err != nil {
		return "", fmt.Errorf("%w: unexpected end of tree", ErrInvalidTree)
	}
	r1, _, err := r.ReadRune()
	if err != nil {
		return "", fmt.Errorf("%w: unexpected end of tree", ErrInvalidTree)
	}

	if r1 == '\'' {
		var b strings.Builder
		for {
			r1, _, err := r.ReadRune()
			if err != nil {
				return "", fmt.Errorf("%w: unclosed quoted label", ErrInvalidTree)
			}
			if r1 == '\'' {
				nx, _, err := r.ReadRune()
				if err == nil && nx == '\'' {
					b.WriteRune('\'')
					continue
				}
				if err == nil {
					r.UnreadRune()
				}
				return strings.Join(strings.Fields(b.String()), " "), nil
			}
			b.WriteRune(r1)
		}
	}

	var b strings.Builder
	for {
		if strings.ContainsRune("():;,[]'", r1) || unicode.IsSpace(r1) {
			r.UnreadRune()
			break
		}
		if r1 == '_' {
			r1 = ' '
		}
		b.WriteRune(r1)
		r1, _, err = r.ReadRune()
		if err != nil {
			break
		}
	}
	return strings.Join(strings.Fields(b.String()), " "), nil
}

// readNewickBrLen reads a branch length,
// if it is present
// (a colon followed by a number).
func readNewickBrLen(r *bufio.Reader) (float64, error) {
	if err := skipSpaces(r); err != nil {
		return 0, fmt.Errorf("%w: unexpected end of tree", ErrInvalidTree)
	}
	r1, _, err := r.ReadRune()
	if err != nil {
		return 0, fmt.Errorf("%w: unexpected end of tree", ErrInvalidTree)
	}
	if r1 != ':' {
		r.UnreadRune()
		return 0, nil
	}

	if err := skipSpaces(r); err != nil {
		return 0, fmt.Errorf("%w: unexpected end of tree", ErrInvalidTree)
	}
	var b strings.Builder
	for {
		r1, _, err := r.ReadRune()
		if err != nil {
			break
		}
		if strings.ContainsRune("-+.eE0123456789", r1) {
			b.WriteRune(r1)
			continue
		}
		r.UnreadRune()
		break
	}
	brLen, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid branch length %q", ErrInvalidTree, b.String())
	}
	if brLen < 0 {
		return 0, fmt.Errorf("%w: negative branch length %q", ErrInvalidTree, b.String())
	}
	return brLen, nil
}

// skipSpaces consumes white space characters,
// as well as bracketed comments.
func skipSpaces(r *bufio.Reader) error {
	for {
		r1, _, err := r.ReadRune()
		if err != nil {
			return err
		}
		if unicode.IsSpace(r1) {
			continue
		}
		if r1 == '[' {
			for {
				r1, _, err := r.ReadRune()
				if err != nil {
					return err
				}
				if r1 == ']' {
					break
				}
			}
			continue
		}
		r.UnreadRune()
		return nil
	}
}

// Newick writes a tree in parenthetical (newick) format.
// Taxon names are written with underscores
// instead of spaces.
func (t *Tree) Newick(w io.Writer) error {
	bw := bufio.NewWriter(w)
	t.root.newick(bw)
	bw.WriteString(";\n")
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("tree %q: %v", t.name, err)
	}
	return nil
}

func (n *node) newick(w *bufio.Writer) {
	if len(n.desc) == 0 {
		w.WriteString(strings.ReplaceAll(n.taxon, " ", "_"))
	} else {
		w.WriteRune('(')
		for i, d := range n.desc {
			if i > 0 {
				w.WriteRune(',')
			}
			d.newick(w)
		}
		w.WriteRune(')')
		w.WriteString(strings.ReplaceAll(n.label, " ", "_"))
	}
	if n.parent != nil {
		w.WriteString(":" + strconv.FormatFloat(n.brLen, 'f', 6, 64))
	}
}
