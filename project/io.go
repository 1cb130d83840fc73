// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package project

import (
	"fmt"
	"os"

	"github.com/js-arias/phytree/matrix"
	"github.com/js-arias/phytree/tree"
)

// Characters reads the character matrix file
// as defined in a project.
func (p *Project) Characters() (*matrix.Matrix, error) {
	mf := p.paths[Characters]
	if mf == "" {
		return nil, fmt.Errorf("character matrix not defined in project %q", p.name)
	}

	f, err := os.Open(mf)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := matrix.ReadTSV(f)
	if err != nil {
		return nil, fmt.Errorf("on matrix file %q: %v", mf, err)
	}
	return m, nil
}

// Trees reads the tree collection file
// as defined in a project.
func (p *Project) Trees() (*tree.Collection, error) {
	tf := p.paths[Trees]
	if tf == "" {
		return nil, fmt.Errorf("tree file not defined in project %q", p.name)
	}

	f, err := os.Open(tf)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c, err := tree.ReadTSV(f)
	if err != nil {
		return nil, fmt.Errorf("on tree file %q: %v", tf, err)
	}
	return c, nil
}
