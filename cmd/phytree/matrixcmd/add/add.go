// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package add implements a command to add
// a character matrix to a PhyTree project.
package add

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/phytree/matrix"
	"github.com/js-arias/phytree/project"
)

var Command = &command.Command{
	Usage: `add [-f|--file <matrix-file>]
	[--interleaved]
	<project-file> [<matrix-file>]`,
	Short: "add a character matrix to a PhyTree project",
	Long: `
Command add reads a discrete-character data matrix from a file, and adds the
matrix to a PhyTree project.

The first argument of the command is the name of the project file. If no
project file exists, a new project will be created.

A matrix file can be given as the second argument. If no file is given the
matrix will be read from the standard input.

By default, the input is expected to be in the form of a tab-delimited file,
with a row for each taxon-character pair. To import a matrix in interleaved
block format (the format used by most tree search programs), use the flag
--interleaved.

By default the matrix will be stored in the matrix file currently defined for
the project. If the project does not have a matrix file, a new one will be
created with the name 'characters.tab'. A different file name can be defined
using the flag --file, or -f.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var interleaved bool
var matrixFile string

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&interleaved, "interleaved", false, "")
	c.Flags().StringVar(&matrixFile, "file", "", "")
	c.Flags().StringVar(&matrixFile, "f", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	pFile := args[0]
	p, err := openProject(pFile)
	if err != nil {
		return err
	}

	in := ""
	if len(args) > 1 && args[1] != "-" {
		in = args[1]
	}
	m, err := readMatrix(c.Stdin(), in)
	if err != nil {
		return err
	}

	if matrixFile == "" {
		matrixFile = p.Path(project.Characters)
		if matrixFile == "" {
			matrixFile = "characters.tab"
		}
	}

	if err := writeMatrix(m); err != nil {
		return err
	}
	p.Add(project.Characters, matrixFile)
	if err := p.Write(); err != nil {
		return err
	}

	return nil
}

func openProject(name string) (*project.Project, error) {
	p, err := project.Read(name)
	if errors.Is(err, os.ErrNotExist) {
		p := project.New()
		p.SetName(name)
		return p, nil
	}
	if err != nil {
		return nil, fmt.Errorf("unable ot open project %q: %v", name, err)
	}
	return p, nil
}

func readMatrix(r io.Reader, name string) (*matrix.Matrix, error) {
	if name != "" {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		name = "stdin"
	}

	var m *matrix.Matrix
	var err error
	if interleaved {
		m, err = matrix.ReadInterleaved(r)
	} else {
		m, err = matrix.ReadTSV(r)
	}
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %v", name, err)
	}
	return m, nil
}

func writeMatrix(m *matrix.Matrix) (err error) {
	f, err := os.Create(matrixFile)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	if err := m.TSV(f); err != nil {
		return fmt.Errorf("while writing to %q: %v", matrixFile, err)
	}
	return nil
}
