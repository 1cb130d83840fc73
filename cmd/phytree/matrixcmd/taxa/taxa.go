// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package taxa implements a command to print
// the list of taxa in the character matrix
// of a PhyTree project.
package taxa

import (
	"fmt"

	"github.com/js-arias/command"
	"github.com/js-arias/phytree/matrix"
	"github.com/js-arias/phytree/project"
)

var Command = &command.Command{
	Usage: "taxa [--count] <project-file>",
	Short: "print a list of the taxa in the character matrix",
	Long: `
Command taxa reads the character matrix from a PhyTree project and print the
name of the taxa in the standard output.

The argument of the command is the name of the project file.

If the flag --count is defined, the number of characters with a known state
(i.e., different from "?") will be printed in front of each taxon name.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var count bool

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&count, "count", false, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}

	m, err := p.Characters()
	if err != nil {
		return err
	}

	for _, tax := range m.Taxa() {
		if !count {
			fmt.Fprintf(c.Stdout(), "%s\n", tax)
			continue
		}
		known := 0
		for _, s := range m.States(tax) {
			if s != matrix.Unknown {
				known++
			}
		}
		fmt.Fprintf(c.Stdout(), "%s\t%d/%d\n", tax, known, m.Chars())
	}
	return nil
}
