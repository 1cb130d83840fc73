// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package list implements a command to print
// the list of trees in a PhyTree project.
package list

import (
	"fmt"

	"github.com/js-arias/command"
	"github.com/js-arias/phytree/project"
)

var Command = &command.Command{
	Usage: "list [--count] <project-file>",
	Short: "print a list of the trees in a project",
	Long: `
Command list reads the trees from a PhyTree project and print the tree names
in the standard output.

The argument of the command is the name of the project file.

If the flag --count is defined, the number of terminals of each tree will be
printed in front of the tree name.
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

	tc, err := p.Trees()
	if err != nil {
		return err
	}

	for _, tn := range tc.Names() {
		if !count {
			fmt.Fprintf(c.Stdout(), "%s\n", tn)
			continue
		}
		t := tc.Tree(tn)
		fmt.Fprintf(c.Stdout(), "%s\t%d\n", tn, len(t.Terms()))
	}
	return nil
}
