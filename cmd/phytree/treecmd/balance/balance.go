// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package balance implements a command
// to normalize the root branches
// of the trees in a PhyTree project.
package balance

import (
	"fmt"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/phytree/project"
	"github.com/js-arias/phytree/tree"
)

var Command = &command.Command{
	Usage: `balance [--tree <tree>] [--cpu <number>]
	<project-file>`,
	Short: "normalize the root branches of project trees",
	Long: `
Command balance reads the trees of a PhyTree project and rebalances the
branch lengths of the root children of each tree: the sum of the branch
lengths is kept, but it is distributed evenly among all the root branches. It
also removes the label of the root node, as a support value is meaningless
for the root of a rooted tree.

Rebalancing is useful after rooting a tree with an outgroup, because most
rooting procedures leave the full length of the root branch on a single side
of the root, an artifact that will be shown by any tree viewer.

The argument of the command is the name of the project file.

By default, all trees in the project will be rebalanced, each one on its own
and independent of any other tree. If the flag --tree is set, only the
indicated tree will be rebalanced.

Each tree is processed on an independent worker. By default, the command uses
all available CPUs; use the flag --cpu to set a different number of workers.

The results are stored in the tree file of the project.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var cpu int
var treeName string

func setFlags(c *command.Command) {
	c.Flags().IntVar(&cpu, "cpu", 0, "")
	c.Flags().StringVar(&treeName, "tree", "", "")
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

	if treeName != "" {
		t := tc.Tree(treeName)
		if t == nil {
			return fmt.Errorf("tree %q not in project %q", treeName, args[0])
		}
		if err := t.Rebalance(); err != nil {
			return err
		}
	} else {
		if err := tc.Rebalance(cpu); err != nil {
			return err
		}
	}

	if err := writeTrees(tc, p.Path(project.Trees)); err != nil {
		return err
	}
	return nil
}

func writeTrees(tc *tree.Collection, treeFile string) (err error) {
	f, err := os.Create(treeFile)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	if err := tc.TSV(f); err != nil {
		return fmt.Errorf("while writing to %q: %v", treeFile, err)
	}
	return nil
}
