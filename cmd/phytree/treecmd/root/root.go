// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package root implements a command
// to root the trees of a PhyTree project
// using an outgroup.
package root

import (
	"fmt"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/phytree/project"
	"github.com/js-arias/phytree/tree"
)

var Command = &command.Command{
	Usage: `root --outgroup <taxon> [--balance]
	[--tree <tree>] <project-file>`,
	Short: "root project trees using an outgroup",
	Long: `
Command root reads the trees of a PhyTree project and re-hangs each tree so
its root will be located on the branch that connects the indicated outgroup
terminal with the rest of the tree.

The flag --outgroup is required, and indicates the name of the terminal used
as the outgroup.

After the rooting, the full length of the outgroup branch is kept on the
outgroup side of the new root, and the sister branch has a length of zero. If
the flag --balance is defined, the root branches will be rebalanced (an even
split of the branch length between both sides of the root), as done by the
command 'phytree tree balance'.

The argument of the command is the name of the project file.

By default, all trees in the project will be rooted. If the flag --tree is
set, only the indicated tree will be rooted.

The results are stored in the tree file of the project.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var balance bool
var outgroup string
var treeName string

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&balance, "balance", false, "")
	c.Flags().StringVar(&outgroup, "outgroup", "", "")
	c.Flags().StringVar(&treeName, "tree", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	if outgroup == "" {
		return c.UsageError("flag --outgroup must be defined")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}

	tc, err := p.Trees()
	if err != nil {
		return err
	}

	ls := tc.Names()
	if treeName != "" {
		if t := tc.Tree(treeName); t == nil {
			return fmt.Errorf("tree %q not in project %q", treeName, args[0])
		}
		ls = []string{treeName}
	}

	for _, tn := range ls {
		t := tc.Tree(tn)
		if err := t.Reroot(outgroup); err != nil {
			return err
		}
		if !balance {
			continue
		}
		if err := t.Rebalance(); err != nil {
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
