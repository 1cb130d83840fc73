// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package remove implements a command to remove trees
// from a PhyTree project.
package remove

import (
	"fmt"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/phytree/project"
	"github.com/js-arias/phytree/tree"
)

var Command = &command.Command{
	Usage: "remove --tree <tree> <project-file>",
	Short: "remove trees from a PhyTree project",
	Long: `
Command remove reads the trees from a PhyTree project and removes the
indicated tree from the tree file of the project.

The flag --tree is required, and indicates the name of the tree to be
removed.

The argument of the command is the name of the project file.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var treeName string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&treeName, "tree", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	if treeName == "" {
		return c.UsageError("flag --tree must be defined")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}

	tc, err := p.Trees()
	if err != nil {
		return err
	}

	if t := tc.Tree(treeName); t == nil {
		return fmt.Errorf("tree %q not in project %q", treeName, args[0])
	}
	tc.Delete(treeName)

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
