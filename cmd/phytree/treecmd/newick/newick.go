// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package newick implements a command to export
// the trees of a PhyTree project
// in parenthetical (newick) format.
package newick

import (
	"bufio"
	"fmt"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/phytree/project"
	"github.com/js-arias/phytree/tree"
)

var Command = &command.Command{
	Usage: `newick [--tree <tree>]
	[-o|--output <out-prefix>] <project-file>`,
	Short: "export project trees in newick format",
	Long: `
Command newick reads the trees from a PhyTree project and writes each tree
into a file in parenthetical (newick) format, the text format understood by
most phylogenetic tree viewers. In this format each node is written as
"(children)label:branch-length", and the tree ends with a semicolon.

The argument of the command is the name of the project file.

By default, all trees in the project will be exported. If the flag --tree is
set, only the indicated tree will be exported.

By default, the names of the trees will be used as the output file names,
with the extension '.tre'. Use the flag -o, or --output, to define a prefix
for the resulting files.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var outPrefix string
var treeName string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&outPrefix, "output", "", "")
	c.Flags().StringVar(&outPrefix, "o", "", "")
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

	ls := tc.Names()
	if treeName != "" {
		if t := tc.Tree(treeName); t == nil {
			return fmt.Errorf("tree %q not in project %q", treeName, args[0])
		}
		ls = []string{treeName}
	}

	for _, tn := range ls {
		if err := writeNewick(tc.Tree(tn)); err != nil {
			return err
		}
	}
	return nil
}

func writeNewick(t *tree.Tree) (err error) {
	name := t.Name() + ".tre"
	if outPrefix != "" {
		name = fmt.Sprintf("%s-%s.tre", outPrefix, t.Name())
	}

	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	bw := bufio.NewWriter(f)
	if err := t.Newick(bw); err != nil {
		return fmt.Errorf("while writing file %q: %v", name, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("while writing file %q: %v", name, err)
	}
	return nil
}
