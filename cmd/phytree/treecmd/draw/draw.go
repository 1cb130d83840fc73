// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package draw implements a command to draw
// trees in a PhyTree project as SVG files.
package draw

import (
	"bufio"
	"fmt"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/phytree/project"
)

var Command = &command.Command{
	Usage: `draw [--tree <tree>]
	[--color] [--nolabels] [--step <value>]
	[-o|--output <out-prefix>]
	<project-file>`,
	Short: "draw project trees as SVG files",
	Long: `
Command draw reads a PhyTree project and draws the trees into a SVG-encoded
file.

The argument of the command is the name of the project file.

By default, 100 pixel units will be used per branch length unit; use the flag
--step to define a different value (it can have decimal points).

By default, all trees in the project will be drawn. If the flag --tree is
set, only the indicated tree will be printed.

By default, internal node labels (usually support values) will be drawn. If
the flag --nolabels is given, then it will draw the tree without the labels.

If the flag --color is given, each branch will be colored by the support
value of its closing node, using a color-blind-safe sequential scale, from 0
(dark) to 100 (light). Branches without a support value are drawn in black.

By default, the names of the trees will be used as the output file names. Use
the flag -o, or --output, to define a prefix for the resulting files.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var useColor bool
var noLabels bool
var stepX float64
var outPrefix string
var treeName string

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&useColor, "color", false, "")
	c.Flags().BoolVar(&noLabels, "nolabels", false, "")
	c.Flags().Float64Var(&stepX, "step", 100, "")
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
		t := copyTree(tc.Tree(tn), stepX)
		if err := writeSVG(tn, t); err != nil {
			return err
		}
	}
	return nil
}

func writeSVG(name string, t svgTree) (err error) {
	if outPrefix != "" {
		name = fmt.Sprintf("%s-%s.svg", outPrefix, name)
	} else {
		name += ".svg"
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
	if err := t.draw(bw); err != nil {
		return fmt.Errorf("while writing file %q: %v", name, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("while writing file %q: %v", name, err)
	}
	return nil
}
