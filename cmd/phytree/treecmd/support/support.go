// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package support implements a command to report
// the support values of the trees
// in a PhyTree project.
package support

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/js-arias/command"
	"github.com/js-arias/phytree/project"
	"github.com/js-arias/phytree/tree"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var Command = &command.Command{
	Usage: `support [--tree <tree>]
	[--plot <out-prefix>] <project-file>`,
	Short: "report the support values of project trees",
	Long: `
Command support reads the trees of a PhyTree project and prints a summary of
the support values stored in the labels of the internal nodes of each tree:
the number of labeled nodes, the minimum, maximum, and mean support, and the
support quartiles.

Internal node labels that cannot be read as numbers are ignored.

The argument of the command is the name of the project file.

By default, all trees in the project will be reported. If the flag --tree is
set, only the indicated tree will be reported.

If the flag --plot is given with a file prefix, a histogram of the support
values of each tree will be saved as a PNG file, using the prefix and the
tree name as the file name.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var plotPrefix string
var treeName string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&plotPrefix, "plot", "", "")
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
		t := tc.Tree(tn)
		vals := supportValues(t)
		if len(vals) == 0 {
			fmt.Fprintf(c.Stdout(), "%s: no support values\n", tn)
			continue
		}

		fmt.Fprintf(c.Stdout(), "%s: %d labeled nodes\n", tn, len(vals))
		fmt.Fprintf(c.Stdout(), "\tminimum: %.3f\n", vals[0])
		fmt.Fprintf(c.Stdout(), "\tmaximum: %.3f\n", vals[len(vals)-1])
		fmt.Fprintf(c.Stdout(), "\tmean:    %.3f\n", stat.Mean(vals, nil))
		q1 := stat.Quantile(0.25, stat.Empirical, vals, nil)
		q2 := stat.Quantile(0.50, stat.Empirical, vals, nil)
		q3 := stat.Quantile(0.75, stat.Empirical, vals, nil)
		fmt.Fprintf(c.Stdout(), "\tquartiles: %.3f %.3f %.3f\n", q1, q2, q3)

		if plotPrefix == "" {
			continue
		}
		if err := plotSupport(tn, vals); err != nil {
			return err
		}
	}
	return nil
}

// supportValues returns the numeric labels
// of the internal nodes of a tree,
// sorted from smallest to largest.
func supportValues(t *tree.Tree) []float64 {
	var vals []float64
	for _, id := range t.Nodes() {
		if t.IsTerm(id) {
			continue
		}
		l := t.Label(id)
		if l == "" {
			continue
		}
		v, err := strconv.ParseFloat(l, 64)
		if err != nil {
			continue
		}
		vals = append(vals, v)
	}
	slices.Sort(vals)
	return vals
}

func plotSupport(name string, vals []float64) error {
	pt := plot.New()
	pt.Title.Text = name
	pt.X.Label.Text = "support"
	pt.Y.Label.Text = "nodes"

	h, err := plotter.NewHist(plotter.Values(vals), 10)
	if err != nil {
		return fmt.Errorf("while plotting tree %q: %v", name, err)
	}
	pt.Add(h)

	out := fmt.Sprintf("%s-%s.png", plotPrefix, name)
	if err := pt.Save(6*vg.Inch, 4*vg.Inch, out); err != nil {
		return fmt.Errorf("while writing file %q: %v", out, err)
	}
	return nil
}
