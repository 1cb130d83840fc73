// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// PhyTree is a tool to manage phylogenetic trees
// with branch lengths.
package main

import (
	"github.com/js-arias/command"
	"github.com/js-arias/phytree/cmd/phytree/matrixcmd"
	"github.com/js-arias/phytree/cmd/phytree/treecmd"
)

var app = &command.Command{
	Usage: "phytree <command> [<argument>...]",
	Short: "a tool to manage phylogenetic trees with branch lengths",
}

func init() {
	app.Add(matrixcmd.Command)
	app.Add(treecmd.Command)
}

func main() {
	app.Main()
}
