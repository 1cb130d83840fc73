// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package treecmd is a metapackage for commands
// that dealt with phylogenetic trees.
package treecmd

import (
	"github.com/js-arias/command"
	"github.com/js-arias/phytree/cmd/phytree/treecmd/add"
	"github.com/js-arias/phytree/cmd/phytree/treecmd/balance"
	"github.com/js-arias/phytree/cmd/phytree/treecmd/draw"
	"github.com/js-arias/phytree/cmd/phytree/treecmd/list"
	"github.com/js-arias/phytree/cmd/phytree/treecmd/newick"
	"github.com/js-arias/phytree/cmd/phytree/treecmd/remove"
	"github.com/js-arias/phytree/cmd/phytree/treecmd/root"
	"github.com/js-arias/phytree/cmd/phytree/treecmd/support"
	"github.com/js-arias/phytree/cmd/phytree/treecmd/terms"
)

var Command = &command.Command{
	Usage: "tree <command> [<argument>...]",
	Short: "commands for phylogenetic trees",
}

func init() {
	Command.Add(add.Command)
	Command.Add(balance.Command)
	Command.Add(draw.Command)
	Command.Add(list.Command)
	Command.Add(newick.Command)
	Command.Add(remove.Command)
	Command.Add(root.Command)
	Command.Add(support.Command)
	Command.Add(terms.Command)
}
