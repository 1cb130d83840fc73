// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package matrixcmd is a metapackage for commands
// that dealt with discrete-character data matrices.
package matrixcmd

import (
	"github.com/js-arias/command"
	"github.com/js-arias/phytree/cmd/phytree/matrixcmd/add"
	"github.com/js-arias/phytree/cmd/phytree/matrixcmd/boot"
	"github.com/js-arias/phytree/cmd/phytree/matrixcmd/taxa"
)

var Command = &command.Command{
	Usage: "matrix <command> [<argument>...]",
	Short: "commands for discrete-character data matrices",
}

func init() {
	Command.Add(add.Command)
	Command.Add(boot.Command)
	Command.Add(taxa.Command)
}
