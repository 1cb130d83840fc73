// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package boot implements a command to build
// bootstrap pseudo-replicates
// of the character matrix of a PhyTree project.
package boot

import (
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/js-arias/command"
	"github.com/js-arias/phytree/matrix"
	"github.com/js-arias/phytree/project"
)

var Command = &command.Command{
	Usage: `boot [--replicates <number>] [--seed <value>]
	[-o|--output <out-prefix>] <project-file>`,
	Short: "build bootstrap replicates of the character matrix",
	Long: `
Command boot reads the character matrix from a PhyTree project and writes one
or more bootstrap pseudo-replicates, that is, matrices of the same size built
by sampling the characters of the original matrix with replacement. The
replicate files can then be used as input for an external tree search
program.

The argument of the command is the name of the project file.

By default, a single replicate will be created; use the flag --replicates to
define a different number of replicates.

By default, the current time will be used to seed the random number
generator. The used seed is always printed, so the run can be reproduced by
using the flag --seed with the printed value.

Each replicate is written as a tab-delimited matrix file. By default, the
replicate files will be named 'boot-1.tab', 'boot-2.tab', and so on; use the
flag -o, or --output, to define a different prefix.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var replicates int
var seed int64
var outPrefix string

func setFlags(c *command.Command) {
	c.Flags().IntVar(&replicates, "replicates", 1, "")
	c.Flags().Int64Var(&seed, "seed", 0, "")
	c.Flags().StringVar(&outPrefix, "output", "boot", "")
	c.Flags().StringVar(&outPrefix, "o", "boot", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	if replicates < 1 {
		return c.UsageError("invalid --replicates value")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}

	m, err := p.Characters()
	if err != nil {
		return err
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	fmt.Fprintf(c.Stdout(), "# random seed: %d\n", seed)
	rnd := rand.New(rand.NewPCG(uint64(seed), uint64(seed)))

	for i := range replicates {
		b := m.Resample(rnd)
		name := fmt.Sprintf("%s-%d.tab", outPrefix, i+1)
		if err := writeMatrix(b, name); err != nil {
			return err
		}
	}
	return nil
}

func writeMatrix(m *matrix.Matrix, name string) (err error) {
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

	if err := m.TSV(f); err != nil {
		return fmt.Errorf("while writing to %q: %v", name, err)
	}
	return nil
}
