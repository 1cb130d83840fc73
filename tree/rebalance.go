// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
)

// Rebalance normalizes the branch lengths
// of the root children of a tree:
// the sum of the lengths is kept,
// but it is distributed evenly among the branches.
// It also removes the label of the root,
// as a support value is meaningless
// for the root of a rooted tree.
//
// Most rooting procedures leave the full length
// of the branch in which the root is inserted
// on a single side of the root,
// so the resulting tree has an asymmetric root split
// that is an artifact of the rooting
// and not a biological signal.
//
// The operation is deterministic
// and can be applied multiple times
// without changing the result.
func (t *Tree) Rebalance() error {
	if len(t.root.desc) == 0 {
		return fmt.Errorf("tree %q: %w: root without descendants", t.name, ErrInvalidTree)
	}

	var sum float64
	for _, d := range t.root.desc {
		sum += d.brLen
	}
	brLen := sum / float64(len(t.root.desc))
	for _, d := range t.root.desc {
		d.brLen = brLen
	}
	t.root.label = ""
	return nil
}

// Rebalance normalizes the root branches
// of every tree in the collection.
// Each tree is processed independently,
// so the operation runs on parallel workers.
// Use cpu to define the number of workers;
// if cpu is zero or negative,
// all available CPUs will be used.
func (c *Collection) Rebalance(cpu int) error {
	if cpu <= 0 {
		cpu = runtime.NumCPU()
	}

	names := c.Names()
	errs := make([]error, len(names))
	in := make(chan int, cpu*2)

	var wg sync.WaitGroup
	for range cpu {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range in {
				errs[i] = c.trees[names[i]].Rebalance()
			}
		}()
	}
	for i := range names {
		in <- i
	}
	close(in)
	wg.Wait()

	return errors.Join(errs...)
}
