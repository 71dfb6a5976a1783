//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package gcmp

import (
	"github.com/markkurossi/gcmp/compare"
	"github.com/markkurossi/gcmp/env"
)

var defaultComparator = NewComparator(nil)

// Comparator executes comparisons with its configuration. Each
// comparison garbles a fresh circuit and transfers the second
// operand's input labels with oblivious transfer. A Comparator is
// safe for concurrent use.
type Comparator struct {
	executor *compare.Executor
}

// NewComparator creates a new comparator. The nil configuration uses
// the crypto/rand entropy source and disables logging.
func NewComparator(cfg *env.Config) *Comparator {
	return &Comparator{
		executor: compare.NewExecutor(cfg),
	}
}

// Compare compares a and b. The operands must have the same width
// and signedness; mismatching operands return compare.ErrMismatch.
func (c *Comparator) Compare(a, b Integer) (compare.Ordering, error) {
	return c.executor.BuildAndExecuteComparator(a.Value(), b.Value())
}

// Equal tests if a equals b. The operands must have the same width
// and signedness.
func (c *Comparator) Equal(a, b Integer) (bool, error) {
	return c.executor.BuildAndExecuteEquality(a.Value(), b.Value())
}
