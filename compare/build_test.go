//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package compare

import (
	"testing"

	"github.com/cockroachdb/errors"
	qt "github.com/frankban/quicktest"
	"github.com/markkurossi/gcmp/circuit"
	"github.com/markkurossi/gcmp/integer"
)

func mustUint(c *qt.C, v uint64, width int) *integer.Value {
	val, err := integer.FromUint64(v, width)
	c.Assert(err, qt.IsNil)
	return val
}

func mustInt(c *qt.C, v int64, width int) *integer.Value {
	val, err := integer.FromInt64(v, width)
	c.Assert(err, qt.IsNil)
	return val
}

func TestBuildMismatch(t *testing.T) {
	c := qt.New(t)

	tests := []struct {
		name string
		a, b *integer.Value
	}{
		{"width", mustUint(c, 1, 8), mustUint(c, 1, 16)},
		{"signedness", mustUint(c, 1, 8), mustInt(c, 1, 8)},
		{"nil", mustUint(c, 1, 8), nil},
	}
	for _, test := range tests {
		c.Run(test.name, func(c *qt.C) {
			_, err := BuildComparator(test.a, test.b)
			c.Assert(errors.Is(err, ErrMismatch), qt.IsTrue)
			c.Assert(errors.HasAssertionFailure(err), qt.IsTrue)

			_, err = BuildEquality(test.a, test.b)
			c.Assert(errors.Is(err, ErrMismatch), qt.IsTrue)
		})
	}
}

func TestBuildGateCounts(t *testing.T) {
	c := qt.New(t)

	for _, width := range []int{1, 8, 16, 32, 64, 128} {
		a, err := integer.New(make([]bool, width), false)
		c.Assert(err, qt.IsNil)

		eq, err := BuildEquality(a, a)
		c.Assert(err, qt.IsNil)
		c.Check(eq.Stats[circuit.XNOR], qt.Equals, width)
		c.Check(eq.Stats[circuit.AND], qt.Equals, width-1)
		c.Check(eq.Outputs.Size(), qt.Equals, 1)

		cmp, err := BuildComparator(a, a)
		c.Assert(err, qt.IsNil)
		c.Check(cmp.NumTables(), qt.Equals, 2*width-1)
		c.Check(cmp.Outputs.Size(), qt.Equals, 2)
		c.Check(cmp.Inputs.Size(), qt.Equals, 2*width)
	}
}

func TestParseOp(t *testing.T) {
	c := qt.New(t)

	op, err := ParseOp("cmp")
	c.Assert(err, qt.IsNil)
	c.Assert(op, qt.Equals, OpCompare)

	op, err = ParseOp("EQ")
	c.Assert(err, qt.IsNil)
	c.Assert(op, qt.Equals, OpEqual)

	_, err = ParseOp("add")
	c.Assert(err, qt.IsNotNil)
}
