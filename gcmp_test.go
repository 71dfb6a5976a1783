//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package gcmp

import (
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	qt "github.com/frankban/quicktest"
	"github.com/holiman/uint256"
	"github.com/markkurossi/gcmp/compare"
	"github.com/markkurossi/gcmp/env"
)

func sign[T int64 | uint64](x, y T) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

type relations struct {
	cmp                    int
	eq, ne, lt, le, gt, ge bool
}

func checkRelations(c *qt.C, got relations, want int) {
	c.Helper()
	c.Check(got.cmp, qt.Equals, want)
	c.Check(got.eq, qt.Equals, want == 0)
	c.Check(got.ne, qt.Equals, want != 0)
	c.Check(got.lt, qt.Equals, want < 0)
	c.Check(got.le, qt.Equals, want <= 0)
	c.Check(got.gt, qt.Equals, want > 0)
	c.Check(got.ge, qt.Equals, want >= 0)
}

func uintRelations[W Width](c *qt.C, a, b Uint[W]) relations {
	var r relations
	var err error

	r.cmp, err = a.Cmp(b)
	c.Assert(err, qt.IsNil)
	r.eq, err = a.Equal(b)
	c.Assert(err, qt.IsNil)
	r.ne, err = a.NotEqual(b)
	c.Assert(err, qt.IsNil)
	r.lt, err = a.Less(b)
	c.Assert(err, qt.IsNil)
	r.le, err = a.LessEqual(b)
	c.Assert(err, qt.IsNil)
	r.gt, err = a.Greater(b)
	c.Assert(err, qt.IsNil)
	r.ge, err = a.GreaterEqual(b)
	c.Assert(err, qt.IsNil)
	return r
}

func intRelations[W Width](c *qt.C, a, b Int[W]) relations {
	var r relations
	var err error

	r.cmp, err = a.Cmp(b)
	c.Assert(err, qt.IsNil)
	r.eq, err = a.Equal(b)
	c.Assert(err, qt.IsNil)
	r.ne, err = a.NotEqual(b)
	c.Assert(err, qt.IsNil)
	r.lt, err = a.Less(b)
	c.Assert(err, qt.IsNil)
	r.le, err = a.LessEqual(b)
	c.Assert(err, qt.IsNil)
	r.gt, err = a.Greater(b)
	c.Assert(err, qt.IsNil)
	r.ge, err = a.GreaterEqual(b)
	c.Assert(err, qt.IsNil)
	return r
}

func TestUint8(t *testing.T) {
	c := qt.New(t)

	tests := []struct {
		x, y uint8
	}{
		{100, 150},
		{200, 200},
		{0, 255},
		{255, 0},
		{123, 124},
		{123, 123},
	}
	for _, test := range tests {
		got := uintRelations(c, NewUint8(test.x), NewUint8(test.y))
		checkRelations(c, got, sign(uint64(test.x), uint64(test.y)))
	}
}

func TestUintWidths(t *testing.T) {
	c := qt.New(t)

	checkRelations(c, uintRelations(c, NewUint16(1000), NewUint16(2000)), -1)
	checkRelations(c, uintRelations(c, NewUint16(2000), NewUint16(1000)), 1)
	checkRelations(c, uintRelations(c, NewUint32(70000), NewUint32(70000)), 0)
	checkRelations(c, uintRelations(c, NewUint32(math.MaxUint32),
		NewUint32(1)), 1)
	checkRelations(c, uintRelations(c, NewUint64(1<<40),
		NewUint64(1<<40+1)), -1)
	checkRelations(c, uintRelations(c, NewUint64(math.MaxUint64),
		NewUint64(math.MaxUint64)), 0)

	small, err := NewUint128(uint256.NewInt(math.MaxUint64))
	c.Assert(err, qt.IsNil)
	big, err := NewUint128(new(uint256.Int).Lsh(uint256.NewInt(1), 100))
	c.Assert(err, qt.IsNil)
	checkRelations(c, uintRelations(c, small, big), -1)
	checkRelations(c, uintRelations(c, big, small), 1)
	checkRelations(c, uintRelations(c, big, big), 0)

	_, err = NewUint128(new(uint256.Int).Lsh(uint256.NewInt(1), 128))
	c.Assert(err, qt.IsNotNil)
}

func TestIntWidths(t *testing.T) {
	c := qt.New(t)

	checkRelations(c, intRelations(c, NewInt8(-100), NewInt8(100)), -1)
	checkRelations(c, intRelations(c, NewInt8(100), NewInt8(-100)), 1)
	checkRelations(c, intRelations(c, NewInt8(math.MinInt8),
		NewInt8(math.MaxInt8)), -1)
	checkRelations(c, intRelations(c, NewInt8(-1), NewInt8(-2)), 1)
	checkRelations(c, intRelations(c, NewInt16(-300), NewInt16(-300)), 0)
	checkRelations(c, intRelations(c, NewInt32(math.MinInt32),
		NewInt32(0)), -1)
	checkRelations(c, intRelations(c, NewInt64(math.MaxInt64),
		NewInt64(math.MinInt64)), 1)

	minusOne, err := NewInt128(new(uint256.Int).Neg(uint256.NewInt(1)))
	c.Assert(err, qt.IsNil)
	one, err := NewInt128(uint256.NewInt(1))
	c.Assert(err, qt.IsNil)
	checkRelations(c, intRelations(c, minusOne, one), -1)
	checkRelations(c, intRelations(c, one, minusOne), 1)
	checkRelations(c, intRelations(c, minusOne, minusOne), 0)
}

func TestReflexive(t *testing.T) {
	c := qt.New(t)

	for _, v := range []uint16{0, 1, 0x7fff, 0x8000, 0xffff} {
		a := NewUint16(v)
		checkRelations(c, uintRelations(c, a, a), 0)
	}
	for _, v := range []int16{math.MinInt16, -1, 0, 1, math.MaxInt16} {
		a := NewInt16(v)
		checkRelations(c, intRelations(c, a, a), 0)
	}
}

func TestTotalOrder(t *testing.T) {
	c := qt.New(t)

	values := []int8{-128, -100, -1, 0, 1, 100, 127}
	for _, x := range values {
		for _, y := range values {
			a := NewInt8(x)
			b := NewInt8(y)

			ab, err := a.Cmp(b)
			c.Assert(err, qt.IsNil)
			ba, err := b.Cmp(a)
			c.Assert(err, qt.IsNil)
			c.Assert(ab, qt.Equals, -ba, qt.Commentf("%d <=> %d", x, y))
			c.Assert(ab, qt.Equals, sign(int64(x), int64(y)))
		}
	}
}

func TestZeroValue(t *testing.T) {
	c := qt.New(t)

	var zero Uint32
	checkRelations(c, uintRelations(c, zero, NewUint32(0)), 0)
	checkRelations(c, uintRelations(c, zero, NewUint32(1)), -1)

	var izero Int64
	checkRelations(c, intRelations(c, izero, NewInt64(-1)), 1)
}

func TestComparator(t *testing.T) {
	c := qt.New(t)

	cmp := NewComparator(&env.Config{})

	got, err := NewUint8(1).CmpWith(cmp, NewUint8(2))
	c.Assert(err, qt.IsNil)
	c.Assert(got, qt.Equals, -1)

	eq, err := NewInt8(-3).EqualWith(cmp, NewInt8(-3))
	c.Assert(err, qt.IsNil)
	c.Assert(eq, qt.IsTrue)

	o, err := cmp.Compare(NewUint64(7), NewUint64(5))
	c.Assert(err, qt.IsNil)
	c.Assert(o, qt.Equals, compare.Greater)
}

func TestComparatorMismatch(t *testing.T) {
	c := qt.New(t)

	cmp := NewComparator(nil)

	_, err := cmp.Compare(NewUint8(1), NewUint16(1))
	c.Assert(errors.Is(err, compare.ErrMismatch), qt.IsTrue)

	_, err = cmp.Equal(NewUint8(1), NewInt8(1))
	c.Assert(errors.Is(err, compare.ErrMismatch), qt.IsTrue)
}

func TestNative(t *testing.T) {
	c := qt.New(t)

	c.Assert(Native(NewUint8(200).Value()), qt.Equals, uint8(200))
	c.Assert(Native(NewInt16(-300).Value()), qt.Equals, int16(-300))
	c.Assert(Native(NewUint32(70000).Value()), qt.Equals, uint32(70000))
	c.Assert(Native(NewInt64(math.MinInt64).Value()), qt.Equals,
		int64(math.MinInt64))

	v, err := NewUint128(uint256.NewInt(42))
	c.Assert(err, qt.IsNil)
	c.Assert(Native(v.Value()).(*uint256.Int).Uint64(), qt.Equals,
		uint64(42))
}

func TestString(t *testing.T) {
	c := qt.New(t)

	c.Assert(NewInt8(-100).String(), qt.Equals, "-100:int8")
	c.Assert(NewUint16(1000).String(), qt.Equals, "1000:uint16")
}
