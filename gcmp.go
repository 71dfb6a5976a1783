//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

// Package gcmp implements privacy-preserving comparison of
// fixed-width integers with garbled circuits. The Uint and Int types
// hold bit-encoded values and their comparison methods build,
// garble, and evaluate a comparator or equality circuit for each
// call. Only the final result is decoded.
//
// The operand width is a type parameter so operands of different
// widths or signedness can not be compared:
//
//	a := gcmp.NewUint8(100)
//	b := gcmp.NewUint8(150)
//	less, err := a.Less(b)
package gcmp

import (
	"github.com/holiman/uint256"
	"github.com/markkurossi/gcmp/integer"
)

// Width specifies the operand width in bits.
type Width interface {
	Bits() int
}

// Supported widths.
type (
	W8   struct{}
	W16  struct{}
	W32  struct{}
	W64  struct{}
	W128 struct{}
)

// Bits implements Width.Bits.
func (W8) Bits() int { return 8 }

// Bits implements Width.Bits.
func (W16) Bits() int { return 16 }

// Bits implements Width.Bits.
func (W32) Bits() int { return 32 }

// Bits implements Width.Bits.
func (W64) Bits() int { return 64 }

// Bits implements Width.Bits.
func (W128) Bits() int { return 128 }

func bits[W Width]() int {
	var w W
	return w.Bits()
}

// Integer is implemented by the bit-encoded Uint and Int types.
type Integer interface {
	Value() *integer.Value
}

var (
	_ Integer = Uint8{}
	_ Integer = Int128{}
)

// Uint implements an unsigned bit-encoded integer of width W.
type Uint[W Width] struct {
	v *integer.Value
}

// Unsigned integer types.
type (
	Uint8   = Uint[W8]
	Uint16  = Uint[W16]
	Uint32  = Uint[W32]
	Uint64  = Uint[W64]
	Uint128 = Uint[W128]
)

func newUint[W Width](v uint64) Uint[W] {
	val, err := integer.FromUint64(v, bits[W]())
	if err != nil {
		// The constructors only pass values that fit into W.
		panic(err)
	}
	return Uint[W]{
		v: val,
	}
}

// NewUint8 creates a new unsigned 8-bit integer.
func NewUint8(v uint8) Uint8 {
	return newUint[W8](uint64(v))
}

// NewUint16 creates a new unsigned 16-bit integer.
func NewUint16(v uint16) Uint16 {
	return newUint[W16](uint64(v))
}

// NewUint32 creates a new unsigned 32-bit integer.
func NewUint32(v uint32) Uint32 {
	return newUint[W32](uint64(v))
}

// NewUint64 creates a new unsigned 64-bit integer.
func NewUint64(v uint64) Uint64 {
	return newUint[W64](v)
}

// NewUint128 creates a new unsigned 128-bit integer. The function
// returns an error if v does not fit in 128 bits.
func NewUint128(v *uint256.Int) (Uint128, error) {
	val, err := integer.FromUint256(v, 128, false)
	if err != nil {
		return Uint128{}, err
	}
	return Uint128{
		v: val,
	}, nil
}

// Value returns the bit-encoded value. The zero Uint is 0.
func (a Uint[W]) Value() *integer.Value {
	if a.v == nil {
		val, err := integer.New(make([]bool, bits[W]()), false)
		if err != nil {
			panic(err)
		}
		return val
	}
	return a.v
}

func (a Uint[W]) String() string {
	return a.Value().String()
}

// Cmp compares a and b and returns -1, 0, or 1 if a is less than,
// equal to, or greater than b.
func (a Uint[W]) Cmp(b Uint[W]) (int, error) {
	return a.CmpWith(defaultComparator, b)
}

// CmpWith compares a and b with the comparator c.
func (a Uint[W]) CmpWith(c *Comparator, b Uint[W]) (int, error) {
	o, err := c.Compare(a, b)
	return o.Int(), err
}

// Equal tests if a equals b.
func (a Uint[W]) Equal(b Uint[W]) (bool, error) {
	return a.EqualWith(defaultComparator, b)
}

// EqualWith tests if a equals b with the comparator c.
func (a Uint[W]) EqualWith(c *Comparator, b Uint[W]) (bool, error) {
	return c.Equal(a, b)
}

// NotEqual tests if a does not equal b.
func (a Uint[W]) NotEqual(b Uint[W]) (bool, error) {
	eq, err := a.Equal(b)
	return !eq && err == nil, err
}

// Less tests if a < b.
func (a Uint[W]) Less(b Uint[W]) (bool, error) {
	return derive(a.Cmp(b))(lt)
}

// LessEqual tests if a <= b.
func (a Uint[W]) LessEqual(b Uint[W]) (bool, error) {
	return derive(a.Cmp(b))(le)
}

// Greater tests if a > b.
func (a Uint[W]) Greater(b Uint[W]) (bool, error) {
	return derive(a.Cmp(b))(gt)
}

// GreaterEqual tests if a >= b.
func (a Uint[W]) GreaterEqual(b Uint[W]) (bool, error) {
	return derive(a.Cmp(b))(ge)
}

// Int implements a two's complement signed bit-encoded integer of
// width W.
type Int[W Width] struct {
	v *integer.Value
}

// Signed integer types.
type (
	Int8   = Int[W8]
	Int16  = Int[W16]
	Int32  = Int[W32]
	Int64  = Int[W64]
	Int128 = Int[W128]
)

func newInt[W Width](v int64) Int[W] {
	val, err := integer.FromInt64(v, bits[W]())
	if err != nil {
		panic(err)
	}
	return Int[W]{
		v: val,
	}
}

// NewInt8 creates a new signed 8-bit integer.
func NewInt8(v int8) Int8 {
	return newInt[W8](int64(v))
}

// NewInt16 creates a new signed 16-bit integer.
func NewInt16(v int16) Int16 {
	return newInt[W16](int64(v))
}

// NewInt32 creates a new signed 32-bit integer.
func NewInt32(v int32) Int32 {
	return newInt[W32](int64(v))
}

// NewInt64 creates a new signed 64-bit integer.
func NewInt64(v int64) Int64 {
	return newInt[W64](v)
}

// NewInt128 creates a new signed 128-bit integer. The argument v is
// interpreted as a 256-bit two's complement number and the function
// returns an error if it does not fit in 128 bits.
func NewInt128(v *uint256.Int) (Int128, error) {
	val, err := integer.FromUint256(v, 128, true)
	if err != nil {
		return Int128{}, err
	}
	return Int128{
		v: val,
	}, nil
}

// Value returns the bit-encoded value. The zero Int is 0.
func (a Int[W]) Value() *integer.Value {
	if a.v == nil {
		val, err := integer.New(make([]bool, bits[W]()), true)
		if err != nil {
			panic(err)
		}
		return val
	}
	return a.v
}

func (a Int[W]) String() string {
	return a.Value().String()
}

// Cmp compares a and b and returns -1, 0, or 1 if a is less than,
// equal to, or greater than b.
func (a Int[W]) Cmp(b Int[W]) (int, error) {
	return a.CmpWith(defaultComparator, b)
}

// CmpWith compares a and b with the comparator c.
func (a Int[W]) CmpWith(c *Comparator, b Int[W]) (int, error) {
	o, err := c.Compare(a, b)
	return o.Int(), err
}

// Equal tests if a equals b.
func (a Int[W]) Equal(b Int[W]) (bool, error) {
	return a.EqualWith(defaultComparator, b)
}

// EqualWith tests if a equals b with the comparator c.
func (a Int[W]) EqualWith(c *Comparator, b Int[W]) (bool, error) {
	return c.Equal(a, b)
}

// NotEqual tests if a does not equal b.
func (a Int[W]) NotEqual(b Int[W]) (bool, error) {
	eq, err := a.Equal(b)
	return !eq && err == nil, err
}

// Less tests if a < b.
func (a Int[W]) Less(b Int[W]) (bool, error) {
	return derive(a.Cmp(b))(lt)
}

// LessEqual tests if a <= b.
func (a Int[W]) LessEqual(b Int[W]) (bool, error) {
	return derive(a.Cmp(b))(le)
}

// Greater tests if a > b.
func (a Int[W]) Greater(b Int[W]) (bool, error) {
	return derive(a.Cmp(b))(gt)
}

// GreaterEqual tests if a >= b.
func (a Int[W]) GreaterEqual(b Int[W]) (bool, error) {
	return derive(a.Cmp(b))(ge)
}

func lt(cmp int) bool { return cmp < 0 }
func le(cmp int) bool { return cmp <= 0 }
func gt(cmp int) bool { return cmp > 0 }
func ge(cmp int) bool { return cmp >= 0 }

// derive applies the relation to the three-way comparison result.
func derive(cmp int, err error) func(rel func(int) bool) (bool, error) {
	return func(rel func(int) bool) (bool, error) {
		if err != nil {
			return false, err
		}
		return rel(cmp), nil
	}
}
