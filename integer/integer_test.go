//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package integer

import (
	"errors"
	"math"
	"testing"

	"github.com/holiman/uint256"
)

func TestFromUint64(t *testing.T) {
	tests := []struct {
		v      uint64
		width  int
		binary string
	}{
		{0, 1, "0"},
		{1, 1, "1"},
		{5, 4, "0101"},
		{200, 8, "11001000"},
		{255, 8, "11111111"},
		{1000, 16, "0000001111101000"},
	}
	for _, test := range tests {
		v, err := FromUint64(test.v, test.width)
		if err != nil {
			t.Fatalf("FromUint64(%d, %d): %v", test.v, test.width, err)
		}
		if v.Binary() != test.binary {
			t.Errorf("FromUint64(%d, %d)=%s, expected %s",
				test.v, test.width, v.Binary(), test.binary)
		}
		if v.Uint64() != test.v {
			t.Errorf("Uint64: got %d, expected %d", v.Uint64(), test.v)
		}
		if v.Signed() || v.Width() != test.width {
			t.Errorf("invalid attributes: %v", v)
		}
	}
	if _, err := FromUint64(256, 8); !errors.Is(err, ErrRange) {
		t.Errorf("256 accepted as uint8: %v", err)
	}
	if _, err := FromUint64(math.MaxUint64, 64); err != nil {
		t.Errorf("MaxUint64: %v", err)
	}
}

func TestFromInt64(t *testing.T) {
	tests := []struct {
		v      int64
		width  int
		binary string
	}{
		{-1, 8, "11111111"},
		{-100, 8, "10011100"},
		{100, 8, "01100100"},
		{-128, 8, "10000000"},
		{127, 8, "01111111"},
		{-2, 2, "10"},
	}
	for _, test := range tests {
		v, err := FromInt64(test.v, test.width)
		if err != nil {
			t.Fatalf("FromInt64(%d, %d): %v", test.v, test.width, err)
		}
		if v.Binary() != test.binary {
			t.Errorf("FromInt64(%d, %d)=%s, expected %s",
				test.v, test.width, v.Binary(), test.binary)
		}
		if v.Int64() != test.v {
			t.Errorf("Int64: got %d, expected %d", v.Int64(), test.v)
		}
	}
	for _, v := range []int64{-129, 128} {
		if _, err := FromInt64(v, 8); !errors.Is(err, ErrRange) {
			t.Errorf("%d accepted as int8: %v", v, err)
		}
	}
	if _, err := FromInt64(math.MinInt64, 64); err != nil {
		t.Errorf("MinInt64: %v", err)
	}
}

func TestFromUint256(t *testing.T) {
	v := uint256.MustFromDecimal("200000000000000000000")
	val, err := FromUint256(v, 128, false)
	if err != nil {
		t.Fatal(err)
	}
	if !val.Uint256().Eq(v) {
		t.Errorf("unsigned round trip: %s != %s", val.Uint256().Dec(), v.Dec())
	}

	neg := new(uint256.Int).Neg(v)
	val, err = FromUint256(neg, 128, true)
	if err != nil {
		t.Fatal(err)
	}
	if !val.Uint256().Eq(neg) {
		t.Errorf("signed round trip failed")
	}
	if val.String() != "-200000000000000000000:int128" {
		t.Errorf("String: %s", val)
	}
	if !val.Bit(0) {
		t.Errorf("sign bit not set")
	}

	max := new(uint256.Int).Lsh(uint256.NewInt(1), 127)
	if _, err := FromUint256(max, 128, true); !errors.Is(err, ErrRange) {
		t.Errorf("2^127 accepted as int128: %v", err)
	}
	min := new(uint256.Int).Neg(max)
	if _, err := FromUint256(min, 128, true); err != nil {
		t.Errorf("-2^127 rejected: %v", err)
	}
	min.SubUint64(min, 1)
	if _, err := FromUint256(min, 128, true); !errors.Is(err, ErrRange) {
		t.Errorf("-2^127-1 accepted as int128: %v", err)
	}
	over := new(uint256.Int).Lsh(uint256.NewInt(1), 128)
	if _, err := FromUint256(over, 128, false); !errors.Is(err, ErrRange) {
		t.Errorf("2^128 accepted as uint128: %v", err)
	}
}

func TestWidth(t *testing.T) {
	if _, err := New(nil, false); !errors.Is(err, ErrWidth) {
		t.Errorf("zero width accepted: %v", err)
	}
	if _, err := FromUint64(0, 0); !errors.Is(err, ErrWidth) {
		t.Errorf("zero width accepted: %v", err)
	}
	if _, err := FromInt64(0, 65); !errors.Is(err, ErrWidth) {
		t.Errorf("65 bit int64 accepted: %v", err)
	}
}

func TestImmutable(t *testing.T) {
	bits := []bool{true, false, true}
	v, err := New(bits, false)
	if err != nil {
		t.Fatal(err)
	}
	bits[0] = false
	if !v.Bit(0) {
		t.Fatalf("value modified through constructor argument")
	}
	copied := v.Bits()
	copied[1] = true
	if v.Bit(1) {
		t.Fatalf("value modified through Bits")
	}
}

func TestBitOutOfRange(t *testing.T) {
	v, err := FromUint64(1, 8)
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		if recover() == nil {
			t.Fatalf("Bit(8) did not panic")
		}
	}()
	v.Bit(8)
}

func TestCompatible(t *testing.T) {
	u8, _ := FromUint64(1, 8)
	u16, _ := FromUint64(1, 16)
	i8, _ := FromInt64(1, 8)
	if !u8.Compatible(u8) {
		t.Errorf("value not compatible with itself")
	}
	if u8.Compatible(u16) || u8.Compatible(i8) {
		t.Errorf("incompatible values accepted")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		s      string
		width  int
		signed bool
		str    string
	}{
		{"200", 8, false, "200:uint8"},
		{"-100", 8, true, "-100:int8"},
		{"-128", 8, true, "-128:int8"},
		{"340282366920938463463374607431768211455", 128, false,
			"340282366920938463463374607431768211455:uint128"},
		{"-170141183460469231731687303715884105728", 128, true,
			"-170141183460469231731687303715884105728:int128"},
	}
	for _, test := range tests {
		v, err := Parse(test.s, test.width, test.signed)
		if err != nil {
			t.Fatalf("Parse(%s): %v", test.s, err)
		}
		if v.String() != test.str {
			t.Errorf("Parse(%s): got %s, expected %s", test.s, v, test.str)
		}
	}

	invalid := []struct {
		s      string
		width  int
		signed bool
	}{
		{"256", 8, false},
		{"-1", 8, false},
		{"128", 8, true},
		{"-129", 8, true},
		{"12x", 16, false},
	}
	for _, test := range invalid {
		_, err := Parse(test.s, test.width, test.signed)
		if err == nil {
			t.Errorf("Parse(%s, %d, %v) succeeded", test.s, test.width,
				test.signed)
		}
	}
}
