//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

// Package integer implements bit-encoded fixed-width integers. A
// Value is the input form of the comparison circuits: an immutable
// MSB-first bit vector tagged with its signedness.
package integer

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/holiman/uint256"
)

// Encoding errors.
var (
	ErrWidth = errors.New("invalid integer width")
	ErrRange = errors.New("value out of range")
)

// MaxWidth specifies the maximum supported width in bits.
const MaxWidth = 256

// Value implements an immutable bit-encoded integer.
type Value struct {
	bits   []bool
	signed bool
}

// New creates a new value from the MSB-first bits. The bits are
// copied.
func New(bits []bool, signed bool) (*Value, error) {
	if len(bits) == 0 || len(bits) > MaxWidth {
		return nil, errors.Wrapf(ErrWidth, "width %d", len(bits))
	}
	v := &Value{
		bits:   make([]bool, len(bits)),
		signed: signed,
	}
	copy(v.bits, bits)
	return v, nil
}

func checkWidth(width, max int) error {
	if width <= 0 || width > max {
		return errors.Wrapf(ErrWidth, "width %d not in range 1..%d",
			width, max)
	}
	return nil
}

// FromUint64 encodes the unsigned value v into width bits.
func FromUint64(v uint64, width int) (*Value, error) {
	if err := checkWidth(width, 64); err != nil {
		return nil, err
	}
	if width < 64 && v>>width != 0 {
		return nil, errors.Wrapf(ErrRange, "%d does not fit in %d bits",
			v, width)
	}
	return fromBits(width, false, func(i int) bool {
		return v&(1<<i) != 0
	}), nil
}

// FromInt64 encodes the signed value v into width bits using two's
// complement.
func FromInt64(v int64, width int) (*Value, error) {
	if err := checkWidth(width, 64); err != nil {
		return nil, err
	}
	if width < 64 {
		min := int64(-1) << (width - 1)
		max := -min - 1
		if v < min || v > max {
			return nil, errors.Wrapf(ErrRange, "%d does not fit in int%d",
				v, width)
		}
	}
	u := uint64(v)
	return fromBits(width, true, func(i int) bool {
		return u&(1<<i) != 0
	}), nil
}

// FromUint256 encodes v into width bits. If signed is true, v is
// interpreted as a 256-bit two's complement number.
func FromUint256(v *uint256.Int, width int, signed bool) (*Value, error) {
	if err := checkWidth(width, MaxWidth); err != nil {
		return nil, err
	}
	if signed {
		if v.Sign() < 0 {
			// Negative values fit if -v-1 fits in width-1 bits.
			mag := new(uint256.Int).Neg(v)
			mag.SubUint64(mag, 1)
			if mag.BitLen() > width-1 {
				return nil, errors.Wrapf(ErrRange,
					"value does not fit in int%d", width)
			}
		} else if v.BitLen() > width-1 {
			return nil, errors.Wrapf(ErrRange,
				"%s does not fit in int%d", v.Dec(), width)
		}
	} else if v.BitLen() > width {
		return nil, errors.Wrapf(ErrRange, "%s does not fit in %d bits",
			v.Dec(), width)
	}
	return fromBits(width, signed, func(i int) bool {
		return v[i/64]&(1<<(i%64)) != 0
	}), nil
}

// fromBits creates a value from the bit function that returns the
// LSB-first bit i.
func fromBits(width int, signed bool, bit func(i int) bool) *Value {
	v := &Value{
		bits:   make([]bool, width),
		signed: signed,
	}
	for i := 0; i < width; i++ {
		v.bits[width-1-i] = bit(i)
	}
	return v
}

// Width returns the value width in bits.
func (v *Value) Width() int {
	return len(v.bits)
}

// Signed tests if the value is a two's complement signed value.
func (v *Value) Signed() bool {
	return v.signed
}

// Bit returns the i'th bit, counting from the most significant
// bit. The function panics if i is out of range.
func (v *Value) Bit(i int) bool {
	if i < 0 || i >= len(v.bits) {
		panic(fmt.Sprintf("bit index %d out of range [0,%d)", i, len(v.bits)))
	}
	return v.bits[i]
}

// Bits returns a copy of the MSB-first bits.
func (v *Value) Bits() []bool {
	result := make([]bool, len(v.bits))
	copy(result, v.bits)
	return result
}

// Compatible tests if the values have the same width and signedness
// family.
func (v *Value) Compatible(o *Value) bool {
	return v.Width() == o.Width() && v.signed == o.signed
}

// Uint256 decodes the value. Signed values are sign extended to 256
// bits.
func (v *Value) Uint256() *uint256.Int {
	result := new(uint256.Int)
	width := len(v.bits)
	for i := 0; i < MaxWidth; i++ {
		var set bool
		if i < width {
			set = v.bits[width-1-i]
		} else {
			set = v.signed && v.bits[0]
		}
		if set {
			result[i/64] |= 1 << (i % 64)
		}
	}
	return result
}

// Uint64 decodes the low 64 bits of the value.
func (v *Value) Uint64() uint64 {
	return v.Uint256().Uint64()
}

// Int64 decodes the low 64 bits of the value as a signed integer.
func (v *Value) Int64() int64 {
	return int64(v.Uint64())
}

func (v *Value) String() string {
	val := v.Uint256()
	var prefix string
	if v.signed && val.Sign() < 0 {
		prefix = "-"
		val.Neg(val)
	}
	var typ string
	if v.signed {
		typ = "int"
	} else {
		typ = "uint"
	}
	return fmt.Sprintf("%s%s:%s%d", prefix, val.Dec(), typ, v.Width())
}

// Binary returns the MSB-first bits as a string of 0 and 1
// characters.
func (v *Value) Binary() string {
	var sb strings.Builder
	for _, b := range v.bits {
		if b {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// Parse parses the decimal string s into width bits. Negative values
// are accepted only if signed is true.
func Parse(s string, width int, signed bool) (*Value, error) {
	digits := strings.TrimPrefix(s, "-")
	neg := len(digits) != len(s)
	if neg && !signed {
		return nil, errors.Wrapf(ErrRange, "negative value %s for uint%d",
			s, width)
	}
	v, err := uint256.FromDecimal(digits)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid value '%s'", s)
	}
	if signed && v.BitLen() > MaxWidth-1 {
		return nil, errors.Wrapf(ErrRange, "%s does not fit in int%d",
			s, width)
	}
	if neg {
		v.Neg(v)
	}
	return FromUint256(v, width, signed)
}
