//
// Copyright (c) 2019-2025 Markku Rossi
//
// All rights reserved.
//

package gcmp

import (
	"github.com/markkurossi/gcmp/integer"
)

// Native converts the bit-encoded value to a Go value. Values up to
// 64 bits are returned as the smallest Go integer type holding them;
// wider values are returned as *uint256.Int, sign extended for signed
// values.
func Native(v *integer.Value) interface{} {
	bits := v.Width()
	if v.Signed() {
		if bits <= 8 {
			return int8(v.Int64())
		} else if bits <= 16 {
			return int16(v.Int64())
		} else if bits <= 32 {
			return int32(v.Int64())
		} else if bits <= 64 {
			return v.Int64()
		}
		return v.Uint256()
	}
	if bits <= 8 {
		return uint8(v.Uint64())
	} else if bits <= 16 {
		return uint16(v.Uint64())
	} else if bits <= 32 {
		return uint32(v.Uint64())
	} else if bits <= 64 {
		return v.Uint64()
	}
	return v.Uint256()
}
