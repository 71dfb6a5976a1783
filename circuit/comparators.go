//
// Copyright (c) 2020-2025 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"fmt"
)

// Output indices of the comparator circuit.
const (
	OutputLT = 0
	OutputEQ = 1
)

func operands(n int) IO {
	return IO{
		IOArg{
			Name: "x",
			Size: n,
		},
		IOArg{
			Name: "y",
			Size: n,
		},
	}
}

// NewEquality creates a circuit testing if two n-bit values x and y
// are equal. The inputs are MSB first. The circuit has n XNOR gates
// and n-1 AND gates, and a single output eq.
func NewEquality(n int) (*Circuit, error) {
	if n <= 0 {
		return nil, fmt.Errorf("invalid equality width %d", n)
	}
	b := NewBuilder(operands(n))

	eq := b.XNOR(b.Input(0, 0), b.Input(1, 0))
	for i := 1; i < n; i++ {
		eq = b.AND(eq, b.XNOR(b.Input(0, i), b.Input(1, i)))
	}
	return b.Compile(IO{
		IOArg{
			Name: "eq",
			Size: 1,
		},
	}, []Wire{eq})
}

// NewComparator creates a circuit comparing two n-bit values x and
// y. The inputs are MSB first. The circuit has two outputs lt (x<y)
// and eq (x==y); x>y when neither is set.
//
// The comparator processes the bits from MSB to LSB and tracks
// whether the values are still tied. The first differing bit decides
// the order. For signed values, the first bit is the sign bit and the
// operand with the sign bit set is the smaller one. The remaining
// bits of two's complement values with equal sign order as unsigned
// magnitudes.
//
// Since at most one position can decide the order, the per-bit lt
// signals are combined with free XOR gates. The circuit has 2n-1
// non-free gates.
func NewComparator(n int, signed bool) (*Circuit, error) {
	if n <= 0 {
		return nil, fmt.Errorf("invalid comparator width %d", n)
	}
	b := NewBuilder(operands(n))

	var lt, tied Wire
	for i := 0; i < n; i++ {
		x := b.Input(0, i)
		y := b.Input(1, i)

		// The operand whose bit is set is smaller at the sign bit
		// and larger at the magnitude bits.
		smaller := y
		if signed && i == 0 {
			smaller = x
		}
		diff := b.XOR(x, y)

		if i == 0 {
			lt = b.AND(diff, smaller)
			tied = b.XNOR(x, y)
			continue
		}
		decided := b.AND(tied, diff)
		lt = b.XOR(lt, b.AND(decided, smaller))
		tied = b.XOR(tied, decided)
	}

	return b.Compile(IO{
		IOArg{
			Name: "lt",
			Size: 1,
		},
		IOArg{
			Name: "eq",
			Size: 1,
		},
	}, []Wire{lt, tied})
}
