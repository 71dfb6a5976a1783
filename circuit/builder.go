//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"fmt"
)

// Builder allocates wires and gates for a new circuit. The gates are
// appended in creation order which is also a valid evaluation order
// since a gate can only reference wires that already exist.
type Builder struct {
	inputs   IO
	numWires int
	gates    []Gate
	stats    Stats
}

// NewBuilder creates a new circuit builder for the input arguments.
func NewBuilder(inputs IO) *Builder {
	return &Builder{
		inputs:   inputs,
		numWires: inputs.Size(),
	}
}

// Input returns the wire of the argument arg's bit.
func (b *Builder) Input(arg, bit int) Wire {
	if arg < 0 || arg >= len(b.inputs) {
		panic(fmt.Sprintf("invalid input argument %d", arg))
	}
	if bit < 0 || bit >= b.inputs[arg].Size {
		panic(fmt.Sprintf("invalid bit %d for input %s", bit, b.inputs[arg]))
	}
	var offset int
	for i := 0; i < arg; i++ {
		offset += b.inputs[i].Size
	}
	return Wire(offset + bit)
}

func (b *Builder) gate(op Operation, i0, i1 Wire) Wire {
	o := Wire(b.numWires)
	b.numWires++
	b.gates = append(b.gates, Gate{
		Input0: i0,
		Input1: i1,
		Output: o,
		Op:     op,
	})
	b.stats[op]++
	return o
}

// XOR adds an XOR gate and returns its output wire.
func (b *Builder) XOR(x, y Wire) Wire {
	return b.gate(XOR, x, y)
}

// XNOR adds an XNOR gate and returns its output wire.
func (b *Builder) XNOR(x, y Wire) Wire {
	return b.gate(XNOR, x, y)
}

// AND adds an AND gate and returns its output wire.
func (b *Builder) AND(x, y Wire) Wire {
	return b.gate(AND, x, y)
}

// OR adds an OR gate and returns its output wire.
func (b *Builder) OR(x, y Wire) Wire {
	return b.gate(OR, x, y)
}

// INV adds an INV gate and returns its output wire.
func (b *Builder) INV(x Wire) Wire {
	return b.gate(INV, x, 0)
}

// Compile creates the circuit with the output arguments. The wires
// argument lists the output wires in argument order.
func (b *Builder) Compile(outputs IO, wires []Wire) (*Circuit, error) {
	if outputs.Size() != len(wires) {
		return nil, fmt.Errorf("invalid outputs: got %d wires, expected %d",
			len(wires), outputs.Size())
	}
	for _, w := range wires {
		if w.ID() >= b.numWires {
			return nil, fmt.Errorf("unknown output wire %s", w)
		}
	}
	out := make([]Wire, len(wires))
	copy(out, wires)

	return &Circuit{
		NumGates:    len(b.gates),
		NumWires:    b.numWires,
		Inputs:      b.inputs,
		Outputs:     outputs,
		OutputWires: out,
		Gates:       b.gates,
		Stats:       b.stats,
	}, nil
}
