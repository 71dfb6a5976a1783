//
// Copyright (c) 2020-2025 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"fmt"
)

// Compute evaluates the circuit with cleartext input bits. The inputs
// are given in input wire order.
func (c *Circuit) Compute(inputs []bool) ([]bool, error) {
	if len(inputs) != c.Inputs.Size() {
		return nil, fmt.Errorf("invalid inputs: got %d, expected %d",
			len(inputs), c.Inputs.Size())
	}

	wires := make([]bool, c.NumWires)
	copy(wires, inputs)

	// Evaluate circuit.
	for _, gate := range c.Gates {
		var result bool

		switch gate.Op {
		case XOR:
			result = wires[gate.Input0] != wires[gate.Input1]

		case XNOR:
			result = wires[gate.Input0] == wires[gate.Input1]

		case AND:
			result = wires[gate.Input0] && wires[gate.Input1]

		case OR:
			result = wires[gate.Input0] || wires[gate.Input1]

		case INV:
			result = !wires[gate.Input0]

		default:
			return nil, fmt.Errorf("invalid gate %s", gate.Op)
		}

		wires[gate.Output] = result
	}

	// Construct outputs.
	result := make([]bool, len(c.OutputWires))
	for i, w := range c.OutputWires {
		result[i] = wires[w]
	}
	return result, nil
}
