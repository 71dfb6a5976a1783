//
// eval.go
//
// Copyright (c) 2019-2025 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"crypto/aes"

	"github.com/cockroachdb/errors"
	"github.com/markkurossi/gcmp/ot"
)

// Eval evaluates the garbled circuit with one label per input wire.
// The gates are evaluated in index order and the function returns
// the labels of the output wires. Evaluation never learns the bit
// values of the wires; malformed tables or missing labels abort the
// evaluation with ErrIntegrity.
func (c *Circuit) Eval(key []byte, tables [][]ot.Label, inputs []ot.Label) (
	[]ot.Label, error) {

	if len(inputs) != c.Inputs.Size() {
		return nil, errors.Wrapf(ErrIntegrity,
			"got %d input labels, expected %d", len(inputs), c.Inputs.Size())
	}
	if len(tables) != len(c.Gates) {
		return nil, errors.Wrapf(ErrIntegrity,
			"got %d gate tables, expected %d", len(tables), len(c.Gates))
	}
	alg, err := aes.NewCipher(key)
	if err != nil {
		return nil, errors.Mark(errors.Wrap(err, "gate key"), ErrIntegrity)
	}

	wires := make([]ot.Label, c.NumWires)
	copy(wires, inputs)

	var data ot.LabelData

	for id := 0; id < len(c.Gates); id++ {
		gate := &c.Gates[id]
		a := wires[gate.Input0]

		switch gate.Op {
		case XOR, XNOR:
			a.Xor(wires[gate.Input1])
			wires[gate.Output] = a

		case INV:
			wires[gate.Output] = a

		case AND, OR:
			table := tables[id]
			if len(table) != TableSize {
				return nil, errors.Wrapf(ErrIntegrity,
					"gate %d: got %d table rows, expected %d",
					id, len(table), TableSize)
			}
			b := wires[gate.Input1]
			wires[gate.Output] = decrypt(alg, a, b, uint32(id),
				table[idx(a, b)], &data)

		default:
			return nil, errors.AssertionFailedf("invalid gate %s", gate.Op)
		}
	}

	result := make([]ot.Label, len(c.OutputWires))
	for i, w := range c.OutputWires {
		result[i] = wires[w]
	}
	return result, nil
}
