//
// garble.go
//
// Copyright (c) 2019-2025 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"crypto/aes"
	"crypto/cipher"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/markkurossi/gcmp/env"
	"github.com/markkurossi/gcmp/ot"
	"golang.org/x/crypto/chacha20"
)

// KeySize specifies the gate cipher key size in bytes.
const KeySize = 32

// TableSize specifies the number of rows in a garbled table.
const TableSize = 4

// ErrIntegrity is returned when garbled tables or labels are
// malformed or corrupted. The evaluation result is not usable.
var ErrIntegrity = errors.New("garbled circuit integrity failure")

func idx(l0, l1 ot.Label) int {
	var ret int
	if l0.S() {
		ret |= 0x2
	}
	if l1.S() {
		ret |= 0x1
	}
	return ret
}

func encrypt(alg cipher.Block, a, b, c ot.Label, t uint32,
	data *ot.LabelData) ot.Label {

	k := makeK(a, b, t)

	k.GetData(data)
	alg.Encrypt(data[:], data[:])

	var pi ot.Label
	pi.SetData(data)
	pi.Xor(k)
	pi.Xor(c)

	return pi
}

func decrypt(alg cipher.Block, a, b ot.Label, t uint32, c ot.Label,
	data *ot.LabelData) ot.Label {

	k := makeK(a, b, t)

	k.GetData(data)
	alg.Encrypt(data[:], data[:])

	var crypted ot.Label
	crypted.SetData(data)
	c.Xor(crypted)
	c.Xor(k)

	return c
}

func makeK(a, b ot.Label, t uint32) ot.Label {
	a.Mul2()
	b.Mul4()
	a.Xor(b)
	a.Xor(ot.NewTweak(t))

	return a
}

// labelSource generates wire labels from a chacha20 keystream.
type labelSource struct {
	stream *chacha20.Cipher
}

func newLabelSource(rand io.Reader) (*labelSource, error) {
	var seed [chacha20.KeySize + chacha20.NonceSize]byte
	if _, err := io.ReadFull(rand, seed[:]); err != nil {
		return nil, err
	}
	stream, err := chacha20.NewUnauthenticatedCipher(
		seed[:chacha20.KeySize], seed[chacha20.KeySize:])
	if err != nil {
		return nil, err
	}
	return &labelSource{
		stream: stream,
	}, nil
}

func (src *labelSource) label() ot.Label {
	var data ot.LabelData
	var label ot.Label

	src.stream.XORKeyStream(data[:], data[:])
	label.SetData(&data)
	return label
}

// Garbled contains a garbled circuit. The Key, Tables, and Decode are
// sent to the evaluator. The Inputs and Outputs label pairs are
// private to the generator.
type Garbled struct {
	Key     []byte
	Tables  [][]ot.Label
	Inputs  []ot.Wire
	Outputs []ot.Wire
	Decode  DecodeTable
}

// Garble garbles the circuit with free-XOR and point-and-permute. The
// XOR, XNOR, and INV gates are free. The AND and OR gates get a
// garbled table of TableSize rows, ordered by the S bits of the input
// labels. All labels, the free-XOR offset, and the gate key are
// generated fresh for each call.
func (c *Circuit) Garble(cfg *env.Config) (*Garbled, error) {
	rand := cfg.GetRandom()

	key := make([]byte, KeySize)
	if _, err := io.ReadFull(rand, key); err != nil {
		return nil, errors.Wrap(err, "gate key")
	}
	alg, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	src, err := newLabelSource(rand)
	if err != nil {
		return nil, errors.Wrap(err, "label source")
	}

	// Free-XOR offset. The S bit is set so that the labels of each
	// wire have opposite S bits.
	r := src.label()
	r.SetS(true)

	wires := make([]ot.Wire, c.NumWires)
	makeWire := func(l0 ot.Label) ot.Wire {
		l1 := l0
		l1.Xor(r)
		return ot.Wire{
			L0: l0,
			L1: l1,
		}
	}

	numInputs := c.Inputs.Size()
	for i := 0; i < numInputs; i++ {
		wires[i] = makeWire(src.label())
	}

	var data ot.LabelData
	tables := make([][]ot.Label, len(c.Gates))

	for id := 0; id < len(c.Gates); id++ {
		gate := &c.Gates[id]
		a := wires[gate.Input0]

		switch gate.Op {
		case XOR:
			l0 := a.L0
			l0.Xor(wires[gate.Input1].L0)
			wires[gate.Output] = makeWire(l0)

		case XNOR:
			l0 := a.L0
			l0.Xor(wires[gate.Input1].L0)
			l0.Xor(r)
			wires[gate.Output] = makeWire(l0)

		case INV:
			wires[gate.Output] = makeWire(a.L1)

		case AND, OR:
			b := wires[gate.Input1]
			o := makeWire(src.label())
			wires[gate.Output] = o

			// a b | AND OR
			// ----+-------
			// 0 0 |  0   0
			// 0 1 |  0   1
			// 1 0 |  0   1
			// 1 1 |  1   1
			c00, c01, c10, c11 := o.L0, o.L0, o.L0, o.L1
			if gate.Op == OR {
				c01, c10 = o.L1, o.L1
			}

			table := make([]ot.Label, TableSize)
			t := uint32(id)
			table[idx(a.L0, b.L0)] = encrypt(alg, a.L0, b.L0, c00, t, &data)
			table[idx(a.L0, b.L1)] = encrypt(alg, a.L0, b.L1, c01, t, &data)
			table[idx(a.L1, b.L0)] = encrypt(alg, a.L1, b.L0, c10, t, &data)
			table[idx(a.L1, b.L1)] = encrypt(alg, a.L1, b.L1, c11, t, &data)
			tables[id] = table

		default:
			return nil, errors.AssertionFailedf("invalid gate %s", gate.Op)
		}
	}

	outputs := make([]ot.Wire, len(c.OutputWires))
	for i, w := range c.OutputWires {
		outputs[i] = wires[w]
	}

	return &Garbled{
		Key:     key,
		Tables:  tables,
		Inputs:  wires[:numInputs],
		Outputs: outputs,
		Decode:  NewDecodeTable(outputs),
	}, nil
}

// InputLabels selects the labels of the input argument arg for the
// MSB-first bits.
func (g *Garbled) InputLabels(c *Circuit, arg int, bits []bool) (
	[]ot.Label, error) {

	wires, err := g.InputWires(c, arg)
	if err != nil {
		return nil, err
	}
	if len(bits) != len(wires) {
		return nil, errors.Errorf("invalid input %d: got %d bits, expected %d",
			arg, len(bits), len(wires))
	}
	result := make([]ot.Label, len(bits))
	for i, bit := range bits {
		result[i] = wires[i].Select(bit)
	}
	return result, nil
}

// InputWires returns the label pairs of the input argument arg.
func (g *Garbled) InputWires(c *Circuit, arg int) ([]ot.Wire, error) {
	if arg < 0 || arg >= len(c.Inputs) {
		return nil, errors.Errorf("invalid input argument %d", arg)
	}
	var offset int
	for i := 0; i < arg; i++ {
		offset += c.Inputs[i].Size
	}
	return g.Inputs[offset : offset+c.Inputs[arg].Size], nil
}
