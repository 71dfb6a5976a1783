//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"errors"
	"testing"

	"github.com/markkurossi/gcmp/env"
	"github.com/markkurossi/gcmp/ot"
)

// garbledEval garbles the circuit, selects the input labels, and
// evaluates and decodes the result.
func garbledEval(t *testing.T, c *Circuit, in []bool) []bool {
	t.Helper()

	garbled, err := c.Garble(&env.Config{})
	if err != nil {
		t.Fatalf("Garble: %v", err)
	}
	labels := make([]ot.Label, len(in))
	for i, bit := range in {
		labels[i] = garbled.Inputs[i].Select(bit)
	}
	out, err := c.Eval(garbled.Key, garbled.Tables, labels)
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	result, err := garbled.Decode.Decode(out)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	return result
}

func TestGarbleOperations(t *testing.T) {
	for op := XOR; op <= INV; op++ {
		b := NewBuilder(operands(1))
		var o Wire
		if op == INV {
			o = b.INV(b.Input(0, 0))
		} else {
			o = b.gate(op, b.Input(0, 0), b.Input(1, 0))
		}
		c, err := b.Compile(IO{IOArg{Name: "o", Size: 1}}, []Wire{o})
		if err != nil {
			t.Fatal(err)
		}
		for x := int64(0); x < 2; x++ {
			for y := int64(0); y < 2; y++ {
				expected, err := c.Compute(inputs(x, y, 1))
				if err != nil {
					t.Fatal(err)
				}
				got := garbledEval(t, c, inputs(x, y, 1))
				if got[0] != expected[0] {
					t.Errorf("%s(%d,%d)=%v, expected %v",
						op, x, y, got[0], expected[0])
				}
			}
		}
	}
}

func TestGarbleComparator(t *testing.T) {
	const n = 4
	for _, signed := range []bool{false, true} {
		c, err := NewComparator(n, signed)
		if err != nil {
			t.Fatal(err)
		}
		for x := int64(0); x < 1<<n; x++ {
			for y := int64(0); y < 1<<n; y++ {
				expected, err := c.Compute(inputs(x, y, n))
				if err != nil {
					t.Fatal(err)
				}
				got := garbledEval(t, c, inputs(x, y, n))
				if got[OutputLT] != expected[OutputLT] ||
					got[OutputEQ] != expected[OutputEQ] {
					t.Errorf("signed=%v: %d<=>%d: got %v, expected %v",
						signed, x, y, got, expected)
				}
			}
		}
	}
}

func TestGarbleTables(t *testing.T) {
	c, err := NewEquality(8)
	if err != nil {
		t.Fatal(err)
	}
	garbled, err := c.Garble(nil)
	if err != nil {
		t.Fatal(err)
	}
	for id, gate := range c.Gates {
		table := garbled.Tables[id]
		if gate.Op.Free() && table != nil {
			t.Errorf("gate %d: free %s has a table", id, gate.Op)
		}
		if !gate.Op.Free() && len(table) != TableSize {
			t.Errorf("gate %d: %s has %d rows", id, gate.Op, len(table))
		}
	}
	for i, w := range garbled.Inputs {
		if w.L0.S() == w.L1.S() {
			t.Errorf("input %d: labels have equal S bits", i)
		}
	}

	// Labels are fresh for each garbling.
	again, err := c.Garble(nil)
	if err != nil {
		t.Fatal(err)
	}
	if again.Inputs[0].L0.String() == garbled.Inputs[0].L0.String() {
		t.Errorf("labels reused between garblings")
	}
}

func TestGarbleInputLabels(t *testing.T) {
	c, err := NewComparator(8, false)
	if err != nil {
		t.Fatal(err)
	}
	garbled, err := c.Garble(nil)
	if err != nil {
		t.Fatal(err)
	}
	x, err := garbled.InputLabels(c, 0, bits(100, 8))
	if err != nil {
		t.Fatal(err)
	}
	y, err := garbled.InputLabels(c, 1, bits(150, 8))
	if err != nil {
		t.Fatal(err)
	}
	out, err := c.Eval(garbled.Key, garbled.Tables, append(x, y...))
	if err != nil {
		t.Fatal(err)
	}
	result, err := garbled.Decode.Decode(out)
	if err != nil {
		t.Fatal(err)
	}
	if !result[OutputLT] || result[OutputEQ] {
		t.Errorf("100<=>150: got %v", result)
	}
	if _, err := garbled.InputLabels(c, 2, nil); err == nil {
		t.Errorf("invalid argument accepted")
	}
	if _, err := garbled.InputLabels(c, 0, bits(1, 7)); err == nil {
		t.Errorf("invalid bit count accepted")
	}
}

func TestEvalIntegrity(t *testing.T) {
	c, err := NewComparator(8, false)
	if err != nil {
		t.Fatal(err)
	}
	garbled, err := c.Garble(nil)
	if err != nil {
		t.Fatal(err)
	}
	in := inputs(100, 100, 8)
	labels := make([]ot.Label, len(in))
	for i, bit := range in {
		labels[i] = garbled.Inputs[i].Select(bit)
	}

	// Missing input label.
	_, err = c.Eval(garbled.Key, garbled.Tables, labels[1:])
	if !errors.Is(err, ErrIntegrity) {
		t.Errorf("missing input label: %v", err)
	}

	// Truncated table.
	tables := make([][]ot.Label, len(garbled.Tables))
	copy(tables, garbled.Tables)
	for id, table := range tables {
		if table != nil {
			tables[id] = table[:2]
			break
		}
	}
	_, err = c.Eval(garbled.Key, tables, labels)
	if !errors.Is(err, ErrIntegrity) {
		t.Errorf("truncated table: %v", err)
	}

	// Corrupted rows.
	copy(tables, garbled.Tables)
	for id, table := range tables {
		if table == nil {
			continue
		}
		corrupted := make([]ot.Label, len(table))
		for i, row := range table {
			row.Xor(ot.Label{D1: 1})
			corrupted[i] = row
		}
		tables[id] = corrupted
	}
	out, err := c.Eval(garbled.Key, tables, labels)
	if err != nil {
		t.Fatal(err)
	}
	_, err = garbled.Decode.Decode(out)
	if !errors.Is(err, ErrIntegrity) {
		t.Errorf("corrupted tables decoded: %v", err)
	}
}

func TestDecodeTable(t *testing.T) {
	c, err := NewComparator(2, false)
	if err != nil {
		t.Fatal(err)
	}
	garbled, err := c.Garble(nil)
	if err != nil {
		t.Fatal(err)
	}
	data := garbled.Decode.Bytes()
	table, err := ParseDecodeTable(data, len(c.OutputWires))
	if err != nil {
		t.Fatal(err)
	}
	labels := []ot.Label{garbled.Outputs[0].L1, garbled.Outputs[1].L0}
	result, err := table.Decode(labels)
	if err != nil {
		t.Fatal(err)
	}
	if !result[0] || result[1] {
		t.Errorf("unexpected decode result %v", result)
	}

	// Labels are bound to their output index.
	labels[0], labels[1] = garbled.Outputs[1].L0, garbled.Outputs[0].L1
	if _, err := table.Decode(labels); !errors.Is(err, ErrIntegrity) {
		t.Errorf("swapped labels decoded: %v", err)
	}
	if _, err := ParseDecodeTable(data[1:], 2); !errors.Is(err, ErrIntegrity) {
		t.Errorf("truncated table parsed: %v", err)
	}
}
