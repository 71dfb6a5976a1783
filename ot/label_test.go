//
// label_test.go
//
// Copyright (c) 2019-2025 Markku Rossi
//
// All rights reserved.
//

package ot

import (
	"crypto/rand"
	"testing"
)

func TestLabel(t *testing.T) {
	label := &Label{
		D0: 0xffffffffffffffff,
		D1: 0xffffffffffffffff,
	}

	label.SetS(true)
	if label.D0 != 0xffffffffffffffff {
		t.Fatal("Failed to set S-bit")
	}

	label.SetS(false)
	if label.D0 != 0x7fffffffffffffff {
		t.Fatalf("Failed to clear S-bit: %x", label.D0)
	}
	if label.S() {
		t.Fatalf("S-bit still set")
	}
}

func TestLabelMul(t *testing.T) {
	label := Label{
		D0: 0x1,
		D1: 0x8000000000000001,
	}
	label.Mul2()
	if label.D0 != 0x3 || label.D1 != 0x2 {
		t.Fatalf("Mul2: got %s", label)
	}
	label.Mul4()
	if label.D0 != 0xc || label.D1 != 0x8 {
		t.Fatalf("Mul4: got %s", label)
	}
}

func TestLabelData(t *testing.T) {
	label, err := NewLabel(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	var buf LabelData
	var copied Label
	if err := copied.SetBytes(label.Bytes(&buf)); err != nil {
		t.Fatal(err)
	}
	if !copied.equal(label) {
		t.Fatalf("label mismatch: %s != %s", copied, label)
	}
	if err := copied.SetBytes(buf[:8]); err == nil {
		t.Fatalf("short label data accepted")
	}
}

func TestWireSelect(t *testing.T) {
	wire := Wire{
		L0: Label{D0: 1},
		L1: Label{D0: 2},
	}
	if wire.Select(false).D0 != 1 {
		t.Fatalf("expected L0 label")
	}
	if wire.Select(true).D0 != 2 {
		t.Fatalf("expected L1 label")
	}
}
