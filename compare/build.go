//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

// Package compare builds and executes the garbled comparison and
// equality circuits over bit-encoded integers.
package compare

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/markkurossi/gcmp/circuit"
	"github.com/markkurossi/gcmp/integer"
)

// Errors.
var (
	// ErrMismatch is returned when the operands differ in width or
	// signedness. It reports a programming error in the caller.
	ErrMismatch = errors.New("operand width or signedness mismatch")

	// ErrTransfer is returned when the oblivious transfer of the
	// evaluator's input labels fails.
	ErrTransfer = errors.New("oblivious transfer failed")
)

func family(signed bool, width int) string {
	if signed {
		return fmt.Sprintf("int%d", width)
	}
	return fmt.Sprintf("uint%d", width)
}

func checkOperands(a, b *integer.Value) error {
	if a == nil || b == nil {
		return errors.Mark(errors.AssertionFailedf("nil operand"),
			ErrMismatch)
	}
	if !a.Compatible(b) {
		return errors.Mark(errors.AssertionFailedf("cannot compare %s with %s",
			family(a.Signed(), a.Width()), family(b.Signed(), b.Width())),
			ErrMismatch)
	}
	return nil
}

// BuildEquality builds the equality circuit for the operands a and
// b. The circuit has one output which is set if a equals b.
func BuildEquality(a, b *integer.Value) (*circuit.Circuit, error) {
	if err := checkOperands(a, b); err != nil {
		return nil, err
	}
	return NewCircuit(OpEqual, a.Width(), a.Signed())
}

// BuildComparator builds the comparator circuit for the operands a
// and b. Signed operands use the sign-aware comparator.
func BuildComparator(a, b *integer.Value) (*circuit.Circuit, error) {
	if err := checkOperands(a, b); err != nil {
		return nil, err
	}
	return NewCircuit(OpCompare, a.Width(), a.Signed())
}

// NewCircuit creates the circuit of the operation for operands of
// the given width and signedness.
func NewCircuit(op Op, width int, signed bool) (*circuit.Circuit, error) {
	switch op {
	case OpCompare:
		return circuit.NewComparator(width, signed)
	case OpEqual:
		return circuit.NewEquality(width)
	default:
		return nil, errors.AssertionFailedf("invalid operation %s", op)
	}
}
