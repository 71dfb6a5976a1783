//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package compare

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/markkurossi/gcmp/circuit"
)

// Ordering is the result of a three-way comparison.
type Ordering int

// Orderings.
const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "Less"
	case Equal:
		return "Equal"
	case Greater:
		return "Greater"
	default:
		return fmt.Sprintf("{Ordering %d}", int(o))
	}
}

// Int returns the ordering as -1, 0, or 1.
func (o Ordering) Int() int {
	return int(o)
}

// orderingFromOutputs decodes the comparator circuit outputs lt and
// eq into an ordering.
func orderingFromOutputs(outputs []bool) (Ordering, error) {
	if len(outputs) != 2 {
		return Equal, errors.Wrapf(circuit.ErrIntegrity,
			"comparator: got %d outputs, expected 2", len(outputs))
	}
	lt := outputs[circuit.OutputLT]
	eq := outputs[circuit.OutputEQ]
	switch {
	case lt && eq:
		return Equal, errors.Wrap(circuit.ErrIntegrity,
			"comparator: lt and eq both set")
	case lt:
		return Less, nil
	case eq:
		return Equal, nil
	default:
		return Greater, nil
	}
}

// Op specifies the comparison operation.
type Op byte

// Operations.
const (
	OpCompare Op = iota
	OpEqual
)

func (op Op) String() string {
	switch op {
	case OpCompare:
		return "cmp"
	case OpEqual:
		return "eq"
	default:
		return fmt.Sprintf("{Op %d}", op)
	}
}

// ParseOp parses the operation name.
func ParseOp(name string) (Op, error) {
	switch strings.ToLower(name) {
	case "cmp", "compare":
		return OpCompare, nil
	case "eq", "equal":
		return OpEqual, nil
	default:
		return 0, errors.Newf("unknown operation '%s'", name)
	}
}

// Result holds the decoded comparison result. The Ordering is set
// only for the OpCompare operation; equality does not reveal the
// order of unequal operands.
type Result struct {
	Op       Op
	Ordering Ordering
	Equal    bool
}

func (r *Result) String() string {
	if r.Op == OpEqual {
		return fmt.Sprintf("%v", r.Equal)
	}
	return r.Ordering.String()
}

func newResult(op Op, outputs []bool) (*Result, error) {
	switch op {
	case OpCompare:
		ordering, err := orderingFromOutputs(outputs)
		if err != nil {
			return nil, err
		}
		return &Result{
			Op:       op,
			Ordering: ordering,
			Equal:    ordering == Equal,
		}, nil

	case OpEqual:
		if len(outputs) != 1 {
			return nil, errors.Wrapf(circuit.ErrIntegrity,
				"equality: got %d outputs, expected 1", len(outputs))
		}
		return &Result{
			Op:    op,
			Equal: outputs[0],
		}, nil

	default:
		return nil, errors.AssertionFailedf("invalid operation %s", op)
	}
}
