//
// Copyright (c) 2019-2025 Markku Rossi
//
// All rights reserved.
//

// Package circuit implements boolean circuits and their garbled
// evaluation.
package circuit

import (
	"fmt"
	"io"
)

// Operation specifies gate function.
type Operation byte

// Gate functions.
const (
	XOR Operation = iota
	XNOR
	AND
	OR
	INV
)

// Stats holds statistics about circuit operations.
type Stats [INV + 1]int

func (op Operation) String() string {
	switch op {
	case XOR:
		return "XOR"
	case XNOR:
		return "XNOR"
	case AND:
		return "AND"
	case OR:
		return "OR"
	case INV:
		return "INV"
	default:
		return fmt.Sprintf("{Operation %d}", op)
	}
}

// Free tests if the operation is free with the free-XOR garbling,
// that is, it does not need a garbled table.
func (op Operation) Free() bool {
	switch op {
	case XOR, XNOR, INV:
		return true
	default:
		return false
	}
}

// IOArg describes circuit input or output argument.
type IOArg struct {
	Name string
	Size int
}

func (io IOArg) String() string {
	return fmt.Sprintf("%s:%d", io.Name, io.Size)
}

// IO specifies circuit input and output arguments.
type IO []IOArg

// Size computes the size of the circuit input and output arguments in
// bits.
func (io IO) Size() int {
	var sum int
	for _, a := range io {
		sum += a.Size
	}
	return sum
}

func (io IO) String() string {
	var str = ""
	for i, a := range io {
		if i > 0 {
			str += ", "
		}
		str += a.String()
	}
	return str
}

// Circuit specifies a boolean circuit. The gates are stored in
// topological order and they reference their input and output wires
// by index. The input wires are numbered 0...Inputs.Size()-1 in
// argument order.
type Circuit struct {
	NumGates    int
	NumWires    int
	Inputs      IO
	Outputs     IO
	OutputWires []Wire
	Gates       []Gate
	Stats       Stats
}

func (c *Circuit) String() string {
	var stats string

	for k := XOR; k <= INV; k++ {
		v := c.Stats[k]
		if len(stats) > 0 {
			stats += " "
		}
		stats += fmt.Sprintf("%s=%d", k, v)
	}
	return fmt.Sprintf("#gates=%d (%s) #w=%d", c.NumGates, stats, c.NumWires)
}

// Cost computes the relative computational cost of the circuit.
func (c *Circuit) Cost() int {
	return (c.Stats[AND] + c.Stats[OR]) * 4
}

// NumTables returns the number of garbled tables the circuit needs.
func (c *Circuit) NumTables() int {
	return c.Stats[AND] + c.Stats[OR]
}

// Dump prints a debug dump of the circuit.
func (c *Circuit) Dump(out io.Writer) {
	fmt.Fprintf(out, "circuit %s\n", c)
	fmt.Fprintf(out, "in:\t%s\n", c.Inputs)
	fmt.Fprintf(out, "out:\t%s\t%v\n", c.Outputs, c.OutputWires)
	for id, gate := range c.Gates {
		fmt.Fprintf(out, "%04d\t%s\n", id, gate)
	}
}

// Gate specifies a boolean gate.
type Gate struct {
	Input0 Wire
	Input1 Wire
	Output Wire
	Op     Operation
}

func (g Gate) String() string {
	return fmt.Sprintf("%v %v %v", g.Inputs(), g.Op, g.Output)
}

// Inputs returns gate input wires.
func (g Gate) Inputs() []Wire {
	switch g.Op {
	case XOR, XNOR, AND, OR:
		return []Wire{g.Input0, g.Input1}
	case INV:
		return []Wire{g.Input0}
	default:
		panic(fmt.Sprintf("unsupported gate type %s", g.Op))
	}
}

// Wire specifies a wire ID.
type Wire uint32

// ID returns the wire ID as integer.
func (w Wire) ID() int {
	return int(w)
}

func (w Wire) String() string {
	return fmt.Sprintf("w%d", w)
}
