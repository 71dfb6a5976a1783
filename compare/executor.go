//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package compare

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/markkurossi/gcmp/circuit"
	"github.com/markkurossi/gcmp/env"
	"github.com/markkurossi/gcmp/integer"
	"github.com/markkurossi/gcmp/ot"
)

// Executor builds, garbles, and evaluates comparison circuits within
// one process. The first operand is the generator's input and the
// second operand is transferred to the evaluator with oblivious
// transfer. Each call uses a fresh circuit and fresh labels.
type Executor struct {
	Config   *env.Config
	Transfer ot.Transfer
}

// NewExecutor creates a new executor with the in-process CO
// oblivious transfer.
func NewExecutor(cfg *env.Config) *Executor {
	return &Executor{
		Config:   cfg,
		Transfer: ot.NewLocal(cfg.GetRandom()),
	}
}

// BuildAndExecuteComparator compares a and b and returns their
// ordering.
func (e *Executor) BuildAndExecuteComparator(a, b *integer.Value) (
	Ordering, error) {

	circ, err := BuildComparator(a, b)
	if err != nil {
		return Equal, err
	}
	outputs, err := e.execute(OpCompare, circ, a, b)
	if err != nil {
		return Equal, err
	}
	return orderingFromOutputs(outputs)
}

// BuildAndExecuteEquality tests if a and b are equal.
func (e *Executor) BuildAndExecuteEquality(a, b *integer.Value) (
	bool, error) {

	circ, err := BuildEquality(a, b)
	if err != nil {
		return false, err
	}
	outputs, err := e.execute(OpEqual, circ, a, b)
	if err != nil {
		return false, err
	}
	result, err := newResult(OpEqual, outputs)
	if err != nil {
		return false, err
	}
	return result.Equal, nil
}

func (e *Executor) execute(op Op, circ *circuit.Circuit, a, b *integer.Value) (
	[]bool, error) {

	log := e.Config.GetLogger()
	timing := circuit.NewTiming()

	garbled, err := circ.Garble(e.Config)
	if err != nil {
		return nil, errors.Wrap(err, "garble")
	}
	timing.Sample("Garble", []string{
		fmt.Sprintf("%d tables", circ.NumTables()),
	})
	log.Debug().Str("op", op.String()).Int("width", a.Width()).
		Bool("signed", a.Signed()).Int("gates", circ.NumGates).
		Int("tables", circ.NumTables()).Msg("garbled")

	inputs, err := garbled.InputLabels(circ, 0, a.Bits())
	if err != nil {
		return nil, err
	}
	wires, err := garbled.InputWires(circ, 1)
	if err != nil {
		return nil, err
	}
	transfer := e.Transfer
	if transfer == nil {
		transfer = ot.NewLocal(e.Config.GetRandom())
	}
	received := make([]ot.Label, len(wires))
	if err := transfer.Transfer(wires, b.Bits(), received); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "evaluator inputs"),
			ErrTransfer)
	}
	inputs = append(inputs, received...)
	timing.Sample("OT", []string{fmt.Sprintf("%d labels", len(received))})

	labels, err := circ.Eval(garbled.Key, garbled.Tables, inputs)
	if err != nil {
		return nil, err
	}
	timing.Sample("Eval", nil)

	outputs, err := garbled.Decode.Decode(labels)
	if err != nil {
		return nil, err
	}
	timing.Sample("Decode", nil)

	log.Debug().Str("op", op.String()).Dur("elapsed", timing.Total()).
		Msg("evaluated")

	if e.Config.IsVerbose() {
		timing.Print(os.Stdout)
	}
	return outputs, nil
}
