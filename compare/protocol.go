//
// protocol.go
//
// Copyright (c) 2019-2025 Markku Rossi
//
// All rights reserved.
//

package compare

import (
	"fmt"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/markkurossi/gcmp/circuit"
	"github.com/markkurossi/gcmp/env"
	"github.com/markkurossi/gcmp/integer"
	"github.com/markkurossi/gcmp/ot"
	"github.com/markkurossi/gcmp/p2p"
	"github.com/markkurossi/text/superscript"
)

// Reveal specifies which parties learn the comparison result.
type Reveal byte

// Reveal policies.
const (
	RevealBoth Reveal = iota
	RevealGarbler
	RevealEvaluator
)

func (r Reveal) String() string {
	switch r {
	case RevealBoth:
		return "both"
	case RevealGarbler:
		return "garbler"
	case RevealEvaluator:
		return "evaluator"
	default:
		return fmt.Sprintf("{Reveal %d}", r)
	}
}

// Garbler tests if the garbler learns the result.
func (r Reveal) Garbler() bool {
	return r == RevealBoth || r == RevealGarbler
}

// Evaluator tests if the evaluator learns the result.
func (r Reveal) Evaluator() bool {
	return r == RevealBoth || r == RevealEvaluator
}

// ParseReveal parses the reveal policy name.
func ParseReveal(name string) (Reveal, error) {
	for r := RevealBoth; r <= RevealEvaluator; r++ {
		if strings.EqualFold(name, r.String()) {
			return r, nil
		}
	}
	return 0, errors.Newf("unknown reveal policy '%s'", name)
}

// Header acknowledgements.
const (
	ackOK byte = iota
	ackMismatch
)

func party(id int) string {
	return "P" + superscript.Itoa(id)
}

// Garbler runs the garbler side of the two-party comparison over the
// connection. The garbler's value is the first operand of the
// comparison. The function returns nil result if the reveal policy
// does not reveal the result to the garbler.
func Garbler(cfg *env.Config, conn *p2p.Conn, op Op, reveal Reveal,
	value *integer.Value) (*Result, error) {

	log := cfg.GetLogger().With().Str("party", party(0)).Logger()
	timing := circuit.NewTiming()
	verbose := cfg.IsVerbose()

	if op > OpEqual || reveal > RevealEvaluator {
		return nil, errors.AssertionFailedf("invalid operation %s or reveal %s",
			op, reveal)
	}

	// Send operation header.
	if err := conn.SendByte(byte(op)); err != nil {
		return nil, err
	}
	var signed byte
	if value.Signed() {
		signed = 1
	}
	if err := conn.SendByte(signed); err != nil {
		return nil, err
	}
	if err := conn.SendUint32(value.Width()); err != nil {
		return nil, err
	}
	if err := conn.SendByte(byte(reveal)); err != nil {
		return nil, err
	}
	if err := conn.Flush(); err != nil {
		return nil, err
	}
	ack, err := conn.ReceiveByte()
	if err != nil {
		return nil, err
	}
	if ack != ackOK {
		return nil, errors.Mark(errors.AssertionFailedf(
			"peer rejected %s %s", op, family(value.Signed(), value.Width())),
			ErrMismatch)
	}

	circ, err := NewCircuit(op, value.Width(), value.Signed())
	if err != nil {
		return nil, err
	}

	if verbose {
		fmt.Printf(" - Garbling...\n")
	}
	garbled, err := circ.Garble(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "garble")
	}
	timing.Sample("Garble", nil)

	// Send garbled tables.
	if verbose {
		fmt.Printf(" - Sending garbled circuit...\n")
	}
	ioStats := conn.Stats.Snapshot()
	if err := conn.SendData(garbled.Key); err != nil {
		return nil, err
	}
	var data ot.LabelData
	for id, gate := range circ.Gates {
		if gate.Op.Free() {
			continue
		}
		for _, row := range garbled.Tables[id] {
			if err := conn.SendLabel(row, &data); err != nil {
				return nil, err
			}
		}
	}

	// Send our inputs.
	inputs, err := garbled.InputLabels(circ, 0, value.Bits())
	if err != nil {
		return nil, err
	}
	for _, label := range inputs {
		if err := conn.SendLabel(label, &data); err != nil {
			return nil, err
		}
	}
	if err := conn.Flush(); err != nil {
		return nil, err
	}
	xfer := conn.Stats.Sub(ioStats)
	timing.Sample("Xfer", []string{circuit.FileSize(xfer.Sum()).String()})
	log.Debug().Int("tables", circ.NumTables()).
		Uint64("bytes", xfer.Sum()).Msg("sent garbled circuit")

	// Oblivious transfer of the evaluator's inputs.
	ioStats = conn.Stats.Snapshot()
	wires, err := garbled.InputWires(circ, 1)
	if err != nil {
		return nil, err
	}
	sender := ot.NewCO(cfg.GetRandom())
	if err := sender.InitSender(conn); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "OT init"), ErrTransfer)
	}
	if err := sender.Send(wires); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "OT send"), ErrTransfer)
	}
	xfer = conn.Stats.Sub(ioStats)
	timing.Sample("OT", []string{circuit.FileSize(xfer.Sum()).String()})
	log.Debug().Int("labels", len(wires)).Msg("transferred inputs")

	if reveal.Evaluator() {
		if err := conn.SendData(garbled.Decode.Bytes()); err != nil {
			return nil, err
		}
		if err := conn.Flush(); err != nil {
			return nil, err
		}
	}

	var result *Result
	if reveal.Garbler() {
		labels, err := ot.ReceiveLabels(conn, len(circ.OutputWires))
		if err != nil {
			return nil, errors.Mark(errors.Wrap(err, "output labels"),
				circuit.ErrIntegrity)
		}
		outputs, err := garbled.Decode.Decode(labels)
		if err != nil {
			return nil, err
		}
		result, err = newResult(op, outputs)
		if err != nil {
			return nil, err
		}
	}
	timing.Sample("Result", nil)
	log.Debug().Str("reveal", reveal.String()).Msg("done")

	if verbose {
		timing.Print(os.Stdout)
	}
	return result, nil
}

// Evaluator runs the evaluator side of the two-party comparison over
// the connection. The evaluator's value is the second operand of the
// comparison. The operation and reveal policy are set by the
// garbler. The function returns nil result if the reveal policy does
// not reveal the result to the evaluator.
func Evaluator(cfg *env.Config, conn *p2p.Conn, value *integer.Value) (
	*Result, error) {

	log := cfg.GetLogger().With().Str("party", party(1)).Logger()
	timing := circuit.NewTiming()
	verbose := cfg.IsVerbose()

	// Receive and validate operation header.
	b, err := conn.ReceiveByte()
	if err != nil {
		return nil, err
	}
	op := Op(b)
	b, err = conn.ReceiveByte()
	if err != nil {
		return nil, err
	}
	signed := b != 0
	width, err := conn.ReceiveUint32()
	if err != nil {
		return nil, err
	}
	b, err = conn.ReceiveByte()
	if err != nil {
		return nil, err
	}
	reveal := Reveal(b)

	var mismatch error
	if op > OpEqual || reveal > RevealEvaluator {
		mismatch = errors.Newf("invalid header: op=%s, reveal=%s", op, reveal)
	} else if width != value.Width() || signed != value.Signed() {
		mismatch = errors.Mark(errors.AssertionFailedf(
			"cannot compare %s with %s", family(signed, width),
			family(value.Signed(), value.Width())), ErrMismatch)
	}
	ack := ackOK
	if mismatch != nil {
		ack = ackMismatch
	}
	if err := conn.SendByte(ack); err != nil {
		return nil, err
	}
	if err := conn.Flush(); err != nil {
		return nil, err
	}
	if mismatch != nil {
		return nil, mismatch
	}
	log.Debug().Str("op", op.String()).Int("width", width).
		Bool("signed", signed).Str("reveal", reveal.String()).
		Msg("header")

	circ, err := NewCircuit(op, width, signed)
	if err != nil {
		return nil, err
	}

	// Receive garbled tables.
	if verbose {
		fmt.Printf(" - Receiving garbled circuit...\n")
	}
	ioStats := conn.Stats.Snapshot()
	key, err := conn.ReceiveData()
	if err != nil {
		return nil, err
	}
	var data ot.LabelData
	tables := make([][]ot.Label, len(circ.Gates))
	for id, gate := range circ.Gates {
		if gate.Op.Free() {
			continue
		}
		table := make([]ot.Label, circuit.TableSize)
		for i := range table {
			if err := conn.ReceiveLabel(&table[i], &data); err != nil {
				return nil, err
			}
		}
		tables[id] = table
	}

	// Receive the garbler's inputs.
	inputs := make([]ot.Label, circ.Inputs.Size())
	for i := 0; i < circ.Inputs[0].Size; i++ {
		if err := conn.ReceiveLabel(&inputs[i], &data); err != nil {
			return nil, err
		}
	}
	xfer := conn.Stats.Sub(ioStats)
	timing.Sample("Recv", []string{circuit.FileSize(xfer.Sum()).String()})

	// Oblivious transfer of our inputs.
	ioStats = conn.Stats.Snapshot()
	receiver := ot.NewCO(cfg.GetRandom())
	if err := receiver.InitReceiver(conn); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "OT init"), ErrTransfer)
	}
	if err := receiver.Receive(value.Bits(),
		inputs[circ.Inputs[0].Size:]); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "OT receive"), ErrTransfer)
	}
	xfer = conn.Stats.Sub(ioStats)
	timing.Sample("OT", []string{circuit.FileSize(xfer.Sum()).String()})

	if verbose {
		fmt.Printf(" - Evaluating circuit...\n")
	}
	labels, err := circ.Eval(key, tables, inputs)
	if err != nil {
		return nil, err
	}
	timing.Sample("Eval", nil)

	var result *Result
	if reveal.Evaluator() {
		buf, err := conn.ReceiveData()
		if err != nil {
			return nil, err
		}
		decode, err := circuit.ParseDecodeTable(buf, len(circ.OutputWires))
		if err != nil {
			return nil, err
		}
		outputs, err := decode.Decode(labels)
		if err != nil {
			return nil, err
		}
		result, err = newResult(op, outputs)
		if err != nil {
			return nil, err
		}
	}
	if reveal.Garbler() {
		if err := ot.SendLabels(conn, labels); err != nil {
			return nil, err
		}
		if err := conn.Flush(); err != nil {
			return nil, err
		}
	}
	timing.Sample("Result", nil)
	log.Debug().Str("reveal", reveal.String()).Msg("done")

	if verbose {
		timing.Print(os.Stdout)
	}
	return result, nil
}
