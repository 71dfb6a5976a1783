//
// local.go
//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.

package ot

import (
	"fmt"
	"io"
)

var (
	_ Transfer = &Local{}
)

// Local implements Transfer by running an OT sender and receiver
// over an in-memory pipe. The sender runs in its own goroutine and
// the call returns when the receiver has obtained all labels.
type Local struct {
	rand io.Reader
	New  func(rand io.Reader) OT
}

// NewLocal creates a new in-process transfer using CO OT.
func NewLocal(rand io.Reader) *Local {
	return &Local{
		rand: rand,
		New: func(rand io.Reader) OT {
			return NewCO(rand)
		},
	}
}

// Transfer implements Transfer.Transfer.
func (l *Local) Transfer(wires []Wire, flags []bool, result []Label) error {
	if len(wires) != len(flags) || len(flags) != len(result) {
		return fmt.Errorf("transfer length mismatch: wires=%d, flags=%d, "+
			"result=%d", len(wires), len(flags), len(result))
	}
	if len(wires) == 0 {
		return nil
	}
	sender := l.New(l.rand)
	receiver := l.New(l.rand)

	sPipe, rPipe := NewPipe()
	done := make(chan error, 1)

	go func() {
		err := sender.InitSender(sPipe)
		if err == nil {
			err = sender.Send(wires)
		}
		if err != nil {
			sPipe.CloseWithError(err)
		} else {
			sPipe.Close()
		}
		done <- err
	}()

	err := receiver.InitReceiver(rPipe)
	if err == nil {
		err = receiver.Receive(flags, result)
	}
	if err != nil {
		rPipe.CloseWithError(err)
		sErr := <-done
		if sErr != nil {
			return fmt.Errorf("%w (sender: %v)", err, sErr)
		}
		return err
	}
	rPipe.Close()
	return <-done
}
