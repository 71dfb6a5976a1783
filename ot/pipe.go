//
// pipe.go
//
// Copyright (c) 2023-2025 Markku Rossi
//
// All rights reserved.

package ot

import (
	"fmt"
	"io"
)

var (
	_ IO = &Pipe{}
)

const pipeBufSize = 64 * 1024

// Pipe implements the IO interface with in-memory io.Pipe.
type Pipe struct {
	rBuf []byte
	wBuf []byte
	r    *io.PipeReader
	w    *io.PipeWriter
}

// NewPipe creates a new in-memory pipe.
func NewPipe() (*Pipe, *Pipe) {
	ar, aw := io.Pipe()
	br, bw := io.Pipe()

	return &Pipe{
			rBuf: make([]byte, pipeBufSize),
			wBuf: make([]byte, pipeBufSize),
			r:    ar,
			w:    bw,
		}, &Pipe{
			rBuf: make([]byte, pipeBufSize),
			wBuf: make([]byte, pipeBufSize),
			r:    br,
			w:    aw,
		}
}

// SendData sends binary data.
func (p *Pipe) SendData(val []byte) error {
	l := len(val)
	if 4+l > len(p.wBuf) {
		return fmt.Errorf("pipe buffer too short: %d > %d", l, len(p.wBuf)-4)
	}
	bo.PutUint32(p.wBuf, uint32(l))
	copy(p.wBuf[4:], val)
	_, err := p.w.Write(p.wBuf[:4+l])
	return err
}

// SendUint32 sends an uint32 value.
func (p *Pipe) SendUint32(val int) error {
	bo.PutUint32(p.wBuf, uint32(val))
	_, err := p.w.Write(p.wBuf[:4])
	return err
}

// Flush flushed any pending data in the connection.
func (p *Pipe) Flush() error {
	return nil
}

// Drain consumes all input from the pipe.
func (p *Pipe) Drain() error {
	_, err := io.Copy(io.Discard, p.r)
	return err
}

// Close closes the pipe.
func (p *Pipe) Close() error {
	return p.w.Close()
}

// CloseWithError closes the pipe so that the peer's reads fail with
// err.
func (p *Pipe) CloseWithError(err error) error {
	p.r.CloseWithError(err)
	return p.w.CloseWithError(err)
}

// ReceiveData receives binary data. The returned slice is valid until
// the next receive call.
func (p *Pipe) ReceiveData() ([]byte, error) {
	if _, err := io.ReadFull(p.r, p.rBuf[:4]); err != nil {
		return nil, err
	}
	l := bo.Uint32(p.rBuf)
	if l > uint32(len(p.rBuf)) {
		return nil, fmt.Errorf("pipe buffer too short: %d > %d", l, len(p.rBuf))
	}
	if _, err := io.ReadFull(p.r, p.rBuf[:l]); err != nil {
		return nil, err
	}
	return p.rBuf[:l], nil
}

// ReceiveUint32 receives an uint32 value.
func (p *Pipe) ReceiveUint32() (int, error) {
	if _, err := io.ReadFull(p.r, p.rBuf[:4]); err != nil {
		return 0, err
	}
	return int(bo.Uint32(p.rBuf)), nil
}
