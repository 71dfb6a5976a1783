//
// io.go
//
// Copyright (c) 2023-2025 Markku Rossi
//
// All rights reserved.

package ot

import (
	"fmt"
	"math/big"
)

// IO defines an I/O interface to communicate between peers.
type IO interface {
	// SendData sends binary data.
	SendData(val []byte) error

	// SendUint32 sends an uint32 value.
	SendUint32(val int) error

	// Flush flushed any pending data in the connection.
	Flush() error

	// ReceiveData receives binary data.
	ReceiveData() ([]byte, error)

	// ReceiveUint32 receives an uint32 value.
	ReceiveUint32() (int, error)
}

// SendString sends a string value.
func SendString(io IO, str string) error {
	return io.SendData([]byte(str))
}

// ReceiveString receives a string value.
func ReceiveString(io IO) (string, error) {
	data, err := io.ReceiveData()
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ReceiveBigInt receives a bit.Int from the connection.
func ReceiveBigInt(io IO) (*big.Int, error) {
	data, err := io.ReceiveData()
	if err != nil {
		return nil, err
	}
	return big.NewInt(0).SetBytes(data), nil
}

// SendLabels sends the labels as one data message.
func SendLabels(io IO, labels []Label) error {
	buf := make([]byte, len(labels)*LabelSize)
	var data LabelData
	for i, l := range labels {
		copy(buf[i*LabelSize:], l.Bytes(&data))
	}
	return io.SendData(buf)
}

// ReceiveLabels receives count labels sent with SendLabels.
func ReceiveLabels(io IO, count int) ([]Label, error) {
	data, err := io.ReceiveData()
	if err != nil {
		return nil, err
	}
	if len(data) != count*LabelSize {
		return nil, fmt.Errorf("invalid label data: got %d bytes, "+
			"expected %d", len(data), count*LabelSize)
	}
	labels := make([]Label, count)
	for i := 0; i < count; i++ {
		if err := labels[i].SetBytes(
			data[i*LabelSize : (i+1)*LabelSize]); err != nil {
			return nil, err
		}
	}
	return labels, nil
}
