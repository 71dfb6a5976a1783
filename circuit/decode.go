//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"crypto/subtle"
	"encoding/binary"

	"github.com/cockroachdb/errors"
	"github.com/markkurossi/gcmp/ot"
	"golang.org/x/crypto/blake2b"
)

// CommitmentSize specifies the size of an output label commitment.
const CommitmentSize = blake2b.Size256

// DecodeEntry holds the commitments of an output wire's 0 and 1
// labels.
type DecodeEntry struct {
	H0 [CommitmentSize]byte
	H1 [CommitmentSize]byte
}

// DecodeTable maps output wire labels to bit values. It contains only
// label commitments so it can be published without revealing the
// labels themselves.
type DecodeTable []DecodeEntry

func commit(label ot.Label, index int) [CommitmentSize]byte {
	var buf [ot.LabelSize + 4]byte
	var data ot.LabelData

	copy(buf[:], label.Bytes(&data))
	binary.BigEndian.PutUint32(buf[ot.LabelSize:], uint32(index))
	return blake2b.Sum256(buf[:])
}

// NewDecodeTable creates a decode table for the output wires.
func NewDecodeTable(outputs []ot.Wire) DecodeTable {
	table := make(DecodeTable, len(outputs))
	for i, w := range outputs {
		table[i] = DecodeEntry{
			H0: commit(w.L0, i),
			H1: commit(w.L1, i),
		}
	}
	return table
}

// Decode decodes the output labels into bit values. Labels that do
// not match either commitment fail the decoding with ErrIntegrity.
func (table DecodeTable) Decode(labels []ot.Label) ([]bool, error) {
	if len(labels) != len(table) {
		return nil, errors.Wrapf(ErrIntegrity,
			"got %d output labels, expected %d", len(labels), len(table))
	}
	result := make([]bool, len(labels))
	for i, label := range labels {
		h := commit(label, i)
		switch {
		case subtle.ConstantTimeCompare(h[:], table[i].H0[:]) == 1:
			result[i] = false
		case subtle.ConstantTimeCompare(h[:], table[i].H1[:]) == 1:
			result[i] = true
		default:
			return nil, errors.Wrapf(ErrIntegrity,
				"unknown label for output %d", i)
		}
	}
	return result, nil
}

// Bytes returns the decode table as bytes.
func (table DecodeTable) Bytes() []byte {
	buf := make([]byte, 0, len(table)*2*CommitmentSize)
	for _, e := range table {
		buf = append(buf, e.H0[:]...)
		buf = append(buf, e.H1[:]...)
	}
	return buf
}

// ParseDecodeTable parses a decode table with count entries from the
// data.
func ParseDecodeTable(data []byte, count int) (DecodeTable, error) {
	if len(data) != count*2*CommitmentSize {
		return nil, errors.Wrapf(ErrIntegrity,
			"invalid decode table: got %d bytes, expected %d",
			len(data), count*2*CommitmentSize)
	}
	table := make(DecodeTable, count)
	for i := 0; i < count; i++ {
		ofs := i * 2 * CommitmentSize
		copy(table[i].H0[:], data[ofs:])
		copy(table[i].H1[:], data[ofs+CommitmentSize:])
	}
	return table, nil
}
