// Package bitrow selects one canonical bit row out of the repeated rows the
// OOK demodulator produces for a single Omni transmission.
package bitrow

import (
	"errors"
	"fmt"
)

// ErrNoRepeatedRow signals that no candidate row repeated often enough at an
// acceptable length. This is an expected condition under radio noise and
// partial reception; callers drop the transmission and move on.
var ErrNoRepeatedRow = errors.New("no sufficiently repeated row")

// Row is one demodulated repetition of a transmission: packed bits, MSB
// first, with the significant bit count alongside. Rows are owned by the
// demodulator and only ever read here.
type Row struct {
	Data []byte
	Bits int
}

// FromBytes wraps a fully occupied byte slice as a Row.
func FromBytes(b []byte) Row {
	return Row{Data: b, Bits: len(b) * 8}
}

// Equal reports whether two rows carry the same bit count and identical bit
// content. Unused low bits of a trailing partial byte are ignored.
func (r Row) Equal(other Row) bool {
	if r.Bits != other.Bits {
		return false
	}
	full := r.Bits / 8
	for i := 0; i < full; i++ {
		if r.Data[i] != other.Data[i] {
			return false
		}
	}
	if rem := r.Bits % 8; rem != 0 {
		mask := byte(0xFF << (8 - rem))
		if r.Data[full]&mask != other.Data[full]&mask {
			return false
		}
	}
	return true
}

// Bytes returns a copy of the first n bytes of the row.
func (r Row) Bytes(n int) []byte {
	out := make([]byte, n)
	copy(out, r.Data[:n])
	return out
}

// FindRepeated scans rows for the first one that occurs at least minRepeats
// times with identical content and whose length lies in the inclusive range
// [expectedBits, expectedBits+2]. The 2-bit slack tolerates trailing garbage
// bits from demodulation jitter; shorter or longer rows never match.
func FindRepeated(rows []Row, minRepeats, expectedBits int) (Row, error) {
	for _, candidate := range rows {
		if candidate.Bits < expectedBits || candidate.Bits > expectedBits+2 {
			continue
		}
		count := 0
		for _, other := range rows {
			if candidate.Equal(other) {
				count++
			}
		}
		if count >= minRepeats {
			return candidate, nil
		}
	}
	return Row{}, fmt.Errorf("%w: %d candidate rows, need %d repeats of %d..%d bits",
		ErrNoRepeatedRow, len(rows), minRepeats, expectedBits, expectedBits+2)
}
