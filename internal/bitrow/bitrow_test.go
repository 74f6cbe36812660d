package bitrow

import (
	"bytes"
	"errors"
	"testing"
)

func frameRow() []byte {
	return []byte{0x11, 0x0D, 0x4F, 0xCB, 0x30, 0x43, 0x27, 0x94, 0x86, 0x95}
}

func TestFindRepeatedIdenticalRows(t *testing.T) {
	rows := make([]Row, 4)
	for i := range rows {
		rows[i] = FromBytes(frameRow())
	}
	row, err := FindRepeated(rows, 2, 80)
	if err != nil {
		t.Fatalf("FindRepeated: %v", err)
	}
	if !bytes.Equal(row.Bytes(10), frameRow()) {
		t.Fatalf("unexpected row content % X", row.Bytes(10))
	}
}

func TestFindRepeatedToleratesTrailingBits(t *testing.T) {
	// 82-bit rows: a full frame plus two junk bits in an 11th byte.
	data := append(frameRow(), 0xC0)
	rows := []Row{
		{Data: data, Bits: 82},
		{Data: data, Bits: 82},
	}
	row, err := FindRepeated(rows, 2, 80)
	if err != nil {
		t.Fatalf("FindRepeated: %v", err)
	}
	if !bytes.Equal(row.Bytes(10), frameRow()) {
		t.Fatalf("truncation lost frame bytes: % X", row.Bytes(10))
	}
}

func TestFindRepeatedRejectsBadLengths(t *testing.T) {
	for _, bits := range []int{79, 83} {
		rows := []Row{
			{Data: append(frameRow(), 0x00), Bits: bits},
			{Data: append(frameRow(), 0x00), Bits: bits},
		}
		_, err := FindRepeated(rows, 2, 80)
		if !errors.Is(err, ErrNoRepeatedRow) {
			t.Fatalf("bits=%d: expected ErrNoRepeatedRow, got %v", bits, err)
		}
	}
}

func TestFindRepeatedNeedsMinRepeats(t *testing.T) {
	other := frameRow()
	other[4] ^= 0xFF
	rows := []Row{FromBytes(frameRow()), FromBytes(other)}
	_, err := FindRepeated(rows, 2, 80)
	if !errors.Is(err, ErrNoRepeatedRow) {
		t.Fatalf("expected ErrNoRepeatedRow, got %v", err)
	}
}

func TestEqualMasksTrailingBits(t *testing.T) {
	a := Row{Data: []byte{0xAB, 0xC0}, Bits: 10}
	b := Row{Data: []byte{0xAB, 0xFF}, Bits: 10}
	if !a.Equal(b) {
		t.Fatal("rows differing only in unused trailing bits must compare equal")
	}
	c := Row{Data: []byte{0xAB, 0x80}, Bits: 10}
	if a.Equal(c) {
		t.Fatal("rows differing in a significant bit must not compare equal")
	}
	d := Row{Data: []byte{0xAB, 0xC0}, Bits: 11}
	if a.Equal(d) {
		t.Fatal("rows of different bit length must not compare equal")
	}
}
