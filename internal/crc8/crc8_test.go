package crc8

import (
	"encoding/hex"
	"testing"
)

func TestChecksumVectors(t *testing.T) {
	cases := []struct {
		data string
		want byte
	}{
		{"000000000000000000", 0x00},
		{"0000A0000000000032", 0x29},
		{"02F3300000000000C8", 0xF9},
		{"110D4FCB3043279486", 0x95},
		{"11000000000003E800", 0x63},
	}
	for _, tc := range cases {
		data, err := hex.DecodeString(tc.data)
		if err != nil {
			t.Fatalf("hex decode %s: %v", tc.data, err)
		}
		if got := Frame(data); got != tc.want {
			t.Errorf("Frame(%s) = 0x%02X, want 0x%02X", tc.data, got, tc.want)
		}
	}
}

func TestChecksumRoundTrip(t *testing.T) {
	frame := []byte{0x11, 0x0D, 0x4F, 0xCB, 0x30, 0x43, 0x27, 0x94, 0x86, 0x00}
	frame[9] = Frame(frame[:9])
	if got := Frame(frame[:9]); got != frame[9] {
		t.Fatalf("round trip mismatch: computed 0x%02X stored 0x%02X", got, frame[9])
	}
}

func TestChecksumDetectsSingleBitFlips(t *testing.T) {
	base := []byte{0x11, 0x0D, 0x4F, 0xCB, 0x30, 0x43, 0x27, 0x94, 0x86}
	want := Frame(base)
	for bit := 0; bit < len(base)*8; bit++ {
		flipped := make([]byte, len(base))
		copy(flipped, base)
		flipped[bit/8] ^= 0x80 >> (bit % 8)
		if Frame(flipped) == want {
			t.Errorf("bit flip at position %d not detected", bit)
		}
	}
}
