package frame

import (
	"encoding/hex"
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	raw := decodeHex(t, "110D4FCB304327948695")
	msg, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if msg.Format != 1 {
		t.Fatalf("format mismatch: %d", msg.Format)
	}
	if msg.ID != 1 {
		t.Fatalf("id mismatch: %d", msg.ID)
	}
	if msg.Checksum != 0x95 {
		t.Fatalf("unexpected checksum 0x%02X", msg.Checksum)
	}
	if len(msg.Payload) != 8 || msg.Payload[0] != 0x0D {
		t.Fatalf("unexpected payload % X", msg.Payload)
	}
}

func TestParseChecksumMismatch(t *testing.T) {
	raw := decodeHex(t, "110D4FCB304327948695")
	raw[3] ^= 0x01
	_, err := Parse(raw)
	if !errors.Is(err, ErrChecksum) {
		t.Fatalf("expected ErrChecksum, got %v", err)
	}
}

func TestParseLength(t *testing.T) {
	if _, err := Parse(make([]byte, 9)); err == nil {
		t.Fatal("expected error for 9-byte frame")
	}
	if _, err := Parse(make([]byte, 11)); err == nil {
		t.Fatal("expected error for 11-byte frame")
	}
}

func TestParseCopiesInput(t *testing.T) {
	raw := decodeHex(t, "110D4FCB304327948695")
	msg, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	raw[1] = 0xFF
	if msg.Raw[1] != 0x0D {
		t.Fatal("message must not alias the caller's buffer")
	}
}

func TestPayloadHex(t *testing.T) {
	msg, err := Parse(decodeHex(t, "0000A000000000003229"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := "0x00 0xa0 0x00 0x00 0x00 0x00 0x00 0x32"
	if got := msg.PayloadHex(); got != want {
		t.Fatalf("PayloadHex = %q, want %q", got, want)
	}
}

func decodeHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("hex decode: %v", err)
	}
	return b
}
