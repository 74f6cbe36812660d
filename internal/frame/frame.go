package frame

import (
	"errors"
	"fmt"

	"github.com/hdtodd/omnisensor-433/internal/crc8"
)

// Fixed Omni protocol parameters. The pulse timings describe the OOK/PWM
// modulation and are consumed by the external demodulator; the decoder only
// needs the frame geometry and repeat count.
const (
	FrameBytes = 10
	FrameBits  = FrameBytes * 8
	// MaxRowBits tolerates up to 2 trailing garbage bits per row.
	MaxRowBits = FrameBits + 2
	MinRepeats = 2

	ShortPulseWidthUs = 200
	LongPulseWidthUs  = 400
	SyncPulseWidthUs  = 600
	GapLimitUs        = 500
	ResetLimitUs      = 1250
)

// ErrChecksum signals that the trailing CRC-8 byte does not match the
// checksum computed over bytes 0..8.
var ErrChecksum = errors.New("crc8 checksum mismatch")

// Message is one validated 10-byte Omni frame: byte 0 packs the 4-bit
// payload format and 4-bit device id, bytes 1..8 are the payload interpreted
// per format, byte 9 is the CRC-8. Immutable once parsed.
type Message struct {
	Raw      []byte
	Format   byte
	ID       byte
	Payload  []byte
	Checksum byte
}

// Parse validates a raw 10-byte frame and splits out its envelope fields.
func Parse(raw []byte) (Message, error) {
	if len(raw) != FrameBytes {
		return Message{}, fmt.Errorf("frame must be %d bytes, got %d", FrameBytes, len(raw))
	}
	if sum := crc8.Frame(raw[:FrameBytes-1]); sum != raw[FrameBytes-1] {
		return Message{}, fmt.Errorf("%w: computed 0x%02X, frame carries 0x%02X",
			ErrChecksum, sum, raw[FrameBytes-1])
	}
	buf := make([]byte, FrameBytes)
	copy(buf, raw)
	return Message{
		Raw:      buf,
		Format:   buf[0] >> 4,
		ID:       buf[0] & 0x0F,
		Payload:  buf[1:9],
		Checksum: buf[9],
	}, nil
}

// PayloadHex renders the payload bytes as a space-separated hex dump, one
// "0x%02x" token per byte. Format-0 frames include it in their output since
// most of their payload is reserved and the dump aids protocol debugging.
func (m Message) PayloadHex() string {
	out := make([]byte, 0, len(m.Payload)*5)
	for i, b := range m.Payload {
		if i > 0 {
			out = append(out, ' ')
		}
		out = append(out, fmt.Sprintf("0x%02x", b)...)
	}
	return string(out)
}
