// Package omni decodes telemetry frames from the Omni wireless multi-sensor.
//
// A transmission arrives as 4 repeated, PWM/OOK-demodulated bit rows of 80
// bits each. Decoding picks one sufficiently repeated row, validates its
// CRC-8, and routes on the 4-bit format code to a per-format driver that
// unpacks the payload into named fields. Each call is stateless and safe to
// run concurrently with others.
package omni

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"unicode"

	"github.com/hdtodd/omnisensor-433/internal/bitrow"
	"github.com/hdtodd/omnisensor-433/internal/driver"
	_ "github.com/hdtodd/omnisensor-433/internal/driver/omni00" // register driver
	_ "github.com/hdtodd/omnisensor-433/internal/driver/omni01" // register driver
	"github.com/hdtodd/omnisensor-433/internal/frame"
	"github.com/hdtodd/omnisensor-433/internal/options"
)

// Result captures the outcome of one decoded transmission.
type Result struct {
	Driver   string
	RawHex   string
	BitCount int
	Message  *frame.Message
	Fields   map[string]any
}

// String renders a human-readable representation of the result.
func (r Result) String() string {
	summary := map[string]any{
		"driver":    r.Driver,
		"bit_count": r.BitCount,
		"raw_hex":   r.RawHex,
	}
	if r.Message != nil {
		summary["fmt"] = int(r.Message.Format)
		summary["id"] = int(r.Message.ID)
	}
	if len(r.Fields) > 0 {
		summary["fields"] = r.Fields
	}
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Sprintf("driver: %s bits:%d raw:%s (marshal error: %v)", r.Driver, r.BitCount, r.RawHex, err)
	}
	return string(data)
}

// DecodeRows runs the full pipeline over the repeated bit rows of one
// transmission: row selection, CRC validation, format dispatch, extraction.
func DecodeRows(ctx context.Context, rows []bitrow.Row) (Result, error) {
	return DecodeRowsWithOptions(ctx, rows, DecodeOptions{})
}

// DecodeRowsWithOptions runs the pipeline with custom options.
func DecodeRowsWithOptions(ctx context.Context, rows []bitrow.Row, opts DecodeOptions) (Result, error) {
	ctx, minRepeats := opts.toInternal(ctx)
	log := options.Logger(ctx)

	row, err := bitrow.FindRepeated(rows, minRepeats, frame.FrameBits)
	if err != nil {
		log.WithError(err).Debug("no usable frame in transmission")
		return Result{}, err
	}
	return decodeFrame(ctx, row.Bytes(frame.FrameBytes), row.Bits)
}

// DecodeHex decodes a single already-framed 10-byte message given as hex.
// Row selection is skipped; whitespace, '|' and '_' separators are ignored.
func DecodeHex(ctx context.Context, raw string) (Result, error) {
	return DecodeHexWithOptions(ctx, raw, DecodeOptions{})
}

// DecodeHexWithOptions decodes a hex frame with custom options.
func DecodeHexWithOptions(ctx context.Context, raw string, opts DecodeOptions) (Result, error) {
	ctx, _ = opts.toInternal(ctx)
	data, err := decodeHex(raw)
	if err != nil {
		return Result{}, err
	}
	return decodeFrame(ctx, data, len(data)*8)
}

func decodeFrame(ctx context.Context, data []byte, bits int) (Result, error) {
	log := options.Logger(ctx)
	result := Result{
		Driver:   "unknown",
		RawHex:   strings.ToUpper(hex.EncodeToString(data)),
		BitCount: bits,
	}

	msg, err := frame.Parse(data)
	if err != nil {
		log.WithError(err).Debug("frame rejected")
		return result, err
	}
	result.Message = &msg

	drv, err := driver.Lookup(msg.Format)
	if err != nil {
		log.WithError(err).WithField("fmt", msg.Format).Debug("unsupported format")
		return result, err
	}
	fields, err := drv.Process(ctx, &msg)
	if err != nil {
		return result, err
	}
	result.Driver = drv.Name()
	result.Fields = fields
	return result, nil
}

func decodeHex(input string) ([]byte, error) {
	clean := stripSeparators(input)
	if strings.HasPrefix(clean, "0X") {
		clean = clean[2:]
	}
	if len(clean)%2 != 0 {
		return nil, fmt.Errorf("hex frame must contain an even number of digits, got %d", len(clean))
	}
	decoded := make([]byte, len(clean)/2)
	if _, err := hex.Decode(decoded, []byte(clean)); err != nil {
		return nil, fmt.Errorf("decode hex: %w", err)
	}
	return decoded, nil
}

func stripSeparators(s string) string {
	builder := strings.Builder{}
	builder.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) || r == '|' || r == '_' {
			continue
		}
		builder.WriteRune(unicode.ToUpper(r))
	}
	return builder.String()
}
