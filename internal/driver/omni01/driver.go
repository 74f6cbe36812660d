package omni01

import (
	"context"
	"encoding/binary"

	"github.com/hdtodd/omnisensor-433/internal/bitfield"
	"github.com/hdtodd/omnisensor-433/internal/driver"
	"github.com/hdtodd/omnisensor-433/internal/frame"
)

const (
	formatTHP = 0x01
	model     = "Omni_01"
)

func init() {
	driver.Register(driver.Detection{Format: formatTHP}, Driver{})
}

// Driver decodes format-1 frames: indoor/outdoor temperature and humidity,
// barometric pressure, and supply voltage. The two temperatures are 12-bit
// two's-complement tenths of a degree packed back to back across bytes 1..3.
type Driver struct{}

// Name returns the canonical driver name.
func (Driver) Name() string { return "omni01" }

// Fields lists the output schema in emission order.
func (Driver) Fields() []string {
	return []string{
		"model", "fmt", "id",
		"temperature_C", "temperature_2_C",
		"humidity", "humidity_2",
		"pressure_hPa", "voltage_V", "mic",
	}
}

// Process extracts the format-1 fields from a validated frame.
func (Driver) Process(_ context.Context, m *frame.Message) (map[string]any, error) {
	return map[string]any{
		"model":           model,
		"fmt":             int(m.Format),
		"id":              int(m.ID),
		"temperature_C":   float64(bitfield.Signed(m.Raw, 8, 12)) / 10.0,
		"temperature_2_C": float64(bitfield.Signed(m.Raw, 20, 12)) / 10.0,
		"humidity":        int(m.Raw[4]),
		"humidity_2":      int(m.Raw[5]),
		"pressure_hPa":    float64(binary.BigEndian.Uint16(m.Raw[6:8])) / 10.0,
		"voltage_V":       float64(m.Raw[8])/100.0 + 3.00,
		"mic":             "CRC",
	}, nil
}
