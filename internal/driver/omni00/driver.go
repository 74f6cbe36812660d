package omni00

import (
	"context"

	"github.com/hdtodd/omnisensor-433/internal/bitfield"
	"github.com/hdtodd/omnisensor-433/internal/driver"
	"github.com/hdtodd/omnisensor-433/internal/frame"
)

const (
	formatCore = 0x00
	model      = "Omni_00"
)

func init() {
	driver.Register(driver.Detection{Format: formatCore}, Driver{})
}

// Driver decodes format-0 frames: the sensor's microcontroller core
// temperature and supply voltage. Bytes 2 (low nibble) through 7 are
// reserved; they are not validated, only dumped for debugging.
type Driver struct{}

// Name returns the canonical driver name.
func (Driver) Name() string { return "omni00" }

// Fields lists the output schema in emission order.
func (Driver) Fields() []string {
	return []string{"model", "fmt", "id", "temperature_C", "voltage_V", "payload", "mic"}
}

// Process extracts the format-0 fields from a validated frame.
func (Driver) Process(_ context.Context, m *frame.Message) (map[string]any, error) {
	return map[string]any{
		"model":         model,
		"fmt":           int(m.Format),
		"id":            int(m.ID),
		"temperature_C": float64(bitfield.Signed(m.Raw, 8, 12)) / 10.0,
		"voltage_V":     float64(m.Raw[8])/100.0 + 3.00,
		"payload":       m.PayloadHex(),
		"mic":           "CRC",
	}, nil
}
