package driver

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/hdtodd/omnisensor-433/internal/frame"
)

// ErrUnknownFormat is returned by Lookup for the reserved format codes the
// protocol defines no payload layout for.
var ErrUnknownFormat = errors.New("no driver registered for format")

// Detection identifies a driver by the 4-bit format code carried in byte 0
// of every frame. The protocol reserves codes 2..15 for future layouts, so
// the registry stays an open table rather than a switch in the dispatcher.
type Detection struct {
	Format byte
}

// Driver decodes the payload of one frame format into named fields.
type Driver interface {
	Name() string
	// Fields lists the output schema in emission order.
	Fields() []string
	Process(context.Context, *frame.Message) (map[string]any, error)
}

var (
	regMu    sync.RWMutex
	registry []registeredDriver
)

type registeredDriver struct {
	detect Detection
	driver Driver
}

// Register stores a driver/detection pair in memory. Called from driver
// package init functions.
func Register(det Detection, drv Driver) {
	regMu.Lock()
	defer regMu.Unlock()
	registry = append(registry, registeredDriver{detect: det, driver: drv})
}

// Lookup returns the driver registered for the given format code.
func Lookup(format byte) (Driver, error) {
	regMu.RLock()
	defer regMu.RUnlock()
	for _, rd := range registry {
		if rd.detect.Format == format {
			return rd.driver, nil
		}
	}
	return nil, fmt.Errorf("%w 0x%X", ErrUnknownFormat, format)
}
