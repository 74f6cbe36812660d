package omni

import "github.com/hdtodd/omnisensor-433/internal/frame"

// PulseConfig describes the OOK/PWM modulation of an Omni transmission for
// the pulse-timing front end. The decoder itself is purely combinational
// over demodulated rows; these parameters exist so a host radio runtime can
// configure its demodulator without duplicating protocol constants.
type PulseConfig struct {
	// Pulse widths in microseconds. A long pulse with a short gap is a 0
	// bit, a short pulse with a long gap is a 1 bit.
	ShortWidthUs int
	LongWidthUs  int
	SyncWidthUs  int
	// GapLimitUs separates bit gaps from the inter-message gap;
	// ResetLimitUs is the maximum gap before the row buffer resets.
	GapLimitUs   int
	ResetLimitUs int

	// Frame geometry: expected bits per row, tolerated maximum, and the
	// repeat count required for acceptance.
	ExpectedBits int
	MaxRowBits   int
	MinRepeats   int
}

// DefaultPulseConfig returns the fixed Omni protocol parameters.
func DefaultPulseConfig() PulseConfig {
	return PulseConfig{
		ShortWidthUs: frame.ShortPulseWidthUs,
		LongWidthUs:  frame.LongPulseWidthUs,
		SyncWidthUs:  frame.SyncPulseWidthUs,
		GapLimitUs:   frame.GapLimitUs,
		ResetLimitUs: frame.ResetLimitUs,
		ExpectedBits: frame.FrameBits,
		MaxRowBits:   frame.MaxRowBits,
		MinRepeats:   frame.MinRepeats,
	}
}
