// Package bitfield extracts integer fields that are packed MSB-first into a
// byte slice without regard for byte boundaries. The Omni payload stores its
// 12-bit temperatures straddling nibble boundaries, so all extractors go
// through these helpers instead of repeating shift/mask arithmetic per field.
package bitfield

// Unsigned collects width bits starting at startBit (bit 0 is the MSB of
// b[0]) into an unsigned value.
func Unsigned(b []byte, startBit, width int) uint32 {
	var v uint32
	for i := startBit; i < startBit+width; i++ {
		v <<= 1
		if b[i/8]&(0x80>>(i%8)) != 0 {
			v |= 1
		}
	}
	return v
}

// Signed extracts a width-bit two's-complement field and sign-extends it.
func Signed(b []byte, startBit, width int) int32 {
	v := Unsigned(b, startBit, width)
	if v&(1<<(width-1)) != 0 {
		v |= ^uint32(0) << width
	}
	return int32(v)
}
