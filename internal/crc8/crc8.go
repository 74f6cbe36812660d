package crc8

// Omni frames carry a CRC-8 over the first 9 bytes: polynomial 0x97,
// initial remainder 0x00, no input/output reflection, no final XOR.
const (
	Poly = 0x97
	Init = 0x00
)

// Checksum performs the modulo-2 division a bit at a time, MSB first.
func Checksum(data []byte, poly, init byte) byte {
	rem := init
	for _, b := range data {
		rem ^= b
		for i := 0; i < 8; i++ {
			if rem&0x80 != 0 {
				rem = (rem << 1) ^ poly
			} else {
				rem <<= 1
			}
		}
	}
	return rem
}

// Frame computes the checksum with the Omni protocol parameters.
func Frame(data []byte) byte {
	return Checksum(data, Poly, Init)
}
