package binary

import "fmt"

// MalformedIntegerError is returned when a synchsafe byte has its reserved
// top bit set.
type MalformedIntegerError struct {
	Byte byte
}

func (e *MalformedIntegerError) Error() string {
	return fmt.Sprintf("malformed synchsafe integer: byte 0x%02X has its reserved bit set", e.Byte)
}

// DecodeSynchsafe decodes a synchsafe integer: a byte sequence where only
// the low 7 bits of each byte carry data, concatenated most-significant
// group first. The top bit of every byte is reserved to avoid accidental
// MPEG sync-word collisions and must be clear.
func DecodeSynchsafe(b []byte) (uint32, error) {
	var v uint32
	for _, c := range b {
		if c&0x80 != 0 {
			return 0, &MalformedIntegerError{Byte: c}
		}
		v = v<<7 | uint32(c)
	}
	return v, nil
}

// EncodeSynchsafe encodes v into n synchsafe bytes, 7 bits per byte,
// most-significant group first.
func EncodeSynchsafe(v uint32, n int) []byte {
	b := make([]byte, n)
	for i := n - 1; i >= 0; i-- {
		b[i] = byte(v & 0x7F)
		v >>= 7
	}
	return b
}
