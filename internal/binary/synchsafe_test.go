package binary

import (
	"bytes"
	"testing"
)

func TestDecodeSynchsafe(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want uint32
	}{
		{"zero", []byte{0x00, 0x00, 0x00, 0x00}, 0},
		{"small", []byte{0x00, 0x00, 0x02, 0x01}, 257},
		{"spec example", []byte{0x00, 0x00, 0x01, 0x7F}, 255},
		{"max", []byte{0x7F, 0x7F, 0x7F, 0x7F}, 0x0FFFFFFF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeSynchsafe(tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestDecodeSynchsafe_ReservedBit(t *testing.T) {
	// A set top bit in any position is malformed.
	for i := 0; i < 4; i++ {
		in := []byte{0x00, 0x00, 0x00, 0x00}
		in[i] = 0x80

		_, err := DecodeSynchsafe(in)
		if err == nil {
			t.Fatalf("byte %d: expected error", i)
		}
		if _, ok := err.(*MalformedIntegerError); !ok {
			t.Errorf("byte %d: expected MalformedIntegerError, got %T", i, err)
		}
	}
}

func TestSynchsafe_RoundTrip(t *testing.T) {
	values := []uint32{0, 1, 127, 128, 255, 257, 0x1FFF, 0x0FFFFFFF}

	for _, v := range values {
		encoded := EncodeSynchsafe(v, 4)
		decoded, err := DecodeSynchsafe(encoded)
		if err != nil {
			t.Fatalf("%d: unexpected error: %v", v, err)
		}
		if decoded != v {
			t.Errorf("%d: round-tripped to %d", v, decoded)
		}
	}
}

func TestEncodeSynchsafe(t *testing.T) {
	got := EncodeSynchsafe(257, 4)
	if !bytes.Equal(got, []byte{0x00, 0x00, 0x02, 0x01}) {
		t.Errorf("expected [0 0 2 1], got %v", got)
	}
}
