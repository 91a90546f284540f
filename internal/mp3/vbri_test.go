package mp3

import (
	"math"
	"testing"

	"github.com/ddboline/audio-metadata/internal/binary"
	"github.com/ddboline/audio-metadata/internal/types"
)

func be16(v uint16) []byte {
	return []byte{byte(v >> 8), byte(v)}
}

// buildVBRI assembles a VBRI header with the given seek table layout.
func buildVBRI(entries []uint32, entrySize uint16) []byte {
	data := []byte("VBRI")
	data = append(data, be16(1)...)      // version
	data = append(data, be16(0x3C00)...) // delay: half-precision 1.0
	data = append(data, be16(80)...)     // quality
	data = append(data, be32(500_000)...)
	data = append(data, be32(1200)...)
	data = append(data, be16(uint16(len(entries)))...)
	data = append(data, be16(1)...) // scale factor
	data = append(data, be16(entrySize)...)
	data = append(data, be16(4)...) // frames per entry
	for _, e := range entries {
		if entrySize == 2 {
			data = append(data, be16(uint16(e))...)
		} else {
			data = append(data, be32(e)...)
		}
	}
	return data
}

func TestDecodeVBRIHeader(t *testing.T) {
	entries := []uint32{100, 200, 300}
	data := buildVBRI(entries, 2)

	vbri, err := DecodeVBRIHeader(binary.NewBytesReader(data, "test"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if vbri.Version != 1 {
		t.Errorf("version: got %d", vbri.Version)
	}
	if math.Abs(vbri.Delay-1.0) > 1e-9 {
		t.Errorf("delay: got %v, want 1.0", vbri.Delay)
	}
	if vbri.Quality != 80 {
		t.Errorf("quality: got %d", vbri.Quality)
	}
	if vbri.NumBytes != 500_000 || vbri.NumFrames != 1200 {
		t.Errorf("counts: %d bytes, %d frames", vbri.NumBytes, vbri.NumFrames)
	}
	if vbri.TOCEntrySize != 2 || vbri.TOCEntryFrames != 4 {
		t.Errorf("table layout: size %d, frames %d", vbri.TOCEntrySize, vbri.TOCEntryFrames)
	}
	if len(vbri.TOC) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(vbri.TOC))
	}
	for i, want := range entries {
		if vbri.TOC[i] != want {
			t.Errorf("entry %d: got %d, want %d", i, vbri.TOC[i], want)
		}
	}
}

func TestDecodeVBRIHeader_WideEntries(t *testing.T) {
	data := buildVBRI([]uint32{70000, 140000}, 4)

	vbri, err := DecodeVBRIHeader(binary.NewBytesReader(data, "test"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if vbri.TOC[0] != 70000 || vbri.TOC[1] != 140000 {
		t.Errorf("entries: got %v", vbri.TOC)
	}
}

func TestDecodeVBRIHeader_BadEntrySize(t *testing.T) {
	data := buildVBRI(nil, 3)

	_, err := DecodeVBRIHeader(binary.NewBytesReader(data, "test"))
	if _, ok := err.(*types.InvalidHeaderError); !ok {
		t.Errorf("expected InvalidHeaderError, got %T (%v)", err, err)
	}
}

func TestDecodeVBRIHeader_WrongMarker(t *testing.T) {
	_, err := DecodeVBRIHeader(binary.NewBytesReader([]byte("XBRIxxxxxxxxxxxxxxxxxxxxxxxxxx"), "test"))
	if _, ok := err.(*types.HeaderNotFoundError); !ok {
		t.Errorf("expected HeaderNotFoundError, got %T", err)
	}
}

func TestDecodeFloat16(t *testing.T) {
	tests := []struct {
		bits uint16
		want float64
	}{
		{0x0000, 0},
		{0x3C00, 1},
		{0xBC00, -1},
		{0x4000, 2},
		{0x3800, 0.5},
		{0x4248, 3.140625},
	}

	for _, tt := range tests {
		if got := decodeFloat16(tt.bits); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("0x%04X: got %v, want %v", tt.bits, got, tt.want)
		}
	}
}

func TestDecodeFloat16_Specials(t *testing.T) {
	if !math.IsInf(decodeFloat16(0x7C00), 1) {
		t.Error("0x7C00 must be +Inf")
	}
	if !math.IsNaN(decodeFloat16(0x7C01)) {
		t.Error("0x7C01 must be NaN")
	}
	// Smallest subnormal.
	if got := decodeFloat16(0x0001); math.Abs(got-math.Pow(2, -24)) > 1e-30 {
		t.Errorf("subnormal: got %v", got)
	}
}
