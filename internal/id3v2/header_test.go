package id3v2

import (
	"testing"

	"github.com/ddboline/audio-metadata/internal/binary"
	"github.com/ddboline/audio-metadata/internal/types"
)

// buildHeader assembles a 10-byte ID3v2 tag header.
func buildHeader(major, revision, flags byte, size uint32) []byte {
	buf := []byte{'I', 'D', '3', major, revision, flags}
	return append(buf, binary.EncodeSynchsafe(size, 4)...)
}

func TestDecodeHeader(t *testing.T) {
	header, err := DecodeHeader(buildHeader(3, 0, 0, 1000))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if header.Version != Version23 {
		t.Errorf("expected v2.3, got %s", header.Version)
	}
	if header.Size != 1000 {
		t.Errorf("expected size 1000, got %d", header.Size)
	}
	if header.Flags != (HeaderFlags{}) {
		t.Errorf("expected no flags, got %+v", header.Flags)
	}
}

func TestDecodeHeader_Flags(t *testing.T) {
	// Every flag bit must decode independently; the low nibble is
	// reserved and ignored.
	for b := 0; b < 256; b++ {
		header, err := DecodeHeader(buildHeader(4, 0, byte(b), 0))
		if err != nil {
			t.Fatalf("flags 0x%02X: unexpected error: %v", b, err)
		}

		want := HeaderFlags{
			Unsynchronisation: b&0x80 != 0,
			Extended:          b&0x40 != 0,
			Experimental:      b&0x20 != 0,
			Footer:            b&0x10 != 0,
		}
		if header.Flags != want {
			t.Fatalf("flags 0x%02X: got %+v, want %+v", b, header.Flags, want)
		}
	}
}

func TestDecodeHeader_MissingMarker(t *testing.T) {
	buf := buildHeader(3, 0, 0, 0)
	copy(buf, "XXX")

	_, err := DecodeHeader(buf)
	if _, ok := err.(*types.HeaderNotFoundError); !ok {
		t.Errorf("expected HeaderNotFoundError, got %T (%v)", err, err)
	}
}

func TestDecodeHeader_UnsupportedVersion(t *testing.T) {
	for _, major := range []byte{0, 1, 5, 9} {
		_, err := DecodeHeader(buildHeader(major, 0, 0, 0))
		if _, ok := err.(*types.UnsupportedVersionError); !ok {
			t.Errorf("major %d: expected UnsupportedVersionError, got %T", major, err)
		}
	}
}

func TestDecodeHeader_MalformedSize(t *testing.T) {
	buf := buildHeader(4, 0, 0, 0)
	buf[6] = 0x80

	_, err := DecodeHeader(buf)
	if _, ok := err.(*binary.MalformedIntegerError); !ok {
		t.Errorf("expected MalformedIntegerError, got %T (%v)", err, err)
	}
}

func TestDecodeHeader_WrongLength(t *testing.T) {
	_, err := DecodeHeader([]byte("ID3"))
	if _, ok := err.(*types.InvalidHeaderError); !ok {
		t.Errorf("expected InvalidHeaderError, got %T", err)
	}
}

func TestVersionString(t *testing.T) {
	if got := Version24.String(); got != "2.4" {
		t.Errorf("expected 2.4, got %s", got)
	}
}
