package types

import (
	"io"

	"github.com/ddboline/audio-metadata/internal/binary"
)

// Format represents the detected audio container format.
type Format int

const (
	// FormatUnknown represents an unknown or unsupported format.
	FormatUnknown Format = iota
	// FormatMP3 represents MPEG audio files (Layer 1/2/3 framing).
	FormatMP3
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatMP3:
		return "MP3"
	default:
		return "Unknown"
	}
}

// Extensions returns common file extensions for this format.
func (f Format) Extensions() []string {
	switch f {
	case FormatMP3:
		return []string{".mp3", ".mp2", ".mp1"}
	default:
		return nil
	}
}

// DetectFormat determines the audio file format by examining magic bytes.
//
// MPEG audio is recognized either by an ID3v2 tag marker at offset 0 or by
// an MPEG frame sync pattern. Detection does not validate the full file
// structure.
func DetectFormat(r io.ReaderAt, size int64, path string) (Format, error) {
	if size < 4 {
		return FormatUnknown, &UnsupportedFormatError{
			Path:   path,
			Reason: "file too small",
		}
	}

	sr := binary.NewSafeReader(r, size, path)

	magic := make([]byte, 4)
	if err := sr.ReadAt(magic, 0, "file magic bytes"); err != nil {
		return FormatUnknown, &UnsupportedFormatError{
			Path:   path,
			Reason: "failed to read file header",
		}
	}

	// ID3v2 tag marker
	if string(magic[:3]) == "ID3" {
		return FormatMP3, nil
	}

	// MPEG frame sync (11 set bits)
	if magic[0] == 0xFF && magic[1]&0xE0 == 0xE0 {
		return FormatMP3, nil
	}

	return FormatUnknown, &UnsupportedFormatError{
		Path:   path,
		Reason: "no ID3v2 tag or MPEG frame sync found",
	}
}
