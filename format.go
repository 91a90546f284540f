package audiometadata

import (
	"io"

	"github.com/ddboline/audio-metadata/internal/types"
)

// Format is an alias to types.Format, re-exported from internal/types.
type Format = types.Format

// Supported formats.
const (
	FormatUnknown = types.FormatUnknown
	FormatMP3     = types.FormatMP3
)

// DetectFormat determines the audio file format by examining magic
// bytes. Detection is cheap and does not validate the full file
// structure.
func DetectFormat(r io.ReaderAt, size int64, path string) (Format, error) {
	return types.DetectFormat(r, size, path)
}
