package audiometadata

import (
	"github.com/ddboline/audio-metadata/internal/mp3"
)

// Format parsers are registered here rather than in the format packages
// themselves, which keeps internal/mp3 free of any dependency on this
// package.
func init() {
	RegisterParser(FormatMP3, &mp3.Parser{})
}
