// Package id3v2 decodes the ID3v2 tag container: the version-aware tag
// header, the frame stream for versions 2.2 through 2.4, and the
// aggregation of decoded frames into a tag mapping.
package id3v2

import (
	"fmt"

	"github.com/ddboline/audio-metadata/internal/binary"
	"github.com/ddboline/audio-metadata/internal/types"
)

// Version identifies one of the three supported ID3v2 minor versions.
type Version int

const (
	// Version22 is ID3v2.2: 3-byte frame ids and 3-byte frame sizes.
	Version22 Version = 2
	// Version23 is ID3v2.3: 4-byte frame ids, plain 4-byte frame sizes.
	Version23 Version = 3
	// Version24 is ID3v2.4: 4-byte frame ids, synchsafe frame sizes.
	Version24 Version = 4
)

// String returns the full version, e.g. "2.4".
func (v Version) String() string {
	return fmt.Sprintf("2.%d", int(v))
}

// HeaderFlags are the four flag bits of the tag header. The low four bits
// of the flags byte are reserved and ignored.
type HeaderFlags struct {
	Unsynchronisation bool
	Extended          bool
	Experimental      bool
	Footer            bool
}

// HeaderSize is the fixed byte size of the ID3v2 tag header (and of the
// optional footer).
const HeaderSize = 10

// Header is the decoded 10-byte ID3v2 tag header.
type Header struct {
	Version  Version
	Revision byte
	Flags    HeaderFlags
	// Size is the declared tag size in bytes, excluding the header itself.
	Size uint32
}

// DecodeHeader decodes exactly 10 bytes into a Header.
//
// Fails with HeaderNotFoundError when the "ID3" marker is absent,
// UnsupportedVersionError for any major version other than 2/3/4, and
// MalformedIntegerError when a synchsafe size byte has its top bit set.
func DecodeHeader(buf []byte) (Header, error) {
	if len(buf) != HeaderSize {
		return Header{}, &types.InvalidHeaderError{
			What:   "ID3v2",
			Reason: fmt.Sprintf("header must be exactly %d bytes, got %d", HeaderSize, len(buf)),
		}
	}
	if string(buf[0:3]) != "ID3" {
		return Header{}, &types.HeaderNotFoundError{Marker: "ID3v2"}
	}

	major := buf[3]
	if major < 2 || major > 4 {
		return Header{}, &types.UnsupportedVersionError{
			What:    "ID3v2",
			Version: fmt.Sprintf("2.%d", major),
		}
	}

	flags := buf[5]
	size, err := binary.DecodeSynchsafe(buf[6:10])
	if err != nil {
		return Header{}, err
	}

	return Header{
		Version:  Version(major),
		Revision: buf[4],
		Flags: HeaderFlags{
			Unsynchronisation: flags&0x80 != 0,
			Extended:          flags&0x40 != 0,
			Experimental:      flags&0x20 != 0,
			Footer:            flags&0x10 != 0,
		},
		Size: size,
	}, nil
}
