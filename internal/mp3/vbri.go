package mp3

import (
	"fmt"
	"math"

	"github.com/ddboline/audio-metadata/internal/binary"
	"github.com/ddboline/audio-metadata/internal/types"
)

const vbriMarker = "VBRI"

// VBRIHeader is a Fraunhofer VBRI variable-bitrate header.
type VBRIHeader struct {
	Version uint16
	// Delay is the encoder delay in milliseconds, stored on disk as a
	// 16-bit float.
	Delay     float64
	Quality   uint16
	NumBytes  uint32
	NumFrames uint32

	TOCScaleFactor int
	TOCEntrySize   int
	TOCEntryFrames int // frames covered per seek-table entry
	TOC            []uint32
}

// DecodeVBRIHeader decodes a VBRI header at the reader's current offset.
func DecodeVBRIHeader(r *binary.Reader) (*VBRIHeader, error) {
	marker, err := r.ReadString(4, "VBRI marker")
	if err != nil || marker != vbriMarker {
		return nil, &types.HeaderNotFoundError{Marker: vbriMarker}
	}

	buf, err := r.ReadBytes(22, "VBRI header")
	if err != nil {
		return nil, &types.InvalidHeaderError{What: vbriMarker, Reason: err.Error()}
	}

	vbri := &VBRIHeader{
		Version:        beUint16(buf[0:2]),
		Delay:          decodeFloat16(beUint16(buf[2:4])),
		Quality:        beUint16(buf[4:6]),
		NumBytes:       beUint32(buf[6:10]),
		NumFrames:      beUint32(buf[10:14]),
		TOCScaleFactor: int(beUint16(buf[16:18])),
		TOCEntrySize:   int(beUint16(buf[18:20])),
		TOCEntryFrames: int(beUint16(buf[20:22])),
	}

	numEntries := int(beUint16(buf[14:16]))

	switch vbri.TOCEntrySize {
	case 2, 4:
	default:
		return nil, &types.InvalidHeaderError{
			What:   vbriMarker,
			Reason: fmt.Sprintf("seek table entry size %d not supported", vbri.TOCEntrySize),
		}
	}

	table, err := r.ReadBytes(numEntries*vbri.TOCEntrySize, "VBRI seek table")
	if err != nil {
		return nil, &types.InvalidHeaderError{What: vbriMarker, Reason: err.Error()}
	}

	vbri.TOC = make([]uint32, numEntries)
	for i := range vbri.TOC {
		entry := table[i*vbri.TOCEntrySize:]
		if vbri.TOCEntrySize == 2 {
			vbri.TOC[i] = uint32(beUint16(entry[:2]))
		} else {
			vbri.TOC[i] = beUint32(entry[:4])
		}
	}

	return vbri, nil
}

func beUint16(b []byte) uint16 {
	return uint16(b[0])<<8 | uint16(b[1])
}

// decodeFloat16 expands an IEEE 754 half-precision value to float64.
func decodeFloat16(bits uint16) float64 {
	sign := float64(1)
	if bits&0x8000 != 0 {
		sign = -1
	}
	exponent := int(bits >> 10 & 0x1F)
	mantissa := float64(bits & 0x3FF)

	switch exponent {
	case 0:
		// Subnormal.
		return sign * mantissa * math.Pow(2, -24)
	case 31:
		if mantissa != 0 {
			return math.NaN()
		}
		return sign * math.Inf(1)
	default:
		return sign * (1 + mantissa/1024) * math.Pow(2, float64(exponent-15))
	}
}
