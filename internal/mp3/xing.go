package mp3

import (
	"regexp"

	"github.com/ddboline/audio-metadata/internal/binary"
	"github.com/ddboline/audio-metadata/internal/types"
)

const (
	xingMarker = "Xing"
	infoMarker = "Info"
)

// Xing header flag bits gating the optional fields.
const (
	xingFlagFrames  = 1 << 0
	xingFlagBytes   = 1 << 1
	xingFlagTOC     = 1 << 2
	xingFlagQuality = 1 << 3
)

// XingHeader is a Xing or Info VBR header. Every field after Flags is
// optional; absent fields are nil.
type XingHeader struct {
	// Info reports whether the marker was "Info" (CBR/ABR encodes)
	// rather than "Xing".
	Info  bool
	Flags uint32

	NumFrames *uint32
	NumBytes  *uint32
	TOC       []byte // 100 seek-table entries when present
	Quality   *uint32

	LAME *LAMEHeader
}

// DecodeXingHeader decodes a Xing/Info header at the reader's current
// offset, including a trailing LAME block when one follows.
func DecodeXingHeader(r *binary.Reader) (*XingHeader, error) {
	marker, err := r.ReadString(4, "Xing marker")
	if err != nil || (marker != xingMarker && marker != infoMarker) {
		return nil, &types.HeaderNotFoundError{Marker: xingMarker}
	}

	xing := &XingHeader{Info: marker == infoMarker}

	xing.Flags, err = binary.ReadValue[uint32](r, "Xing flags")
	if err != nil {
		return nil, &types.InvalidHeaderError{What: xingMarker, Reason: err.Error()}
	}

	if xing.Flags&xingFlagFrames != 0 {
		v, err := binary.ReadValue[uint32](r, "Xing frame count")
		if err != nil {
			return nil, &types.InvalidHeaderError{What: xingMarker, Reason: err.Error()}
		}
		xing.NumFrames = &v
	}
	if xing.Flags&xingFlagBytes != 0 {
		v, err := binary.ReadValue[uint32](r, "Xing byte count")
		if err != nil {
			return nil, &types.InvalidHeaderError{What: xingMarker, Reason: err.Error()}
		}
		xing.NumBytes = &v
	}
	if xing.Flags&xingFlagTOC != 0 {
		xing.TOC, err = r.ReadBytes(100, "Xing seek table")
		if err != nil {
			return nil, &types.InvalidHeaderError{What: xingMarker, Reason: err.Error()}
		}
	}
	if xing.Flags&xingFlagQuality != 0 {
		v, err := binary.ReadValue[uint32](r, "Xing quality")
		if err != nil {
			return nil, &types.InvalidHeaderError{What: xingMarker, Reason: err.Error()}
		}
		xing.Quality = &v
	}

	if string(r.Peek(4)) == "LAME" {
		xing.LAME, err = DecodeLAMEHeader(r)
		if err != nil {
			return nil, err
		}
	}

	return xing, nil
}

// LAMEVersion is the encoder version from the LAME magic string.
type LAMEVersion struct {
	Major, Minor int
}

// LAMEEncodingFlags are the encoder flag bits of a LAME header.
type LAMEEncodingFlags struct {
	NogapContinuation bool // track is a continuation of a gapless album
	NogapContinued    bool // track is continued by the next one
	NSSafeJoint       bool
	NSPsyTune         bool
}

// LAMEReplayGain is the replay gain block of a LAME header.
type LAMEReplayGain struct {
	Peak  float64
	Track LAMEGainAdjustment
	Album LAMEGainAdjustment
}

// LAMEGainAdjustment is one replay gain adjustment entry.
type LAMEGainAdjustment struct {
	Type       LAMEReplayGainType
	Origin     LAMEReplayGainOrigin
	Adjustment float64 // dB
}

// LAMEHeader is the encoder information block LAME appends to a
// Xing/Info header.
type LAMEHeader struct {
	Version            *LAMEVersion // nil when the magic string carries no version
	Revision           int
	BitrateMode        LAMEBitrateMode
	LowpassFilter      int // Hz
	ReplayGain         LAMEReplayGain
	EncodingFlags      LAMEEncodingFlags
	Bitrate            int // bps; target for ABR, minimum for VBR
	Delay              int // encoder delay in samples
	Padding            int // encoder padding in samples
	SourceSampleRate   int
	UnwiseSettingsUsed bool
	ChannelMode        LAMEChannelMode
	NoiseShaping       int
	MP3Gain            int
	SurroundInfo       LAMESurroundInfo
	Preset             LAMEPreset
	AudioSize          uint32 // music byte count, VBR headers excluded
	AudioCRC           uint16
	HeaderCRC          uint16
}

var lameVersionRE = regexp.MustCompile(`LAME(\d+)\.(\d+)`)

// DecodeLAMEHeader decodes the 36-byte LAME block at the reader's
// current offset.
func DecodeLAMEHeader(r *binary.Reader) (*LAMEHeader, error) {
	buf, err := r.ReadBytes(36, "LAME header")
	if err != nil {
		return nil, &types.InvalidHeaderError{What: "LAME", Reason: err.Error()}
	}

	lame := &LAMEHeader{}

	if m := lameVersionRE.FindSubmatch(buf[:9]); m != nil {
		lame.Version = &LAMEVersion{
			Major: atoiDigits(m[1]),
			Minor: atoiDigits(m[2]),
		}
	}

	lame.Revision = int(buf[9] >> 4)
	lame.BitrateMode = LAMEBitrateMode(buf[9] & 0xF)
	lame.LowpassFilter = int(buf[10]) * 100

	lame.ReplayGain = decodeReplayGain(buf[11:19])

	lame.EncodingFlags = LAMEEncodingFlags{
		NogapContinuation: buf[19]&0x80 != 0,
		NogapContinued:    buf[19]&0x40 != 0,
		NSSafeJoint:       buf[19]&0x20 != 0,
		NSPsyTune:         buf[19]&0x10 != 0,
	}
	// The low nibble of buf[19] is the ATH type, which carries no
	// listener-relevant information and is not retained.

	lame.Bitrate = int(buf[20]) * 1000

	lame.Delay = int(buf[21])<<4 | int(buf[22])>>4
	lame.Padding = int(buf[22]&0xF)<<8 | int(buf[23])

	lame.SourceSampleRate = int(buf[24] >> 6)
	lame.UnwiseSettingsUsed = buf[24]&0x20 != 0
	lame.ChannelMode = LAMEChannelMode(buf[24] >> 2 & 0x7)
	lame.NoiseShaping = int(buf[24] & 0x3)

	lame.MP3Gain = int(int8(buf[25]))

	lame.SurroundInfo = LAMESurroundInfo(buf[26] >> 3 & 0x7)
	lame.Preset = LAMEPreset(int(buf[26]&0x7)<<8 | int(buf[27]))

	lame.AudioSize = beUint32(buf[28:32])
	lame.AudioCRC = uint16(buf[32])<<8 | uint16(buf[33])
	lame.HeaderCRC = uint16(buf[34])<<8 | uint16(buf[35])

	return lame, nil
}

// decodeReplayGain decodes the 8-byte replay gain block: a 32-bit peak
// followed by two 16-bit gain adjustments.
func decodeReplayGain(buf []byte) LAMEReplayGain {
	rg := LAMEReplayGain{}

	if peak := beUint32(buf[:4]); peak != 0 {
		rg.Peak = float64(peak) / (1 << 23)
	}
	rg.Track = decodeGainAdjustment(buf[4:6])
	rg.Album = decodeGainAdjustment(buf[6:8])

	return rg
}

// decodeGainAdjustment unpacks one 16-bit gain field: 3-bit type, 3-bit
// origin, sign bit, then the magnitude in tenths of a decibel.
func decodeGainAdjustment(buf []byte) LAMEGainAdjustment {
	v := uint16(buf[0])<<8 | uint16(buf[1])

	adjustment := float64(v&0x1FF) / 10
	if v&0x200 != 0 {
		adjustment = -adjustment
	}

	return LAMEGainAdjustment{
		Type:       LAMEReplayGainType(v >> 13),
		Origin:     LAMEReplayGainOrigin(v >> 10 & 0x7),
		Adjustment: adjustment,
	}
}

func beUint32(b []byte) uint32 {
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}

// atoiDigits converts an all-digit byte slice; the version regexp
// guarantees the input.
func atoiDigits(b []byte) int {
	n := 0
	for _, c := range b {
		n = n*10 + int(c-'0')
	}
	return n
}
