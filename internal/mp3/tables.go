package mp3

import "fmt"

// MPEGVersion is the MPEG audio version id of a frame.
type MPEGVersion int

const (
	// MPEGVersion1 is MPEG Version 1 (ISO/IEC 11172-3).
	MPEGVersion1 MPEGVersion = iota
	// MPEGVersion2 is MPEG Version 2 (ISO/IEC 13818-3).
	MPEGVersion2
	// MPEGVersion25 is the unofficial MPEG Version 2.5 low-sample-rate
	// extension.
	MPEGVersion25
)

// String returns the version label.
func (v MPEGVersion) String() string {
	switch v {
	case MPEGVersion1:
		return "MPEG-1"
	case MPEGVersion2:
		return "MPEG-2"
	default:
		return "MPEG-2.5"
	}
}

// ChannelMode is the 2-bit channel mode field of a frame header.
type ChannelMode int

// Channel modes in header bit order.
const (
	Stereo ChannelMode = iota
	JointStereo
	DualChannel
	Mono
)

// String returns the channel mode name.
func (m ChannelMode) String() string {
	switch m {
	case Stereo:
		return "Stereo"
	case JointStereo:
		return "Joint Stereo"
	case DualChannel:
		return "Dual Channel"
	case Mono:
		return "Mono"
	default:
		return fmt.Sprintf("ChannelMode(%d)", int(m))
	}
}

// Bitrate tables in kbps, indexed by the 4-bit bitrate index. Indexes 0
// ("free") and 15 are reserved and rejected before lookup. MPEG-2.5
// shares the MPEG-2 tables.
var bitrateTables = map[MPEGVersion]map[int][16]int{
	MPEGVersion1: {
		1: {0, 32, 64, 96, 128, 160, 192, 224, 256, 288, 320, 352, 384, 416, 448, 0},
		2: {0, 32, 48, 56, 64, 80, 96, 112, 128, 160, 192, 224, 256, 320, 384, 0},
		3: {0, 32, 40, 48, 56, 64, 80, 96, 112, 128, 160, 192, 224, 256, 320, 0},
	},
	MPEGVersion2: {
		1: {0, 32, 48, 56, 64, 80, 96, 112, 128, 144, 160, 176, 192, 224, 256, 0},
		2: {0, 8, 16, 24, 32, 40, 48, 56, 64, 80, 96, 112, 128, 144, 160, 0},
		3: {0, 8, 16, 24, 32, 40, 48, 56, 64, 80, 96, 112, 128, 144, 160, 0},
	},
	MPEGVersion25: {
		1: {0, 32, 48, 56, 64, 80, 96, 112, 128, 144, 160, 176, 192, 224, 256, 0},
		2: {0, 8, 16, 24, 32, 40, 48, 56, 64, 80, 96, 112, 128, 144, 160, 0},
		3: {0, 8, 16, 24, 32, 40, 48, 56, 64, 80, 96, 112, 128, 144, 160, 0},
	},
}

// Sample rate tables in Hz, indexed by the 2-bit sample-rate index.
// Index 3 is reserved and rejected before lookup.
var sampleRateTables = map[MPEGVersion][3]int{
	MPEGVersion1:  {44100, 48000, 32000},
	MPEGVersion2:  {22050, 24000, 16000},
	MPEGVersion25: {11025, 12000, 8000},
}

// samplesAndSlot returns the samples-per-frame and slot size (bytes) for
// a version/layer combination, per the MPEG frame-size formula.
func samplesAndSlot(v MPEGVersion, layer int) (samples, slot int) {
	switch layer {
	case 1:
		return 384, 4
	case 2:
		return 1152, 1
	default:
		if v == MPEGVersion1 {
			return 1152, 1
		}
		return 576, 1
	}
}

// LAMEBitrateMode is the VBR method code in a LAME header.
type LAMEBitrateMode int

// String returns the LAME VBR method name.
func (m LAMEBitrateMode) String() string {
	switch m {
	case 1:
		return "CBR"
	case 2:
		return "ABR"
	case 3:
		return "VBR (old / rh)"
	case 4:
		return "VBR (mtrh)"
	case 5:
		return "VBR (new / mt)"
	case 6:
		return "VBR"
	case 8:
		return "CBR (two-pass)"
	case 9:
		return "ABR (two-pass)"
	default:
		return "Unknown"
	}
}

// LAMEChannelMode is the encoder channel mode code in a LAME header.
type LAMEChannelMode int

// String returns the LAME channel mode name.
func (m LAMEChannelMode) String() string {
	switch m {
	case 0:
		return "Mono"
	case 1:
		return "Stereo"
	case 2:
		return "Dual Channel"
	case 3:
		return "Joint Stereo"
	case 4:
		return "Forced Joint Stereo"
	case 5:
		return "Auto"
	case 6:
		return "Intensity Stereo"
	default:
		return "Undefined"
	}
}

// LAMESurroundInfo is the surround encoding code in a LAME header.
type LAMESurroundInfo int

// String returns the surround info name.
func (s LAMESurroundInfo) String() string {
	switch s {
	case 0:
		return "None"
	case 1:
		return "Dolby Pro Logic"
	case 2:
		return "Dolby Pro Logic II"
	case 3:
		return "Ambisonic"
	default:
		return "Reserved"
	}
}

// LAMEPreset is the 11-bit preset id in a LAME header.
type LAMEPreset int

var lamePresetNames = map[LAMEPreset]string{
	0:    "Unknown",
	410:  "V9",
	420:  "V8",
	430:  "V7",
	440:  "V6",
	450:  "V5",
	460:  "V4",
	470:  "V3",
	480:  "V2",
	490:  "V1",
	500:  "V0",
	1000: "r3mix",
	1001: "standard",
	1002: "extreme",
	1003: "insane",
	1004: "standard fast",
	1005: "extreme fast",
	1006: "medium",
	1007: "medium fast",
}

// String returns the preset name; plain ABR presets carry their target
// bitrate as the id.
func (p LAMEPreset) String() string {
	if name, ok := lamePresetNames[p]; ok {
		return name
	}
	if p >= 8 && p <= 320 {
		return fmt.Sprintf("ABR %d", int(p))
	}
	return fmt.Sprintf("Preset(%d)", int(p))
}

// LAMEReplayGainType is the replay gain type code.
type LAMEReplayGainType int

// String returns the replay gain type name.
func (t LAMEReplayGainType) String() string {
	switch t {
	case 0:
		return "Not set"
	case 1:
		return "Radio"
	case 2:
		return "Audiophile"
	default:
		return "Reserved"
	}
}

// LAMEReplayGainOrigin is the replay gain origin code.
type LAMEReplayGainOrigin int

// String returns the replay gain origin name.
func (o LAMEReplayGainOrigin) String() string {
	switch o {
	case 0:
		return "Not set"
	case 1:
		return "Artist"
	case 2:
		return "User"
	case 3:
		return "Model"
	case 4:
		return "Average"
	default:
		return "Reserved"
	}
}
