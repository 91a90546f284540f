package types

import (
	"fmt"
	"time"
)

// BitrateMode classifies how the encoder allocated bits across the stream.
type BitrateMode int

const (
	// BitrateModeUnknown means no header allowed the mode to be determined.
	BitrateModeUnknown BitrateMode = iota
	// BitrateModeCBR is constant bitrate.
	BitrateModeCBR
	// BitrateModeVBR is variable bitrate.
	BitrateModeVBR
	// BitrateModeABR is average (target) bitrate.
	BitrateModeABR
)

// String returns the conventional short name for the mode.
func (m BitrateMode) String() string {
	switch m {
	case BitrateModeCBR:
		return "CBR"
	case BitrateModeVBR:
		return "VBR"
	case BitrateModeABR:
		return "ABR"
	default:
		return "UNKNOWN"
	}
}

// AudioInfo represents derived technical audio properties.
type AudioInfo struct {
	Codec       string
	Duration    time.Duration
	Bitrate     int // bits per second
	BitrateMode BitrateMode
	SampleRate  int // Hz
	Channels    int
	ChannelMode string
}

// String returns a human-readable summary, e.g. "MP3 44.1kHz stereo 128kbps CBR".
func (a AudioInfo) String() string {
	s := a.Codec
	if a.SampleRate > 0 {
		s += fmt.Sprintf(" %.1fkHz", float64(a.SampleRate)/1000)
	}
	if desc := channelDescription(a.Channels); desc != "" {
		s += " " + desc
	}
	if a.Bitrate > 0 {
		s += fmt.Sprintf(" %dkbps %s", a.Bitrate/1000, a.BitrateMode)
	}
	return s
}

// channelDescription returns a human-readable channel description.
func channelDescription(channels int) string {
	switch channels {
	case 0:
		return ""
	case 1:
		return "mono"
	case 2:
		return "stereo"
	default:
		return fmt.Sprintf("%dch", channels)
	}
}
