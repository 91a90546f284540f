// Package mp3 decodes MPEG audio streams: frame headers, Xing/Info and
// VBRI variable-bitrate headers, LAME encoder data, and whole-stream
// properties such as duration and bitrate mode.
package mp3

import (
	"io"

	"github.com/ddboline/audio-metadata/internal/binary"
	"github.com/ddboline/audio-metadata/internal/types"
)

// FrameHeader is one decoded MPEG audio frame header, plus any VBR
// header found inside the frame.
type FrameHeader struct {
	Start int64 // absolute offset of the sync word
	Size  int64 // full frame size in bytes, header included

	Version     MPEGVersion
	Layer       int
	Protected   bool // CRC protection
	Padded      bool
	Bitrate     int // bps
	SampleRate  int // Hz
	ChannelMode ChannelMode
	Channels    int

	Xing *XingHeader
	VBRI *VBRIHeader
}

// DecodeFrameHeader decodes a frame header at the reader's current
// offset and probes the frame body for Xing/Info and VBRI headers. On
// success the reader is left just past the 4 header bytes; the caller
// seeks to Start+Size to reach the next frame.
//
// Anything that is not a valid audio frame fails with
// NotAnAudioFrameError, which is recoverable: resynchronization simply
// continues at the next byte.
func DecodeFrameHeader(r *binary.Reader) (*FrameHeader, error) {
	start := r.Offset()

	buf, err := r.ReadBytes(4, "MPEG frame header")
	if err != nil {
		return nil, &types.NotAnAudioFrameError{Offset: start, Reason: "truncated frame header"}
	}

	sync := uint16(buf[0])<<3 | uint16(buf[1])>>5
	if sync != 0x7FF {
		return nil, &types.NotAnAudioFrameError{Offset: start, Reason: "sync word not found"}
	}

	versionID := buf[1] >> 3 & 0x3
	layerID := buf[1] >> 1 & 0x3
	protectionBit := buf[1] & 0x1
	bitrateIndex := int(buf[2] >> 4)
	sampleRateIndex := int(buf[2] >> 2 & 0x3)
	padded := buf[2]>>1&0x1 == 1
	channelMode := ChannelMode(buf[3] >> 6)

	var version MPEGVersion
	switch versionID {
	case 0:
		version = MPEGVersion25
	case 2:
		version = MPEGVersion2
	case 3:
		version = MPEGVersion1
	default:
		return nil, &types.NotAnAudioFrameError{Offset: start, Reason: "reserved MPEG version"}
	}

	layer := 4 - int(layerID)
	if layer == 4 {
		return nil, &types.NotAnAudioFrameError{Offset: start, Reason: "reserved layer"}
	}
	if bitrateIndex == 0 || bitrateIndex == 15 {
		return nil, &types.NotAnAudioFrameError{Offset: start, Reason: "free or reserved bitrate"}
	}
	if sampleRateIndex == 3 {
		return nil, &types.NotAnAudioFrameError{Offset: start, Reason: "reserved sample rate"}
	}

	bitrate := bitrateTables[version][layer][bitrateIndex] * 1000
	sampleRate := sampleRateTables[version][sampleRateIndex]
	samples, slot := samplesAndSlot(version, layer)

	pad := 0
	if padded {
		pad = 1
	}
	frameSize := int64((samples/8*bitrate/sampleRate + pad) * slot)

	channels := 2
	if channelMode == Mono {
		channels = 1
	}

	frame := &FrameHeader{
		Start:       start,
		Size:        frameSize,
		Version:     version,
		Layer:       layer,
		Protected:   protectionBit == 0,
		Padded:      padded,
		Bitrate:     bitrate,
		SampleRate:  sampleRate,
		ChannelMode: channelMode,
		Channels:    channels,
	}

	if layer == 3 {
		frame.Xing = probeXing(r, frame)
		frame.VBRI = probeVBRI(r, frame)
		r.Seek(start+4, io.SeekStart)
	}

	return frame, nil
}

// xingOffset returns the offset of a Xing/Info header relative to the
// start of a layer III frame. The header sits after the side
// information block, whose size depends on version and channel mode.
func xingOffset(v MPEGVersion, mode ChannelMode) int64 {
	if v == MPEGVersion1 {
		if mode == Mono {
			return 21
		}
		return 36
	}
	if mode == Mono {
		return 13
	}
	return 21
}

// probeXing looks for a Xing/Info header inside the frame. Best effort:
// a missing or undecodable header yields nil.
func probeXing(r *binary.Reader, frame *FrameHeader) *XingHeader {
	r.Seek(frame.Start+xingOffset(frame.Version, frame.ChannelMode), io.SeekStart)
	marker := r.Peek(4)
	if string(marker) != xingMarker && string(marker) != infoMarker {
		return nil
	}
	xing, err := DecodeXingHeader(r)
	if err != nil {
		return nil
	}
	return xing
}

// probeVBRI looks for a Fraunhofer VBRI header, which always sits 36
// bytes into the frame. Best effort as with probeXing.
func probeVBRI(r *binary.Reader, frame *FrameHeader) *VBRIHeader {
	r.Seek(frame.Start+36, io.SeekStart)
	if string(r.Peek(4)) != vbriMarker {
		return nil
	}
	vbri, err := DecodeVBRIHeader(r)
	if err != nil {
		return nil
	}
	return vbri
}
