package mp3

import (
	"bytes"
	"io"
	"math"
	"time"

	"github.com/ddboline/audio-metadata/internal/binary"
	"github.com/ddboline/audio-metadata/internal/types"
)

// DefaultTrailingTagWindow is how far back from end of file trailing
// metadata blocks (ID3v1, APE, Lyrics3) are searched for when computing
// the audio region.
const DefaultTrailingTagWindow = 64 * 1024

// syncLookahead is the window scanned per iteration while hunting for a
// frame sync word.
const syncLookahead = 128

// minFrameRun is how many consecutive decodable frames confirm a sync
// position as real audio rather than a false sync inside tag data.
const minFrameRun = 4

// StreamInfo holds the derived properties of one MPEG audio stream.
type StreamInfo struct {
	Start int64 // offset of the first audio frame
	End   int64 // end of audio data, trailing tags excluded
	Size  int64 // audio byte count

	Version     MPEGVersion
	Layer       int
	Protected   bool
	Bitrate     int // bps; average for VBR streams
	BitrateMode types.BitrateMode
	SampleRate  int
	Channels    int
	ChannelMode ChannelMode
	Duration    time.Duration

	Xing *XingHeader
	VBRI *VBRIHeader
}

// DecodeStreamInfo locates the audio stream starting at the reader's
// current offset and derives its properties. trailingTagWindow bounds
// the end-of-file search for trailing metadata; zero selects
// DefaultTrailingTagWindow.
func DecodeStreamInfo(r *binary.Reader, trailingTagWindow int64) (*StreamInfo, error) {
	frames, err := findFrames(r)
	if err != nil {
		return nil, err
	}
	first := frames[0]

	if trailingTagWindow <= 0 {
		trailingTagWindow = DefaultTrailingTagWindow
	}

	audioStart := first.Start
	audioEnd := r.Size() - trailingTagOffset(r, trailingTagWindow)
	audioSize := audioEnd - audioStart

	samplesPerFrame, _ := samplesAndSlot(first.Version, first.Layer)

	mode := types.BitrateModeUnknown
	var numSamples float64

	switch {
	case first.Xing != nil && first.Xing.NumFrames != nil:
		numSamples = float64(samplesPerFrame) * float64(*first.Xing.NumFrames)
		if lame := first.Xing.LAME; lame != nil {
			// The delay/padding samples are encoder artifacts, not
			// music; drop them unless the counts are clearly bogus.
			if trim := float64(lame.Delay + lame.Padding); trim < numSamples {
				numSamples -= trim
			}
			switch lame.BitrateMode {
			case 1, 8:
				mode = types.BitrateModeCBR
			case 2, 9:
				mode = types.BitrateModeABR
			case 3, 4, 5, 6:
				mode = types.BitrateModeVBR
			}
		}

	case first.VBRI != nil:
		numSamples = float64(samplesPerFrame) * float64(first.VBRI.NumFrames)
		mode = types.BitrateModeVBR

	default:
		if uniformBitrate(frames) {
			mode = types.BitrateModeCBR
		}
		// No frame count available: estimate from the audio size and
		// the first frame's size. The frame count stays fractional so
		// a partial final frame still contributes.
		numSamples = float64(samplesPerFrame) * float64(audioSize) / float64(first.Size)
	}

	var bitrate float64
	if mode == types.BitrateModeCBR {
		bitrate = float64(first.Bitrate)
	} else {
		effectiveSize := audioSize
		if first.Xing != nil {
			// The Xing frame itself carries no music.
			effectiveSize -= first.Size
		}
		if numSamples <= 0 {
			return nil, &types.InsufficientAudioDataError{Path: r.Path()}
		}
		bitrate = float64(effectiveSize) * 8 * float64(first.SampleRate) / numSamples
	}
	if bitrate <= 0 {
		return nil, &types.InsufficientAudioDataError{Path: r.Path()}
	}

	duration := float64(audioSize*8) / bitrate

	return &StreamInfo{
		Start:       audioStart,
		End:         audioEnd,
		Size:        audioSize,
		Version:     first.Version,
		Layer:       first.Layer,
		Protected:   first.Protected,
		Bitrate:     int(math.Round(bitrate)),
		BitrateMode: mode,
		SampleRate:  first.SampleRate,
		Channels:    first.Channels,
		ChannelMode: first.ChannelMode,
		Duration:    time.Duration(duration * float64(time.Second)),
		Xing:        first.Xing,
		VBRI:        first.VBRI,
	}, nil
}

// findFrames synchronizes with the audio stream. It scans forward for a
// sync word and tries to decode minFrameRun consecutive frames there; a
// shorter run is remembered as a fallback but scanning continues, since
// tag data can contain byte sequences that decode as one or two
// plausible frames. A frame carrying a Xing header is accepted
// immediately: the encoder put it at the front of the stream.
func findFrames(r *binary.Reader) ([]*FrameHeader, error) {
	var frames, cached []*FrameHeader

	for {
		window := r.Peek(syncLookahead)
		if len(window) < syncLookahead {
			break
		}

		i := bytes.IndexByte(window, 0xFF)
		if i < 0 {
			r.Skip(syncLookahead)
			continue
		}
		r.Skip(int64(i))

		if hdr := r.Peek(2); len(hdr) == 2 && hdr[0] == 0xFF && hdr[1]&0xE0 == 0xE0 {
			for range minFrameRun {
				frame, err := DecodeFrameHeader(r)
				if err != nil {
					r.Skip(1)
					break
				}
				frames = append(frames, frame)
				if frame.Xing != nil {
					break
				}
				r.Seek(frame.Start+frame.Size, io.SeekStart)
			}
		} else {
			r.Skip(1)
		}

		if len(frames) >= minFrameRun || (len(frames) > 0 && frames[0].Xing != nil) {
			break
		}
		if len(frames) >= 2 && cached == nil {
			cached = frames
		}
		frames = nil
	}

	if len(frames) == 0 {
		frames = cached
	}
	if len(frames) == 0 {
		return nil, &types.InsufficientAudioDataError{Path: r.Path()}
	}
	return frames, nil
}

// Trailing metadata block markers, in search order.
var trailingMarkers = [][]byte{
	[]byte("APETAGEX"),
	[]byte("LYRICSBEGIN"),
	[]byte("TAG"),
}

// trailingTagOffset reports how many bytes of trailing metadata sit at
// the end of the file, by finding the earliest trailing marker within
// the last window bytes. Searching a bounded window is an approximation
// that covers ID3v1, Lyrics3 and all practical APE tag sizes.
func trailingTagOffset(r *binary.Reader, window int64) int64 {
	size := r.Size()
	start := size - window
	if start < 0 {
		start = 0
	}

	buf := make([]byte, size-start)
	if err := r.SafeReader.ReadAt(buf, start, "trailing tag window"); err != nil {
		return 0
	}

	var offset int64
	for _, marker := range trailingMarkers {
		idx := bytes.LastIndex(buf, marker)
		if idx <= 0 {
			continue
		}
		if tail := int64(len(buf) - idx); tail > offset {
			offset = tail
		}
	}
	return offset
}

// uniformBitrate reports whether every synchronized frame declares the
// same bitrate.
func uniformBitrate(frames []*FrameHeader) bool {
	for _, f := range frames[1:] {
		if f.Bitrate != frames[0].Bitrate {
			return false
		}
	}
	return true
}
