package mp3

import (
	"bytes"
	"errors"
	"io"

	"github.com/ddboline/audio-metadata/internal/binary"
	"github.com/ddboline/audio-metadata/internal/id3v1"
	"github.com/ddboline/audio-metadata/internal/id3v2"
	"github.com/ddboline/audio-metadata/internal/types"
)

// Parser decodes MP3 files: an optional leading ID3v2 tag, the MPEG
// audio stream, and an ID3v1 fallback tag when no ID3v2 tag exists.
type Parser struct{}

// Parse decodes the complete metadata of one MP3 file.
func (p *Parser) Parse(src io.ReaderAt, size int64, path string, opts types.ParseOptions) (*types.File, error) {
	sr := binary.NewSafeReader(src, size, path)
	r := binary.NewReader(sr, 0)

	file := &types.File{
		Path:   path,
		Format: types.FormatMP3,
		Size:   size,
	}

	tag, err := id3v2.Decode(r)
	switch {
	case err == nil:
		file.Tags = tag.Tags
		file.Pictures = tag.Pictures
	case isMissingTag(err):
		// No ID3v2 tag at all; the audio stream starts at the front.
		r.Seek(0, io.SeekStart)
	default:
		if opts.Strict {
			return nil, err
		}
		file.Warnings = append(file.Warnings, types.Warning{
			Stage:   "metadata",
			Message: "ID3v2 tag could not be decoded: " + err.Error(),
		})
		r.Seek(0, io.SeekStart)
	}

	info, err := DecodeStreamInfo(r, opts.TrailingTagWindow)
	if err != nil {
		return nil, err
	}
	file.Audio = types.AudioInfo{
		Codec:       "MP3",
		Duration:    info.Duration,
		Bitrate:     info.Bitrate,
		BitrateMode: info.BitrateMode,
		SampleRate:  info.SampleRate,
		Channels:    info.Channels,
		ChannelMode: info.ChannelMode.String(),
	}

	if file.Tags == nil {
		p.decodeID3v1(r, info, file, opts)
	}
	if file.Tags == nil {
		file.Tags = types.NewTags(types.NewFieldMap(nil))
	}

	return file, nil
}

// decodeID3v1 looks for an ID3v1 tag after the audio data. Used only
// when no ID3v2 tag exists; an ID3v2 tag always takes precedence.
func (p *Parser) decodeID3v1(r *binary.Reader, info *StreamInfo, file *types.File, opts types.ParseOptions) {
	r.Seek(info.End, io.SeekStart)
	trailing := r.Peek(int(r.Remaining()))

	// "APETAGEX" contains "TAG"; skip past an APE tag marker so the
	// ID3v1 search cannot false-match inside it.
	if idx := bytes.Index(trailing, []byte("APETAGEX")); idx >= 0 {
		trailing = trailing[idx+8:]
	}

	idx := bytes.Index(trailing, []byte("TAG"))
	if idx < 0 || len(trailing)-idx < id3v1.TagSize {
		return
	}

	tags, err := id3v1.Decode(trailing[idx : idx+id3v1.TagSize])
	if err != nil {
		file.Warnings = append(file.Warnings, types.Warning{
			Stage:   "fallback",
			Message: "ID3v1 tag could not be decoded: " + err.Error(),
			Offset:  info.End + int64(idx),
		})
		return
	}
	file.Tags = tags
}

// isMissingTag reports whether err means "no tag here" rather than "a
// tag is here but broken".
func isMissingTag(err error) bool {
	var notFound *types.HeaderNotFoundError
	return errors.As(err, &notFound) && notFound.Marker == "ID3v2" && notFound.Reason == ""
}
