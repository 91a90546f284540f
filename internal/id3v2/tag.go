package id3v2

import (
	"errors"
	"fmt"
	"io"

	"github.com/ddboline/audio-metadata/internal/binary"
	"github.com/ddboline/audio-metadata/internal/types"
)

// Tag is a fully parsed ID3v2 container.
type Tag struct {
	Header Header
	// Size is the total tag block size in bytes: header, extended header,
	// frames and footer.
	Size     int64
	Tags     *types.Tags
	Pictures []types.Picture
}

// Decode parses a complete ID3v2 tag starting at the reader's current
// offset and leaves the reader positioned immediately past the tag block.
//
// Fails with HeaderNotFoundError when no "ID3" marker is present,
// UnsupportedVersionError for versions outside 2.2-2.4, and
// MalformedIntegerError for invalid synchsafe sizes. A frame whose
// envelope cannot be decoded terminates the frame scan without error:
// frames are assumed contiguous and the remainder is padding.
func Decode(r *binary.Reader) (*Tag, error) {
	start := r.Offset()

	if string(r.Peek(3)) != "ID3" {
		return nil, &types.HeaderNotFoundError{Marker: "ID3v2"}
	}

	headerBuf, err := r.ReadBytes(HeaderSize, "ID3v2 header")
	if err != nil {
		return nil, &types.HeaderNotFoundError{Marker: "ID3v2", Reason: err.Error()}
	}
	header, err := DecodeHeader(headerBuf)
	if err != nil {
		return nil, err
	}

	tag := &Tag{
		Header: header,
		Size:   int64(HeaderSize) + int64(header.Size),
		Tags:   types.NewTags(FieldMapForVersion(header.Version)),
	}
	if header.Flags.Footer {
		tag.Size += HeaderSize
	}

	framesEnd := start + int64(HeaderSize) + int64(header.Size)

	if header.Flags.Extended {
		if err := skipExtendedHeader(r, header.Version); err != nil {
			return nil, err
		}
	}

	if err := decodeFrames(r, header.Version, framesEnd, tag); err != nil {
		return nil, err
	}

	// Position past the whole tag block, including any footer.
	r.Seek(start+tag.Size, io.SeekStart)

	return tag, nil
}

// skipExtendedHeader consumes the extended header. Its size field is
// synchsafe; in v2.4 the declared size includes the four size bytes
// themselves, in v2.3 it does not.
func skipExtendedHeader(r *binary.Reader, v Version) error {
	raw, err := r.ReadBytes(4, "ID3v2 extended header size")
	if err != nil {
		return &types.InvalidHeaderError{What: "ID3v2 extended", Reason: err.Error()}
	}
	size, err := binary.DecodeSynchsafe(raw)
	if err != nil {
		return err
	}
	if v == Version24 {
		if size < 4 {
			return &types.InvalidHeaderError{
				What:   "ID3v2 extended",
				Reason: fmt.Sprintf("declared size %d smaller than its own size field", size),
			}
		}
		r.Skip(int64(size) - 4)
	} else {
		r.Skip(int64(size))
	}
	return nil
}

// decodeFrames iterates the frame stream up to end, folding each decoded
// frame into the tag set per its semantic category.
func decodeFrames(r *binary.Reader, v Version, end int64, tag *Tag) error {
	for r.Offset() < end {
		frame, err := decodeFrameEnvelope(r, v, end)
		if err != nil {
			if errors.Is(err, errInvalidFrame) {
				return nil // contiguous frames exhausted; the rest is padding
			}
			return err
		}

		decoded, err := decodeFrameBody(frame, v)
		if err != nil {
			continue // undecodable body: discard the frame, keep scanning
		}

		aggregate(tag, decoded)
	}
	return nil
}

// aggregate folds one decoded frame into the tag mapping using the key
// policy for its category.
func aggregate(tag *Tag, d *decodedFrame) {
	switch d.category {
	case CategoryText, CategoryNumericText, CategoryTimestamp, CategoryGenre:
		// Last write wins.
		tag.Tags.Replace(d.id, d.values...)

	case CategoryComment, CategoryLyrics:
		key := fmt.Sprintf("%s:%s:%s", d.id, d.description, d.language)
		tag.Tags.Append(key, d.value)

	case CategoryUserText, CategoryUserURL:
		key := fmt.Sprintf("%s:%s", d.id, d.description)
		tag.Tags.Append(key, d.value)

	case CategoryObject:
		tag.Tags.AppendObject("GEOB:"+d.description, d.object)

	case CategoryPrivate:
		tag.Tags.AppendPrivate("PRIV:"+d.owner, d.data)

	case CategoryPicture:
		tag.Pictures = append(tag.Pictures, d.picture)

	case CategoryOther:
		tag.Tags.Append(d.id, d.value)
	}
}
