// Package id3v1 decodes the legacy fixed-layout ID3v1 trailer tag: the
// final 128 bytes of a file, beginning with the literal "TAG". It is
// consulted as a fallback tag source when no ID3v2 tag exists.
package id3v1

import (
	"bytes"
	"strconv"

	"github.com/ddboline/audio-metadata/internal/types"
)

// TagSize is the fixed byte size of an ID3v1 tag block.
const TagSize = 128

// fieldMap maps canonical names onto themselves: ID3v1 has no raw frame
// ids, so tags are stored directly under canonical keys.
var fieldMap = types.NewFieldMap(map[string]string{})

// Decode decodes a fixed 128-byte ID3v1 buffer into a tag mapping.
//
// The layout is non-heuristic: "TAG" marker, 30-byte title, artist and
// album, 4-byte year, 30-byte comment, genre byte. An ID3v1.1 track
// number occupies the final two comment bytes when byte 28 is zero and
// byte 29 is not.
func Decode(buf []byte) (*types.Tags, error) {
	if len(buf) != TagSize {
		return nil, &types.InvalidHeaderError{
			What:   "ID3v1",
			Reason: "tag must be exactly 128 bytes",
		}
	}
	if string(buf[0:3]) != "TAG" {
		return nil, &types.HeaderNotFoundError{Marker: "ID3v1"}
	}

	tags := types.NewTags(fieldMap)

	setField(tags, "title", buf[3:33])
	setField(tags, "artist", buf[33:63])
	setField(tags, "album", buf[63:93])
	setField(tags, "date", buf[93:97])

	comment := buf[97:127]
	if comment[28] == 0 && comment[29] != 0 {
		// ID3v1.1: the last comment byte is a track number.
		tags.Replace("tracknumber", strconv.Itoa(int(comment[29])))
		comment = comment[:28]
	}
	setField(tags, "comment", comment)

	if name, ok := GenreName(int(buf[127])); ok {
		tags.Replace("genre", name)
	}

	return tags, nil
}

// setField trims the fixed-width field and stores it when non-empty.
func setField(tags *types.Tags, key string, raw []byte) {
	value := trimField(raw)
	if value != "" {
		tags.Replace(key, value)
	}
}

// trimField cuts a fixed-width ID3v1 field at its first NUL and strips
// the space padding some writers use instead.
func trimField(raw []byte) string {
	if i := bytes.IndexByte(raw, 0); i >= 0 {
		raw = raw[:i]
	}
	return string(bytes.TrimRight(raw, " "))
}
