package id3v2

import (
	"bytes"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// ID3v2 text encoding bytes.
const (
	encodingLatin1  byte = 0 // ISO-8859-1
	encodingUTF16   byte = 1 // UTF-16 with BOM
	encodingUTF16BE byte = 2 // UTF-16BE without BOM (v2.4)
	encodingUTF8    byte = 3 // UTF-8 (v2.4)
)

// decodeText decodes frame text per the ID3v2 encoding byte. Undecodable
// input degrades to a raw byte interpretation rather than failing: a bad
// encoding in one frame must not abort the tag scan.
func decodeText(data []byte, enc byte) string {
	if len(data) == 0 {
		return ""
	}

	switch enc {
	case encodingUTF16:
		data = bytes.TrimSuffix(data, []byte{0, 0})
		endian := unicode.BigEndian
		if len(data) >= 2 {
			if data[0] == 0xFF && data[1] == 0xFE {
				endian = unicode.LittleEndian
				data = data[2:]
			} else if data[0] == 0xFE && data[1] == 0xFF {
				data = data[2:]
			}
		}
		decoded, err := unicode.UTF16(endian, unicode.IgnoreBOM).NewDecoder().Bytes(data)
		if err != nil {
			return string(data)
		}
		return string(decoded)

	case encodingUTF16BE:
		data = bytes.TrimSuffix(data, []byte{0, 0})
		decoded, err := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder().Bytes(data)
		if err != nil {
			return string(data)
		}
		return string(decoded)

	case encodingUTF8:
		return string(bytes.TrimSuffix(data, []byte{0}))

	default:
		// ISO-8859-1, also the fallback for unknown encoding bytes.
		data = bytes.TrimSuffix(data, []byte{0})
		decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
		if err != nil {
			return string(data)
		}
		return string(decoded)
	}
}

// terminatorSize returns the byte width of the NUL terminator for enc.
func terminatorSize(enc byte) int {
	if enc == encodingUTF16 || enc == encodingUTF16BE {
		return 2
	}
	return 1
}

// indexTerminator finds the offset of the first NUL terminator for enc,
// or -1 if none exists. UTF-16 terminators are two aligned zero bytes.
func indexTerminator(data []byte, enc byte) int {
	if terminatorSize(enc) == 1 {
		return bytes.IndexByte(data, 0)
	}
	for i := 0; i+1 < len(data); i += 2 {
		if data[i] == 0 && data[i+1] == 0 {
			return i
		}
	}
	return -1
}

// cutTerminated splits data at the first terminator for enc. When no
// terminator exists, head is all of data and rest is empty.
func cutTerminated(data []byte, enc byte) (head, rest []byte) {
	i := indexTerminator(data, enc)
	if i < 0 {
		return data, nil
	}
	return data[:i], data[i+terminatorSize(enc):]
}

// splitValues decodes a text frame body that may hold several
// NUL-separated values (an ID3v2.4 feature; a lone trailing terminator in
// older versions decodes to a single value).
func splitValues(data []byte, enc byte) []string {
	var values []string
	for len(data) > 0 {
		head, rest := cutTerminated(data, enc)
		if value := decodeText(head, enc); value != "" {
			values = append(values, value)
		}
		data = rest
	}
	return values
}
