package id3v2

import (
	"errors"
	"strconv"
	"strings"

	"github.com/ddboline/audio-metadata/internal/binary"
	"github.com/ddboline/audio-metadata/internal/id3v1"
	"github.com/ddboline/audio-metadata/internal/types"
)

// errInvalidFrame terminates the frame scan: frames are contiguous, so a
// frame whose envelope cannot be decoded means the remainder of the tag
// block is padding or garbage.
var errInvalidFrame = errors.New("invalid ID3v2 frame")

// errSkipFrame marks a frame whose envelope decoded but whose body could
// not be classified or parsed. The frame is discarded and the scan
// continues.
var errSkipFrame = errors.New("skipping undecodable ID3v2 frame")

// Frame is the generic frame envelope: id, declared body size, flags and
// raw body bytes. Frame ids are 3 characters in v2.2 and 4 in v2.3/v2.4.
type Frame struct {
	ID    string
	Size  uint32
	Flags uint16 // v2.3/v2.4 only; zero for v2.2
	Data  []byte
}

// envelopeSize returns the frame header byte width for a tag version.
func envelopeSize(v Version) int64 {
	if v == Version22 {
		return 6 // 3-byte id + 3-byte size
	}
	return 10 // 4-byte id + 4-byte size + 2 flag bytes
}

// decodeFrameEnvelope reads one frame envelope and its body, bounded by
// end. Returns errInvalidFrame when the bytes at the cursor cannot be a
// frame (padding, truncation, or a malformed synchsafe size).
func decodeFrameEnvelope(r *binary.Reader, v Version, end int64) (*Frame, error) {
	if r.Offset()+envelopeSize(v) > end {
		return nil, errInvalidFrame
	}

	idLen := 4
	if v == Version22 {
		idLen = 3
	}

	id, err := r.ReadString(idLen, "ID3v2 frame id")
	if err != nil || !validFrameID(id) {
		return nil, errInvalidFrame
	}

	var size uint32
	switch v {
	case Version22:
		raw, err := r.ReadBytes(3, "ID3v2.2 frame size")
		if err != nil {
			return nil, errInvalidFrame
		}
		size = uint32(raw[0])<<16 | uint32(raw[1])<<8 | uint32(raw[2])
	case Version24:
		raw, err := r.ReadBytes(4, "ID3v2.4 frame size")
		if err != nil {
			return nil, errInvalidFrame
		}
		size, err = binary.DecodeSynchsafe(raw)
		if err != nil {
			return nil, errInvalidFrame
		}
	default:
		size, err = binary.ReadValue[uint32](r, "ID3v2.3 frame size")
		if err != nil {
			return nil, errInvalidFrame
		}
	}

	var flags uint16
	if v != Version22 {
		flags, err = binary.ReadValue[uint16](r, "ID3v2 frame flags")
		if err != nil {
			return nil, errInvalidFrame
		}
	}

	if r.Offset()+int64(size) > end {
		return nil, errInvalidFrame
	}

	data, err := r.ReadBytes(int(size), "ID3v2 frame body")
	if err != nil {
		return nil, errInvalidFrame
	}

	return &Frame{ID: id, Size: size, Flags: flags, Data: data}, nil
}

// validFrameID reports whether id consists of uppercase letters and digits.
func validFrameID(id string) bool {
	for i := 0; i < len(id); i++ {
		c := id[i]
		if (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}

// Category is the semantic classification of a frame, driving how its
// decoded value folds into the tag mapping.
type Category int

const (
	// CategoryUnknown frames are discarded.
	CategoryUnknown Category = iota
	// CategoryText frames replace the prior value under their raw id.
	CategoryText
	// CategoryNumericText frames hold digit strings (lengths, years, BPM).
	CategoryNumericText
	// CategoryTimestamp frames hold ID3v2.4 timestamp strings.
	CategoryTimestamp
	// CategoryGenre frames replace the prior genre, resolving numeric
	// ID3v1 references.
	CategoryGenre
	// CategoryComment frames append under "{id}:{description}:{language}".
	CategoryComment
	// CategoryLyrics frames append under "{id}:{description}:{language}".
	CategoryLyrics
	// CategoryUserText frames append under "{id}:{description}".
	CategoryUserText
	// CategoryUserURL frames append under "{id}:{description}".
	CategoryUserURL
	// CategoryObject frames append an encapsulated object under
	// "GEOB:{description}".
	CategoryObject
	// CategoryPrivate frames append their payload under "PRIV:{owner}".
	CategoryPrivate
	// CategoryPicture frames accumulate into the picture list.
	CategoryPicture
	// CategoryOther covers remaining known frames, appended under their
	// raw id.
	CategoryOther
)

var numericTextIDs = map[string]bool{
	// v2.3/v2.4
	"TBPM": true, "TDLY": true, "TLEN": true, "TSIZ": true,
	"TYER": true, "TORY": true,
	// v2.2
	"TBP": true, "TDY": true, "TLE": true, "TSI": true,
	"TYE": true, "TOR": true,
}

var timestampIDs = map[string]bool{
	"TDEN": true, "TDOR": true, "TDRC": true, "TDRL": true, "TDTG": true,
}

// Classify returns the semantic category for a frame id under a tag
// version.
func Classify(id string, v Version) Category {
	switch id {
	case "TCON", "TCO":
		return CategoryGenre
	case "COMM", "COM":
		return CategoryComment
	case "USLT", "ULT", "SYLT", "SLT":
		return CategoryLyrics
	case "TXXX", "TXX":
		return CategoryUserText
	case "WXXX", "WXX":
		return CategoryUserURL
	case "GEOB", "GEO":
		return CategoryObject
	case "PRIV":
		if v == Version22 {
			return CategoryUnknown
		}
		return CategoryPrivate
	case "APIC", "PIC":
		return CategoryPicture
	case "PCNT", "CNT":
		return CategoryOther
	}

	if strings.HasPrefix(id, "T") {
		if timestampIDs[id] && v == Version24 {
			return CategoryTimestamp
		}
		if numericTextIDs[id] {
			return CategoryNumericText
		}
		return CategoryText
	}
	if strings.HasPrefix(id, "W") {
		return CategoryOther // URL link frames
	}
	return CategoryUnknown
}

// decodedFrame is the typed result of decoding one frame body.
type decodedFrame struct {
	category    Category
	id          string
	values      []string
	value       string
	description string
	language    string
	owner       string
	object      types.EncapsulatedObject
	picture     types.Picture
	data        []byte
}

// decodeFrameBody decodes a frame body per its category. A body that
// cannot be parsed yields errSkipFrame; the caller discards the frame and
// continues the scan.
func decodeFrameBody(f *Frame, v Version) (*decodedFrame, error) {
	category := Classify(f.ID, v)
	d := &decodedFrame{category: category, id: f.ID}

	switch category {
	case CategoryUnknown:
		return nil, errSkipFrame

	case CategoryText, CategoryNumericText, CategoryTimestamp, CategoryGenre:
		if len(f.Data) < 1 {
			return nil, errSkipFrame
		}
		d.values = splitValues(f.Data[1:], f.Data[0])
		if len(d.values) == 0 {
			return nil, errSkipFrame
		}
		if category == CategoryGenre {
			d.values = resolveGenres(d.values)
		}

	case CategoryComment, CategoryLyrics:
		if len(f.Data) < 4 {
			return nil, errSkipFrame
		}
		enc := f.Data[0]
		d.language = strings.ToLower(strings.TrimRight(string(f.Data[1:4]), "\x00"))
		body := f.Data[4:]
		if f.ID == "SYLT" || f.ID == "SLT" {
			// Synchronised lyrics carry a timestamp format byte and a
			// content type byte before the descriptor.
			if len(body) < 2 {
				return nil, errSkipFrame
			}
			body = body[2:]
		}
		desc, text := cutTerminated(body, enc)
		d.description = decodeText(desc, enc)
		d.value = decodeText(text, enc)

	case CategoryUserText, CategoryUserURL:
		if len(f.Data) < 2 {
			return nil, errSkipFrame
		}
		enc := f.Data[0]
		desc, rest := cutTerminated(f.Data[1:], enc)
		d.description = decodeText(desc, enc)
		if category == CategoryUserURL {
			// The URL itself is always ISO-8859-1.
			d.value = decodeText(rest, encodingLatin1)
		} else {
			d.value = decodeText(rest, enc)
		}

	case CategoryObject:
		if len(f.Data) < 2 {
			return nil, errSkipFrame
		}
		enc := f.Data[0]
		mime, rest := cutTerminated(f.Data[1:], encodingLatin1)
		filename, rest := cutTerminated(rest, enc)
		desc, payload := cutTerminated(rest, enc)
		d.description = decodeText(desc, enc)
		d.object = types.EncapsulatedObject{
			Description: d.description,
			Filename:    decodeText(filename, enc),
			MIMEType:    decodeText(mime, encodingLatin1),
			Data:        payload,
		}

	case CategoryPrivate:
		owner, payload := cutTerminated(f.Data, encodingLatin1)
		d.owner = decodeText(owner, encodingLatin1)
		if d.owner == "" {
			return nil, errSkipFrame
		}
		d.data = payload

	case CategoryPicture:
		pic, err := decodePicture(f, v)
		if err != nil {
			return nil, errSkipFrame
		}
		d.picture = pic

	case CategoryOther:
		if f.ID == "PCNT" || f.ID == "CNT" {
			d.value = strconv.FormatUint(beUint(f.Data), 10)
		} else {
			// URL link frames: ISO-8859-1 URL.
			d.value = decodeText(f.Data, encodingLatin1)
		}
		if d.value == "" {
			return nil, errSkipFrame
		}
	}

	return d, nil
}

// decodePicture decodes an attached picture frame. ID3v2.2 PIC frames use
// a fixed 3-byte image format instead of a MIME type string.
func decodePicture(f *Frame, v Version) (types.Picture, error) {
	if len(f.Data) < 2 {
		return types.Picture{}, errSkipFrame
	}
	enc := f.Data[0]

	var mime string
	var rest []byte
	if v == Version22 {
		if len(f.Data) < 5 {
			return types.Picture{}, errSkipFrame
		}
		format := strings.ToLower(strings.TrimRight(string(f.Data[1:4]), "\x00"))
		mime = "image/" + format
		rest = f.Data[4:]
	} else {
		var mimeRaw []byte
		mimeRaw, rest = cutTerminated(f.Data[1:], encodingLatin1)
		mime = decodeText(mimeRaw, encodingLatin1)
	}

	if len(rest) < 1 {
		return types.Picture{}, errSkipFrame
	}
	picType := types.PictureType(rest[0])
	desc, data := cutTerminated(rest[1:], enc)

	return types.Picture{
		Type:        picType,
		MIMEType:    mime,
		Description: decodeText(desc, enc),
		Data:        data,
	}, nil
}

// resolveGenres maps numeric ID3v1 genre references and the "(NN)" prefix
// notation onto genre names. Unresolvable values pass through unchanged.
func resolveGenres(values []string) []string {
	resolved := make([]string, 0, len(values))
	for _, value := range values {
		switch {
		case value == "RX":
			resolved = append(resolved, "Remix")
		case value == "CR":
			resolved = append(resolved, "Cover")
		case isDigits(value):
			if index, err := strconv.Atoi(value); err == nil {
				if name, ok := id3v1.GenreName(index); ok {
					resolved = append(resolved, name)
					continue
				}
			}
			resolved = append(resolved, value)
		case strings.HasPrefix(value, "("):
			if end := strings.IndexByte(value, ')'); end > 1 && isDigits(value[1:end]) {
				index, _ := strconv.Atoi(value[1:end])
				if remainder := value[end+1:]; remainder != "" {
					resolved = append(resolved, remainder)
				} else if name, ok := id3v1.GenreName(index); ok {
					resolved = append(resolved, name)
				}
				continue
			}
			resolved = append(resolved, value)
		default:
			resolved = append(resolved, value)
		}
	}
	return resolved
}

// isDigits reports whether s is a non-empty run of ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// beUint decodes a variable-width big-endian unsigned integer, capped at
// 8 bytes (play counters may grow beyond 32 bits).
func beUint(b []byte) uint64 {
	if len(b) > 8 {
		b = b[len(b)-8:]
	}
	var v uint64
	for _, c := range b {
		v = v<<8 | uint64(c)
	}
	return v
}
