package audiometadata

import (
	"github.com/ddboline/audio-metadata/internal/binary"
	"github.com/ddboline/audio-metadata/internal/types"
)

// Aliases re-exporting the error taxonomy from the internal packages so
// callers can match with errors.As.

// HeaderNotFoundError means a required marker ("ID3", "Xing", "VBRI")
// was absent at the expected position.
type HeaderNotFoundError = types.HeaderNotFoundError

// UnsupportedVersionError means a version byte maps to no known variant.
type UnsupportedVersionError = types.UnsupportedVersionError

// NotAnAudioFrameError means a candidate frame header failed the
// sync-word or reserved-field checks.
type NotAnAudioFrameError = types.NotAnAudioFrameError

// InvalidHeaderError means a header's fixed-layout fields violate their
// constraints.
type InvalidHeaderError = types.InvalidHeaderError

// InsufficientAudioDataError means no MPEG audio stream could be
// located in the file.
type InsufficientAudioDataError = types.InsufficientAudioDataError

// UnsupportedFormatError means the file is not a recognized audio
// format.
type UnsupportedFormatError = types.UnsupportedFormatError

// OutOfBoundsError means a decoder attempted to read beyond the file.
type OutOfBoundsError = binary.OutOfBoundsError

// MalformedIntegerError means a synchsafe integer had a high bit set.
type MalformedIntegerError = binary.MalformedIntegerError

// Warning is a non-fatal issue collected in File.Warnings.
type Warning = types.Warning
