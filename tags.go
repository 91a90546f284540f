package audiometadata

import (
	"github.com/ddboline/audio-metadata/internal/types"
)

// Aliases re-exporting the metadata value types from internal/types.

// Tags is the aggregated tag mapping decoded from one file. Lookups
// accept canonical names ("artist") or raw frame ids ("TPE1").
type Tags = types.Tags

// FieldMap is the bidirectional canonical-name/raw-id mapping used by a
// tag format version.
type FieldMap = types.FieldMap

// EncapsulatedObject is the decoded payload of a GEOB frame.
type EncapsulatedObject = types.EncapsulatedObject

// Picture is an embedded image extracted from a tag.
type Picture = types.Picture

// PictureType classifies an embedded picture (APIC picture type byte).
type PictureType = types.PictureType

// Common picture types; the full set lives in the ID3v2 specification.
const (
	PictureTypeOther      = types.PictureTypeOther
	PictureTypeFileIcon   = types.PictureTypeFileIcon
	PictureTypeFrontCover = types.PictureTypeFrontCover
	PictureTypeBackCover  = types.PictureTypeBackCover
	PictureTypeLeadArtist = types.PictureTypeLeadArtist
)

// AudioInfo holds derived technical stream properties.
type AudioInfo = types.AudioInfo

// BitrateMode classifies how the encoder allocated bits across the
// stream.
type BitrateMode = types.BitrateMode

// Bitrate modes.
const (
	BitrateModeUnknown = types.BitrateModeUnknown
	BitrateModeCBR     = types.BitrateModeCBR
	BitrateModeVBR     = types.BitrateModeVBR
	BitrateModeABR     = types.BitrateModeABR
)
