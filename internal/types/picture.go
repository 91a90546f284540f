package types

// PictureType is the attached-picture classification from the ID3v2
// specification (APIC picture type byte).
type PictureType byte

// Picture type values defined by ID3v2.
const (
	PictureTypeOther PictureType = iota
	PictureTypeFileIcon
	PictureTypeOtherFileIcon
	PictureTypeFrontCover
	PictureTypeBackCover
	PictureTypeLeafletPage
	PictureTypeMedia
	PictureTypeLeadArtist
	PictureTypeArtist
	PictureTypeConductor
	PictureTypeBand
	PictureTypeComposer
	PictureTypeLyricist
	PictureTypeRecordingLocation
	PictureTypeDuringRecording
	PictureTypeDuringPerformance
	PictureTypeScreenCapture
	PictureTypeBrightColouredFish
	PictureTypeIllustration
	PictureTypeBandLogotype
	PictureTypePublisherLogotype
)

var pictureTypeNames = map[PictureType]string{
	PictureTypeOther:              "Other",
	PictureTypeFileIcon:           "File icon",
	PictureTypeOtherFileIcon:      "Other file icon",
	PictureTypeFrontCover:         "Front cover",
	PictureTypeBackCover:          "Back cover",
	PictureTypeLeafletPage:        "Leaflet page",
	PictureTypeMedia:              "Media",
	PictureTypeLeadArtist:         "Lead artist",
	PictureTypeArtist:             "Artist",
	PictureTypeConductor:          "Conductor",
	PictureTypeBand:               "Band",
	PictureTypeComposer:           "Composer",
	PictureTypeLyricist:           "Lyricist",
	PictureTypeRecordingLocation:  "Recording location",
	PictureTypeDuringRecording:    "During recording",
	PictureTypeDuringPerformance:  "During performance",
	PictureTypeScreenCapture:      "Screen capture",
	PictureTypeBrightColouredFish: "A bright coloured fish",
	PictureTypeIllustration:       "Illustration",
	PictureTypeBandLogotype:       "Band logotype",
	PictureTypePublisherLogotype:  "Publisher logotype",
}

// String returns the ID3v2 name for the picture type.
func (t PictureType) String() string {
	if name, ok := pictureTypeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// Picture is an embedded image extracted from a tag.
type Picture struct {
	Type        PictureType
	MIMEType    string
	Description string
	Data        []byte
}
