package id3v2

import "github.com/ddboline/audio-metadata/internal/types"

// Canonical-name to raw-frame-id maps, one per supported tag version.
// Canonical names follow the MusicBrainz Picard mappings.

var fieldMap22 = types.NewFieldMap(map[string]string{
	"album":            "TAL",
	"albumartist":      "TP2",
	"artist":           "TP1",
	"audiodelay":       "TDY",
	"audiolength":      "TLE",
	"audiosize":        "TSI",
	"bpm":              "TBP",
	"comment":          "COM",
	"composer":         "TCM",
	"conductor":        "TP3",
	"copyright":        "TCR",
	"date":             "TYE",
	"discnumber":       "TPA",
	"encodedby":        "TEN",
	"encodersettings":  "TSS",
	"genre":            "TCO",
	"grouping":         "TT1",
	"isrc":             "TRC",
	"label":            "TPB",
	"language":         "TLA",
	"lyricist":         "TXT",
	"lyrics":           "ULT",
	"media":            "TMT",
	"originalalbum":    "TOT",
	"originalartist":   "TOA",
	"originalauthor":   "TOL",
	"originaldate":     "TOR",
	"pictures":         "PIC",
	"playcount":        "CNT",
	"remixer":          "TP4",
	"subtitle":         "TT3",
	"title":            "TT2",
	"tracknumber":      "TRK",
})

var fieldMap23 = types.NewFieldMap(map[string]string{
	"album":            "TALB",
	"albumsort":        "TSOA",
	"albumartist":      "TPE2",
	"albumartistsort":  "TSO2",
	"artist":           "TPE1",
	"artistsort":       "TSOP",
	"audiodelay":       "TDLY",
	"audiolength":      "TLEN",
	"audiosize":        "TSIZ",
	"bpm":              "TBPM",
	"comment":          "COMM",
	"compilation":      "TCMP",
	"composer":         "TCOM",
	"composersort":     "TSOC",
	"conductor":        "TPE3",
	"copyright":        "TCOP",
	"date":             "TYER",
	"discnumber":       "TPOS",
	"encodedby":        "TENC",
	"encodersettings":  "TSSE",
	"genre":            "TCON",
	"grouping":         "TIT1",
	"isrc":             "TSRC",
	"label":            "TPUB",
	"language":         "TLAN",
	"lyricist":         "TEXT",
	"lyrics":           "USLT",
	"media":            "TMED",
	"originalalbum":    "TOAL",
	"originalartist":   "TOPE",
	"originalauthor":   "TOLY",
	"originaldate":     "TORY",
	"pictures":         "APIC",
	"playcount":        "PCNT",
	"remixer":          "TPE4",
	"subtitle":         "TIT3",
	"title":            "TIT2",
	"titlesort":        "TSOT",
	"tracknumber":      "TRCK",
})

var fieldMap24 = types.NewFieldMap(map[string]string{
	"album":            "TALB",
	"albumsort":        "TSOA",
	"albumartist":      "TPE2",
	"albumartistsort":  "TSO2",
	"artist":           "TPE1",
	"artistsort":       "TSOP",
	"audiodelay":       "TDLY",
	"audiolength":      "TLEN",
	"audiosize":        "TSIZ",
	"bpm":              "TBPM",
	"comment":          "COMM",
	"compilation":      "TCMP",
	"composer":         "TCOM",
	"composersort":     "TSOC",
	"conductor":        "TPE3",
	"copyright":        "TCOP",
	"date":             "TDRC",
	"discnumber":       "TPOS",
	"encodedby":        "TENC",
	"encodersettings":  "TSSE",
	"genre":            "TCON",
	"grouping":         "TIT1",
	"isrc":             "TSRC",
	"label":            "TPUB",
	"language":         "TLAN",
	"lyricist":         "TEXT",
	"lyrics":           "USLT",
	"media":            "TMED",
	"mood":             "TMOO",
	"originalalbum":    "TOAL",
	"originalartist":   "TOPE",
	"originalauthor":   "TOLY",
	"originaldate":     "TDOR",
	"pictures":         "APIC",
	"playcount":        "PCNT",
	"remixer":          "TPE4",
	"subtitle":         "TIT3",
	"title":            "TIT2",
	"titlesort":        "TSOT",
	"tracknumber":      "TRCK",
})

// FieldMapForVersion returns the canonical-name map for a tag version.
func FieldMapForVersion(v Version) types.FieldMap {
	switch v {
	case Version22:
		return fieldMap22
	case Version23:
		return fieldMap23
	default:
		return fieldMap24
	}
}
