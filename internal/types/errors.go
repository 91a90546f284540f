package types

import "fmt"

// HeaderNotFoundError is returned when a required marker ("ID3", "Xing",
// "Info", "VBRI", "LAME") is absent at the expected position.
//
// Callers decide whether the whole container is simply absent (for example
// a file without an ID3v2 tag) or whether the error is fatal.
type HeaderNotFoundError struct {
	Marker string
	Reason string
}

func (e *HeaderNotFoundError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("valid %s header not found: %s", e.Marker, e.Reason)
	}
	return fmt.Sprintf("valid %s header not found", e.Marker)
}

// UnsupportedVersionError is returned when a version byte maps to no known
// variant. Fatal to the tag decode.
type UnsupportedVersionError struct {
	What    string
	Version string
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("unsupported %s version: %s", e.What, e.Version)
}

// NotAnAudioFrameError is returned when a candidate 32-bit header fails the
// sync-word or reserved-field checks. Recoverable: the caller resynchronizes
// by advancing one byte.
type NotAnAudioFrameError struct {
	Offset int64
	Reason string
}

func (e *NotAnAudioFrameError) Error() string {
	return fmt.Sprintf("not an MPEG audio frame at offset %d: %s", e.Offset, e.Reason)
}

// InvalidHeaderError is returned when a header's fixed-layout fields violate
// their constraints (for example a VBRI ToC entry size other than 2 or 4).
type InvalidHeaderError struct {
	What   string
	Reason string
}

func (e *InvalidHeaderError) Error() string {
	return fmt.Sprintf("invalid %s header: %s", e.What, e.Reason)
}

// InsufficientAudioDataError is returned when the stream synchronizer cannot
// find a run of at least two valid frames and no Xing header exists.
type InsufficientAudioDataError struct {
	Path string
}

func (e *InsufficientAudioDataError) Error() string {
	return fmt.Sprintf("%s: missing Xing header and insufficient MPEG frames", e.Path)
}

// UnsupportedFormatError is returned when the file is not an MPEG audio file.
type UnsupportedFormatError struct {
	Path   string
	Reason string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("%s: unsupported format: %s", e.Path, e.Reason)
}

// Warning represents a non-fatal issue encountered during parsing.
//
// Warnings indicate problems that don't prevent metadata extraction but
// may indicate corrupted or unusual data, such as an undecodable ID3v2
// tag on an otherwise valid audio stream.
//
// Warnings are collected in File.Warnings during parsing.
type Warning struct {
	// Stage where the warning occurred ("metadata", "technical", "fallback")
	Stage string

	// Warning message
	Message string

	// File offset where the issue occurred (0 if not applicable)
	Offset int64
}

// String returns a human-readable warning message.
func (w Warning) String() string {
	if w.Offset > 0 {
		return fmt.Sprintf("%s (at offset %d): %s", w.Stage, w.Offset, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Stage, w.Message)
}
