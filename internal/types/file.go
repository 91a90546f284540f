// Package types provides the core data structures for decoded audio
// metadata: File, Tags, AudioInfo, Picture, and the error taxonomy shared
// by the format decoders.
package types

// File represents parsed metadata for one audio file.
//
// A File is produced once by a decode operation and not mutated afterwards.
type File struct {
	Path     string
	Format   Format
	Size     int64
	Tags     *Tags
	Audio    AudioInfo
	Pictures []Picture
	Warnings []Warning
}
