// Package audiometadata extracts metadata from MP3 files: ID3v2 and
// ID3v1 tags, embedded pictures, and technical stream properties
// derived from the MPEG frames and their Xing, LAME and VBRI headers.
//
// # Quick Start
//
// Reading metadata from a file:
//
//	file, err := audiometadata.Open("song.mp3")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer file.Close()
//
//	fmt.Printf("%s - %s\n", file.Tags.Artist(), file.Tags.Title())
//	fmt.Printf("Duration: %s\n", file.Audio.Duration)
//
// # Graceful Degradation
//
// A broken leading tag does not prevent the audio stream from being
// analyzed: recoverable problems are collected in File.Warnings and
// parsing continues. Fatal errors are reserved for files where no
// audio stream can be located at all. WithStrictParsing inverts this
// and turns any warning into an error.
//
// # Tag Access
//
// Tags are keyed by canonical names ("artist", "album") that map onto
// the raw frame ids of whichever tag version the file carries, so the
// same lookup works for ID3v2.2, v2.3, v2.4 and ID3v1 files:
//
//	for key, values := range file.Tags.All() {
//		fmt.Printf("%s: %v\n", key, values)
//	}
//
// # Concurrency
//
// OpenMany parses many files in parallel:
//
//	files, err := audiometadata.OpenMany(ctx, paths...)
package audiometadata
