package audiometadata

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/ddboline/audio-metadata/internal/types"
)

// File represents an opened audio file with parsed metadata.
//
// Always call Close() when done to release the underlying file handle:
//
//	file, err := audiometadata.Open("song.mp3")
//	if err != nil {
//		return err
//	}
//	defer file.Close()
type File struct {
	// Path to the audio file
	Path string

	// Detected container format
	Format Format

	// File size in bytes
	Size int64

	// Parsed tag metadata, keyed by canonical or raw frame names
	Tags *Tags

	// Technical stream properties
	Audio AudioInfo

	// Embedded pictures (APIC/PIC frames)
	Pictures []Picture

	// Non-fatal issues encountered during parsing
	Warnings []Warning

	reader io.ReaderAt
}

// Open opens an audio file and reads its metadata.
//
// Only metadata is parsed; the audio payload itself is never read into
// memory. Recoverable problems (for example an undecodable ID3v2 tag on
// an otherwise valid stream) are reported through File.Warnings rather
// than failing the open, unless WithStrictParsing is given.
func Open(path string, opts ...Option) (*File, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}

	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat file: %w", err)
	}

	file, err := openReader(f, stat.Size(), path, options)
	if err != nil {
		f.Close()
		return nil, err
	}
	file.reader = f

	if options.strictParsing && len(file.Warnings) > 0 {
		f.Close()
		return nil, fmt.Errorf("strict parsing failed: %s", file.Warnings[0].Message)
	}

	return file, nil
}

// openReader parses metadata from an io.ReaderAt.
func openReader(r io.ReaderAt, size int64, path string, options *openOptions) (*File, error) {
	format, err := DetectFormat(r, size, path)
	if err != nil {
		return nil, err
	}

	parser := findParser(format)
	if parser == nil {
		return nil, &UnsupportedFormatError{
			Path:   path,
			Reason: fmt.Sprintf("no parser available for format %s", format),
		}
	}

	parsed, err := parser.Parse(r, size, path, types.ParseOptions{
		Strict:            options.strictParsing,
		TrailingTagWindow: options.trailingTagWindow,
	})
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", format, err)
	}

	file := &File{
		Path:     path,
		Format:   format,
		Size:     size,
		Tags:     parsed.Tags,
		Audio:    parsed.Audio,
		Pictures: parsed.Pictures,
		Warnings: parsed.Warnings,
	}
	if options.ignoreWarnings {
		file.Warnings = nil
	}

	return file, nil
}

// Close releases resources held by the file.
//
// After Close is called, the File should not be used.
func (f *File) Close() error {
	if closer, ok := f.reader.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// OpenContext opens a file with context support for cancellation.
//
// The context is checked before parsing starts; a single file parses in
// well under a millisecond, so no further checkpoints exist.
func OpenContext(ctx context.Context, path string, opts ...Option) (*File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Open(path, opts...)
}

// OpenMany opens multiple audio files concurrently.
//
// Files are parsed in parallel using up to runtime.NumCPU() goroutines.
// Results are returned in the same order as the input paths. If any
// file fails to open, all successfully opened files are closed and an
// error is returned.
func OpenMany(ctx context.Context, paths ...string) ([]*File, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	results := make([]*File, len(paths))

	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			file, err := Open(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			results[i] = file
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		for _, file := range results {
			if file != nil {
				file.Close()
			}
		}
		return nil, err
	}

	return results, nil
}

// FormatParser is the interface all format parsers implement.
//
// This interface is public to allow internal format packages to
// implement it, but it's not intended for external use.
type FormatParser interface {
	// Parse extracts metadata from an audio file.
	Parse(r io.ReaderAt, size int64, path string, opts types.ParseOptions) (*types.File, error)
}

// findParser returns the parser for a given format, or nil when none is
// registered.
func findParser(format Format) FormatParser {
	return parsers[format]
}

var parsers = make(map[Format]FormatParser)

// RegisterParser registers a parser for a format.
//
// Public for the sake of internal format packages; not intended to be
// called by users.
func RegisterParser(format Format, parser FormatParser) {
	parsers[format] = parser
}
