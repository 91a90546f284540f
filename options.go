package audiometadata

// Option configures behavior when opening audio files.
//
// Options use the functional options pattern:
//
//	file, err := audiometadata.Open("song.mp3",
//	    audiometadata.WithStrictParsing(),
//	)
type Option func(*openOptions)

// openOptions holds configuration for opening files.
type openOptions struct {
	strictParsing     bool  // fail on any warning
	ignoreWarnings    bool  // suppress all warnings
	trailingTagWindow int64 // end-of-file tag search window (0 = default)
}

// defaultOptions returns the default configuration.
func defaultOptions() *openOptions {
	return &openOptions{}
}

// WithStrictParsing treats any warning as a fatal error.
//
// By default parsing continues past recoverable problems such as an
// undecodable leading tag, returning warnings alongside the parsed
// data. With strict parsing enabled, any such problem fails the open.
func WithStrictParsing() Option {
	return func(o *openOptions) {
		o.strictParsing = true
	}
}

// WithIgnoreWarnings suppresses all warnings.
//
// Non-fatal issues are normally collected in File.Warnings; this option
// discards them.
func WithIgnoreWarnings() Option {
	return func(o *openOptions) {
		o.ignoreWarnings = true
	}
}

// WithTrailingTagWindow overrides how far back from end of file
// trailing metadata blocks (ID3v1, APE, Lyrics3) are searched for. The
// default of 64 KiB covers all practical tag sizes; raise it for files
// with unusually large APE tags.
func WithTrailingTagWindow(bytes int64) Option {
	return func(o *openOptions) {
		o.trailingTagWindow = bytes
	}
}
