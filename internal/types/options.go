package types

// ParseOptions carries caller preferences down into the format parsers.
type ParseOptions struct {
	// Strict promotes recoverable tag-decoding problems to errors
	// instead of Warnings.
	Strict bool

	// TrailingTagWindow bounds the end-of-file search for trailing
	// metadata blocks. Zero selects the parser's default.
	TrailingTagWindow int64
}
