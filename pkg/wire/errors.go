package wire

import "errors"

// Primitive cursor errors.
var (
	// ErrTruncated is returned when a read would consume more bytes than
	// remain in the buffer.
	ErrTruncated = errors.New("wire: truncated buffer")

	// ErrNegativeLength is returned when a caller asks a Reader to read or
	// skip a negative byte count.
	ErrNegativeLength = errors.New("wire: negative length")
)
