package frame

import "errors"

// Envelope-level errors.
var (
	// ErrShortFrame is returned when the envelope's own length field is
	// smaller than the envelope header size. A buffer too short to hold
	// the header yields *NeedMoreData instead.
	ErrShortFrame = errors.New("frame: short frame")
)

// NeedMoreData indicates a streaming caller must read at least Want
// total bytes before the frame can be decoded.
type NeedMoreData struct {
	Want uint32
}

func (e *NeedMoreData) Error() string {
	return "frame: need more data"
}

// IsNeedMoreData reports whether err is a *NeedMoreData and returns the
// wanted total length.
func IsNeedMoreData(err error) (uint32, bool) {
	nmd, ok := err.(*NeedMoreData)
	if !ok {
		return 0, false
	}
	return nmd.Want, true
}
