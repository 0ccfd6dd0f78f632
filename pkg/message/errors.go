// Package message implements the LLRP message bodies (LLRP
// Specification Section 16.1.2): one type per symbolic message name,
// each wrapping a frame type code, a body encoder, and a body decoder
// built on the param package's parameter codecs.
package message

import "errors"

var (
	// ErrMissingStatus is returned by the status-only response decoders
	// when the body does not begin with an LLRPStatus parameter.
	ErrMissingStatus = errors.New("message: missing LLRPStatus parameter")

	// ErrUnimplementedConfig is returned by SET_READER_CONFIG decoding
	// when the body carries any parameter other than EventsAndReports --
	// the only configuration parameter this core implements
	// (spec.md §4.5).
	ErrUnimplementedConfig = errors.New("message: configuration parameter not implemented")
)
