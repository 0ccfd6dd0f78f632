// Package frame implements the LLRP message envelope (LLRP Specification
// Section 16.1.1): version, message type, length, and message id packed
// into a 10-byte header, plus the streaming contract a TCP reader needs
// to know how much more to buffer before a frame can be decoded.
//
// This mirrors the teacher's message-header layer (an encode/decode pair
// that writes into or reads from a caller-provided buffer) adapted from
// Matter's little-endian, variable-length header to LLRP's fixed
// 10-byte big-endian one.
package frame

import (
	"github.com/rfidware/llrp/pkg/wire"
)

// HeaderSize is the fixed size of the LLRP message envelope header.
const HeaderSize = 10

// ProtocolVersion is the only version this codec emits. LLRP v1.0.1
// readers expect 1 here (LLRP Specification Section 16.1.1).
const ProtocolVersion uint8 = 1

const (
	reservedMask      = 0x07 // top 3 bits of byte 0, must be 0
	reservedShift     = 5
	versionMask       = 0x07 // next 3 bits of byte 0
	versionShift      = 2
	typeHighBitsMask  = 0x03 // low 2 bits of byte 0
	typeHighBitsShift = 8
)

// Encode writes a complete LLRP frame: header (version defaults to
// ProtocolVersion) followed by body. The returned length equals
// HeaderSize+len(body), satisfying the envelope length invariant
// (spec.md §3 invariant 1).
func Encode(msgType uint16, messageID uint32, body []byte) []byte {
	return EncodeVersion(ProtocolVersion, msgType, messageID, body)
}

// EncodeVersion is Encode with an explicit protocol version, for callers
// that need to override the fixed default (spec.md §4.2).
func EncodeVersion(version uint8, msgType uint16, messageID uint32, body []byte) []byte {
	w := wire.NewWriterSize(HeaderSize + len(body))
	total := uint32(HeaderSize + len(body))

	b0 := byte(version&versionMask) << versionShift
	b0 |= byte((msgType >> typeHighBitsShift) & typeHighBitsMask)
	w.PutUint8(b0)
	w.PutUint8(byte(msgType))
	w.PutUint32(total)
	w.PutUint32(messageID)
	w.PutBytes(body)

	return w.Bytes()
}

// Header holds the decoded fields of a message envelope.
type Header struct {
	Version   uint8
	Type      uint16
	Length    uint32
	MessageID uint32
}

// Decode parses the 10-byte envelope and returns (header, body, error).
// If buf is shorter than HeaderSize, or the envelope's own length field
// claims more bytes than buf holds, Decode returns a *NeedMoreData
// naming the total length a streaming caller should wait for
// (spec.md §4.2 "Contract").
func Decode(buf []byte) (Header, []byte, error) {
	var hdr Header

	if len(buf) < HeaderSize {
		// We don't yet know the real length; ask for at least a full
		// header so we can read it.
		return hdr, nil, &NeedMoreData{Want: HeaderSize}
	}

	r := wire.NewReader(buf)
	b0, _ := r.Uint8()
	b1, _ := r.Uint8()

	hdr.Version = (b0 >> versionShift) & versionMask
	hdr.Type = uint16(b0&typeHighBitsMask)<<typeHighBitsShift | uint16(b1)

	length, _ := r.Uint32()
	hdr.Length = length

	msgID, _ := r.Uint32()
	hdr.MessageID = msgID

	if hdr.Length < HeaderSize {
		return hdr, nil, ErrShortFrame
	}

	if uint32(len(buf)) < hdr.Length {
		return hdr, nil, &NeedMoreData{Want: hdr.Length}
	}

	body := buf[HeaderSize:hdr.Length]
	return hdr, body, nil
}
