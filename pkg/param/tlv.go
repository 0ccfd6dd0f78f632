package param

import "github.com/rfidware/llrp/pkg/wire"

// tlvHeaderSize is the size of a TLV parameter header: 6 reserved bits
// + 10-bit type, then a 16-bit length (spec.md §3).
const tlvHeaderSize = 4

// peekTLVType reads the type code of the next TLV parameter in buf
// without consuming anything. It returns ok=false if buf is too short
// to hold a header.
func peekTLVType(buf []byte) (uint16, bool) {
	if len(buf) < tlvHeaderSize {
		return 0, false
	}
	r := wire.NewReader(buf)
	raw, _ := r.Uint16()
	return raw & 0x03FF, true
}

// PeekTLVType reports the type code of the next TLV parameter in buf
// without consuming anything, for callers outside this package that
// need to test for an optional top-level parameter's presence before
// invoking its (fatal-on-mismatch) decoder.
func PeekTLVType(buf []byte) (uint16, bool) {
	return peekTLVType(buf)
}

// readTLVHeader reads and validates a TLV header against wantType,
// returning the body slice (length-4 bytes) and the tail following the
// whole parameter. If the type doesn't match, ok is false and buf is
// returned completely unconsumed -- the non-consuming probe discipline
// spec.md §4.3 requires for optional-parameter presence checks.
func readTLVHeader(buf []byte, wantType uint16) (body []byte, tail []byte, ok bool, err error) {
	gotType, present := peekTLVType(buf)
	if !present || gotType != wantType {
		return nil, buf, false, nil
	}

	r := wire.NewReader(buf)
	r.Skip(2)
	length, lerr := r.Uint16()
	if lerr != nil {
		return nil, buf, false, ErrTruncated
	}
	if length < tlvHeaderSize {
		return nil, buf, true, ErrTruncated
	}
	if int(length) > len(buf) {
		return nil, buf, true, ErrTruncated
	}

	return buf[tlvHeaderSize:length], buf[length:], true, nil
}

// writeTLVHeader prepends a TLV header for typ around body and returns
// the complete encoded parameter.
func writeTLVHeader(typ uint16, body []byte) []byte {
	w := wire.NewWriterSize(tlvHeaderSize + len(body))
	w.PutUint16(typ & 0x03FF)
	w.PutUint16(uint16(tlvHeaderSize + len(body)))
	w.PutBytes(body)
	return w.Bytes()
}
