package param

import "github.com/rfidware/llrp/pkg/wire"

// UTCTimestamp carries microseconds since the UTC epoch (LLRP
// Specification Section 14.2.1).
type UTCTimestamp struct {
	Microseconds uint64
}

// Encode writes the UTCTimestamp TLV parameter.
func (t *UTCTimestamp) Encode() []byte {
	w := wire.NewWriterSize(8)
	w.PutUint64(t.Microseconds)
	return writeTLVHeader(TypeUTCTimestamp, w.Bytes())
}

// DecodeUTCTimestamp decodes a UTCTimestamp from the front of buf. It
// follows the non-consuming probe discipline: if the next parameter
// isn't a UTCTimestamp, it returns ok=false with buf untouched.
func DecodeUTCTimestamp(buf []byte) (ts *UTCTimestamp, tail []byte, ok bool, err error) {
	body, tail, ok, err := readTLVHeader(buf, TypeUTCTimestamp)
	if err != nil || !ok {
		return nil, buf, ok, err
	}
	r := wire.NewReader(body)
	us, rerr := r.Uint64()
	if rerr != nil {
		return nil, buf, true, malformed("UTCTimestamp", "short body")
	}
	return &UTCTimestamp{Microseconds: us}, tail, true, nil
}

// Uptime carries microseconds since reader boot (LLRP Specification
// Section 14.2.2).
type Uptime struct {
	Microseconds uint64
}

// Encode writes the Uptime TLV parameter.
func (t *Uptime) Encode() []byte {
	w := wire.NewWriterSize(8)
	w.PutUint64(t.Microseconds)
	return writeTLVHeader(TypeUptime, w.Bytes())
}

// DecodeUptime decodes an Uptime from the front of buf, following the
// same non-consuming probe discipline as DecodeUTCTimestamp.
func DecodeUptime(buf []byte) (ts *Uptime, tail []byte, ok bool, err error) {
	body, tail, ok, err := readTLVHeader(buf, TypeUptime)
	if err != nil || !ok {
		return nil, buf, ok, err
	}
	r := wire.NewReader(body)
	us, rerr := r.Uint64()
	if rerr != nil {
		return nil, buf, true, malformed("Uptime", "short body")
	}
	return &Uptime{Microseconds: us}, tail, true, nil
}
