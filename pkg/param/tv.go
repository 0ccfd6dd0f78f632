package param

import "github.com/rfidware/llrp/pkg/wire"

// tvWidth is the registry of fixed body widths, in bytes, for every TV
// type this codec recognizes (spec.md §4.4's "generic TV walker"). The
// width is implicit per type -- there is no on-wire length field.
var tvWidth = map[uint8]int{
	tvROSpecID:                 4,
	tvEPC96:                    12,
	tvAntennaID:                2,
	tvPeakRSSI:                 1,
	tvChannelIndex:             2,
	tvFirstSeenTimestampUTC:    8,
	tvFirstSeenTimestampUptime: 8,
	tvLastSeenTimestampUTC:     8,
	tvLastSeenTimestampUptime:  8,
	tvTagSeenCount:             2,
	tvSpecIndex:                2,
	tvInventoryParamSpecID:     2,
	tvAccessSpecID:             4,
	tvC1G2PC:                   2,
	tvC1G2CRC:                  2,
}

// TV type codes. ROSpecID and EPC-96 have named constants in codes.go
// because other code needs to test for them specifically; the rest
// only need to be present in tvWidth to be walked generically.
const (
	tvROSpecID                 = TypeROSpecIDTV
	tvEPC96                    = TypeEPC96TV
	tvAntennaID                uint8 = 1
	tvPeakRSSI                 uint8 = 6
	tvChannelIndex             uint8 = 7
	tvFirstSeenTimestampUTC    uint8 = 2
	tvFirstSeenTimestampUptime uint8 = 3
	tvLastSeenTimestampUTC     uint8 = 4
	tvLastSeenTimestampUptime  uint8 = 5
	tvTagSeenCount             uint8 = 8
	tvSpecIndex                uint8 = 14
	tvInventoryParamSpecID     uint8 = 10
	tvAccessSpecID             uint8 = 16
	tvC1G2PC                   uint8 = 12
	tvC1G2CRC                  uint8 = 11
)

// peekTVType reports whether the next byte in buf is a TV-encoded
// parameter (marker bit set) and returns its 7-bit type.
func peekTVType(buf []byte) (typ uint8, ok bool) {
	if len(buf) == 0 {
		return 0, false
	}
	b := buf[0]
	if !wire.Bit(b, 7) {
		return 0, false
	}
	return b & 0x7F, true
}

// tvValue is a decoded TV parameter: its type code and raw body bytes.
type tvValue struct {
	Type uint8
	Body []byte
}

// nextTV consumes one TV-encoded parameter from the front of buf if its
// type is in tvWidth. It returns ok=false (without consuming input)
// when the next byte isn't a recognized TV marker -- this is the "scan
// stops" behavior spec.md §4.3 requires of the unknown-TV-trailer walk.
func nextTV(buf []byte) (v tvValue, tail []byte, ok bool, err error) {
	typ, present := peekTVType(buf)
	if !present {
		return tvValue{}, buf, false, nil
	}
	width, known := tvWidth[typ]
	if !known {
		return tvValue{}, buf, false, nil
	}
	if len(buf) < 1+width {
		return tvValue{}, buf, true, ErrTruncated
	}
	return tvValue{Type: typ, Body: buf[1 : 1+width]}, buf[1+width:], true, nil
}

// writeTV encodes a single TV parameter: marker bit set, 7-bit type,
// then body (which must already be exactly tvWidth[typ] bytes).
func writeTV(typ uint8, body []byte) []byte {
	w := wire.NewWriterSize(1 + len(body))
	w.PutUint8(0x80 | (typ & 0x7F))
	w.PutBytes(body)
	return w.Bytes()
}
