package param

import (
	"github.com/pion/logging"

	"github.com/rfidware/llrp/pkg/wire"
)

// EPCData carries a variable-length EPC with its declared bit length
// (LLRP Specification Section 16.2.7.3.1).
type EPCData struct {
	EPCLengthBits uint16
	EPC           []byte
}

func (p *EPCData) Encode() []byte {
	w := wire.NewWriterSize(2 + len(p.EPC))
	w.PutUint16(p.EPCLengthBits)
	w.PutBytes(p.EPC)
	return writeTLVHeader(TypeEPCData, w.Bytes())
}

func decodeEPCData(buf []byte) (*EPCData, []byte, error) {
	body, tail, ok, err := readTLVHeader(buf, TypeEPCData)
	if err != nil {
		return nil, buf, err
	}
	if !ok {
		return nil, buf, nil
	}
	r := wire.NewReader(body)
	bits, berr := r.Uint16()
	if berr != nil {
		return nil, buf, malformed("EPCData", "short body")
	}
	epc, eerr := r.Bytes(wire.PaddedByteLen(int(bits)))
	if eerr != nil {
		return nil, buf, malformed("EPCData", "EPC overruns body")
	}
	return &EPCData{EPCLengthBits: bits, EPC: epc}, tail, nil
}

// TagReportData carries one tag observation: its EPC, the optional TV
// fields the reader was configured to include, and an optional
// OpSpecResult if an AccessSpec ran against this tag (LLRP
// Specification Section 16.2.7.3).
//
// Exactly one of EPCData or EPC96 is populated (spec.md §4.4).
type TagReportData struct {
	EPCData *EPCData
	EPC96   []byte

	ROSpecID                 *uint32
	SpecIndex                *uint16
	InventoryParameterSpecID *uint16
	AntennaID                *uint16
	PeakRSSI                 *int8
	ChannelIndex             *uint16
	FirstSeenTimestampUTC    *uint64
	FirstSeenTimestampUptime *uint64
	LastSeenTimestampUTC     *uint64
	LastSeenTimestampUptime  *uint64
	TagSeenCount             *uint16
	AccessSpecID             *uint32
	C1G2PC                   *uint16
	C1G2CRC                  *uint16

	OpSpecResult any
}

func (p *TagReportData) Encode() []byte {
	w := wire.NewWriterSize(16)
	switch {
	case p.EPCData != nil:
		w.PutBytes(p.EPCData.Encode())
	case p.EPC96 != nil:
		w.PutBytes(writeTV(tvEPC96, p.EPC96))
	}

	if p.ROSpecID != nil {
		w.PutBytes(writeTV(tvROSpecID, uint32Bytes(*p.ROSpecID)))
	}
	if p.SpecIndex != nil {
		w.PutBytes(writeTV(tvSpecIndex, uint16Bytes(*p.SpecIndex)))
	}
	if p.InventoryParameterSpecID != nil {
		w.PutBytes(writeTV(tvInventoryParamSpecID, uint16Bytes(*p.InventoryParameterSpecID)))
	}
	if p.AntennaID != nil {
		w.PutBytes(writeTV(tvAntennaID, uint16Bytes(*p.AntennaID)))
	}
	if p.PeakRSSI != nil {
		w.PutBytes(writeTV(tvPeakRSSI, []byte{byte(*p.PeakRSSI)}))
	}
	if p.ChannelIndex != nil {
		w.PutBytes(writeTV(tvChannelIndex, uint16Bytes(*p.ChannelIndex)))
	}
	if p.FirstSeenTimestampUTC != nil {
		w.PutBytes(writeTV(tvFirstSeenTimestampUTC, uint64Bytes(*p.FirstSeenTimestampUTC)))
	}
	if p.FirstSeenTimestampUptime != nil {
		w.PutBytes(writeTV(tvFirstSeenTimestampUptime, uint64Bytes(*p.FirstSeenTimestampUptime)))
	}
	if p.LastSeenTimestampUTC != nil {
		w.PutBytes(writeTV(tvLastSeenTimestampUTC, uint64Bytes(*p.LastSeenTimestampUTC)))
	}
	if p.LastSeenTimestampUptime != nil {
		w.PutBytes(writeTV(tvLastSeenTimestampUptime, uint64Bytes(*p.LastSeenTimestampUptime)))
	}
	if p.TagSeenCount != nil {
		w.PutBytes(writeTV(tvTagSeenCount, uint16Bytes(*p.TagSeenCount)))
	}
	if p.AccessSpecID != nil {
		w.PutBytes(writeTV(tvAccessSpecID, uint32Bytes(*p.AccessSpecID)))
	}
	if p.C1G2PC != nil {
		w.PutBytes(writeTV(tvC1G2PC, uint16Bytes(*p.C1G2PC)))
	}
	if p.C1G2CRC != nil {
		w.PutBytes(writeTV(tvC1G2CRC, uint16Bytes(*p.C1G2CRC)))
	}

	if enc, ok := p.OpSpecResult.(interface{ Encode() []byte }); ok {
		w.PutBytes(enc.Encode())
	}

	return writeTLVHeader(TypeTagReportData, w.Bytes())
}

// DecodeTagReportData decodes one TagReportData parameter from the
// front of buf. log, if non-nil, receives one debug line when the TV
// scan stops with bytes still unread (an OpSpecResult or an
// unrecognized TV); pass nil to disable.
func DecodeTagReportData(buf []byte, log logging.LeveledLogger) (*TagReportData, []byte, error) {
	body, tail, ok, err := readTLVHeader(buf, TypeTagReportData)
	if err != nil {
		return nil, buf, err
	}
	if !ok {
		return nil, buf, malformed("TagReportData", "type mismatch")
	}

	p := &TagReportData{}
	rest := body

	epc, next, err := decodeEPCData(rest)
	if err != nil {
		return nil, buf, err
	}
	if epc != nil {
		p.EPCData = epc
		rest = next
	} else {
		v, next, ok, err := nextTV(rest)
		if err != nil {
			return nil, buf, err
		}
		if !ok || v.Type != tvEPC96 {
			return nil, buf, ErrMissingEPC
		}
		p.EPC96 = v.Body
		rest = next
	}

	for {
		v, next, ok, err := nextTV(rest)
		if err != nil {
			return nil, buf, err
		}
		if !ok {
			if log != nil && len(rest) > 0 {
				log.Debugf("tagreport: stopping TV scan, %d bytes remain", len(rest))
			}
			break
		}
		assignTagReportTV(p, v)
		rest = next
	}

	result, rest, err := decodeOpSpecResult(rest)
	if err != nil {
		return nil, buf, err
	}
	p.OpSpecResult = result

	if len(rest) != 0 {
		return nil, buf, ErrTrailingBytes
	}

	return p, tail, nil
}

func assignTagReportTV(p *TagReportData, v tvValue) {
	switch v.Type {
	case tvROSpecID:
		val := readUint32(v.Body)
		p.ROSpecID = &val
	case tvSpecIndex:
		val := readUint16(v.Body)
		p.SpecIndex = &val
	case tvInventoryParamSpecID:
		val := readUint16(v.Body)
		p.InventoryParameterSpecID = &val
	case tvAntennaID:
		val := readUint16(v.Body)
		p.AntennaID = &val
	case tvPeakRSSI:
		val := int8(v.Body[0])
		p.PeakRSSI = &val
	case tvChannelIndex:
		val := readUint16(v.Body)
		p.ChannelIndex = &val
	case tvFirstSeenTimestampUTC:
		val := readUint64(v.Body)
		p.FirstSeenTimestampUTC = &val
	case tvFirstSeenTimestampUptime:
		val := readUint64(v.Body)
		p.FirstSeenTimestampUptime = &val
	case tvLastSeenTimestampUTC:
		val := readUint64(v.Body)
		p.LastSeenTimestampUTC = &val
	case tvLastSeenTimestampUptime:
		val := readUint64(v.Body)
		p.LastSeenTimestampUptime = &val
	case tvTagSeenCount:
		val := readUint16(v.Body)
		p.TagSeenCount = &val
	case tvAccessSpecID:
		val := readUint32(v.Body)
		p.AccessSpecID = &val
	case tvC1G2PC:
		val := readUint16(v.Body)
		p.C1G2PC = &val
	case tvC1G2CRC:
		val := readUint16(v.Body)
		p.C1G2CRC = &val
	}
}

func readUint16(b []byte) uint16 { return uint16(b[0])<<8 | uint16(b[1]) }
func readUint32(b []byte) uint32 {
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}
func readUint64(b []byte) uint64 {
	var v uint64
	for _, c := range b {
		v = v<<8 | uint64(c)
	}
	return v
}

func uint16Bytes(v uint16) []byte { return []byte{byte(v >> 8), byte(v)} }
func uint32Bytes(v uint32) []byte {
	return []byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}
}
func uint64Bytes(v uint64) []byte {
	b := make([]byte, 8)
	for i := 7; i >= 0; i-- {
		b[i] = byte(v)
		v >>= 8
	}
	return b
}
