package param

import "github.com/rfidware/llrp/pkg/wire"

// GeneralDeviceCapabilities reports reader hardware identity and
// antenna/GPIO counts (LLRP Specification Section 16.2.3.1). Grounded
// on original_source/sllurp/llrp_proto.py's decode_GeneralDeviceCapabilities.
//
// ReceiveSensitivityTableEntry, PerAntennaReceiveSensitivityRange, and
// PerAntennaAirProtocol are repeating per the LLRP specification even
// though the reference client only ever decoded one of each; this
// codec walks all three as sequences.
type GeneralDeviceCapabilities struct {
	MaxNumberOfAntennaSupported uint16
	CanSetAntennaProperties     bool
	HasUTCClockCapability       bool
	DeviceManufacturerName      uint32
	ModelName                   uint32
	ReaderFirmwareVersion       []byte

	ReceiveSensitivityTableEntry      []ReceiveSensitivityTableEntry
	PerAntennaReceiveSensitivityRange []PerAntennaReceiveSensitivityRange
	GPIOCapabilities                  *GPIOCapabilities
	PerAntennaAirProtocol             []PerAntennaAirProtocol
	MaximumReceiveSensitivity         *MaximumReceiveSensitivity
}

// Encode writes the GeneralDeviceCapabilities TLV parameter.
func (p *GeneralDeviceCapabilities) Encode() []byte {
	w := wire.NewWriterSize(16 + len(p.ReaderFirmwareVersion))
	w.PutUint16(p.MaxNumberOfAntennaSupported)
	var flags uint16
	if p.CanSetAntennaProperties {
		flags |= 1 << 15
	}
	if p.HasUTCClockCapability {
		flags |= 1 << 14
	}
	w.PutUint16(flags)
	w.PutUint32(p.DeviceManufacturerName)
	w.PutUint32(p.ModelName)
	w.PutUint16(uint16(len(p.ReaderFirmwareVersion)))
	w.PutBytes(p.ReaderFirmwareVersion)
	for i := range p.ReceiveSensitivityTableEntry {
		w.PutBytes(p.ReceiveSensitivityTableEntry[i].Encode())
	}
	for i := range p.PerAntennaReceiveSensitivityRange {
		w.PutBytes(p.PerAntennaReceiveSensitivityRange[i].Encode())
	}
	if p.GPIOCapabilities != nil {
		w.PutBytes(p.GPIOCapabilities.Encode())
	}
	for i := range p.PerAntennaAirProtocol {
		w.PutBytes(p.PerAntennaAirProtocol[i].Encode())
	}
	if p.MaximumReceiveSensitivity != nil {
		w.PutBytes(p.MaximumReceiveSensitivity.Encode())
	}
	return writeTLVHeader(TypeGeneralDeviceCapabilities, w.Bytes())
}

// DecodeGeneralDeviceCapabilities decodes a GeneralDeviceCapabilities
// TLV parameter from the front of buf.
func DecodeGeneralDeviceCapabilities(buf []byte) (*GeneralDeviceCapabilities, []byte, error) {
	body, tail, ok, err := readTLVHeader(buf, TypeGeneralDeviceCapabilities)
	if err != nil {
		return nil, buf, err
	}
	if !ok {
		return nil, buf, malformed("GeneralDeviceCapabilities", "type mismatch")
	}

	r := wire.NewReader(body)
	maxAnt, err := r.Uint16()
	if err != nil {
		return nil, buf, malformed("GeneralDeviceCapabilities", "short body")
	}
	flags, err := r.Uint16()
	if err != nil {
		return nil, buf, malformed("GeneralDeviceCapabilities", "short body")
	}
	mfr, err := r.Uint32()
	if err != nil {
		return nil, buf, malformed("GeneralDeviceCapabilities", "short body")
	}
	model, err := r.Uint32()
	if err != nil {
		return nil, buf, malformed("GeneralDeviceCapabilities", "short body")
	}
	fwLen, err := r.Uint16()
	if err != nil {
		return nil, buf, malformed("GeneralDeviceCapabilities", "short body")
	}
	fw, err := r.Bytes(int(fwLen))
	if err != nil {
		return nil, buf, malformed("GeneralDeviceCapabilities", "firmware version overruns body")
	}

	p := &GeneralDeviceCapabilities{
		MaxNumberOfAntennaSupported: maxAnt,
		CanSetAntennaProperties:     wire.Bit(byte(flags>>8), 7),
		HasUTCClockCapability:       wire.Bit(byte(flags>>8), 6),
		DeviceManufacturerName:      mfr,
		ModelName:                   model,
		ReaderFirmwareVersion:       fw,
	}

	rest := r.Remaining()
	for {
		entry, next, err := decodeReceiveSensitivityTableEntry(rest)
		if err != nil {
			return nil, buf, err
		}
		if entry == nil {
			break
		}
		p.ReceiveSensitivityTableEntry = append(p.ReceiveSensitivityTableEntry, *entry)
		rest = next
	}

	for {
		rng, next, err := decodePerAntennaReceiveSensitivityRange(rest)
		if err != nil {
			return nil, buf, err
		}
		if rng == nil {
			break
		}
		p.PerAntennaReceiveSensitivityRange = append(p.PerAntennaReceiveSensitivityRange, *rng)
		rest = next
	}

	gpio, rest, err := DecodeGPIOCapabilities(rest)
	if err != nil {
		return nil, buf, err
	}
	p.GPIOCapabilities = gpio

	for {
		proto, next, err := decodePerAntennaAirProtocol(rest)
		if err != nil {
			return nil, buf, err
		}
		if proto == nil {
			break
		}
		p.PerAntennaAirProtocol = append(p.PerAntennaAirProtocol, *proto)
		rest = next
	}

	mrs, rest, err := DecodeMaximumReceiveSensitivity(rest)
	if err != nil {
		return nil, buf, err
	}
	p.MaximumReceiveSensitivity = mrs

	if len(rest) != 0 {
		return nil, buf, ErrTrailingBytes
	}

	return p, tail, nil
}

// MaximumReceiveSensitivity is an optional child of
// GeneralDeviceCapabilities.
type MaximumReceiveSensitivity struct {
	MaximumSensitivityValue uint16
}

func (p *MaximumReceiveSensitivity) Encode() []byte {
	w := wire.NewWriterSize(2)
	w.PutUint16(p.MaximumSensitivityValue)
	return writeTLVHeader(TypeMaximumReceiveSensitivity, w.Bytes())
}

func DecodeMaximumReceiveSensitivity(buf []byte) (*MaximumReceiveSensitivity, []byte, error) {
	body, tail, ok, err := readTLVHeader(buf, TypeMaximumReceiveSensitivity)
	if err != nil {
		return nil, buf, err
	}
	if !ok {
		return nil, buf, nil
	}
	r := wire.NewReader(body)
	v, rerr := r.Uint16()
	if rerr != nil {
		return nil, buf, malformed("MaximumReceiveSensitivity", "short body")
	}
	return &MaximumReceiveSensitivity{MaximumSensitivityValue: v}, tail, nil
}

// ReceiveSensitivityTableEntry maps a table index to a receiver
// sensitivity value.
type ReceiveSensitivityTableEntry struct {
	Index                    uint16
	ReceiveSensitivityValue  uint16
}

func (p *ReceiveSensitivityTableEntry) Encode() []byte {
	w := wire.NewWriterSize(4)
	w.PutUint16(p.Index)
	w.PutUint16(p.ReceiveSensitivityValue)
	return writeTLVHeader(TypeReceiveSensitivityTableEntry, w.Bytes())
}

func decodeReceiveSensitivityTableEntry(buf []byte) (*ReceiveSensitivityTableEntry, []byte, error) {
	body, tail, ok, err := readTLVHeader(buf, TypeReceiveSensitivityTableEntry)
	if err != nil {
		return nil, buf, err
	}
	if !ok {
		return nil, buf, nil
	}
	r := wire.NewReader(body)
	idx, e1 := r.Uint16()
	val, e2 := r.Uint16()
	if e1 != nil || e2 != nil {
		return nil, buf, malformed("ReceiveSensitivityTableEntry", "short body")
	}
	return &ReceiveSensitivityTableEntry{Index: idx, ReceiveSensitivityValue: val}, tail, nil
}

// PerAntennaReceiveSensitivityRange names the sensitivity index range
// usable by a specific antenna.
type PerAntennaReceiveSensitivityRange struct {
	AntennaID                  uint16
	ReceiveSensitivityIndexMin uint16
	ReceiveSensitivityIndexMax uint16
}

func (p *PerAntennaReceiveSensitivityRange) Encode() []byte {
	w := wire.NewWriterSize(6)
	w.PutUint16(p.AntennaID)
	w.PutUint16(p.ReceiveSensitivityIndexMin)
	w.PutUint16(p.ReceiveSensitivityIndexMax)
	return writeTLVHeader(TypePerAntennaReceiveSensitivityRange, w.Bytes())
}

func decodePerAntennaReceiveSensitivityRange(buf []byte) (*PerAntennaReceiveSensitivityRange, []byte, error) {
	body, tail, ok, err := readTLVHeader(buf, TypePerAntennaReceiveSensitivityRange)
	if err != nil {
		return nil, buf, err
	}
	if !ok {
		return nil, buf, nil
	}
	r := wire.NewReader(body)
	ant, e1 := r.Uint16()
	min, e2 := r.Uint16()
	max, e3 := r.Uint16()
	if e1 != nil || e2 != nil || e3 != nil {
		return nil, buf, malformed("PerAntennaReceiveSensitivityRange", "short body")
	}
	return &PerAntennaReceiveSensitivityRange{
		AntennaID:                  ant,
		ReceiveSensitivityIndexMin: min,
		ReceiveSensitivityIndexMax: max,
	}, tail, nil
}

// PerAntennaAirProtocol lists the air-protocol identifiers a specific
// antenna supports.
type PerAntennaAirProtocol struct {
	AntennaID   uint16
	ProtocolIDs []uint8
}

func (p *PerAntennaAirProtocol) Encode() []byte {
	w := wire.NewWriterSize(4 + len(p.ProtocolIDs))
	w.PutUint16(p.AntennaID)
	w.PutUint16(uint16(len(p.ProtocolIDs)))
	for _, id := range p.ProtocolIDs {
		w.PutUint8(id)
	}
	return writeTLVHeader(TypePerAntennaAirProtocol, w.Bytes())
}

func decodePerAntennaAirProtocol(buf []byte) (*PerAntennaAirProtocol, []byte, error) {
	body, tail, ok, err := readTLVHeader(buf, TypePerAntennaAirProtocol)
	if err != nil {
		return nil, buf, err
	}
	if !ok {
		return nil, buf, nil
	}
	r := wire.NewReader(body)
	ant, e1 := r.Uint16()
	num, e2 := r.Uint16()
	if e1 != nil || e2 != nil {
		return nil, buf, malformed("PerAntennaAirProtocol", "short body")
	}
	ids := make([]uint8, 0, num)
	for i := 0; i < int(num); i++ {
		id, err := r.Uint8()
		if err != nil {
			return nil, buf, malformed("PerAntennaAirProtocol", "protocol list overruns body")
		}
		ids = append(ids, id)
	}
	return &PerAntennaAirProtocol{AntennaID: ant, ProtocolIDs: ids}, tail, nil
}

// GPIOCapabilities reports general-purpose I/O line counts.
//
// The reference Python client's decode assigns both unpacked fields to
// the same map key (par['NumGPIs'] twice), silently discarding the
// GPO count. This codec keeps NumGPIs and NumGPOs as distinct fields.
type GPIOCapabilities struct {
	NumGPIs uint16
	NumGPOs uint16
}

func (p *GPIOCapabilities) Encode() []byte {
	w := wire.NewWriterSize(4)
	w.PutUint16(p.NumGPIs)
	w.PutUint16(p.NumGPOs)
	return writeTLVHeader(TypeGPIOCapabilities, w.Bytes())
}

func DecodeGPIOCapabilities(buf []byte) (*GPIOCapabilities, []byte, error) {
	body, tail, ok, err := readTLVHeader(buf, TypeGPIOCapabilities)
	if err != nil {
		return nil, buf, err
	}
	if !ok {
		return nil, buf, nil
	}
	r := wire.NewReader(body)
	gpis, e1 := r.Uint16()
	gpos, e2 := r.Uint16()
	if e1 != nil || e2 != nil {
		return nil, buf, malformed("GPIOCapabilities", "short body")
	}
	return &GPIOCapabilities{NumGPIs: gpis, NumGPOs: gpos}, tail, nil
}

// LLRPCapabilities reports reader-wide operational limits (LLRP
// Specification Section 16.2.3.2).
type LLRPCapabilities struct {
	CanDoRFSurvey                           bool
	CanReportBufferFillWarning              bool
	SupportsClientRequestOpSpec             bool
	CanDoTagInventoryStateAwareSingulation  bool
	SupportsEventAndReportHolding           bool
	MaxPriorityLevelSupported               uint8
	ClientRequestOpSpecTimeout              uint16
	MaxNumROSpec                            uint32
	MaxNumSpecsPerROSpec                    uint32
	MaxNumInventoryParameterSpecsPerAISpec  uint32
	MaxNumAccessSpec                        uint32
	MaxNumOpSpecsPerAccessSpec              uint32
}

func (p *LLRPCapabilities) Encode() []byte {
	w := wire.NewWriterSize(18)
	var flags uint8
	if p.CanDoRFSurvey {
		flags |= 1 << 7
	}
	if p.CanReportBufferFillWarning {
		flags |= 1 << 6
	}
	if p.SupportsClientRequestOpSpec {
		flags |= 1 << 5
	}
	if p.CanDoTagInventoryStateAwareSingulation {
		flags |= 1 << 4
	}
	if p.SupportsEventAndReportHolding {
		flags |= 1 << 3
	}
	w.PutUint8(flags)
	w.PutUint8(p.MaxPriorityLevelSupported)
	w.PutUint16(p.ClientRequestOpSpecTimeout)
	w.PutUint32(p.MaxNumROSpec)
	w.PutUint32(p.MaxNumSpecsPerROSpec)
	w.PutUint32(p.MaxNumInventoryParameterSpecsPerAISpec)
	w.PutUint32(p.MaxNumAccessSpec)
	w.PutUint32(p.MaxNumOpSpecsPerAccessSpec)
	return writeTLVHeader(TypeLLRPCapabilities, w.Bytes())
}

func DecodeLLRPCapabilities(buf []byte) (*LLRPCapabilities, []byte, error) {
	body, tail, ok, err := readTLVHeader(buf, TypeLLRPCapabilities)
	if err != nil {
		return nil, buf, err
	}
	if !ok {
		return nil, buf, malformed("LLRPCapabilities", "type mismatch")
	}
	r := wire.NewReader(body)
	flags, e1 := r.Uint8()
	maxPrio, e2 := r.Uint8()
	timeout, e3 := r.Uint16()
	maxRO, e4 := r.Uint32()
	maxSpecsPerRO, e5 := r.Uint32()
	maxInvParams, e6 := r.Uint32()
	maxAccess, e7 := r.Uint32()
	maxOpSpecs, e8 := r.Uint32()
	if e1 != nil || e2 != nil || e3 != nil || e4 != nil || e5 != nil || e6 != nil || e7 != nil || e8 != nil {
		return nil, buf, malformed("LLRPCapabilities", "short body")
	}
	return &LLRPCapabilities{
		CanDoRFSurvey:                          wire.Bit(flags, 7),
		CanReportBufferFillWarning:             wire.Bit(flags, 6),
		SupportsClientRequestOpSpec:            wire.Bit(flags, 5),
		CanDoTagInventoryStateAwareSingulation: wire.Bit(flags, 4),
		SupportsEventAndReportHolding:          wire.Bit(flags, 3),
		MaxPriorityLevelSupported:              maxPrio,
		ClientRequestOpSpecTimeout:             timeout,
		MaxNumROSpec:                           maxRO,
		MaxNumSpecsPerROSpec:                   maxSpecsPerRO,
		MaxNumInventoryParameterSpecsPerAISpec: maxInvParams,
		MaxNumAccessSpec:                       maxAccess,
		MaxNumOpSpecsPerAccessSpec:             maxOpSpecs,
	}, tail, nil
}

// RegulatoryCapabilities reports the reader's country-code and
// communications-standard identity, plus its UHF band description.
type RegulatoryCapabilities struct {
	CountryCode             uint16
	CommunicationsStandard  uint16
	UHFBandCapabilities     *UHFBandCapabilities
}

func (p *RegulatoryCapabilities) Encode() []byte {
	w := wire.NewWriterSize(4)
	w.PutUint16(p.CountryCode)
	w.PutUint16(p.CommunicationsStandard)
	if p.UHFBandCapabilities != nil {
		w.PutBytes(p.UHFBandCapabilities.Encode())
	}
	return writeTLVHeader(TypeRegulatoryCapabilities, w.Bytes())
}

func DecodeRegulatoryCapabilities(buf []byte) (*RegulatoryCapabilities, []byte, error) {
	body, tail, ok, err := readTLVHeader(buf, TypeRegulatoryCapabilities)
	if err != nil {
		return nil, buf, err
	}
	if !ok {
		return nil, buf, malformed("RegulatoryCapabilities", "type mismatch")
	}
	r := wire.NewReader(body)
	cc, e1 := r.Uint16()
	std, e2 := r.Uint16()
	if e1 != nil || e2 != nil {
		return nil, buf, malformed("RegulatoryCapabilities", "short body")
	}
	p := &RegulatoryCapabilities{CountryCode: cc, CommunicationsStandard: std}

	band, rest, err := DecodeUHFBandCapabilities(r.Remaining())
	if err != nil {
		return nil, buf, err
	}
	p.UHFBandCapabilities = band

	if len(rest) != 0 {
		return nil, buf, ErrTrailingBytes
	}

	return p, tail, nil
}

// UHFBandCapabilities describes the transmit power table, frequency
// plan, RF mode table, and survey range for the UHF air interface.
type UHFBandCapabilities struct {
	TransmitPowerLevelTableEntry []TransmitPowerLevelTableEntry
	FrequencyInformation         *FrequencyInformation
	UHFRFModeTable               *UHFRFModeTable
	RFSurveyFrequencyCapabilities *RFSurveyFrequencyCapabilities
}

func (p *UHFBandCapabilities) Encode() []byte {
	w := wire.NewWriterSize(0)
	for i := range p.TransmitPowerLevelTableEntry {
		w.PutBytes(p.TransmitPowerLevelTableEntry[i].Encode())
	}
	if p.FrequencyInformation != nil {
		w.PutBytes(p.FrequencyInformation.Encode())
	}
	if p.UHFRFModeTable != nil {
		w.PutBytes(p.UHFRFModeTable.Encode())
	}
	if p.RFSurveyFrequencyCapabilities != nil {
		w.PutBytes(p.RFSurveyFrequencyCapabilities.Encode())
	}
	return writeTLVHeader(TypeUHFBandCapabilities, w.Bytes())
}

func DecodeUHFBandCapabilities(buf []byte) (*UHFBandCapabilities, []byte, error) {
	body, tail, ok, err := readTLVHeader(buf, TypeUHFBandCapabilities)
	if err != nil {
		return nil, buf, err
	}
	if !ok {
		return nil, buf, nil
	}

	p := &UHFBandCapabilities{}
	rest := body
	for {
		entry, next, err := decodeTransmitPowerLevelTableEntry(rest)
		if err != nil {
			return nil, buf, err
		}
		if entry == nil {
			break
		}
		p.TransmitPowerLevelTableEntry = append(p.TransmitPowerLevelTableEntry, *entry)
		rest = next
	}

	freq, rest, err := DecodeFrequencyInformation(rest)
	if err != nil {
		return nil, buf, err
	}
	p.FrequencyInformation = freq

	modeTable, rest, err := DecodeUHFRFModeTable(rest)
	if err != nil {
		return nil, buf, err
	}
	p.UHFRFModeTable = modeTable

	survey, rest, err := DecodeRFSurveyFrequencyCapabilities(rest)
	if err != nil {
		return nil, buf, err
	}
	p.RFSurveyFrequencyCapabilities = survey

	if len(rest) != 0 {
		return nil, buf, ErrTrailingBytes
	}

	return p, tail, nil
}

// TransmitPowerLevelTableEntry maps a table index to a transmit power
// value.
type TransmitPowerLevelTableEntry struct {
	Index              uint16
	TransmitPowerValue uint16
}

func (p *TransmitPowerLevelTableEntry) Encode() []byte {
	w := wire.NewWriterSize(4)
	w.PutUint16(p.Index)
	w.PutUint16(p.TransmitPowerValue)
	return writeTLVHeader(TypeTransmitPowerLevelTableEntry, w.Bytes())
}

func decodeTransmitPowerLevelTableEntry(buf []byte) (*TransmitPowerLevelTableEntry, []byte, error) {
	body, tail, ok, err := readTLVHeader(buf, TypeTransmitPowerLevelTableEntry)
	if err != nil {
		return nil, buf, err
	}
	if !ok {
		return nil, buf, nil
	}
	r := wire.NewReader(body)
	idx, e1 := r.Uint16()
	val, e2 := r.Uint16()
	if e1 != nil || e2 != nil {
		return nil, buf, malformed("TransmitPowerLevelTableEntry", "short body")
	}
	return &TransmitPowerLevelTableEntry{Index: idx, TransmitPowerValue: val}, tail, nil
}

// FrequencyInformation describes whether the reader hops and carries
// either a FrequencyHopTable or a FixedFrequencyTable (never both).
type FrequencyInformation struct {
	Hopping           bool
	FrequencyHopTable []FrequencyHopTable
	FixedFrequencyTable *FixedFrequencyTable
}

func (p *FrequencyInformation) Encode() []byte {
	w := wire.NewWriterSize(1)
	var flags uint8
	if p.Hopping {
		flags |= 1 << 7
	}
	w.PutUint8(flags)
	for i := range p.FrequencyHopTable {
		w.PutBytes(p.FrequencyHopTable[i].Encode())
	}
	if p.FixedFrequencyTable != nil {
		w.PutBytes(p.FixedFrequencyTable.Encode())
	}
	return writeTLVHeader(TypeFrequencyInformation, w.Bytes())
}

func DecodeFrequencyInformation(buf []byte) (*FrequencyInformation, []byte, error) {
	body, tail, ok, err := readTLVHeader(buf, TypeFrequencyInformation)
	if err != nil {
		return nil, buf, err
	}
	if !ok {
		return nil, buf, nil
	}
	r := wire.NewReader(body)
	flags, ferr := r.Uint8()
	if ferr != nil {
		return nil, buf, malformed("FrequencyInformation", "short body")
	}

	p := &FrequencyInformation{Hopping: wire.Bit(flags, 7)}
	rest := r.Remaining()
	for {
		hop, next, err := decodeFrequencyHopTable(rest)
		if err != nil {
			return nil, buf, err
		}
		if hop == nil {
			break
		}
		p.FrequencyHopTable = append(p.FrequencyHopTable, *hop)
		rest = next
	}

	fixed, rest, err := decodeFixedFrequencyTable(rest)
	if err != nil {
		return nil, buf, err
	}
	p.FixedFrequencyTable = fixed

	if len(rest) != 0 {
		return nil, buf, ErrTrailingBytes
	}

	return p, tail, nil
}

// FrequencyHopTable lists the sequence of frequencies (in kHz) a
// hopping reader visits.
type FrequencyHopTable struct {
	HopTableID  uint8
	Frequencies []uint32
}

func (p *FrequencyHopTable) Encode() []byte {
	w := wire.NewWriterSize(4 + 4*len(p.Frequencies))
	w.PutUint8(p.HopTableID)
	w.PutUint8(0)
	w.PutUint16(uint16(len(p.Frequencies)))
	for _, f := range p.Frequencies {
		w.PutUint32(f)
	}
	return writeTLVHeader(TypeFrequencyHopTable, w.Bytes())
}

func decodeFrequencyHopTable(buf []byte) (*FrequencyHopTable, []byte, error) {
	body, tail, ok, err := readTLVHeader(buf, TypeFrequencyHopTable)
	if err != nil {
		return nil, buf, err
	}
	if !ok {
		return nil, buf, nil
	}
	r := wire.NewReader(body)
	id, e1 := r.Uint8()
	_, e2 := r.Uint8()
	num, e3 := r.Uint16()
	if e1 != nil || e2 != nil || e3 != nil {
		return nil, buf, malformed("FrequencyHopTable", "short body")
	}
	freqs := make([]uint32, 0, num)
	for i := 0; i < int(num); i++ {
		f, err := r.Uint32()
		if err != nil {
			return nil, buf, malformed("FrequencyHopTable", "frequency list overruns body")
		}
		freqs = append(freqs, f)
	}
	return &FrequencyHopTable{HopTableID: id, Frequencies: freqs}, tail, nil
}

// FixedFrequencyTable lists the fixed frequencies (in kHz) a
// non-hopping reader uses.
//
// The reference Python client unpacks NumFrequencies but never loops
// to read the frequency list that follows it, silently dropping the
// data. This codec decodes the full list.
type FixedFrequencyTable struct {
	Frequencies []uint32
}

func (p *FixedFrequencyTable) Encode() []byte {
	w := wire.NewWriterSize(2 + 4*len(p.Frequencies))
	w.PutUint16(uint16(len(p.Frequencies)))
	for _, f := range p.Frequencies {
		w.PutUint32(f)
	}
	return writeTLVHeader(TypeFixedFrequencyTable, w.Bytes())
}

func decodeFixedFrequencyTable(buf []byte) (*FixedFrequencyTable, []byte, error) {
	body, tail, ok, err := readTLVHeader(buf, TypeFixedFrequencyTable)
	if err != nil {
		return nil, buf, err
	}
	if !ok {
		return nil, buf, nil
	}
	r := wire.NewReader(body)
	num, nerr := r.Uint16()
	if nerr != nil {
		return nil, buf, malformed("FixedFrequencyTable", "short body")
	}
	freqs := make([]uint32, 0, num)
	for i := 0; i < int(num); i++ {
		f, err := r.Uint32()
		if err != nil {
			return nil, buf, malformed("FixedFrequencyTable", "frequency list overruns body")
		}
		freqs = append(freqs, f)
	}
	return &FixedFrequencyTable{Frequencies: freqs}, tail, nil
}

// UHFRFModeTable lists the RF mode table entries a reader supports.
type UHFRFModeTable struct {
	Entries []UHFC1G2RFModeTableEntry
}

func (p *UHFRFModeTable) Encode() []byte {
	w := wire.NewWriterSize(0)
	for i := range p.Entries {
		w.PutBytes(p.Entries[i].Encode())
	}
	return writeTLVHeader(TypeUHFRFModeTable, w.Bytes())
}

func DecodeUHFRFModeTable(buf []byte) (*UHFRFModeTable, []byte, error) {
	body, tail, ok, err := readTLVHeader(buf, TypeUHFRFModeTable)
	if err != nil {
		return nil, buf, err
	}
	if !ok {
		return nil, buf, nil
	}
	var entries []UHFC1G2RFModeTableEntry
	rest := body
	for {
		entry, next, err := decodeUHFC1G2RFModeTableEntry(rest)
		if err != nil {
			return nil, buf, err
		}
		if entry == nil {
			break
		}
		entries = append(entries, *entry)
		rest = next
	}
	if len(rest) != 0 {
		return nil, buf, ErrTrailingBytes
	}
	return &UHFRFModeTable{Entries: entries}, tail, nil
}

// UHFC1G2RFModeTableEntry describes a single Gen2 RF mode's timing
// parameters (LLRP Specification Section 16.2.3.2). R and C are
// decoded separately from the packed RC byte.
type UHFC1G2RFModeTableEntry struct {
	ModeIdentifier uint32
	R              bool
	C              bool
	Mod            uint8
	FLM            uint8
	M              uint8
	BDR            uint32
	PIE            uint32
	MinTari        uint32
	MaxTari        uint32
	StepTari       uint32
}

func (p *UHFC1G2RFModeTableEntry) Encode() []byte {
	w := wire.NewWriterSize(26)
	w.PutUint32(p.ModeIdentifier)
	var rc uint8
	if p.R {
		rc |= 1 << 7
	}
	if p.C {
		rc |= 1 << 6
	}
	w.PutUint8(rc)
	w.PutUint8(p.Mod)
	w.PutUint8(p.FLM)
	w.PutUint8(p.M)
	w.PutUint32(p.BDR)
	w.PutUint32(p.PIE)
	w.PutUint32(p.MinTari)
	w.PutUint32(p.MaxTari)
	w.PutUint32(p.StepTari)
	return writeTLVHeader(TypeUHFC1G2RFModeTableEntry, w.Bytes())
}

func decodeUHFC1G2RFModeTableEntry(buf []byte) (*UHFC1G2RFModeTableEntry, []byte, error) {
	body, tail, ok, err := readTLVHeader(buf, TypeUHFC1G2RFModeTableEntry)
	if err != nil {
		return nil, buf, err
	}
	if !ok {
		return nil, buf, nil
	}
	r := wire.NewReader(body)
	modeID, e1 := r.Uint32()
	rc, e2 := r.Uint8()
	mod, e3 := r.Uint8()
	flm, e4 := r.Uint8()
	m, e5 := r.Uint8()
	bdr, e6 := r.Uint32()
	pie, e7 := r.Uint32()
	minTari, e8 := r.Uint32()
	maxTari, e9 := r.Uint32()
	stepTari, e10 := r.Uint32()
	if e1 != nil || e2 != nil || e3 != nil || e4 != nil || e5 != nil ||
		e6 != nil || e7 != nil || e8 != nil || e9 != nil || e10 != nil {
		return nil, buf, malformed("UHFC1G2RFModeTableEntry", "short body")
	}
	return &UHFC1G2RFModeTableEntry{
		ModeIdentifier: modeID,
		R:              wire.Bit(rc, 7),
		C:              wire.Bit(rc, 6),
		Mod:            mod,
		FLM:            flm,
		M:              m,
		BDR:            bdr,
		PIE:            pie,
		MinTari:        minTari,
		MaxTari:        maxTari,
		StepTari:       stepTari,
	}, tail, nil
}

// RFSurveyFrequencyCapabilities reports the frequency range an RF
// survey operation can scan.
type RFSurveyFrequencyCapabilities struct {
	MinimumFrequency uint32
	MaximumFrequency uint32
}

func (p *RFSurveyFrequencyCapabilities) Encode() []byte {
	w := wire.NewWriterSize(8)
	w.PutUint32(p.MinimumFrequency)
	w.PutUint32(p.MaximumFrequency)
	return writeTLVHeader(TypeRFSurveyFrequencyCapabilities, w.Bytes())
}

func DecodeRFSurveyFrequencyCapabilities(buf []byte) (*RFSurveyFrequencyCapabilities, []byte, error) {
	body, tail, ok, err := readTLVHeader(buf, TypeRFSurveyFrequencyCapabilities)
	if err != nil {
		return nil, buf, err
	}
	if !ok {
		return nil, buf, nil
	}
	r := wire.NewReader(body)
	min, e1 := r.Uint32()
	max, e2 := r.Uint32()
	if e1 != nil || e2 != nil {
		return nil, buf, malformed("RFSurveyFrequencyCapabilities", "short body")
	}
	return &RFSurveyFrequencyCapabilities{MinimumFrequency: min, MaximumFrequency: max}, tail, nil
}
