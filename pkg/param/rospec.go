package param

import "github.com/rfidware/llrp/pkg/wire"

// ROSpecState enumerates the lifecycle state of a reader operation
// spec (LLRP Specification Section 13.2.1).
type ROSpecState uint8

const (
	ROSpecStateDisabled ROSpecState = 0
	ROSpecStateInactive ROSpecState = 1
	ROSpecStateActive   ROSpecState = 2
)

// ROSpec is the top-level reader operation spec: when to run, what
// antennas and air-protocol settings to use, and how to report results
// (LLRP Specification Section 16.2.4).
type ROSpec struct {
	ROSpecID      uint32
	Priority      uint8
	CurrentState  ROSpecState
	ROBoundarySpec ROBoundarySpec
	AISpec        AISpec
	ROReportSpec  ROReportSpec
}

func (p *ROSpec) Encode() []byte {
	w := wire.NewWriterSize(8)
	w.PutUint32(p.ROSpecID)
	w.PutUint8(p.Priority & 0x7F)
	w.PutUint8(uint8(p.CurrentState) & 0x7F)
	w.PutBytes(p.ROBoundarySpec.Encode())
	w.PutBytes(p.AISpec.Encode())
	w.PutBytes(p.ROReportSpec.Encode())
	return writeTLVHeader(TypeROSpec, w.Bytes())
}

func DecodeROSpec(buf []byte) (*ROSpec, []byte, error) {
	body, tail, ok, err := readTLVHeader(buf, TypeROSpec)
	if err != nil {
		return nil, buf, err
	}
	if !ok {
		return nil, buf, malformed("ROSpec", "type mismatch")
	}
	r := wire.NewReader(body)
	id, e1 := r.Uint32()
	prio, e2 := r.Uint8()
	state, e3 := r.Uint8()
	if e1 != nil || e2 != nil || e3 != nil {
		return nil, buf, malformed("ROSpec", "short body")
	}

	rest := r.Remaining()
	boundary, rest, err := DecodeROBoundarySpec(rest)
	if err != nil {
		return nil, buf, err
	}
	if boundary == nil {
		return nil, buf, malformed("ROSpec", "missing ROBoundarySpec")
	}

	ai, rest, err := DecodeAISpec(rest)
	if err != nil {
		return nil, buf, err
	}
	if ai == nil {
		return nil, buf, malformed("ROSpec", "missing AISpec")
	}

	report, rest, err := DecodeROReportSpec(rest)
	if err != nil {
		return nil, buf, err
	}
	if report == nil {
		return nil, buf, malformed("ROSpec", "missing ROReportSpec")
	}

	if len(rest) != 0 {
		return nil, buf, ErrTrailingBytes
	}

	return &ROSpec{
		ROSpecID:       id,
		Priority:       prio,
		CurrentState:   ROSpecState(state),
		ROBoundarySpec: *boundary,
		AISpec:         *ai,
		ROReportSpec:   *report,
	}, tail, nil
}

// ROBoundarySpec bounds an ROSpec's active window with start/stop
// triggers.
type ROBoundarySpec struct {
	StartTrigger ROSpecStartTrigger
	StopTrigger  ROSpecStopTrigger
}

func (p *ROBoundarySpec) Encode() []byte {
	w := wire.NewWriterSize(0)
	w.PutBytes(p.StartTrigger.Encode())
	w.PutBytes(p.StopTrigger.Encode())
	return writeTLVHeader(TypeROBoundarySpec, w.Bytes())
}

func DecodeROBoundarySpec(buf []byte) (*ROBoundarySpec, []byte, error) {
	body, tail, ok, err := readTLVHeader(buf, TypeROBoundarySpec)
	if err != nil {
		return nil, buf, err
	}
	if !ok {
		return nil, buf, nil
	}
	start, rest, err := DecodeROSpecStartTrigger(body)
	if err != nil {
		return nil, buf, err
	}
	if start == nil {
		return nil, buf, malformed("ROBoundarySpec", "missing ROSpecStartTrigger")
	}
	stop, rest, err := DecodeROSpecStopTrigger(rest)
	if err != nil {
		return nil, buf, err
	}
	if stop == nil {
		return nil, buf, malformed("ROBoundarySpec", "missing ROSpecStopTrigger")
	}
	if len(rest) != 0 {
		return nil, buf, ErrTrailingBytes
	}
	return &ROBoundarySpec{StartTrigger: *start, StopTrigger: *stop}, tail, nil
}

// ROSpecStartTriggerType enumerates how an ROSpec transitions from
// Inactive to Active.
type ROSpecStartTriggerType uint8

const (
	StartTriggerNull     ROSpecStartTriggerType = 0
	StartTriggerImmediate ROSpecStartTriggerType = 1
	StartTriggerPeriodic ROSpecStartTriggerType = 2
	StartTriggerGPI      ROSpecStartTriggerType = 3
)

// ROSpecStartTrigger describes when an ROSpec begins running.
type ROSpecStartTrigger struct {
	Type               ROSpecStartTriggerType
	PeriodicTriggerValue *PeriodicTriggerValue
	GPITriggerValue    *GPITriggerValue
}

func (p *ROSpecStartTrigger) Encode() []byte {
	w := wire.NewWriterSize(1)
	w.PutUint8(uint8(p.Type))
	if p.PeriodicTriggerValue != nil {
		w.PutBytes(p.PeriodicTriggerValue.Encode())
	}
	if p.GPITriggerValue != nil {
		w.PutBytes(p.GPITriggerValue.Encode())
	}
	return writeTLVHeader(TypeROSpecStartTrigger, w.Bytes())
}

func DecodeROSpecStartTrigger(buf []byte) (*ROSpecStartTrigger, []byte, error) {
	body, tail, ok, err := readTLVHeader(buf, TypeROSpecStartTrigger)
	if err != nil {
		return nil, buf, err
	}
	if !ok {
		return nil, buf, nil
	}
	r := wire.NewReader(body)
	t, terr := r.Uint8()
	if terr != nil {
		return nil, buf, malformed("ROSpecStartTrigger", "short body")
	}
	st := &ROSpecStartTrigger{Type: ROSpecStartTriggerType(t)}

	rest := r.Remaining()
	periodic, rest, err := decodePeriodicTriggerValue(rest)
	if err != nil {
		return nil, buf, err
	}
	st.PeriodicTriggerValue = periodic

	gpi, rest, err := decodeGPITriggerValue(rest)
	if err != nil {
		return nil, buf, err
	}
	st.GPITriggerValue = gpi

	if len(rest) != 0 {
		return nil, buf, ErrTrailingBytes
	}

	return st, tail, nil
}

// ROSpecStopTriggerType enumerates how an ROSpec transitions back out
// of Active.
type ROSpecStopTriggerType uint8

const (
	StopTriggerNull     ROSpecStopTriggerType = 0
	StopTriggerDuration ROSpecStopTriggerType = 1
	StopTriggerGPI      ROSpecStopTriggerType = 2
)

// ROSpecStopTrigger describes when an ROSpec stops running.
type ROSpecStopTrigger struct {
	Type                 ROSpecStopTriggerType
	DurationTriggerValue uint32
	GPITriggerValue      *GPITriggerValue
}

func (p *ROSpecStopTrigger) Encode() []byte {
	w := wire.NewWriterSize(5)
	w.PutUint8(uint8(p.Type))
	w.PutUint32(p.DurationTriggerValue)
	if p.GPITriggerValue != nil {
		w.PutBytes(p.GPITriggerValue.Encode())
	}
	return writeTLVHeader(TypeROSpecStopTrigger, w.Bytes())
}

func DecodeROSpecStopTrigger(buf []byte) (*ROSpecStopTrigger, []byte, error) {
	body, tail, ok, err := readTLVHeader(buf, TypeROSpecStopTrigger)
	if err != nil {
		return nil, buf, err
	}
	if !ok {
		return nil, buf, nil
	}
	r := wire.NewReader(body)
	t, e1 := r.Uint8()
	dur, e2 := r.Uint32()
	if e1 != nil || e2 != nil {
		return nil, buf, malformed("ROSpecStopTrigger", "short body")
	}
	st := &ROSpecStopTrigger{Type: ROSpecStopTriggerType(t), DurationTriggerValue: dur}

	gpi, rest, err := decodeGPITriggerValue(r.Remaining())
	if err != nil {
		return nil, buf, err
	}
	st.GPITriggerValue = gpi
	if len(rest) != 0 {
		return nil, buf, ErrTrailingBytes
	}
	return st, tail, nil
}

// PeriodicTriggerValue parameterizes a periodic start trigger.
//
// Not exercised by the reference Python client; field layout follows
// the LLRP specification's normative Section 16.2.4.1.1.1.1 directly.
type PeriodicTriggerValue struct {
	Offset   uint32
	Period   uint32
}

func (p *PeriodicTriggerValue) Encode() []byte {
	w := wire.NewWriterSize(8)
	w.PutUint32(p.Offset)
	w.PutUint32(p.Period)
	return writeTLVHeader(TypePeriodicTriggerValue, w.Bytes())
}

func decodePeriodicTriggerValue(buf []byte) (*PeriodicTriggerValue, []byte, error) {
	body, tail, ok, err := readTLVHeader(buf, TypePeriodicTriggerValue)
	if err != nil {
		return nil, buf, err
	}
	if !ok {
		return nil, buf, nil
	}
	r := wire.NewReader(body)
	offset, e1 := r.Uint32()
	period, e2 := r.Uint32()
	if e1 != nil || e2 != nil {
		return nil, buf, malformed("PeriodicTriggerValue", "short body")
	}
	return &PeriodicTriggerValue{Offset: offset, Period: period}, tail, nil
}

// GPITriggerValue parameterizes a GPI-based start/stop trigger.
//
// Not exercised by the reference Python client; field layout follows
// the LLRP specification's normative Section 16.2.4.1.1.1.2 directly.
type GPITriggerValue struct {
	GPIPortNum uint16
	GPIEvent   bool
	Timeout    uint32
}

func (p *GPITriggerValue) Encode() []byte {
	w := wire.NewWriterSize(7)
	w.PutUint16(p.GPIPortNum)
	var b uint8
	if p.GPIEvent {
		b = 1 << 7
	}
	w.PutUint8(b)
	w.PutUint32(p.Timeout)
	return writeTLVHeader(TypeGPITriggerValue, w.Bytes())
}

func decodeGPITriggerValue(buf []byte) (*GPITriggerValue, []byte, error) {
	body, tail, ok, err := readTLVHeader(buf, TypeGPITriggerValue)
	if err != nil {
		return nil, buf, err
	}
	if !ok {
		return nil, buf, nil
	}
	r := wire.NewReader(body)
	port, e1 := r.Uint16()
	flags, e2 := r.Uint8()
	timeout, e3 := r.Uint32()
	if e1 != nil || e2 != nil || e3 != nil {
		return nil, buf, malformed("GPITriggerValue", "short body")
	}
	return &GPITriggerValue{
		GPIPortNum: port,
		GPIEvent:   wire.Bit(flags, 7),
		Timeout:    timeout,
	}, tail, nil
}

// AISpec describes a single antenna-inventory operation: which
// antennas to use, when to stop, and what per-antenna parameters to
// apply.
type AISpec struct {
	AntennaIDs              []uint16
	AISpecStopTrigger       AISpecStopTrigger
	InventoryParameterSpec  []InventoryParameterSpec
}

func (p *AISpec) Encode() []byte {
	w := wire.NewWriterSize(2 + 2*len(p.AntennaIDs))
	w.PutUint16(uint16(len(p.AntennaIDs)))
	for _, id := range p.AntennaIDs {
		w.PutUint16(id)
	}
	w.PutBytes(p.AISpecStopTrigger.Encode())
	for i := range p.InventoryParameterSpec {
		w.PutBytes(p.InventoryParameterSpec[i].Encode())
	}
	return writeTLVHeader(TypeAISpec, w.Bytes())
}

func DecodeAISpec(buf []byte) (*AISpec, []byte, error) {
	body, tail, ok, err := readTLVHeader(buf, TypeAISpec)
	if err != nil {
		return nil, buf, err
	}
	if !ok {
		return nil, buf, nil
	}
	r := wire.NewReader(body)
	count, cerr := r.Uint16()
	if cerr != nil {
		return nil, buf, malformed("AISpec", "short body")
	}
	ids := make([]uint16, 0, count)
	for i := 0; i < int(count); i++ {
		id, err := r.Uint16()
		if err != nil {
			return nil, buf, malformed("AISpec", "antenna ID list overruns body")
		}
		ids = append(ids, id)
	}

	rest := r.Remaining()
	stop, rest, err := decodeAISpecStopTrigger(rest)
	if err != nil {
		return nil, buf, err
	}
	if stop == nil {
		return nil, buf, malformed("AISpec", "missing AISpecStopTrigger")
	}

	var specs []InventoryParameterSpec
	for {
		spec, next, err := decodeInventoryParameterSpec(rest)
		if err != nil {
			return nil, buf, err
		}
		if spec == nil {
			break
		}
		specs = append(specs, *spec)
		rest = next
	}
	if len(specs) == 0 {
		return nil, buf, malformed("AISpec", "missing InventoryParameterSpec")
	}

	if len(rest) != 0 {
		return nil, buf, ErrTrailingBytes
	}

	return &AISpec{AntennaIDs: ids, AISpecStopTrigger: *stop, InventoryParameterSpec: specs}, tail, nil
}

// AISpecStopTriggerType enumerates how an AISpec's antenna-inventory
// operation ends.
type AISpecStopTriggerType uint8

const (
	AIStopTriggerNull              AISpecStopTriggerType = 0
	AIStopTriggerDuration          AISpecStopTriggerType = 1
	AIStopTriggerGPI               AISpecStopTriggerType = 2
	AIStopTriggerTagObservation    AISpecStopTriggerType = 3
)

// AISpecStopTrigger describes when an AISpec's antenna-inventory
// operation ends.
type AISpecStopTrigger struct {
	Type                 AISpecStopTriggerType
	DurationTriggerValue uint32
	GPITriggerValue      *GPITriggerValue
	TagObservationTrigger *TagObservationTrigger
}

func (p *AISpecStopTrigger) Encode() []byte {
	w := wire.NewWriterSize(5)
	w.PutUint8(uint8(p.Type))
	w.PutUint32(p.DurationTriggerValue)
	if p.GPITriggerValue != nil {
		w.PutBytes(p.GPITriggerValue.Encode())
	}
	if p.TagObservationTrigger != nil {
		w.PutBytes(p.TagObservationTrigger.Encode())
	}
	return writeTLVHeader(TypeAISpecStopTrigger, w.Bytes())
}

func decodeAISpecStopTrigger(buf []byte) (*AISpecStopTrigger, []byte, error) {
	body, tail, ok, err := readTLVHeader(buf, TypeAISpecStopTrigger)
	if err != nil {
		return nil, buf, err
	}
	if !ok {
		return nil, buf, nil
	}
	r := wire.NewReader(body)
	t, e1 := r.Uint8()
	dur, e2 := r.Uint32()
	if e1 != nil || e2 != nil {
		return nil, buf, malformed("AISpecStopTrigger", "short body")
	}
	st := &AISpecStopTrigger{Type: AISpecStopTriggerType(t), DurationTriggerValue: dur}

	rest := r.Remaining()
	gpi, rest, err := decodeGPITriggerValue(rest)
	if err != nil {
		return nil, buf, err
	}
	st.GPITriggerValue = gpi

	obs, rest, err := decodeTagObservationTrigger(rest)
	if err != nil {
		return nil, buf, err
	}
	st.TagObservationTrigger = obs

	if len(rest) != 0 {
		return nil, buf, ErrTrailingBytes
	}

	return st, tail, nil
}

// TagObservationTrigger parameterizes an observation-based AISpec stop
// trigger.
//
// Not exercised by the reference Python client; field layout follows
// the LLRP specification's normative Section 16.2.4.2.1.1 directly.
type TagObservationTrigger struct {
	TriggerType   uint8
	NumberOfTags  uint16
	NumberOfAttempts uint16
	T             uint16
	Timeout       uint32
}

func (p *TagObservationTrigger) Encode() []byte {
	w := wire.NewWriterSize(11)
	w.PutUint8(p.TriggerType)
	w.PutUint16(p.NumberOfTags)
	w.PutUint16(p.NumberOfAttempts)
	w.PutUint16(p.T)
	w.PutUint32(p.Timeout)
	return writeTLVHeader(TypeTagObservationTrigger, w.Bytes())
}

func decodeTagObservationTrigger(buf []byte) (*TagObservationTrigger, []byte, error) {
	body, tail, ok, err := readTLVHeader(buf, TypeTagObservationTrigger)
	if err != nil {
		return nil, buf, err
	}
	if !ok {
		return nil, buf, nil
	}
	r := wire.NewReader(body)
	tt, e1 := r.Uint8()
	numTags, e2 := r.Uint16()
	numAttempts, e3 := r.Uint16()
	t, e4 := r.Uint16()
	timeout, e5 := r.Uint32()
	if e1 != nil || e2 != nil || e3 != nil || e4 != nil || e5 != nil {
		return nil, buf, malformed("TagObservationTrigger", "short body")
	}
	return &TagObservationTrigger{
		TriggerType:      tt,
		NumberOfTags:     numTags,
		NumberOfAttempts: numAttempts,
		T:                t,
		Timeout:          timeout,
	}, tail, nil
}

// InventoryParameterSpec binds an air-protocol ID to per-antenna RF
// configuration for one AISpec.
type InventoryParameterSpec struct {
	InventoryParameterSpecID uint16
	ProtocolID               uint8
	AntennaConfiguration     []AntennaConfiguration
}

func (p *InventoryParameterSpec) Encode() []byte {
	w := wire.NewWriterSize(3)
	w.PutUint16(p.InventoryParameterSpecID)
	w.PutUint8(p.ProtocolID)
	for i := range p.AntennaConfiguration {
		w.PutBytes(p.AntennaConfiguration[i].Encode())
	}
	return writeTLVHeader(TypeInventoryParameterSpec, w.Bytes())
}

func decodeInventoryParameterSpec(buf []byte) (*InventoryParameterSpec, []byte, error) {
	body, tail, ok, err := readTLVHeader(buf, TypeInventoryParameterSpec)
	if err != nil {
		return nil, buf, err
	}
	if !ok {
		return nil, buf, nil
	}
	r := wire.NewReader(body)
	id, e1 := r.Uint16()
	proto, e2 := r.Uint8()
	if e1 != nil || e2 != nil {
		return nil, buf, malformed("InventoryParameterSpec", "short body")
	}
	spec := &InventoryParameterSpec{InventoryParameterSpecID: id, ProtocolID: proto}

	rest := r.Remaining()
	for {
		conf, next, err := decodeAntennaConfiguration(rest)
		if err != nil {
			return nil, buf, err
		}
		if conf == nil {
			break
		}
		spec.AntennaConfiguration = append(spec.AntennaConfiguration, *conf)
		rest = next
	}
	if len(rest) != 0 {
		return nil, buf, ErrTrailingBytes
	}
	return spec, tail, nil
}

// AntennaConfiguration carries per-antenna receiver/transmitter tuning
// and, for Gen2 readers, the inventory command to run.
//
// AirProtocolInventoryCommandSettings variants other than
// C1G2InventoryCommand are out of scope, matching the reference Python
// client.
type AntennaConfiguration struct {
	AntennaID             uint16
	RFReceiver            *RFReceiver
	RFTransmitter         *RFTransmitter
	C1G2InventoryCommand  *C1G2InventoryCommand
}

func (p *AntennaConfiguration) Encode() []byte {
	w := wire.NewWriterSize(2)
	w.PutUint16(p.AntennaID)
	if p.RFReceiver != nil {
		w.PutBytes(p.RFReceiver.Encode())
	}
	if p.RFTransmitter != nil {
		w.PutBytes(p.RFTransmitter.Encode())
	}
	if p.C1G2InventoryCommand != nil {
		w.PutBytes(p.C1G2InventoryCommand.Encode())
	}
	return writeTLVHeader(TypeAntennaConfiguration, w.Bytes())
}

// DecodeAntennaConfiguration decodes an AntennaConfiguration TLV
// parameter from the front of buf.
func DecodeAntennaConfiguration(buf []byte) (*AntennaConfiguration, []byte, error) {
	return decodeAntennaConfiguration(buf)
}

func decodeAntennaConfiguration(buf []byte) (*AntennaConfiguration, []byte, error) {
	body, tail, ok, err := readTLVHeader(buf, TypeAntennaConfiguration)
	if err != nil {
		return nil, buf, err
	}
	if !ok {
		return nil, buf, nil
	}
	r := wire.NewReader(body)
	id, e1 := r.Uint16()
	if e1 != nil {
		return nil, buf, malformed("AntennaConfiguration", "short body")
	}
	conf := &AntennaConfiguration{AntennaID: id}

	rest := r.Remaining()
	recv, rest, err := decodeRFReceiver(rest)
	if err != nil {
		return nil, buf, err
	}
	conf.RFReceiver = recv

	xmit, rest, err := decodeRFTransmitter(rest)
	if err != nil {
		return nil, buf, err
	}
	conf.RFTransmitter = xmit

	cmd, rest, err := decodeC1G2InventoryCommand(rest)
	if err != nil {
		return nil, buf, err
	}
	conf.C1G2InventoryCommand = cmd

	if len(rest) != 0 {
		return nil, buf, ErrTrailingBytes
	}

	return conf, tail, nil
}

// RFReceiver names a receiver sensitivity table index.
type RFReceiver struct {
	ReceiverSensitivity uint16
}

func (p *RFReceiver) Encode() []byte {
	w := wire.NewWriterSize(2)
	w.PutUint16(p.ReceiverSensitivity)
	return writeTLVHeader(TypeRFReceiver, w.Bytes())
}

func decodeRFReceiver(buf []byte) (*RFReceiver, []byte, error) {
	body, tail, ok, err := readTLVHeader(buf, TypeRFReceiver)
	if err != nil {
		return nil, buf, err
	}
	if !ok {
		return nil, buf, nil
	}
	r := wire.NewReader(body)
	v, verr := r.Uint16()
	if verr != nil {
		return nil, buf, malformed("RFReceiver", "short body")
	}
	return &RFReceiver{ReceiverSensitivity: v}, tail, nil
}

// RFTransmitter names a hop table / channel / power table triple.
type RFTransmitter struct {
	HopTableID    uint16
	ChannelIndex  uint16
	TransmitPower uint16
}

func (p *RFTransmitter) Encode() []byte {
	w := wire.NewWriterSize(6)
	w.PutUint16(p.HopTableID)
	w.PutUint16(p.ChannelIndex)
	w.PutUint16(p.TransmitPower)
	return writeTLVHeader(TypeRFTransmitter, w.Bytes())
}

func decodeRFTransmitter(buf []byte) (*RFTransmitter, []byte, error) {
	body, tail, ok, err := readTLVHeader(buf, TypeRFTransmitter)
	if err != nil {
		return nil, buf, err
	}
	if !ok {
		return nil, buf, nil
	}
	r := wire.NewReader(body)
	hop, e1 := r.Uint16()
	chan_, e2 := r.Uint16()
	pwr, e3 := r.Uint16()
	if e1 != nil || e2 != nil || e3 != nil {
		return nil, buf, malformed("RFTransmitter", "short body")
	}
	return &RFTransmitter{HopTableID: hop, ChannelIndex: chan_, TransmitPower: pwr}, tail, nil
}

// ROReportTriggerType enumerates what causes an ROSpec to emit a
// RO_ACCESS_REPORT.
type ROReportTriggerType uint8

const (
	ROReportNone                   ROReportTriggerType = 0
	ROReportUponNTagsOrEndOfAISpec ROReportTriggerType = 1
	ROReportUponNTagsOrEndOfROSpec ROReportTriggerType = 2
)

// ROReportSpec describes when and with what content to emit tag
// reports.
type ROReportSpec struct {
	ROReportTrigger          ROReportTriggerType
	N                        uint16
	TagReportContentSelector TagReportContentSelector
}

func (p *ROReportSpec) Encode() []byte {
	w := wire.NewWriterSize(3)
	w.PutUint8(uint8(p.ROReportTrigger))
	w.PutUint16(p.N)
	w.PutBytes(p.TagReportContentSelector.Encode())
	return writeTLVHeader(TypeROReportSpec, w.Bytes())
}

func DecodeROReportSpec(buf []byte) (*ROReportSpec, []byte, error) {
	body, tail, ok, err := readTLVHeader(buf, TypeROReportSpec)
	if err != nil {
		return nil, buf, err
	}
	if !ok {
		return nil, buf, nil
	}
	r := wire.NewReader(body)
	trig, e1 := r.Uint8()
	n, e2 := r.Uint16()
	if e1 != nil || e2 != nil {
		return nil, buf, malformed("ROReportSpec", "short body")
	}
	selector, rest, err := decodeTagReportContentSelector(r.Remaining())
	if err != nil {
		return nil, buf, err
	}
	if selector == nil {
		return nil, buf, malformed("ROReportSpec", "missing TagReportContentSelector")
	}
	if len(rest) != 0 {
		return nil, buf, ErrTrailingBytes
	}
	return &ROReportSpec{
		ROReportTrigger:          ROReportTriggerType(trig),
		N:                        n,
		TagReportContentSelector: *selector,
	}, tail, nil
}

// TagReportContentSelector chooses which optional fields accompany
// each TagReportData.
//
// AirProtocolSpecificEPCMemorySelectorParameter (the trailer present
// when the parameter is longer than 6 bytes) is out of scope, matching
// the reference Python client.
type TagReportContentSelector struct {
	EnableROSpecID                 bool
	EnableSpecIndex                bool
	EnableInventoryParameterSpecID bool
	EnableAntennaID                bool
	EnableChannelIndex             bool
	EnablePeakRSSI                 bool
	EnableFirstSeenTimestamp       bool
	EnableLastSeenTimestamp        bool
	EnableTagSeenCount             bool
	EnableAccessSpecID             bool
}

func (p *TagReportContentSelector) Encode() []byte {
	w := wire.NewWriterSize(2)
	var flags uint16
	set := func(bit uint, v bool) {
		if v {
			flags |= 1 << bit
		}
	}
	set(15, p.EnableROSpecID)
	set(14, p.EnableSpecIndex)
	set(13, p.EnableInventoryParameterSpecID)
	set(12, p.EnableAntennaID)
	set(11, p.EnableChannelIndex)
	set(10, p.EnablePeakRSSI)
	set(9, p.EnableFirstSeenTimestamp)
	set(8, p.EnableLastSeenTimestamp)
	set(7, p.EnableTagSeenCount)
	set(6, p.EnableAccessSpecID)
	w.PutUint16(flags)
	return writeTLVHeader(TypeTagReportContentSelector, w.Bytes())
}

func decodeTagReportContentSelector(buf []byte) (*TagReportContentSelector, []byte, error) {
	body, tail, ok, err := readTLVHeader(buf, TypeTagReportContentSelector)
	if err != nil {
		return nil, buf, err
	}
	if !ok {
		return nil, buf, nil
	}
	if len(body) != 2 {
		return nil, buf, malformed("TagReportContentSelector", "AirProtocolSpecificEPCMemorySelectorParameter not supported")
	}
	r := wire.NewReader(body)
	flags, ferr := r.Uint16()
	if ferr != nil {
		return nil, buf, malformed("TagReportContentSelector", "short body")
	}
	b := byte(flags >> 8)
	lo := byte(flags)
	return &TagReportContentSelector{
		EnableROSpecID:                 wire.Bit(b, 7),
		EnableSpecIndex:                wire.Bit(b, 6),
		EnableInventoryParameterSpecID: wire.Bit(b, 5),
		EnableAntennaID:                wire.Bit(b, 4),
		EnableChannelIndex:             wire.Bit(b, 3),
		EnablePeakRSSI:                 wire.Bit(b, 2),
		EnableFirstSeenTimestamp:       wire.Bit(b, 1),
		EnableLastSeenTimestamp:        wire.Bit(b, 0),
		EnableTagSeenCount:             wire.Bit(lo, 7),
		EnableAccessSpecID:             wire.Bit(lo, 6),
	}, tail, nil
}
