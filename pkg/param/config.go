package param

import "github.com/rfidware/llrp/pkg/wire"

// LLRPConfigurationStateValue reports an opaque token the reader
// changes whenever its configuration changes, so a client can detect
// concurrent reconfiguration (LLRP Specification Section 17.2.6.1).
type LLRPConfigurationStateValue struct {
	Value uint32
}

func (p *LLRPConfigurationStateValue) Encode() []byte {
	w := wire.NewWriterSize(4)
	w.PutUint32(p.Value)
	return writeTLVHeader(TypeLLRPConfigurationStateValue, w.Bytes())
}

// DecodeLLRPConfigurationStateValue decodes an
// LLRPConfigurationStateValue TLV parameter from the front of buf.
func DecodeLLRPConfigurationStateValue(buf []byte) (*LLRPConfigurationStateValue, []byte, error) {
	return decodeLLRPConfigurationStateValue(buf)
}

func decodeLLRPConfigurationStateValue(buf []byte) (*LLRPConfigurationStateValue, []byte, error) {
	body, tail, ok, err := readTLVHeader(buf, TypeLLRPConfigurationStateValue)
	if err != nil {
		return nil, buf, err
	}
	if !ok {
		return nil, buf, nil
	}
	r := wire.NewReader(body)
	v, verr := r.Uint32()
	if verr != nil {
		return nil, buf, malformed("LLRPConfigurationStateValue", "short body")
	}
	return &LLRPConfigurationStateValue{Value: v}, tail, nil
}

// Identification carries the reader's serial number or other
// configured identifier (LLRP Specification Section 17.2.6.2).
type Identification struct {
	IDType   uint8
	ReaderID []byte
}

func (p *Identification) Encode() []byte {
	w := wire.NewWriterSize(3 + len(p.ReaderID))
	w.PutUint8(p.IDType)
	w.PutUint16(uint16(len(p.ReaderID)))
	w.PutBytes(p.ReaderID)
	return writeTLVHeader(TypeIdentification, w.Bytes())
}

// DecodeIdentification decodes an Identification TLV parameter from
// the front of buf.
func DecodeIdentification(buf []byte) (*Identification, []byte, error) {
	return decodeIdentification(buf)
}

func decodeIdentification(buf []byte) (*Identification, []byte, error) {
	body, tail, ok, err := readTLVHeader(buf, TypeIdentification)
	if err != nil {
		return nil, buf, err
	}
	if !ok {
		return nil, buf, nil
	}
	r := wire.NewReader(body)
	idType, e1 := r.Uint8()
	byteCount, e2 := r.Uint16()
	if e1 != nil || e2 != nil {
		return nil, buf, malformed("Identification", "short body")
	}
	readerID, rerr := r.Bytes(int(byteCount))
	if rerr != nil {
		return nil, buf, malformed("Identification", "reader id overruns body")
	}
	return &Identification{IDType: idType, ReaderID: readerID}, tail, nil
}

// GPOWriteData commands a GPO port to a new state (LLRP Specification
// Section 17.2.6.3).
type GPOWriteData struct {
	GPOPortNumber uint16
	GPOData       bool
}

func (p *GPOWriteData) Encode() []byte {
	w := wire.NewWriterSize(3)
	w.PutUint16(p.GPOPortNumber)
	var b uint8
	if p.GPOData {
		b = 1 << 7
	}
	w.PutUint8(b)
	return writeTLVHeader(TypeGPOWriteData, w.Bytes())
}

// DecodeGPOWriteData decodes a GPOWriteData TLV parameter from the
// front of buf.
func DecodeGPOWriteData(buf []byte) (*GPOWriteData, []byte, error) {
	return decodeGPOWriteData(buf)
}

func decodeGPOWriteData(buf []byte) (*GPOWriteData, []byte, error) {
	body, tail, ok, err := readTLVHeader(buf, TypeGPOWriteData)
	if err != nil {
		return nil, buf, err
	}
	if !ok {
		return nil, buf, nil
	}
	r := wire.NewReader(body)
	port, e1 := r.Uint16()
	data, e2 := r.Uint8()
	if e1 != nil || e2 != nil {
		return nil, buf, malformed("GPOWriteData", "short body")
	}
	return &GPOWriteData{GPOPortNumber: port, GPOData: wire.Bit(data, 7)}, tail, nil
}

// KeepaliveSpec configures the reader's KEEPALIVE cadence (LLRP
// Specification Section 17.2.6.4).
type KeepaliveSpec struct {
	KeepaliveTriggerType uint8
	TimeInterval         uint32
}

func (p *KeepaliveSpec) Encode() []byte {
	w := wire.NewWriterSize(5)
	w.PutUint8(p.KeepaliveTriggerType)
	w.PutUint32(p.TimeInterval)
	return writeTLVHeader(TypeKeepaliveSpec, w.Bytes())
}

// DecodeKeepaliveSpec decodes a KeepaliveSpec TLV parameter from the
// front of buf.
func DecodeKeepaliveSpec(buf []byte) (*KeepaliveSpec, []byte, error) {
	return decodeKeepaliveSpec(buf)
}

func decodeKeepaliveSpec(buf []byte) (*KeepaliveSpec, []byte, error) {
	body, tail, ok, err := readTLVHeader(buf, TypeKeepaliveSpec)
	if err != nil {
		return nil, buf, err
	}
	if !ok {
		return nil, buf, nil
	}
	r := wire.NewReader(body)
	trigger, e1 := r.Uint8()
	interval, e2 := r.Uint32()
	if e1 != nil || e2 != nil {
		return nil, buf, malformed("KeepaliveSpec", "short body")
	}
	return &KeepaliveSpec{KeepaliveTriggerType: trigger, TimeInterval: interval}, tail, nil
}

// AntennaProperties reports or sets per-antenna connection state and
// gain (LLRP Specification Section 17.2.6.5).
type AntennaProperties struct {
	Connected   bool
	AntennaID   uint16
	AntennaGain uint16
}

func (p *AntennaProperties) Encode() []byte {
	w := wire.NewWriterSize(5)
	var b uint8
	if p.Connected {
		b = 1 << 7
	}
	w.PutUint8(b)
	w.PutUint16(p.AntennaID)
	w.PutUint16(p.AntennaGain)
	return writeTLVHeader(TypeAntennaProperties, w.Bytes())
}

// DecodeAntennaProperties decodes an AntennaProperties TLV parameter
// from the front of buf.
func DecodeAntennaProperties(buf []byte) (*AntennaProperties, []byte, error) {
	return decodeAntennaProperties(buf)
}

func decodeAntennaProperties(buf []byte) (*AntennaProperties, []byte, error) {
	body, tail, ok, err := readTLVHeader(buf, TypeAntennaProperties)
	if err != nil {
		return nil, buf, err
	}
	if !ok {
		return nil, buf, nil
	}
	r := wire.NewReader(body)
	connByte, e1 := r.Uint8()
	id, e2 := r.Uint16()
	gain, e3 := r.Uint16()
	if e1 != nil || e2 != nil || e3 != nil {
		return nil, buf, malformed("AntennaProperties", "short body")
	}
	return &AntennaProperties{
		Connected:   wire.Bit(connByte, 7),
		AntennaID:   id,
		AntennaGain: gain,
	}, tail, nil
}

// GPIPortCurrentState reports a GPI port's configuration and current
// state (LLRP Specification Section 17.2.6.9).
type GPIPortCurrentState struct {
	GPIPortNum uint16
	GPIConfig  bool
	GPIState   uint8
}

func (p *GPIPortCurrentState) Encode() []byte {
	w := wire.NewWriterSize(4)
	w.PutUint16(p.GPIPortNum)
	var b uint8
	if p.GPIConfig {
		b = 1 << 7
	}
	w.PutUint8(b)
	w.PutUint8(p.GPIState)
	return writeTLVHeader(TypeGPIPortCurrentState, w.Bytes())
}

// DecodeGPIPortCurrentState decodes a GPIPortCurrentState TLV
// parameter from the front of buf.
func DecodeGPIPortCurrentState(buf []byte) (*GPIPortCurrentState, []byte, error) {
	return decodeGPIPortCurrentState(buf)
}

func decodeGPIPortCurrentState(buf []byte) (*GPIPortCurrentState, []byte, error) {
	body, tail, ok, err := readTLVHeader(buf, TypeGPIPortCurrentState)
	if err != nil {
		return nil, buf, err
	}
	if !ok {
		return nil, buf, nil
	}
	r := wire.NewReader(body)
	port, e1 := r.Uint16()
	configByte, e2 := r.Uint8()
	state, e3 := r.Uint8()
	if e1 != nil || e2 != nil || e3 != nil {
		return nil, buf, malformed("GPIPortCurrentState", "short body")
	}
	return &GPIPortCurrentState{
		GPIPortNum: port,
		GPIConfig:  wire.Bit(configByte, 7),
		GPIState:   state,
	}, tail, nil
}

// EventsAndReports configures whether the reader buffers events and
// reports across a lost connection (LLRP Specification Section
// 17.2.6.10).
type EventsAndReports struct {
	HoldEventsAndReportsUponReconnect bool
}

func (p *EventsAndReports) Encode() []byte {
	w := wire.NewWriterSize(1)
	var b uint8
	if p.HoldEventsAndReportsUponReconnect {
		b = 1 << 7
	}
	w.PutUint8(b)
	return writeTLVHeader(TypeEventsAndReports, w.Bytes())
}

// DecodeEventsAndReports decodes an EventsAndReports TLV parameter
// from the front of buf.
func DecodeEventsAndReports(buf []byte) (*EventsAndReports, []byte, error) {
	return decodeEventsAndReports(buf)
}

func decodeEventsAndReports(buf []byte) (*EventsAndReports, []byte, error) {
	body, tail, ok, err := readTLVHeader(buf, TypeEventsAndReports)
	if err != nil {
		return nil, buf, err
	}
	if !ok {
		return nil, buf, nil
	}
	r := wire.NewReader(body)
	b, berr := r.Uint8()
	if berr != nil {
		return nil, buf, malformed("EventsAndReports", "short body")
	}
	return &EventsAndReports{HoldEventsAndReportsUponReconnect: wire.Bit(b, 7)}, tail, nil
}

// EventNotificationState toggles one reader-event type's
// notification on or off (LLRP Specification Section 17.2.7.5.1).
type EventNotificationState struct {
	EventType         uint16
	NotificationState bool
}

func (p *EventNotificationState) Encode() []byte {
	w := wire.NewWriterSize(3)
	w.PutUint16(p.EventType)
	var b uint8
	if p.NotificationState {
		b = 1 << 7
	}
	w.PutUint8(b)
	return writeTLVHeader(TypeEventNotificationState, w.Bytes())
}

func decodeEventNotificationState(buf []byte) (*EventNotificationState, []byte, error) {
	body, tail, ok, err := readTLVHeader(buf, TypeEventNotificationState)
	if err != nil {
		return nil, buf, err
	}
	if !ok {
		return nil, buf, nil
	}
	r := wire.NewReader(body)
	eventType, e1 := r.Uint16()
	stateByte, e2 := r.Uint8()
	if e1 != nil || e2 != nil {
		return nil, buf, malformed("EventNotificationState", "short body")
	}
	return &EventNotificationState{
		EventType:         eventType,
		NotificationState: wire.Bit(stateByte, 7),
	}, tail, nil
}

// ReaderEventNotificationSpec lists which reader-event types the
// client wants to be notified about (LLRP Specification Section
// 17.2.7.5).
type ReaderEventNotificationSpec struct {
	EventNotificationState []EventNotificationState
}

func (p *ReaderEventNotificationSpec) Encode() []byte {
	w := wire.NewWriterSize(0)
	for i := range p.EventNotificationState {
		w.PutBytes(p.EventNotificationState[i].Encode())
	}
	return writeTLVHeader(TypeReaderEventNotificationSpec, w.Bytes())
}

// DecodeReaderEventNotificationSpec decodes a
// ReaderEventNotificationSpec TLV parameter from the front of buf.
func DecodeReaderEventNotificationSpec(buf []byte) (*ReaderEventNotificationSpec, []byte, error) {
	return decodeReaderEventNotificationSpec(buf)
}

func decodeReaderEventNotificationSpec(buf []byte) (*ReaderEventNotificationSpec, []byte, error) {
	body, tail, ok, err := readTLVHeader(buf, TypeReaderEventNotificationSpec)
	if err != nil {
		return nil, buf, err
	}
	if !ok {
		return nil, buf, nil
	}

	spec := &ReaderEventNotificationSpec{}
	rest := body
	for {
		ens, next, err := decodeEventNotificationState(rest)
		if err != nil {
			return nil, buf, err
		}
		if ens == nil {
			break
		}
		spec.EventNotificationState = append(spec.EventNotificationState, *ens)
		rest = next
	}

	if len(rest) != 0 {
		return nil, buf, ErrTrailingBytes
	}

	return spec, tail, nil
}
