package param

import "github.com/rfidware/llrp/pkg/wire"

// ReaderEventNotificationData carries a reader-generated event: a
// mandatory timestamp plus exactly the sub-event parameters that
// occurred (LLRP Specification Section 16.2.7.6).
//
// Exactly one of UTCTimestamp/Uptime must be present; the reference
// Python client accepted either but this codec enforces it strictly,
// along with strict trailing-byte rejection once every recognized
// sub-event has been consumed (spec.md §4.4's deliberate fix).
type ReaderEventNotificationData struct {
	UTCTimestamp *UTCTimestamp
	Uptime       *Uptime

	HoppingEvent                   *HoppingEvent
	GPIEvent                       *GPIEvent
	ROSpecEvent                    *ROSpecEvent
	ReportBufferLevelWarningEvent  *ReportBufferLevelWarningEvent
	ReportBufferOverflowErrorEvent *ReportBufferOverflowErrorEvent
	ReaderExceptionEvent           *ReaderExceptionEvent
	RFSurveyEvent                  *RFSurveyEvent
	AISpecEvent                    *AISpecEvent
	AntennaEvent                   *AntennaEvent
	ConnectionAttemptEvent         *ConnectionAttemptEvent
	ConnectionCloseEvent           *ConnectionCloseEvent
}

func (p *ReaderEventNotificationData) Encode() []byte {
	w := wire.NewWriterSize(0)
	switch {
	case p.UTCTimestamp != nil:
		w.PutBytes(p.UTCTimestamp.Encode())
	case p.Uptime != nil:
		w.PutBytes(p.Uptime.Encode())
	}
	if p.HoppingEvent != nil {
		w.PutBytes(p.HoppingEvent.Encode())
	}
	if p.GPIEvent != nil {
		w.PutBytes(p.GPIEvent.Encode())
	}
	if p.ROSpecEvent != nil {
		w.PutBytes(p.ROSpecEvent.Encode())
	}
	if p.ReportBufferLevelWarningEvent != nil {
		w.PutBytes(p.ReportBufferLevelWarningEvent.Encode())
	}
	if p.ReportBufferOverflowErrorEvent != nil {
		w.PutBytes(p.ReportBufferOverflowErrorEvent.Encode())
	}
	if p.ReaderExceptionEvent != nil {
		w.PutBytes(p.ReaderExceptionEvent.Encode())
	}
	if p.RFSurveyEvent != nil {
		w.PutBytes(p.RFSurveyEvent.Encode())
	}
	if p.AISpecEvent != nil {
		w.PutBytes(p.AISpecEvent.Encode())
	}
	if p.AntennaEvent != nil {
		w.PutBytes(p.AntennaEvent.Encode())
	}
	if p.ConnectionAttemptEvent != nil {
		w.PutBytes(p.ConnectionAttemptEvent.Encode())
	}
	if p.ConnectionCloseEvent != nil {
		w.PutBytes(p.ConnectionCloseEvent.Encode())
	}
	return writeTLVHeader(TypeReaderEventNotificationData, w.Bytes())
}

// DecodeReaderEventNotificationData decodes a
// ReaderEventNotificationData TLV parameter from the front of buf.
func DecodeReaderEventNotificationData(buf []byte) (*ReaderEventNotificationData, []byte, error) {
	body, tail, ok, err := readTLVHeader(buf, TypeReaderEventNotificationData)
	if err != nil {
		return nil, buf, err
	}
	if !ok {
		return nil, buf, malformed("ReaderEventNotificationData", "type mismatch")
	}

	d := &ReaderEventNotificationData{}
	rest := body

	utc, next, ok, err := DecodeUTCTimestamp(rest)
	if err != nil {
		return nil, buf, err
	}
	if ok {
		d.UTCTimestamp = utc
		rest = next
	} else {
		uptime, next, ok, err := DecodeUptime(rest)
		if err != nil {
			return nil, buf, err
		}
		if !ok {
			return nil, buf, ErrMissingTimestamp
		}
		d.Uptime = uptime
		rest = next
	}

	hop, rest, err := decodeHoppingEvent(rest)
	if err != nil {
		return nil, buf, err
	}
	d.HoppingEvent = hop

	gpi, rest, err := decodeGPIEvent(rest)
	if err != nil {
		return nil, buf, err
	}
	d.GPIEvent = gpi

	ro, rest, err := decodeROSpecEvent(rest)
	if err != nil {
		return nil, buf, err
	}
	d.ROSpecEvent = ro

	warn, rest, err := decodeReportBufferLevelWarningEvent(rest)
	if err != nil {
		return nil, buf, err
	}
	d.ReportBufferLevelWarningEvent = warn

	overflow, rest, err := decodeReportBufferOverflowErrorEvent(rest)
	if err != nil {
		return nil, buf, err
	}
	d.ReportBufferOverflowErrorEvent = overflow

	exc, rest, err := decodeReaderExceptionEvent(rest)
	if err != nil {
		return nil, buf, err
	}
	d.ReaderExceptionEvent = exc

	survey, rest, err := decodeRFSurveyEvent(rest)
	if err != nil {
		return nil, buf, err
	}
	d.RFSurveyEvent = survey

	ai, rest, err := decodeAISpecEvent(rest)
	if err != nil {
		return nil, buf, err
	}
	d.AISpecEvent = ai

	ant, rest, err := decodeAntennaEvent(rest)
	if err != nil {
		return nil, buf, err
	}
	d.AntennaEvent = ant

	conn, rest, err := decodeConnectionAttemptEvent(rest)
	if err != nil {
		return nil, buf, err
	}
	d.ConnectionAttemptEvent = conn

	closeEv, rest, err := decodeConnectionCloseEvent(rest)
	if err != nil {
		return nil, buf, err
	}
	d.ConnectionCloseEvent = closeEv

	if len(rest) != 0 {
		return nil, buf, ErrTrailingBytes
	}

	return d, tail, nil
}

// HoppingEvent reports a change of frequency hop table.
//
// Not exercised by the reference Python client, which never decoded
// this sub-event; field layout is a best-effort reading of the LLRP
// specification's normative Section 16.2.7.6.1.
type HoppingEvent struct {
	HopTableID       uint16
	NextChannelIndex uint16
}

func (p *HoppingEvent) Encode() []byte {
	w := wire.NewWriterSize(4)
	w.PutUint16(p.HopTableID)
	w.PutUint16(p.NextChannelIndex)
	return writeTLVHeader(TypeHoppingEvent, w.Bytes())
}

func decodeHoppingEvent(buf []byte) (*HoppingEvent, []byte, error) {
	body, tail, ok, err := readTLVHeader(buf, TypeHoppingEvent)
	if err != nil {
		return nil, buf, err
	}
	if !ok {
		return nil, buf, nil
	}
	r := wire.NewReader(body)
	id, e1 := r.Uint16()
	next, e2 := r.Uint16()
	if e1 != nil || e2 != nil {
		return nil, buf, malformed("HoppingEvent", "short body")
	}
	return &HoppingEvent{HopTableID: id, NextChannelIndex: next}, tail, nil
}

// GPIEvent reports a change of state on a GPI port.
//
// Not exercised by the reference Python client; best-effort per the
// LLRP specification's normative Section 16.2.7.6.2.
type GPIEvent struct {
	GPIPortNumber uint16
	GPIEvent      bool
}

func (p *GPIEvent) Encode() []byte {
	w := wire.NewWriterSize(3)
	w.PutUint16(p.GPIPortNumber)
	var b uint8
	if p.GPIEvent {
		b = 1 << 7
	}
	w.PutUint8(b)
	return writeTLVHeader(TypeGPIEvent, w.Bytes())
}

func decodeGPIEvent(buf []byte) (*GPIEvent, []byte, error) {
	body, tail, ok, err := readTLVHeader(buf, TypeGPIEvent)
	if err != nil {
		return nil, buf, err
	}
	if !ok {
		return nil, buf, nil
	}
	r := wire.NewReader(body)
	port, e1 := r.Uint16()
	flags, e2 := r.Uint8()
	if e1 != nil || e2 != nil {
		return nil, buf, malformed("GPIEvent", "short body")
	}
	return &GPIEvent{GPIPortNumber: port, GPIEvent: wire.Bit(flags, 7)}, tail, nil
}

// ROSpecEvent reports an ROSpec lifecycle transition.
//
// Not exercised by the reference Python client; best-effort per the
// LLRP specification's normative Section 16.2.7.6.3.
type ROSpecEvent struct {
	EventType          uint8
	ROSpecID           uint32
	PreemptingROSpecID uint32
}

func (p *ROSpecEvent) Encode() []byte {
	w := wire.NewWriterSize(9)
	w.PutUint8(p.EventType)
	w.PutUint32(p.ROSpecID)
	w.PutUint32(p.PreemptingROSpecID)
	return writeTLVHeader(TypeROSpecEvent, w.Bytes())
}

func decodeROSpecEvent(buf []byte) (*ROSpecEvent, []byte, error) {
	body, tail, ok, err := readTLVHeader(buf, TypeROSpecEvent)
	if err != nil {
		return nil, buf, err
	}
	if !ok {
		return nil, buf, nil
	}
	r := wire.NewReader(body)
	t, e1 := r.Uint8()
	id, e2 := r.Uint32()
	preempting, e3 := r.Uint32()
	if e1 != nil || e2 != nil || e3 != nil {
		return nil, buf, malformed("ROSpecEvent", "short body")
	}
	return &ROSpecEvent{EventType: t, ROSpecID: id, PreemptingROSpecID: preempting}, tail, nil
}

// ReportBufferLevelWarningEvent reports that the reader's report
// buffer has crossed a fill-level threshold.
//
// Not exercised by the reference Python client; best-effort per the
// LLRP specification's normative Section 16.2.7.6.4.
type ReportBufferLevelWarningEvent struct {
	ReportBufferPercentageFull uint8
}

func (p *ReportBufferLevelWarningEvent) Encode() []byte {
	w := wire.NewWriterSize(1)
	w.PutUint8(p.ReportBufferPercentageFull)
	return writeTLVHeader(TypeReportBufferLevelWarningEvent, w.Bytes())
}

func decodeReportBufferLevelWarningEvent(buf []byte) (*ReportBufferLevelWarningEvent, []byte, error) {
	body, tail, ok, err := readTLVHeader(buf, TypeReportBufferLevelWarningEvent)
	if err != nil {
		return nil, buf, err
	}
	if !ok {
		return nil, buf, nil
	}
	r := wire.NewReader(body)
	pct, perr := r.Uint8()
	if perr != nil {
		return nil, buf, malformed("ReportBufferLevelWarningEvent", "short body")
	}
	return &ReportBufferLevelWarningEvent{ReportBufferPercentageFull: pct}, tail, nil
}

// ReportBufferOverflowErrorEvent reports that the reader's report
// buffer overflowed and data was lost. It carries no fields.
type ReportBufferOverflowErrorEvent struct{}

func (p *ReportBufferOverflowErrorEvent) Encode() []byte {
	return writeTLVHeader(TypeReportBufferOverflowErrorEvent, nil)
}

func decodeReportBufferOverflowErrorEvent(buf []byte) (*ReportBufferOverflowErrorEvent, []byte, error) {
	_, tail, ok, err := readTLVHeader(buf, TypeReportBufferOverflowErrorEvent)
	if err != nil {
		return nil, buf, err
	}
	if !ok {
		return nil, buf, nil
	}
	return &ReportBufferOverflowErrorEvent{}, tail, nil
}

// ReaderExceptionEvent carries a human-readable description of a
// reader-internal fault.
//
// Not exercised by the reference Python client; best-effort per the
// LLRP specification's normative Section 16.2.7.6.5.
type ReaderExceptionEvent struct {
	Message string
}

func (p *ReaderExceptionEvent) Encode() []byte {
	w := wire.NewWriterSize(2 + len(p.Message))
	w.PutUint16(uint16(len(p.Message)))
	w.PutBytes([]byte(p.Message))
	return writeTLVHeader(TypeReaderExceptionEvent, w.Bytes())
}

func decodeReaderExceptionEvent(buf []byte) (*ReaderExceptionEvent, []byte, error) {
	body, tail, ok, err := readTLVHeader(buf, TypeReaderExceptionEvent)
	if err != nil {
		return nil, buf, err
	}
	if !ok {
		return nil, buf, nil
	}
	r := wire.NewReader(body)
	msgLen, lerr := r.Uint16()
	if lerr != nil {
		return nil, buf, malformed("ReaderExceptionEvent", "short body")
	}
	msg, merr := r.Bytes(int(msgLen))
	if merr != nil {
		return nil, buf, malformed("ReaderExceptionEvent", "message overruns body")
	}
	return &ReaderExceptionEvent{Message: string(msg)}, tail, nil
}

// RFSurveyEvent reports the start or end of an RF survey operation.
//
// Not exercised by the reference Python client; best-effort per the
// LLRP specification's normative Section 16.2.7.6.6.
type RFSurveyEvent struct {
	EventType uint8
	ROSpecID  uint32
	SpecIndex uint16
}

func (p *RFSurveyEvent) Encode() []byte {
	w := wire.NewWriterSize(7)
	w.PutUint8(p.EventType)
	w.PutUint32(p.ROSpecID)
	w.PutUint16(p.SpecIndex)
	return writeTLVHeader(TypeRFSurveyEvent, w.Bytes())
}

func decodeRFSurveyEvent(buf []byte) (*RFSurveyEvent, []byte, error) {
	body, tail, ok, err := readTLVHeader(buf, TypeRFSurveyEvent)
	if err != nil {
		return nil, buf, err
	}
	if !ok {
		return nil, buf, nil
	}
	r := wire.NewReader(body)
	t, e1 := r.Uint8()
	id, e2 := r.Uint32()
	idx, e3 := r.Uint16()
	if e1 != nil || e2 != nil || e3 != nil {
		return nil, buf, malformed("RFSurveyEvent", "short body")
	}
	return &RFSurveyEvent{EventType: t, ROSpecID: id, SpecIndex: idx}, tail, nil
}

// AISpecEvent reports the end of an AISpec's antenna-inventory
// operation.
//
// Not exercised by the reference Python client; best-effort per the
// LLRP specification's normative Section 16.2.7.6.7.
type AISpecEvent struct {
	EventType uint8
	ROSpecID  uint32
	SpecIndex uint16
}

func (p *AISpecEvent) Encode() []byte {
	w := wire.NewWriterSize(7)
	w.PutUint8(p.EventType)
	w.PutUint32(p.ROSpecID)
	w.PutUint16(p.SpecIndex)
	return writeTLVHeader(TypeAISpecEvent, w.Bytes())
}

func decodeAISpecEvent(buf []byte) (*AISpecEvent, []byte, error) {
	body, tail, ok, err := readTLVHeader(buf, TypeAISpecEvent)
	if err != nil {
		return nil, buf, err
	}
	if !ok {
		return nil, buf, nil
	}
	r := wire.NewReader(body)
	t, e1 := r.Uint8()
	id, e2 := r.Uint32()
	idx, e3 := r.Uint16()
	if e1 != nil || e2 != nil || e3 != nil {
		return nil, buf, malformed("AISpecEvent", "short body")
	}
	return &AISpecEvent{EventType: t, ROSpecID: id, SpecIndex: idx}, tail, nil
}

// AntennaEvent reports an antenna connecting or disconnecting.
type AntennaEvent struct {
	Connected bool
	AntennaID uint16
}

func (p *AntennaEvent) Encode() []byte {
	w := wire.NewWriterSize(3)
	var t uint8
	if p.Connected {
		t = 1
	}
	w.PutUint8(t)
	w.PutUint16(p.AntennaID)
	return writeTLVHeader(TypeAntennaEvent, w.Bytes())
}

func decodeAntennaEvent(buf []byte) (*AntennaEvent, []byte, error) {
	body, tail, ok, err := readTLVHeader(buf, TypeAntennaEvent)
	if err != nil {
		return nil, buf, err
	}
	if !ok {
		return nil, buf, nil
	}
	r := wire.NewReader(body)
	t, e1 := r.Uint8()
	id, e2 := r.Uint16()
	if e1 != nil || e2 != nil {
		return nil, buf, malformed("AntennaEvent", "short body")
	}
	return &AntennaEvent{Connected: t != 0, AntennaID: id}, tail, nil
}

// ConnectionAttemptEventStatus enumerates the outcome of a client's
// connection attempt.
type ConnectionAttemptEventStatus uint16

const (
	ConnSuccess                                       ConnectionAttemptEventStatus = 0
	ConnFailedAReaderInitiatedConnectionAlreadyExists ConnectionAttemptEventStatus = 1
	ConnFailedAClientInitiatedConnectionAlreadyExists ConnectionAttemptEventStatus = 2
	ConnFailedReasonUnknown                           ConnectionAttemptEventStatus = 3
	ConnAnotherConnectionAttempted                     ConnectionAttemptEventStatus = 4
)

// ConnectionAttemptEvent reports whether a new connection was
// accepted.
type ConnectionAttemptEvent struct {
	Status ConnectionAttemptEventStatus
}

func (p *ConnectionAttemptEvent) Encode() []byte {
	w := wire.NewWriterSize(2)
	w.PutUint16(uint16(p.Status))
	return writeTLVHeader(TypeConnectionAttemptEvent, w.Bytes())
}

func decodeConnectionAttemptEvent(buf []byte) (*ConnectionAttemptEvent, []byte, error) {
	body, tail, ok, err := readTLVHeader(buf, TypeConnectionAttemptEvent)
	if err != nil {
		return nil, buf, err
	}
	if !ok {
		return nil, buf, nil
	}
	r := wire.NewReader(body)
	status, serr := r.Uint16()
	if serr != nil {
		return nil, buf, malformed("ConnectionAttemptEvent", "short body")
	}
	return &ConnectionAttemptEvent{Status: ConnectionAttemptEventStatus(status)}, tail, nil
}

// ConnectionCloseEvent reports that the reader is closing the
// connection. It carries no fields.
type ConnectionCloseEvent struct{}

func (p *ConnectionCloseEvent) Encode() []byte {
	return writeTLVHeader(TypeConnectionCloseEvent, nil)
}

func decodeConnectionCloseEvent(buf []byte) (*ConnectionCloseEvent, []byte, error) {
	_, tail, ok, err := readTLVHeader(buf, TypeConnectionCloseEvent)
	if err != nil {
		return nil, buf, err
	}
	if !ok {
		return nil, buf, nil
	}
	return &ConnectionCloseEvent{}, tail, nil
}
