package param

import "github.com/rfidware/llrp/pkg/wire"

// AccessSpec describes a tag-memory access operation bound to one
// antenna and ROSpec (LLRP Specification Section 16.2.5.1).
type AccessSpec struct {
	AccessSpecID       uint32
	AntennaID          uint16
	ProtocolID         uint8
	CurrentState       bool
	ROSpecID           uint32
	AccessSpecStopTrigger AccessSpecStopTrigger
	AccessCommand      AccessCommand
	AccessReportSpec   *AccessReportSpec
}

func (p *AccessSpec) Encode() []byte {
	w := wire.NewWriterSize(12)
	w.PutUint32(p.AccessSpecID)
	w.PutUint16(p.AntennaID)
	w.PutUint8(p.ProtocolID)
	var c uint8
	if p.CurrentState {
		c = 1 << 7
	}
	w.PutUint8(c)
	w.PutUint32(p.ROSpecID)
	w.PutBytes(p.AccessSpecStopTrigger.Encode())
	w.PutBytes(p.AccessCommand.Encode())
	if p.AccessReportSpec != nil {
		w.PutBytes(p.AccessReportSpec.Encode())
	}
	return writeTLVHeader(TypeAccessSpec, w.Bytes())
}

func DecodeAccessSpec(buf []byte) (*AccessSpec, []byte, error) {
	body, tail, ok, err := readTLVHeader(buf, TypeAccessSpec)
	if err != nil {
		return nil, buf, err
	}
	if !ok {
		return nil, buf, malformed("AccessSpec", "type mismatch")
	}
	r := wire.NewReader(body)
	id, e1 := r.Uint32()
	ant, e2 := r.Uint16()
	proto, e3 := r.Uint8()
	cByte, e4 := r.Uint8()
	rospecID, e5 := r.Uint32()
	if e1 != nil || e2 != nil || e3 != nil || e4 != nil || e5 != nil {
		return nil, buf, malformed("AccessSpec", "short body")
	}

	rest := r.Remaining()
	stop, rest, err := decodeAccessSpecStopTrigger(rest)
	if err != nil {
		return nil, buf, err
	}
	if stop == nil {
		return nil, buf, malformed("AccessSpec", "missing AccessSpecStopTrigger")
	}

	cmd, rest, err := decodeAccessCommand(rest)
	if err != nil {
		return nil, buf, err
	}
	if cmd == nil {
		return nil, buf, malformed("AccessSpec", "missing AccessCommand")
	}

	report, rest, err := decodeAccessReportSpec(rest)
	if err != nil {
		return nil, buf, err
	}

	if len(rest) != 0 {
		return nil, buf, ErrTrailingBytes
	}

	return &AccessSpec{
		AccessSpecID:          id,
		AntennaID:             ant,
		ProtocolID:            proto,
		CurrentState:          wire.Bit(cByte, 7),
		ROSpecID:              rospecID,
		AccessSpecStopTrigger: *stop,
		AccessCommand:         *cmd,
		AccessReportSpec:      report,
	}, tail, nil
}

// AccessSpecStopTriggerType enumerates how an AccessSpec's access
// operation ends.
type AccessSpecStopTriggerType uint8

const (
	AccessStopTriggerNull            AccessSpecStopTriggerType = 0
	AccessStopTriggerOperationCount  AccessSpecStopTriggerType = 1
)

// AccessSpecStopTrigger describes when an AccessSpec's access
// operation ends.
type AccessSpecStopTrigger struct {
	Type                 AccessSpecStopTriggerType
	OperationCountValue  uint16
}

func (p *AccessSpecStopTrigger) Encode() []byte {
	w := wire.NewWriterSize(3)
	w.PutUint8(uint8(p.Type))
	w.PutUint16(p.OperationCountValue)
	return writeTLVHeader(TypeAccessSpecStopTrigger, w.Bytes())
}

func decodeAccessSpecStopTrigger(buf []byte) (*AccessSpecStopTrigger, []byte, error) {
	body, tail, ok, err := readTLVHeader(buf, TypeAccessSpecStopTrigger)
	if err != nil {
		return nil, buf, err
	}
	if !ok {
		return nil, buf, nil
	}
	r := wire.NewReader(body)
	t, e1 := r.Uint8()
	count, e2 := r.Uint16()
	if e1 != nil || e2 != nil {
		return nil, buf, malformed("AccessSpecStopTrigger", "short body")
	}
	return &AccessSpecStopTrigger{Type: AccessSpecStopTriggerType(t), OperationCountValue: count}, tail, nil
}

// AccessCommand names the tags to target and the single operation
// (read, write, lock, or block-write) to perform on them.
type AccessCommand struct {
	C1G2TagSpec C1G2TagSpec
	C1G2Read    *C1G2Read
	C1G2Write   *C1G2Write
	C1G2Lock    *C1G2Lock
	C1G2BlockWrite *C1G2BlockWrite
}

func (p *AccessCommand) Encode() []byte {
	w := wire.NewWriterSize(0)
	w.PutBytes(p.C1G2TagSpec.Encode())
	switch {
	case p.C1G2BlockWrite != nil:
		w.PutBytes(p.C1G2BlockWrite.Encode())
	case p.C1G2Write != nil:
		w.PutBytes(p.C1G2Write.Encode())
	case p.C1G2Lock != nil:
		w.PutBytes(p.C1G2Lock.Encode())
	case p.C1G2Read != nil:
		w.PutBytes(p.C1G2Read.Encode())
	}
	return writeTLVHeader(TypeAccessCommand, w.Bytes())
}

func decodeAccessCommand(buf []byte) (*AccessCommand, []byte, error) {
	body, tail, ok, err := readTLVHeader(buf, TypeAccessCommand)
	if err != nil {
		return nil, buf, err
	}
	if !ok {
		return nil, buf, nil
	}
	spec, rest, err := decodeC1G2TagSpec(body)
	if err != nil {
		return nil, buf, err
	}
	if spec == nil {
		return nil, buf, malformed("AccessCommand", "missing C1G2TagSpec")
	}
	cmd := &AccessCommand{C1G2TagSpec: *spec}

	read, rest, err := decodeC1G2Read(rest)
	if err != nil {
		return nil, buf, err
	}
	cmd.C1G2Read = read

	write, rest, err := decodeC1G2Write(rest)
	if err != nil {
		return nil, buf, err
	}
	cmd.C1G2Write = write

	lock, rest, err := decodeC1G2Lock(rest)
	if err != nil {
		return nil, buf, err
	}
	cmd.C1G2Lock = lock

	block, rest, err := decodeC1G2BlockWrite(rest)
	if err != nil {
		return nil, buf, err
	}
	cmd.C1G2BlockWrite = block

	if len(rest) != 0 {
		return nil, buf, ErrTrailingBytes
	}

	return cmd, tail, nil
}

// C1G2TagSpec names one or more target-tag match patterns.
type C1G2TagSpec struct {
	C1G2TargetTag []C1G2TargetTag
}

func (p *C1G2TagSpec) Encode() []byte {
	w := wire.NewWriterSize(0)
	for i := range p.C1G2TargetTag {
		w.PutBytes(p.C1G2TargetTag[i].Encode())
	}
	return writeTLVHeader(TypeC1G2TagSpec, w.Bytes())
}

func decodeC1G2TagSpec(buf []byte) (*C1G2TagSpec, []byte, error) {
	body, tail, ok, err := readTLVHeader(buf, TypeC1G2TagSpec)
	if err != nil {
		return nil, buf, err
	}
	if !ok {
		return nil, buf, nil
	}
	var targets []C1G2TargetTag
	rest := body
	for {
		target, next, err := decodeC1G2TargetTag(rest)
		if err != nil {
			return nil, buf, err
		}
		if target == nil {
			break
		}
		targets = append(targets, *target)
		rest = next
	}
	if len(targets) == 0 {
		return nil, buf, malformed("C1G2TagSpec", "missing C1G2TargetTag")
	}
	if len(rest) != 0 {
		return nil, buf, ErrTrailingBytes
	}
	return &C1G2TagSpec{C1G2TargetTag: targets}, tail, nil
}

// C1G2TargetTag names a memory-bank bit range and match/mismatch mask
// a tag must satisfy to be targeted (LLRP Specification Section
// 16.3.1.3.1.1).
type C1G2TargetTag struct {
	MB           uint8
	Match        bool
	Pointer      uint16
	MaskBitCount uint16
	TagMask      []byte
	DataBitCount uint16
	TagData      []byte
}

func (p *C1G2TargetTag) Encode() []byte {
	w := wire.NewWriterSize(5 + len(p.TagMask) + 2 + len(p.TagData))
	var b uint8 = (p.MB & 0x03) << 6
	if p.Match {
		b |= 1 << 5
	}
	w.PutUint8(b)
	w.PutUint16(p.Pointer)
	w.PutUint16(p.MaskBitCount)
	if p.MaskBitCount > 0 {
		w.PutBytes(p.TagMask)
	}
	w.PutUint16(p.DataBitCount)
	if p.DataBitCount > 0 {
		w.PutBytes(p.TagData)
	}
	return writeTLVHeader(TypeC1G2TargetTag, w.Bytes())
}

func decodeC1G2TargetTag(buf []byte) (*C1G2TargetTag, []byte, error) {
	body, tail, ok, err := readTLVHeader(buf, TypeC1G2TargetTag)
	if err != nil {
		return nil, buf, err
	}
	if !ok {
		return nil, buf, nil
	}
	r := wire.NewReader(body)
	b, e1 := r.Uint8()
	pointer, e2 := r.Uint16()
	maskBits, e3 := r.Uint16()
	if e1 != nil || e2 != nil || e3 != nil {
		return nil, buf, malformed("C1G2TargetTag", "short body")
	}
	var mask []byte
	if maskBits > 0 {
		mask, err = r.Bytes(wire.PaddedByteLen(int(maskBits)))
		if err != nil {
			return nil, buf, malformed("C1G2TargetTag", "tag mask overruns body")
		}
	}
	dataBits, derr := r.Uint16()
	if derr != nil {
		return nil, buf, malformed("C1G2TargetTag", "short body")
	}
	var data []byte
	if dataBits > 0 {
		data, err = r.Bytes(wire.PaddedByteLen(int(dataBits)))
		if err != nil {
			return nil, buf, malformed("C1G2TargetTag", "tag data overruns body")
		}
	}
	return &C1G2TargetTag{
		MB:           (b >> 6) & 0x03,
		Match:        wire.Bit(b, 5),
		Pointer:      pointer,
		MaskBitCount: maskBits,
		TagMask:      mask,
		DataBitCount: dataBits,
		TagData:      data,
	}, tail, nil
}

// C1G2Read names a word range to read from tag memory (LLRP
// Specification Section 16.3.1.3.2.2).
type C1G2Read struct {
	OpSpecID       uint16
	MB             uint8
	WordPtr        uint16
	WordCount      uint16
	AccessPassword uint32
}

func (p *C1G2Read) Encode() []byte {
	w := wire.NewWriterSize(11)
	w.PutUint16(p.OpSpecID)
	w.PutUint32(p.AccessPassword)
	w.PutUint8((p.MB & 0x03) << 6)
	w.PutUint16(p.WordPtr)
	w.PutUint16(p.WordCount)
	return writeTLVHeader(TypeC1G2Read, w.Bytes())
}

func decodeC1G2Read(buf []byte) (*C1G2Read, []byte, error) {
	body, tail, ok, err := readTLVHeader(buf, TypeC1G2Read)
	if err != nil {
		return nil, buf, err
	}
	if !ok {
		return nil, buf, nil
	}
	r := wire.NewReader(body)
	opID, e1 := r.Uint16()
	pwd, e2 := r.Uint32()
	mb, e3 := r.Uint8()
	wordPtr, e4 := r.Uint16()
	wordCount, e5 := r.Uint16()
	if e1 != nil || e2 != nil || e3 != nil || e4 != nil || e5 != nil {
		return nil, buf, malformed("C1G2Read", "short body")
	}
	return &C1G2Read{
		OpSpecID:       opID,
		MB:             (mb >> 6) & 0x03,
		WordPtr:        wordPtr,
		WordCount:      wordCount,
		AccessPassword: pwd,
	}, tail, nil
}

// C1G2Write names a word range to write in tag memory (LLRP
// Specification Section 16.3.1.3.2.3).
//
// The reference Python client's field list drops a comma between
// 'AccessPassword' and 'WriteDataWordCount', fusing them into a single
// bogus field name; its wire encode order is unaffected, but this
// codec keeps every field distinct to avoid the same defect.
type C1G2Write struct {
	OpSpecID           uint16
	MB                 uint8
	WordPtr            uint16
	AccessPassword     uint32
	WriteDataWordCount uint16
	WriteData          []byte
}

func (p *C1G2Write) Encode() []byte {
	w := wire.NewWriterSize(11 + len(p.WriteData))
	w.PutUint16(p.OpSpecID)
	w.PutUint32(p.AccessPassword)
	w.PutUint8((p.MB & 0x03) << 6)
	w.PutUint16(p.WordPtr)
	w.PutUint16(p.WriteDataWordCount)
	w.PutBytes(p.WriteData)
	return writeTLVHeader(TypeC1G2Write, w.Bytes())
}

func decodeC1G2Write(buf []byte) (*C1G2Write, []byte, error) {
	body, tail, ok, err := readTLVHeader(buf, TypeC1G2Write)
	if err != nil {
		return nil, buf, err
	}
	if !ok {
		return nil, buf, nil
	}
	r := wire.NewReader(body)
	opID, e1 := r.Uint16()
	pwd, e2 := r.Uint32()
	mb, e3 := r.Uint8()
	wordPtr, e4 := r.Uint16()
	wordCount, e5 := r.Uint16()
	if e1 != nil || e2 != nil || e3 != nil || e4 != nil || e5 != nil {
		return nil, buf, malformed("C1G2Write", "short body")
	}
	data, derr := r.Bytes(int(wordCount) * 2)
	if derr != nil {
		return nil, buf, malformed("C1G2Write", "write data overruns body")
	}
	return &C1G2Write{
		OpSpecID:           opID,
		MB:                 (mb >> 6) & 0x03,
		WordPtr:            wordPtr,
		AccessPassword:     pwd,
		WriteDataWordCount: wordCount,
		WriteData:          data,
	}, tail, nil
}

// C1G2BlockWrite is wire-identical to C1G2Write, used when more than
// one word is written in a single operation.
type C1G2BlockWrite struct {
	OpSpecID           uint16
	MB                 uint8
	WordPtr            uint16
	AccessPassword     uint32
	WriteDataWordCount uint16
	WriteData          []byte
}

func (p *C1G2BlockWrite) Encode() []byte {
	w := wire.NewWriterSize(11 + len(p.WriteData))
	w.PutUint16(p.OpSpecID)
	w.PutUint32(p.AccessPassword)
	w.PutUint8((p.MB & 0x03) << 6)
	w.PutUint16(p.WordPtr)
	w.PutUint16(p.WriteDataWordCount)
	w.PutBytes(p.WriteData)
	return writeTLVHeader(TypeC1G2BlockWrite, w.Bytes())
}

func decodeC1G2BlockWrite(buf []byte) (*C1G2BlockWrite, []byte, error) {
	body, tail, ok, err := readTLVHeader(buf, TypeC1G2BlockWrite)
	if err != nil {
		return nil, buf, err
	}
	if !ok {
		return nil, buf, nil
	}
	r := wire.NewReader(body)
	opID, e1 := r.Uint16()
	pwd, e2 := r.Uint32()
	mb, e3 := r.Uint8()
	wordPtr, e4 := r.Uint16()
	wordCount, e5 := r.Uint16()
	if e1 != nil || e2 != nil || e3 != nil || e4 != nil || e5 != nil {
		return nil, buf, malformed("C1G2BlockWrite", "short body")
	}
	data, derr := r.Bytes(int(wordCount) * 2)
	if derr != nil {
		return nil, buf, malformed("C1G2BlockWrite", "write data overruns body")
	}
	return &C1G2BlockWrite{
		OpSpecID:           opID,
		MB:                 (mb >> 6) & 0x03,
		WordPtr:            wordPtr,
		AccessPassword:     pwd,
		WriteDataWordCount: wordCount,
		WriteData:          data,
	}, tail, nil
}

// C1G2Lock applies one or more lock payloads to a tag (LLRP
// Specification Section 16.3.1.3.2.5).
type C1G2Lock struct {
	OpSpecID       uint16
	AccessPassword uint32
	LockPayload    []C1G2LockPayload
}

func (p *C1G2Lock) Encode() []byte {
	w := wire.NewWriterSize(6)
	w.PutUint16(p.OpSpecID)
	w.PutUint32(p.AccessPassword)
	for i := range p.LockPayload {
		w.PutBytes(p.LockPayload[i].Encode())
	}
	return writeTLVHeader(TypeC1G2Lock, w.Bytes())
}

func decodeC1G2Lock(buf []byte) (*C1G2Lock, []byte, error) {
	body, tail, ok, err := readTLVHeader(buf, TypeC1G2Lock)
	if err != nil {
		return nil, buf, err
	}
	if !ok {
		return nil, buf, nil
	}
	r := wire.NewReader(body)
	opID, e1 := r.Uint16()
	pwd, e2 := r.Uint32()
	if e1 != nil || e2 != nil {
		return nil, buf, malformed("C1G2Lock", "short body")
	}
	lock := &C1G2Lock{OpSpecID: opID, AccessPassword: pwd}

	rest := r.Remaining()
	for {
		payload, next, err := decodeC1G2LockPayload(rest)
		if err != nil {
			return nil, buf, err
		}
		if payload == nil {
			break
		}
		lock.LockPayload = append(lock.LockPayload, *payload)
		rest = next
	}
	if len(rest) != 0 {
		return nil, buf, ErrTrailingBytes
	}
	return lock, tail, nil
}

// C1G2LockPayload names a single privilege/field pair within a
// C1G2Lock operation.
type C1G2LockPayload struct {
	Privilege uint8
	DataField int8
}

func (p *C1G2LockPayload) Encode() []byte {
	w := wire.NewWriterSize(2)
	w.PutUint8(p.Privilege)
	w.PutInt8(p.DataField)
	return writeTLVHeader(TypeC1G2LockPayload, w.Bytes())
}

func decodeC1G2LockPayload(buf []byte) (*C1G2LockPayload, []byte, error) {
	body, tail, ok, err := readTLVHeader(buf, TypeC1G2LockPayload)
	if err != nil {
		return nil, buf, err
	}
	if !ok {
		return nil, buf, nil
	}
	r := wire.NewReader(body)
	priv, e1 := r.Uint8()
	field, e2 := r.Int8()
	if e1 != nil || e2 != nil {
		return nil, buf, malformed("C1G2LockPayload", "short body")
	}
	return &C1G2LockPayload{Privilege: priv, DataField: field}, tail, nil
}

// AccessReportSpec overrides when an AccessSpec's OpSpecResults are
// reported, independent of the owning ROSpec's ROReportSpec.
type AccessReportSpec struct {
	AccessReportTrigger uint8
}

func (p *AccessReportSpec) Encode() []byte {
	w := wire.NewWriterSize(1)
	w.PutUint8(p.AccessReportTrigger)
	return writeTLVHeader(TypeAccessReportSpec, w.Bytes())
}

// DecodeAccessReportSpec decodes an AccessReportSpec TLV parameter from
// the front of buf.
func DecodeAccessReportSpec(buf []byte) (*AccessReportSpec, []byte, error) {
	return decodeAccessReportSpec(buf)
}

func decodeAccessReportSpec(buf []byte) (*AccessReportSpec, []byte, error) {
	body, tail, ok, err := readTLVHeader(buf, TypeAccessReportSpec)
	if err != nil {
		return nil, buf, err
	}
	if !ok {
		return nil, buf, nil
	}
	r := wire.NewReader(body)
	trig, terr := r.Uint8()
	if terr != nil {
		return nil, buf, malformed("AccessReportSpec", "short body")
	}
	return &AccessReportSpec{AccessReportTrigger: trig}, tail, nil
}
