package param

import "github.com/rfidware/llrp/pkg/wire"

// C1G2InventoryCommand carries Gen2-specific inventory tuning for one
// antenna (LLRP Specification Section 16.3.1.2.1). Custom parameters
// and non-C1G2 AirProtocolInventoryCommandSettings variants are out of
// scope, matching the reference Python client.
type C1G2InventoryCommand struct {
	TagInventoryStateAware bool
	C1G2Filter             *C1G2Filter
	C1G2RFControl          *C1G2RFControl
	C1G2SingulationControl *C1G2SingulationControl
}

func (p *C1G2InventoryCommand) Encode() []byte {
	w := wire.NewWriterSize(1)
	var b uint8
	if p.TagInventoryStateAware {
		b = 1 << 7
	}
	w.PutUint8(b)
	if p.C1G2Filter != nil {
		w.PutBytes(p.C1G2Filter.Encode())
	}
	if p.C1G2RFControl != nil {
		w.PutBytes(p.C1G2RFControl.Encode())
	}
	if p.C1G2SingulationControl != nil {
		w.PutBytes(p.C1G2SingulationControl.Encode())
	}
	return writeTLVHeader(TypeC1G2InventoryCommand, w.Bytes())
}

func decodeC1G2InventoryCommand(buf []byte) (*C1G2InventoryCommand, []byte, error) {
	body, tail, ok, err := readTLVHeader(buf, TypeC1G2InventoryCommand)
	if err != nil {
		return nil, buf, err
	}
	if !ok {
		return nil, buf, nil
	}
	r := wire.NewReader(body)
	flags, ferr := r.Uint8()
	if ferr != nil {
		return nil, buf, malformed("C1G2InventoryCommand", "short body")
	}
	cmd := &C1G2InventoryCommand{TagInventoryStateAware: wire.Bit(flags, 7)}

	rest := r.Remaining()
	filter, rest, err := decodeC1G2Filter(rest)
	if err != nil {
		return nil, buf, err
	}
	cmd.C1G2Filter = filter

	rf, rest, err := decodeC1G2RFControl(rest)
	if err != nil {
		return nil, buf, err
	}
	cmd.C1G2RFControl = rf

	sing, rest, err := decodeC1G2SingulationControl(rest)
	if err != nil {
		return nil, buf, err
	}
	cmd.C1G2SingulationControl = sing

	if len(rest) != 0 {
		return nil, buf, ErrTrailingBytes
	}

	return cmd, tail, nil
}

// C1G2Filter narrows which tags an inventory command acts on.
//
// The reference Python client never implemented this parameter
// (raises NotImplementedError on encode). This codec implements the
// minimal conformant shape: a truncate action plus an optional tag
// inventory mask.
type C1G2Filter struct {
	TruncateAction       uint8
	C1G2TagInventoryMask *C1G2TagInventoryMask
}

func (p *C1G2Filter) Encode() []byte {
	w := wire.NewWriterSize(1)
	w.PutUint8(p.TruncateAction & 0x07)
	if p.C1G2TagInventoryMask != nil {
		w.PutBytes(p.C1G2TagInventoryMask.Encode())
	}
	return writeTLVHeader(TypeC1G2Filter, w.Bytes())
}

func decodeC1G2Filter(buf []byte) (*C1G2Filter, []byte, error) {
	body, tail, ok, err := readTLVHeader(buf, TypeC1G2Filter)
	if err != nil {
		return nil, buf, err
	}
	if !ok {
		return nil, buf, nil
	}
	r := wire.NewReader(body)
	action, aerr := r.Uint8()
	if aerr != nil {
		return nil, buf, malformed("C1G2Filter", "short body")
	}
	f := &C1G2Filter{TruncateAction: action & 0x07}

	mask, rest, err := decodeC1G2TagInventoryMask(r.Remaining())
	if err != nil {
		return nil, buf, err
	}
	f.C1G2TagInventoryMask = mask

	if len(rest) != 0 {
		return nil, buf, ErrTrailingBytes
	}

	return f, tail, nil
}

// C1G2TagInventoryMask names a memory bank, bit pointer, and mask bits
// against which tags are compared during a filtered inventory.
type C1G2TagInventoryMask struct {
	MB           uint8
	Pointer      uint16
	MaskBitCount uint16
	TagMask      []byte
}

func (p *C1G2TagInventoryMask) Encode() []byte {
	w := wire.NewWriterSize(5 + len(p.TagMask))
	w.PutUint8((p.MB & 0x03) << 6)
	w.PutUint16(p.Pointer)
	w.PutUint16(p.MaskBitCount)
	w.PutBytes(p.TagMask)
	return writeTLVHeader(TypeC1G2TagInventoryMask, w.Bytes())
}

func decodeC1G2TagInventoryMask(buf []byte) (*C1G2TagInventoryMask, []byte, error) {
	body, tail, ok, err := readTLVHeader(buf, TypeC1G2TagInventoryMask)
	if err != nil {
		return nil, buf, err
	}
	if !ok {
		return nil, buf, nil
	}
	r := wire.NewReader(body)
	mbByte, e1 := r.Uint8()
	pointer, e2 := r.Uint16()
	bitCount, e3 := r.Uint16()
	if e1 != nil || e2 != nil || e3 != nil {
		return nil, buf, malformed("C1G2TagInventoryMask", "short body")
	}
	numBytes := wire.PaddedByteLen(int(bitCount))
	mask, merr := r.Bytes(numBytes)
	if merr != nil {
		return nil, buf, malformed("C1G2TagInventoryMask", "mask overruns body")
	}
	return &C1G2TagInventoryMask{
		MB:           (mbByte >> 6) & 0x03,
		Pointer:      pointer,
		MaskBitCount: bitCount,
		TagMask:      mask,
	}, tail, nil
}

// C1G2RFControl selects the RF mode table entry and Tari value used
// for an inventory operation.
type C1G2RFControl struct {
	ModeIndex uint16
	Tari      uint16
}

func (p *C1G2RFControl) Encode() []byte {
	w := wire.NewWriterSize(4)
	w.PutUint16(p.ModeIndex)
	w.PutUint16(p.Tari)
	return writeTLVHeader(TypeC1G2RFControl, w.Bytes())
}

func decodeC1G2RFControl(buf []byte) (*C1G2RFControl, []byte, error) {
	body, tail, ok, err := readTLVHeader(buf, TypeC1G2RFControl)
	if err != nil {
		return nil, buf, err
	}
	if !ok {
		return nil, buf, nil
	}
	r := wire.NewReader(body)
	mode, e1 := r.Uint16()
	tari, e2 := r.Uint16()
	if e1 != nil || e2 != nil {
		return nil, buf, malformed("C1G2RFControl", "short body")
	}
	return &C1G2RFControl{ModeIndex: mode, Tari: tari}, tail, nil
}

// C1G2SingulationControl tunes the Gen2 session and anti-collision
// parameters for an inventory operation.
type C1G2SingulationControl struct {
	Session        uint8
	TagPopulation  uint16
	TagTransitTime uint32
}

func (p *C1G2SingulationControl) Encode() []byte {
	w := wire.NewWriterSize(7)
	w.PutUint8((p.Session & 0x03) << 6)
	w.PutUint16(p.TagPopulation)
	w.PutUint32(p.TagTransitTime)
	return writeTLVHeader(TypeC1G2SingulationControl, w.Bytes())
}

func decodeC1G2SingulationControl(buf []byte) (*C1G2SingulationControl, []byte, error) {
	body, tail, ok, err := readTLVHeader(buf, TypeC1G2SingulationControl)
	if err != nil {
		return nil, buf, err
	}
	if !ok {
		return nil, buf, nil
	}
	r := wire.NewReader(body)
	sessByte, e1 := r.Uint8()
	pop, e2 := r.Uint16()
	transit, e3 := r.Uint32()
	if e1 != nil || e2 != nil || e3 != nil {
		return nil, buf, malformed("C1G2SingulationControl", "short body")
	}
	return &C1G2SingulationControl{
		Session:        (sessByte >> 6) & 0x03,
		TagPopulation:  pop,
		TagTransitTime: transit,
	}, tail, nil
}
