package param

import "github.com/rfidware/llrp/pkg/wire"

// OpSpecResult is the common header every C1G2*OpSpecResult variant
// shares: an outcome code and the OpSpecID it answers (LLRP
// Specification Section 16.2.7.3.4).
type OpSpecResult struct {
	Result   uint8
	OpSpecID uint16
}

// C1G2ReadOpSpecResult reports the outcome of a C1G2Read operation.
type C1G2ReadOpSpecResult struct {
	OpSpecResult
	ReadData []byte
}

func (p *C1G2ReadOpSpecResult) Encode() []byte {
	w := wire.NewWriterSize(5 + len(p.ReadData))
	w.PutUint8(p.Result)
	w.PutUint16(p.OpSpecID)
	w.PutUint16(uint16(len(p.ReadData) / 2))
	w.PutBytes(p.ReadData)
	return writeTLVHeader(TypeC1G2ReadOpSpecResult, w.Bytes())
}

func decodeC1G2ReadOpSpecResult(buf []byte) (*C1G2ReadOpSpecResult, []byte, error) {
	body, tail, ok, err := readTLVHeader(buf, TypeC1G2ReadOpSpecResult)
	if err != nil {
		return nil, buf, err
	}
	if !ok {
		return nil, buf, nil
	}
	r := wire.NewReader(body)
	result, e1 := r.Uint8()
	opID, e2 := r.Uint16()
	wordCount, e3 := r.Uint16()
	if e1 != nil || e2 != nil || e3 != nil {
		return nil, buf, malformed("C1G2ReadOpSpecResult", "short body")
	}
	data, derr := r.Bytes(int(wordCount) * 2)
	if derr != nil {
		return nil, buf, malformed("C1G2ReadOpSpecResult", "read data overruns body")
	}
	return &C1G2ReadOpSpecResult{
		OpSpecResult: OpSpecResult{Result: result, OpSpecID: opID},
		ReadData:     data,
	}, tail, nil
}

// C1G2WriteOpSpecResult reports the outcome of a C1G2Write operation.
type C1G2WriteOpSpecResult struct {
	OpSpecResult
	NumWordsWritten uint16
}

func (p *C1G2WriteOpSpecResult) Encode() []byte {
	w := wire.NewWriterSize(5)
	w.PutUint8(p.Result)
	w.PutUint16(p.OpSpecID)
	w.PutUint16(p.NumWordsWritten)
	return writeTLVHeader(TypeC1G2WriteOpSpecResult, w.Bytes())
}

func decodeC1G2WriteOpSpecResult(buf []byte) (*C1G2WriteOpSpecResult, []byte, error) {
	body, tail, ok, err := readTLVHeader(buf, TypeC1G2WriteOpSpecResult)
	if err != nil {
		return nil, buf, err
	}
	if !ok {
		return nil, buf, nil
	}
	r := wire.NewReader(body)
	result, e1 := r.Uint8()
	opID, e2 := r.Uint16()
	words, e3 := r.Uint16()
	if e1 != nil || e2 != nil || e3 != nil {
		return nil, buf, malformed("C1G2WriteOpSpecResult", "short body")
	}
	return &C1G2WriteOpSpecResult{
		OpSpecResult:    OpSpecResult{Result: result, OpSpecID: opID},
		NumWordsWritten: words,
	}, tail, nil
}

// C1G2KillOpSpecResult reports the outcome of a kill operation.
type C1G2KillOpSpecResult struct {
	OpSpecResult
}

func (p *C1G2KillOpSpecResult) Encode() []byte {
	w := wire.NewWriterSize(3)
	w.PutUint8(p.Result)
	w.PutUint16(p.OpSpecID)
	return writeTLVHeader(TypeC1G2KillOpSpecResult, w.Bytes())
}

func decodeC1G2KillOpSpecResult(buf []byte) (*C1G2KillOpSpecResult, []byte, error) {
	body, tail, ok, err := readTLVHeader(buf, TypeC1G2KillOpSpecResult)
	if err != nil {
		return nil, buf, err
	}
	if !ok {
		return nil, buf, nil
	}
	r := wire.NewReader(body)
	result, e1 := r.Uint8()
	opID, e2 := r.Uint16()
	if e1 != nil || e2 != nil {
		return nil, buf, malformed("C1G2KillOpSpecResult", "short body")
	}
	return &C1G2KillOpSpecResult{OpSpecResult{Result: result, OpSpecID: opID}}, tail, nil
}

// C1G2RecommissionOpSpecResult reports the outcome of a recommission
// operation.
type C1G2RecommissionOpSpecResult struct {
	OpSpecResult
}

func (p *C1G2RecommissionOpSpecResult) Encode() []byte {
	w := wire.NewWriterSize(3)
	w.PutUint8(p.Result)
	w.PutUint16(p.OpSpecID)
	return writeTLVHeader(TypeC1G2RecommissionOpSpecResult, w.Bytes())
}

func decodeC1G2RecommissionOpSpecResult(buf []byte) (*C1G2RecommissionOpSpecResult, []byte, error) {
	body, tail, ok, err := readTLVHeader(buf, TypeC1G2RecommissionOpSpecResult)
	if err != nil {
		return nil, buf, err
	}
	if !ok {
		return nil, buf, nil
	}
	r := wire.NewReader(body)
	result, e1 := r.Uint8()
	opID, e2 := r.Uint16()
	if e1 != nil || e2 != nil {
		return nil, buf, malformed("C1G2RecommissionOpSpecResult", "short body")
	}
	return &C1G2RecommissionOpSpecResult{OpSpecResult{Result: result, OpSpecID: opID}}, tail, nil
}

// C1G2LockOpSpecResult reports the outcome of a lock operation.
type C1G2LockOpSpecResult struct {
	OpSpecResult
}

func (p *C1G2LockOpSpecResult) Encode() []byte {
	w := wire.NewWriterSize(3)
	w.PutUint8(p.Result)
	w.PutUint16(p.OpSpecID)
	return writeTLVHeader(TypeC1G2LockOpSpecResult, w.Bytes())
}

func decodeC1G2LockOpSpecResult(buf []byte) (*C1G2LockOpSpecResult, []byte, error) {
	body, tail, ok, err := readTLVHeader(buf, TypeC1G2LockOpSpecResult)
	if err != nil {
		return nil, buf, err
	}
	if !ok {
		return nil, buf, nil
	}
	r := wire.NewReader(body)
	result, e1 := r.Uint8()
	opID, e2 := r.Uint16()
	if e1 != nil || e2 != nil {
		return nil, buf, malformed("C1G2LockOpSpecResult", "short body")
	}
	return &C1G2LockOpSpecResult{OpSpecResult{Result: result, OpSpecID: opID}}, tail, nil
}

// C1G2BlockEraseOpSpecResult reports the outcome of a block-erase
// operation.
type C1G2BlockEraseOpSpecResult struct {
	OpSpecResult
}

func (p *C1G2BlockEraseOpSpecResult) Encode() []byte {
	w := wire.NewWriterSize(3)
	w.PutUint8(p.Result)
	w.PutUint16(p.OpSpecID)
	return writeTLVHeader(TypeC1G2BlockEraseOpSpecResult, w.Bytes())
}

func decodeC1G2BlockEraseOpSpecResult(buf []byte) (*C1G2BlockEraseOpSpecResult, []byte, error) {
	body, tail, ok, err := readTLVHeader(buf, TypeC1G2BlockEraseOpSpecResult)
	if err != nil {
		return nil, buf, err
	}
	if !ok {
		return nil, buf, nil
	}
	r := wire.NewReader(body)
	result, e1 := r.Uint8()
	opID, e2 := r.Uint16()
	if e1 != nil || e2 != nil {
		return nil, buf, malformed("C1G2BlockEraseOpSpecResult", "short body")
	}
	return &C1G2BlockEraseOpSpecResult{OpSpecResult{Result: result, OpSpecID: opID}}, tail, nil
}

// C1G2BlockWriteOpSpecResult reports the outcome of a block-write
// operation.
type C1G2BlockWriteOpSpecResult struct {
	OpSpecResult
	NumWordsWritten uint16
}

func (p *C1G2BlockWriteOpSpecResult) Encode() []byte {
	w := wire.NewWriterSize(5)
	w.PutUint8(p.Result)
	w.PutUint16(p.OpSpecID)
	w.PutUint16(p.NumWordsWritten)
	return writeTLVHeader(TypeC1G2BlockWriteOpSpecResult, w.Bytes())
}

func decodeC1G2BlockWriteOpSpecResult(buf []byte) (*C1G2BlockWriteOpSpecResult, []byte, error) {
	body, tail, ok, err := readTLVHeader(buf, TypeC1G2BlockWriteOpSpecResult)
	if err != nil {
		return nil, buf, err
	}
	if !ok {
		return nil, buf, nil
	}
	r := wire.NewReader(body)
	result, e1 := r.Uint8()
	opID, e2 := r.Uint16()
	words, e3 := r.Uint16()
	if e1 != nil || e2 != nil || e3 != nil {
		return nil, buf, malformed("C1G2BlockWriteOpSpecResult", "short body")
	}
	return &C1G2BlockWriteOpSpecResult{
		OpSpecResult:    OpSpecResult{Result: result, OpSpecID: opID},
		NumWordsWritten: words,
	}, tail, nil
}

// C1G2BlockPermalockOpSpecResult reports the outcome of a
// block-permalock operation.
type C1G2BlockPermalockOpSpecResult struct {
	OpSpecResult
}

func (p *C1G2BlockPermalockOpSpecResult) Encode() []byte {
	w := wire.NewWriterSize(3)
	w.PutUint8(p.Result)
	w.PutUint16(p.OpSpecID)
	return writeTLVHeader(TypeC1G2BlockPermalockOpSpecResult, w.Bytes())
}

func decodeC1G2BlockPermalockOpSpecResult(buf []byte) (*C1G2BlockPermalockOpSpecResult, []byte, error) {
	body, tail, ok, err := readTLVHeader(buf, TypeC1G2BlockPermalockOpSpecResult)
	if err != nil {
		return nil, buf, err
	}
	if !ok {
		return nil, buf, nil
	}
	r := wire.NewReader(body)
	result, e1 := r.Uint8()
	opID, e2 := r.Uint16()
	if e1 != nil || e2 != nil {
		return nil, buf, malformed("C1G2BlockPermalockOpSpecResult", "short body")
	}
	return &C1G2BlockPermalockOpSpecResult{OpSpecResult{Result: result, OpSpecID: opID}}, tail, nil
}

// C1G2GetBlockPermalockStatusOpSpecResult reports the permalock status
// bitmask queried from tag memory.
type C1G2GetBlockPermalockStatusOpSpecResult struct {
	OpSpecResult
	PermalockStatus []byte
}

func (p *C1G2GetBlockPermalockStatusOpSpecResult) Encode() []byte {
	w := wire.NewWriterSize(5 + len(p.PermalockStatus))
	w.PutUint8(p.Result)
	w.PutUint16(p.OpSpecID)
	w.PutUint16(uint16(len(p.PermalockStatus) / 2))
	w.PutBytes(p.PermalockStatus)
	return writeTLVHeader(TypeC1G2GetBlockPermalockStatusResult, w.Bytes())
}

func decodeC1G2GetBlockPermalockStatusOpSpecResult(buf []byte) (*C1G2GetBlockPermalockStatusOpSpecResult, []byte, error) {
	body, tail, ok, err := readTLVHeader(buf, TypeC1G2GetBlockPermalockStatusResult)
	if err != nil {
		return nil, buf, err
	}
	if !ok {
		return nil, buf, nil
	}
	r := wire.NewReader(body)
	result, e1 := r.Uint8()
	opID, e2 := r.Uint16()
	wordCount, e3 := r.Uint16()
	if e1 != nil || e2 != nil || e3 != nil {
		return nil, buf, malformed("C1G2GetBlockPermalockStatusOpSpecResult", "short body")
	}
	status, serr := r.Bytes(int(wordCount) * 2)
	if serr != nil {
		return nil, buf, malformed("C1G2GetBlockPermalockStatusOpSpecResult", "status overruns body")
	}
	return &C1G2GetBlockPermalockStatusOpSpecResult{
		OpSpecResult:    OpSpecResult{Result: result, OpSpecID: opID},
		PermalockStatus: status,
	}, tail, nil
}

// decodeOpSpecResult tries each C1G2*OpSpecResult variant in turn and
// returns whichever one matches the next parameter's type, following
// the non-consuming probe discipline.
func decodeOpSpecResult(buf []byte) (result any, tail []byte, err error) {
	if v, next, err := decodeC1G2ReadOpSpecResult(buf); err != nil {
		return nil, buf, err
	} else if v != nil {
		return v, next, nil
	}
	if v, next, err := decodeC1G2WriteOpSpecResult(buf); err != nil {
		return nil, buf, err
	} else if v != nil {
		return v, next, nil
	}
	if v, next, err := decodeC1G2KillOpSpecResult(buf); err != nil {
		return nil, buf, err
	} else if v != nil {
		return v, next, nil
	}
	if v, next, err := decodeC1G2RecommissionOpSpecResult(buf); err != nil {
		return nil, buf, err
	} else if v != nil {
		return v, next, nil
	}
	if v, next, err := decodeC1G2LockOpSpecResult(buf); err != nil {
		return nil, buf, err
	} else if v != nil {
		return v, next, nil
	}
	if v, next, err := decodeC1G2BlockEraseOpSpecResult(buf); err != nil {
		return nil, buf, err
	} else if v != nil {
		return v, next, nil
	}
	if v, next, err := decodeC1G2BlockWriteOpSpecResult(buf); err != nil {
		return nil, buf, err
	} else if v != nil {
		return v, next, nil
	}
	if v, next, err := decodeC1G2BlockPermalockOpSpecResult(buf); err != nil {
		return nil, buf, err
	} else if v != nil {
		return v, next, nil
	}
	if v, next, err := decodeC1G2GetBlockPermalockStatusOpSpecResult(buf); err != nil {
		return nil, buf, err
	} else if v != nil {
		return v, next, nil
	}
	return nil, buf, nil
}
