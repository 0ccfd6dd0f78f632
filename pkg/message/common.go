package message

import (
	"github.com/rfidware/llrp/pkg/frame"
	"github.com/rfidware/llrp/pkg/param"
)

// StatusOnlyResponse is the shared body shape for every response
// message that carries nothing but an LLRPStatus (spec.md §4.5): the
// ROSpec and AccessSpec control responses, and KEEPALIVE_ACK's sibling
// CLOSE_CONNECTION_RESPONSE.
type StatusOnlyResponse struct {
	LLRPStatus *param.LLRPStatus
}

func (r *StatusOnlyResponse) encode(msgType uint16, messageID uint32) []byte {
	return frame.Encode(msgType, messageID, r.LLRPStatus.Encode())
}

func decodeStatusOnlyResponse(body []byte) (*StatusOnlyResponse, error) {
	if t, ok := param.PeekTLVType(body); !ok || t != param.TypeLLRPStatus {
		return nil, ErrMissingStatus
	}
	st, tail, err := param.DecodeLLRPStatus(body)
	if err != nil {
		return nil, err
	}
	if len(tail) != 0 {
		return nil, param.ErrTrailingBytes
	}
	return &StatusOnlyResponse{LLRPStatus: st}, nil
}

// idOnlyRequest is the shared body shape for every request message
// that carries nothing but a 32-bit spec ID: DELETE/START/STOP/ENABLE/
// DISABLE for both ROSpec and AccessSpec.
type idOnlyRequest struct {
	ID uint32
}

func encodeIDOnlyRequest(msgType uint16, messageID uint32, id uint32) []byte {
	w := idWriter(id)
	return frame.Encode(msgType, messageID, w)
}

func idWriter(id uint32) []byte {
	b := make([]byte, 4)
	b[0] = byte(id >> 24)
	b[1] = byte(id >> 16)
	b[2] = byte(id >> 8)
	b[3] = byte(id)
	return b
}

func decodeIDOnlyRequest(body []byte) (idOnlyRequest, error) {
	if len(body) != 4 {
		return idOnlyRequest{}, param.ErrTruncated
	}
	id := uint32(body[0])<<24 | uint32(body[1])<<16 | uint32(body[2])<<8 | uint32(body[3])
	return idOnlyRequest{ID: id}, nil
}
