package message

import (
	"github.com/rfidware/llrp/pkg/frame"
	"github.com/rfidware/llrp/pkg/param"
)

// AddAccessSpecRequest installs a new AccessSpec on the reader (LLRP
// Specification Section 17.1.25).
type AddAccessSpecRequest struct {
	AccessSpec *param.AccessSpec
}

func (m *AddAccessSpecRequest) Encode(messageID uint32) []byte {
	return frame.Encode(param.MsgAddAccessSpec, messageID, m.AccessSpec.Encode())
}

func DecodeAddAccessSpecRequest(body []byte) (*AddAccessSpecRequest, error) {
	spec, tail, err := param.DecodeAccessSpec(body)
	if err != nil {
		return nil, err
	}
	if len(tail) != 0 {
		return nil, param.ErrTrailingBytes
	}
	return &AddAccessSpecRequest{AccessSpec: spec}, nil
}

type AddAccessSpecResponse struct{ StatusOnlyResponse }

func (m *AddAccessSpecResponse) Encode(messageID uint32) []byte {
	return m.encode(param.MsgAddAccessSpecResponse, messageID)
}

func DecodeAddAccessSpecResponse(body []byte) (*AddAccessSpecResponse, error) {
	s, err := decodeStatusOnlyResponse(body)
	if err != nil {
		return nil, err
	}
	return &AddAccessSpecResponse{StatusOnlyResponse: *s}, nil
}

// DELETE/ENABLE/DISABLE AccessSpec each carry nothing but the target
// AccessSpecID (LLRP Specification Sections 17.1.26-17.1.28). An
// AccessSpecID of 0 means "all AccessSpecs" for Delete/Disable.

type DeleteAccessSpecRequest struct{ AccessSpecID uint32 }

func (m *DeleteAccessSpecRequest) Encode(messageID uint32) []byte {
	return encodeIDOnlyRequest(param.MsgDeleteAccessSpec, messageID, m.AccessSpecID)
}

func DecodeDeleteAccessSpecRequest(body []byte) (*DeleteAccessSpecRequest, error) {
	r, err := decodeIDOnlyRequest(body)
	if err != nil {
		return nil, err
	}
	return &DeleteAccessSpecRequest{AccessSpecID: r.ID}, nil
}

type DeleteAccessSpecResponse struct{ StatusOnlyResponse }

func (m *DeleteAccessSpecResponse) Encode(messageID uint32) []byte {
	return m.encode(param.MsgDeleteAccessSpecResponse, messageID)
}

func DecodeDeleteAccessSpecResponse(body []byte) (*DeleteAccessSpecResponse, error) {
	s, err := decodeStatusOnlyResponse(body)
	if err != nil {
		return nil, err
	}
	return &DeleteAccessSpecResponse{StatusOnlyResponse: *s}, nil
}

type EnableAccessSpecRequest struct{ AccessSpecID uint32 }

func (m *EnableAccessSpecRequest) Encode(messageID uint32) []byte {
	return encodeIDOnlyRequest(param.MsgEnableAccessSpec, messageID, m.AccessSpecID)
}

func DecodeEnableAccessSpecRequest(body []byte) (*EnableAccessSpecRequest, error) {
	r, err := decodeIDOnlyRequest(body)
	if err != nil {
		return nil, err
	}
	return &EnableAccessSpecRequest{AccessSpecID: r.ID}, nil
}

type EnableAccessSpecResponse struct{ StatusOnlyResponse }

func (m *EnableAccessSpecResponse) Encode(messageID uint32) []byte {
	return m.encode(param.MsgEnableAccessSpecResponse, messageID)
}

func DecodeEnableAccessSpecResponse(body []byte) (*EnableAccessSpecResponse, error) {
	s, err := decodeStatusOnlyResponse(body)
	if err != nil {
		return nil, err
	}
	return &EnableAccessSpecResponse{StatusOnlyResponse: *s}, nil
}

type DisableAccessSpecRequest struct{ AccessSpecID uint32 }

func (m *DisableAccessSpecRequest) Encode(messageID uint32) []byte {
	return encodeIDOnlyRequest(param.MsgDisableAccessSpec, messageID, m.AccessSpecID)
}

func DecodeDisableAccessSpecRequest(body []byte) (*DisableAccessSpecRequest, error) {
	r, err := decodeIDOnlyRequest(body)
	if err != nil {
		return nil, err
	}
	return &DisableAccessSpecRequest{AccessSpecID: r.ID}, nil
}

type DisableAccessSpecResponse struct{ StatusOnlyResponse }

func (m *DisableAccessSpecResponse) Encode(messageID uint32) []byte {
	return m.encode(param.MsgDisableAccessSpecResponse, messageID)
}

func DecodeDisableAccessSpecResponse(body []byte) (*DisableAccessSpecResponse, error) {
	s, err := decodeStatusOnlyResponse(body)
	if err != nil {
		return nil, err
	}
	return &DisableAccessSpecResponse{StatusOnlyResponse: *s}, nil
}
