package message

import (
	"github.com/rfidware/llrp/pkg/frame"
	"github.com/rfidware/llrp/pkg/param"
)

// AddROSpecRequest installs a new ROSpec on the reader (LLRP
// Specification Section 17.1.18).
type AddROSpecRequest struct {
	ROSpec *param.ROSpec
}

func (m *AddROSpecRequest) Encode(messageID uint32) []byte {
	return frame.Encode(param.MsgAddROSpec, messageID, m.ROSpec.Encode())
}

func DecodeAddROSpecRequest(body []byte) (*AddROSpecRequest, error) {
	spec, tail, err := param.DecodeROSpec(body)
	if err != nil {
		return nil, err
	}
	if len(tail) != 0 {
		return nil, param.ErrTrailingBytes
	}
	return &AddROSpecRequest{ROSpec: spec}, nil
}

// AddROSpecResponse reports whether an AddROSpecRequest succeeded.
type AddROSpecResponse struct{ StatusOnlyResponse }

func (m *AddROSpecResponse) Encode(messageID uint32) []byte {
	return m.encode(param.MsgAddROSpecResponse, messageID)
}

func DecodeAddROSpecResponse(body []byte) (*AddROSpecResponse, error) {
	s, err := decodeStatusOnlyResponse(body)
	if err != nil {
		return nil, err
	}
	return &AddROSpecResponse{StatusOnlyResponse: *s}, nil
}

// roSpecIDRequest bodies: DELETE/START/STOP/ENABLE/DISABLE ROSpec each
// carry nothing but the target ROSpecID (LLRP Specification Sections
// 17.1.19-17.1.23). A ROSpecID of 0 means "all ROSpecs", per those
// sections, for Delete/Enable/Disable.

type DeleteROSpecRequest struct{ ROSpecID uint32 }

func (m *DeleteROSpecRequest) Encode(messageID uint32) []byte {
	return encodeIDOnlyRequest(param.MsgDeleteROSpec, messageID, m.ROSpecID)
}

func DecodeDeleteROSpecRequest(body []byte) (*DeleteROSpecRequest, error) {
	r, err := decodeIDOnlyRequest(body)
	if err != nil {
		return nil, err
	}
	return &DeleteROSpecRequest{ROSpecID: r.ID}, nil
}

type DeleteROSpecResponse struct{ StatusOnlyResponse }

func (m *DeleteROSpecResponse) Encode(messageID uint32) []byte {
	return m.encode(param.MsgDeleteROSpecResponse, messageID)
}

func DecodeDeleteROSpecResponse(body []byte) (*DeleteROSpecResponse, error) {
	s, err := decodeStatusOnlyResponse(body)
	if err != nil {
		return nil, err
	}
	return &DeleteROSpecResponse{StatusOnlyResponse: *s}, nil
}

type StartROSpecRequest struct{ ROSpecID uint32 }

func (m *StartROSpecRequest) Encode(messageID uint32) []byte {
	return encodeIDOnlyRequest(param.MsgStartROSpec, messageID, m.ROSpecID)
}

func DecodeStartROSpecRequest(body []byte) (*StartROSpecRequest, error) {
	r, err := decodeIDOnlyRequest(body)
	if err != nil {
		return nil, err
	}
	return &StartROSpecRequest{ROSpecID: r.ID}, nil
}

type StartROSpecResponse struct{ StatusOnlyResponse }

func (m *StartROSpecResponse) Encode(messageID uint32) []byte {
	return m.encode(param.MsgStartROSpecResponse, messageID)
}

func DecodeStartROSpecResponse(body []byte) (*StartROSpecResponse, error) {
	s, err := decodeStatusOnlyResponse(body)
	if err != nil {
		return nil, err
	}
	return &StartROSpecResponse{StatusOnlyResponse: *s}, nil
}

type StopROSpecRequest struct{ ROSpecID uint32 }

func (m *StopROSpecRequest) Encode(messageID uint32) []byte {
	return encodeIDOnlyRequest(param.MsgStopROSpec, messageID, m.ROSpecID)
}

func DecodeStopROSpecRequest(body []byte) (*StopROSpecRequest, error) {
	r, err := decodeIDOnlyRequest(body)
	if err != nil {
		return nil, err
	}
	return &StopROSpecRequest{ROSpecID: r.ID}, nil
}

type StopROSpecResponse struct{ StatusOnlyResponse }

func (m *StopROSpecResponse) Encode(messageID uint32) []byte {
	return m.encode(param.MsgStopROSpecResponse, messageID)
}

func DecodeStopROSpecResponse(body []byte) (*StopROSpecResponse, error) {
	s, err := decodeStatusOnlyResponse(body)
	if err != nil {
		return nil, err
	}
	return &StopROSpecResponse{StatusOnlyResponse: *s}, nil
}

type EnableROSpecRequest struct{ ROSpecID uint32 }

func (m *EnableROSpecRequest) Encode(messageID uint32) []byte {
	return encodeIDOnlyRequest(param.MsgEnableROSpec, messageID, m.ROSpecID)
}

func DecodeEnableROSpecRequest(body []byte) (*EnableROSpecRequest, error) {
	r, err := decodeIDOnlyRequest(body)
	if err != nil {
		return nil, err
	}
	return &EnableROSpecRequest{ROSpecID: r.ID}, nil
}

type EnableROSpecResponse struct{ StatusOnlyResponse }

func (m *EnableROSpecResponse) Encode(messageID uint32) []byte {
	return m.encode(param.MsgEnableROSpecResponse, messageID)
}

func DecodeEnableROSpecResponse(body []byte) (*EnableROSpecResponse, error) {
	s, err := decodeStatusOnlyResponse(body)
	if err != nil {
		return nil, err
	}
	return &EnableROSpecResponse{StatusOnlyResponse: *s}, nil
}

type DisableROSpecRequest struct{ ROSpecID uint32 }

func (m *DisableROSpecRequest) Encode(messageID uint32) []byte {
	return encodeIDOnlyRequest(param.MsgDisableROSpec, messageID, m.ROSpecID)
}

func DecodeDisableROSpecRequest(body []byte) (*DisableROSpecRequest, error) {
	r, err := decodeIDOnlyRequest(body)
	if err != nil {
		return nil, err
	}
	return &DisableROSpecRequest{ROSpecID: r.ID}, nil
}

type DisableROSpecResponse struct{ StatusOnlyResponse }

func (m *DisableROSpecResponse) Encode(messageID uint32) []byte {
	return m.encode(param.MsgDisableROSpecResponse, messageID)
}

func DecodeDisableROSpecResponse(body []byte) (*DisableROSpecResponse, error) {
	s, err := decodeStatusOnlyResponse(body)
	if err != nil {
		return nil, err
	}
	return &DisableROSpecResponse{StatusOnlyResponse: *s}, nil
}
