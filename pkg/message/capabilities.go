package message

import (
	"github.com/rfidware/llrp/pkg/frame"
	"github.com/rfidware/llrp/pkg/param"
	"github.com/rfidware/llrp/pkg/wire"
)

// GetReaderCapabilitiesRequestedData selects which capability groups
// GET_READER_CAPABILITIES should return (LLRP Specification Section
// 17.1.11).
type GetReaderCapabilitiesRequestedData uint8

const (
	RequestedAll                       GetReaderCapabilitiesRequestedData = 0
	RequestedGeneralDeviceCapabilities GetReaderCapabilitiesRequestedData = 1
	RequestedLLRPCapabilities          GetReaderCapabilitiesRequestedData = 2
	RequestedRegulatoryCapabilities    GetReaderCapabilitiesRequestedData = 3
	RequestedAirProtocolCapabilities   GetReaderCapabilitiesRequestedData = 4
)

// GetReaderCapabilitiesRequest asks the reader to report its
// capabilities (LLRP Specification Section 17.1.11).
type GetReaderCapabilitiesRequest struct {
	RequestedData GetReaderCapabilitiesRequestedData
}

func (m *GetReaderCapabilitiesRequest) Encode(messageID uint32) []byte {
	return frame.Encode(param.MsgGetReaderCapabilities, messageID, []byte{byte(m.RequestedData)})
}

func DecodeGetReaderCapabilitiesRequest(body []byte) (*GetReaderCapabilitiesRequest, error) {
	r := wire.NewReader(body)
	req, err := r.Uint8()
	if err != nil {
		return nil, param.ErrTruncated
	}
	return &GetReaderCapabilitiesRequest{RequestedData: GetReaderCapabilitiesRequestedData(req)}, nil
}

// GetReaderCapabilitiesResponse reports the reader's capabilities
// (LLRP Specification Section 17.1.12). C1G2LLRPCapabilities and
// custom capability extensions are out of scope, matching the
// reference Python client.
type GetReaderCapabilitiesResponse struct {
	LLRPStatus                *param.LLRPStatus
	GeneralDeviceCapabilities *param.GeneralDeviceCapabilities
	LLRPCapabilities          *param.LLRPCapabilities
	RegulatoryCapabilities    *param.RegulatoryCapabilities
}

func (m *GetReaderCapabilitiesResponse) Encode(messageID uint32) []byte {
	w := wire.NewWriterSize(0)
	w.PutBytes(m.LLRPStatus.Encode())
	if m.GeneralDeviceCapabilities != nil {
		w.PutBytes(m.GeneralDeviceCapabilities.Encode())
	}
	if m.LLRPCapabilities != nil {
		w.PutBytes(m.LLRPCapabilities.Encode())
	}
	if m.RegulatoryCapabilities != nil {
		w.PutBytes(m.RegulatoryCapabilities.Encode())
	}
	return frame.Encode(param.MsgGetReaderCapabilitiesResp, messageID, w.Bytes())
}

func DecodeGetReaderCapabilitiesResponse(body []byte) (*GetReaderCapabilitiesResponse, error) {
	st, rest, err := param.DecodeLLRPStatus(body)
	if err != nil {
		return nil, err
	}
	resp := &GetReaderCapabilitiesResponse{LLRPStatus: st}

	if t, ok := param.PeekTLVType(rest); ok && t == param.TypeGeneralDeviceCapabilities {
		gen, next, err := param.DecodeGeneralDeviceCapabilities(rest)
		if err != nil {
			return nil, err
		}
		resp.GeneralDeviceCapabilities = gen
		rest = next
	}

	if t, ok := param.PeekTLVType(rest); ok && t == param.TypeLLRPCapabilities {
		llrp, next, err := param.DecodeLLRPCapabilities(rest)
		if err != nil {
			return nil, err
		}
		resp.LLRPCapabilities = llrp
		rest = next
	}

	if t, ok := param.PeekTLVType(rest); ok && t == param.TypeRegulatoryCapabilities {
		reg, next, err := param.DecodeRegulatoryCapabilities(rest)
		if err != nil {
			return nil, err
		}
		resp.RegulatoryCapabilities = reg
		rest = next
	}

	if len(rest) != 0 {
		return nil, param.ErrTrailingBytes
	}

	return resp, nil
}
