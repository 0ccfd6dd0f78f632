package message

import (
	"github.com/rfidware/llrp/pkg/frame"
	"github.com/rfidware/llrp/pkg/param"
	"github.com/rfidware/llrp/pkg/wire"
)

// GetReaderConfigRequestedData selects which configuration groups
// GET_READER_CONFIG should return (LLRP Specification Section 17.1.40).
type GetReaderConfigRequestedData uint8

const (
	ConfigRequestedAll GetReaderConfigRequestedData = 0
)

// GetReaderConfigRequest asks the reader to report its configuration.
// Antenna, GPIPortNum, and GPOPortNum of 0 mean "all ports" per LLRP
// Specification Section 17.1.40.
type GetReaderConfigRequest struct {
	AntennaID     uint16
	RequestedData GetReaderConfigRequestedData
	GPIPortNum    uint16
	GPOPortNum    uint16
}

func (m *GetReaderConfigRequest) Encode(messageID uint32) []byte {
	w := wire.NewWriterSize(7)
	w.PutUint16(m.AntennaID)
	w.PutUint8(uint8(m.RequestedData))
	w.PutUint16(m.GPIPortNum)
	w.PutUint16(m.GPOPortNum)
	return frame.Encode(param.MsgGetReaderConfig, messageID, w.Bytes())
}

func DecodeGetReaderConfigRequest(body []byte) (*GetReaderConfigRequest, error) {
	r := wire.NewReader(body)
	antenna, e1 := r.Uint16()
	req, e2 := r.Uint8()
	gpi, e3 := r.Uint16()
	gpo, e4 := r.Uint16()
	if e1 != nil || e2 != nil || e3 != nil || e4 != nil {
		return nil, param.ErrTruncated
	}
	return &GetReaderConfigRequest{
		AntennaID:     antenna,
		RequestedData: GetReaderConfigRequestedData(req),
		GPIPortNum:    gpi,
		GPOPortNum:    gpo,
	}, nil
}

// GetReaderConfigResponse reports the reader's configuration (LLRP
// Specification Section 17.1.41).
type GetReaderConfigResponse struct {
	LLRPStatus                  *param.LLRPStatus
	Identification              *param.Identification
	AntennaProperties           []param.AntennaProperties
	AntennaConfiguration        []param.AntennaConfiguration
	ReaderEventNotificationSpec *param.ReaderEventNotificationSpec
	ROReportSpec                *param.ROReportSpec
	AccessReportSpec            *param.AccessReportSpec
	LLRPConfigurationStateValue *param.LLRPConfigurationStateValue
	KeepaliveSpec               *param.KeepaliveSpec
	GPIPortCurrentState         []param.GPIPortCurrentState
	GPOWriteData                []param.GPOWriteData
	EventsAndReports            *param.EventsAndReports
}

func (m *GetReaderConfigResponse) Encode(messageID uint32) []byte {
	w := wire.NewWriterSize(0)
	w.PutBytes(m.LLRPStatus.Encode())
	if m.Identification != nil {
		w.PutBytes(m.Identification.Encode())
	}
	for i := range m.AntennaProperties {
		w.PutBytes(m.AntennaProperties[i].Encode())
	}
	for i := range m.AntennaConfiguration {
		w.PutBytes(m.AntennaConfiguration[i].Encode())
	}
	if m.ReaderEventNotificationSpec != nil {
		w.PutBytes(m.ReaderEventNotificationSpec.Encode())
	}
	if m.ROReportSpec != nil {
		w.PutBytes(m.ROReportSpec.Encode())
	}
	if m.AccessReportSpec != nil {
		w.PutBytes(m.AccessReportSpec.Encode())
	}
	if m.LLRPConfigurationStateValue != nil {
		w.PutBytes(m.LLRPConfigurationStateValue.Encode())
	}
	if m.KeepaliveSpec != nil {
		w.PutBytes(m.KeepaliveSpec.Encode())
	}
	for i := range m.GPIPortCurrentState {
		w.PutBytes(m.GPIPortCurrentState[i].Encode())
	}
	for i := range m.GPOWriteData {
		w.PutBytes(m.GPOWriteData[i].Encode())
	}
	if m.EventsAndReports != nil {
		w.PutBytes(m.EventsAndReports.Encode())
	}
	return frame.Encode(param.MsgGetReaderConfigResponse, messageID, w.Bytes())
}

// DecodeGetReaderConfigResponse decodes a GET_READER_CONFIG_RESPONSE
// body. Every child parameter is optional except LLRPStatus; each
// repeating group is decoded while the next header's type keeps
// matching (spec.md §4.4's sequence-by-concatenation rule).
func DecodeGetReaderConfigResponse(body []byte) (*GetReaderConfigResponse, error) {
	st, rest, err := param.DecodeLLRPStatus(body)
	if err != nil {
		return nil, err
	}
	resp := &GetReaderConfigResponse{LLRPStatus: st}

	if id, next, derr := param.DecodeIdentification(rest); derr != nil {
		return nil, derr
	} else if id != nil {
		resp.Identification = id
		rest = next
	}

	for {
		ap, next, derr := param.DecodeAntennaProperties(rest)
		if derr != nil {
			return nil, derr
		}
		if ap == nil {
			break
		}
		resp.AntennaProperties = append(resp.AntennaProperties, *ap)
		rest = next
	}

	for {
		ac, next, derr := param.DecodeAntennaConfiguration(rest)
		if derr != nil {
			return nil, derr
		}
		if ac == nil {
			break
		}
		resp.AntennaConfiguration = append(resp.AntennaConfiguration, *ac)
		rest = next
	}

	if spec, next, derr := param.DecodeReaderEventNotificationSpec(rest); derr != nil {
		return nil, derr
	} else if spec != nil {
		resp.ReaderEventNotificationSpec = spec
		rest = next
	}

	if rospec, next, derr := param.DecodeROReportSpec(rest); derr != nil {
		return nil, derr
	} else if rospec != nil {
		resp.ROReportSpec = rospec
		rest = next
	}

	if ars, next, derr := param.DecodeAccessReportSpec(rest); derr != nil {
		return nil, derr
	} else if ars != nil {
		resp.AccessReportSpec = ars
		rest = next
	}

	if csv, next, derr := param.DecodeLLRPConfigurationStateValue(rest); derr != nil {
		return nil, derr
	} else if csv != nil {
		resp.LLRPConfigurationStateValue = csv
		rest = next
	}

	if ka, next, derr := param.DecodeKeepaliveSpec(rest); derr != nil {
		return nil, derr
	} else if ka != nil {
		resp.KeepaliveSpec = ka
		rest = next
	}

	for {
		gpi, next, derr := param.DecodeGPIPortCurrentState(rest)
		if derr != nil {
			return nil, derr
		}
		if gpi == nil {
			break
		}
		resp.GPIPortCurrentState = append(resp.GPIPortCurrentState, *gpi)
		rest = next
	}

	for {
		gpo, next, derr := param.DecodeGPOWriteData(rest)
		if derr != nil {
			return nil, derr
		}
		if gpo == nil {
			break
		}
		resp.GPOWriteData = append(resp.GPOWriteData, *gpo)
		rest = next
	}

	if ear, next, derr := param.DecodeEventsAndReports(rest); derr != nil {
		return nil, derr
	} else if ear != nil {
		resp.EventsAndReports = ear
		rest = next
	}

	if len(rest) != 0 {
		return nil, param.ErrTrailingBytes
	}

	return resp, nil
}

// SetReaderConfigRequest reconfigures the reader (LLRP Specification
// Section 17.1.42). Only EventsAndReports is implemented as a
// settable parameter by this core; any other configuration parameter
// is reported as Unimplemented rather than silently dropped
// (spec.md §4.5).
type SetReaderConfigRequest struct {
	ResetToFactoryDefaults bool
	EventsAndReports       *param.EventsAndReports
}

func (m *SetReaderConfigRequest) Encode(messageID uint32) []byte {
	w := wire.NewWriterSize(1)
	var r uint8
	if m.ResetToFactoryDefaults {
		r = 1 << 7
	}
	w.PutUint8(r)
	if m.EventsAndReports != nil {
		w.PutBytes(m.EventsAndReports.Encode())
	}
	return frame.Encode(param.MsgSetReaderConfig, messageID, w.Bytes())
}

func DecodeSetReaderConfigRequest(body []byte) (*SetReaderConfigRequest, error) {
	r := wire.NewReader(body)
	flags, err := r.Uint8()
	if err != nil {
		return nil, param.ErrTruncated
	}
	req := &SetReaderConfigRequest{ResetToFactoryDefaults: wire.Bit(flags, 7)}

	rest := r.Remaining()
	ear, next, derr := param.DecodeEventsAndReports(rest)
	if derr != nil {
		return nil, derr
	}
	if ear != nil {
		req.EventsAndReports = ear
		rest = next
	}

	if len(rest) != 0 {
		return nil, ErrUnimplementedConfig
	}

	return req, nil
}

type SetReaderConfigResponse struct{ StatusOnlyResponse }

func (m *SetReaderConfigResponse) Encode(messageID uint32) []byte {
	return m.encode(param.MsgSetReaderConfigResponse, messageID)
}

func DecodeSetReaderConfigResponse(body []byte) (*SetReaderConfigResponse, error) {
	s, err := decodeStatusOnlyResponse(body)
	if err != nil {
		return nil, err
	}
	return &SetReaderConfigResponse{StatusOnlyResponse: *s}, nil
}

// CloseConnectionRequest asks the reader to close the LLRP connection
// (LLRP Specification Section 17.1.44). It carries no fields.
type CloseConnectionRequest struct{}

func (m *CloseConnectionRequest) Encode(messageID uint32) []byte {
	return frame.Encode(param.MsgCloseConnection, messageID, nil)
}

func DecodeCloseConnectionRequest(body []byte) (*CloseConnectionRequest, error) {
	if len(body) != 0 {
		return nil, param.ErrTrailingBytes
	}
	return &CloseConnectionRequest{}, nil
}

type CloseConnectionResponse struct{ StatusOnlyResponse }

func (m *CloseConnectionResponse) Encode(messageID uint32) []byte {
	return m.encode(param.MsgCloseConnectionResponse, messageID)
}

func DecodeCloseConnectionResponse(body []byte) (*CloseConnectionResponse, error) {
	s, err := decodeStatusOnlyResponse(body)
	if err != nil {
		return nil, err
	}
	return &CloseConnectionResponse{StatusOnlyResponse: *s}, nil
}
