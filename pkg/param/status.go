package param

import "github.com/rfidware/llrp/pkg/wire"

// StatusCode is the 16-bit status enumeration carried by LLRPStatus
// (LLRP Specification Section 14.1.1; spec.md §6). Grounded on
// original_source/sllurp/llrp_proto.py's Error_Name2Type table.
type StatusCode uint16

// Status code values, normative per spec.md §6.
const (
	StatusSuccess                StatusCode = 0
	StatusParameterError         StatusCode = 100
	StatusFieldError             StatusCode = 101
	StatusUnexpectedParameter    StatusCode = 102
	StatusMissingParameter       StatusCode = 103
	StatusDuplicateParameter     StatusCode = 104
	StatusOverflowParameter      StatusCode = 105
	StatusOverflowField          StatusCode = 106
	StatusUnknownParameter       StatusCode = 107
	StatusUnknownField           StatusCode = 108
	StatusUnsupportedMessage     StatusCode = 109
	StatusUnsupportedVersion     StatusCode = 110
	StatusUnsupportedParameter   StatusCode = 111
	StatusP_ParameterError       StatusCode = 200
	StatusP_FieldError           StatusCode = 201
	StatusP_UnexpectedParameter  StatusCode = 202
	StatusP_MissingParameter     StatusCode = 203
	StatusP_DuplicateParameter   StatusCode = 204
	StatusP_OverflowParameter    StatusCode = 205
	StatusP_OverflowField        StatusCode = 206
	StatusP_UnknownParameter     StatusCode = 207
	StatusP_UnknownField         StatusCode = 208
	StatusP_UnsupportedParameter StatusCode = 209
	StatusA_Invalid              StatusCode = 300
	StatusA_OutOfRange           StatusCode = 301
	StatusDeviceError            StatusCode = 401
)

// String returns the symbolic name used by the LLRP specification.
func (s StatusCode) String() string {
	switch s {
	case StatusSuccess:
		return "Success"
	case StatusParameterError:
		return "ParameterError"
	case StatusFieldError:
		return "FieldError"
	case StatusUnexpectedParameter:
		return "UnexpectedParameter"
	case StatusMissingParameter:
		return "MissingParameter"
	case StatusDuplicateParameter:
		return "DuplicateParameter"
	case StatusOverflowParameter:
		return "OverflowParameter"
	case StatusOverflowField:
		return "OverflowField"
	case StatusUnknownParameter:
		return "UnknownParameter"
	case StatusUnknownField:
		return "UnknownField"
	case StatusUnsupportedMessage:
		return "UnsupportedMessage"
	case StatusUnsupportedVersion:
		return "UnsupportedVersion"
	case StatusUnsupportedParameter:
		return "UnsupportedParameter"
	case StatusP_ParameterError:
		return "P_ParameterError"
	case StatusP_FieldError:
		return "P_FieldError"
	case StatusP_UnexpectedParameter:
		return "P_UnexpectedParameter"
	case StatusP_MissingParameter:
		return "P_MissingParameter"
	case StatusP_DuplicateParameter:
		return "P_DuplicateParameter"
	case StatusP_OverflowParameter:
		return "P_OverflowParameter"
	case StatusP_OverflowField:
		return "P_OverflowField"
	case StatusP_UnknownParameter:
		return "P_UnknownParameter"
	case StatusP_UnknownField:
		return "P_UnknownField"
	case StatusP_UnsupportedParameter:
		return "P_UnsupportedParameter"
	case StatusA_Invalid:
		return "A_Invalid"
	case StatusA_OutOfRange:
		return "A_OutOfRange"
	case StatusDeviceError:
		return "DeviceError"
	default:
		return "Unknown"
	}
}

// FieldError reports which field within a parameter was rejected and
// why (LLRP Specification Section 14.1.2).
type FieldError struct {
	FieldNum  uint16
	ErrorCode StatusCode
}

// Encode writes the FieldError TLV parameter.
func (f *FieldError) Encode() []byte {
	w := wire.NewWriterSize(4)
	w.PutUint16(f.FieldNum)
	w.PutUint16(uint16(f.ErrorCode))
	return writeTLVHeader(TypeFieldError, w.Bytes())
}

func decodeFieldError(buf []byte) (*FieldError, []byte, error) {
	body, tail, ok, err := readTLVHeader(buf, TypeFieldError)
	if err != nil {
		return nil, buf, err
	}
	if !ok {
		return nil, buf, nil
	}
	r := wire.NewReader(body)
	fieldNum, err := r.Uint16()
	if err != nil {
		return nil, buf, malformed("FieldError", "short body")
	}
	code, err := r.Uint16()
	if err != nil {
		return nil, buf, malformed("FieldError", "short body")
	}
	return &FieldError{FieldNum: fieldNum, ErrorCode: StatusCode(code)}, tail, nil
}

// ParameterError reports which parameter type was rejected; it may
// nest a FieldError or further ParameterError values (self-recursive
// per spec.md §4.4).
type ParameterError struct {
	ParameterType    uint16
	ErrorCode        StatusCode
	FieldError       *FieldError
	ParameterError   *ParameterError
}

// Encode writes the ParameterError TLV parameter.
func (p *ParameterError) Encode() []byte {
	w := wire.NewWriterSize(4)
	w.PutUint16(p.ParameterType)
	w.PutUint16(uint16(p.ErrorCode))
	if p.FieldError != nil {
		w.PutBytes(p.FieldError.Encode())
	}
	if p.ParameterError != nil {
		w.PutBytes(p.ParameterError.Encode())
	}
	return writeTLVHeader(TypeParameterError, w.Bytes())
}

func decodeParameterError(buf []byte) (*ParameterError, []byte, error) {
	body, tail, ok, err := readTLVHeader(buf, TypeParameterError)
	if err != nil {
		return nil, buf, err
	}
	if !ok {
		return nil, buf, nil
	}

	r := wire.NewReader(body)
	paramType, err := r.Uint16()
	if err != nil {
		return nil, buf, malformed("ParameterError", "short body")
	}
	code, err := r.Uint16()
	if err != nil {
		return nil, buf, malformed("ParameterError", "short body")
	}

	pe := &ParameterError{ParameterType: paramType, ErrorCode: StatusCode(code)}

	rest := r.Remaining()
	fe, rest, err := decodeFieldError(rest)
	if err != nil {
		return nil, buf, err
	}
	pe.FieldError = fe

	child, rest, err := decodeParameterError(rest)
	if err != nil {
		return nil, buf, err
	}
	pe.ParameterError = child

	if len(rest) != 0 {
		return nil, buf, ErrTrailingBytes
	}

	return pe, tail, nil
}

// LLRPStatus is carried by every response message and reports the
// outcome of the requested operation (LLRP Specification Section
// 14.1.1). A non-zero StatusCode is not itself a codec error: it is a
// successfully decoded message whose payload reports a peer-side error
// (spec.md §7).
type LLRPStatus struct {
	StatusCode       StatusCode
	ErrorDescription string
	FieldError       *FieldError
	ParameterError   *ParameterError
}

// Encode writes the LLRPStatus TLV parameter.
func (s *LLRPStatus) Encode() []byte {
	w := wire.NewWriterSize(4 + len(s.ErrorDescription))
	w.PutUint16(uint16(s.StatusCode))
	w.PutUint16(uint16(len(s.ErrorDescription)))
	w.PutBytes([]byte(s.ErrorDescription))
	if s.FieldError != nil {
		w.PutBytes(s.FieldError.Encode())
	}
	if s.ParameterError != nil {
		w.PutBytes(s.ParameterError.Encode())
	}
	return writeTLVHeader(TypeLLRPStatus, w.Bytes())
}

// DecodeLLRPStatus decodes an LLRPStatus TLV parameter from the front
// of buf. Any unconsumed bytes after FieldError/ParameterError are a
// fatal ErrTrailingBytes (spec.md §4.4).
func DecodeLLRPStatus(buf []byte) (*LLRPStatus, []byte, error) {
	body, tail, ok, err := readTLVHeader(buf, TypeLLRPStatus)
	if err != nil {
		return nil, buf, err
	}
	if !ok {
		return nil, buf, malformed("LLRPStatus", "type mismatch")
	}

	r := wire.NewReader(body)
	code, err := r.Uint16()
	if err != nil {
		return nil, buf, malformed("LLRPStatus", "short body")
	}
	descLen, err := r.Uint16()
	if err != nil {
		return nil, buf, malformed("LLRPStatus", "short body")
	}
	descBytes, err := r.Bytes(int(descLen))
	if err != nil {
		return nil, buf, malformed("LLRPStatus", "error description overruns body")
	}

	st := &LLRPStatus{
		StatusCode:       StatusCode(code),
		ErrorDescription: string(descBytes),
	}

	rest := r.Remaining()
	fe, rest, err := decodeFieldError(rest)
	if err != nil {
		return nil, buf, err
	}
	st.FieldError = fe

	pe, rest, err := decodeParameterError(rest)
	if err != nil {
		return nil, buf, err
	}
	st.ParameterError = pe

	if len(rest) != 0 {
		return nil, buf, ErrTrailingBytes
	}

	return st, tail, nil
}
