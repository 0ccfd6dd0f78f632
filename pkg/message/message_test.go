package message

import (
	"bytes"
	"testing"

	"github.com/rfidware/llrp/pkg/frame"
	"github.com/rfidware/llrp/pkg/param"
)

func decodeBody(t *testing.T, encoded []byte, wantType uint16) []byte {
	t.Helper()
	hdr, body, err := frame.Decode(encoded)
	if err != nil {
		t.Fatalf("frame.Decode: %v", err)
	}
	if hdr.Type != wantType {
		t.Fatalf("message type = %d, want %d", hdr.Type, wantType)
	}
	return body
}

func TestGetReaderCapabilitiesRoundTrip(t *testing.T) {
	req := &GetReaderCapabilitiesRequest{RequestedData: RequestedLLRPCapabilities}
	encoded := req.Encode(7)
	body := decodeBody(t, encoded, param.MsgGetReaderCapabilities)

	decoded, err := DecodeGetReaderCapabilitiesRequest(body)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.RequestedData != RequestedLLRPCapabilities {
		t.Errorf("RequestedData = %v, want %v", decoded.RequestedData, RequestedLLRPCapabilities)
	}
}

func TestGetReaderCapabilitiesResponseOptionalFields(t *testing.T) {
	resp := &GetReaderCapabilitiesResponse{
		LLRPStatus: &param.LLRPStatus{StatusCode: param.StatusSuccess},
	}
	encoded := resp.Encode(1)
	body := decodeBody(t, encoded, param.MsgGetReaderCapabilitiesResp)

	decoded, err := DecodeGetReaderCapabilitiesResponse(body)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.GeneralDeviceCapabilities != nil {
		t.Error("expected nil GeneralDeviceCapabilities")
	}
	if decoded.LLRPCapabilities != nil {
		t.Error("expected nil LLRPCapabilities")
	}
	if decoded.RegulatoryCapabilities != nil {
		t.Error("expected nil RegulatoryCapabilities")
	}
	if decoded.LLRPStatus.StatusCode != param.StatusSuccess {
		t.Errorf("StatusCode = %v, want Success", decoded.LLRPStatus.StatusCode)
	}
}

func TestAddROSpecRoundTrip(t *testing.T) {
	spec := &param.ROSpec{
		ROSpecID:     1,
		CurrentState: param.ROSpecStateDisabled,
		ROBoundarySpec: param.ROBoundarySpec{
			StartTrigger: param.ROSpecStartTrigger{Type: param.StartTriggerImmediate},
			StopTrigger:  param.ROSpecStopTrigger{Type: param.StopTriggerNull},
		},
		AISpec: param.AISpec{
			AntennaIDs: []uint16{1},
			AISpecStopTrigger: param.AISpecStopTrigger{
				Type:                 param.AIStopTriggerDuration,
				DurationTriggerValue: 500,
			},
			InventoryParameterSpec: []param.InventoryParameterSpec{
				{InventoryParameterSpecID: 1, ProtocolID: 1},
			},
		},
		ROReportSpec: param.ROReportSpec{
			ROReportTrigger: param.ROReportUponNTagsOrEndOfAISpec,
			N:               1,
		},
	}

	req := &AddROSpecRequest{ROSpec: spec}
	encoded := req.Encode(2)
	body := decodeBody(t, encoded, param.MsgAddROSpec)

	decoded, err := DecodeAddROSpecRequest(body)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	reEncoded := (&AddROSpecRequest{ROSpec: decoded.ROSpec}).Encode(2)
	if !bytes.Equal(encoded, reEncoded) {
		t.Fatalf("round-trip mismatch:\n  got  %x\n  want %x", reEncoded, encoded)
	}
}

func TestIDOnlyRequests(t *testing.T) {
	del := &DeleteROSpecRequest{ROSpecID: 42}
	body := decodeBody(t, del.Encode(3), param.MsgDeleteROSpec)
	decoded, err := DecodeDeleteROSpecRequest(body)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.ROSpecID != 42 {
		t.Errorf("ROSpecID = %d, want 42", decoded.ROSpecID)
	}

	dis := &DisableAccessSpecRequest{AccessSpecID: 7}
	body = decodeBody(t, dis.Encode(4), param.MsgDisableAccessSpec)
	decodedAS, err := DecodeDisableAccessSpecRequest(body)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decodedAS.AccessSpecID != 7 {
		t.Errorf("AccessSpecID = %d, want 7", decodedAS.AccessSpecID)
	}
}

func TestStatusOnlyResponse(t *testing.T) {
	resp := &StartROSpecResponse{StatusOnlyResponse{
		LLRPStatus: &param.LLRPStatus{StatusCode: param.StatusMissingParameter, ErrorDescription: "missing"},
	}}
	body := decodeBody(t, resp.Encode(5), param.MsgStartROSpecResponse)
	decoded, err := DecodeStartROSpecResponse(body)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.LLRPStatus.StatusCode != param.StatusMissingParameter {
		t.Errorf("StatusCode = %v, want MissingParameter", decoded.LLRPStatus.StatusCode)
	}
	if decoded.LLRPStatus.ErrorDescription != "missing" {
		t.Errorf("ErrorDescription = %q, want %q", decoded.LLRPStatus.ErrorDescription, "missing")
	}
}

func TestCloseConnection(t *testing.T) {
	req := &CloseConnectionRequest{}
	body := decodeBody(t, req.Encode(6), param.MsgCloseConnection)
	if _, err := DecodeCloseConnectionRequest(body); err != nil {
		t.Fatalf("decode: %v", err)
	}

	resp := &CloseConnectionResponse{StatusOnlyResponse{LLRPStatus: &param.LLRPStatus{StatusCode: param.StatusSuccess}}}
	body = decodeBody(t, resp.Encode(7), param.MsgCloseConnectionResponse)
	if _, err := DecodeCloseConnectionResponse(body); err != nil {
		t.Fatalf("decode: %v", err)
	}
}

func TestKeepalive(t *testing.T) {
	ka := &KeepaliveMessage{}
	body := decodeBody(t, ka.Encode(8), param.MsgKeepalive)
	if _, err := DecodeKeepaliveMessage(body); err != nil {
		t.Fatalf("decode: %v", err)
	}

	ack := &KeepaliveAckMessage{}
	body = decodeBody(t, ack.Encode(9), param.MsgKeepaliveAck)
	if _, err := DecodeKeepaliveAckMessage(body); err != nil {
		t.Fatalf("decode: %v", err)
	}
}

// TestROAccessReportEPC96 exercises spec.md scenario S5: an
// RO_ACCESS_REPORT carrying one tag report with an EPC-96 TV and an
// AntennaID TV.
func TestROAccessReportEPC96(t *testing.T) {
	antennaID := uint16(1)
	tr := &param.TagReportData{
		EPC96:     []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07},
		AntennaID: &antennaID,
	}
	msg := &ROAccessReportMessage{TagReportData: []*param.TagReportData{tr}}
	body := decodeBody(t, msg.Encode(10), param.MsgROAccessReport)

	decoded, err := DecodeROAccessReportMessage(body, nil)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(decoded.TagReportData) != 1 {
		t.Fatalf("TagReportData count = %d, want 1", len(decoded.TagReportData))
	}
	got := decoded.TagReportData[0]
	if !bytes.Equal(got.EPC96, tr.EPC96) {
		t.Errorf("EPC96 = %x, want %x", got.EPC96, tr.EPC96)
	}
	if got.AntennaID == nil || *got.AntennaID != antennaID {
		t.Errorf("AntennaID = %v, want %d", got.AntennaID, antennaID)
	}
}

func TestROAccessReportEmpty(t *testing.T) {
	msg := &ROAccessReportMessage{}
	body := decodeBody(t, msg.Encode(11), param.MsgROAccessReport)
	decoded, err := DecodeROAccessReportMessage(body, nil)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(decoded.TagReportData) != 0 {
		t.Errorf("TagReportData count = %d, want 0", len(decoded.TagReportData))
	}
}

// TestSetReaderConfigUnimplementedParameter proves
// DecodeSetReaderConfigRequest rejects a body carrying a configuration
// parameter other than EventsAndReports instead of silently ignoring
// it (spec.md §4.5).
func TestSetReaderConfigUnimplementedParameter(t *testing.T) {
	ap := &param.AntennaProperties{AntennaID: 1}
	malformed := append([]byte{0x00}, ap.Encode()...)
	if _, err := DecodeSetReaderConfigRequest(malformed); err != ErrUnimplementedConfig {
		t.Errorf("err = %v, want ErrUnimplementedConfig", err)
	}
}

func TestSetReaderConfigRoundTrip(t *testing.T) {
	req := &SetReaderConfigRequest{
		ResetToFactoryDefaults: true,
		EventsAndReports:       &param.EventsAndReports{HoldEventsAndReportsUponReconnect: true},
	}
	body := decodeBody(t, req.Encode(13), param.MsgSetReaderConfig)
	decoded, err := DecodeSetReaderConfigRequest(body)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !decoded.ResetToFactoryDefaults {
		t.Error("ResetToFactoryDefaults = false, want true")
	}
	if decoded.EventsAndReports == nil || !decoded.EventsAndReports.HoldEventsAndReportsUponReconnect {
		t.Error("EventsAndReports not round-tripped")
	}
}
