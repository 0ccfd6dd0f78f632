package message

import "fmt"

// msgNames maps each LLRP message type code to its symbolic name, for
// logging and diagnostics (LLRP Specification Section 17.1).
var msgNames = map[uint16]string{
	1:  "GET_READER_CAPABILITIES",
	2:  "GET_READER_CONFIG",
	3:  "SET_READER_CONFIG",
	4:  "CLOSE_CONNECTION_RESPONSE",
	11: "GET_READER_CAPABILITIES_RESPONSE",
	12: "GET_READER_CONFIG_RESPONSE",
	13: "SET_READER_CONFIG_RESPONSE",
	14: "CLOSE_CONNECTION",

	20: "ADD_ROSPEC",
	21: "DELETE_ROSPEC",
	22: "START_ROSPEC",
	23: "STOP_ROSPEC",
	24: "ENABLE_ROSPEC",
	25: "DISABLE_ROSPEC",
	30: "ADD_ROSPEC_RESPONSE",
	31: "DELETE_ROSPEC_RESPONSE",
	32: "START_ROSPEC_RESPONSE",
	33: "STOP_ROSPEC_RESPONSE",
	34: "ENABLE_ROSPEC_RESPONSE",
	35: "DISABLE_ROSPEC_RESPONSE",

	40: "ADD_ACCESSSPEC",
	41: "DELETE_ACCESSSPEC",
	42: "ENABLE_ACCESSSPEC",
	43: "DISABLE_ACCESSSPEC",
	50: "ADD_ACCESSSPEC_RESPONSE",
	51: "DELETE_ACCESSSPEC_RESPONSE",
	52: "ENABLE_ACCESSSPEC_RESPONSE",
	53: "DISABLE_ACCESSSPEC_RESPONSE",

	61: "RO_ACCESS_REPORT",
	62: "KEEPALIVE",
	63: "READER_EVENT_NOTIFICATION",
	64: "ENABLE_EVENTS_AND_REPORTS",
	72:  "KEEPALIVE_ACK",
	100: "ERROR_MESSAGE",
}

// Name returns the symbolic name of an LLRP message type code, for
// logging and diagnostics. It never fails; unrecognized codes get a
// placeholder name.
func Name(typeCode uint16) string {
	if n, ok := msgNames[typeCode]; ok {
		return n
	}
	return fmt.Sprintf("Unknown(%d)", typeCode)
}
