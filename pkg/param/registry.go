package param

import "fmt"

// paramNames maps every TLV parameter type code this codec recognizes
// to its symbolic name (LLRP Specification Section 16.2). Built once as
// a map literal; never mutated after package initialization, so it
// needs no lock to share across concurrent callers (spec.md §5).
var paramNames = map[uint16]string{
	TypeUTCTimestamp:                      "UTCTimestamp",
	TypeUptime:                            "Uptime",
	TypeGeneralDeviceCapabilities:         "GeneralDeviceCapabilities",
	TypeReceiveSensitivityTableEntry:      "ReceiveSensitivityTableEntry",
	TypePerAntennaAirProtocol:             "PerAntennaAirProtocol",
	TypeGPIOCapabilities:                  "GPIOCapabilities",
	TypeLLRPCapabilities:                  "LLRPCapabilities",
	TypeRegulatoryCapabilities:            "RegulatoryCapabilities",
	TypeUHFBandCapabilities:               "UHFBandCapabilities",
	TypeTransmitPowerLevelTableEntry:      "TransmitPowerLevelTableEntry",
	TypeFrequencyInformation:              "FrequencyInformation",
	TypeFrequencyHopTable:                 "FrequencyHopTable",
	TypeFixedFrequencyTable:               "FixedFrequencyTable",
	TypePerAntennaReceiveSensitivityRange: "PerAntennaReceiveSensitivityRange",
	TypeROSpec:                            "ROSpec",
	TypeROBoundarySpec:                    "ROBoundarySpec",
	TypeROSpecStartTrigger:                "ROSpecStartTrigger",
	TypePeriodicTriggerValue:              "PeriodicTriggerValue",
	TypeGPITriggerValue:                   "GPITriggerValue",
	TypeROSpecStopTrigger:                 "ROSpecStopTrigger",
	TypeAISpec:                            "AISpec",
	TypeAISpecStopTrigger:                 "AISpecStopTrigger",
	TypeTagObservationTrigger:             "TagObservationTrigger",
	TypeInventoryParameterSpec:            "InventoryParameterSpec",
	TypeAccessSpec:                        "AccessSpec",
	TypeAccessSpecStopTrigger:             "AccessSpecStopTrigger",
	TypeAccessCommand:                     "AccessCommand",
	TypeLLRPConfigurationStateValue:       "LLRPConfigurationStateValue",
	TypeIdentification:                    "Identification",
	TypeGPOWriteData:                      "GPOWriteData",
	TypeKeepaliveSpec:                     "KeepaliveSpec",
	TypeAntennaProperties:                 "AntennaProperties",
	TypeAntennaConfiguration:              "AntennaConfiguration",
	TypeRFReceiver:                        "RFReceiver",
	TypeRFTransmitter:                     "RFTransmitter",
	TypeGPIPortCurrentState:               "GPIPortCurrentState",
	TypeEventsAndReports:                  "EventsAndReports",
	TypeROReportSpec:                      "ROReportSpec",
	TypeTagReportContentSelector:          "TagReportContentSelector",
	TypeAccessReportSpec:                  "AccessReportSpec",
	TypeTagReportData:                     "TagReportData",
	TypeEPCData:                           "EPCData",
	TypeReaderEventNotificationSpec:       "ReaderEventNotificationSpec",
	TypeEventNotificationState:            "EventNotificationState",
	TypeReaderEventNotificationData:       "ReaderEventNotificationData",
	TypeHoppingEvent:                      "HoppingEvent",
	TypeGPIEvent:                          "GPIEvent",
	TypeROSpecEvent:                       "ROSpecEvent",
	TypeReportBufferLevelWarningEvent:     "ReportBufferLevelWarningEvent",
	TypeReportBufferOverflowErrorEvent:    "ReportBufferOverflowErrorEvent",
	TypeReaderExceptionEvent:              "ReaderExceptionEvent",
	TypeRFSurveyEvent:                     "RFSurveyEvent",
	TypeAISpecEvent:                       "AISpecEvent",
	TypeAntennaEvent:                      "AntennaEvent",
	TypeConnectionAttemptEvent:            "ConnectionAttemptEvent",
	TypeConnectionCloseEvent:              "ConnectionCloseEvent",
	TypeLLRPStatus:                        "LLRPStatus",
	TypeFieldError:                        "FieldError",
	TypeParameterError:                    "ParameterError",
	TypeC1G2InventoryCommand:              "C1G2InventoryCommand",
	TypeC1G2Filter:                        "C1G2Filter",
	TypeC1G2TagInventoryMask:              "C1G2TagInventoryMask",
	TypeC1G2RFControl:                     "C1G2RFControl",
	TypeC1G2SingulationControl:            "C1G2SingulationControl",
	TypeC1G2TagSpec:                       "C1G2TagSpec",
	TypeC1G2TargetTag:                     "C1G2TargetTag",
	TypeC1G2Read:                          "C1G2Read",
	TypeC1G2Write:                         "C1G2Write",
	TypeC1G2Lock:                          "C1G2Lock",
	TypeC1G2LockPayload:                   "C1G2LockPayload",
	TypeC1G2BlockWrite:                    "C1G2BlockWrite",
	TypeC1G2ReadOpSpecResult:              "C1G2ReadOpSpecResult",
	TypeC1G2WriteOpSpecResult:             "C1G2WriteOpSpecResult",
	TypeC1G2KillOpSpecResult:              "C1G2KillOpSpecResult",
	TypeC1G2LockOpSpecResult:              "C1G2LockOpSpecResult",
	TypeC1G2BlockEraseOpSpecResult:        "C1G2BlockEraseOpSpecResult",
	TypeC1G2BlockWriteOpSpecResult:        "C1G2BlockWriteOpSpecResult",
	TypeC1G2RecommissionOpSpecResult:      "C1G2RecommissionOpSpecResult",
	TypeC1G2BlockPermalockOpSpecResult:    "C1G2BlockPermalockOpSpecResult",
	TypeC1G2GetBlockPermalockStatusResult: "C1G2GetBlockPermalockStatusResult",
	TypeMaximumReceiveSensitivity:         "MaximumReceiveSensitivity",
	TypeRFSurveyFrequencyCapabilities:     "RFSurveyFrequencyCapabilities",
	TypeUHFRFModeTable:                    "UHFRFModeTable",
	TypeUHFC1G2RFModeTableEntry:           "UHFC1G2RFModeTableEntry",
}

// tvNames maps every TV parameter type code this codec recognizes to
// its symbolic name.
var tvNames = map[uint8]string{
	tvROSpecID:                 "ROSpecID",
	tvEPC96:                    "EPC-96",
	tvAntennaID:                "AntennaID",
	tvPeakRSSI:                 "PeakRSSI",
	tvChannelIndex:             "ChannelIndex",
	tvFirstSeenTimestampUTC:    "FirstSeenTimestampUTC",
	tvFirstSeenTimestampUptime: "FirstSeenTimestampUptime",
	tvLastSeenTimestampUTC:     "LastSeenTimestampUTC",
	tvLastSeenTimestampUptime:  "LastSeenTimestampUptime",
	tvTagSeenCount:             "TagSeenCount",
	tvSpecIndex:                "SpecIndex",
	tvInventoryParamSpecID:     "InventoryParameterSpecID",
	tvAccessSpecID:             "AccessSpecID",
	tvC1G2PC:                   "C1G2_PC",
	tvC1G2CRC:                  "C1G2_CRC",
}

// ParamName returns the symbolic name registered for a TLV parameter
// type code, or "Unknown(code)" if the registry doesn't recognize it.
func ParamName(code uint16) string {
	if name, ok := paramNames[code]; ok {
		return name
	}
	return unknownName(code)
}

// TVName returns the symbolic name registered for a TV parameter type
// code, or "Unknown(code)" if the registry doesn't recognize it.
func TVName(code uint8) string {
	if name, ok := tvNames[code]; ok {
		return name
	}
	return unknownName(uint16(code))
}

func unknownName(code uint16) string {
	return fmt.Sprintf("Unknown(0x%04x)", code)
}
