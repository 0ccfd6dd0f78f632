package param

// TLV parameter type codes (10-bit, always >=128). Normative per LLRP
// Specification Section 16.2; preserved bit-exact (spec.md §6).
const (
	TypeUTCTimestamp                      uint16 = 128
	TypeUptime                            uint16 = 129
	TypeGeneralDeviceCapabilities         uint16 = 137
	TypeReceiveSensitivityTableEntry      uint16 = 139
	TypePerAntennaAirProtocol             uint16 = 140
	TypeGPIOCapabilities                  uint16 = 141
	TypeLLRPCapabilities                  uint16 = 142
	TypeRegulatoryCapabilities            uint16 = 143
	TypeUHFBandCapabilities               uint16 = 144
	TypeTransmitPowerLevelTableEntry      uint16 = 145
	TypeFrequencyInformation              uint16 = 146
	TypeFrequencyHopTable                 uint16 = 147
	TypeFixedFrequencyTable               uint16 = 148
	TypePerAntennaReceiveSensitivityRange uint16 = 149
	TypeROSpec                            uint16 = 177
	TypeROBoundarySpec                    uint16 = 178
	TypeROSpecStartTrigger                uint16 = 179
	TypePeriodicTriggerValue              uint16 = 180
	TypeGPITriggerValue                   uint16 = 181
	TypeROSpecStopTrigger                 uint16 = 182
	TypeAISpec                            uint16 = 183
	TypeAISpecStopTrigger                 uint16 = 184
	TypeTagObservationTrigger             uint16 = 185
	TypeInventoryParameterSpec            uint16 = 186
	TypeAccessSpec                        uint16 = 207
	TypeAccessSpecStopTrigger             uint16 = 208
	TypeAccessCommand                     uint16 = 209
	TypeLLRPConfigurationStateValue       uint16 = 217
	TypeIdentification                    uint16 = 218
	TypeGPOWriteData                      uint16 = 219
	TypeKeepaliveSpec                     uint16 = 220
	TypeAntennaProperties                 uint16 = 221
	TypeAntennaConfiguration              uint16 = 222
	TypeRFReceiver                        uint16 = 223
	TypeRFTransmitter                     uint16 = 224
	TypeGPIPortCurrentState               uint16 = 225
	TypeEventsAndReports                  uint16 = 226
	TypeROReportSpec                      uint16 = 237
	TypeTagReportContentSelector          uint16 = 238
	TypeAccessReportSpec                  uint16 = 239
	TypeTagReportData                     uint16 = 240
	TypeEPCData                           uint16 = 241
	TypeReaderEventNotificationSpec       uint16 = 244
	TypeEventNotificationState            uint16 = 245
	TypeReaderEventNotificationData       uint16 = 246
	TypeHoppingEvent                      uint16 = 247
	TypeGPIEvent                          uint16 = 248
	TypeROSpecEvent                       uint16 = 249
	TypeReportBufferLevelWarningEvent     uint16 = 250
	TypeReportBufferOverflowErrorEvent    uint16 = 251
	TypeReaderExceptionEvent              uint16 = 252
	TypeRFSurveyEvent                     uint16 = 253
	TypeAISpecEvent                       uint16 = 254
	TypeAntennaEvent                      uint16 = 255
	TypeConnectionAttemptEvent            uint16 = 256
	TypeConnectionCloseEvent              uint16 = 257
	TypeLLRPStatus                        uint16 = 287
	TypeFieldError                        uint16 = 288
	TypeParameterError                    uint16 = 289
	TypeC1G2InventoryCommand              uint16 = 330
	TypeC1G2Filter                        uint16 = 331
	TypeC1G2TagInventoryMask              uint16 = 332
	TypeC1G2RFControl                     uint16 = 335
	TypeC1G2SingulationControl            uint16 = 336
	TypeC1G2TagSpec                       uint16 = 338
	TypeC1G2TargetTag                     uint16 = 339
	TypeC1G2Read                          uint16 = 341
	TypeC1G2Write                         uint16 = 342
	TypeC1G2Lock                          uint16 = 344
	TypeC1G2LockPayload                   uint16 = 345
	TypeC1G2BlockWrite                    uint16 = 347
	TypeC1G2ReadOpSpecResult              uint16 = 349
	TypeC1G2WriteOpSpecResult             uint16 = 350
	TypeC1G2KillOpSpecResult              uint16 = 351
	TypeC1G2LockOpSpecResult              uint16 = 352
	TypeC1G2BlockEraseOpSpecResult        uint16 = 353
	TypeC1G2BlockWriteOpSpecResult        uint16 = 354
	TypeC1G2RecommissionOpSpecResult      uint16 = 360
	TypeC1G2BlockPermalockOpSpecResult    uint16 = 361
	TypeC1G2GetBlockPermalockStatusResult uint16 = 362
	TypeMaximumReceiveSensitivity         uint16 = 363
	TypeRFSurveyFrequencyCapabilities     uint16 = 365
	TypeUHFRFModeTable                    uint16 = 328
	TypeUHFC1G2RFModeTableEntry           uint16 = 329
)

// TV parameter type codes (7-bit, always <128). Only the two needed by
// required-presence decoding get named constants; the rest are handled
// generically by the TV registry (§4.3's "generic TV walker").
const (
	TypeROSpecIDTV uint8 = 9
	TypeEPC96TV    uint8 = 13
)

// Message type codes (10-bit TLV namespace). Normative per LLRP
// Specification Section 16.1.2 (spec.md §6).
const (
	MsgGetReaderCapabilities        uint16 = 1
	MsgGetReaderConfig              uint16 = 2
	MsgSetReaderConfig              uint16 = 3
	MsgCloseConnectionResponse      uint16 = 4
	MsgGetReaderCapabilitiesResp    uint16 = 11
	MsgGetReaderConfigResponse      uint16 = 12
	MsgSetReaderConfigResponse      uint16 = 13
	MsgCloseConnection              uint16 = 14
	MsgAddROSpec                    uint16 = 20
	MsgDeleteROSpec                 uint16 = 21
	MsgStartROSpec                  uint16 = 22
	MsgStopROSpec                   uint16 = 23
	MsgEnableROSpec                 uint16 = 24
	MsgDisableROSpec                uint16 = 25
	MsgAddROSpecResponse            uint16 = 30
	MsgDeleteROSpecResponse         uint16 = 31
	MsgStartROSpecResponse          uint16 = 32
	MsgStopROSpecResponse           uint16 = 33
	MsgEnableROSpecResponse         uint16 = 34
	MsgDisableROSpecResponse        uint16 = 35
	MsgAddAccessSpec                uint16 = 40
	MsgDeleteAccessSpec             uint16 = 41
	MsgEnableAccessSpec             uint16 = 42
	MsgDisableAccessSpec            uint16 = 43
	MsgAddAccessSpecResponse        uint16 = 50
	MsgDeleteAccessSpecResponse     uint16 = 51
	MsgEnableAccessSpecResponse     uint16 = 52
	MsgDisableAccessSpecResponse    uint16 = 53
	MsgROAccessReport               uint16 = 61
	MsgKeepalive                    uint16 = 62
	MsgReaderEventNotification      uint16 = 63
	MsgEnableEventsAndReports       uint16 = 64
	MsgKeepaliveAck                 uint16 = 72
	MsgErrorMessage                 uint16 = 100
)
