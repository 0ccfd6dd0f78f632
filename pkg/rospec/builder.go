package rospec

import "github.com/rfidware/llrp/pkg/param"

// defaultAISpecStopDurationMS is the AISpec stop-trigger duration used
// when Config doesn't override it.
const defaultAISpecStopDurationMS = 500

// defaultReportEveryNTags is the report-trigger tag count used when
// Config.ReportEveryNTags is zero.
const defaultReportEveryNTags = 1

// protocolIDEPCGlobalClass1Gen2 is the air-protocol identifier for
// EPCglobal Class-1 Generation-2 (LLRP Specification Section 16.2.4.1,
// AirProtocolInventoryCommandSettings; the enumeration appears at
// spec.md §4.4's "AirProtocolIdentifier" table).
const protocolIDEPCGlobalClass1Gen2 uint8 = 1

// Config holds the ergonomic arguments from which Build assembles an
// ROSpec (LLRP Specification Section 16.2.4). Only the fields the
// caller sets to something other than the zero value deviate from the
// defaults documented on Build.
type Config struct {
	ROSpecID uint32
	Priority uint8
	State    param.ROSpecState

	AntennaIDs   []uint16
	TxPowerIndex uint16
	ModeIndex    uint16
	Tari         uint16

	// DurationMS, if non-nil, bounds the ROSpec's active window with a
	// Duration stop trigger. A nil value leaves the ROSpec running
	// until explicitly stopped (Null stop trigger).
	DurationMS *uint32

	// ReportEveryNTags overrides the report-trigger tag count; zero
	// means defaultReportEveryNTags.
	ReportEveryNTags uint16

	// TagContentSelector overrides the default selector fields
	// {AntennaID, PeakRSSI, LastSeenTimestamp, TagSeenCount} when
	// non-nil.
	TagContentSelector *param.TagReportContentSelector

	SingulationSession uint8
	TagPopulation      uint16
}

func defaultTagContentSelector() param.TagReportContentSelector {
	return param.TagReportContentSelector{
		EnableAntennaID:         true,
		EnablePeakRSSI:          true,
		EnableLastSeenTimestamp: true,
		EnableTagSeenCount:      true,
	}
}

func (c *Config) validate() error {
	if c.Priority > 7 {
		return invalidArgument("Priority", "must be in [0, 7]")
	}
	switch c.State {
	case param.ROSpecStateDisabled, param.ROSpecStateInactive, param.ROSpecStateActive:
	default:
		return invalidArgument("State", "must be Disabled, Inactive, or Active")
	}
	if len(c.AntennaIDs) == 0 {
		return invalidArgument("AntennaIDs", "must name at least one antenna")
	}
	if c.SingulationSession > 3 {
		return invalidArgument("SingulationSession", "must be in [0, 3]")
	}
	return nil
}

// Build assembles a fully populated ROSpec from cfg (LLRP
// Specification Section 16.2.4). Defaults: start trigger Immediate;
// stop trigger Null unless DurationMS is set, in which case Duration;
// AISpec stop trigger Duration with defaultAISpecStopDurationMS;
// report trigger Upon_N_Tags_Or_End_Of_AISpec with N =
// defaultReportEveryNTags unless ReportEveryNTags overrides it.
func Build(cfg Config) (*param.ROSpec, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	startTrigger := param.ROSpecStartTrigger{Type: param.StartTriggerImmediate}

	stopTrigger := param.ROSpecStopTrigger{Type: param.StopTriggerNull}
	if cfg.DurationMS != nil {
		stopTrigger = param.ROSpecStopTrigger{
			Type:                 param.StopTriggerDuration,
			DurationTriggerValue: *cfg.DurationMS,
		}
	}

	antennaIDs := make([]uint16, len(cfg.AntennaIDs))
	copy(antennaIDs, cfg.AntennaIDs)

	antennaConfig := param.AntennaConfiguration{
		AntennaID: antennaIDs[0],
		RFTransmitter: &param.RFTransmitter{
			TransmitPower: cfg.TxPowerIndex,
		},
		C1G2InventoryCommand: &param.C1G2InventoryCommand{
			C1G2RFControl: &param.C1G2RFControl{
				ModeIndex: cfg.ModeIndex,
				Tari:      cfg.Tari,
			},
			C1G2SingulationControl: &param.C1G2SingulationControl{
				Session:       cfg.SingulationSession,
				TagPopulation: cfg.TagPopulation,
			},
		},
	}

	aiSpec := param.AISpec{
		AntennaIDs: antennaIDs,
		AISpecStopTrigger: param.AISpecStopTrigger{
			Type:                 param.AIStopTriggerDuration,
			DurationTriggerValue: defaultAISpecStopDurationMS,
		},
		InventoryParameterSpec: []param.InventoryParameterSpec{
			{
				InventoryParameterSpecID: 1,
				ProtocolID:               protocolIDEPCGlobalClass1Gen2,
				AntennaConfiguration:     []param.AntennaConfiguration{antennaConfig},
			},
		},
	}

	selector := defaultTagContentSelector()
	if cfg.TagContentSelector != nil {
		selector = *cfg.TagContentSelector
	}

	n := cfg.ReportEveryNTags
	if n == 0 {
		n = defaultReportEveryNTags
	}

	return &param.ROSpec{
		ROSpecID:     cfg.ROSpecID,
		Priority:     cfg.Priority,
		CurrentState: cfg.State,
		ROBoundarySpec: param.ROBoundarySpec{
			StartTrigger: startTrigger,
			StopTrigger:  stopTrigger,
		},
		AISpec: aiSpec,
		ROReportSpec: param.ROReportSpec{
			ROReportTrigger:          param.ROReportUponNTagsOrEndOfAISpec,
			N:                        n,
			TagReportContentSelector: selector,
		},
	}, nil
}
