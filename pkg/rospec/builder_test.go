package rospec

import (
	"bytes"
	"testing"

	"github.com/rfidware/llrp/pkg/param"
)

func TestBuildDefaults(t *testing.T) {
	cfg := Config{
		ROSpecID:           1,
		Priority:           0,
		State:              param.ROSpecStateActive,
		AntennaIDs:         []uint16{1},
		TxPowerIndex:       91,
		ModeIndex:          1000,
		Tari:               6250,
		SingulationSession: 2,
		TagPopulation:      4,
	}

	spec, err := Build(cfg)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if spec.ROBoundarySpec.StartTrigger.Type != param.StartTriggerImmediate {
		t.Errorf("start trigger = %v, want Immediate", spec.ROBoundarySpec.StartTrigger.Type)
	}
	if spec.ROBoundarySpec.StopTrigger.Type != param.StopTriggerNull {
		t.Errorf("stop trigger = %v, want Null", spec.ROBoundarySpec.StopTrigger.Type)
	}
	if spec.AISpec.AISpecStopTrigger.DurationTriggerValue != defaultAISpecStopDurationMS {
		t.Errorf("AISpec stop duration = %d, want %d", spec.AISpec.AISpecStopTrigger.DurationTriggerValue, defaultAISpecStopDurationMS)
	}
	if spec.ROReportSpec.N != defaultReportEveryNTags {
		t.Errorf("report N = %d, want %d", spec.ROReportSpec.N, defaultReportEveryNTags)
	}
	if spec.ROReportSpec.ROReportTrigger != param.ROReportUponNTagsOrEndOfAISpec {
		t.Errorf("report trigger = %v, want UponNTagsOrEndOfAISpec", spec.ROReportSpec.ROReportTrigger)
	}

	sel := spec.ROReportSpec.TagReportContentSelector
	if !sel.EnableAntennaID || !sel.EnablePeakRSSI || !sel.EnableLastSeenTimestamp || !sel.EnableTagSeenCount {
		t.Errorf("default selector missing expected fields: %+v", sel)
	}

	if len(spec.AISpec.InventoryParameterSpec) != 1 {
		t.Fatalf("InventoryParameterSpec count = %d, want 1", len(spec.AISpec.InventoryParameterSpec))
	}
	ips := spec.AISpec.InventoryParameterSpec[0]
	if len(ips.AntennaConfiguration) != 1 {
		t.Fatalf("AntennaConfiguration count = %d, want 1", len(ips.AntennaConfiguration))
	}
	cmd := ips.AntennaConfiguration[0].C1G2InventoryCommand
	if cmd == nil || cmd.C1G2RFControl == nil {
		t.Fatal("missing C1G2RFControl")
	}
	if cmd.C1G2RFControl.ModeIndex != 1000 || cmd.C1G2RFControl.Tari != 6250 {
		t.Errorf("C1G2RFControl = %+v, want ModeIndex=1000 Tari=6250", cmd.C1G2RFControl)
	}
}

func TestBuildDurationSetsStopTrigger(t *testing.T) {
	dur := uint32(2000)
	cfg := Config{
		ROSpecID:   1,
		State:      param.ROSpecStateActive,
		AntennaIDs: []uint16{1},
		DurationMS: &dur,
	}

	spec, err := Build(cfg)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if spec.ROBoundarySpec.StopTrigger.Type != param.StopTriggerDuration {
		t.Errorf("stop trigger = %v, want Duration", spec.ROBoundarySpec.StopTrigger.Type)
	}
	if spec.ROBoundarySpec.StopTrigger.DurationTriggerValue != dur {
		t.Errorf("stop trigger duration = %d, want %d", spec.ROBoundarySpec.StopTrigger.DurationTriggerValue, dur)
	}
}

func TestBuildInvalidArguments(t *testing.T) {
	base := Config{ROSpecID: 1, State: param.ROSpecStateActive, AntennaIDs: []uint16{1}}

	tooHighPriority := base
	tooHighPriority.Priority = 8
	if _, err := Build(tooHighPriority); err == nil {
		t.Error("expected error for Priority=8")
	}

	noAntennas := base
	noAntennas.AntennaIDs = nil
	if _, err := Build(noAntennas); err == nil {
		t.Error("expected error for empty AntennaIDs")
	}

	badSession := base
	badSession.SingulationSession = 4
	if _, err := Build(badSession); err == nil {
		t.Error("expected error for SingulationSession=4")
	}
}

// TestROReportSpecRoundTrip exercises spec.md scenario S6: building an
// ROSpec and round-tripping its ROReportSpec through the wire codec.
func TestROReportSpecRoundTrip(t *testing.T) {
	dur := uint32(2000)
	cfg := Config{
		ROSpecID:           1,
		State:              param.ROSpecStateActive,
		AntennaIDs:         []uint16{1},
		TxPowerIndex:       91,
		ModeIndex:          1000,
		Tari:               6250,
		DurationMS:         &dur,
		SingulationSession: 2,
		TagPopulation:      4,
	}

	spec, err := Build(cfg)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	encoded := spec.ROReportSpec.Encode()
	decoded, tail, err := param.DecodeROReportSpec(encoded)
	if err != nil {
		t.Fatalf("DecodeROReportSpec: %v", err)
	}
	if len(tail) != 0 {
		t.Fatalf("unexpected tail: %d bytes", len(tail))
	}
	reEncoded := decoded.Encode()
	if !bytes.Equal(encoded, reEncoded) {
		t.Fatalf("round-trip mismatch:\n  got  %x\n  want %x", reEncoded, encoded)
	}

	ips := spec.AISpec.InventoryParameterSpec
	if len(ips) != 1 || len(ips[0].AntennaConfiguration) != 1 {
		t.Fatal("expected exactly one AntennaConfiguration")
	}
	rf := ips[0].AntennaConfiguration[0].C1G2InventoryCommand.C1G2RFControl
	if rf.ModeIndex != 1000 || rf.Tari != 6250 {
		t.Errorf("C1G2RFControl = %+v, want ModeIndex=1000 Tari=6250", rf)
	}
}
