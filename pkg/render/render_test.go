package render

import (
	"strings"
	"testing"

	"github.com/rfidware/llrp/pkg/param"
)

func TestRenderStatus(t *testing.T) {
	st := &param.LLRPStatus{
		StatusCode:       param.StatusSuccess,
		ErrorDescription: "ok",
	}
	out := Render(st)
	if !strings.Contains(out, "LLRPStatus:") {
		t.Errorf("missing type header in %q", out)
	}
	if !strings.Contains(out, "ErrorDescription: ok") {
		t.Errorf("missing scalar field in %q", out)
	}
}

func TestRenderNestedStruct(t *testing.T) {
	spec := &param.ROReportSpec{
		ROReportTrigger: param.ROReportUponNTagsOrEndOfAISpec,
		N:               1,
		TagReportContentSelector: param.TagReportContentSelector{
			EnableAntennaID: true,
		},
	}
	out := Render(spec)
	if !strings.Contains(out, "ROReportSpec:") {
		t.Errorf("missing top-level header in %q", out)
	}
	if !strings.Contains(out, "TagReportContentSelector:") {
		t.Errorf("missing nested header in %q", out)
	}
}

func TestRenderNilPointer(t *testing.T) {
	var p *param.LLRPStatus
	out := Render(p)
	if strings.TrimSpace(out) != "nil" {
		t.Errorf("Render(nil) = %q, want \"nil\"", out)
	}
}
