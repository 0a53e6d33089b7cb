package domain

import (
	"testing"
	"time"
)

func strPtr(s string) *string { return &s }

func TestMaintenancePatch_EmptyAndColumns(t *testing.T) {
	var p MaintenancePatch
	if !p.IsEmpty() || len(p.Columns()) != 0 {
		t.Fatalf("zero patch should be empty")
	}

	p.Status = strPtr(StatusReady)
	cols := p.Columns()
	if p.IsEmpty() || len(cols) != 1 || cols["status"] != StatusReady {
		t.Fatalf("unexpected columns %#v", cols)
	}

	when := time.Date(2026, 1, 2, 3, 4, 0, 0, time.FixedZone("X", 3600))
	p = MaintenancePatch{Comment: strPtr(""), ExpectedCompletion: &when}
	cols = p.Columns()
	if c, ok := cols["comment"]; !ok || c != "" {
		t.Fatalf("empty comment must still be present: %#v", cols)
	}
	if got := cols["expected_completion"].(time.Time); got.Location() != time.UTC || !got.Equal(when) {
		t.Fatalf("expected_completion not normalized to UTC: %v", got)
	}
}
