package job

import (
	"testing"
	"time"
)

func TestMetadataString(t *testing.T) {
	m := Metadata{"salaryRange": "$1 - $2", "headcount": 3}
	if got := m.String("salaryRange"); got != "$1 - $2" {
		t.Fatalf("unexpected value %q", got)
	}
	if got := m.String("headcount"); got != "" {
		t.Fatalf("expected empty for non-string, got %q", got)
	}
	var nilMeta Metadata
	if got := nilMeta.String("x"); got != "" {
		t.Fatalf("expected empty for nil metadata, got %q", got)
	}
}

func TestToday(t *testing.T) {
	now := time.Date(2024, 3, 9, 23, 0, 0, 0, time.UTC)
	if got := Today(now); got != "2024-03-09" {
		t.Fatalf("unexpected date %q", got)
	}
}
