package forecast

import (
	"testing"
	"time"
)

func TestParseLocalKeepsWallClock(t *testing.T) {
	cases := []string{
		"2024-01-01 00:00:00",
		"2024-01-01 03:00:00",
		"2024-12-31 23:59:59",
	}
	for _, s := range cases {
		got, err := parseLocal(s)
		if err != nil {
			t.Fatalf("parseLocal(%q): unexpected error: %v", s, err)
		}
		if got.Format(localLayout) != s {
			t.Errorf("parseLocal(%q): wall clock changed to %q", s, got.Format(localLayout))
		}
		_, offset := got.Zone()
		if offset != 7*60*60 {
			t.Errorf("parseLocal(%q): expected +07:00 offset, got %d seconds", s, offset)
		}
	}
}

func TestParseLocalAgainstUTC(t *testing.T) {
	got, err := parseLocal("2024-01-01 07:00:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("expected instant %v, got %v", want, got)
	}
}

func TestParseAnalysisAppendsZone(t *testing.T) {
	bare, err := parseAnalysis("2024-01-01T12:00:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	zoned, err := parseAnalysis("2024-01-01T12:00:00Z")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bare.Equal(zoned) {
		t.Errorf("expected %v == %v", bare, zoned)
	}
	if bare.Location() != time.UTC {
		t.Errorf("expected UTC, got %v", bare.Location())
	}
}

func TestParseAnalysisIdempotent(t *testing.T) {
	once, err := parseAnalysis("2024-06-28T12:00:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	twice, err := parseAnalysis(once.Format(time.RFC3339))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !once.Equal(twice) {
		t.Errorf("expected rule to be idempotent: %v != %v", once, twice)
	}
}
