package forecast

import (
	"math"
	"testing"
	"time"
)

func TestSortSeriesStable(t *testing.T) {
	ts := time.Date(2024, 1, 1, 0, 0, 0, 0, wib)
	s := Series{
		{Instant: ts.Add(3 * time.Hour), Condition: "late"},
		{Instant: ts, Condition: "tie-first"},
		{Instant: ts, Condition: "tie-second"},
	}
	SortSeries(s)

	if s[0].Condition != "tie-first" || s[1].Condition != "tie-second" {
		t.Errorf("equal instants must keep input order: got %q then %q", s[0].Condition, s[1].Condition)
	}
	if s[2].Condition != "late" {
		t.Errorf("expected late entry last, got %q", s[2].Condition)
	}
}

func TestTrailingWindowBoundary(t *testing.T) {
	now := time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC)
	s := Series{
		{Instant: now.Add(-24*time.Hour - time.Millisecond)},
		{Instant: now.Add(-24 * time.Hour)},
		{Instant: now.Add(-time.Hour)},
		{Instant: now},
	}

	win := TrailingWindow(s, now)
	if len(win) != 3 {
		t.Fatalf("expected 3 observations in window, got %d", len(win))
	}
	if !win[0].Instant.Equal(now.Add(-24 * time.Hour)) {
		t.Errorf("the exactly-24h-old observation must be included")
	}
}

func TestTrailingWindowEmptySeries(t *testing.T) {
	if win := TrailingWindow(nil, time.Now()); len(win) != 0 {
		t.Errorf("expected empty window, got %d", len(win))
	}
}

func TestAverage(t *testing.T) {
	if got := Average([]float64{10, 20, 30}); got != 20 {
		t.Errorf("expected 20, got %v", got)
	}
	if got := Average(nil); !math.IsNaN(got) {
		t.Errorf("expected NaN for empty input, got %v", got)
	}
	if got := Average([]float64{1, math.NaN()}); !math.IsNaN(got) {
		t.Errorf("expected NaN to propagate, got %v", got)
	}
}

func TestWindowAverages(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	b := Bundle{Series: Series{
		{Instant: now.Add(-48 * time.Hour), TemperatureC: 99, HumidityPct: 99, WindSpeedKmh: 99},
		{Instant: now.Add(-2 * time.Hour), TemperatureC: 28, HumidityPct: 80, WindSpeedKmh: 5},
		{Instant: now.Add(-time.Hour), TemperatureC: 30, HumidityPct: 70, WindSpeedKmh: 7},
	}}

	avg := b.WindowAverages(now)
	if avg.TemperatureC != 29 {
		t.Errorf("expected temperature average 29, got %v", avg.TemperatureC)
	}
	if avg.HumidityPct != 75 {
		t.Errorf("expected humidity average 75, got %v", avg.HumidityPct)
	}
	if avg.WindSpeedKmh != 6 {
		t.Errorf("expected wind average 6, got %v", avg.WindSpeedKmh)
	}
}

func TestWindowAveragesEmpty(t *testing.T) {
	avg := Bundle{}.WindowAverages(time.Now())
	if !math.IsNaN(avg.TemperatureC) || !math.IsNaN(avg.HumidityPct) || !math.IsNaN(avg.WindSpeedKmh) {
		t.Errorf("expected NaN averages for empty window, got %+v", avg)
	}
}
