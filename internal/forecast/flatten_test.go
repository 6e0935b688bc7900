package forecast

import (
	"encoding/json"
	"testing"
)

func TestFlattenWeatherOrder(t *testing.T) {
	raw := json.RawMessage(`[
		[{"local_datetime":"a"},{"local_datetime":"b"}],
		[{"local_datetime":"c"}]
	]`)
	flat := flattenWeather(raw)
	if len(flat) != 3 {
		t.Fatalf("expected 3 records, got %d", len(flat))
	}
	for i, want := range []string{"a", "b", "c"} {
		if flat[i].LocalDatetime != want {
			t.Errorf("index %d: expected %q, got %q", i, want, flat[i].LocalDatetime)
		}
	}
}

func TestFlattenWeatherEmpty(t *testing.T) {
	cases := []struct {
		name string
		raw  json.RawMessage
	}{
		{"absent", nil},
		{"null", json.RawMessage(`null`)},
		{"empty array", json.RawMessage(`[]`)},
		{"not an array", json.RawMessage(`{"oops":true}`)},
		{"flat instead of nested", json.RawMessage(`[{"local_datetime":"a"}]`)},
	}
	for _, c := range cases {
		if got := flattenWeather(c.raw); len(got) != 0 {
			t.Errorf("%s: expected empty, got %d records", c.name, len(got))
		}
	}
}
