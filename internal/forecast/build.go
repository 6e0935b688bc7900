package forecast

import (
	"encoding/json"
	"time"
)

// Normalize transforms one raw upstream response body into a Bundle. It is
// a single pass with no retained state and it never fails: a body that is
// not JSON, or whose top-level shape is missing or malformed, degrades to
// an empty Bundle (empty series, nil location, zero analysis instant). Bad
// fields degrade record-by-record to NaN/empty sentinels so one broken
// entry cannot abort the rest of the series.
func Normalize(body []byte) Bundle {
	var p payload
	if err := json.Unmarshal(body, &p); err != nil {
		return Bundle{}
	}

	var raw json.RawMessage
	if len(p.Data) > 0 {
		raw = p.Data[0].Weather
	}
	records := flattenWeather(raw)

	series := buildSeries(records)
	SortSeries(series)

	return Bundle{
		Location:        p.Location,
		AnalysisInstant: scanAnalysisInstant(records),
		Series:          series,
	}
}

// buildSeries converts flattened records to observations in flatten order.
// Every record yields exactly one observation; unparsable numeric fields
// become NaN rather than dropping the entry.
func buildSeries(records []record) Series {
	if len(records) == 0 {
		return nil
	}
	series := make(Series, 0, len(records))
	for _, r := range records {
		instant, _ := parseLocal(r.LocalDatetime)
		series = append(series, Observation{
			Instant:      instant,
			TemperatureC: toNumber(r.Temperature),
			HumidityPct:  toNumber(r.Humidity),
			WindSpeedKmh: toNumber(r.WindSpeed),
			Condition:    toDisplayString(r.Description),
			IconURL:      toDisplayString(r.Image),
		})
	}
	return series
}

// scanAnalysisInstant finds the first record carrying an analysis timestamp,
// in flatten order, and applies the analysis-time rule to it. Later
// occurrences are ignored even when they differ. A first match that fails to
// parse leaves the instant absent; the scan does not fall through to later
// records.
func scanAnalysisInstant(records []record) time.Time {
	for _, r := range records {
		if r.AnalysisDate == "" {
			continue
		}
		t, err := parseAnalysis(r.AnalysisDate)
		if err != nil {
			return time.Time{}
		}
		return t
	}
	return time.Time{}
}
