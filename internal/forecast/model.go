package forecast

import (
	"encoding/json"
	"math"
	"strings"
	"time"
)

// Observation is one normalized weather data point at a specific instant.
// Numeric fields are NaN when the source value was absent or unparsable;
// they are never silently zero.
type Observation struct {
	Instant      time.Time
	TemperatureC float64
	HumidityPct  float64
	WindSpeedKmh float64
	Condition    string
	IconURL      string
}

// Series is an ordered sequence of observations, non-decreasing by Instant
// once sorted.
type Series []Observation

// Location identifies the administrative area a forecast covers.
type Location struct {
	Province string `json:"province"`
	Regency  string `json:"regency"`
	District string `json:"district"`
	Village  string `json:"village"`
}

// Summary returns a single display string, most specific part first,
// skipping empty fields.
func (l Location) Summary() string {
	parts := make([]string, 0, 4)
	for _, p := range []string{l.Village, l.District, l.Regency, l.Province} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// Averages groups the windowed means of the three numeric projections.
// Each field is NaN when the window is empty.
type Averages struct {
	TemperatureC float64
	HumidityPct  float64
	WindSpeedKmh float64
}

// Bundle is the full normalized result of one payload: everything the
// presentation layer consumes. It is a value; nothing mutates it after
// Normalize returns.
type Bundle struct {
	Location        *Location `json:"location"`
	AnalysisInstant time.Time `json:"analysisInstant"`
	Series          Series    `json:"series"`
}

// Latest returns the most recent observation, or ok=false for an empty series.
func (b Bundle) Latest() (Observation, bool) {
	if len(b.Series) == 0 {
		return Observation{}, false
	}
	return b.Series[len(b.Series)-1], true
}

// Window returns the trailing 24-hour subset of the series relative to now.
func (b Bundle) Window(now time.Time) Series {
	return TrailingWindow(b.Series, now)
}

// WindowAverages computes the mean temperature, humidity and wind speed over
// the trailing 24-hour window relative to now.
func (b Bundle) WindowAverages(now time.Time) Averages {
	win := b.Window(now)
	temps := make([]float64, len(win))
	hums := make([]float64, len(win))
	winds := make([]float64, len(win))
	for i, o := range win {
		temps[i] = o.TemperatureC
		hums[i] = o.HumidityPct
		winds[i] = o.WindSpeedKmh
	}
	return Averages{
		TemperatureC: Average(temps),
		HumidityPct:  Average(hums),
		WindSpeedKmh: Average(winds),
	}
}

// HasAnalysisInstant reports whether the payload carried any analysis
// timestamp at all.
func (b Bundle) HasAnalysisInstant() bool {
	return !b.AnalysisInstant.IsZero()
}

// nullable maps the NaN sentinel to a JSON null.
func nullable(f float64) *float64 {
	if math.IsNaN(f) {
		return nil
	}
	return &f
}

// MarshalJSON encodes NaN sentinels as null, since encoding/json refuses
// NaN outright.
func (o Observation) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Instant      time.Time `json:"instant"`
		TemperatureC *float64  `json:"temperatureC"`
		HumidityPct  *float64  `json:"humidityPercent"`
		WindSpeedKmh *float64  `json:"windSpeedKmh"`
		Condition    string    `json:"condition"`
		IconURL      string    `json:"iconUrl,omitempty"`
	}{
		Instant:      o.Instant,
		TemperatureC: nullable(o.TemperatureC),
		HumidityPct:  nullable(o.HumidityPct),
		WindSpeedKmh: nullable(o.WindSpeedKmh),
		Condition:    o.Condition,
		IconURL:      o.IconURL,
	})
}

// MarshalJSON encodes empty-window NaN means as null.
func (a Averages) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		TemperatureC *float64 `json:"temperatureC"`
		HumidityPct  *float64 `json:"humidityPercent"`
		WindSpeedKmh *float64 `json:"windSpeedKmh"`
	}{
		TemperatureC: nullable(a.TemperatureC),
		HumidityPct:  nullable(a.HumidityPct),
		WindSpeedKmh: nullable(a.WindSpeedKmh),
	})
}
