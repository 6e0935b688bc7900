package forecast

import "encoding/json"

// payload mirrors the upstream BMKG response shape: an optional location
// object and a data array whose first element carries the nested weather
// grid. The weather field stays raw until flattening so that a malformed
// shape collapses to an empty series instead of failing the whole decode.
type payload struct {
	Location *Location `json:"location"`
	Data     []struct {
		Weather json.RawMessage `json:"weather"`
	} `json:"data"`
}

// record is one raw weather entry as the upstream emits it. The numeric
// fields arrive as numbers or strings depending on the upstream mood, so
// they are decoded untyped and coerced later.
type record struct {
	LocalDatetime string `json:"local_datetime"`
	AnalysisDate  string `json:"analysis_date"`
	Temperature   any    `json:"t"`
	Humidity      any    `json:"hu"`
	WindSpeed     any    `json:"ws"`
	Description   any    `json:"weather_desc"`
	Image         any    `json:"image"`
}
