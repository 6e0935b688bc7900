package forecast

import "encoding/json"

// flattenWeather concatenates the upstream's days-of-slots grid into a
// single flat slice, outer collection order first, inner order within.
// Absence and structural mismatch both collapse to the empty slice; neither
// is an error condition.
func flattenWeather(raw json.RawMessage) []record {
	if len(raw) == 0 {
		return nil
	}
	var days [][]record
	if err := json.Unmarshal(raw, &days); err != nil {
		return nil
	}
	var flat []record
	for _, day := range days {
		flat = append(flat, day...)
	}
	return flat
}
