package forecast

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// toNumber converts a loosely typed scalar (number, numeric string, or
// absent) to a float64. Anything unavailable or unparsable becomes NaN;
// callers treat NaN as "no value", never as zero.
func toNumber(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return math.NaN()
		}
		return f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return math.NaN()
		}
		return f
	default:
		return math.NaN()
	}
}

// toDisplayString converts an untyped field to text for display: absent
// becomes the empty string, everything else is stringified.
func toDisplayString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	default:
		return fmt.Sprint(s)
	}
}
