package forecast

import (
	"math"
	"sort"
	"time"
)

// windowSpan is the fixed length of the trailing window.
const windowSpan = 24 * time.Hour

// SortSeries orders a series ascending by absolute instant, in place. The
// sort is stable: overlapping forecast blocks can produce same-instant
// entries, and those keep their original relative order.
func SortSeries(s Series) {
	sort.SliceStable(s, func(i, j int) bool {
		return s[i].Instant.Before(s[j].Instant)
	})
}

// TrailingWindow filters an already-sorted series down to the observations
// within the trailing 24 hours of the supplied reference instant. The
// boundary is inclusive: an observation exactly 24h old stays in. The
// reference instant is a parameter, not an ambient clock, so every call
// reflects the caller's idea of "now".
func TrailingWindow(s Series, now time.Time) Series {
	cutoff := now.Add(-windowSpan)
	out := make(Series, 0, len(s))
	for _, o := range s {
		if !o.Instant.Before(cutoff) {
			out = append(out, o)
		}
	}
	return out
}

// Average returns the arithmetic mean of values, or NaN for an empty input.
// NaN distinguishes "no data" from "data averaging to zero". NaN inputs
// propagate: a window holding an unavailable reading yields an unavailable
// mean rather than a silently skewed one.
func Average(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
