package forecast

import (
	"strings"
	"time"
)

const localLayout = "2006-01-02 15:04:05"

// wib is the fixed UTC+7 offset the upstream uses for local_datetime
// strings. The payload never marks the zone itself.
var wib = time.FixedZone("WIB", 7*60*60)

// parseLocal interprets a bare `YYYY-MM-DD HH:mm:ss` string as wall-clock
// time at UTC+7, producing an instant with an explicit offset. The shape is
// guaranteed upstream; a string that does not match it returns an error and
// a zero time.
func parseLocal(s string) (time.Time, error) {
	return time.ParseInLocation(localLayout, s, wib)
}

// parseAnalysis parses an analysis timestamp that may or may not carry its
// trailing `Z` zone marker. The marker is appended only when absent, so the
// rule is idempotent: feeding an already-zoned string through twice yields
// the same instant.
func parseAnalysis(s string) (time.Time, error) {
	if !strings.HasSuffix(s, "Z") {
		s += "Z"
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
