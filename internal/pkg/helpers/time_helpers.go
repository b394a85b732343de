package helpers

import (
	"time"

	"github.com/rs/zerolog/log"
)

// DateLayout is the wire format of calendar dates
const DateLayout = "2006-01-02"

// ParseDuration parses a duration string, returns default duration on error.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	return duration
}

// Today returns the current local date at midnight
func Today() time.Time {
	return TruncateToDay(time.Now())
}

// TruncateToDay drops the clock part of t in its own location
func TruncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// ParseOptionalDate parses a YYYY-MM-DD query value; empty input yields nil
func ParseOptionalDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(DateLayout, value, time.Local)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
