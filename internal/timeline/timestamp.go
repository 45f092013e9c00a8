package timeline

import (
	"strconv"
	"strings"
	"time"
)

// timestampLayouts are tried in order against string timestamps. Takeout
// mixes RFC 3339 with a few near-ISO variants across export generations.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// NormalizeTimestamp converts a raw timestamp value into a UTC instant.
// It accepts RFC 3339 / ISO 8601 strings, integers and floats interpreted
// as epoch milliseconds, numeric strings of epoch milliseconds, and native
// time.Time values. It reports false for anything unparseable; a failed
// parse makes the owning point unusable, it never aborts the caller.
func NormalizeTimestamp(v any) (time.Time, bool) {
	switch t := v.(type) {
	case nil:
		return time.Time{}, false
	case time.Time:
		return t.UTC(), true
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return time.Time{}, false
		}
		for _, layout := range timestampLayouts {
			if parsed, err := time.Parse(layout, s); err == nil {
				return parsed.UTC(), true
			}
		}
		// timestampMs fields arrive as strings of epoch milliseconds.
		if ms, err := strconv.ParseFloat(s, 64); err == nil {
			return fromEpochMillis(ms), true
		}
		return time.Time{}, false
	case float64:
		return fromEpochMillis(t), true
	case int:
		return fromEpochMillis(float64(t)), true
	case int64:
		return fromEpochMillis(float64(t)), true
	default:
		return time.Time{}, false
	}
}

func fromEpochMillis(ms float64) time.Time {
	return time.UnixMilli(int64(ms)).UTC()
}

// resolveTimestamp applies the field resolution order for an entry: explicit
// timestamp first, then the millisecond variant, then the event-time field,
// and finally the nested segment start time. The first resolvable value
// wins and is never overwritten.
func resolveTimestamp(entry map[string]any) (time.Time, bool) {
	for _, key := range []string{"timestamp", "timestampMs", "time"} {
		if v, ok := entry[key]; ok && v != nil {
			if ts, ok := NormalizeTimestamp(v); ok {
				return ts, true
			}
		}
	}
	if duration, ok := childMap(entry, "duration"); ok {
		if ts, ok := NormalizeTimestamp(duration["startTimestamp"]); ok {
			return ts, true
		}
	}
	return time.Time{}, false
}
