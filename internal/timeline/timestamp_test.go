package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTimestampRFC3339(t *testing.T) {
	ts, ok := NormalizeTimestamp("2023-06-15T10:30:00Z")
	assert.True(t, ok)
	assert.Equal(t, time.Date(2023, 6, 15, 10, 30, 0, 0, time.UTC), ts)
}

func TestNormalizeTimestampWithOffset(t *testing.T) {
	ts, ok := NormalizeTimestamp("2023-06-15T10:30:00.500+02:00")
	assert.True(t, ok)
	assert.Equal(t, time.Date(2023, 6, 15, 8, 30, 0, 500000000, time.UTC), ts)
	assert.Equal(t, time.UTC, ts.Location())
}

func TestNormalizeTimestampEpochMillis(t *testing.T) {
	ts, ok := NormalizeTimestamp(float64(1686824000000))
	assert.True(t, ok)
	assert.Equal(t, time.UnixMilli(1686824000000).UTC(), ts)
}

func TestNormalizeTimestampNumericString(t *testing.T) {
	// timestampMs fields come through as strings of epoch milliseconds.
	ts, ok := NormalizeTimestamp("1686824000000")
	assert.True(t, ok)
	assert.Equal(t, time.UnixMilli(1686824000000).UTC(), ts)
}

func TestNormalizeTimestampNativeTime(t *testing.T) {
	in := time.Date(2023, 6, 15, 10, 30, 0, 0, time.FixedZone("X", 3600))
	ts, ok := NormalizeTimestamp(in)
	assert.True(t, ok)
	assert.Equal(t, in.UTC(), ts)
}

func TestNormalizeTimestampUnparseable(t *testing.T) {
	for _, v := range []any{nil, "", "not a time", true, []any{}, map[string]any{}} {
		_, ok := NormalizeTimestamp(v)
		assert.False(t, ok, "value %v should not parse", v)
	}
}

func TestResolveTimestampPriority(t *testing.T) {
	entry := map[string]any{
		"timestamp":   "2023-06-15T10:30:00Z",
		"timestampMs": "1600000000000",
		"time":        "2020-01-01T00:00:00Z",
	}
	ts, ok := resolveTimestamp(entry)
	assert.True(t, ok)
	assert.Equal(t, time.Date(2023, 6, 15, 10, 30, 0, 0, time.UTC), ts)
}

func TestResolveTimestampFallsBackToDurationStart(t *testing.T) {
	entry := map[string]any{
		"duration": map[string]any{"startTimestamp": "2023-06-15T10:30:00Z"},
	}
	ts, ok := resolveTimestamp(entry)
	assert.True(t, ok)
	assert.Equal(t, time.Date(2023, 6, 15, 10, 30, 0, 0, time.UTC), ts)
}

func TestResolveTimestampSkipsUnparseableFirstChoice(t *testing.T) {
	entry := map[string]any{
		"timestamp":   "garbage",
		"timestampMs": "1686824000000",
	}
	ts, ok := resolveTimestamp(entry)
	assert.True(t, ok)
	assert.Equal(t, time.UnixMilli(1686824000000).UTC(), ts)
}

func TestResolveTimestampNone(t *testing.T) {
	_, ok := resolveTimestamp(map[string]any{"latE7": float64(1)})
	assert.False(t, ok)
}
