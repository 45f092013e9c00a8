package spatial

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeE7(t *testing.T) {
	assert.InDelta(t, 40.7128, DecodeE7(407128000), 1e-9)
	assert.InDelta(t, -74.0060, DecodeE7(-740060000), 1e-9)
	assert.Equal(t, 0.0, DecodeE7(0))
}

func TestHaversineDistanceZeroForIdenticalPoints(t *testing.T) {
	assert.InDelta(t, 0.0, HaversineDistance(40.7128, -74.0060, 40.7128, -74.0060), 1e-6)
}

func TestHaversineDistanceSymmetric(t *testing.T) {
	pairs := [][4]float64{
		{40.7128, -74.0060, 51.5074, -0.1278},
		{-33.8688, 151.2093, 35.6762, 139.6503},
		{0, 0, 0, 180},
	}
	for _, p := range pairs {
		d1 := HaversineDistance(p[0], p[1], p[2], p[3])
		d2 := HaversineDistance(p[2], p[3], p[0], p[1])
		assert.InDelta(t, d1, d2, 1e-6)
	}
}

func TestHaversineDistanceKnownValue(t *testing.T) {
	// New York to London is roughly 5570 km.
	d := HaversineDistance(40.7128, -74.0060, 51.5074, -0.1278)
	assert.InDelta(t, 5570000, d, 10000)
}

func TestHaversineDistanceShortRange(t *testing.T) {
	// One ten-thousandth of a degree of latitude is about 11.1 meters.
	d := HaversineDistance(40.7128, -74.0060, 40.7129, -74.0060)
	assert.InDelta(t, 11.1, d, 0.2)
}
