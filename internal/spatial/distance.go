package spatial

import (
	"github.com/golang/geo/s2"
)

// Constants
const (
	// EarthRadiusMeters is Earth's mean radius in meters
	EarthRadiusMeters = 6371000.0

	// e7Scale converts E7 fixed-point coordinates to decimal degrees
	e7Scale = 1e7
)

// DecodeE7 converts an E7 fixed-point coordinate (degrees multiplied by 1e7,
// as found in Google Takeout exports) into decimal degrees.
func DecodeE7(v float64) float64 {
	return v / e7Scale
}

// HaversineDistance calculates the great-circle distance between two points
// in meters. The result is symmetric: HaversineDistance(a, b) equals
// HaversineDistance(b, a).
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lon1)
	p2 := s2.LatLngFromDegrees(lat2, lon2)
	return p1.Distance(p2).Radians() * EarthRadiusMeters
}
