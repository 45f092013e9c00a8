package trajectory

import (
	"time"

	"github.com/Woongicloud/MyGoogleTimeLine-visualizing/internal/models"
	"github.com/Woongicloud/MyGoogleTimeLine-visualizing/internal/spatial"
)

// Stats summarizes a trajectory.
type Stats struct {
	Points          int       `json:"points"`
	Start           time.Time `json:"start"`
	End             time.Time `json:"end"`
	DurationSeconds float64   `json:"durationSeconds"`
	DistanceMeters  float64   `json:"distanceMeters"`
	AverageSpeedMPS float64   `json:"averageSpeedMps"`
	MinLatitude     float64   `json:"minLatitude"`
	MaxLatitude     float64   `json:"maxLatitude"`
	MinLongitude    float64   `json:"minLongitude"`
	MaxLongitude    float64   `json:"maxLongitude"`
}

// ComputeStats returns summary statistics for an ordered trajectory. The
// zero Stats value is returned for an empty trajectory.
func ComputeStats(points []models.TrajectoryPoint) Stats {
	if len(points) == 0 {
		return Stats{}
	}

	s := Stats{
		Points:       len(points),
		Start:        points[0].Timestamp,
		End:          points[len(points)-1].Timestamp,
		MinLatitude:  points[0].Latitude,
		MaxLatitude:  points[0].Latitude,
		MinLongitude: points[0].Longitude,
		MaxLongitude: points[0].Longitude,
	}

	for i := range points {
		p := points[i]
		if p.Latitude < s.MinLatitude {
			s.MinLatitude = p.Latitude
		}
		if p.Latitude > s.MaxLatitude {
			s.MaxLatitude = p.Latitude
		}
		if p.Longitude < s.MinLongitude {
			s.MinLongitude = p.Longitude
		}
		if p.Longitude > s.MaxLongitude {
			s.MaxLongitude = p.Longitude
		}
		if i > 0 {
			prev := points[i-1]
			s.DistanceMeters += spatial.HaversineDistance(
				prev.Latitude, prev.Longitude, p.Latitude, p.Longitude)
		}
	}

	s.DurationSeconds = s.End.Sub(s.Start).Seconds()
	if s.DurationSeconds > 0 {
		s.AverageSpeedMPS = s.DistanceMeters / s.DurationSeconds
	}
	return s
}
