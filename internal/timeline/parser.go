// Package timeline parses Google Timeline (Takeout) exports into a cleaned,
// time-ordered trajectory. Exports have no stable schema, so extraction
// treats the document as untyped JSON and recovers points on a best-effort
// basis: a malformed record is dropped, never an error.
package timeline

import (
	"sort"

	"github.com/Woongicloud/MyGoogleTimeLine-visualizing/internal/models"
	"github.com/Woongicloud/MyGoogleTimeLine-visualizing/internal/spatial"
)

// DefaultDedupTolerance is the minimum great-circle distance in meters a
// point must move from the last kept point to be considered distinct.
const DefaultDedupTolerance = 5.0

// Options controls parsing.
type Options struct {
	// MaxAccuracy drops points whose reported accuracy exceeds this value
	// in meters. Points with unknown accuracy are kept. Nil disables the
	// filter.
	MaxAccuracy *float64

	// DedupTolerance is the spatial deduplication tolerance in meters.
	// Values <= 0 fall back to DefaultDedupTolerance.
	DedupTolerance float64
}

// Parse extracts location points from a decoded Takeout document and returns
// them filtered, sorted ascending by timestamp and spatially deduplicated.
// An export with no usable points yields an empty slice, not an error;
// callers decide what an empty trajectory means.
func Parse(doc map[string]any, opts Options) []models.TrajectoryPoint {
	candidates := extractAll(doc)

	points := make([]models.TrajectoryPoint, 0, len(candidates))
	for _, c := range candidates {
		// Extraction only emits candidates with resolved timestamp and
		// coordinates; the zero check guards direct construction.
		if c.Timestamp.IsZero() {
			continue
		}
		if opts.MaxAccuracy != nil && c.Accuracy != nil && *c.Accuracy > *opts.MaxAccuracy {
			continue
		}
		points = append(points, models.TrajectoryPoint{
			Timestamp: c.Timestamp,
			Latitude:  c.Latitude,
			Longitude: c.Longitude,
			Accuracy:  c.Accuracy,
			Speed:     c.Speed,
		})
	}

	// Stable: ties keep the order the export listed them in.
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Timestamp.Before(points[j].Timestamp)
	})

	return dedupByDistance(points, opts.DedupTolerance)
}

// dedupByDistance keeps the first point and every subsequent point farther
// than tolerance meters from the last kept point. This is a greedy streaming
// filter against the last kept point, not a clustering pass: a slow drift
// that never exceeds the tolerance between samples collapses to one point.
// That is the intended anti-jitter behavior.
func dedupByDistance(points []models.TrajectoryPoint, tolerance float64) []models.TrajectoryPoint {
	if tolerance <= 0 {
		tolerance = DefaultDedupTolerance
	}
	if len(points) == 0 {
		return points
	}

	kept := make([]models.TrajectoryPoint, 0, len(points))
	kept = append(kept, points[0])
	last := points[0]
	for _, p := range points[1:] {
		d := spatial.HaversineDistance(last.Latitude, last.Longitude, p.Latitude, p.Longitude)
		if d > tolerance {
			kept = append(kept, p)
			last = p
		}
	}
	return kept
}
