// Package trajectory turns a cleaned point sequence into the table handed
// to the renderer: optional regridding onto a fixed time step with gap
// interpolation, followed by optional moving-average smoothing. Every stage
// is a pure transformation producing a new slice; nothing aliases back to
// the parser's data.
package trajectory

import (
	"time"

	"github.com/Woongicloud/MyGoogleTimeLine-visualizing/internal/models"
)

// Options controls trajectory reconstruction.
type Options struct {
	// ResampleInterval regrids the series onto buckets of this width,
	// starting at the first sample. Zero disables resampling.
	ResampleInterval time.Duration

	// SmoothWindow is the moving-average window over latitude and
	// longitude. Values <= 1 disable smoothing.
	SmoothWindow int

	// Interpolate fills empty resample buckets by time-weighted linear
	// interpolation between the nearest known neighbors. Ignored unless
	// resampling is enabled.
	Interpolate bool
}

// Build applies resampling and smoothing in that order. Empty input returns
// empty output unchanged.
func Build(points []models.TrajectoryPoint, opts Options) []models.TrajectoryPoint {
	if len(points) == 0 {
		return points
	}
	if opts.ResampleInterval > 0 {
		points = resample(points, opts.ResampleInterval, opts.Interpolate)
	}
	if opts.SmoothWindow > 1 {
		points = smooth(points, opts.SmoothWindow)
	}
	return points
}

// resample regrids the series onto fixed-width buckets anchored at the
// first sample's timestamp. Each bucket takes the first observed sample and
// carries the grid instant. Interior empty buckets are interpolated when
// requested; buckets that stay empty are omitted from the output. No
// extrapolation happens past the first or last known sample.
func resample(points []models.TrajectoryPoint, interval time.Duration, interpolate bool) []models.TrajectoryPoint {
	start := points[0].Timestamp
	last := points[len(points)-1].Timestamp
	buckets := int(last.Sub(start)/interval) + 1

	grid := make([]*models.TrajectoryPoint, buckets)
	for i := range points {
		p := points[i]
		idx := int(p.Timestamp.Sub(start) / interval)
		if grid[idx] == nil {
			grid[idx] = &models.TrajectoryPoint{
				Timestamp: start.Add(time.Duration(idx) * interval),
				Latitude:  p.Latitude,
				Longitude: p.Longitude,
				Accuracy:  p.Accuracy,
				Speed:     p.Speed,
			}
		}
	}

	if interpolate {
		fillGaps(grid)
	}

	out := make([]models.TrajectoryPoint, 0, buckets)
	for _, p := range grid {
		if p != nil {
			out = append(out, *p)
		}
	}
	return out
}

// fillGaps linearly interpolates interior empty buckets between the nearest
// known samples on each side. The first and last buckets always hold
// samples because the grid is anchored at the first observation and ends at
// the last.
func fillGaps(grid []*models.TrajectoryPoint) {
	prev := -1
	for i := 0; i < len(grid); i++ {
		if grid[i] == nil {
			continue
		}
		if prev >= 0 && i-prev > 1 {
			a, b := grid[prev], grid[i]
			span := float64(i - prev)
			for j := prev + 1; j < i; j++ {
				ratio := float64(j-prev) / span
				grid[j] = &models.TrajectoryPoint{
					Timestamp: a.Timestamp.Add(time.Duration(float64(b.Timestamp.Sub(a.Timestamp)) * ratio)),
					Latitude:  lerp(a.Latitude, b.Latitude, ratio),
					Longitude: lerp(a.Longitude, b.Longitude, ratio),
					Accuracy:  lerpOptional(a.Accuracy, b.Accuracy, ratio),
					Speed:     lerpOptional(a.Speed, b.Speed, ratio),
				}
			}
		}
		prev = i
	}
}

func lerp(a, b, ratio float64) float64 {
	return a + (b-a)*ratio
}

// lerpOptional interpolates a nullable field only when both neighbors carry
// it; a half-known value would be an invention.
func lerpOptional(a, b *float64, ratio float64) *float64 {
	if a == nil || b == nil {
		return nil
	}
	v := lerp(*a, *b, ratio)
	return &v
}

// smooth replaces latitude and longitude with a centered moving average
// over window consecutive samples. At the sequence edges the window shrinks
// to whatever samples exist; count and order are preserved.
func smooth(points []models.TrajectoryPoint, window int) []models.TrajectoryPoint {
	out := make([]models.TrajectoryPoint, len(points))
	copy(out, points)

	for i := range points {
		lo := i - (window-1)/2
		hi := i + window/2
		if lo < 0 {
			lo = 0
		}
		if hi > len(points)-1 {
			hi = len(points) - 1
		}

		var latSum, lonSum float64
		for j := lo; j <= hi; j++ {
			latSum += points[j].Latitude
			lonSum += points[j].Longitude
		}
		n := float64(hi - lo + 1)
		out[i].Latitude = latSum / n
		out[i].Longitude = lonSum / n
	}
	return out
}
