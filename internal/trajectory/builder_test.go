package trajectory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Woongicloud/MyGoogleTimeLine-visualizing/internal/models"
)

var t0 = time.Date(2023, 6, 15, 10, 0, 0, 0, time.UTC)

func pt(offset time.Duration, lat, lon float64) models.TrajectoryPoint {
	return models.TrajectoryPoint{Timestamp: t0.Add(offset), Latitude: lat, Longitude: lon}
}

func floatPtr(v float64) *float64 { return &v }

func TestBuildEmptyInput(t *testing.T) {
	assert.Empty(t, Build(nil, Options{ResampleInterval: time.Minute, SmoothWindow: 3, Interpolate: true}))
}

func TestBuildPassThrough(t *testing.T) {
	points := []models.TrajectoryPoint{pt(0, 40, -74), pt(time.Minute, 41, -75)}
	out := Build(points, Options{})
	assert.Equal(t, points, out)
}

func TestResampleInterpolatesMidpoint(t *testing.T) {
	// Two samples 120 s apart, 60 s buckets: the middle bucket gets the
	// time-weighted midpoint.
	points := []models.TrajectoryPoint{
		pt(0, 40.0, -74.0),
		pt(120*time.Second, 42.0, -76.0),
	}

	out := Build(points, Options{ResampleInterval: 60 * time.Second, Interpolate: true})
	require.Len(t, out, 3)
	assert.Equal(t, t0.Add(60*time.Second), out[1].Timestamp)
	assert.InDelta(t, 41.0, out[1].Latitude, 1e-9)
	assert.InDelta(t, -75.0, out[1].Longitude, 1e-9)
}

func TestResampleWithoutInterpolationDropsEmptyBuckets(t *testing.T) {
	points := []models.TrajectoryPoint{
		pt(0, 40.0, -74.0),
		pt(120*time.Second, 42.0, -76.0),
	}

	out := Build(points, Options{ResampleInterval: 60 * time.Second})
	require.Len(t, out, 2)
	assert.Equal(t, t0, out[0].Timestamp)
	assert.Equal(t, t0.Add(120*time.Second), out[1].Timestamp)
}

func TestResampleTakesFirstSamplePerBucket(t *testing.T) {
	points := []models.TrajectoryPoint{
		pt(0, 40.0, -74.0),
		pt(10*time.Second, 40.5, -74.5), // same bucket, ignored
		pt(60*time.Second, 41.0, -75.0),
	}

	out := Build(points, Options{ResampleInterval: 60 * time.Second})
	require.Len(t, out, 2)
	assert.InDelta(t, 40.0, out[0].Latitude, 1e-9)
	assert.InDelta(t, 41.0, out[1].Latitude, 1e-9)
}

func TestResampleSnapsToGridTimestamps(t *testing.T) {
	points := []models.TrajectoryPoint{
		pt(0, 40.0, -74.0),
		pt(95*time.Second, 41.0, -75.0),
	}

	out := Build(points, Options{ResampleInterval: 30 * time.Second})
	require.Len(t, out, 2)
	// 95 s lands in the bucket anchored at 90 s.
	assert.Equal(t, t0.Add(90*time.Second), out[1].Timestamp)
}

func TestResampleInterpolatesOptionalFieldsOnlyWhenBothKnown(t *testing.T) {
	points := []models.TrajectoryPoint{
		{Timestamp: t0, Latitude: 40, Longitude: -74, Accuracy: floatPtr(10), Speed: floatPtr(1)},
		{Timestamp: t0.Add(120 * time.Second), Latitude: 42, Longitude: -76, Accuracy: floatPtr(20)},
	}

	out := Build(points, Options{ResampleInterval: 60 * time.Second, Interpolate: true})
	require.Len(t, out, 3)
	require.NotNil(t, out[1].Accuracy)
	assert.InDelta(t, 15.0, *out[1].Accuracy, 1e-9)
	// Speed known on one side only: left absent rather than invented.
	assert.Nil(t, out[1].Speed)
}

func TestSmoothPreservesCountAndOrder(t *testing.T) {
	points := []models.TrajectoryPoint{
		pt(0, 40.0, -74.0),
		pt(1*time.Minute, 40.1, -74.1),
		pt(2*time.Minute, 40.2, -74.2),
		pt(3*time.Minute, 40.3, -74.3),
		pt(4*time.Minute, 40.4, -74.4),
	}

	out := Build(points, Options{SmoothWindow: 3})
	require.Len(t, out, 5)
	for i := 1; i < len(out); i++ {
		assert.True(t, out[i].Timestamp.After(out[i-1].Timestamp))
		assert.Greater(t, out[i].Latitude, out[i-1].Latitude)
	}

	// Interior samples equal the mean of themselves and both neighbors.
	for i := 1; i < 4; i++ {
		want := (points[i-1].Latitude + points[i].Latitude + points[i+1].Latitude) / 3
		assert.InDelta(t, want, out[i].Latitude, 1e-9)
	}
}

func TestSmoothShrinksWindowAtEdges(t *testing.T) {
	points := []models.TrajectoryPoint{
		pt(0, 40.0, -74.0),
		pt(1*time.Minute, 40.3, -74.3),
		pt(2*time.Minute, 40.6, -74.6),
	}

	out := Build(points, Options{SmoothWindow: 3})
	require.Len(t, out, 3)
	// First sample averages over the two available points.
	assert.InDelta(t, (40.0+40.3)/2, out[0].Latitude, 1e-9)
	assert.InDelta(t, (40.3+40.6)/2, out[2].Latitude, 1e-9)
}

func TestSmoothWindowOneIsNoop(t *testing.T) {
	points := []models.TrajectoryPoint{pt(0, 40.0, -74.0), pt(time.Minute, 41.0, -75.0)}
	out := Build(points, Options{SmoothWindow: 1})
	assert.Equal(t, points, out)
}

func TestBuildResamplesBeforeSmoothing(t *testing.T) {
	points := []models.TrajectoryPoint{
		pt(0, 40.0, -74.0),
		pt(120*time.Second, 42.0, -76.0),
	}

	out := Build(points, Options{
		ResampleInterval: 60 * time.Second,
		Interpolate:      true,
		SmoothWindow:     3,
	})
	require.Len(t, out, 3)
	// Resampling first yields 40, 41, 42; already linear, smoothing keeps
	// the interior midpoint intact.
	assert.InDelta(t, 41.0, out[1].Latitude, 1e-9)
	for i := 1; i < len(out); i++ {
		assert.True(t, out[i].Timestamp.After(out[i-1].Timestamp))
	}
}

func TestComputeStats(t *testing.T) {
	points := []models.TrajectoryPoint{
		pt(0, 40.7128, -74.0060),
		pt(time.Hour, 40.7138, -74.0060),
	}

	s := ComputeStats(points)
	assert.Equal(t, 2, s.Points)
	assert.Equal(t, 3600.0, s.DurationSeconds)
	// 0.001 degrees of latitude is roughly 111 meters.
	assert.InDelta(t, 111, s.DistanceMeters, 2)
	assert.InDelta(t, s.DistanceMeters/3600, s.AverageSpeedMPS, 1e-9)
	assert.Equal(t, 40.7128, s.MinLatitude)
	assert.Equal(t, 40.7138, s.MaxLatitude)
}

func TestComputeStatsEmpty(t *testing.T) {
	assert.Equal(t, Stats{}, ComputeStats(nil))
}
