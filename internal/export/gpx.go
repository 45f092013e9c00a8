// Package export writes a stored trajectory in interchange formats.
package export

import (
	"errors"
	"fmt"
	"io"

	"github.com/tkrajina/gpxgo/gpx"

	"github.com/Woongicloud/MyGoogleTimeLine-visualizing/internal/models"
)

// ErrNoPoints is returned when there is no trajectory to export.
var ErrNoPoints = errors.New("no trajectory points to export")

// WriteGPX writes the trajectory as a single GPX track segment with
// timestamps preserved.
func WriteGPX(points []models.TrajectoryPoint, w io.Writer) error {
	if len(points) == 0 {
		return ErrNoPoints
	}

	segment := gpx.GPXTrackSegment{}
	for _, p := range points {
		segment.AppendPoint(&gpx.GPXPoint{
			Point: gpx.Point{
				Latitude:  p.Latitude,
				Longitude: p.Longitude,
			},
			Timestamp: p.Timestamp,
		})
	}

	doc := &gpx.GPX{
		Creator: "timelapse",
		Tracks: []gpx.GPXTrack{
			{
				Name:     "trajectory",
				Segments: []gpx.GPXTrackSegment{segment},
			},
		},
	}

	xml, err := doc.ToXml(gpx.ToXmlParams{Version: "1.1", Indent: true})
	if err != nil {
		return fmt.Errorf("failed to serialize GPX: %w", err)
	}
	if _, err := w.Write(xml); err != nil {
		return fmt.Errorf("failed to write GPX: %w", err)
	}
	return nil
}
