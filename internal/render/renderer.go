// Package render draws one frame per trajectory prefix: the path walked so
// far as a polyline, the current position, and a timestamp caption over a
// themed background. Frames land on disk under zero-padded sequential names
// ready for the video encoder.
package render

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/rs/zerolog"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/Woongicloud/MyGoogleTimeLine-visualizing/internal/models"
)

// FramePattern is the printf pattern for frame filenames, shared with the
// video encoder. Frame numbers start at 1.
const FramePattern = "frame_%05d.png"

const (
	defaultSize = 800
	minZoom     = 0.1
	gridLines   = 8
)

// ErrNoPoints is returned when a renderer is created over an empty
// trajectory.
var ErrNoPoints = errors.New("no trajectory points available for rendering")

// Options controls frame appearance.
type Options struct {
	LineColor string  // polyline hex color
	LineWidth float64 // polyline width in pixels
	Style     string  // theme name: light, dark, minimal
	Zoom      float64 // higher zooms in; clamped to a sane minimum
	Width     int     // frame width in pixels, 0 for default
	Height    int     // frame height in pixels, 0 for default
}

// Renderer renders trajectory frames to disk.
type Renderer struct {
	points    []models.TrajectoryPoint
	framesDir string
	opts      Options
	theme     Theme
	captionFP font.Face
	logger    zerolog.Logger
}

// New validates the inputs and prepares a renderer writing into framesDir.
func New(points []models.TrajectoryPoint, framesDir string, opts Options, logger zerolog.Logger) (*Renderer, error) {
	if len(points) == 0 {
		return nil, ErrNoPoints
	}
	if opts.Width <= 0 {
		opts.Width = defaultSize
	}
	if opts.Height <= 0 {
		opts.Height = defaultSize
	}
	if opts.Zoom < minZoom {
		opts.Zoom = minZoom
	}
	if err := os.MkdirAll(framesDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create frames directory: %w", err)
	}

	ttf, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse caption font: %w", err)
	}
	face := truetype.NewFace(ttf, &truetype.Options{Size: float64(opts.Width) / 40})

	return &Renderer{
		points:    points,
		framesDir: framesDir,
		opts:      opts,
		theme:     themeFor(opts.Style),
		captionFP: face,
		logger:    logger,
	}, nil
}

// bounds computes the fixed lat/lon viewport over the whole trajectory,
// padded by a zoom-scaled margin so the path never touches the edge.
func (r *Renderer) bounds() (latMin, latMax, lonMin, lonMax float64) {
	latMin, latMax = r.points[0].Latitude, r.points[0].Latitude
	lonMin, lonMax = r.points[0].Longitude, r.points[0].Longitude
	for _, p := range r.points[1:] {
		if p.Latitude < latMin {
			latMin = p.Latitude
		}
		if p.Latitude > latMax {
			latMax = p.Latitude
		}
		if p.Longitude < lonMin {
			lonMin = p.Longitude
		}
		if p.Longitude > lonMax {
			lonMax = p.Longitude
		}
	}

	latRange := latMax - latMin
	if latRange == 0 {
		latRange = 0.001
	}
	lonRange := lonMax - lonMin
	if lonRange == 0 {
		lonRange = 0.001
	}
	latMargin := latRange * 0.1 / r.opts.Zoom
	lonMargin := lonRange * 0.1 / r.opts.Zoom
	return latMin - latMargin, latMax + latMargin, lonMin - lonMargin, lonMax + lonMargin
}

// RenderFrames writes one frame per trajectory prefix and returns the
// written paths in order.
func (r *Renderer) RenderFrames() ([]string, error) {
	latMin, latMax, lonMin, lonMax := r.bounds()

	toX := func(lon float64) float64 {
		return (lon - lonMin) / (lonMax - lonMin) * float64(r.opts.Width)
	}
	toY := func(lat float64) float64 {
		// Latitude grows upward, image Y grows downward.
		return float64(r.opts.Height) - (lat-latMin)/(latMax-latMin)*float64(r.opts.Height)
	}

	bar := progressbar.Default(int64(len(r.points)), "rendering frames")
	paths := make([]string, 0, len(r.points))

	for idx := 1; idx <= len(r.points); idx++ {
		framePath := filepath.Join(r.framesDir, fmt.Sprintf(FramePattern, idx))
		if err := r.renderFrame(framePath, r.points[:idx], toX, toY); err != nil {
			return nil, fmt.Errorf("failed to render frame %d: %w", idx, err)
		}
		paths = append(paths, framePath)
		_ = bar.Add(1)
	}

	r.logger.Info().Int("frames", len(paths)).Str("dir", r.framesDir).Msg("rendered trajectory frames")
	return paths, nil
}

// renderFrame draws the prefix polyline, the current position marker and
// the timestamp caption, then writes the PNG.
func (r *Renderer) renderFrame(path string, prefix []models.TrajectoryPoint, toX, toY func(float64) float64) error {
	dc := gg.NewContext(r.opts.Width, r.opts.Height)

	dc.SetHexColor(r.theme.Background)
	dc.Clear()
	r.drawGrid(dc)

	if len(prefix) > 1 {
		dc.SetHexColor(r.opts.LineColor)
		dc.SetLineWidth(r.opts.LineWidth)
		dc.MoveTo(toX(prefix[0].Longitude), toY(prefix[0].Latitude))
		for _, p := range prefix[1:] {
			dc.LineTo(toX(p.Longitude), toY(p.Latitude))
		}
		dc.Stroke()
	}

	current := prefix[len(prefix)-1]
	dc.SetHexColor(r.theme.Marker)
	dc.DrawCircle(toX(current.Longitude), toY(current.Latitude), r.opts.LineWidth*3)
	dc.Fill()

	dc.SetHexColor(r.theme.Text)
	dc.SetFontFace(r.captionFP)
	caption := current.Timestamp.Format("2006-01-02 15:04:05 UTC")
	dc.DrawStringAnchored(caption, float64(r.opts.Width)/2, float64(r.opts.Height)/30, 0.5, 0.5)

	return dc.SavePNG(path)
}

// drawGrid paints evenly spaced reference lines.
func (r *Renderer) drawGrid(dc *gg.Context) {
	dc.SetHexColor(r.theme.Grid)
	dc.SetLineWidth(0.8)
	for i := 1; i < gridLines; i++ {
		x := float64(i) * float64(r.opts.Width) / gridLines
		dc.DrawLine(x, 0, x, float64(r.opts.Height))
		y := float64(i) * float64(r.opts.Height) / gridLines
		dc.DrawLine(0, y, float64(r.opts.Width), y)
	}
	dc.Stroke()
}
