package config

import "fmt"

var mapStyles = map[string]bool{
	"light":   true,
	"dark":    true,
	"minimal": true,
}

// Validate rejects configuration misuse at the boundary so the pipeline
// stages never have to re-check their inputs.
func (c *Config) Validate() error {
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	}
	if c.ResampleSeconds < 0 {
		return fmt.Errorf("resample seconds must not be negative, got %d", c.ResampleSeconds)
	}
	if c.SmoothWindow < 1 {
		return fmt.Errorf("smooth window must be at least 1, got %d", c.SmoothWindow)
	}
	if c.MaxAccuracy < 0 {
		return fmt.Errorf("max accuracy must not be negative, got %g", c.MaxAccuracy)
	}
	if c.DedupTolerance < 0 {
		return fmt.Errorf("dedup tolerance must not be negative, got %g", c.DedupTolerance)
	}
	if c.Zoom <= 0 {
		return fmt.Errorf("zoom must be positive, got %g", c.Zoom)
	}
	if c.LineWidth <= 0 {
		return fmt.Errorf("line width must be positive, got %g", c.LineWidth)
	}
	if !mapStyles[c.MapStyle] {
		return fmt.Errorf("unknown map style %q", c.MapStyle)
	}
	return nil
}
