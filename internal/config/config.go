package config

import (
	"os"
)

// Config holds the settings for the full pipeline. Flag parsing fills in
// the CLI-facing fields; Validate runs before anything touches the core,
// which assumes validated inputs.
type Config struct {
	// Pipeline
	Input           string  // path to the Takeout JSON export
	Output          string  // destination video file
	FramesDir       string  // directory for intermediate frame images
	FPS             int     // video frames per second
	MaxAccuracy     float64 // meters; 0 disables the accuracy filter
	ResampleSeconds int     // resample bucket width; 0 disables
	SmoothWindow    int     // moving-average window; 1 disables
	Interpolate     bool    // fill resample gaps by linear interpolation
	DedupTolerance  float64 // spatial dedup tolerance in meters

	// Rendering
	LineColor string  // polyline hex color
	LineWidth float64 // polyline width in pixels
	MapStyle  string  // light, dark or minimal
	Zoom      float64 // zoom factor, higher zooms in

	// Storage and preview API
	DBPath     string
	ListenAddr string

	LogLevel string
}

// Load returns the default configuration, with storage and server settings
// overridable through the environment.
func Load() *Config {
	addr := os.Getenv("PORT")
	if addr == "" {
		addr = ":8080"
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./data/trajectory.db"
	}

	return &Config{
		Output:         "output/videos/trajectory.mp4",
		FramesDir:      "output/frames",
		FPS:            30,
		SmoothWindow:   1,
		DedupTolerance: 5.0,
		LineColor:      "#1f77b4",
		LineWidth:      2.0,
		MapStyle:       "light",
		Zoom:           1.0,
		DBPath:         dbPath,
		ListenAddr:     addr,
		LogLevel:       "info",
	}
}
