package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Woongicloud/MyGoogleTimeLine-visualizing/internal/database"
	"github.com/Woongicloud/MyGoogleTimeLine-visualizing/internal/models"
	"github.com/Woongicloud/MyGoogleTimeLine-visualizing/internal/render"
	"github.com/Woongicloud/MyGoogleTimeLine-visualizing/internal/repository"
	"github.com/Woongicloud/MyGoogleTimeLine-visualizing/internal/timeline"
	"github.com/Woongicloud/MyGoogleTimeLine-visualizing/internal/trajectory"
	"github.com/Woongicloud/MyGoogleTimeLine-visualizing/internal/video"
)

func newRenderCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Parse an export and render the trajectory video",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			return runRender(cmd)
		},
	}

	cmd.Flags().StringVar(&cfg.Input, "input", "", "path to the Takeout JSON export (required)")
	cmd.Flags().StringVar(&cfg.Output, "output", cfg.Output, "destination video file")
	cmd.Flags().StringVar(&cfg.FramesDir, "frames-dir", cfg.FramesDir, "directory for intermediate frame images")
	cmd.Flags().IntVar(&cfg.FPS, "fps", cfg.FPS, "frames per second for the video")
	cmd.Flags().Float64Var(&cfg.MaxAccuracy, "max-accuracy", cfg.MaxAccuracy, "drop points with accuracy above this many meters (0 disables)")
	cmd.Flags().IntVar(&cfg.ResampleSeconds, "resample", cfg.ResampleSeconds, "resample the trajectory to this many seconds per step (0 disables)")
	cmd.Flags().IntVar(&cfg.SmoothWindow, "smooth-window", cfg.SmoothWindow, "window size for moving-average smoothing of coordinates")
	cmd.Flags().BoolVar(&cfg.Interpolate, "interpolate", cfg.Interpolate, "fill resample gaps by linear interpolation")
	cmd.Flags().Float64Var(&cfg.DedupTolerance, "dedup-tolerance", cfg.DedupTolerance, "minimum distance in meters between kept points")
	cmd.Flags().StringVar(&cfg.LineColor, "line-color", cfg.LineColor, "polyline hex color")
	cmd.Flags().Float64Var(&cfg.LineWidth, "line-width", cfg.LineWidth, "polyline width in pixels")
	cmd.Flags().StringVar(&cfg.MapStyle, "style", cfg.MapStyle, "background style: light, dark or minimal")
	cmd.Flags().Float64Var(&cfg.Zoom, "zoom", cfg.Zoom, "zoom factor, higher zooms in")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func runRender(cmd *cobra.Command) error {
	doc, err := loadDocument(cfg.Input)
	if err != nil {
		return err
	}

	opts := timeline.Options{DedupTolerance: cfg.DedupTolerance}
	if cfg.MaxAccuracy > 0 {
		opts.MaxAccuracy = &cfg.MaxAccuracy
	}

	logger.Info().Str("input", cfg.Input).Msg("parsing timeline export")
	points := timeline.Parse(doc, opts)
	if len(points) == 0 {
		// A valid but useless export: nothing to render, not a failure.
		logger.Warn().Str("input", cfg.Input).Msg("no usable location points found; nothing to render")
		return nil
	}
	logger.Info().Int("points", len(points)).Msg("parsed trajectory points")

	points = trajectory.Build(points, trajectory.Options{
		ResampleInterval: time.Duration(cfg.ResampleSeconds) * time.Second,
		SmoothWindow:     cfg.SmoothWindow,
		Interpolate:      cfg.Interpolate,
	})

	stats := trajectory.ComputeStats(points)
	logger.Info().
		Int("points", stats.Points).
		Float64("distance_m", stats.DistanceMeters).
		Float64("duration_s", stats.DurationSeconds).
		Msg("built trajectory")

	if err := persistTrajectory(points); err != nil {
		return err
	}

	renderer, err := render.New(points, cfg.FramesDir, render.Options{
		LineColor: cfg.LineColor,
		LineWidth: cfg.LineWidth,
		Style:     cfg.MapStyle,
		Zoom:      cfg.Zoom,
	}, logger)
	if err != nil {
		return err
	}
	if _, err := renderer.RenderFrames(); err != nil {
		return err
	}

	if err := video.Encode(cmd.Context(), cfg.FramesDir, cfg.Output, cfg.FPS, logger); err != nil {
		return err
	}

	logger.Info().Str("output", cfg.Output).Msg("video created")
	return nil
}

// loadDocument reads and decodes the export. Decode failures are hard
// errors; silently rendering an empty document would hide a broken export.
func loadDocument(path string) (map[string]any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode input JSON: %w", err)
	}
	return doc, nil
}

func persistTrajectory(points []models.TrajectoryPoint) error {
	db, err := database.Open(database.Config{Path: cfg.DBPath})
	if err != nil {
		return err
	}
	defer db.Close()

	repo := repository.NewTrajectoryRepository(db)
	if err := repo.ReplaceAll(points); err != nil {
		return err
	}
	logger.Info().Str("db", cfg.DBPath).Int("points", len(points)).Msg("stored trajectory")
	return nil
}
