package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Woongicloud/MyGoogleTimeLine-visualizing/internal/config"
)

var (
	cfg    = config.Load()
	logger zerolog.Logger
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "timelapse",
		Short: "Turn a Google Timeline export into a trajectory video",
		Long: "timelapse parses a Google Timeline (Takeout) JSON export into a cleaned\n" +
			"trajectory, renders each step as a map frame and encodes the frames into\n" +
			"an MP4. The parsed trajectory is stored in SQLite for the preview API\n" +
			"and GPX export.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := zerolog.ParseLevel(cfg.LogLevel)
			if err != nil {
				return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
			}
			logger = zerolog.New(zerolog.ConsoleWriter{
				Out:        os.Stderr,
				TimeFormat: time.TimeOnly,
			}).Level(level).With().Timestamp().Logger()
			return nil
		},
	}

	root.PersistentFlags().StringVar(&cfg.DBPath, "db", cfg.DBPath, "path to the trajectory SQLite database")
	root.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (trace, debug, info, warn, error)")

	root.AddCommand(newRenderCommand())
	root.AddCommand(newServeCommand())
	root.AddCommand(newExportCommand())
	return root
}
