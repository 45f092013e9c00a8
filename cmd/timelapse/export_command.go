package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Woongicloud/MyGoogleTimeLine-visualizing/internal/database"
	"github.com/Woongicloud/MyGoogleTimeLine-visualizing/internal/export"
	"github.com/Woongicloud/MyGoogleTimeLine-visualizing/internal/repository"
)

func newExportCommand() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the stored trajectory as GPX",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := database.Open(database.Config{Path: cfg.DBPath})
			if err != nil {
				return err
			}
			defer db.Close()

			points, err := repository.NewTrajectoryRepository(db).GetAll()
			if err != nil {
				return err
			}
			if len(points) == 0 {
				logger.Warn().Str("db", cfg.DBPath).Msg("no stored trajectory; nothing to export")
				return nil
			}

			if dir := filepath.Dir(outputPath); dir != "." {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return fmt.Errorf("failed to create output directory: %w", err)
				}
			}
			f, err := os.Create(outputPath)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			defer f.Close()

			if err := export.WriteGPX(points, f); err != nil {
				return err
			}
			logger.Info().Str("output", outputPath).Int("points", len(points)).Msg("exported trajectory")
			return nil
		},
	}

	cmd.Flags().StringVar(&outputPath, "output", "output/trajectory.gpx", "destination GPX file")
	return cmd
}
