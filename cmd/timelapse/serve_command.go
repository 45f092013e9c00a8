package main

import (
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/Woongicloud/MyGoogleTimeLine-visualizing/internal/api"
	"github.com/Woongicloud/MyGoogleTimeLine-visualizing/internal/database"
)

func newServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the stored trajectory over a preview HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := database.Open(database.Config{Path: cfg.DBPath})
			if err != nil {
				return err
			}
			defer db.Close()

			gin.SetMode(gin.ReleaseMode)
			router := api.SetupRouter(db, logger)

			logger.Info().Str("addr", cfg.ListenAddr).Msg("starting preview API")
			return router.Run(cfg.ListenAddr)
		},
	}

	cmd.Flags().StringVar(&cfg.ListenAddr, "addr", cfg.ListenAddr, "listen address for the preview API")
	return cmd
}
