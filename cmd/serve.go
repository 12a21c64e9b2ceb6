package cmd

import (
	"github.com/spf13/cobra"

	"github.com/fuzumoe/domsight-api/internal/app"
)

// serveCmd starts the analysis API server.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "start the domsight api server",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return app.Run(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
