package main

import (
	"github.com/spf13/cobra"

	"github.com/yigit/ams/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	Long: `Run the HTTP server.

Pending migrations are applied on startup and the default catalog is seeded
unless database.seed_on_start is false.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	srv, err := server.NewServer(cmd.Context(), configPath)
	if err != nil {
		return err
	}
	return srv.Run()
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
