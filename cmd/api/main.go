package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yigit/ams/internal/bootstrap"
	"github.com/yigit/ams/internal/pkg/logger"
)

// @title AMS API
// @version 1.0
// @description Attendance management for colleges: catalog, faculty, students, subject assignments and daily attendance
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email ams.alerts2025@gmail.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

var configPath string

var rootCmd = &cobra.Command{
	Use:   "ams",
	Short: "Attendance management system API",
	Long: `Attendance management system API.

Running without a subcommand starts the HTTP server.`,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", bootstrap.DefaultConfigPath, "path to the yaml config file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}
