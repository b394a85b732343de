package main

import (
	"github.com/spf13/cobra"

	"github.com/yigit/ams/internal/bootstrap"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(configPath)
		if err != nil {
			return err
		}
		pool, err := bootstrap.OpenDatabase(cmd.Context(), cfg, lgr)
		if err != nil {
			return err
		}
		defer pool.Close()

		return bootstrap.RunMigrations(cmd.Context(), cfg, pool, lgr)
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
