package main

import (
	"github.com/spf13/cobra"

	"github.com/yigit/ams/internal/bootstrap"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the default courses, semesters and the NONE department",
	Long: `Insert the default courses, semesters and the NONE department.

Safe to run repeatedly; existing rows are left untouched.`,
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

		return bootstrap.SeedDefaults(cmd.Context(), pool, lgr)
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
