package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	config "task-marketplace.com/task-marketplace/internal/configs"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		if _, err := config.NewDatabaseClient(cfg.DatabaseDSN); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "schema up to date (%s)\n", cfg.DatabaseDSN)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
