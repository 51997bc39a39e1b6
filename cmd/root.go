package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	config "task-marketplace.com/task-marketplace/internal/configs"
)

var rootCmd = &cobra.Command{
	Use:           "marketplace",
	Short:         "Task marketplace service",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads .env (if any) and then the environment.
func loadConfig() (config.Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return config.Config{}, fmt.Errorf("failed to read .env: %w", err)
	}
	return config.Load()
}
