package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"simplecrm/cmd/internal/config"
)

// cfg is loaded once by the root command before any subcommand runs.
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:           "simplecrm",
	Short:         "simplecrm is a small CRM backend for clients, deals and their documents",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(cmd.Context())
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		if dbPath, _ := cmd.Flags().GetString("db"); dbPath != "" {
			loaded.DBPath = dbPath
		}

		config.ApplyLogLevel(loaded.LogLevel)
		cfg = loaded
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "SQLite database file (overrides DB_PATH)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
}
