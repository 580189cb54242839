package main

import (
	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"

	"simplecrm/cmd/internal/domain/sqlite"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := sqlite.Init(cmd.Context(), cfg.DBPath)
		if err != nil {
			return err
		}
		defer sqlite.Close(db)

		log.Infof("schema of %s is up to date", cfg.DBPath)
		return nil
	},
}
