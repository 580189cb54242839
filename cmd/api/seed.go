package main

import (
	"github.com/spf13/cobra"

	"simplecrm/cmd/internal/domain/sqlite"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the default client type, executor and contract template into empty tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := sqlite.Init(cmd.Context(), cfg.DBPath)
		if err != nil {
			return err
		}
		defer sqlite.Close(db)

		return sqlite.Seed(cmd.Context(), db)
	},
}
