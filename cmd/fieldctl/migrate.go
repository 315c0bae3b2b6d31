package main

import (
	"github.com/spf13/cobra"

	"fleet-field-api/internal/database"
)

func newMigrateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Bring the database schema up to date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := a.openDB()
			if err != nil {
				return err
			}
			defer database.Close(db)

			if err := database.Migrate(db, a.logger); err != nil {
				return err
			}
			a.logger.Info("Database migrations completed")
			return nil
		},
	}
}
