package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"fleet-field-api/internal/database"
	"fleet-field-api/internal/events"
	"fleet-field-api/internal/repository"
	"fleet-field-api/internal/service"
)

// newPurgeEntityCmd deletes a subject together with all of its field values.
// Events are not published; running API instances pick the change up on
// their next read.
func newPurgeEntityCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "purge-entity <entityId>",
		Short: "Delete an entity and every custom field value attached to it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := a.openDB()
			if err != nil {
				return err
			}
			defer database.Close(db)

			entities := service.NewEntityService(
				repository.NewEntityRepository(db),
				events.NopPublisher{},
				nil,
				a.logger,
			)
			if err := entities.DeleteEntity(cmd.Context(), args[0]); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "purged %s\n", args[0])
			return nil
		},
	}
}
