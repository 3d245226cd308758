package main

import (
	"github.com/spf13/cobra"
	"github.com/yukikurage/task-tracker-api/internal/database"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the schema and indexes",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, _, db, err := bootstrap()
		if err != nil {
			return err
		}
		defer closeDB(db)

		return database.Migrate(db)
	},
}
