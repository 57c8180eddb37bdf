package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/studysaathi/studysaathi/internal/database"
	"github.com/studysaathi/studysaathi/schemas"
)

func newMigrateCommand() *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migration commands",
	}

	migrateCmd.AddCommand(newMigrateUpCommand())

	return migrateCmd
}

func newMigrateUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, err := openDatabase()
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			applied, err := database.Migrate(cmd.Context(), db, schemas.Migrations, "migrations")
			if err != nil {
				return fmt.Errorf("database.Migrate() > %w", err)
			}
			if len(applied) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Database is up to date.")
				return nil
			}
			for _, version := range applied {
				fmt.Fprintf(cmd.OutOrStdout(), "Applied %s\n", version)
			}
			return nil
		},
	}
}
