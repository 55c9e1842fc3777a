package main

import (
	"database/sql"
	"errors"

	"github.com/spf13/cobra"

	. "github.com/DrGermanius/LaundryPOS/internal"
)

func migrateCmd() *cobra.Command {
	var down bool
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply the postgres schema migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.DatabaseURI == "" {
				return errors.New("migrate needs DATABASE_URI or --database")
			}
			db, err := sql.Open("pgx", cfg.DatabaseURI)
			if err != nil {
				return err
			}
			defer db.Close()

			if down {
				return MigrateDown(db)
			}
			return Migrate(db)
		},
	}
	cmd.Flags().BoolVar(&down, "down", false, "roll back the latest migration")
	return cmd
}
