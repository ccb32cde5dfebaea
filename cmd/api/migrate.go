package main

import (
	"context"

	"github.com/spf13/cobra"

	"curador/internal/database"
	"curador/internal/database/migration"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the locais and objetos tables if they do not exist",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigrate(cmd.Context())
	},
}

func runMigrate(ctx context.Context) error {
	cfg, log := setup()
	defer log.Sync()

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	return migration.EnsureMigrated(ctx, db, log, cfg.Database.Host)
}
