package main

import (
	"context"

	"github.com/getmorediners/backend/internal/db"
	"github.com/spf13/cobra"
)

// migrateCmd applies the embedded schema
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending schema migrations",
	RunE:  runMigrate,
}

func runMigrate(cmd *cobra.Command, args []string) error {
	log := newLogger()
	defer log.Sync()

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	pool, err := connect(ctx, log)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := db.RunMigrations(ctx, pool, db.Migrations(), log); err != nil {
		return err
	}
	cmd.Println("schema is up to date")
	return nil
}
