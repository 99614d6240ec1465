package db

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

//go:embed migrations/*.up.sql
var migrationFiles embed.FS

const upSuffix = ".up.sql"

// Migrations is the schema bundled with the binary.
func Migrations() fs.FS {
	sub, err := fs.Sub(migrationFiles, "migrations")
	if err != nil {
		panic(err)
	}
	return sub
}

// RunMigrations applies every migration in fsys not yet recorded in
// schema_migrations, oldest first. Each file runs in its own transaction.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool, fsys fs.FS, log *zap.Logger) error {
	if _, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version    TEXT PRIMARY KEY,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`); err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	files, err := pendingFiles(fsys)
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}

	applied := 0
	for _, name := range files {
		version := strings.TrimSuffix(name, upSuffix)
		ok, err := apply(ctx, pool, fsys, name, version)
		if err != nil {
			return fmt.Errorf("migration %s: %w", version, err)
		}
		if ok {
			applied++
			log.Info("migration applied", zap.String("version", version))
		}
	}

	log.Info("schema up to date", zap.Int("applied", applied), zap.Int("known", len(files)))
	return nil
}

// apply runs one migration file unless its version is already recorded.
func apply(ctx context.Context, pool *pgxpool.Pool, fsys fs.FS, name, version string) (bool, error) {
	var done bool
	if err := pool.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version=$1)", version,
	).Scan(&done); err != nil {
		return false, err
	}
	if done {
		return false, nil
	}

	body, err := fs.ReadFile(fsys, name)
	if err != nil {
		return false, err
	}

	err = pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, string(body)); err != nil {
			return err
		}
		_, err := tx.Exec(ctx, "INSERT INTO schema_migrations (version) VALUES ($1)", version)
		return err
	})
	return err == nil, err
}

// pendingFiles lists the up migrations at the root of fsys in lexical order.
func pendingFiles(fsys fs.FS) ([]string, error) {
	matches, err := fs.Glob(fsys, "*"+upSuffix)
	if err != nil {
		return nil, err
	}
	files := make([]string, 0, len(matches))
	for _, m := range matches {
		files = append(files, path.Base(m))
	}
	sort.Strings(files)
	return files, nil
}
