package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/getmorediners/backend/internal/config"
	"github.com/getmorediners/backend/internal/db"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	verbose bool
	timeout time.Duration
)

// rootCmd is the operator entry point
var rootCmd = &cobra.Command{
	Use:   "dinersctl",
	Short: "Operate the Get More Diners database",
	Long: `Operator tasks for the Get More Diners backend.

Available subcommands:
  migrate - Apply pending schema migrations
  seed    - Insert the sample diner directory when it is empty
  smoke   - Check connectivity and print row counts`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 2*time.Minute, "Operation timeout")

	seedCmd.Flags().BoolVar(&seedForce, "force", false, "Insert even when diners already exist")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(smokeCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger() *zap.Logger {
	if verbose {
		log, _ := zap.NewDevelopment()
		return log
	}
	log, _ := zap.NewProduction()
	return log
}

// connect opens the configured postgres pool. The caller closes it.
func connect(ctx context.Context, log *zap.Logger) (*pgxpool.Pool, error) {
	cfg := config.Load()
	pool, err := db.NewPostgresPool(ctx, cfg.PostgresDSN, cfg.PostgresMaxConns, log)
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}
	return pool, nil
}
