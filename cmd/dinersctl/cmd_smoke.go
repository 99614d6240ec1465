package main

import (
	"context"
	"sort"

	"github.com/getmorediners/backend/internal/datasource"
	"github.com/spf13/cobra"
)

// smokeCmd checks that the database is reachable and populated
var smokeCmd = &cobra.Command{
	Use:   "smoke",
	Short: "Check connectivity and print row counts",
	RunE:  runSmoke,
}

func runSmoke(cmd *cobra.Command, args []string) error {
	log := newLogger()
	defer log.Sync()

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	pool, err := connect(ctx, log)
	if err != nil {
		return err
	}
	defer pool.Close()

	live := datasource.NewLive(pool)
	if err := live.Ping(ctx); err != nil {
		return err
	}
	counts, err := live.TableCounts(ctx)
	if err != nil {
		return err
	}

	tables := make([]string, 0, len(counts))
	for t := range counts {
		tables = append(tables, t)
	}
	sort.Strings(tables)

	cmd.Println("connection ok")
	for _, t := range tables {
		cmd.Printf("  %-12s %d\n", t, counts[t])
	}
	return nil
}
