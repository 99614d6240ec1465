package main

import (
	"context"
	"fmt"

	"github.com/getmorediners/backend/internal/datasource"
	"github.com/getmorediners/backend/internal/models"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var seedForce bool

// seedCmd fills an empty diner directory with sample contacts
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the sample diner directory",
	Long: `Insert the sample diner directory.

Nothing is written when diners already exist, unless --force is given.`,
	RunE: runSeed,
}

func runSeed(cmd *cobra.Command, args []string) error {
	log := newLogger()
	defer log.Sync()

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	pool, err := connect(ctx, log)
	if err != nil {
		return err
	}
	defer pool.Close()

	n, err := seedDiners(ctx, datasource.NewLive(pool), sampleDiners(), seedForce, log)
	if err != nil {
		return err
	}
	if n == 0 {
		cmd.Println("diners already present, nothing inserted")
		return nil
	}
	cmd.Printf("inserted %d sample diners\n", n)
	return nil
}

// seedDiners inserts diners unless the directory already has rows and
// force is off. It returns how many were inserted.
func seedDiners(ctx context.Context, ds datasource.DataSource, diners []models.Diner, force bool, log *zap.Logger) (int, error) {
	existing, err := ds.CountDiners(ctx)
	if err != nil {
		return 0, fmt.Errorf("count diners: %w", err)
	}
	log.Info("current diners", zap.Int("count", existing))
	if existing > 0 && !force {
		return 0, nil
	}

	for _, d := range diners {
		if err := models.ValidateDiner(d); err != nil {
			return 0, fmt.Errorf("sample diner %q: %w", d.Name, err)
		}
	}
	if err := ds.InsertDiners(ctx, diners); err != nil {
		return 0, fmt.Errorf("insert diners: %w", err)
	}
	return len(diners), nil
}
