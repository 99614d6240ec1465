package directory

import (
	"context"
	"sort"

	"github.com/getmorediners/backend/internal/apperr"
	"github.com/getmorediners/backend/internal/models"
	"go.uber.org/zap"
)

// Source supplies the full diner list.
type Source interface {
	ListDiners(ctx context.Context) ([]models.Diner, error)
}

type Directory struct {
	source Source
	log    *zap.Logger
}

func New(source Source, log *zap.Logger) *Directory {
	return &Directory{source: source, log: log}
}

// Load fetches every diner ordered by name, case-insensitively. The order is
// set here whatever order the source returned. On failure it returns an empty
// list together with a *apperr.LoadError; there is no retry.
func (d *Directory) Load(ctx context.Context) ([]models.Diner, error) {
	diners, err := d.source.ListDiners(ctx)
	if err != nil {
		d.log.Error("load diners failed", zap.Error(err))
		return []models.Diner{}, &apperr.LoadError{Err: err}
	}
	sort.SliceStable(diners, func(i, j int) bool { return models.DinerNameLess(diners[i], diners[j]) })
	return diners, nil
}

// Search loads the directory and applies c.
func (d *Directory) Search(ctx context.Context, c FilterCriteria) ([]models.Diner, error) {
	diners, err := d.Load(ctx)
	if err != nil {
		return diners, err
	}
	return Filter(diners, c), nil
}

// IDs returns the string ids of diners in order.
func IDs(diners []models.Diner) []string {
	ids := make([]string, len(diners))
	for i, d := range diners {
		ids[i] = d.ID.String()
	}
	return ids
}
