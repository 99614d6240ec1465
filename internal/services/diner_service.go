package services

import (
	"context"

	"github.com/getmorediners/backend/internal/directory"
	"github.com/getmorediners/backend/internal/models"
)

type DinerService struct {
	dir *directory.Directory
}

func NewDinerService(dir *directory.Directory) *DinerService {
	return &DinerService{dir: dir}
}

// Search returns the diners matching c. A *apperr.LoadError comes back
// with an empty, non-nil list and is not fatal to the caller.
func (s *DinerService) Search(ctx context.Context, c directory.FilterCriteria) ([]models.Diner, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return s.dir.Search(ctx, c)
}
