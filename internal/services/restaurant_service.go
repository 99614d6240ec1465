package services

import (
	"context"
	"errors"
	"strings"

	"github.com/getmorediners/backend/internal/apperr"
	"github.com/getmorediners/backend/internal/datasource"
	"github.com/getmorediners/backend/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RestaurantInput struct {
	Name        string
	Address     string
	City        string
	State       string
	Zip         string
	Phone       string
	CuisineType string
	Description string
}

// Validate checks required fields in form order and returns the first problem.
func (in RestaurantInput) Validate() error {
	required := []struct {
		field, value string
	}{
		{"name", in.Name},
		{"address", in.Address},
		{"city", in.City},
		{"state", in.State},
		{"zip", in.Zip},
		{"phone", in.Phone},
		{"cuisine_type", in.CuisineType},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return apperr.Invalid(r.field, "is required")
		}
	}
	if !models.IsValidState(strings.ToUpper(strings.TrimSpace(in.State))) {
		return apperr.Invalid("state", "must be a US state code")
	}
	return nil
}

type RestaurantService struct {
	ds    datasource.DataSource
	audit auditor
	log   *zap.Logger
}

func NewRestaurantService(ds datasource.DataSource, log *zap.Logger) *RestaurantService {
	return &RestaurantService{ds: ds, audit: auditor{ds: ds, log: log}, log: log}
}

// Get returns apperr.ErrNotFound when the owner has no profile yet.
func (s *RestaurantService) Get(ctx context.Context, userID uuid.UUID) (*models.Restaurant, error) {
	r, err := s.ds.FetchRestaurantProfile(ctx, userID)
	if err != nil {
		return nil, apperr.Persistence("load restaurant profile", err)
	}
	return r, nil
}

// Save creates or replaces the owner's profile.
func (s *RestaurantService) Save(ctx context.Context, userID uuid.UUID, in RestaurantInput) (*models.Restaurant, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	r := &models.Restaurant{
		UserID:      userID,
		Name:        strings.TrimSpace(in.Name),
		Address:     strings.TrimSpace(in.Address),
		City:        strings.TrimSpace(in.City),
		State:       strings.ToUpper(strings.TrimSpace(in.State)),
		Zip:         strings.TrimSpace(in.Zip),
		Phone:       strings.TrimSpace(in.Phone),
		CuisineType: strings.TrimSpace(in.CuisineType),
		Description: optional(in.Description),
	}
	if err := s.ds.UpsertRestaurantProfile(ctx, r); err != nil {
		s.log.Error("save restaurant profile failed", zap.String("user_id", userID.String()), zap.Error(err))
		return nil, apperr.Persistence("save restaurant profile", err)
	}

	s.audit.record(ctx, userID, models.AuditProfileSaved, "restaurant", r.ID, nil)
	return r, nil
}

// profile loads the owner's restaurant for campaign work, mapping a missing
// profile to apperr.ErrProfileMissing.
func (s *RestaurantService) profile(ctx context.Context, userID uuid.UUID) (*models.Restaurant, error) {
	r, err := s.ds.FetchRestaurantProfile(ctx, userID)
	if errors.Is(err, apperr.ErrNotFound) {
		return nil, apperr.ErrProfileMissing
	}
	if err != nil {
		return nil, apperr.Persistence("load restaurant profile", err)
	}
	return r, nil
}
