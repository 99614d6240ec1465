package services

import (
	"context"

	"github.com/getmorediners/backend/internal/apperr"
	"github.com/getmorediners/backend/internal/datasource"
	"github.com/getmorediners/backend/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// auditor writes best-effort audit entries. Failures are logged only.
type auditor struct {
	ds  datasource.DataSource
	log *zap.Logger
}

func (a auditor) record(ctx context.Context, userID uuid.UUID, action, entityType string, entityID uuid.UUID, meta any) {
	err := a.ds.LogAudit(ctx, models.AuditLog{
		ActorUserID: &userID,
		ActorType:   "user",
		Action:      action,
		EntityType:  entityType,
		EntityID:    &entityID,
		Meta:        meta,
	})
	if err != nil {
		a.log.Warn("audit log write failed", zap.String("action", action), zap.Error(err))
	}
}

// ActivityService lists an owner's audit trail.
type ActivityService struct {
	ds datasource.DataSource
}

func NewActivityService(ds datasource.DataSource) *ActivityService {
	return &ActivityService{ds: ds}
}

func (s *ActivityService) List(ctx context.Context, userID uuid.UUID, limit int) ([]models.AuditLog, error) {
	entries, err := s.ds.ListAudit(ctx, userID, limit)
	if err != nil {
		return nil, apperr.Persistence("list activity", err)
	}
	return entries, nil
}
