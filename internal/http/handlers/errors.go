package handlers

import (
	"errors"

	"github.com/getmorediners/backend/internal/apperr"
	"github.com/getmorediners/backend/internal/http/dto"
	"github.com/getmorediners/backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: msg, RequestID: middleware.GetRequestID(c)})
}

// respondError maps service errors onto status codes. Persistence errors
// keep their message so the owner sees what the store said.
func respondError(c *fiber.Ctx, log *zap.Logger, err error) error {
	status := fiber.StatusInternalServerError
	resp := dto.ErrorResponse{Error: "internal server error", RequestID: middleware.GetRequestID(c)}

	var ve *apperr.ValidationError
	switch {
	case errors.As(err, &ve):
		status = fiber.StatusUnprocessableEntity
		resp.Error = ve.Message
		resp.Field = ve.Field
	case errors.Is(err, apperr.ErrProfileMissing),
		errors.Is(err, apperr.ErrInvalidTransition),
		errors.Is(err, apperr.ErrEmailTaken):
		status = fiber.StatusConflict
		resp.Error = rootMessage(err)
	case errors.Is(err, apperr.ErrInvalidCredentials):
		status = fiber.StatusUnauthorized
		resp.Error = err.Error()
	case errors.Is(err, apperr.ErrNotFound):
		status = fiber.StatusNotFound
		resp.Error = err.Error()
	case apperr.IsPersistence(err):
		resp.Error = err.Error()
		log.Error("persistence error", zap.String("request_id", resp.RequestID), zap.Error(err))
	default:
		log.Error("unhandled error", zap.String("request_id", resp.RequestID), zap.Error(err))
	}

	return c.Status(status).JSON(resp)
}

// rootMessage drops the operation prefix a PersistenceError adds around
// a sentinel.
func rootMessage(err error) string {
	for _, sentinel := range []error{apperr.ErrProfileMissing, apperr.ErrInvalidTransition, apperr.ErrEmailTaken} {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return err.Error()
}
