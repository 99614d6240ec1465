package handlers

import (
	"errors"

	"github.com/getmorediners/backend/internal/apperr"
	"github.com/getmorediners/backend/internal/directory"
	"github.com/getmorediners/backend/internal/http/dto"
	"github.com/getmorediners/backend/internal/middleware"
	"github.com/getmorediners/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type SelectionHandler struct {
	selectionService *services.SelectionService
	log              *zap.Logger
}

func NewSelectionHandler(selectionService *services.SelectionService, log *zap.Logger) *SelectionHandler {
	return &SelectionHandler{selectionService: selectionService, log: log}
}

func (h *SelectionHandler) GetSelection(c *fiber.Ctx) error {
	snap, err := h.selectionService.Get(c.Context(), middleware.GetUserID(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: snap})
}

func (h *SelectionHandler) Toggle(c *fiber.Ctx) error {
	var req dto.ToggleSelectionRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	snap, err := h.selectionService.Toggle(c.Context(), middleware.GetUserID(c), req.ID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: snap})
}

// SelectAll selects exactly the diners visible under the posted criteria.
func (h *SelectionHandler) SelectAll(c *fiber.Ctx) error {
	var criteria directory.FilterCriteria
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&criteria); err != nil {
			return badRequest(c, "invalid request body")
		}
	}

	snap, err := h.selectionService.SelectAll(c.Context(), middleware.GetUserID(c), criteria)
	var le *apperr.LoadError
	if errors.As(err, &le) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
			Error:     loadWarning,
			RequestID: middleware.GetRequestID(c),
		})
	}
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: snap})
}

func (h *SelectionHandler) Clear(c *fiber.Ctx) error {
	if err := h.selectionService.Clear(c.Context(), middleware.GetUserID(c)); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: services.SelectionSnapshot{IDs: []string{}}})
}
