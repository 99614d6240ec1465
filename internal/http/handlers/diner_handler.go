package handlers

import (
	"errors"
	"net/url"

	"github.com/getmorediners/backend/internal/apperr"
	"github.com/getmorediners/backend/internal/directory"
	"github.com/getmorediners/backend/internal/http/dto"
	"github.com/getmorediners/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const loadWarning = "We couldn't load the diner directory right now. Please try again later."

type DinerHandler struct {
	dinerService *services.DinerService
	log          *zap.Logger
}

func NewDinerHandler(dinerService *services.DinerService, log *zap.Logger) *DinerHandler {
	return &DinerHandler{dinerService: dinerService, log: log}
}

// ListDiners filters the directory by the query string criteria.
func (h *DinerHandler) ListDiners(c *fiber.Ctx) error {
	criteria, err := criteriaFromQuery(c)
	if err != nil {
		return badRequest(c, "invalid query string")
	}

	diners, err := h.dinerService.Search(c.Context(), criteria)
	var le *apperr.LoadError
	switch {
	case errors.As(err, &le):
		return c.JSON(dto.DinerListResponse{Diners: diners, Count: 0, Warning: loadWarning})
	case err != nil:
		return respondError(c, h.log, err)
	}

	return c.JSON(dto.DinerListResponse{Diners: diners, Count: len(diners)})
}

func criteriaFromQuery(c *fiber.Ctx) (directory.FilterCriteria, error) {
	q, err := url.ParseQuery(string(c.Request().URI().QueryString()))
	if err != nil {
		return directory.FilterCriteria{}, err
	}
	return directory.CriteriaFromQuery(q), nil
}
