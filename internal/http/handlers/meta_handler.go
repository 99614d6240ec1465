package handlers

import (
	"github.com/getmorediners/backend/internal/drafting"
	"github.com/getmorediners/backend/internal/http/dto"
	"github.com/getmorediners/backend/internal/models"
	"github.com/gofiber/fiber/v2"
)

type MetaHandler struct{}

func NewMetaHandler() *MetaHandler {
	return &MetaHandler{}
}

func (h *MetaHandler) GetStates(c *fiber.Ctx) error {
	return c.JSON(dto.SuccessResponse{OK: true, Data: models.USStates})
}

func (h *MetaHandler) GetInterests(c *fiber.Ctx) error {
	return c.JSON(dto.SuccessResponse{OK: true, Data: models.CommonInterests})
}

func (h *MetaHandler) GetTemplates(c *fiber.Ctx) error {
	return c.JSON(dto.SuccessResponse{OK: true, Data: drafting.Templates()})
}
