package handlers

import (
	"github.com/getmorediners/backend/internal/http/dto"
	"github.com/getmorediners/backend/internal/middleware"
	"github.com/getmorediners/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type UserHandler struct {
	authService     *services.AuthService
	activityService *services.ActivityService
	log             *zap.Logger
}

func NewUserHandler(authService *services.AuthService, activityService *services.ActivityService, log *zap.Logger) *UserHandler {
	return &UserHandler{authService: authService, activityService: activityService, log: log}
}

func (h *UserHandler) GetMe(c *fiber.Ctx) error {
	user, err := h.authService.Me(c.Context(), middleware.GetUserID(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: user})
}

func (h *UserHandler) Activity(c *fiber.Ctx) error {
	entries, err := h.activityService.List(c.Context(), middleware.GetUserID(c), c.QueryInt("limit", 50))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: entries})
}
