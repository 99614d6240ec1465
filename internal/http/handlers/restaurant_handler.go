package handlers

import (
	"github.com/getmorediners/backend/internal/http/dto"
	"github.com/getmorediners/backend/internal/middleware"
	"github.com/getmorediners/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type RestaurantHandler struct {
	restaurantService *services.RestaurantService
	log               *zap.Logger
}

func NewRestaurantHandler(restaurantService *services.RestaurantService, log *zap.Logger) *RestaurantHandler {
	return &RestaurantHandler{restaurantService: restaurantService, log: log}
}

func (h *RestaurantHandler) GetRestaurant(c *fiber.Ctx) error {
	r, err := h.restaurantService.Get(c.Context(), middleware.GetUserID(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: r})
}

func (h *RestaurantHandler) SaveRestaurant(c *fiber.Ctx) error {
	var req dto.SaveRestaurantRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	r, err := h.restaurantService.Save(c.Context(), middleware.GetUserID(c), services.RestaurantInput{
		Name:        req.Name,
		Address:     req.Address,
		City:        req.City,
		State:       req.State,
		Zip:         req.Zip,
		Phone:       req.Phone,
		CuisineType: req.CuisineType,
		Description: req.Description,
	})
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: r})
}
