package handlers

import (
	"github.com/getmorediners/backend/internal/drafting"
	"github.com/getmorediners/backend/internal/http/dto"
	"github.com/getmorediners/backend/internal/middleware"
	"github.com/getmorediners/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CampaignHandler struct {
	campaignService  *services.CampaignService
	selectionService *services.SelectionService
	log              *zap.Logger
}

func NewCampaignHandler(campaignService *services.CampaignService, selectionService *services.SelectionService, log *zap.Logger) *CampaignHandler {
	return &CampaignHandler{campaignService: campaignService, selectionService: selectionService, log: log}
}

func (h *CampaignHandler) GenerateCampaign(c *fiber.Ctx) error {
	var req dto.GenerateCampaignRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	userID := middleware.GetUserID(c)
	draft, err := h.campaignService.Generate(c.Context(), userID, drafting.Request{
		TemplateName: req.Template,
		Prompt:       req.Prompt,
	})
	if err != nil {
		return respondError(c, h.log, err)
	}

	count, err := h.selectionService.Count(c.Context(), userID)
	if err != nil {
		h.log.Warn("selection count unavailable", zap.Error(err))
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: dto.DraftResponse{
		Draft:          draft,
		SMSLength:      drafting.SMSLength(draft.SMSContent),
		SMSOverLimit:   drafting.SMSOverLimit(draft.SMSContent),
		SelectionCount: count,
	}})
}

func (h *CampaignHandler) SaveCampaign(c *fiber.Ctx) error {
	var req dto.SaveCampaignRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	campaign, err := h.campaignService.Save(c.Context(), middleware.GetUserID(c), services.SaveCampaignInput{
		Name:         req.Name,
		Subject:      req.Subject,
		EmailContent: req.EmailContent,
		SMSContent:   req.SMSContent,
		TargetCount:  req.TargetCount,
	})
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{OK: true, Data: campaign})
}

func (h *CampaignHandler) ListCampaigns(c *fiber.Ctx) error {
	campaigns, err := h.campaignService.List(c.Context(), middleware.GetUserID(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: campaigns})
}

func (h *CampaignHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.campaignService.Stats(c.Context(), middleware.GetUserID(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: stats})
}

func (h *CampaignHandler) GetCampaign(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid campaign id")
	}

	campaign, err := h.campaignService.Get(c.Context(), middleware.GetUserID(c), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: campaign})
}

func (h *CampaignHandler) SendCampaign(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid campaign id")
	}

	campaign, err := h.campaignService.Send(c.Context(), middleware.GetUserID(c), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: campaign})
}

func (h *CampaignHandler) DeleteCampaign(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid campaign id")
	}

	if err := h.campaignService.Delete(c.Context(), middleware.GetUserID(c), id); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true})
}
