package http

import (
	"time"

	"github.com/getmorediners/backend/internal/config"
	"github.com/getmorediners/backend/internal/http/handlers"
	"github.com/getmorediners/backend/internal/middleware"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Handlers struct {
	Auth       *handlers.AuthHandler
	User       *handlers.UserHandler
	Restaurant *handlers.RestaurantHandler
	Diner      *handlers.DinerHandler
	Selection  *handlers.SelectionHandler
	Campaign   *handlers.CampaignHandler
	Meta       *handlers.MetaHandler
	WS         *handlers.WSHub
}

// SetupRouter mounts every route. A nil rdb disables rate limiting and a
// nil WS hub disables the websocket endpoint.
func SetupRouter(
	app *fiber.App,
	cfg *config.Config,
	log *zap.Logger,
	rdb redis.Cmdable,
	revoker middleware.TokenRevoker,
	h Handlers,
) {
	// Global middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Request-ID",
	}))
	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.LoggerMiddleware(log))

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "demo_mode": cfg.DemoMode})
	})

	api := app.Group("/api/v1")

	limit := func(perMinute int) fiber.Handler {
		if rdb == nil {
			return func(c *fiber.Ctx) error { return c.Next() }
		}
		return middleware.RateLimitMiddleware(rdb, perMinute, time.Minute)
	}
	api.Use(limit(cfg.RateLimitPerMinute))

	// Auth (public)
	api.Post("/auth/signup", h.Auth.SignUp)
	api.Post("/auth/signin", h.Auth.SignIn)

	// Meta (public, no auth required)
	api.Get("/meta/states", h.Meta.GetStates)
	api.Get("/meta/interests", h.Meta.GetInterests)
	api.Get("/meta/templates", h.Meta.GetTemplates)

	// Protected endpoints
	protected := api.Group("", middleware.AuthMiddleware(cfg, revoker, log))

	protected.Post("/auth/signout", h.Auth.SignOut)

	// User
	protected.Get("/me", h.User.GetMe)
	protected.Get("/me/activity", h.User.Activity)

	// Restaurant profile
	protected.Get("/restaurant", h.Restaurant.GetRestaurant)
	protected.Put("/restaurant", h.Restaurant.SaveRestaurant)

	// Diner directory
	protected.Get("/diners", h.Diner.ListDiners)

	// Selection
	protected.Get("/selection", h.Selection.GetSelection)
	protected.Post("/selection/toggle", h.Selection.Toggle)
	protected.Post("/selection/select-all", h.Selection.SelectAll)
	protected.Delete("/selection", h.Selection.Clear)

	// Campaigns
	protected.Post("/campaigns/generate", limit(cfg.GenerateRateLimitPerMinute), h.Campaign.GenerateCampaign)
	protected.Get("/campaigns/stats", h.Campaign.GetStats)
	protected.Post("/campaigns", h.Campaign.SaveCampaign)
	protected.Get("/campaigns", h.Campaign.ListCampaigns)
	protected.Get("/campaigns/:id", h.Campaign.GetCampaign)
	protected.Post("/campaigns/:id/send", h.Campaign.SendCampaign)
	protected.Delete("/campaigns/:id", h.Campaign.DeleteCampaign)

	// WebSocket
	if h.WS != nil {
		app.Use("/ws", handlers.WSUpgradeMiddleware())
		app.Get("/ws", websocket.New(h.WS.HandleWS))
	}
}
