package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/getmorediners/backend/internal/config"
	"github.com/getmorediners/backend/internal/datasource"
	"github.com/getmorediners/backend/internal/db"
	"github.com/getmorediners/backend/internal/directory"
	"github.com/getmorediners/backend/internal/drafting"
	"github.com/getmorediners/backend/internal/events"
	apphttp "github.com/getmorediners/backend/internal/http"
	"github.com/getmorediners/backend/internal/http/handlers"
	"github.com/getmorediners/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	log, _ := zap.NewProduction()
	defer log.Sync()

	cfg := config.Load()
	cfg.Validate(log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Data source, chosen once
	var ds datasource.DataSource
	if cfg.DemoMode {
		ds = datasource.NewFixture()
	} else {
		pool, err := db.NewPostgresPool(ctx, cfg.PostgresDSN, cfg.PostgresMaxConns, log)
		if err != nil {
			log.Fatal("failed to connect to postgres", zap.Error(err))
		}
		defer pool.Close()

		if err := db.RunMigrations(ctx, pool, db.Migrations(), log); err != nil {
			log.Fatal("failed to run migrations", zap.Error(err))
		}
		ds = datasource.NewLive(pool)
	}

	// Redis backs session state and events. Demo mode can run without it.
	var (
		rdb        redis.Cmdable
		selStore   services.SelectionStore
		revoker    services.TokenRevoker
		publisher  events.Publisher
		subscriber events.Subscriber
	)
	client, err := db.NewRedisClient(ctx, cfg.RedisURL, log)
	switch {
	case err == nil:
		defer client.Close()
		rdb = client
		selStore = services.NewRedisSelectionStore(client, cfg.SelectionTTL)
		revoker = services.NewRedisTokenRevoker(client)
		publisher = events.NewRedisPublisher(client, log)
		subscriber = events.NewRedisSubscriber(client, log)
	case cfg.DemoMode:
		log.Warn("redis unavailable, demo mode keeps session state in memory", zap.Error(err))
		bus := events.NewMemoryBus()
		selStore = services.NewMemorySelectionStore()
		revoker = services.NewMemoryTokenRevoker()
		publisher, subscriber = bus, bus
	default:
		log.Fatal("failed to connect to redis", zap.Error(err))
	}

	// Drafting
	builder := drafting.NewBuilder(drafting.SelectStrategy(ctx, cfg, log), log)

	// Services
	dir := directory.New(ds, log)
	selectionService := services.NewSelectionService(selStore, dir, log)
	restaurantService := services.NewRestaurantService(ds, log)
	campaignService := services.NewCampaignService(ds, restaurantService, builder, selectionService, publisher, log)
	authService := services.NewAuthService(ds, revoker, selectionService, cfg, log)
	activityService := services.NewActivityService(ds)

	// Handlers
	wsHub := handlers.NewWSHub(cfg, subscriber, revoker, log)
	if err := wsHub.Start(ctx); err != nil {
		log.Fatal("failed to subscribe to campaign events", zap.Error(err))
	}

	// Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{"error": err.Error()})
		},
	})

	apphttp.SetupRouter(app, cfg, log, rdb, revoker, apphttp.Handlers{
		Auth:       handlers.NewAuthHandler(authService, log),
		User:       handlers.NewUserHandler(authService, activityService, log),
		Restaurant: handlers.NewRestaurantHandler(restaurantService, log),
		Diner:      handlers.NewDinerHandler(services.NewDinerService(dir), log),
		Selection:  handlers.NewSelectionHandler(selectionService, log),
		Campaign:   handlers.NewCampaignHandler(campaignService, selectionService, log),
		Meta:       handlers.NewMetaHandler(),
		WS:         wsHub,
	})

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")
		cancel()
		_ = app.Shutdown()
	}()

	addr := fmt.Sprintf(":%s", cfg.APIPort)
	log.Info("starting API server", zap.String("addr", addr), zap.Bool("demo_mode", cfg.DemoMode))
	if err := app.Listen(addr); err != nil {
		log.Fatal("server error", zap.Error(err))
	}
}
