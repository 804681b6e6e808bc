package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"pugorugh/config"
	"pugorugh/handlers"
	"pugorugh/middleware"
	"pugorugh/services"
	"pugorugh/utils"
	"pugorugh/workers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func openStore(cfg config.Config) (services.Store, error) {
	if cfg.StoreDriver == config.DriverMemory {
		log.Println("⚠️  STORE_DRIVER=memory: decisions and preferences are lost on restart")
		return services.NewMemoryStore(), nil
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	store := services.NewGormStore(db)
	if err := store.AutoMigrate(); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return store, nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("invalid configuration: ", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := openStore(cfg)
	if err != nil {
		log.Fatal(err)
	}

	if cfg.CatalogSeedFile != "" {
		if _, err := services.SeedCatalog(ctx, store, cfg.CatalogSeedFile); err != nil {
			log.Fatal("failed to seed catalog: ", err)
		}
	}

	images, err := utils.NewImageResolver(ctx, cfg.Images)
	if err != nil {
		log.Fatal("failed to initialize image resolver: ", err)
	}
	if err := utils.EnsureStaticDir(cfg.Images.Prefix); err != nil {
		log.Fatal("failed to ensure static dir: ", err)
	}

	app := fiber.New(fiber.Config{
		AppName:      "pugorugh",
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} ${method} ${path} ${latency}\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(cfg.Origins(), ","),
		AllowMethods:     "GET,PUT,OPTIONS,HEAD",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Requested-With, X-Request-ID, X-User-ID",
		ExposeHeaders:    "Content-Length, Content-Type, X-Request-ID",
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// 🔐 everything except probes must come through the gateway
	app.Use(middleware.GatewayAuthMiddleware(cfg.ServiceToken, "/healthz", "/metrics"))
	app.Use(middleware.UserContextMiddleware())

	matcher := services.NewMatchService(store)

	handlers.SetupHealthRoutes(app, store)
	handlers.SetupPreferenceRoutes(app, matcher)
	handlers.SetupDogRoutes(app, matcher, images)

	app.Static("/static", utils.StaticRoot)

	pruner := workers.NewLedgerPruneWorker(store, cfg.LedgerPruneInterval)
	if err := pruner.Start(ctx); err != nil {
		log.Fatal("failed to start ledger prune worker: ", err)
	}

	go func() {
		if err := app.Listen(fmt.Sprintf(":%d", cfg.Port)); err != nil {
			log.Printf("Server error: %v", err)
			stop()
		}
	}()

	log.Printf("✅ Server running on http://localhost:%d (store=%s)", cfg.Port, cfg.StoreDriver)
	log.Printf("✅ CORS configured for origins: %s", strings.Join(cfg.Origins(), ","))

	<-ctx.Done()
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := pruner.Stop(); err != nil {
		log.Printf("⚠️ Prune worker shutdown: %v", err)
	}
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("⚠️ Server shutdown: %v", err)
	}
}
