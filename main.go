package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"tcg-backend/config"
	"tcg-backend/database"
	"tcg-backend/handlers"
	"tcg-backend/middleware"
	"tcg-backend/services"
	"tcg-backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

func main() {
	configPath := flag.String("config", "", "optional TOML config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	setupLogger(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Open(cfg.DB.URL, cfg.Log.Level <= slog.LevelDebug)
	if err != nil {
		return err
	}
	defer database.Close(db)

	var images services.ImageLinker
	if cfg.R2Enabled() {
		store, err := utils.NewR2Store(ctx, utils.R2Options{
			AccountID:       cfg.R2.AccountID,
			AccessKeyID:     cfg.R2.AccessKeyID,
			AccessKeySecret: cfg.R2.AccessKeySecret,
			Bucket:          cfg.R2.Bucket,
			CDNBaseURL:      cfg.R2.CDNBaseURL,
			PresignTTL:      time.Duration(cfg.R2.PresignMinutes) * time.Minute,
		})
		if err != nil {
			return err
		}
		images = store
	} else {
		slog.Warn("R2 not configured, card images are served only from absolute URLs")
	}

	tokens := services.NewJWTManager(cfg.Auth.JWTSecret, cfg.JWTTTL())
	authService := services.NewAuthService(services.NewGormUserRepository(db), tokens)
	deckService := services.NewDeckService(services.NewGormDeckRepository(db))
	catalog, err := services.NewCatalogService(services.NewGormCardRepository(db), cfg.Catalog.CacheSize, images)
	if err != nil {
		return err
	}
	if _, err := catalog.Refresh(ctx); err != nil {
		slog.Warn("initial catalog load failed", "error", err)
	}

	sched, err := catalog.StartCatalogRefresh(ctx, cfg.CatalogRefreshInterval())
	if err != nil {
		return err
	}
	defer sched.Shutdown()

	app := fiber.New(fiber.Config{
		AppName:               "tcg-backend",
		ErrorHandler:          handlers.ErrorHandler,
		DisableStartupMessage: cfg.IsProduction(),
	})
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(cfg.AllowedOriginList(), ","),
		AllowMethods: "GET,POST,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Request-ID",
		MaxAge:       86400,
	}))

	api := app.Group("/api")
	handlers.SetupHealthRoutes(api)
	handlers.SetupAuthRoutes(api, authService)
	handlers.SetupCardRoutes(api, catalog, cfg.AdminToken)
	handlers.SetupDeckRoutes(api, deckService, tokens)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("server listening", "port", cfg.Port, "env", cfg.AppEnv)
		return app.Listen(":" + cfg.Port)
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutting down server")
		return app.ShutdownWithTimeout(10 * time.Second)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func setupLogger(cfg *config.Config) {
	opts := &slog.HandlerOptions{Level: cfg.Log.Level}
	var handler slog.Handler = slog.NewTextHandler(os.Stdout, opts)
	if cfg.IsProduction() {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
}
