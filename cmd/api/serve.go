package main

import (
	"context"
	"errors"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"curador/docs"
	"curador/internal/config"
	"curador/internal/database"
	"curador/internal/database/migration"
	handlers "curador/internal/http/handler"
	"curador/internal/http/middleware"
	"curador/internal/otel"
	"curador/internal/repository/postgres"
	"curador/internal/service"
	"curador/internal/storage"
	"curador/internal/vision"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func runServe(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, log := setup()
	defer log.Sync()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			log.Warn("tracing_shutdown_failed", zap.Error(err))
		}
	}()

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	if cfg.AutoMigrate {
		if err := migration.EnsureMigrated(ctx, db, log, cfg.Database.Host); err != nil {
			return err
		}
	}

	imgStore, err := storage.New(ctx, cfg)
	if err != nil {
		return err
	}

	classifier, err := vision.New(ctx, cfg.Vision)
	if err != nil {
		return err
	}
	if _, disabled := classifier.(vision.Disabled); disabled {
		log.Warn("vision_disabled", zap.String("reason", "GOOGLE_API_KEY is not set"))
	}

	reg := prometheus.DefaultRegisterer
	promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		return err
	}
	suggestionMetrics, err := service.NewSuggestionMetrics(reg)
	if err != nil {
		return err
	}

	locRepo := postgres.NewLocationPostgres(db)
	objRepo := postgres.NewObjectPostgres(db)
	locSvc := service.NewLocationService(locRepo)
	objSvc := service.NewObjectService(objRepo, locRepo, imgStore, classifier, log,
		service.WithSuggestionMetrics(suggestionMetrics),
		service.WithImagePrefix(cfg.Storage.ImagePrefix),
	)

	app := newApp(cfg, promMiddleware, log)
	handlers.RegisterRoutes(app, handlers.Services{
		DB:         db,
		Locations:  locSvc,
		Objects:    objSvc,
		Classifier: classifier,
	})

	go func() {
		<-ctx.Done()
		log.Info("server_shutdown", zap.String("reason", "signal"))
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Error("server_shutdown_failed", zap.Error(err))
		}
	}()

	addr := ":" + cfg.Port
	log.Info("server_start", zap.String("addr", addr), zap.String("storage_driver", cfg.Storage.Driver))
	if err := app.Listen(addr); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func newApp(cfg *config.AppConfig, prom *middleware.PrometheusMiddleware, log *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
		BodyLimit:    cfg.Storage.MaxUploadBytes,
	})

	app.Use(otelfiber.Middleware(otelfiber.WithNext(func(c *fiber.Ctx) bool {
		return c.Path() == "/metrics"
	})))
	// RequestID runs inside the otel span so the id lands on it
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(log))
	app.Use(prom.Handler())

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	if cfg.Storage.Driver == "" || cfg.Storage.Driver == "local" {
		app.Static("/static", cfg.Storage.LocalRoot)
	}

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	return app
}
