package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/rcmunich/robert-chang-portfolio/internal/config"
	"github.com/rcmunich/robert-chang-portfolio/internal/database"
	"github.com/rcmunich/robert-chang-portfolio/internal/handler"
	"github.com/rcmunich/robert-chang-portfolio/internal/logging"
	middlewarepkg "github.com/rcmunich/robert-chang-portfolio/internal/middleware"
	"github.com/rcmunich/robert-chang-portfolio/internal/ratelimit"
	"github.com/rcmunich/robert-chang-portfolio/internal/repository"
	"github.com/rcmunich/robert-chang-portfolio/internal/router"
	"github.com/rcmunich/robert-chang-portfolio/internal/service"
)

// limiterSweepInterval controls how often idle clients are dropped from the
// contact limiter.
const limiterSweepInterval = 10 * time.Minute

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("failed to load config", slog.Any("error", err))
	}
	logger := logging.Setup(cfg.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		logging.Fatal("failed to connect database", slog.Any("error", err))
	}
	defer pool.Close()

	if err := database.Bootstrap(ctx, pool); err != nil {
		logging.Fatal("failed to bootstrap schema", slog.Any("error", err))
	}

	contactRepo := repository.NewPGXContactSubmissionsRepository(pool)
	profileRepo := repository.NewPGXProfileRepository(pool)
	experiencesRepo := repository.NewPGXExperiencesRepository(pool)
	testimonialsRepo := repository.NewPGXTestimonialsRepository(pool)
	expertiseRepo := repository.NewPGXExpertiseRepository(pool)

	runCtx, stopRun := context.WithCancel(context.Background())
	defer stopRun()

	// Limiter state is process local and lost on restart.
	limiter := ratelimit.New(cfg.RateLimitContact.Requests, cfg.RateLimitContact.Interval)
	go limiter.Run(runCtx, limiterSweepInterval)

	contactService := service.NewContactService(contactRepo, limiter)
	contentService := service.NewContentService(profileRepo, experiencesRepo, testimonialsRepo, expertiseRepo)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = handler.ErrorHandler(logger)
	if cfg.TrustProxy {
		e.IPExtractor = echo.ExtractIPFromXFFHeader()
	} else {
		e.IPExtractor = echo.ExtractIPDirect()
	}

	e.Use(middlewarepkg.RequestID())
	e.Use(middlewarepkg.Logging(logger))
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.BodyLimit("1M"))
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{"*"},
	}))

	router.Register(e, cfg, router.Handlers{
		Contact: handler.NewContactHandler(contactService, logger),
		Content: handler.NewContentHandler(contentService, logger),
	})

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("portfolio api starting", slog.String("port", cfg.Port))
		serverErr <- e.Start(":" + cfg.Port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received signal, shutting down", slog.String("signal", sig.String()))
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal("server error", slog.Any("error", err))
		}
		return
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", slog.Any("error", err))
	}
	logger.Info("portfolio api stopped")
}
