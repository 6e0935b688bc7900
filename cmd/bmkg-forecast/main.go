package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpapi "bmkg-forecast/internal/api/http"
	"bmkg-forecast/internal/bmkg"
	"bmkg-forecast/internal/config"
	"bmkg-forecast/internal/refresher"
	"bmkg-forecast/internal/store"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Shared HTTP client for the outbound BMKG call.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	// Upstream client, latest-bundle store, periodic refresher.
	client := bmkg.NewClient(httpClient, cfg.BaseURL, cfg.RegionCode)
	latest := store.NewLatestStore()

	ref := refresher.New(client, latest, cfg.RefreshInterval)
	if err := ref.Start(); err != nil {
		log.Fatalf("failed to start refresher: %v", err)
	}
	defer ref.Stop()

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "bmkg-forecast",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())

	// Basic health endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "bmkg-forecast",
		})
	})

	// API routes.
	httpapi.RegisterRoutes(app, latest)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}
