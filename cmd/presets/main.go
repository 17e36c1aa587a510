package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/Jakmann86/hexagon-maths-sub000/internal/common/config"
	"github.com/Jakmann86/hexagon-maths-sub000/internal/common/middleware"
	diagram "github.com/Jakmann86/hexagon-maths-sub000/internal/diagram/service"
	"github.com/Jakmann86/hexagon-maths-sub000/internal/presets/handlers"
	"github.com/Jakmann86/hexagon-maths-sub000/internal/presets/repository"
	"github.com/Jakmann86/hexagon-maths-sub000/internal/presets/service"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/recover"
)

// ============================================================
// Preset Service
// ============================================================

func main() {
	cfg := config.Load()
	if os.Getenv("PORT") == "" {
		cfg.Port = "3002"
	}

	db, err := repository.OpenSQLite(config.Get("PRESETS_DB_PATH", "data/db/presets.db"))
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	repo := repository.New(db)
	if err := repo.Init(context.Background()); err != nil {
		log.Fatalf("init db: %v", err)
	}

	engine, err := diagram.NewEngine(cfg.Diagram)
	if err != nil {
		log.Fatalf("init engine: %v", err)
	}

	storage := service.NewFileStorage(config.Get("EXPORT_ROOT", "data/exports"))
	presetHandler := handlers.NewPresetHandler(repo, engine, storage)

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		AppName:      "Preset Service",
		ErrorHandler: handlers.ErrorHandler,
	})

	// ============================================================
	// Global Middleware
	// ============================================================

	app.Use(recover.New())
	app.Use(middleware.Logger())

	// ============================================================
	// Health Check Routes
	// ============================================================

	app.Get("/health/live", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "alive"})
	})

	app.Get("/health/ready", func(c fiber.Ctx) error {
		if err := repo.Ping(context.Background()); err != nil {
			return c.Status(http.StatusServiceUnavailable).JSON(fiber.Map{"status": "db unavailable"})
		}
		return c.JSON(fiber.Map{"status": "ready"})
	})

	// ============================================================
	// Preset Routes
	// ============================================================

	handlers.Register(app, presetHandler)

	// ============================================================
	// Server Start
	// ============================================================

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Starting Preset Service on %s (env: %s)", addr, cfg.Environment)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
