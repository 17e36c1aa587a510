package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Jakmann86/hexagon-maths-sub000/internal/common/config"
	"github.com/Jakmann86/hexagon-maths-sub000/internal/common/middleware"
	"github.com/Jakmann86/hexagon-maths-sub000/internal/diagram/handlers"
	"github.com/Jakmann86/hexagon-maths-sub000/internal/diagram/service"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/recover"
)

// ============================================================
// Diagram Service
// ============================================================

func main() {
	cfg := config.Load()
	if os.Getenv("PORT") == "" {
		cfg.Port = "3001"
	}

	engine, err := service.NewEngine(cfg.Diagram)
	if err != nil {
		log.Fatalf("init engine: %v", err)
	}

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		AppName:      "Diagram Service",
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
		return c.JSON(fiber.Map{"status": "ready"})
	})

	// ============================================================
	// Diagram Routes
	// ============================================================

	handlers.Register(app, handlers.NewDiagramHandler(engine))

	// ============================================================
	// Server Start
	// ============================================================

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Starting Diagram Service on %s (env: %s)", addr, cfg.Environment)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
