package main

import (
	"fmt"
	"log"
	"time"

	"github.com/Jakmann86/hexagon-maths-sub000/internal/common/config"
	"github.com/Jakmann86/hexagon-maths-sub000/internal/common/middleware"
	"github.com/Jakmann86/hexagon-maths-sub000/internal/gateway/handlers"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/recover"
)

// ============================================================
// API Gateway
// ============================================================

func main() {
	cfg := config.Load()

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		AppName:      "API Gateway",
	})

	// ============================================================
	// Global Middleware
	// ============================================================

	app.Use(recover.New())
	app.Use(middleware.CORS(config.Get("CORS_ORIGINS", "*")))
	app.Use(middleware.Logger())

	// ============================================================
	// Routes
	// ============================================================

	upstreams := handlers.Upstreams{
		Diagrams: config.Get("DIAGRAM_URL", "http://localhost:3001"),
		Presets:  config.Get("PRESETS_URL", "http://localhost:3002"),
	}
	handlers.Register(app, upstreams)

	// ============================================================
	// Server Start
	// ============================================================

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Starting API Gateway on %s (env: %s)", addr, cfg.Environment)
	log.Printf("Proxying /api/v1/diagrams to %s", upstreams.Diagrams)
	log.Printf("Proxying /api/v1/presets to %s", upstreams.Presets)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
