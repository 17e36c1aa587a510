package handlers

import (
	"github.com/Jakmann86/hexagon-maths-sub000/internal/gateway/proxy"

	"github.com/gofiber/fiber/v3"
)

// Upstreams — адреса внутренних сервисов.
type Upstreams struct {
	Diagrams string
	Presets  string
}

// Register вешает пробы и проксирующие маршруты /api/v1.
func Register(app *fiber.App, up Upstreams) {
	app.Get("/health/live", LivenessProbe)
	app.Get("/health/ready", ReadinessProbe(up))
	app.Get("/health/startup", StartupProbe)

	api := app.Group("/api/v1")

	api.Get("/", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Diagram API v1",
			"status":  "ok",
		})
	})

	// Diagram Service: /api/v1/diagrams/solid -> /solid
	api.All("/diagrams/*", proxy.Mount(up.Diagrams, ""))

	// Preset Service: /api/v1/presets/:id/svg -> /presets/:id/svg
	api.All("/presets", proxy.ProxyTo(up.Presets+"/presets"))
	api.All("/presets/*", proxy.Mount(up.Presets, "/presets"))
}
