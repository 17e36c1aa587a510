package handlers

import (
	"github.com/gofiber/fiber/v3"
)

// Register вешает маршруты сервиса пресетов на router.
func Register(r fiber.Router, h *PresetHandler) {
	r.Post("/presets", h.Create)
	r.Get("/presets", h.List)
	r.Get("/presets/:id", h.Get)
	r.Delete("/presets/:id", h.Delete)

	r.Get("/presets/:id/scene", h.Scene)
	r.Get("/presets/:id/svg", h.SVG)
	r.Get("/presets/:id/png", h.PNG)
	r.Post("/presets/:id/export", h.Export)
}
