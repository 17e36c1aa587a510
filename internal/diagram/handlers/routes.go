package handlers

import (
	"github.com/gofiber/fiber/v3"
)

// Register вешает маршруты сервиса чертежей на router.
func Register(r fiber.Router, h *DiagramHandler) {
	r.Post("/solid", h.Solid)
	r.Post("/polygon", h.Polygon)
	r.Post("/render", h.Render)

	r.Get("/solid/measures", SolidMeasures)
	r.Get("/polygon/measures", PolygonMeasures)
}
