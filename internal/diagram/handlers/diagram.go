package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/Jakmann86/hexagon-maths-sub000/internal/diagram/service"

	"github.com/gofiber/fiber/v3"
)

// ============================================================
// Diagram Handler
// ============================================================

type DiagramHandler struct {
	engine *service.Engine
}

func NewDiagramHandler(engine *service.Engine) *DiagramHandler {
	return &DiagramHandler{engine: engine}
}

// Solid строит параллелепипед: JSON, SVG или PNG по ?format.
func (h *DiagramHandler) Solid(c fiber.Ctx) error {
	log.Printf("[SOLID] Received request, Content-Length: %d", len(c.Body()))

	var req service.SolidRequest
	if err := decodeBody(c, &req); err != nil {
		log.Printf("[SOLID] Decode error: %v", err)
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON payload"})
	}

	return h.respond(c, h.engine.Solid(req))
}

// Polygon строит правильный многоугольник: JSON, SVG или PNG по ?format.
func (h *DiagramHandler) Polygon(c fiber.Ctx) error {
	log.Printf("[POLYGON] Received request, Content-Length: %d", len(c.Body()))

	var req service.PolygonRequest
	if err := decodeBody(c, &req); err != nil {
		log.Printf("[POLYGON] Decode error: %v", err)
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON payload"})
	}

	return h.respond(c, h.engine.Polygon(req))
}

func (h *DiagramHandler) respond(c fiber.Ctx, res service.Result) error {
	switch format := c.Query("format", "json"); format {
	case "json":
		return c.JSON(res)
	case "svg":
		return sendSVG(c, h.engine, &res.Scene)
	case "png":
		return sendPNG(c, h.engine, &res.Scene)
	default:
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "unsupported format " + format})
	}
}

// ============================================================
// Helpers
// ============================================================

// decodeBody допускает пустое тело: тогда берутся значения по умолчанию.
func decodeBody(c fiber.Ctx, v any) error {
	if len(c.Body()) == 0 {
		return nil
	}
	return json.Unmarshal(c.Body(), v)
}
