package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/Jakmann86/hexagon-maths-sub000/internal/diagram/models"
	"github.com/Jakmann86/hexagon-maths-sub000/internal/diagram/service"

	"github.com/gofiber/fiber/v3"
)

// ============================================================
// Render Handler
// ============================================================

// Render переводит готовую сцену в SVG (по умолчанию) или PNG.
func (h *DiagramHandler) Render(c fiber.Ctx) error {
	log.Printf("[RENDER] Received request")
	log.Printf("[RENDER] Content-Type: %s", c.Get("Content-Type"))
	log.Printf("[RENDER] Content-Length: %d", len(c.Body()))

	if len(c.Body()) == 0 {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "body required",
		})
	}

	var scene models.Scene
	if err := json.Unmarshal(c.Body(), &scene); err != nil {
		log.Printf("[RENDER] Decode error: %v", err)
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid JSON payload",
		})
	}

	if c.Query("format") == "png" {
		return sendPNG(c, h.engine, &scene)
	}
	return sendSVG(c, h.engine, &scene)
}

func sendSVG(c fiber.Ctx, engine *service.Engine, scene *models.Scene) error {
	svg, err := engine.RenderSVG(scene)
	if err != nil {
		log.Printf("[RENDER] SVG error: %v", err)
		return c.Status(http.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	c.Set("Content-Type", "image/svg+xml")
	return c.SendString(svg)
}

func sendPNG(c fiber.Ctx, engine *service.Engine, scene *models.Scene) error {
	data, err := engine.RenderPNG(scene)
	if err != nil {
		log.Printf("[RENDER] PNG error: %v", err)
		return c.Status(http.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	c.Set("Content-Type", "image/png")
	return c.Send(data)
}
