package handlers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
)

var probeClient = &http.Client{Timeout: 2 * time.Second}

// ============================================================
// Health Check Handlers
// ============================================================

// LivenessProbe проверяет, что приложение работает
func LivenessProbe(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "alive",
	})
}

// ReadinessProbe готов, когда оба внутренних сервиса отвечают на /health/live.
func ReadinessProbe(up Upstreams) fiber.Handler {
	return func(c fiber.Ctx) error {
		services := fiber.Map{
			"diagrams": probe(up.Diagrams),
			"presets":  probe(up.Presets),
		}
		for _, state := range services {
			if state != "up" {
				return c.Status(http.StatusServiceUnavailable).JSON(fiber.Map{
					"status":   "degraded",
					"services": services,
				})
			}
		}
		return c.JSON(fiber.Map{
			"status":   "ready",
			"services": services,
		})
	}
}

// StartupProbe проверяет, что приложение успешно запустилось
func StartupProbe(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "started",
	})
}

func probe(baseURL string) string {
	resp, err := probeClient.Get(strings.TrimRight(baseURL, "/") + "/health/live")
	if err != nil {
		log.Printf("[HEALTH] %s unreachable: %v", baseURL, err)
		return "down"
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "down"
	}
	return "up"
}
