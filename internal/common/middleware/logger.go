package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/logger"
)

// ============================================================
// Logger Middleware
// ============================================================

// Logger пишет строку на запрос; query нужна, чтобы видеть ?format у чертежей.
// Пробы /health/* не логируются.
func Logger() fiber.Handler {
	return logger.New(logger.Config{
		Next:       isHealthProbe,
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}?${queryParams} | ${bytesSent}B | Content-Type: ${reqHeader:Content-Type}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	})
}

func isHealthProbe(c fiber.Ctx) bool {
	return strings.HasPrefix(c.Path(), "/health/")
}
