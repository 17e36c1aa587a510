package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
)

// CORS открывает API для редактора задач. origins — список через запятую,
// пустая строка или "*" разрешают все источники.
func CORS(origins string) fiber.Handler {
	allow := []string{"*"}
	if origins = strings.TrimSpace(origins); origins != "" && origins != "*" {
		allow = strings.Split(origins, ",")
		for i := range allow {
			allow[i] = strings.TrimSpace(allow[i])
		}
	}
	return cors.New(cors.Config{
		AllowOrigins:  allow,
		AllowHeaders:  []string{"Content-Type", "Accept"},
		AllowMethods:  []string{fiber.MethodGet, fiber.MethodPost, fiber.MethodDelete, fiber.MethodOptions},
		ExposeHeaders: []string{"Content-Type"},
	})
}
