package handlers

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"portfolio-backend/internal/metrics"
	"portfolio-backend/internal/services"
)

const InvalidAuthenticationError = "Invalid authentication"

// AdminLocalsKey is the fiber locals key under which the resolved admin is stored.
const AdminLocalsKey = "admin"

// RequireAdmin returns a middleware that resolves the bearer token to an admin
// account. Missing, malformed, expired and tampered tokens all produce the same
// 401 response. The resolved admin is stored in the request locals.
func RequireAdmin(auth *services.AuthService, collector *metrics.Collector) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			log.Printf("Missing bearer token - Method: %s, Path: %s, IP: %s", c.Method(), c.Path(), c.IP())
			if collector != nil {
				collector.IncrementAuthFailures()
			}
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": true, "message": InvalidAuthenticationError,
			})
		}
		admin, err := auth.ResolveToken(token)
		if err != nil {
			log.Printf("Token resolution failed - Method: %s, Path: %s, IP: %s", c.Method(), c.Path(), c.IP())
			if collector != nil {
				collector.IncrementAuthFailures()
			}
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": true, "message": InvalidAuthenticationError,
			})
		}
		c.Locals(AdminLocalsKey, admin)
		return c.Next()
	}
}
