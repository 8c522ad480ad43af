package handlers

import (
	"github.com/everestllcweb-png/backend/database"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// HandleCheckHealth handles GET /health
func HandleCheckHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok", "message": "Server is running"})
}

// HandleAPIHealth handles GET /api/health. A failing store is logged but
// the endpoint stays a static liveness answer.
func HandleAPIHealth(store database.Storage) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := store.HealthCheck(); err != nil {
			log.Warnf("Database health check failed: %v", err)
		}
		return c.JSON(fiber.Map{"status": "ok", "message": "API is healthy"})
	}
}
