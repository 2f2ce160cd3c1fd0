package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "mahotsav_backend/internals/helpers"
)

var bootTime = time.Now()

// BaseRoutes serves the unauthenticated service endpoints.
func BaseRoutes(app *fiber.App, db *gorm.DB) {
	app.Get("/", func(c *fiber.Ctx) error {
		return helper.JsonOK(c, "Mahotsav API is running", fiber.Map{
			"uptime": time.Since(bootTime).Round(time.Second).String(),
		})
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		dbStatus := "up"
		sqlDB, err := db.DB()
		if err != nil || sqlDB.PingContext(c.Context()) != nil {
			dbStatus = "down"
		}
		status := fiber.StatusOK
		if dbStatus == "down" {
			status = fiber.StatusServiceUnavailable
		}
		return c.Status(status).JSON(fiber.Map{
			"success":  dbStatus == "up",
			"database": dbStatus,
			"uptime":   time.Since(bootTime).Round(time.Second).String(),
		})
	})
}
