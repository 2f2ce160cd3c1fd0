package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	adminController "mahotsav_backend/internals/features/admins/controller"
	"mahotsav_backend/internals/features/events/controller"
	authmw "mahotsav_backend/internals/middlewares/auth"
)

// EventRoutes mounts the event catalogue and dashboard surface under
// /api/events. Create stays open so a new lead can self-provision through
// leadAuth; everything else behind /:id requires a token.
func EventRoutes(api fiber.Router, db *gorm.DB) {
	ec := controller.NewEventController(db)
	ac := adminController.NewAdminController(db)

	events := api.Group("/events")

	events.Get("/fetchByCategory", ec.FetchByCategory)
	events.Post("/", ec.Create)

	protected := events.Group("", authmw.AuthMiddleware(db))
	protected.Get("/byAdmin", ec.ByAdmin)
	protected.Get("/admin/:id", ac.GetAdminByID)
	protected.Get("/:id", ec.GetByID)
	protected.Put("/:id", ec.Update)
	protected.Delete("/:id", ec.Delete)
}
