package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	adminRoute "mahotsav_backend/internals/features/admins/route"
	eventRoute "mahotsav_backend/internals/features/events/route"
	registrationRoute "mahotsav_backend/internals/features/registrations/route"
	userRoute "mahotsav_backend/internals/features/users/route"
)

// SetupRoutes wires every feature group under /api.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app, db)

	api := app.Group("/api")

	adminRoute.AdminRoutes(api, db)
	userRoute.UserRoutes(api, db)
	eventRoute.EventRoutes(api, db)
	registrationRoute.RegistrationRoutes(api, db)
	registrationRoute.RegistrationAdminRoutes(api, db)

	log.Println("[INFO] routes mounted: /api/{admin,users,events,registrations,registration}")
}
