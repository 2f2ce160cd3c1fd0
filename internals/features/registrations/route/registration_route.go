package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mahotsav_backend/internals/features/registrations/controller"
	authmw "mahotsav_backend/internals/middlewares/auth"
)

// RegistrationRoutes mounts the attendee signup surface under
// /api/registrations plus its department-scoped dashboard listings.
func RegistrationRoutes(api fiber.Router, db *gorm.DB) {
	mountRegistrationRoutes(api, db, authmw.AuthMiddleware(db))
}

func mountRegistrationRoutes(api fiber.Router, db *gorm.DB, authn fiber.Handler) {
	rc := controller.NewRegistrationController(db)
	ra := controller.NewRegistrationAdminController(db)

	regs := api.Group("/registrations", authn)

	// dashboard first so "/admin" and "/event" never match ":id"; the
	// admin gate sits on these two routes only
	regs.Get("/admin", authmw.AdminOnly(), ra.ListByDepartment)
	regs.Get("/event/:eventId", authmw.AdminOnly(), ra.ListByEvent)

	regs.Post("/", rc.Register)
	regs.Get("/", rc.ListMine)
	regs.Get("/:id", rc.GetByID)
	regs.Put("/:id/cancel", rc.Cancel)
	regs.Delete("/:id", rc.Delete)
}

// RegistrationAdminRoutes mounts the paginated management surface under
// /api/registration (singular).
func RegistrationAdminRoutes(api fiber.Router, db *gorm.DB) {
	ra := controller.NewRegistrationAdminController(db)

	reg := api.Group("/registration", authmw.AuthMiddleware(db), authmw.AdminOnly())
	reg.Get("/", ra.ListAll)
	reg.Get("/event/:eventId", ra.ListAllByEvent)
	reg.Get("/by-event-name/:eventName", ra.ListByEventName)
	reg.Get("/:id", ra.GetByID)
	reg.Put("/:id/status", ra.UpdateStatus)
}
