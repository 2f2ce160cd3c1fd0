package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mahotsav_backend/internals/features/admins/controller"
	"mahotsav_backend/internals/middlewares"
	authmw "mahotsav_backend/internals/middlewares/auth"
)

// AdminRoutes mounts the staff auth surface under /api/admin.
func AdminRoutes(api fiber.Router, db *gorm.DB) {
	mountAdminRoutes(api, db, authmw.AuthMiddleware(db))
}

func mountAdminRoutes(api fiber.Router, db *gorm.DB, authn fiber.Handler) {
	ac := controller.NewAdminController(db)

	admin := api.Group("/admin")
	admin.Post("/register", middlewares.RegisterRateLimiter(), ac.Register)
	admin.Post("/login", middlewares.LoginRateLimiter(), ac.Login)

	// any authenticated token may read these; GetProfile answers 404 when
	// the caller carries no staff identity
	admin.Get("/profile", authn, ac.GetProfile)
	admin.Get("/:id", authn, ac.GetAdminByID)
}
