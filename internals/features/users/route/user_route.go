package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mahotsav_backend/internals/features/users/controller"
	"mahotsav_backend/internals/middlewares"
	authmw "mahotsav_backend/internals/middlewares/auth"
)

// UserRoutes mounts the attendee auth and profile surface under /api/users.
func UserRoutes(api fiber.Router, db *gorm.DB) {
	uc := controller.NewUserController(db)

	users := api.Group("/users")
	users.Post("/register", middlewares.RegisterRateLimiter(), uc.Register)
	users.Post("/login", middlewares.LoginRateLimiter(), uc.Login)
	users.Post("/login/google", middlewares.LoginRateLimiter(), uc.LoginGoogle)

	protected := users.Group("", authmw.AuthMiddleware(db))
	protected.Get("/profile", uc.GetProfile)
	protected.Put("/profile", uc.UpdateProfile)
	protected.Put("/changepassword", uc.ChangePassword)
}
