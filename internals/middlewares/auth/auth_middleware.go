// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	adminModel "mahotsav_backend/internals/features/admins/model"
	userModel "mahotsav_backend/internals/features/users/model"
	helper "mahotsav_backend/internals/helpers"
	authHelper "mahotsav_backend/internals/helpers/auth"
)

// Locals keys set by the middleware
const (
	LocUserID     = "user_id"
	LocUserMHID   = "mhid"
	LocAdminDBID  = "admin_db_id" // uuid of the admin row
	LocAdminID    = "admin_id"    // public id, e.g. "sports"
	LocAdminRole  = "admin_role"
	LocAdminDept  = "admin_department"
	LocClaimAdmin = "claim_admin_id" // admin_id straight from the token claim
)

// AuthMiddleware resolves the bearer token to a caller identity. Attendees
// are tried first, then staff — the same id space covers both kinds.
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := helper.GetRawAccessToken(c)
		if tokenString == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Not authorized, no token")
		}
		helper.SetRawAccessToken(c, tokenString)

		claims, err := authHelper.ParseClaims(tokenString)
		if err != nil {
			log.Printf("[ERROR] token parse: %v", err)
			return helper.JsonError(c, fiber.StatusUnauthorized, "Not authorized, token failed")
		}

		subjectID, err := authHelper.SubjectID(claims)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid token structure")
		}

		if v := authHelper.AdminIDClaim(claims); v != "" {
			c.Locals(LocClaimAdmin, v)
		}

		// attendee first
		var user userModel.UserModel
		err = db.Where("id = ?", subjectID).First(&user).Error
		if err == nil {
			c.Locals(LocUserID, user.ID.String())
			c.Locals(LocUserMHID, user.MHID)
			return c.Next()
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[ERROR] user lookup: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
		}

		// then staff
		var admin adminModel.AdminModel
		err = db.Where("id = ?", subjectID).First(&admin).Error
		if err == nil {
			c.Locals(LocAdminDBID, admin.ID.String())
			c.Locals(LocAdminID, admin.AdminID)
			c.Locals(LocAdminRole, admin.Role)
			c.Locals(LocAdminDept, admin.Department)
			return c.Next()
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[ERROR] admin lookup: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
		}

		return helper.JsonError(c, fiber.StatusUnauthorized, "Not authorized, user/admin not found")
	}
}

// AdminOnly is the stricter variant for admin surfaces. It must run after
// AuthMiddleware in the chain.
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if IsUser(c) || !IsAdmin(c) {
			return helper.JsonError(c, fiber.StatusForbidden, "Access denied. Admin or lead role required.")
		}
		return c.Next()
	}
}

// IsAdmin reports whether the current request resolved to a staff identity.
func IsAdmin(c *fiber.Ctx) bool {
	v, ok := c.Locals(LocAdminID).(string)
	return ok && v != ""
}

// IsUser reports whether the current request resolved to an attendee.
func IsUser(c *fiber.Ctx) bool {
	v, ok := c.Locals(LocUserID).(string)
	return ok && v != ""
}
