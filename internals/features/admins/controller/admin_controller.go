package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"mahotsav_backend/internals/features/admins/dto"
	"mahotsav_backend/internals/features/admins/model"
	helper "mahotsav_backend/internals/helpers"
	"mahotsav_backend/internals/helpers/auth"
	authmw "mahotsav_backend/internals/middlewares/auth"
)

type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

/* =========================================================
   REGISTER  POST /api/admin/register
========================================================= */

func (ac *AdminController) Register(c *fiber.Ctx) error {
	var req dto.RegisterAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	admin := model.AdminModel{
		AdminID:    strings.TrimSpace(req.AdminID),
		Password:   req.Password,
		Role:       strings.ToLower(strings.TrimSpace(req.Role)),
		Department: strings.TrimSpace(req.Department),
	}
	if admin.Department == "" {
		admin.Department = admin.AdminID
	}
	if err := admin.Validate(); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var count int64
	if err := ac.DB.Model(&model.AdminModel{}).Where("admin_id = ?", admin.AdminID).Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check existing admin")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Admin already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to secure password")
	}
	admin.Password = string(hashed)

	if err := ac.DB.Create(&admin).Error; err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return helper.JsonError(c, fiber.StatusBadRequest, "Admin already exists")
		}
		log.Printf("[ERROR] create admin: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to register admin")
	}

	token, err := auth.GenerateAdminToken(admin.ID, admin.AdminID, admin.Role)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue token")
	}

	return helper.JsonCreated(c, "Admin registered successfully", dto.AuthAdminResponse{
		AdminResponse: dto.ToAdminResponse(&admin),
		Token:         token,
	})
}

/* =========================================================
   LOGIN  POST /api/admin/login
========================================================= */

func (ac *AdminController) Login(c *fiber.Ctx) error {
	var req dto.LoginAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.AdminID == "" || req.Password == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "adminId and password are required")
	}

	var admin model.AdminModel
	err := ac.DB.Where("admin_id = ?", strings.TrimSpace(req.AdminID)).First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid admin ID or password")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to look up admin")
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)) != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid admin ID or password")
	}

	// The dashboard sends the role it logged in under; a mismatch is treated
	// as a failed login, not a downgrade.
	if req.Role != admin.Role {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid role selected")
	}

	token, err := auth.GenerateAdminToken(admin.ID, admin.AdminID, admin.Role)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue token")
	}

	return helper.JsonOK(c, "Login successful", dto.AuthAdminResponse{
		AdminResponse: dto.ToAdminResponse(&admin),
		Token:         token,
		AccessLevel:   dto.AccessLevelFor(admin.Role),
	})
}

/* =========================================================
   PROFILE  GET /api/admin/profile
========================================================= */

func (ac *AdminController) GetProfile(c *fiber.Ctx) error {
	id, ok := c.Locals(authmw.LocAdminDBID).(string)
	if !ok || id == "" {
		return helper.JsonError(c, fiber.StatusNotFound, "Admin not found")
	}
	var admin model.AdminModel
	if err := ac.DB.Where("id = ?", id).First(&admin).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Admin not found")
	}
	return helper.JsonOK(c, "Profile fetched successfully", dto.ToAdminResponse(&admin))
}

/* =========================================================
   GET BY ID  GET /api/admin/:id
========================================================= */

func (ac *AdminController) GetAdminByID(c *fiber.Ctx) error {
	var admin model.AdminModel
	err := ac.DB.Where("id = ?", c.Params("id")).First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Admin not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch admin")
	}
	return helper.JsonOK(c, "Admin fetched successfully", dto.AdminPublicResponse{
		AdminID: admin.AdminID,
		Role:    admin.Role,
	})
}
