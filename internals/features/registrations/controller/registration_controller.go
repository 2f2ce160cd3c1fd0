package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"mahotsav_backend/internals/constants"
	eventModel "mahotsav_backend/internals/features/events/model"
	"mahotsav_backend/internals/features/registrations/dto"
	"mahotsav_backend/internals/features/registrations/model"
	"mahotsav_backend/internals/features/registrations/service"
	userModel "mahotsav_backend/internals/features/users/model"
	helper "mahotsav_backend/internals/helpers"
	authmw "mahotsav_backend/internals/middlewares/auth"
)

// RegistrationController serves the attendee side of event signups.
type RegistrationController struct {
	DB *gorm.DB
}

func NewRegistrationController(db *gorm.DB) *RegistrationController {
	return &RegistrationController{DB: db}
}

/* =========================================================
   REGISTER  POST /api/registrations
========================================================= */

func (rc *RegistrationController) Register(c *fiber.Ctx) error {
	user, err := rc.currentUser(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Not authorized")
	}

	var req dto.RegisterForEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	eventID, err := uuid.Parse(req.EventID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event ID format")
	}

	var event eventModel.EventModel
	err = rc.DB.Where("id = ?", eventID).First(&event).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to look up event")
	}

	var count int64
	if err := rc.DB.Model(&model.RegistrationModel{}).
		Where("user_id = ? AND event_id = ?", user.ID, eventID).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check existing registration")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "You have already registered for this event")
	}

	eventName := req.EventName
	if eventName == "" {
		eventName = event.EventName
	}
	category := service.NormalizeCategory(req.EventCategory)
	subCategory := service.NormalizeSubCategory(req.SubCategory)

	registration := model.RegistrationModel{
		UserID:         user.ID,
		EventID:        eventID,
		RegistrationID: service.BuildRegistrationID(user.MHID, eventName),
		EventDetails: dto.EventSnapshot{
			EventName:     eventName,
			EventCategory: category,
			SubCategory:   subCategory,
		}.JSON(),
		UserDetails: dto.UserSnapshot{
			UserID: user.MHID,
			Name:   req.Name,
			Phone:  req.Phone,
		}.JSON(),
		Status: constants.StatusConfirmed,
	}

	if err := rc.DB.Create(&registration).Error; err != nil {
		low := strings.ToLower(err.Error())
		// the unique index is the authoritative duplicate guard
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return helper.JsonError(c, fiber.StatusBadRequest, "You have already registered for this event")
		}
		log.Printf("[ERROR] create registration: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to register for event")
	}

	return helper.JsonCreated(c, "Registered successfully", dto.ToCreatedResponse(&registration, eventName))
}

/* =========================================================
   LIST MINE  GET /api/registrations
========================================================= */

func (rc *RegistrationController) ListMine(c *fiber.Ctx) error {
	user, err := rc.currentUser(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Not authorized")
	}

	var registrations []model.RegistrationModel
	if err := rc.DB.Where("user_id = ?", user.ID).Order("created_at DESC").Find(&registrations).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch registrations")
	}
	return helper.JsonOK(c, "Registrations fetched successfully", registrations)
}

/* =========================================================
   GET BY ID  GET /api/registrations/:id
========================================================= */

// GetByID answers 404 for both a missing row and someone else's row, so
// ids cannot be probed.
func (rc *RegistrationController) GetByID(c *fiber.Ctx) error {
	user, err := rc.currentUser(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Not authorized")
	}

	var registration model.RegistrationModel
	err = rc.DB.Where("id = ?", c.Params("id")).First(&registration).Error
	if err != nil || registration.UserID != user.ID {
		return helper.JsonError(c, fiber.StatusNotFound, "Registration not found")
	}
	return helper.JsonOK(c, "Registration fetched successfully", registration)
}

/* =========================================================
   CANCEL  PUT /api/registrations/:id/cancel
========================================================= */

func (rc *RegistrationController) Cancel(c *fiber.Ctx) error {
	user, err := rc.currentUser(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Not authorized")
	}

	var registration model.RegistrationModel
	err = rc.DB.Where("id = ?", c.Params("id")).First(&registration).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Registration not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch registration")
	}
	if registration.UserID != user.ID {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Not authorized to cancel this registration")
	}

	if err := rc.DB.Model(&registration).Update("status", constants.StatusCancelled).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to cancel registration")
	}
	registration.Status = constants.StatusCancelled
	return helper.JsonUpdated(c, "Registration cancelled successfully", registration)
}

/* =========================================================
   DELETE  DELETE /api/registrations/:id
========================================================= */

func (rc *RegistrationController) Delete(c *fiber.Ctx) error {
	user, err := rc.currentUser(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Not authorized")
	}

	var registration model.RegistrationModel
	err = rc.DB.Where("id = ?", c.Params("id")).First(&registration).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Registration not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch registration")
	}
	if registration.UserID != user.ID {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Not authorized to delete this registration")
	}

	if err := rc.DB.Delete(&registration).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete registration")
	}
	return helper.JsonDeleted(c, "Registration deleted successfully", nil)
}

func (rc *RegistrationController) currentUser(c *fiber.Ctx) (*userModel.UserModel, error) {
	id, ok := c.Locals(authmw.LocUserID).(string)
	if !ok || id == "" {
		return nil, gorm.ErrRecordNotFound
	}
	var user userModel.UserModel
	if err := rc.DB.Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
