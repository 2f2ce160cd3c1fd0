package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"mahotsav_backend/internals/constants"
	eventModel "mahotsav_backend/internals/features/events/model"
	"mahotsav_backend/internals/features/registrations/dto"
	"mahotsav_backend/internals/features/registrations/model"
	helper "mahotsav_backend/internals/helpers"
	authmw "mahotsav_backend/internals/middlewares/auth"
)

const (
	defaultPerPage = 20
	maxPerPage     = 100
)

// RegistrationAdminController serves the dashboard side: department-scoped
// listings, per-event rosters and status management.
type RegistrationAdminController struct {
	DB *gorm.DB
}

func NewRegistrationAdminController(db *gorm.DB) *RegistrationAdminController {
	return &RegistrationAdminController{DB: db}
}

// departmentScope narrows a query to the categories a department may see.
// Core departments outside sports/culturals see everything.
func departmentScope(q *gorm.DB, department string) *gorm.DB {
	switch normalizeDepartment(department) {
	case "cultural":
		return q.Where("event_details->>'eventCategory' ILIKE ?", "%cultural%")
	case "sports":
		return q.Where("event_details->>'eventCategory' ILIKE ?", "%sports%")
	default:
		return q
	}
}

func normalizeDepartment(department string) string {
	d := strings.ToLower(strings.TrimSpace(department))
	if d == "culturals" {
		return "cultural"
	}
	return d
}

/* =========================================================
   DEPARTMENT LISTING  GET /api/registrations/admin
========================================================= */

func (rc *RegistrationAdminController) ListByDepartment(c *fiber.Ctx) error {
	department, _ := c.Locals(authmw.LocAdminDept).(string)

	var registrations []model.RegistrationModel
	q := departmentScope(rc.DB.Model(&model.RegistrationModel{}), department)
	if err := q.Order("created_at DESC").Find(&registrations).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch registrations")
	}
	return helper.JsonOK(c, "Registrations fetched successfully", registrations)
}

/* =========================================================
   BY EVENT  GET /api/registrations/event/:eventId
========================================================= */

func (rc *RegistrationAdminController) ListByEvent(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("eventId"))
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

	dept, _ := c.Locals(authmw.LocAdminDept).(string)
	department := normalizeDepartment(dept)
	category := strings.ToLower(event.EventCategory)
	if (department == "cultural" && category != "cultural") ||
		(department == "sports" && category != "sports") {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Not authorized to access these registrations")
	}

	var registrations []model.RegistrationModel
	if err := rc.DB.Where("event_id = ?", eventID).Order("created_at DESC").Find(&registrations).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch registrations")
	}
	return helper.JsonOK(c, "Registrations fetched successfully", registrations)
}

/* =========================================================
   PAGINATED LISTING  GET /api/registration
========================================================= */

func (rc *RegistrationAdminController) ListAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, defaultPerPage, maxPerPage)

	var total int64
	if err := rc.DB.Model(&model.RegistrationModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count registrations")
	}

	var registrations []model.RegistrationModel
	if err := rc.DB.Order("created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&registrations).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch registrations")
	}

	return helper.JsonList(c, "Registrations fetched successfully", registrations,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* =========================================================
   PAGINATED BY EVENT  GET /api/registration/event/:eventId
========================================================= */

func (rc *RegistrationAdminController) ListAllByEvent(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("eventId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event ID format")
	}

	paging := helper.ResolvePaging(c, defaultPerPage, maxPerPage)

	var total int64
	if err := rc.DB.Model(&model.RegistrationModel{}).Where("event_id = ?", eventID).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count registrations")
	}

	var registrations []model.RegistrationModel
	if err := rc.DB.Where("event_id = ?", eventID).Order("created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&registrations).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch registrations")
	}

	return helper.JsonList(c, "Registrations fetched successfully", registrations,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* =========================================================
   BY EVENT NAME  GET /api/registration/by-event-name/:eventName
========================================================= */

func (rc *RegistrationAdminController) ListByEventName(c *fiber.Ctx) error {
	eventName := c.Params("eventName")

	var event eventModel.EventModel
	err := rc.DB.Where("event_name ILIKE ?", "%"+eventName+"%").First(&event).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to look up event")
	}

	paging := helper.ResolvePaging(c, defaultPerPage, maxPerPage)

	var total int64
	if err := rc.DB.Model(&model.RegistrationModel{}).Where("event_id = ?", event.ID).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count registrations")
	}

	var registrations []model.RegistrationModel
	if err := rc.DB.Where("event_id = ?", event.ID).Order("created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&registrations).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch registrations")
	}

	return helper.JsonList(c, "Registrations fetched successfully", registrations,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* =========================================================
   GET BY ID  GET /api/registration/:id
========================================================= */

func (rc *RegistrationAdminController) GetByID(c *fiber.Ctx) error {
	var registration model.RegistrationModel
	err := rc.DB.Where("id = ?", c.Params("id")).First(&registration).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Registration not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch registration")
	}
	return helper.JsonOK(c, "Registration fetched successfully", registration)
}

/* =========================================================
   UPDATE STATUS  PUT /api/registration/:id/status
========================================================= */

func (rc *RegistrationAdminController) UpdateStatus(c *fiber.Ctx) error {
	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if !constants.IsValidRegistrationStatus(req.Status) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid status")
	}

	var registration model.RegistrationModel
	err := rc.DB.Where("id = ?", c.Params("id")).First(&registration).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Registration not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch registration")
	}

	if err := rc.DB.Model(&registration).Update("status", req.Status).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update status")
	}
	registration.Status = req.Status
	return helper.JsonUpdated(c, "Status updated successfully", registration)
}
