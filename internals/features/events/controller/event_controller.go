package controller

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"mahotsav_backend/internals/constants"
	adminModel "mahotsav_backend/internals/features/admins/model"
	"mahotsav_backend/internals/features/events/dto"
	"mahotsav_backend/internals/features/events/model"
	helper "mahotsav_backend/internals/helpers"
	authHelper "mahotsav_backend/internals/helpers/auth"
	oss "mahotsav_backend/internals/helpers/oss"
	authmw "mahotsav_backend/internals/middlewares/auth"
)

const posterUploadTimeout = 15 * time.Second

type EventController struct {
	DB *gorm.DB
}

func NewEventController(db *gorm.DB) *EventController {
	return &EventController{DB: db}
}

/* =========================================================
   CREATE  POST /api/events
========================================================= */

// Create provisions the lead admin on the fly: an unknown leadAuth.id is
// registered as a new "lead" account, a known one must present the right
// password.
func (ec *EventController) Create(c *fiber.Ctx) error {
	payload, err := dto.DecodeEventPayload(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := payload.Validate(); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	lead, status, err := ec.resolveLeadAdmin(payload.LeadAuth)
	if err != nil {
		return helper.JsonError(c, status, err.Error())
	}

	var imageURL *string
	if fh := oss.GetImageFile(c, "image", "poster", "file"); fh != nil {
		storage, sErr := oss.GetPosterStorage()
		if sErr != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Poster storage is not configured")
		}
		ctx, cancel := context.WithTimeout(c.Context(), posterUploadTimeout)
		defer cancel()
		url, upErr := storage.UploadPoster(ctx, fh)
		if upErr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, upErr.Error())
		}
		imageURL = &url
	}

	prizes, err := payload.PrizesJSON()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "prizes must be a JSON object")
	}
	contacts, err := payload.ContactsJSON()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "contactPersons must be a JSON array")
	}

	event := model.EventModel{
		EventCategory:       strings.TrimSpace(payload.EventCategory),
		EventName:           strings.TrimSpace(payload.EventName),
		ParticipantCategory: strings.TrimSpace(payload.ParticipantCategory),
		ImageURL:            imageURL,
		Rules:               payload.Rules,
		Prizes:              prizes,
		LeadAdminID:         lead.ID,
		AdminID:             ec.callerAdminID(c, lead),
		ContactPersons:      contacts,
	}
	if err := ec.DB.Create(&event).Error; err != nil {
		log.Printf("[ERROR] create event: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create event")
	}

	return helper.JsonCreated(c, "Event created successfully", dto.CreateEventResponse{EventID: event.ID.String()})
}

// resolveLeadAdmin finds or creates the lead account behind leadAuth.
func (ec *EventController) resolveLeadAdmin(la *dto.LeadAuth) (*adminModel.AdminModel, int, error) {
	var admin adminModel.AdminModel
	err := ec.DB.Where("admin_id = ?", la.ID).First(&admin).Error
	if err == nil {
		if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(la.Password)) != nil {
			return nil, fiber.StatusUnauthorized, errors.New("Invalid credentials")
		}
		return &admin, fiber.StatusOK, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fiber.StatusInternalServerError, errors.New("Failed to look up lead admin")
	}

	hashed, hErr := bcrypt.GenerateFromPassword([]byte(la.Password), bcrypt.DefaultCost)
	if hErr != nil {
		return nil, fiber.StatusInternalServerError, errors.New("Failed to secure password")
	}
	admin = adminModel.AdminModel{
		AdminID:    la.ID,
		Password:   string(hashed),
		Role:       constants.RoleLead,
		Department: la.ID,
	}
	if cErr := ec.DB.Create(&admin).Error; cErr != nil {
		log.Printf("[ERROR] provision lead admin: %v", cErr)
		return nil, fiber.StatusInternalServerError, errors.New("Failed to provision lead admin")
	}
	return &admin, fiber.StatusCreated, nil
}

// callerAdminID takes the public admin id from a bearer token when one is
// present; otherwise the event is attributed to its own lead.
func (ec *EventController) callerAdminID(c *fiber.Ctx, lead *adminModel.AdminModel) string {
	tokenString := helper.GetRawAccessToken(c)
	if tokenString == "" {
		return lead.AdminID
	}
	claims, err := authHelper.ParseClaims(tokenString)
	if err != nil {
		return lead.AdminID
	}
	if v := authHelper.AdminIDClaim(claims); v != "" {
		return v
	}
	if id, err := authHelper.SubjectID(claims); err == nil {
		var admin adminModel.AdminModel
		if ec.DB.Where("id = ?", id).First(&admin).Error == nil {
			return admin.AdminID
		}
	}
	return lead.AdminID
}

/* =========================================================
   FETCH BY CATEGORY  GET /api/events/fetchByCategory
========================================================= */

func (ec *EventController) FetchByCategory(c *fiber.Ctx) error {
	category := c.Query("category")
	if category == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Category parameter is required")
	}

	var events []model.EventModel
	if err := ec.DB.Where("event_category = ?", category).Order("created_at DESC").Find(&events).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch events")
	}
	return helper.JsonOK(c, "Events fetched successfully", events)
}

/* =========================================================
   BY ADMIN  GET /api/events/byAdmin
========================================================= */

func (ec *EventController) ByAdmin(c *fiber.Ctx) error {
	adminID, _ := c.Locals(authmw.LocAdminID).(string)
	if adminID == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Not authorized")
	}

	var events []model.EventModel
	if err := ec.DB.Where("admin_id = ?", adminID).Order("created_at DESC").Find(&events).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch events")
	}
	return helper.JsonOK(c, "Events fetched successfully", events)
}

/* =========================================================
   GET BY ID  GET /api/events/:id
========================================================= */

func (ec *EventController) GetByID(c *fiber.Ctx) error {
	var event model.EventModel
	err := ec.DB.Where("id = ?", c.Params("id")).First(&event).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch event")
	}
	return helper.JsonOK(c, "Event fetched successfully", event)
}

/* =========================================================
   UPDATE  PUT /api/events/:id
========================================================= */

func (ec *EventController) Update(c *fiber.Ctx) error {
	event, errResp := ec.loadOwnedEvent(c)
	if event == nil {
		return errResp
	}

	payload, err := dto.DecodeEventPayload(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	updates := map[string]any{}
	if payload.EventCategory != "" {
		updates["event_category"] = strings.TrimSpace(payload.EventCategory)
	}
	if payload.EventName != "" {
		updates["event_name"] = strings.TrimSpace(payload.EventName)
	}
	if payload.ParticipantCategory != "" {
		updates["participant_category"] = strings.TrimSpace(payload.ParticipantCategory)
	}
	if payload.Rules != "" {
		updates["rules"] = payload.Rules
	}
	if payload.Prizes != nil {
		prizes, pErr := payload.PrizesJSON()
		if pErr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "prizes must be a JSON object")
		}
		updates["prizes"] = prizes
	}
	if payload.ContactPersons != nil {
		contacts, cErr := payload.ContactsJSON()
		if cErr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "contactPersons must be a JSON array")
		}
		updates["contact_persons"] = contacts
	}

	// rotate the lead credentials when new ones are submitted
	if payload.LeadAuth != nil {
		if strings.TrimSpace(payload.LeadAuth.Password) != "" {
			if err := ec.rotateLeadPassword(event.LeadAdminID.String(), payload.LeadAuth.Password); err != nil {
				return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update lead credentials")
			}
		}
		if newID := strings.TrimSpace(payload.LeadAuth.ID); newID != "" && newID != event.AdminID {
			if err := ec.DB.Model(&adminModel.AdminModel{}).
				Where("id = ?", event.LeadAdminID).
				Update("admin_id", newID).Error; err != nil {
				return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update lead credentials")
			}
			updates["admin_id"] = newID
		}
	}

	if fh := oss.GetImageFile(c, "image", "poster", "file"); fh != nil {
		ctx, cancel := context.WithTimeout(c.Context(), posterUploadTimeout)
		defer cancel()
		storage, sErr := oss.GetPosterStorage()
		if sErr != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Poster storage is not configured")
		}
		url, upErr := storage.UploadPoster(ctx, fh)
		if upErr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, upErr.Error())
		}
		if event.ImageURL != nil && *event.ImageURL != "" {
			if dErr := storage.DeleteByURL(ctx, *event.ImageURL); dErr != nil {
				log.Printf("[WARN] old poster cleanup failed: %v", dErr)
			}
		}
		updates["image_url"] = url
	}

	if len(updates) > 0 {
		if err := ec.DB.Model(event).Updates(updates).Error; err != nil {
			log.Printf("[ERROR] update event: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update event")
		}
	}

	var updated model.EventModel
	if err := ec.DB.Where("id = ?", event.ID).First(&updated).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reload event")
	}
	return helper.JsonUpdated(c, "Event updated successfully", updated)
}

func (ec *EventController) rotateLeadPassword(leadID, newPassword string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return ec.DB.Model(&adminModel.AdminModel{}).Where("id = ?", leadID).Update("password", string(hashed)).Error
}

/* =========================================================
   DELETE  DELETE /api/events/:id
========================================================= */

// Delete removes the event row and its poster. Registrations pointing at
// the event are kept, they carry their own event snapshot.
func (ec *EventController) Delete(c *fiber.Ctx) error {
	event, errResp := ec.loadOwnedEvent(c)
	if event == nil {
		return errResp
	}

	if event.ImageURL != nil && *event.ImageURL != "" {
		if storage, err := oss.GetPosterStorage(); err == nil {
			ctx, cancel := context.WithTimeout(c.Context(), posterUploadTimeout)
			defer cancel()
			if dErr := storage.DeleteByURL(ctx, *event.ImageURL); dErr != nil {
				log.Printf("[WARN] poster cleanup failed: %v", dErr)
			}
		}
	}

	if err := ec.DB.Delete(event).Error; err != nil {
		log.Printf("[ERROR] delete event: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete event")
	}
	return helper.JsonDeleted(c, "Event deleted successfully", nil)
}

// loadOwnedEvent fetches :id and enforces the ownership rule. On failure
// the first return is nil and the second is the already-written response.
func (ec *EventController) loadOwnedEvent(c *fiber.Ctx) (*model.EventModel, error) {
	var event model.EventModel
	err := ec.DB.Where("id = ?", c.Params("id")).First(&event).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.JsonError(c, fiber.StatusNotFound, "Event not found")
	}
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch event")
	}

	claimAdminID, _ := c.Locals(authmw.LocAdminID).(string)
	if claimAdminID == "" {
		claimAdminID, _ = c.Locals(authmw.LocClaimAdmin).(string)
	}
	subjectID, _ := c.Locals(authmw.LocAdminDBID).(string)

	if !dto.IsOwner(&event, claimAdminID, subjectID) {
		return nil, helper.JsonError(c, fiber.StatusForbidden, "You do not have permission to modify this event")
	}
	return &event, nil
}
