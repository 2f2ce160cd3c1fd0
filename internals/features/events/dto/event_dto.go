package dto

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"

	"mahotsav_backend/internals/features/events/model"
	oss "mahotsav_backend/internals/helpers/oss"
)

/* =========================================================
   WIRE SHAPES
========================================================= */

// Prize is one row of an event's prize table.
type Prize struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

// PrizeSet groups prizes per participant category, e.g.
// {"men":[...],"women":[...],"no category":[...]}.
type PrizeSet map[string][]Prize

type ContactPerson struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// LeadAuth carries the credentials of the lead admin who owns the event.
type LeadAuth struct {
	ID       string `json:"id"`
	Password string `json:"password"`
}

/* =========================================================
   REQUESTS
========================================================= */

// EventPayload is the decoded create/update body. The dashboard submits
// multipart form-data with prizes, contactPersons and leadAuth as JSON
// strings; plain JSON bodies carry them inline.
type EventPayload struct {
	EventCategory       string          `json:"eventCategory"`
	EventName           string          `json:"eventName"`
	ParticipantCategory string          `json:"participantCategory"`
	Rules               string          `json:"rules"`
	Prizes              PrizeSet        `json:"prizes"`
	ContactPersons      []ContactPerson `json:"contactPersons"`
	LeadAuth            *LeadAuth       `json:"leadAuth"`
}

// DecodeEventPayload reads the body in either encoding.
func DecodeEventPayload(c *fiber.Ctx) (*EventPayload, error) {
	if oss.IsMultipart(c) {
		return decodeMultipart(c)
	}
	var p EventPayload
	if err := c.BodyParser(&p); err != nil {
		return nil, fmt.Errorf("invalid request body")
	}
	p.ContactPersons = FilterContacts(p.ContactPersons)
	return &p, nil
}

func decodeMultipart(c *fiber.Ctx) (*EventPayload, error) {
	p := EventPayload{
		EventCategory:       c.FormValue("eventCategory"),
		EventName:           c.FormValue("eventName"),
		ParticipantCategory: c.FormValue("participantCategory"),
		Rules:               c.FormValue("rules"),
	}
	if raw := c.FormValue("prizes"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &p.Prizes); err != nil {
			return nil, fmt.Errorf("prizes must be a JSON object")
		}
	}
	if raw := c.FormValue("contactPersons"); raw != "" {
		var contacts []ContactPerson
		if err := json.Unmarshal([]byte(raw), &contacts); err != nil {
			return nil, fmt.Errorf("contactPersons must be a JSON array")
		}
		p.ContactPersons = FilterContacts(contacts)
	}
	if raw := c.FormValue("leadAuth"); raw != "" {
		var la LeadAuth
		if err := json.Unmarshal([]byte(raw), &la); err != nil {
			return nil, fmt.Errorf("leadAuth must be a JSON object")
		}
		p.LeadAuth = &la
	}
	return &p, nil
}

// FilterContacts drops rows with neither a name nor a phone.
func FilterContacts(in []ContactPerson) []ContactPerson {
	out := make([]ContactPerson, 0, len(in))
	for _, cp := range in {
		if cp.Name != "" || cp.Phone != "" {
			out = append(out, cp)
		}
	}
	return out
}

// Validate checks the fields the create path requires.
func (p *EventPayload) Validate() error {
	switch {
	case strings.TrimSpace(p.EventCategory) == "":
		return fmt.Errorf("eventCategory is required")
	case strings.TrimSpace(p.EventName) == "":
		return fmt.Errorf("eventName is required")
	case strings.TrimSpace(p.ParticipantCategory) == "":
		return fmt.Errorf("participantCategory is required")
	case p.LeadAuth == nil || p.LeadAuth.ID == "" || p.LeadAuth.Password == "":
		return fmt.Errorf("leadAuth with id and password is required")
	}
	return nil
}

// PrizesJSON renders the prize set for the jsonb column.
func (p *EventPayload) PrizesJSON() (datatypes.JSON, error) {
	if p.Prizes == nil {
		return datatypes.JSON([]byte("{}")), nil
	}
	b, err := json.Marshal(p.Prizes)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}

// ContactsJSON renders the contact list for the jsonb column.
func (p *EventPayload) ContactsJSON() (datatypes.JSON, error) {
	contacts := p.ContactPersons
	if contacts == nil {
		contacts = []ContactPerson{}
	}
	b, err := json.Marshal(contacts)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}

/* =========================================================
   RESPONSES
========================================================= */

type CreateEventResponse struct {
	EventID string `json:"eventId"`
}

// IsOwner reports whether the caller may modify the event. Ownership is
// either holding the event's public admin id in the token, or being the
// lead admin the event references.
func IsOwner(ev *model.EventModel, claimAdminID, subjectID string) bool {
	if claimAdminID != "" && ev.AdminID == claimAdminID {
		return true
	}
	return subjectID != "" && ev.LeadAdminID.String() == subjectID
}
