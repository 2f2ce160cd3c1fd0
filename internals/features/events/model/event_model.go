package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// EventModel represents the events table.
//
// prizes and contact_persons keep the document shape the API exposes
// ({men:[],women:[],"no category":[]} / [{name,phone}...]) as jsonb.
// admin_id is a denormalized copy of the lead's public id, used for fast
// dashboard filtering; lead_admin_id stays the canonical ownership ref.
type EventModel struct {
	ID                  uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"_id"`
	EventCategory       string         `gorm:"size:100;not null;index" json:"eventCategory"`
	EventName           string         `gorm:"size:255;not null" json:"eventName"`
	ParticipantCategory string         `gorm:"size:20;not null" json:"participantCategory"`
	ImageURL            *string        `gorm:"size:512;column:image_url" json:"imageUrl,omitempty"`
	Rules               string         `gorm:"type:text;not null" json:"rules"`
	Prizes              datatypes.JSON `gorm:"type:jsonb;not null;default:'{}'" json:"prizes"`
	LeadAdminID         uuid.UUID      `gorm:"type:uuid;not null;column:lead_admin_id" json:"leadAdmin"`
	AdminID             string         `gorm:"size:100;index;column:admin_id" json:"adminId"`
	ContactPersons      datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'" json:"contactPersons"`
	CreatedAt           time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt           time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (EventModel) TableName() string {
	return "events"
}
