package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// RegistrationModel represents the registrations table.
//
// The (user_id, event_id) unique index is the authoritative guard for the
// one-registration-per-user-per-event rule; the controller's pre-check is
// only the fast path. event_details/user_details are point-in-time
// snapshots, intentionally denormalized.
type RegistrationModel struct {
	ID             uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"_id"`
	UserID         uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_registrations_user_event" json:"user"`
	EventID        uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_registrations_user_event" json:"event"`
	RegistrationID string         `gorm:"size:100;uniqueIndex;not null;column:registration_id" json:"registrationId"`
	EventDetails   datatypes.JSON `gorm:"type:jsonb;not null;default:'{}'" json:"eventDetails"`
	UserDetails    datatypes.JSON `gorm:"type:jsonb;not null;default:'{}'" json:"userDetails"`
	Status         string         `gorm:"size:20;not null;default:'confirmed'" json:"status"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (RegistrationModel) TableName() string {
	return "registrations"
}
