package model

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

// AdminModel represents the staff accounts table. A "core" admin has full
// dashboard access; a "lead" admin only manages the events it owns.
type AdminModel struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"_id"`
	AdminID    string    `gorm:"size:100;uniqueIndex;not null;column:admin_id" json:"adminId" validate:"required"`
	Password   string    `gorm:"not null" json:"-" validate:"required,min=6"`
	Role       string    `gorm:"size:20;not null" json:"role" validate:"required,oneof=core lead"`
	Department string    `gorm:"size:100" json:"department"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (AdminModel) TableName() string {
	return "admins"
}

func (a *AdminModel) Validate() error {
	if err := validate.Struct(a); err != nil {
		if validationErrs, ok := err.(validator.ValidationErrors); ok {
			var msg string
			for _, fieldErr := range validationErrs {
				switch fieldErr.Tag() {
				case "required":
					msg += fieldErr.Field() + " is required. "
				case "oneof":
					msg += fieldErr.Field() + " must be one of " + fieldErr.Param() + ". "
				case "min":
					msg += fieldErr.Field() + " must be at least " + fieldErr.Param() + " characters. "
				default:
					msg += fieldErr.Field() + " has an invalid format. "
				}
			}
			return errors.New(msg)
		}
		return err
	}
	return nil
}
