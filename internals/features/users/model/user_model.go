package model

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Validator instance
var validate = validator.New()

// UserModel represents the attendees table. Password never serializes;
// mhid is issued once at creation and never changes.
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"_id"`
	FirstName string    `gorm:"size:100;not null" json:"firstName" validate:"required"`
	LastName  string    `gorm:"size:100;not null" json:"lastName" validate:"required"`
	Email     string    `gorm:"size:255;uniqueIndex;not null" json:"email" validate:"required,email"`
	DOB       time.Time `gorm:"not null;column:dob" json:"dob" validate:"required"`
	Phone     string    `gorm:"size:20;not null" json:"phone" validate:"required"`
	College   string    `gorm:"size:255;not null" json:"college" validate:"required"`
	Password  string    `gorm:"not null" json:"-" validate:"required,min=6"`
	MHID      string    `gorm:"size:20;uniqueIndex;column:mhid" json:"mhid"`
	GoogleID  *string   `gorm:"size:255;uniqueIndex" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (UserModel) TableName() string {
	return "users"
}

// Validate checks the input against the declared rules
func (u *UserModel) Validate() error {
	if err := validate.Struct(u); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// formatValidationError turns validator errors into a readable message
func formatValidationError(err error) error {
	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		var msg string
		for _, fieldErr := range validationErrs {
			switch fieldErr.Tag() {
			case "required":
				msg += fieldErr.Field() + " is required. "
			case "email":
				msg += "Invalid email format. "
			case "min":
				msg += fieldErr.Field() + " must be at least " + fieldErr.Param() + " characters. "
			case "oneof":
				msg += fieldErr.Field() + " must be one of " + fieldErr.Param() + ". "
			default:
				msg += fieldErr.Field() + " has an invalid format. "
			}
		}
		return errors.New(msg)
	}
	return err
}
