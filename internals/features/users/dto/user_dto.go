package dto

import (
	"fmt"
	"time"

	"mahotsav_backend/internals/features/users/model"
)

/* =========================================================
   REQUESTS
========================================================= */

type RegisterUserRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	DOB       string `json:"dob"`
	Phone     string `json:"phone"`
	College   string `json:"college"`
	Password  string `json:"password"`
}

type LoginUserRequest struct {
	MHID     string `json:"mhid"`
	Password string `json:"password"`
}

type GoogleLoginRequest struct {
	IDToken string `json:"idToken"`
}

type UpdateProfileRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	College   *string `json:"college"`
	DOB       *string `json:"dob"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// dobLayouts lists the date shapes clients actually send.
var dobLayouts = []string{"2006-01-02", time.RFC3339}

// ParseDOB accepts a plain date or a full timestamp.
func ParseDOB(raw string) (time.Time, error) {
	for _, layout := range dobLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid dob %q, expected YYYY-MM-DD", raw)
}

/* =========================================================
   RESPONSES
========================================================= */

type UserResponse struct {
	ID        string `json:"_id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	DOB       string `json:"dob"`
	Phone     string `json:"phone"`
	College   string `json:"college"`
	MHID      string `json:"mhid"`
}

type AuthUserResponse struct {
	UserResponse
	Token string `json:"token"`
}

func ToUserResponse(u *model.UserModel) UserResponse {
	return UserResponse{
		ID:        u.ID.String(),
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		DOB:       u.DOB.Format("2006-01-02"),
		Phone:     u.Phone,
		College:   u.College,
		MHID:      u.MHID,
	}
}

func ToAuthUserResponse(u *model.UserModel, token string) AuthUserResponse {
	return AuthUserResponse{UserResponse: ToUserResponse(u), Token: token}
}
