package dto

import (
	"mahotsav_backend/internals/constants"
	"mahotsav_backend/internals/features/admins/model"
)

/* =========================================================
   REQUESTS
========================================================= */

type RegisterAdminRequest struct {
	AdminID    string `json:"adminId"`
	Password   string `json:"password"`
	Role       string `json:"role"`
	Department string `json:"department"`
}

type LoginAdminRequest struct {
	AdminID  string `json:"adminId"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

/* =========================================================
   RESPONSES
========================================================= */

type AdminResponse struct {
	ID         string `json:"_id"`
	AdminID    string `json:"adminId"`
	Role       string `json:"role"`
	Department string `json:"department,omitempty"`
}

type AuthAdminResponse struct {
	AdminResponse
	Token       string `json:"token"`
	AccessLevel string `json:"accessLevel,omitempty"`
}

// AdminPublicResponse is the trimmed shape for cross-admin lookups.
type AdminPublicResponse struct {
	AdminID string `json:"adminId"`
	Role    string `json:"role"`
}

// AccessLevelFor maps a staff role to the dashboard access it unlocks.
func AccessLevelFor(role string) string {
	switch role {
	case constants.RoleCore:
		return constants.AccessFull
	case constants.RoleLead:
		return constants.AccessLead
	default:
		return constants.AccessLimited
	}
}

func ToAdminResponse(a *model.AdminModel) AdminResponse {
	return AdminResponse{
		ID:         a.ID.String(),
		AdminID:    a.AdminID,
		Role:       a.Role,
		Department: a.Department,
	}
}
