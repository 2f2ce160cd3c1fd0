package dto

import (
	"encoding/json"

	"gorm.io/datatypes"

	"mahotsav_backend/internals/features/registrations/model"
)

/* =========================================================
   REQUESTS
========================================================= */

type RegisterForEventRequest struct {
	EventID       string `json:"eventId"`
	EventName     string `json:"eventName"`
	EventCategory string `json:"eventCategory"`
	SubCategory   string `json:"subCategory"`
	Name          string `json:"name"`
	Phone         string `json:"phone"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

/* =========================================================
   SNAPSHOTS (jsonb payloads)
========================================================= */

type EventSnapshot struct {
	EventName     string `json:"eventName"`
	EventCategory string `json:"eventCategory"`
	SubCategory   string `json:"subCategory"`
}

type UserSnapshot struct {
	UserID string `json:"userId"` // attendee mhid
	Name   string `json:"name"`
	Phone  string `json:"phone"`
}

func (s EventSnapshot) JSON() datatypes.JSON {
	b, _ := json.Marshal(s)
	return datatypes.JSON(b)
}

func (s UserSnapshot) JSON() datatypes.JSON {
	b, _ := json.Marshal(s)
	return datatypes.JSON(b)
}

/* =========================================================
   RESPONSES
========================================================= */

type RegistrationCreatedResponse struct {
	ID             string `json:"_id"`
	RegistrationID string `json:"registrationId"`
	EventName      string `json:"eventName"`
	Status         string `json:"status"`
}

func ToCreatedResponse(r *model.RegistrationModel, eventName string) RegistrationCreatedResponse {
	return RegistrationCreatedResponse{
		ID:             r.ID.String(),
		RegistrationID: r.RegistrationID,
		EventName:      eventName,
		Status:         r.Status,
	}
}
