package dto

import "fiscaldesk/internal/models"

// LogHoursRequest represents the request payload for recording worked hours
type LogHoursRequest struct {
	ClientID   string `json:"client_id" validate:"required,uuid"`
	WorkedDate string `json:"worked_date" validate:"required,iso_date"`
	Hours      string `json:"hours" validate:"required"`
	Note       string `json:"note" validate:"omitempty,max=1000"`
}

// UpdateWorkedHourRequest represents a partial worked-hour update; nil fields
// are left unchanged
type UpdateWorkedHourRequest struct {
	WorkedDate *string `json:"worked_date,omitempty" validate:"omitempty,iso_date"`
	Hours      *string `json:"hours,omitempty"`
	Note       *string `json:"note,omitempty" validate:"omitempty,max=1000"`
}

// WorkedHourListResponse represents a paginated list of worked-hour entries
type WorkedHourListResponse struct {
	Entries []models.WorkedHour `json:"entries"`
	Total   int64               `json:"total"`
	Offset  int                 `json:"offset"`
	Limit   int                 `json:"limit"`
}
