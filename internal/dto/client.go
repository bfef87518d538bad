package dto

import "fiscaldesk/internal/models"

// CreateClientRequest represents the request payload for creating a client
type CreateClientRequest struct {
	Name       string `json:"name" validate:"required,min=1,max=200"`
	HourlyRate string `json:"hourly_rate" validate:"required"`
}

// UpdateClientRequest represents a partial client update; nil fields are left
// unchanged
type UpdateClientRequest struct {
	Name       *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	HourlyRate *string `json:"hourly_rate,omitempty"`
}

// ClientListResponse represents the list of clients
type ClientListResponse struct {
	Clients []models.Client `json:"clients"`
	Total   int             `json:"total"`
}
