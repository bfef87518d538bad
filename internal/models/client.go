package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrClientNameRequired = errors.New("client name is required")
	ErrInvalidHourlyRate  = errors.New("client hourly rate must be positive")
)

// Client represents a billable client with an agreed hourly rate
type Client struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Name       string          `gorm:"type:varchar(255);not null" json:"name"`
	HourlyRate decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"hourly_rate"`
	CreatedAt  time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Client
func (c *Client) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return c.Validate()
}

// BeforeUpdate hook for Client
func (c *Client) BeforeUpdate(tx *gorm.DB) error {
	return c.Validate()
}

// Validate validates the client fields
func (c *Client) Validate() error {
	if c.Name == "" {
		return ErrClientNameRequired
	}

	if c.HourlyRate.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidHourlyRate
	}

	return nil
}

// TableName returns the table name for Client
func (c *Client) TableName() string {
	return "clients"
}
