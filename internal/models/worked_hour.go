package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrInvalidHours = errors.New("worked hours must be positive")
)

// WorkedHour represents a single time-log entry for a client.
// AmountCached stores hours multiplied by the client's hourly rate at insert
// time, rounded to the cent, so report totals survive later rate changes.
type WorkedHour struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	ClientID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"client_id"`
	WorkedDate   time.Time       `gorm:"type:date;not null;index" json:"worked_date"`
	Hours        decimal.Decimal `gorm:"type:decimal(6,2);not null" json:"hours"`
	Note         string          `gorm:"type:text" json:"note,omitempty"`
	AmountCached decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"amount_cached"`
	CreatedAt    time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"not null" json:"updated_at"`

	// Associations
	Client Client `gorm:"foreignKey:ClientID" json:"-"`
}

// BeforeCreate hook for WorkedHour
func (w *WorkedHour) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return w.Validate()
}

// BeforeUpdate hook for WorkedHour
func (w *WorkedHour) BeforeUpdate(tx *gorm.DB) error {
	return w.Validate()
}

// Validate validates the worked-hour fields
func (w *WorkedHour) Validate() error {
	if w.ClientID == uuid.Nil {
		return errors.New("client ID is required")
	}

	if w.Hours.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidHours
	}

	if w.WorkedDate.IsZero() {
		return errors.New("worked date is required")
	}

	return nil
}

// CacheAmount computes and stores the billed amount for this entry
func (w *WorkedHour) CacheAmount(hourlyRate decimal.Decimal) {
	w.AmountCached = w.Hours.Mul(hourlyRate).Round(2)
}

// HasCachedAmount returns true if a billed amount was stored at insert time
func (w *WorkedHour) HasCachedAmount() bool {
	return w.AmountCached.IsPositive()
}

// TableName returns the table name for WorkedHour
func (w *WorkedHour) TableName() string {
	return "worked_hours"
}
