package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Settings is the single-row configuration record for the tracker.
// It is read into memory and passed by value into the calculators; the
// engine never mutates it.
type Settings struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	DefaultVATRate      decimal.Decimal `gorm:"type:decimal(5,2);not null;default:22" json:"default_vat_rate"`
	Currency            string          `gorm:"type:varchar(3);not null;default:'EUR'" json:"currency"`
	CurrencySymbol      string          `gorm:"type:varchar(8);not null;default:'€'" json:"currency_symbol"`
	TargetSalary        decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"target_salary"`
	TaxablePercentage   decimal.Decimal `gorm:"type:decimal(5,2);not null;default:78" json:"taxable_percentage"`
	IncomeTaxRate       decimal.Decimal `gorm:"type:decimal(5,2);not null;default:15" json:"income_tax_rate"`
	HealthInsuranceRate decimal.Decimal `gorm:"type:decimal(5,2);not null;default:26.23" json:"health_insurance_rate"`
	UpdatedAt           time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Settings
func (s *Settings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for Settings
func (s *Settings) TableName() string {
	return "settings"
}

// TaxParams carries the flat-tax parameters into the projection calculator
type TaxParams struct {
	TargetSalary        decimal.Decimal `json:"target_salary"`
	TaxablePercentage   decimal.Decimal `json:"taxable_percentage"`
	IncomeTaxRate       decimal.Decimal `json:"income_tax_rate"`
	HealthInsuranceRate decimal.Decimal `json:"health_insurance_rate"`
}

// TaxParams extracts the projection parameters from the settings snapshot
func (s Settings) TaxParams() TaxParams {
	return TaxParams{
		TargetSalary:        s.TargetSalary,
		TaxablePercentage:   s.TaxablePercentage,
		IncomeTaxRate:       s.IncomeTaxRate,
		HealthInsuranceRate: s.HealthInsuranceRate,
	}
}
