package validation

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("money_amount", validateMoneyAmount)
	_ = v.RegisterValidation("positive_amount", validatePositiveAmount)
	_ = v.RegisterValidation("rate_percent", validateRatePercent)
	_ = v.RegisterValidation("hex_color", validateHexColor)
	_ = v.RegisterValidation("invoice_status", validateInvoiceStatus)
	_ = v.RegisterValidation("iso_date", validateISODate)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

func decimalField(fl validator.FieldLevel) (decimal.Decimal, bool) {
	if d, ok := fl.Field().Interface().(decimal.Decimal); ok {
		return d, true
	}
	return decimal.Decimal{}, false
}

// validateMoneyAmount validates that a decimal amount is not negative and has
// at most 2 decimal places
func validateMoneyAmount(fl validator.FieldLevel) bool {
	d, ok := decimalField(fl)
	if !ok {
		return false
	}
	if d.IsNegative() {
		return false
	}
	return d.Exponent() >= -2
}

// validatePositiveAmount validates that a decimal amount is strictly positive
func validatePositiveAmount(fl validator.FieldLevel) bool {
	d, ok := decimalField(fl)
	if !ok {
		return false
	}
	return d.IsPositive()
}

// validateRatePercent validates that a decimal rate is within [0, 100]
func validateRatePercent(fl validator.FieldLevel) bool {
	d, ok := decimalField(fl)
	if !ok {
		return false
	}
	return !d.IsNegative() && d.LessThanOrEqual(decimal.NewFromInt(100))
}

// validateHexColor validates a #RRGGBB color string
func validateHexColor(fl validator.FieldLevel) bool {
	color := fl.Field().String()
	matched, _ := regexp.MatchString(`^#[0-9a-fA-F]{6}$`, color)
	return matched
}

// validateInvoiceStatus validates that the status is one of the allowed values
func validateInvoiceStatus(fl validator.FieldLevel) bool {
	status := strings.ToLower(fl.Field().String())
	validStatuses := map[string]bool{
		"draft":   true,
		"sent":    true,
		"paid":    true,
		"overdue": true,
	}
	return validStatuses[status]
}

// validateISODate validates a YYYY-MM-DD date string
func validateISODate(fl validator.FieldLevel) bool {
	date := fl.Field().String()
	matched, _ := regexp.MatchString(`^\d{4}-\d{2}-\d{2}$`, date)
	return matched
}
