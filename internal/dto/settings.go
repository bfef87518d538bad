package dto

// UpdateSettingsRequest represents a partial settings update. Every field is
// an explicit tagged optional; nil means "leave unchanged". Rates and amounts
// are decimal strings.
type UpdateSettingsRequest struct {
	DefaultVATRate      *string `json:"default_vat_rate,omitempty"`
	Currency            *string `json:"currency,omitempty" validate:"omitempty,len=3"`
	CurrencySymbol      *string `json:"currency_symbol,omitempty" validate:"omitempty,min=1,max=8"`
	TargetSalary        *string `json:"target_salary,omitempty"`
	TaxablePercentage   *string `json:"taxable_percentage,omitempty"`
	IncomeTaxRate       *string `json:"income_tax_rate,omitempty"`
	HealthInsuranceRate *string `json:"health_insurance_rate,omitempty"`
}
