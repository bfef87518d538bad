package repositories

import (
	"errors"
	"fmt"

	"fiscaldesk/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// settingsRepository implements SettingsRepositoryInterface over a single row
type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *gorm.DB) SettingsRepositoryInterface {
	return &settingsRepository{
		db: db,
	}
}

func defaultSettings() models.Settings {
	return models.Settings{
		DefaultVATRate:      decimal.NewFromInt(22),
		Currency:            "EUR",
		CurrencySymbol:      "€",
		TargetSalary:        decimal.Zero,
		TaxablePercentage:   decimal.NewFromInt(78),
		IncomeTaxRate:       decimal.NewFromInt(15),
		HealthInsuranceRate: decimal.NewFromFloat(26.23),
	}
}

// Get returns the settings snapshot, creating the default row on first use
func (r *settingsRepository) Get() (models.Settings, error) {
	var settings models.Settings
	err := r.db.First(&settings).Error
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Settings{}, fmt.Errorf("failed to get settings: %w", err)
	}

	settings = defaultSettings()
	if err := r.db.Create(&settings).Error; err != nil {
		return models.Settings{}, fmt.Errorf("failed to create default settings: %w", err)
	}
	return settings, nil
}

// Update applies the non-nil fields of the patch and returns the new snapshot
func (r *settingsRepository) Update(patch SettingsPatch) (models.Settings, error) {
	settings, err := r.Get()
	if err != nil {
		return models.Settings{}, err
	}

	updates := map[string]interface{}{}
	if patch.DefaultVATRate != nil {
		updates["default_vat_rate"] = *patch.DefaultVATRate
	}
	if patch.Currency != nil {
		updates["currency"] = *patch.Currency
	}
	if patch.CurrencySymbol != nil {
		updates["currency_symbol"] = *patch.CurrencySymbol
	}
	if patch.TargetSalary != nil {
		updates["target_salary"] = *patch.TargetSalary
	}
	if patch.TaxablePercentage != nil {
		updates["taxable_percentage"] = *patch.TaxablePercentage
	}
	if patch.IncomeTaxRate != nil {
		updates["income_tax_rate"] = *patch.IncomeTaxRate
	}
	if patch.HealthInsuranceRate != nil {
		updates["health_insurance_rate"] = *patch.HealthInsuranceRate
	}
	if len(updates) == 0 {
		return settings, nil
	}

	if err := r.db.Model(&settings).Updates(updates).Error; err != nil {
		return models.Settings{}, fmt.Errorf("failed to update settings: %w", err)
	}

	var updated models.Settings
	if err := r.db.First(&updated, "id = ?", settings.ID).Error; err != nil {
		return models.Settings{}, fmt.Errorf("failed to reload settings: %w", err)
	}
	return updated, nil
}
