package services

import (
	"errors"
	"fmt"
	"log/slog"

	"fiscaldesk/internal/models"
	"fiscaldesk/internal/repositories"

	"github.com/shopspring/decimal"
)

var ErrInvalidSettingsValue = errors.New("invalid settings value")

type settingsService struct {
	settingsRepo repositories.SettingsRepositoryInterface
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repositories.SettingsRepositoryInterface) SettingsServiceInterface {
	return &settingsService{
		settingsRepo: settingsRepo,
	}
}

func (s *settingsService) GetSettings() (models.Settings, error) {
	settings, err := s.settingsRepo.Get()
	if err != nil {
		return models.Settings{}, fmt.Errorf("failed to get settings: %w", err)
	}
	return settings, nil
}

func validRate(rate *decimal.Decimal) bool {
	if rate == nil {
		return true
	}
	return !rate.IsNegative() && rate.LessThanOrEqual(decimal.NewFromInt(100))
}

func (s *settingsService) UpdateSettings(patch repositories.SettingsPatch) (models.Settings, error) {
	if !validRate(patch.DefaultVATRate) {
		return models.Settings{}, fmt.Errorf("%w: default VAT rate must be between 0 and 100", ErrInvalidSettingsValue)
	}
	if !validRate(patch.IncomeTaxRate) {
		return models.Settings{}, fmt.Errorf("%w: income tax rate must be between 0 and 100", ErrInvalidSettingsValue)
	}
	if !validRate(patch.HealthInsuranceRate) {
		return models.Settings{}, fmt.Errorf("%w: health insurance rate must be between 0 and 100", ErrInvalidSettingsValue)
	}
	if patch.TaxablePercentage != nil &&
		(patch.TaxablePercentage.LessThanOrEqual(decimal.Zero) || patch.TaxablePercentage.GreaterThan(decimal.NewFromInt(100))) {
		return models.Settings{}, fmt.Errorf("%w: taxable percentage must be greater than 0 and at most 100", ErrInvalidSettingsValue)
	}
	if patch.TargetSalary != nil && patch.TargetSalary.IsNegative() {
		return models.Settings{}, fmt.Errorf("%w: target salary must not be negative", ErrInvalidSettingsValue)
	}

	settings, err := s.settingsRepo.Update(patch)
	if err != nil {
		slog.Error("failed to update settings", "error", err)
		return models.Settings{}, fmt.Errorf("failed to update settings: %w", err)
	}

	slog.Info("settings updated")
	return settings, nil
}
