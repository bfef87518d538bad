package handlers

import (
	stderrors "errors"
	"net/http"

	"fiscaldesk/internal/dto"
	"fiscaldesk/internal/errors"
	"fiscaldesk/internal/repositories"
	"fiscaldesk/internal/services"

	"github.com/labstack/echo/v4"
)

// SettingsHandler handles the single-row settings endpoints
type SettingsHandler struct {
	settingsService services.SettingsServiceInterface
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService services.SettingsServiceInterface) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// GetSettings retrieves the settings record, creating defaults on first read
// @Summary Get settings
// @Tags Settings
// @Produce json
// @Success 200 {object} models.Settings "Current settings"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /settings [get]
func (h *SettingsHandler) GetSettings(c echo.Context) error {
	settings, err := h.settingsService.GetSettings()
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, settings)
}

// UpdateSettings applies a partial settings update
// @Summary Update settings
// @Description Update any subset of the settings fields; omitted fields are unchanged
// @Tags Settings
// @Accept json
// @Produce json
// @Param request body dto.UpdateSettingsRequest true "Fields to update"
// @Success 200 {object} models.Settings "Updated settings"
// @Failure 400 {object} errors.ErrorResponse "SETTINGS_001 - Invalid settings value"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /settings [put]
func (h *SettingsHandler) UpdateSettings(c echo.Context) error {
	var req dto.UpdateSettingsRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	patch := repositories.SettingsPatch{
		Currency:       req.Currency,
		CurrencySymbol: req.CurrencySymbol,
	}

	if req.DefaultVATRate != nil {
		rate, err := parseAmount(*req.DefaultVATRate, "default_vat_rate")
		if err != nil {
			return SendError(c, errors.SettingsInvalidValue, errors.WithDetails(err.Error()))
		}
		patch.DefaultVATRate = &rate
	}

	if req.TargetSalary != nil {
		salary, err := parseAmount(*req.TargetSalary, "target_salary")
		if err != nil {
			return SendError(c, errors.SettingsInvalidValue, errors.WithDetails(err.Error()))
		}
		patch.TargetSalary = &salary
	}

	if req.TaxablePercentage != nil {
		pct, err := parseAmount(*req.TaxablePercentage, "taxable_percentage")
		if err != nil {
			return SendError(c, errors.SettingsInvalidValue, errors.WithDetails(err.Error()))
		}
		patch.TaxablePercentage = &pct
	}

	if req.IncomeTaxRate != nil {
		rate, err := parseAmount(*req.IncomeTaxRate, "income_tax_rate")
		if err != nil {
			return SendError(c, errors.SettingsInvalidValue, errors.WithDetails(err.Error()))
		}
		patch.IncomeTaxRate = &rate
	}

	if req.HealthInsuranceRate != nil {
		rate, err := parseAmount(*req.HealthInsuranceRate, "health_insurance_rate")
		if err != nil {
			return SendError(c, errors.SettingsInvalidValue, errors.WithDetails(err.Error()))
		}
		patch.HealthInsuranceRate = &rate
	}

	settings, err := h.settingsService.UpdateSettings(patch)
	if err != nil {
		if stderrors.Is(err, services.ErrInvalidSettingsValue) {
			return SendError(c, errors.SettingsInvalidValue, errors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, settings)
}
