package handlers

import (
	stderrors "errors"
	"net/http"

	"fiscaldesk/internal/errors"
	"fiscaldesk/internal/models"
	"fiscaldesk/internal/services"

	"github.com/labstack/echo/v4"
)

// DashboardHandler handles the aggregated dashboard endpoints
type DashboardHandler struct {
	dashboardService     services.DashboardServiceInterface
	chartService         services.ChartServiceInterface
	revenueLimitService  services.RevenueLimitServiceInterface
	taxProjectionService services.TaxProjectionServiceInterface
	settingsService      services.SettingsServiceInterface
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(
	dashboardService services.DashboardServiceInterface,
	chartService services.ChartServiceInterface,
	revenueLimitService services.RevenueLimitServiceInterface,
	taxProjectionService services.TaxProjectionServiceInterface,
	settingsService services.SettingsServiceInterface,
) *DashboardHandler {
	return &DashboardHandler{
		dashboardService:     dashboardService,
		chartService:         chartService,
		revenueLimitService:  revenueLimitService,
		taxProjectionService: taxProjectionService,
		settingsService:      settingsService,
	}
}

// GetSummary composes the income and expense summaries for a calendar year
// @Summary Dashboard summary
// @Description Invoice and expense totals plus net for a calendar year, defaulting to the current one
// @Tags Dashboard
// @Produce json
// @Param year query int false "Calendar year (defaults to current)"
// @Success 200 {object} models.DashboardSummary "Yearly summary"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid year parameter"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c echo.Context) error {
	year, err := parseOptionalIntQuery(c, "year")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}

	summary, err := h.dashboardService.GetDashboardSummary(year)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, summary)
}

// GetIncomeExpenseChart builds the zero-filled monthly income-vs-expense series
// @Summary Income vs expense chart
// @Description Monthly series with one point per month, zero-filled; either a trailing window of months or a full calendar year
// @Tags Dashboard
// @Produce json
// @Param months query int false "Trailing window size (1-24)" default(6)
// @Param year query int false "Calendar year; overrides the trailing window"
// @Success 200 {array} models.ChartPoint "Monthly series"
// @Failure 400 {object} errors.ErrorResponse "REPORT_002 - Invalid months parameter"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /dashboard/chart [get]
func (h *DashboardHandler) GetIncomeExpenseChart(c echo.Context) error {
	months, err := parseIntQuery(c, "months", 6)
	if err != nil {
		return SendError(c, errors.ReportInvalidMonths, errors.WithDetails(err.Error()))
	}

	year, err := parseOptionalIntQuery(c, "year")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}

	series, err := h.chartService.BuildIncomeExpenseSeries(months, year)
	if err != nil {
		if err == services.ErrInvalidMonthsCount {
			return SendError(c, errors.ReportInvalidMonths, errors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, series)
}

// GetCategoryPie builds the per-category expense breakdown for a year
// @Summary Category pie chart
// @Tags Dashboard
// @Produce json
// @Param year query int false "Calendar year (defaults to current)"
// @Success 200 {array} models.CategoryBreakdown "Per-category breakdown"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid year parameter"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /dashboard/category-pie [get]
func (h *DashboardHandler) GetCategoryPie(c echo.Context) error {
	year, err := parseOptionalIntQuery(c, "year")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}

	breakdown, err := h.chartService.BuildCategoryPie(year)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, breakdown)
}

// GetAnnualLimit tracks invoiced revenue against the flat-tax annual ceiling
// @Summary Annual revenue limit
// @Description Invoiced revenue against the 85000 ceiling with safe/warning/exceeded status
// @Tags Dashboard
// @Produce json
// @Param year query int false "Calendar year (defaults to current)"
// @Success 200 {object} models.AnnualLimitStatus "Limit status"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid year parameter"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /dashboard/annual-limit [get]
func (h *DashboardHandler) GetAnnualLimit(c echo.Context) error {
	year, err := parseOptionalIntQuery(c, "year")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}

	status, err := h.revenueLimitService.GetAnnualRevenueLimit(year)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, status)
}

// GetMonthlyOverview computes the tax/salary projection for one month. The
// flat-tax parameters come from the settings record; individual query
// parameters override them for what-if projections without persisting.
// @Summary Monthly tax projection
// @Description Required revenue versus actual invoiced and expensed amounts for one calendar month
// @Tags Dashboard
// @Produce json
// @Param year query int true "Calendar year"
// @Param month query int true "Month (1-12)"
// @Param target_salary query string false "Override target salary"
// @Param taxable_percentage query string false "Override taxable percentage"
// @Param income_tax_rate query string false "Override income tax rate"
// @Param health_insurance_rate query string false "Override health insurance rate"
// @Success 200 {object} models.MonthlyOverview "Monthly projection"
// @Failure 400 {object} errors.ErrorResponse "REPORT_003 - Invalid projection parameters"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /dashboard/monthly-overview [get]
func (h *DashboardHandler) GetMonthlyOverview(c echo.Context) error {
	year, err := parseIntQuery(c, "year", 0)
	if err != nil || year == 0 {
		return SendError(c, errors.ReportInvalidPeriod, errors.WithDetails("year is required"))
	}

	month, err := parseIntQuery(c, "month", 0)
	if err != nil || month == 0 {
		return SendError(c, errors.ReportInvalidPeriod, errors.WithDetails("month is required"))
	}

	settings, err := h.settingsService.GetSettings()
	if err != nil {
		return SendSystemError(c, err)
	}

	params := settings.TaxParams()
	if err := applyTaxParamOverrides(c, &params); err != nil {
		return SendError(c, errors.ProjectionInvalidParams, errors.WithDetails(err.Error()))
	}

	overview, err := h.taxProjectionService.GetMonthlyOverview(year, month, params)
	if err != nil {
		if err == services.ErrInvalidMonth || err == services.ErrInvalidYear {
			return SendError(c, errors.ReportInvalidPeriod, errors.WithDetails(err.Error()))
		}
		if isProjectionParamError(err) {
			return SendError(c, errors.ProjectionInvalidParams, errors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, overview)
}

func applyTaxParamOverrides(c echo.Context, params *models.TaxParams) error {
	if raw := c.QueryParam("target_salary"); raw != "" {
		value, err := parseAmount(raw, "target_salary")
		if err != nil {
			return err
		}
		params.TargetSalary = value
	}

	if raw := c.QueryParam("taxable_percentage"); raw != "" {
		value, err := parseAmount(raw, "taxable_percentage")
		if err != nil {
			return err
		}
		params.TaxablePercentage = value
	}

	if raw := c.QueryParam("income_tax_rate"); raw != "" {
		value, err := parseAmount(raw, "income_tax_rate")
		if err != nil {
			return err
		}
		params.IncomeTaxRate = value
	}

	if raw := c.QueryParam("health_insurance_rate"); raw != "" {
		value, err := parseAmount(raw, "health_insurance_rate")
		if err != nil {
			return err
		}
		params.HealthInsuranceRate = value
	}

	return nil
}

func isProjectionParamError(err error) bool {
	return stderrors.Is(err, services.ErrInvalidTargetSalary) ||
		stderrors.Is(err, services.ErrInvalidTaxablePercentage) ||
		stderrors.Is(err, services.ErrInvalidIncomeTaxRate) ||
		stderrors.Is(err, services.ErrInvalidHealthInsuranceRate)
}
