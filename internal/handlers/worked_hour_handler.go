package handlers

import (
	"net/http"

	"fiscaldesk/internal/dto"
	"fiscaldesk/internal/errors"
	"fiscaldesk/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// WorkedHourHandler handles time-log HTTP requests and the per-client
// monthly report
type WorkedHourHandler struct {
	workedHourService services.WorkedHourServiceInterface
	reportService     services.ReportServiceInterface
	reportRenderer    services.ReportRendererInterface
	settingsService   services.SettingsServiceInterface
}

// NewWorkedHourHandler creates a new worked-hour handler
func NewWorkedHourHandler(
	workedHourService services.WorkedHourServiceInterface,
	reportService services.ReportServiceInterface,
	reportRenderer services.ReportRendererInterface,
	settingsService services.SettingsServiceInterface,
) *WorkedHourHandler {
	return &WorkedHourHandler{
		workedHourService: workedHourService,
		reportService:     reportService,
		reportRenderer:    reportRenderer,
		settingsService:   settingsService,
	}
}

// LogHours records a worked-hours entry
// @Summary Log worked hours
// @Description Record hours worked for a client; the billed amount is cached from the client's current rate
// @Tags WorkedHours
// @Accept json
// @Produce json
// @Param request body dto.LogHoursRequest true "Worked-hours entry"
// @Success 201 {object} models.WorkedHour "Entry created"
// @Failure 400 {object} errors.ErrorResponse "CLIENT_005 - Invalid hours"
// @Failure 404 {object} errors.ErrorResponse "CLIENT_001 - Client not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /worked-hours [post]
func (h *WorkedHourHandler) LogHours(c echo.Context) error {
	var req dto.LogHoursRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	clientID, err := uuid.Parse(req.ClientID)
	if err != nil {
		return SendError(c, errors.ValidationInvalidUUID, errors.WithDetails("Invalid client ID"))
	}

	workedDate, err := parseDate(req.WorkedDate, "worked_date")
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}

	hours, err := parseAmount(req.Hours, "hours")
	if err != nil {
		return SendError(c, errors.WorkedHourInvalid, errors.WithDetails(err.Error()))
	}

	entry, err := h.workedHourService.LogHours(clientID, workedDate, hours, req.Note)
	if err != nil {
		if err == services.ErrClientNotFound {
			return SendError(c, errors.ClientNotFound)
		}
		if err == services.ErrNonPositiveHours {
			return SendError(c, errors.WorkedHourInvalid, errors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, entry)
}

// GetEntry retrieves a worked-hours entry by ID
// @Summary Get worked-hours entry
// @Tags WorkedHours
// @Produce json
// @Param entryId path string true "Entry ID (UUID)"
// @Success 200 {object} models.WorkedHour "Entry details"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_006 - Invalid entry ID format"
// @Failure 404 {object} errors.ErrorResponse "CLIENT_004 - Entry not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /worked-hours/{entryId} [get]
func (h *WorkedHourHandler) GetEntry(c echo.Context) error {
	id, err := parseUUIDParam(c, "entryId")
	if err != nil {
		return SendError(c, errors.ValidationInvalidUUID, errors.WithDetails(err.Error()))
	}

	entry, err := h.workedHourService.GetEntry(id)
	if err != nil {
		if err == services.ErrEntryNotFound {
			return SendError(c, errors.WorkedHourNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, entry)
}

// GetEntries retrieves a paginated worked-hours list, newest first
// @Summary List worked-hours entries
// @Tags WorkedHours
// @Produce json
// @Param offset query int false "Pagination offset" default(0)
// @Param limit query int false "Page size (max 100)" default(20)
// @Success 200 {object} dto.WorkedHourListResponse "Paginated entries"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid pagination parameter"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /worked-hours [get]
func (h *WorkedHourHandler) GetEntries(c echo.Context) error {
	offset, limit, err := parsePagination(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}

	entries, total, err := h.workedHourService.GetEntries(offset, limit)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.WorkedHourListResponse{
		Entries: entries,
		Total:   total,
		Offset:  offset,
		Limit:   limit,
	})
}

// UpdateEntry applies a partial update to a worked-hours entry. Changing the
// hours re-caches the billed amount at the client's current rate.
// @Summary Update worked-hours entry
// @Tags WorkedHours
// @Accept json
// @Produce json
// @Param entryId path string true "Entry ID (UUID)"
// @Param request body dto.UpdateWorkedHourRequest true "Fields to update"
// @Success 200 {object} models.WorkedHour "Updated entry"
// @Failure 400 {object} errors.ErrorResponse "CLIENT_005 - Invalid hours"
// @Failure 404 {object} errors.ErrorResponse "CLIENT_004 - Entry not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /worked-hours/{entryId} [put]
func (h *WorkedHourHandler) UpdateEntry(c echo.Context) error {
	id, err := parseUUIDParam(c, "entryId")
	if err != nil {
		return SendError(c, errors.ValidationInvalidUUID, errors.WithDetails(err.Error()))
	}

	var req dto.UpdateWorkedHourRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	var update services.WorkedHourUpdate

	if req.WorkedDate != nil {
		workedDate, err := parseDate(*req.WorkedDate, "worked_date")
		if err != nil {
			return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
		}
		update.WorkedDate = &workedDate
	}

	if req.Hours != nil {
		hours, err := parseAmount(*req.Hours, "hours")
		if err != nil {
			return SendError(c, errors.WorkedHourInvalid, errors.WithDetails(err.Error()))
		}
		update.Hours = &hours
	}

	update.Note = req.Note

	entry, err := h.workedHourService.UpdateEntry(id, update)
	if err != nil {
		if err == services.ErrEntryNotFound {
			return SendError(c, errors.WorkedHourNotFound)
		}
		if err == services.ErrNonPositiveHours {
			return SendError(c, errors.WorkedHourInvalid, errors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, entry)
}

// DeleteEntry removes a worked-hours entry
// @Summary Delete worked-hours entry
// @Tags WorkedHours
// @Produce json
// @Param entryId path string true "Entry ID (UUID)"
// @Success 200 {object} SuccessResponse "Entry deleted"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_006 - Invalid entry ID format"
// @Failure 404 {object} errors.ErrorResponse "CLIENT_004 - Entry not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /worked-hours/{entryId} [delete]
func (h *WorkedHourHandler) DeleteEntry(c echo.Context) error {
	id, err := parseUUIDParam(c, "entryId")
	if err != nil {
		return SendError(c, errors.ValidationInvalidUUID, errors.WithDetails(err.Error()))
	}

	if err := h.workedHourService.DeleteEntry(id); err != nil {
		if err == services.ErrEntryNotFound {
			return SendError(c, errors.WorkedHourNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "Entry deleted successfully"})
}

// GetMonthlyReport builds the per-client monthly report, grouped by day
// @Summary Monthly worked-hours report
// @Description Group a client's worked hours by day for one calendar month; pass format=text for a rendered document
// @Tags WorkedHours
// @Produce json
// @Param clientId path string true "Client ID (UUID)"
// @Param year query int true "Calendar year"
// @Param month query int true "Month (1-12)"
// @Param format query string false "Response format" Enums(json, text) default(json)
// @Success 200 {object} models.MonthlyReport "Monthly report"
// @Failure 400 {object} errors.ErrorResponse "REPORT_001 - Invalid year or month"
// @Failure 404 {object} errors.ErrorResponse "CLIENT_001 - Client not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /clients/{clientId}/report [get]
func (h *WorkedHourHandler) GetMonthlyReport(c echo.Context) error {
	clientID, err := parseUUIDParam(c, "clientId")
	if err != nil {
		return SendError(c, errors.ValidationInvalidUUID, errors.WithDetails(err.Error()))
	}

	year, err := parseIntQuery(c, "year", 0)
	if err != nil || year == 0 {
		return SendError(c, errors.ReportInvalidPeriod, errors.WithDetails("year is required"))
	}

	month, err := parseIntQuery(c, "month", 0)
	if err != nil || month == 0 {
		return SendError(c, errors.ReportInvalidPeriod, errors.WithDetails("month is required"))
	}

	report, err := h.reportService.BuildMonthlyReport(clientID, year, month)
	if err != nil {
		if err == services.ErrClientNotFound {
			return SendError(c, errors.ClientNotFound)
		}
		if err == services.ErrInvalidMonth {
			return SendError(c, errors.ReportInvalidPeriod, errors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	if c.QueryParam("format") == "text" {
		settings, err := h.settingsService.GetSettings()
		if err != nil {
			return SendSystemError(c, err)
		}

		rendered, err := h.reportRenderer.Render(report, settings.CurrencySymbol)
		if err != nil {
			return SendSystemError(c, err)
		}

		return c.Blob(http.StatusOK, h.reportRenderer.ContentType(), rendered)
	}

	return c.JSON(http.StatusOK, report)
}
