package handlers

import (
	"fmt"
	"strconv"
	"time"

	"fiscaldesk/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// parseUUIDParam parses a path parameter as a UUID
func parseUUIDParam(c echo.Context, name string) (uuid.UUID, error) {
	raw := c.Param(name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.UUID{}, fmt.Errorf("invalid %s: %q", name, raw)
	}
	return id, nil
}

// parseIntQuery parses an optional integer query parameter, returning the
// fallback when the parameter is absent
func parseIntQuery(c echo.Context, name string, fallback int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", name, raw)
	}
	return value, nil
}

// parseOptionalIntQuery parses an optional integer query parameter, returning
// nil when absent
func parseOptionalIntQuery(c echo.Context, name string) (*int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %q", name, raw)
	}
	return &value, nil
}

// parseDateQuery parses an optional YYYY-MM-DD query parameter, returning nil
// when absent
func parseDateQuery(c echo.Context, name string) (*time.Time, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	date, err := time.Parse(services.ISODateFormat, raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %q, expected YYYY-MM-DD", name, raw)
	}
	return &date, nil
}

// parsePagination reads offset/limit query parameters with conventional
// defaults; out-of-range values are clamped by the service layer
func parsePagination(c echo.Context) (offset, limit int, err error) {
	offset, err = parseIntQuery(c, "offset", 0)
	if err != nil {
		return 0, 0, err
	}
	limit, err = parseIntQuery(c, "limit", 20)
	if err != nil {
		return 0, 0, err
	}
	return offset, limit, nil
}

// parseAmount parses a decimal string from a request body field
func parseAmount(raw, field string) (decimal.Decimal, error) {
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid %s: %q", field, raw)
	}
	return value, nil
}

// parseDate parses a YYYY-MM-DD string from a request body field
func parseDate(raw, field string) (time.Time, error) {
	date, err := time.Parse(services.ISODateFormat, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s: %q, expected YYYY-MM-DD", field, raw)
	}
	return date, nil
}
