package handlers

import (
	"net/http"

	"fiscaldesk/internal/dto"
	"fiscaldesk/internal/errors"
	"fiscaldesk/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// ClientHandler handles client HTTP requests
type ClientHandler struct {
	clientService services.ClientServiceInterface
}

// NewClientHandler creates a new client handler
func NewClientHandler(clientService services.ClientServiceInterface) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

// CreateClient creates a new billable client
// @Summary Create a client
// @Description Create a client with a positive hourly rate; the rate is a decimal string
// @Tags Clients
// @Accept json
// @Produce json
// @Param request body dto.CreateClientRequest true "Client details"
// @Success 201 {object} models.Client "Client created"
// @Failure 400 {object} errors.ErrorResponse "CLIENT_003 - Invalid hourly rate"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /clients [post]
func (h *ClientHandler) CreateClient(c echo.Context) error {
	var req dto.CreateClientRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	hourlyRate, err := parseAmount(req.HourlyRate, "hourly_rate")
	if err != nil {
		return SendError(c, errors.ClientInvalidRate, errors.WithDetails(err.Error()))
	}

	client, err := h.clientService.CreateClient(req.Name, hourlyRate)
	if err != nil {
		if err == services.ErrInvalidHourlyRate {
			return SendError(c, errors.ClientInvalidRate, errors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, client)
}

// GetClient retrieves a client by ID
// @Summary Get client by ID
// @Tags Clients
// @Produce json
// @Param clientId path string true "Client ID (UUID)"
// @Success 200 {object} models.Client "Client details"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_006 - Invalid client ID format"
// @Failure 404 {object} errors.ErrorResponse "CLIENT_001 - Client not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /clients/{clientId} [get]
func (h *ClientHandler) GetClient(c echo.Context) error {
	id, err := parseUUIDParam(c, "clientId")
	if err != nil {
		return SendError(c, errors.ValidationInvalidUUID, errors.WithDetails(err.Error()))
	}

	client, err := h.clientService.GetClient(id)
	if err != nil {
		if err == services.ErrClientNotFound {
			return SendError(c, errors.ClientNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, client)
}

// GetClients retrieves all clients ordered by name
// @Summary List clients
// @Tags Clients
// @Produce json
// @Success 200 {object} dto.ClientListResponse "List of clients"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /clients [get]
func (h *ClientHandler) GetClients(c echo.Context) error {
	clients, err := h.clientService.GetClients()
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ClientListResponse{
		Clients: clients,
		Total:   len(clients),
	})
}

// UpdateClient applies a partial update to a client. Changing the hourly
// rate affects future worked-hour entries only; cached amounts stay as
// billed.
// @Summary Update client
// @Tags Clients
// @Accept json
// @Produce json
// @Param clientId path string true "Client ID (UUID)"
// @Param request body dto.UpdateClientRequest true "Fields to update"
// @Success 200 {object} models.Client "Updated client"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body or validation error"
// @Failure 404 {object} errors.ErrorResponse "CLIENT_001 - Client not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /clients/{clientId} [put]
func (h *ClientHandler) UpdateClient(c echo.Context) error {
	id, err := parseUUIDParam(c, "clientId")
	if err != nil {
		return SendError(c, errors.ValidationInvalidUUID, errors.WithDetails(err.Error()))
	}

	var req dto.UpdateClientRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	var hourlyRate *decimal.Decimal
	if req.HourlyRate != nil {
		parsed, err := parseAmount(*req.HourlyRate, "hourly_rate")
		if err != nil {
			return SendError(c, errors.ClientInvalidRate, errors.WithDetails(err.Error()))
		}
		hourlyRate = &parsed
	}

	client, err := h.clientService.UpdateClient(id, req.Name, hourlyRate)
	if err != nil {
		if err == services.ErrClientNotFound {
			return SendError(c, errors.ClientNotFound)
		}
		if err == services.ErrInvalidHourlyRate {
			return SendError(c, errors.ClientInvalidRate, errors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, client)
}

// DeleteClient removes a client with no invoices or worked hours attached
// @Summary Delete client
// @Tags Clients
// @Produce json
// @Param clientId path string true "Client ID (UUID)"
// @Success 200 {object} SuccessResponse "Client deleted"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_006 - Invalid client ID format"
// @Failure 404 {object} errors.ErrorResponse "CLIENT_001 - Client not found"
// @Failure 409 {object} errors.ErrorResponse "CLIENT_002 - Client still referenced"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /clients/{clientId} [delete]
func (h *ClientHandler) DeleteClient(c echo.Context) error {
	id, err := parseUUIDParam(c, "clientId")
	if err != nil {
		return SendError(c, errors.ValidationInvalidUUID, errors.WithDetails(err.Error()))
	}

	if err := h.clientService.DeleteClient(id); err != nil {
		if err == services.ErrClientNotFound {
			return SendError(c, errors.ClientNotFound)
		}
		if err == services.ErrClientReferenced {
			return SendError(c, errors.ClientInUse)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "Client deleted successfully"})
}
