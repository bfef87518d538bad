package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

// ResponseTestSuite defines the test suite for error responses
type ResponseTestSuite struct {
	suite.Suite
	traceID string
}

// SetupTest runs before each test
func (s *ResponseTestSuite) SetupTest() {
	s.traceID = "550e8400-e29b-41d4-a716-446655440000"
}

// TestResponseTestSuite runs the test suite
func TestResponseTestSuite(t *testing.T) {
	suite.Run(t, new(ResponseTestSuite))
}

// TestNewErrorResponse_BasicUsage tests creating a basic error response
func (s *ResponseTestSuite) TestNewErrorResponse_BasicUsage() {
	response := NewErrorResponse(InvoiceNotFound, s.traceID)

	s.NotNil(response)
	s.Equal("INVOICE_001", response.Error.Code)
	s.Equal("Invoice not found", response.Error.Message)
	s.Equal(s.traceID, response.Error.TraceID)
	s.Empty(response.Error.Details)
}

// TestNewErrorResponse_WithDetails tests creating error response with details
func (s *ResponseTestSuite) TestNewErrorResponse_WithDetails() {
	details := []string{"amount: must not be negative", "expense_date: is required"}
	response := NewErrorResponse(ValidationGeneral, s.traceID, WithDetails(details...))

	s.NotNil(response)
	s.Equal("VALIDATION_001", response.Error.Code)
	s.Equal(details, response.Error.Details)
}

// TestNewErrorResponse_WithMessage tests overriding the default message
func (s *ResponseTestSuite) TestNewErrorResponse_WithMessage() {
	response := NewErrorResponse(ReportInvalidMonths, s.traceID, WithMessage("months must be between 1 and 24"))

	s.Equal("REPORT_002", response.Error.Code)
	s.Equal("months must be between 1 and 24", response.Error.Message)
}

// TestNewValidationError tests field-level validation errors
func (s *ResponseTestSuite) TestNewValidationError() {
	fieldErrors := map[string]string{
		"hourly_rate": "must be positive",
	}
	response := NewValidationError(fieldErrors, s.traceID)

	s.Equal("VALIDATION_001", response.Error.Code)
	s.Len(response.Error.Details, 1)
	s.Equal("hourly_rate: must be positive", response.Error.Details[0])
}

// TestWrapSystemError tests that internal errors are not leaked to clients
func (s *ResponseTestSuite) TestWrapSystemError() {
	internal := errors.New("pq: connection reset by peer")
	response, err := WrapSystemError(internal, s.traceID)

	s.Equal(internal, err)
	s.Equal("SYSTEM_001", response.Error.Code)
	s.NotContains(response.Error.Message, "pq:")
}

// TestToJSON tests JSON serialization of the error envelope
func (s *ResponseTestSuite) TestToJSON() {
	response := NewErrorResponse(ClientNotFound, s.traceID)

	data, err := response.ToJSON()
	s.NoError(err)

	var decoded ErrorResponse
	s.NoError(json.Unmarshal(data, &decoded))
	s.Equal("CLIENT_001", decoded.Error.Code)
	s.Equal(s.traceID, decoded.Error.TraceID)
}

// TestGetHTTPStatus tests the status mapping for representative codes
func (s *ResponseTestSuite) TestGetHTTPStatus() {
	testCases := []struct {
		code     ErrorCode
		expected int
	}{
		{ValidationGeneral, http.StatusBadRequest},
		{ExpenseInvalidRange, http.StatusBadRequest},
		{ProjectionInvalidParams, http.StatusBadRequest},
		{ClientNotFound, http.StatusNotFound},
		{CategoryInUse, http.StatusConflict},
		{InvoiceInvalidTransition, http.StatusUnprocessableEntity},
		{SystemRateLimitExceeded, http.StatusTooManyRequests},
		{SystemInternalError, http.StatusInternalServerError},
		{ErrorCode("BOGUS_999"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		s.Equal(tc.expected, GetHTTPStatus(tc.code), string(tc.code))
	}
}

// TestIsClientError_IsServerError tests the error class helpers
func (s *ResponseTestSuite) TestIsClientError_IsServerError() {
	clientErr := NewErrorResponse(ExpenseNotFound, s.traceID)
	s.True(clientErr.IsClientError())
	s.False(clientErr.IsServerError())

	serverErr := NewErrorResponse(SystemDatabaseError, s.traceID)
	s.False(serverErr.IsClientError())
	s.True(serverErr.IsServerError())
}
